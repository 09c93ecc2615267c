// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/TFMV/uspsaddress/internal/matcher"
	"github.com/TFMV/uspsaddress/pkg/address"
	"github.com/TFMV/uspsaddress/pkg/utils"
	"github.com/TFMV/uspsaddress/standardizer"
)

// AddressStore persists batch results. *store.Store satisfies it.
type AddressStore interface {
	CreateRun(ctx context.Context, description string) (int, error)
	SaveBatch(ctx context.Context, runID int, results []matcher.Result) ([]int, error)
	FindByFingerprint(ctx context.Context, fingerprint string) ([]matcher.Result, error)
}

var errNoStore = errors.New("no database configured")

// Handler serves the address endpoints. Store may be nil, in which case batch
// results are not persisted and lookups are unavailable.
type Handler struct {
	Store   AddressStore
	Workers int
	Metrics *Metrics
	Log     zerolog.Logger
}

type CompareRequest struct {
	A *address.Address `json:"a" binding:"required"`
	B *address.Address `json:"b" binding:"required"`
}

type CompareResponse struct {
	Equal        bool   `json:"equal"`
	FingerprintA string `json:"fingerprint_a"`
	FingerprintB string `json:"fingerprint_b"`
}

type BatchResponse struct {
	RunID      int                      `json:"run_id,omitempty"`
	Results    []matcher.Result         `json:"results"`
	Duplicates []matcher.DuplicateGroup `json:"duplicates"`
}

// SetupRoutes registers the API, health and metrics routes on router.
func SetupRoutes(router *gin.Engine, h *Handler) {
	router.Use(ErrorHandler(), RequestLogger(h.Log), h.Metrics.Middleware())

	router.GET("/health", HealthCheckHandler())
	router.GET("/metrics", h.Metrics.Handler())
	router.GET("/duplicates/:fingerprint", h.Duplicates)
	router.POST("/batch", h.Batch)

	single := router.Group("/", RequireJSON())
	single.POST("/normalize", h.Normalize)
	single.POST("/compare", h.Compare)
	single.POST("/fingerprint", h.Fingerprint)
}

func (h *Handler) Normalize(c *gin.Context) {
	var addr address.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		utils.SendError(c, http.StatusBadRequest, err)
		return
	}

	h.Metrics.observeNormalized(1)
	c.JSON(http.StatusOK, standardizer.Normalize(addr))
}

func (h *Handler) Compare(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, err)
		return
	}

	resp := CompareResponse{
		FingerprintA: standardizer.Fingerprint(*req.A),
		FingerprintB: standardizer.Fingerprint(*req.B),
	}
	resp.Equal = resp.FingerprintA == resp.FingerprintB

	h.Metrics.observeNormalized(2)
	h.Metrics.observeComparison(resp.Equal)
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Fingerprint(c *gin.Context) {
	var addr address.Address
	if err := c.ShouldBindJSON(&addr); err != nil {
		utils.SendError(c, http.StatusBadRequest, err)
		return
	}

	h.Metrics.observeNormalized(1)
	c.JSON(http.StatusOK, gin.H{"fingerprint": standardizer.Fingerprint(addr)})
}

// Batch normalizes an uploaded CSV, groups duplicates and stores the results
// when a store is configured.
func (h *Handler) Batch(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, err)
		return
	}

	f, err := file.Open()
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, err)
		return
	}
	defer f.Close()

	records, err := matcher.ReadRecords(f)
	if err != nil {
		utils.SendError(c, http.StatusBadRequest, err)
		return
	}

	ctx := c.Request.Context()
	results, err := matcher.ProcessAddresses(ctx, records, h.Workers)
	if err != nil {
		utils.SendError(c, http.StatusServiceUnavailable, fmt.Errorf("batch interrupted: %w", err))
		return
	}
	resp := BatchResponse{
		Results:    results,
		Duplicates: matcher.GroupDuplicates(results),
	}

	if h.Store != nil {
		runID, err := h.Store.CreateRun(ctx, "Batch Address Normalization")
		if err != nil {
			utils.SendError(c, http.StatusInternalServerError, err)
			return
		}
		if _, err := h.Store.SaveBatch(ctx, runID, results); err != nil {
			utils.SendError(c, http.StatusInternalServerError, err)
			return
		}
		resp.RunID = runID
	}

	h.Metrics.observeNormalized(len(results))
	h.Metrics.observeDuplicates(len(resp.Duplicates))
	h.Log.Info().
		Int("rows", len(results)).
		Int("duplicate_groups", len(resp.Duplicates)).
		Int("run_id", resp.RunID).
		Msg("batch processed")

	utils.SendJSON(c, http.StatusOK, "Batch processed successfully", resp)
}

func (h *Handler) Duplicates(c *gin.Context) {
	if h.Store == nil {
		utils.SendError(c, http.StatusServiceUnavailable, errNoStore)
		return
	}

	results, err := h.Store.FindByFingerprint(c.Request.Context(), c.Param("fingerprint"))
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, err)
		return
	}
	utils.SendJSON(c, http.StatusOK, "", results)
}

func HealthCheckHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		zuluTime := time.Now().UTC().Format(time.RFC3339)
		c.JSON(http.StatusOK, gin.H{
			"status":   "OK",
			"zuluTime": zuluTime,
		})
	}
}
