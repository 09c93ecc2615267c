package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TFMV/uspsaddress/internal/matcher"
)

type fakeStore struct {
	saved []matcher.Result
}

func (f *fakeStore) CreateRun(ctx context.Context, description string) (int, error) {
	return 7, nil
}

func (f *fakeStore) SaveBatch(ctx context.Context, runID int, results []matcher.Result) ([]int, error) {
	f.saved = append(f.saved, results...)
	ids := make([]int, len(results))
	for i := range ids {
		ids[i] = i + 1
	}
	return ids, nil
}

func (f *fakeStore) FindByFingerprint(ctx context.Context, fingerprint string) ([]matcher.Result, error) {
	var out []matcher.Result
	for _, r := range f.saved {
		if r.Fingerprint == fingerprint {
			out = append(out, r)
		}
	}
	return out, nil
}

func newRouter(store AddressStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router, &Handler{
		Store:   store,
		Workers: 2,
		Metrics: NewMetrics("test"),
		Log:     zerolog.New(io.Discard),
	})
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestNormalizeHandler(t *testing.T) {
	router := newRouter(nil)

	w := postJSON(t, router, "/normalize", `{"street1":"123 Foo St.","street2":"Apt 456","city":"Baton ROUGE","state":"la.","zip":"12345-6789"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"street1":"123 foo street","street2":"apartment 456","city":"baton rouge","state":"louisiana","zip":"12345"}`, w.Body.String())
}

func TestNormalizeHandler_AbsentFieldsStayNull(t *testing.T) {
	w := postJSON(t, newRouter(nil), "/normalize", `{"city":"  FOO  "}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"street1":null,"street2":null,"city":"foo","state":null,"zip":null}`, w.Body.String())
}

func TestNormalizeHandler_RejectsNonJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/normalize", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	newRouter(nil).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestNormalizeHandler_BadBody(t *testing.T) {
	w := postJSON(t, newRouter(nil), "/normalize", `{"street1":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"error"`)
}

func TestCompareHandler(t *testing.T) {
	router := newRouter(nil)

	w := postJSON(t, router, "/compare", `{"a":{"street1":"123 N 1st St"},"b":{"street1":"123 north first street"}}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp CompareResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Equal)
	assert.Equal(t, resp.FingerprintA, resp.FingerprintB)

	w = postJSON(t, router, "/compare", `{"a":{"street1":"123 foo st"},"b":{"street1":"124 foo st"}}`)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Equal)
}

func TestCompareHandler_MissingOperand(t *testing.T) {
	w := postJSON(t, newRouter(nil), "/compare", `{"a":{"street1":"123 foo st"}}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFingerprintHandler(t *testing.T) {
	w := postJSON(t, newRouter(nil), "/fingerprint", `{"street1":"123 Foo St"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"fingerprint":"884077219a1ad92d5ac987cc006438ba"}`, w.Body.String())
}

func uploadCSV(t *testing.T, router *gin.Engine, content string) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "addresses.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/batch", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const batchCSV = "street1,city,zip\n" +
	"123 N 1st St,Baton Rouge,70801\n" +
	"9 Elm Ave,Austin,\n" +
	"123 north first street,BATON ROUGE,70801-1234\n"

func TestBatchHandler(t *testing.T) {
	store := &fakeStore{}
	router := newRouter(store)

	w := uploadCSV(t, router, batchCSV)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status string        `json:"status"`
		Data   BatchResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 7, resp.Data.RunID)
	require.Len(t, resp.Data.Results, 3)
	require.Len(t, resp.Data.Duplicates, 1)
	assert.Len(t, resp.Data.Duplicates[0].Members, 2)
	assert.Len(t, store.saved, 3)

	lookup := httptest.NewRecorder()
	router.ServeHTTP(lookup, httptest.NewRequest(http.MethodGet, "/duplicates/"+resp.Data.Duplicates[0].Fingerprint, nil))
	require.Equal(t, http.StatusOK, lookup.Code)
	assert.Contains(t, lookup.Body.String(), "123 north 1 street")
}

func TestBatchHandler_BadCSV(t *testing.T) {
	w := uploadCSV(t, newRouter(nil), "street1,country\n1 Main St,US\n")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDuplicatesHandler_NoStore(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter(nil).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/duplicates/abc", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	router := newRouter(nil)
	postJSON(t, router, "/normalize", `{"city":"foo"}`)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"OK"`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test_addresses_normalized_total 1")
	assert.Contains(t, w.Body.String(), `test_http_requests_total{method="POST",path="/normalize",status="200"} 1`)
}
