package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/TFMV/uspsaddress/internal/matcher"
	"github.com/TFMV/uspsaddress/internal/store"
	"github.com/TFMV/uspsaddress/pkg/db"
	"github.com/TFMV/uspsaddress/standardizer"
)

func createNormalizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Print the normalized form of an address as JSON",
		Args:  cobra.NoArgs,
	}
	addr := bindAddressFlags(cmd, "", "")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(standardizer.Normalize(addr()))
	}
	return cmd
}

func createFingerprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the fingerprint of an address",
		Args:  cobra.NoArgs,
	}
	addr := bindAddressFlags(cmd, "", "")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), standardizer.Fingerprint(addr()))
		return nil
	}
	return cmd
}

func createCompareCmd() *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare two addresses",
		Long:  `Compare two addresses given as --a-* and --b-* flags. Exits non-zero when they differ.`,
		Args:  cobra.NoArgs,
	}
	a := bindAddressFlags(cmd, "a-", "First address: ")
	b := bindAddressFlags(cmd, "b-", "Second address: ")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only set the exit status")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		fpA := standardizer.Fingerprint(a())
		fpB := standardizer.Fingerprint(b())
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "a: %s\nb: %s\n", fpA, fpB)
		}
		if fpA != fpB {
			return fmt.Errorf("addresses differ")
		}
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "addresses are equal")
		}
		return nil
	}
	return cmd
}

func createDedupeCmd(a *app) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "dedupe [filename]",
		Short: "Print groups of duplicate addresses in a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			records, err := matcher.ReadRecords(f)
			if err != nil {
				return err
			}

			if workers < 1 {
				workers = a.cfg.Batch.Workers
			}
			results, err := matcher.ProcessAddresses(cmd.Context(), records, workers)
			if err != nil {
				return err
			}

			groups := matcher.GroupDuplicates(results)
			out := cmd.OutOrStdout()
			for _, g := range groups {
				ids := make([]string, len(g.Members))
				for i, m := range g.Members {
					ids[i] = fmt.Sprint(m.ID)
				}
				fmt.Fprintf(out, "%s\t%s\n", g.Fingerprint, strings.Join(ids, ","))
			}

			a.log.Info().
				Int("rows", len(results)).
				Int("duplicate_groups", len(groups)).
				Msg("dedupe complete")
			return nil
		},
	}
	cmd.Flags().IntVar(&workers, "workers", 0, "Number of parallel workers; 0 uses batch.workers from the config")
	return cmd
}

func createLoadCmd(a *app) *cobra.Command {
	var label string
	cmd := &cobra.Command{
		Use:   "load [filename]",
		Short: "Load a CSV file, normalize it and store the results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			pool, err := a.connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			copied, err := db.LoadCSV(ctx, pool, f)
			if err != nil {
				return err
			}
			a.log.Info().Int64("rows", copied).Msg("CSV data loaded")

			st := store.New(pool)
			records, err := st.PendingLoad(ctx)
			if err != nil {
				return err
			}

			results, err := matcher.ProcessAddresses(ctx, records, a.cfg.Batch.Workers)
			if err != nil {
				return err
			}

			runID, err := st.CreateRun(ctx, label)
			if err != nil {
				return err
			}
			if _, err := st.SaveBatch(ctx, runID, results); err != nil {
				return err
			}
			if err := st.TruncateLoad(ctx); err != nil {
				return err
			}

			groups := matcher.GroupDuplicates(results)
			a.log.Info().
				Int("run_id", runID).
				Int("rows", len(results)).
				Int("duplicate_groups", len(groups)).
				Msg("load complete")
			fmt.Fprintf(cmd.OutOrStdout(), "run %d: %d addresses stored, %d duplicate groups\n", runID, len(results), len(groups))
			return nil
		},
	}
	cmd.Flags().StringVar(&label, "label", "CSV Address Load", "Description for this run")
	return cmd
}

func createMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, err := a.connect(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := db.RunMigrations(pool); err != nil {
				return err
			}
			a.log.Info().Msg("migrations applied")
			return nil
		},
	}
}
