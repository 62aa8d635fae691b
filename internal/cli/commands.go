package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"phishguard/internal/adapters/scorer"
	"phishguard/internal/domain"
	scansvc "phishguard/internal/services/scanner"
	statssvc "phishguard/internal/services/stats"
	"phishguard/internal/workers/rescan"
)

func (a *app) newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending Postgres schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.settings().DatabaseURL == "" {
				return errors.New("migrate needs --database-url or DATABASE_URL")
			}
			ctx, cancel := commandContext(cmd)
			defer cancel()
			st, err := a.stores(ctx, true)
			if err != nil {
				return err
			}
			defer st.Close()
			fmt.Fprintln(cmd.OutOrStdout(), "migrations up to date")
			return nil
		},
	}
}

func (a *app) newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print ledger statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			st, err := a.stores(ctx, false)
			if err != nil {
				return err
			}
			defer st.Close()

			s, err := statssvc.New(st.Ledger).Compute(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "total_scans:       %d\n", s.Total)
			fmt.Fprintf(out, "phishing_blocked:  %d (%.1f%%)\n", s.Phishing, 100*s.Ratio(domain.StatusPhishing))
			fmt.Fprintf(out, "suspicious_count:  %d (%.1f%%)\n", s.Suspicious, 100*s.Ratio(domain.StatusSuspicious))
			fmt.Fprintf(out, "safe_urls:         %d (%.1f%%)\n", s.Safe, 100*s.Ratio(domain.StatusSafe))
			fmt.Fprintf(out, "avg_response_time: %.2fs\n", s.AvgResponseTime)
			return nil
		},
	}
}

func (a *app) newRebuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rebuild-aggregates",
		Short: "Recompute every URL aggregate from the ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := commandContext(cmd)
			defer cancel()
			st, err := a.stores(ctx, false)
			if err != nil {
				return err
			}
			defer st.Close()

			n, err := scansvc.New(nil, st.Ledger, st.Aggregates).RebuildAggregates(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "rebuilt %d aggregates\n", n)
			return nil
		},
	}
}

func (a *app) newRescanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rescan",
		Short: "Score every known URL again and record the fresh verdicts",
		RunE: func(cmd *cobra.Command, args []string) error {
			concurrency, _ := cmd.Flags().GetInt("concurrency")
			ctx, cancel := commandContext(cmd)
			defer cancel()
			st, err := a.stores(ctx, false)
			if err != nil {
				return err
			}
			defer st.Close()

			recs, err := st.Aggregates.ListAggregates(ctx)
			if err != nil {
				return err
			}
			urls := make([]string, 0, len(recs))
			for _, r := range recs {
				urls = append(urls, r.Latest.URL)
			}

			cfg := a.settings()
			scanner := scansvc.New(scorer.New(cfg.ScorerURL, cfg.ScorerTimeout), st.Ledger, st.Aggregates)
			results := rescan.Run(ctx, scanner, urls, concurrency)

			failed := 0
			out := cmd.OutOrStdout()
			for _, r := range results {
				if r.Err != nil {
					failed++
					fmt.Fprintf(out, "FAIL  %s: %v\n", r.URL, r.Err)
					continue
				}
				fmt.Fprintf(out, "%-10s %s\n", r.Verdict.Status, r.URL)
			}
			fmt.Fprintf(out, "rescanned %d of %d urls\n", len(results)-failed, len(urls))
			if failed > 0 {
				return fmt.Errorf("%d of %d rescans failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().Int("concurrency", 4, "Number of parallel scorer requests")
	return cmd
}
