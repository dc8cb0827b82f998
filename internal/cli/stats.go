package cli

// This file implements the "stats" command: per-code occurrence frequencies
// from the local store, rendered as a table or JSON.

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/invincible-jha/aumai-error-taxonomy/internal/store"
	"github.com/invincible-jha/aumai-error-taxonomy/pkg/taxonomy"
)

// NewStatsCmd builds the stats subcommand.
func NewStatsCmd(logger *zap.Logger) *cobra.Command {
	var (
		dbPath     string
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show error occurrence frequencies from the local store",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			freq, err := st.Frequency(cmd.Context())
			if err != nil {
				logTaxonomyError(logger, err, "Frequency query failed")
				return err
			}

			if outputJSON {
				payload, err := json.MarshalIndent(freq, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(payload))
				return nil
			}

			if len(freq) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No occurrences recorded.")
				return nil
			}

			codes := make([]int, 0, len(freq))
			for code := range freq {
				codes = append(codes, code)
			}
			sort.Ints(codes)

			rows := [][]string{{"CODE", "NAME", "CATEGORY", "COUNT"}}
			for _, code := range codes {
				name, category := "unknown", ""
				if def, err := taxonomy.Lookup(code); err == nil {
					name = def.Name
					category = CategoryLabel(def.Category)
				}
				rows = append(rows, []string{
					pterm.Bold.Sprintf("%d", code),
					name,
					category,
					fmt.Sprintf("%d", freq[code]),
				})
			}
			Table(cmd.OutOrStdout(), rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", defaultDBPath, "Path to the occurrence database")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Output as JSON")

	return cmd
}
