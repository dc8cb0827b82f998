package cli

// This file implements the "suggest" command: print a recovery suggestion
// for an error code. Without a completion provider configured the static
// playbook tables answer directly.

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/invincible-jha/aumai-error-taxonomy/pkg/suggest"
	"github.com/invincible-jha/aumai-error-taxonomy/pkg/taxonomy"
)

// NewSuggestCmd builds the suggest subcommand.
func NewSuggestCmd(logger *zap.Logger) *cobra.Command {
	var (
		outputJSON bool
		details    string
		agentID    string
	)

	cmd := &cobra.Command{
		Use:   "suggest CODE",
		Short: "Print a recovery suggestion for an error code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("code must be an integer, got %q", args[0])
			}
			def, err := taxonomy.Lookup(code)
			if err != nil {
				logTaxonomyError(logger, err, "Suggest lookup failed")
				return err
			}

			suggester := suggest.New(nil, logger)
			s := suggester.SuggestForError(cmd.Context(), def, details, agentID)

			if outputJSON {
				payload, err := json.MarshalIndent(s, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(payload))
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Recovery for [%d] %s (confidence: %s)\n", def.Code, def.Name, s.Confidence)
			fmt.Fprintf(out, "  %s\n", s.Summary)
			for i, step := range s.Steps {
				fmt.Fprintf(out, "  %d. %s\n", i+1, step)
			}
			for _, ref := range s.References {
				fmt.Fprintf(out, "  see: %s\n", ref)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&details, "details", "", "Error details passed to the suggester")
	cmd.Flags().StringVar(&agentID, "agent", "", "Agent identifier for context")

	return cmd
}
