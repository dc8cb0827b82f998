package cli

// This file implements the "lookup" command: resolve a single numeric code
// to its catalog definition. An unregistered code propagates
// taxonomy.ErrUnknownCode so main can exit with the distinguished status.

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/invincible-jha/aumai-error-taxonomy/pkg/taxonomy"
)

// NewLookupCmd builds the lookup subcommand.
func NewLookupCmd(logger *zap.Logger) *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "lookup CODE",
		Short: "Look up a specific error by its numeric code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("code must be an integer, got %q", args[0])
			}

			def, err := taxonomy.Lookup(code)
			if err != nil {
				logTaxonomyError(logger, err, "Lookup failed")
				return err
			}

			if outputJSON {
				payload, err := json.MarshalIndent(taxonomy.CreateErrorResponse(def, ""), "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(payload))
				return nil
			}

			printDefinition(cmd, def)
			return nil
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "Output as JSON")

	return cmd
}

func printDefinition(cmd *cobra.Command, def taxonomy.AgentError) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Error %d: %s\n", def.Code, def.Name)
	fmt.Fprintf(out, "  Category  : %s\n", CategoryLabel(def.Category))
	fmt.Fprintf(out, "  Severity  : %s\n", SeverityLabel(def.Severity))
	fmt.Fprintf(out, "  Retryable : %t\n", def.Retryable)
	fmt.Fprintf(out, "  Description:\n    %s\n", def.Description)
}
