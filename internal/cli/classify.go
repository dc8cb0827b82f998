package cli

// This file implements the "classify" command: map a named runtime fault
// (timeout, connection_refused, permission_denied, ...) to its taxonomy code.

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/invincible-jha/aumai-error-taxonomy/pkg/taxonomy"
)

// NewClassifyCmd builds the classify subcommand.
func NewClassifyCmd(logger *zap.Logger) *cobra.Command {
	var (
		outputJSON bool
		details    string
	)

	cmd := &cobra.Command{
		Use:   "classify NAME",
		Short: "Classify a named fault into an error code",
		Long:  "Classify a named runtime fault (e.g. timeout, connection_refused) into its taxonomy code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fault, ok := taxonomy.FaultForName(args[0])
			if !ok {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: unrecognized fault name %q, classifying as generic\n", args[0])
			}

			// Classify is total: every fault maps to a catalog definition.
			def := taxonomy.Classify(fault)

			if outputJSON {
				payload, err := json.MarshalIndent(taxonomy.CreateErrorResponse(def, details), "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(payload))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%q maps to [%d] %s (%s)\n", args[0], def.Code, def.Name, CategoryLabel(def.Category))
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", def.Description)
			return nil
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&details, "details", "", "Details string included in JSON output")

	return cmd
}
