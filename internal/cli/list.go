package cli

// This file implements the "list" command: the full catalog listing,
// optionally filtered by category, merged with a custom definition file,
// or dumped as JSON.

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/invincible-jha/aumai-error-taxonomy/pkg/taxonomy"
)

// NewListCmd builds the list subcommand.
func NewListCmd(logger *zap.Logger) *cobra.Command {
	var (
		category     string
		outputJSON   bool
		registryFile string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all registered error codes",
		Long:  "List all registered error codes, optionally filtered by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			defs, err := collectDefinitions(registryFile)
			if err != nil {
				logTaxonomyError(logger, err, "Failed to load definitions")
				return err
			}
			if category != "" {
				cat, err := taxonomy.ParseCategory(category)
				if err != nil {
					return err
				}
				defs = filterByCategory(defs, cat)
			}

			if outputJSON {
				payload, err := json.MarshalIndent(defs, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(payload))
				return nil
			}

			if len(defs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No errors found for the given filter.")
				return nil
			}

			rows := [][]string{{"CODE", "CATEGORY", "SEVERITY", "RETRY", "NAME"}}
			for _, def := range defs {
				rows = append(rows, DefinitionRow(def))
			}
			Table(cmd.OutOrStdout(), rows)
			return nil
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "Filter by error category")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Output as JSON")
	cmd.Flags().StringVar(&registryFile, "registry-file", "", "YAML file with additional error definitions")

	return cmd
}

// collectDefinitions returns the built-in catalog, optionally merged with a
// custom definition file, sorted by ascending code. Custom definitions with
// an existing code replace the built-in entry.
func collectDefinitions(registryFile string) ([]taxonomy.AgentError, error) {
	if registryFile == "" {
		return taxonomy.All(), nil
	}

	custom, err := taxonomy.LoadDefinitionsFile(registryFile)
	if err != nil {
		return nil, err
	}
	reg := taxonomy.NewRegistry()
	for _, def := range taxonomy.All() {
		reg.Register(def)
	}
	for _, def := range custom {
		reg.Register(def)
	}

	defs := make([]taxonomy.AgentError, 0, reg.Len())
	for _, code := range reg.Codes() {
		def, _ := reg.Get(code)
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Code < defs[j].Code })
	return defs, nil
}

func filterByCategory(defs []taxonomy.AgentError, cat taxonomy.Category) []taxonomy.AgentError {
	var out []taxonomy.AgentError
	for _, def := range defs {
		if def.Category == cat {
			out = append(out, def)
		}
	}
	return out
}
