package cli

// This file implements the "record" command: persist an error occurrence in
// the local SQLite store, optionally publishing it to a NATS subject.

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/invincible-jha/aumai-error-taxonomy/internal/events"
	"github.com/invincible-jha/aumai-error-taxonomy/internal/service"
	"github.com/invincible-jha/aumai-error-taxonomy/internal/store"
	"github.com/invincible-jha/aumai-error-taxonomy/pkg/taxonomy"
)

const defaultDBPath = "errors.db"

// NewRecordCmd builds the record subcommand.
func NewRecordCmd(logger *zap.Logger) *cobra.Command {
	var (
		agentID    string
		contextMsg string
		dbPath     string
		natsURL    string
	)

	cmd := &cobra.Command{
		Use:   "record CODE",
		Short: "Record an error occurrence in the local store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("code must be an integer, got %q", args[0])
			}
			def, err := taxonomy.Lookup(code)
			if err != nil {
				logTaxonomyError(logger, err, "Record lookup failed")
				return err
			}

			st, err := store.Open(dbPath)
			if err != nil {
				return err
			}
			defer st.Close()

			var publisher events.Publisher = events.NopPublisher{}
			if natsURL != "" {
				np, err := events.ConnectNATS(natsURL)
				if err != nil {
					return fmt.Errorf("connect to NATS: %w", err)
				}
				defer np.Close()
				publisher = np
			}

			svc := service.New(logger, publisher, service.NewMetrics(prometheus.NewRegistry())).WithStore(st)
			id, err := svc.RecordOccurrence(cmd.Context(), def, agentID, contextMsg)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded occurrence %s of [%d] %s\n", id, def.Code, def.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&agentID, "agent", "", "Agent identifier that produced the error")
	cmd.Flags().StringVar(&contextMsg, "context", "", "Free-form context for the occurrence")
	cmd.Flags().StringVar(&dbPath, "db", defaultDBPath, "Path to the occurrence database")
	cmd.Flags().StringVar(&natsURL, "nats", "", "NATS server URL for event publication")

	return cmd
}
