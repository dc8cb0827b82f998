// Package events publishes taxonomy lifecycle events so other agents and
// services can react to classifications and lookups as they happen.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"
)

// Subjects emitted by the taxonomy service.
const (
	SubjectClassified         = "error.classified"
	SubjectLookedUp           = "error.looked_up"
	SubjectLookupFailed       = "error.lookup_failed"
	SubjectOccurrenceRecorded = "error.occurrence_recorded"
)

// Event is the JSON payload published on taxonomy subjects. Only the fields
// relevant to a given subject are populated.
type Event struct {
	ErrorCode    int    `json:"error_code"`
	ErrorName    string `json:"error_name,omitempty"`
	Category     string `json:"category,omitempty"`
	Severity     string `json:"severity,omitempty"`
	Retryable    bool   `json:"retryable"`
	AgentID      string `json:"agent_id,omitempty"`
	Context      string `json:"context,omitempty"`
	OccurrenceID string `json:"occurrence_id,omitempty"`
}

// Publisher delivers taxonomy events to interested subscribers.
type Publisher interface {
	Publish(ctx context.Context, subject string, event Event) error
	Close()
}

// NopPublisher discards all events. Used when no event transport is
// configured; the taxonomy works fully offline.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, Event) error { return nil }
func (NopPublisher) Close()                                       {}

// NATSPublisher publishes events to a NATS server.
type NATSPublisher struct {
	conn *nats.Conn
}

// ConnectNATS connects to the NATS server at url and returns a publisher
// over that connection.
func ConnectNATS(url string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS at %s: %w", url, err)
	}
	return &NATSPublisher{conn: conn}, nil
}

// Publish marshals event as JSON and publishes it on subject.
func (p *NATSPublisher) Publish(_ context.Context, subject string, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := p.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

// Close drains and closes the underlying connection.
func (p *NATSPublisher) Close() {
	if p.conn != nil {
		p.conn.Close()
	}
}
