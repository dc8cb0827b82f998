// Package service wraps the taxonomy core with the operational concerns a
// running deployment needs: structured logging, request counters, event
// publication, and optional occurrence persistence.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/invincible-jha/aumai-error-taxonomy/internal/events"
	"github.com/invincible-jha/aumai-error-taxonomy/internal/store"
	"github.com/invincible-jha/aumai-error-taxonomy/pkg/taxonomy"
)

// Service is an instrumented front to the built-in registry and classifier.
// All core semantics are unchanged; the service only adds observability.
type Service struct {
	logger    *zap.Logger
	publisher events.Publisher
	metrics   *Metrics
	store     *store.Store
}

// New builds a Service. publisher and metrics are required; pass
// events.NopPublisher when no event transport is configured.
func New(logger *zap.Logger, publisher events.Publisher, metrics *Metrics) *Service {
	return &Service{
		logger:    logger,
		publisher: publisher,
		metrics:   metrics,
	}
}

// WithStore attaches an occurrence store, enabling RecordOccurrence.
func (s *Service) WithStore(st *store.Store) *Service {
	s.store = st
	return s
}

// Lookup resolves code in the built-in registry, counting the request and
// publishing a looked_up or lookup_failed event.
func (s *Service) Lookup(ctx context.Context, code int) (taxonomy.AgentError, error) {
	s.metrics.Lookups.Inc()
	def, err := taxonomy.Lookup(code)
	if err != nil {
		s.metrics.LookupFailures.Inc()
		s.publish(ctx, events.SubjectLookupFailed, events.Event{ErrorCode: code})
		return taxonomy.AgentError{}, err
	}
	s.publish(ctx, events.SubjectLookedUp, events.Event{
		ErrorCode: def.Code,
		ErrorName: def.Name,
		Category:  string(def.Category),
	})
	return def, nil
}

// Classify maps fault to its catalog definition and publishes a classified
// event. Like the underlying classifier it is total and never fails.
func (s *Service) Classify(ctx context.Context, fault error) taxonomy.AgentError {
	s.metrics.Classifications.Inc()
	def := taxonomy.Classify(fault)
	s.logger.Debug("classified fault",
		zap.NamedError("fault", fault),
		zap.Int("code", def.Code),
		zap.String("name", def.Name))
	s.publish(ctx, events.SubjectClassified, events.Event{
		ErrorCode: def.Code,
		ErrorName: def.Name,
		Category:  string(def.Category),
		Severity:  string(def.Severity),
		Retryable: def.Retryable,
	})
	return def
}

// ErrorsByCategory returns the built-in definitions in category, sorted by
// ascending code.
func (s *Service) ErrorsByCategory(category taxonomy.Category) []taxonomy.AgentError {
	return taxonomy.ErrorsByCategory(category)
}

// All returns every built-in definition sorted by code.
func (s *Service) All() []taxonomy.AgentError {
	return taxonomy.All()
}

// Size returns the number of built-in codes.
func (s *Service) Size() int {
	return taxonomy.Builtin().Len()
}

// Healthy reports whether the registry is populated.
func (s *Service) Healthy() bool {
	return taxonomy.Builtin().Len() > 0
}

// RecordOccurrence persists an occurrence of def and publishes an
// occurrence_recorded event. Requires a store attached via WithStore.
func (s *Service) RecordOccurrence(ctx context.Context, def taxonomy.AgentError, agentID, contextMsg string) (string, error) {
	id, err := s.store.RecordError(ctx, def, agentID, contextMsg)
	if err != nil {
		return "", err
	}
	s.metrics.Occurrences.Inc()
	s.publish(ctx, events.SubjectOccurrenceRecorded, events.Event{
		ErrorCode:    def.Code,
		AgentID:      agentID,
		OccurrenceID: id,
	})
	return id, nil
}

// publish delivers an event, logging delivery failures instead of failing
// the operation: event publication is best-effort by contract.
func (s *Service) publish(ctx context.Context, subject string, event events.Event) {
	if err := s.publisher.Publish(ctx, subject, event); err != nil {
		s.logger.Warn("event publication failed",
			zap.String("subject", subject),
			zap.Int("code", event.ErrorCode),
			zap.Error(err))
	}
}
