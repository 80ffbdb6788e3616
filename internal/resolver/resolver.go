// Package resolver turns a Vietnamese business question into a single
// validated operation call from the analytics catalog. It runs the
// model and pattern classifiers, reconciles their candidates, and
// applies catalog validation before handing the call back.
package resolver

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"intent-resolver/internal/common/errors"
	"intent-resolver/internal/common/logger"
	"intent-resolver/internal/common/metrics"
	"intent-resolver/internal/common/observability"
	"intent-resolver/internal/resolver/intent"
	"intent-resolver/internal/resolver/validate"
	"intent-resolver/pkg/catalog"
)

// ModelClassifier is the completion-backed classification path.
type ModelClassifier interface {
	Classify(ctx context.Context, query string, anchor time.Time) (intent.Candidate, bool)
}

// PatternClassifier is the deterministic keyword/regex path.
type PatternClassifier interface {
	Classify(query string) (intent.Candidate, bool)
}

type Resolver struct {
	catalog        *catalog.Catalog
	model          ModelClassifier
	pattern        PatternClassifier
	reconciler     *Reconciler
	validator      *validate.Validator
	minQueryLength int
	logger         logger.Logger
	obs            *observability.Observability
}

// Options carries the optional facade dependencies. Observability may
// be nil; metrics still go to the process-wide prometheus registry.
type Options struct {
	Logger        logger.Logger
	Observability *observability.Observability
}

func New(cat *catalog.Catalog, mc ModelClassifier, pc PatternClassifier, rec *Reconciler, val *validate.Validator, minQueryLength int, opts Options) *Resolver {
	log := opts.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Resolver{
		catalog:        cat,
		model:          mc,
		pattern:        pc,
		reconciler:     rec,
		validator:      val,
		minQueryLength: minQueryLength,
		logger:         log,
		obs:            opts.Observability,
	}
}

// Resolve answers a query with a ResolutionResult. It never returns a
// Go error: failures are reported through Status, Error and ErrorCode
// so the caller always has a structured outcome to act on.
func (r *Resolver) Resolve(ctx context.Context, query string, anchor time.Time) ResolutionResult {
	start := time.Now()
	requestID := uuid.NewString()
	log := r.logger.WithFields(map[string]interface{}{"request_id": requestID})

	result := r.resolve(ctx, log, query, anchor)
	result.RequestID = requestID

	elapsed := time.Since(start)
	metrics.ResolutionDuration.WithLabelValues(result.Status).Observe(elapsed.Seconds())
	if result.Status == StatusReady {
		metrics.QueriesResolved.WithLabelValues(result.Method).Inc()
	} else {
		metrics.QueriesFailed.WithLabelValues(result.ErrorCode).Inc()
	}
	if r.obs != nil {
		r.obs.RecordResolution(ctx, result.Status, result.Method)
		r.obs.RecordResolutionDuration(ctx, elapsed, result.Status)
	}

	if result.Status == StatusReady {
		log.Info("query resolved", map[string]interface{}{
			"operation": result.Operation,
			"method":    result.Method,
			"duration":  elapsed.String(),
		})
	} else {
		log.Warn("query rejected", map[string]interface{}{
			"error_code": result.ErrorCode,
			"error":      result.Error,
		})
	}
	return result
}

func (r *Resolver) resolve(ctx context.Context, log logger.Logger, query string, anchor time.Time) ResolutionResult {
	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < r.minQueryLength {
		return errorResult(errors.NewQueryTooShortError(trimmed))
	}

	modelCand, modelOK := r.model.Classify(ctx, trimmed, anchor)
	patternCand, patternOK := r.pattern.Classify(trimmed)

	cand, method, ok := r.reconciler.Reconcile(trimmed, modelCand, modelOK, patternCand, patternOK)
	if !ok {
		return errorResult(errors.NewResolutionFailedError(trimmed))
	}
	log.Debug("candidates reconciled", map[string]interface{}{
		"operation": cand.Operation,
		"method":    method,
	})

	params, warnings, err := r.validator.Apply(cand.Operation, cand.Parameters)
	if err != nil {
		return errorResult(err)
	}

	op, _ := r.catalog.Get(cand.Operation)
	return ResolutionResult{
		Operation:   cand.Operation,
		Parameters:  params,
		Description: op.Description,
		Status:      StatusReady,
		Method:      method,
		Warnings:    warnings,
	}
}

func errorResult(err error) ResolutionResult {
	return ResolutionResult{
		Status:    StatusError,
		Error:     err.Error(),
		ErrorCode: string(errors.Code(err)),
	}
}
