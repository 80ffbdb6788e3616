// internal/resolver/model/classifier.go
package model

import (
	"context"
	"time"

	"intent-resolver/internal/common/errors"
	"intent-resolver/internal/common/logger"
	"intent-resolver/internal/resolver/intent"
	"intent-resolver/pkg/catalog"
)

// Classifier asks the completion service to pick an operation for a
// query. Every failure mode is soft: a false return means "no model
// candidate", never an error the caller must handle.
type Classifier struct {
	completer Completer
	catalog   *catalog.Catalog
	logger    logger.Logger
}

func NewClassifier(completer Completer, cat *catalog.Catalog, log logger.Logger) *Classifier {
	return &Classifier{completer: completer, catalog: cat, logger: log}
}

func (c *Classifier) Classify(ctx context.Context, query string, anchor time.Time) (intent.Candidate, bool) {
	prompt := BuildPrompt(c.catalog, query, anchor)

	text, err := c.completer.Complete(ctx, prompt)
	if err != nil {
		c.logger.WithError(err).Debug("completion unavailable, skipping model classification", nil)
		return intent.Candidate{}, false
	}

	cand, ok := ParseResponse(text, c.catalog)
	if !ok {
		c.logger.WithError(errors.NewUnparseableResponseError(text)).Warn(
			"no parse strategy matched completion response", nil)
		return intent.Candidate{}, false
	}
	return cand, true
}
