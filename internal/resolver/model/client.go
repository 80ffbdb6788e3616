// internal/resolver/model/client.go
package model

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"intent-resolver/internal/common/config"
	"intent-resolver/internal/common/errors"
	"intent-resolver/internal/common/httpx"
	"intent-resolver/internal/common/logger"
	"intent-resolver/internal/common/metrics"
)

// Completer is the completion-service surface the classifier needs.
// Tests substitute a canned implementation.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Client calls an Ollama-style /api/generate endpoint. A circuit
// breaker sheds calls while the service is failing and a rate limiter
// caps request volume; both convert to soft failures so the resolver
// falls back to pattern matching instead of erroring.
type Client struct {
	cfg     config.CompletionConfig
	http    *httpx.Client
	breaker *gobreaker.CircuitBreaker
	limiter *rate.Limiter
	logger  logger.Logger
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64  `json:"temperature"`
	TopP        float64  `json:"top_p"`
	NumPredict  int      `json:"num_predict"`
	Stop        []string `json:"stop,omitempty"`
}

type generateResponse struct {
	Response string `json:"response"`
}

func NewClient(cfg config.CompletionConfig, log logger.Logger) *Client {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "completion-service",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("completion breaker state change", map[string]interface{}{
				"from": from.String(),
				"to":   to.String(),
			})
		},
	})

	return &Client{
		cfg:     cfg,
		http:    httpx.NewClient(cfg.GetTimeout()),
		breaker: breaker,
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSec), cfg.RateBurst),
		logger:  log,
	}
}

// Complete sends one prompt and returns the raw generated text. A
// single attempt is made per call; every failure comes back as a soft
// CompletionServiceUnavailable error.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.GetTimeout())
	defer cancel()

	if err := c.limiter.Wait(ctx); err != nil {
		metrics.CompletionRequests.WithLabelValues("timeout").Inc()
		return "", errors.NewCompletionUnavailableError(err)
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		var out generateResponse
		err := c.http.PostJSON(ctx, c.cfg.BaseURL+"/api/generate", generateRequest{
			Model:  c.cfg.Model,
			Prompt: prompt,
			Stream: false,
			Options: generateOptions{
				Temperature: c.cfg.Temperature,
				TopP:        0.9,
				NumPredict:  c.cfg.MaxTokens,
				Stop:        c.cfg.Stop,
			},
		}, &out)
		if err != nil {
			return nil, err
		}
		return out.Response, nil
	})
	if err != nil {
		outcome := "error"
		if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
			outcome = "breaker_open"
		} else if ctx.Err() != nil {
			outcome = "timeout"
		}
		metrics.CompletionRequests.WithLabelValues(outcome).Inc()
		c.logger.WithError(err).Warn("completion call failed", map[string]interface{}{
			"model": c.cfg.Model,
		})
		return "", errors.NewCompletionUnavailableError(err)
	}

	text, _ := result.(string)
	if text == "" {
		metrics.CompletionRequests.WithLabelValues("error").Inc()
		return "", errors.NewCompletionUnavailableError(fmt.Errorf("empty completion response"))
	}
	metrics.CompletionRequests.WithLabelValues("ok").Inc()
	return text, nil
}
