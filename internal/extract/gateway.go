package extract

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/haysc/careerscan/internal/types"
)

// Default retry policy for service calls. The base delay doubles after each
// failed attempt.
const (
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = time.Second
)

// Extractor is the boundary to the language-understanding service. Any
// implementation can swap in (a fake for testing, a different provider)
// without touching the pipeline.
type Extractor interface {
	// Extract sends document text with a category hint and returns the
	// structured career records the service found.
	Extract(ctx context.Context, text string, hint types.DocumentCategory) (*types.Extraction, error)
}

// ContentClient generates a raw structured reply for a prompt. It is the
// transport seam under the Gateway; GeminiClient is the production
// implementation.
type ContentClient interface {
	GenerateJSON(ctx context.Context, prompt string) (string, error)
	Close() error
}

// Gateway implements Extractor with retry, backoff, and response parsing
// around a ContentClient.
type Gateway struct {
	client      ContentClient
	maxAttempts int
	baseDelay   time.Duration
	log         *slog.Logger
}

// GatewayOption customizes a Gateway.
type GatewayOption func(*Gateway)

// WithRetryPolicy overrides the attempt cap and backoff base delay.
func WithRetryPolicy(maxAttempts int, baseDelay time.Duration) GatewayOption {
	return func(g *Gateway) {
		if maxAttempts > 0 {
			g.maxAttempts = maxAttempts
		}
		g.baseDelay = baseDelay
	}
}

// WithLogger sets the gateway's logger.
func WithLogger(log *slog.Logger) GatewayOption {
	return func(g *Gateway) {
		g.log = log
	}
}

// NewGateway creates a Gateway around a content client.
func NewGateway(client ContentClient, opts ...GatewayOption) *Gateway {
	g := &Gateway{
		client:      client,
		maxAttempts: DefaultMaxAttempts,
		baseDelay:   DefaultBaseDelay,
		log:         slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Close releases the underlying client.
func (g *Gateway) Close() error {
	return g.client.Close()
}

// Extract sends the document text to the service and parses the reply.
//
// Transport and service-level failures are retried up to the attempt cap with
// exponential backoff; the final attempt's failure is surfaced. Schema
// violations in the reply are not retried. Empty text after whitespace
// normalization fails locally without a service call.
func (g *Gateway) Extract(ctx context.Context, text string, hint types.DocumentCategory) (*types.Extraction, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyDocument
	}

	prompt := BuildExtractionPrompt(text, hint)

	var lastErr error
	delay := g.baseDelay
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		raw, err := g.client.GenerateJSON(ctx, prompt)
		if err == nil {
			return ParseResponse(raw)
		}
		lastErr = err
		g.log.Warn("extraction service call failed",
			"attempt", attempt, "max_attempts", g.maxAttempts, "error", err)

		if attempt == g.maxAttempts {
			break
		}
		if err := sleep(ctx, delay); err != nil {
			return nil, err
		}
		delay *= 2
	}

	return nil, &ServiceError{Attempts: g.maxAttempts, Cause: lastErr}
}

// sleep waits for d or until the context is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
