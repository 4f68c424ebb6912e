// ABOUTME: Answer poller resolves a generated answer for a dispatched query
// ABOUTME: Bounded attempts and wall-clock timeout; always returns a safe answer value

package answer

import (
	"context"
	"strings"
	"time"

	"searchpage-api/core/domain"
	"searchpage-api/core/interfaces"
)

const (
	// fallbackUnavailable is returned when every attempt was consumed
	// without a complete answer.
	fallbackUnavailable = "I couldn't generate a response for this query at this time. Please try again later."

	// fallbackTimeout is returned when the overall timeout fired first.
	fallbackTimeout = "I couldn't generate a response for this query within the time limit. Please try a simpler query or try again later."
)

// Options controls the polling loop bounds.
type Options struct {
	// MaxAttempts is the number of provider calls before giving up.
	MaxAttempts int

	// Interval is the fixed pause between attempts. No backoff.
	Interval time.Duration

	// OverallTimeout is the wall-clock bound on the whole resolution,
	// enforced by cancelling the in-flight request.
	OverallTimeout time.Duration
}

// DefaultOptions returns the production polling bounds.
func DefaultOptions() Options {
	return Options{
		MaxAttempts:    10,
		Interval:       2 * time.Second,
		OverallTimeout: 10 * time.Second,
	}
}

// Poller resolves generated answers by repeatedly asking the generative-text
// provider until an answer is ready or a bound is hit.
type Poller struct {
	provider interfaces.AnswerProvider
	resolver interfaces.CorrelationResolver
	logger   interfaces.Logger
	opts     Options
}

// NewPoller creates a poller. resolver may be nil, in which case the
// correlation identifier is used as the query text directly.
func NewPoller(provider interfaces.AnswerProvider, resolver interfaces.CorrelationResolver, logger interfaces.Logger, opts Options) *Poller {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = DefaultOptions().MaxAttempts
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultOptions().Interval
	}
	if opts.OverallTimeout <= 0 {
		opts.OverallTimeout = DefaultOptions().OverallTimeout
	}

	return &Poller{
		provider: provider,
		resolver: resolver,
		logger:   logger,
		opts:     opts,
	}
}

// Resolve polls the provider until a complete answer arrives, attempts are
// exhausted, or the overall timeout fires — whichever comes first. It never
// returns an error: failures degrade to a failed answer carrying a fixed
// user-safe fallback string.
func (p *Poller) Resolve(ctx context.Context, correlationID string) domain.GeneratedAnswer {
	query := correlationID
	if p.resolver != nil {
		query = p.resolver.Lookup(correlationID)
	}

	ctx, cancel := context.WithTimeout(ctx, p.opts.OverallTimeout)
	defer cancel()

	for attempt := 1; attempt <= p.opts.MaxAttempts; attempt++ {
		completion, err := p.provider.Generate(ctx, query)

		switch {
		case err != nil && ctx.Err() != nil:
			// The overall timeout cancelled the in-flight request.
			p.logWarn("Answer resolution timed out", correlationID, attempt, ctx.Err())
			return domain.GeneratedAnswer{Text: fallbackTimeout, Status: domain.AnswerFailed}

		case err != nil:
			// A single attempt's failure is swallowed; it consumes the
			// attempt but does not abort the loop.
			p.logWarn("Answer attempt failed", correlationID, attempt, err)

		case completion != nil && completion.Complete && strings.TrimSpace(completion.Text) != "":
			return domain.GeneratedAnswer{Text: completion.Text, Status: domain.AnswerReady}
		}

		if attempt == p.opts.MaxAttempts {
			break
		}

		select {
		case <-time.After(p.opts.Interval):
		case <-ctx.Done():
			p.logWarn("Answer resolution timed out", correlationID, attempt, ctx.Err())
			return domain.GeneratedAnswer{Text: fallbackTimeout, Status: domain.AnswerFailed}
		}
	}

	return domain.GeneratedAnswer{Text: fallbackUnavailable, Status: domain.AnswerFailed}
}

func (p *Poller) logWarn(msg, correlationID string, attempt int, err error) {
	if p.logger == nil {
		return
	}
	fields := map[string]interface{}{
		"search_id": correlationID,
		"attempt":   attempt,
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	p.logger.Warn(msg, fields)
}
