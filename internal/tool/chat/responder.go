package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	provider "github.com/Cyclone1070/cassette/internal/provider/models"
	"go.uber.org/zap"
)

const (
	// FailurePrefix starts every reply that reports a failed request.
	FailurePrefix = "CRITICAL ERROR: CONNECTION FAILED."
	// NoDataReply is returned when the model answers with empty text.
	NoDataReply = "ERR: NO DATA RECEIVED."
)

// Reply is the answer to one prompt. Failed is set when the request itself
// failed and Text describes the error.
type Reply struct {
	Text   string
	Failed bool
}

// Responder answers a prompt. It never fails: errors are reported as a failed Reply.
type Responder interface {
	Respond(ctx context.Context, prompt string) Reply
}

// ResponderFunc adapts a function to the Responder interface.
type ResponderFunc func(ctx context.Context, prompt string) Reply

// Respond calls f.
func (f ResponderFunc) Respond(ctx context.Context, prompt string) Reply {
	return f(ctx, prompt)
}

// TextReply is a successful reply carrying text.
func TextReply(text string) Reply {
	return Reply{Text: text}
}

// FailureReply formats err the way the console displays connection failures.
func FailureReply(err error) Reply {
	return Reply{
		Text:   fmt.Sprintf("%s\nDETAILS: %v", FailurePrefix, err),
		Failed: true,
	}
}

// ProviderResponder answers prompts through a provider.
type ProviderResponder struct {
	provider          provider.Provider
	systemInstruction string
	temperature       *float32
	timeout           time.Duration
	setupErr          error
	logger            *zap.Logger
}

// NewProviderResponder creates a responder that sends prompts to p with the given
// system instruction. A zero timeout leaves the caller's context untouched.
func NewProviderResponder(p provider.Provider, systemInstruction string, timeout time.Duration, logger *zap.Logger) *ProviderResponder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProviderResponder{
		provider:          p,
		systemInstruction: systemInstruction,
		timeout:           timeout,
		logger:            logger,
	}
}

// WithTemperature sets the sampling temperature sent with every request.
// Nil keeps the model default.
func (r *ProviderResponder) WithTemperature(t *float32) *ProviderResponder {
	r.temperature = t
	return r
}

// NewUnavailableResponder creates a responder whose every reply reports err.
// It is used when the provider could not be set up, e.g. without an API key.
func NewUnavailableResponder(err error, logger *zap.Logger) *ProviderResponder {
	if err == nil {
		err = provider.ErrMissingAPIKey
	}
	r := NewProviderResponder(nil, "", 0, logger)
	r.setupErr = err
	return r
}

// Respond sends prompt to the provider and returns its reply.
func (r *ProviderResponder) Respond(ctx context.Context, prompt string) Reply {
	if r.setupErr != nil || r.provider == nil {
		err := r.setupErr
		if err == nil {
			err = provider.ErrMissingAPIKey
		}
		r.logger.Warn("chat provider unavailable", zap.Error(err))
		return FailureReply(err)
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := r.provider.Generate(ctx, &provider.GenerateRequest{
		Prompt:            prompt,
		SystemInstruction: r.systemInstruction,
		Temperature:       r.temperature,
	})
	if err != nil {
		if errors.Is(err, provider.ErrEmptyResponse) {
			return TextReply(NoDataReply)
		}
		fields := []zap.Field{
			zap.String("model", r.provider.GetModel()),
			zap.Bool("retryable", provider.IsRetryable(err)),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		}
		if after := provider.GetRetryAfter(err); after != nil {
			fields = append(fields, zap.Duration("retry_after", *after))
		}
		r.logger.Error("chat request failed", fields...)
		return FailureReply(err)
	}

	r.logger.Debug("chat request completed",
		zap.String("model", resp.Metadata.ModelUsed),
		zap.Int("total_tokens", resp.Metadata.TotalTokens),
		zap.Duration("elapsed", time.Since(start)),
	)

	if strings.TrimSpace(resp.Text) == "" {
		return TextReply(NoDataReply)
	}
	return TextReply(resp.Text)
}
