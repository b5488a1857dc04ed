package chat

import (
	"context"
	"errors"
	"testing"
	"time"

	provider "github.com/Cyclone1070/cassette/internal/provider/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type mockProvider struct {
	GenerateFunc func(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error)
	model        string
}

func (m *mockProvider) Generate(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
	return m.GenerateFunc(ctx, req)
}

func (m *mockProvider) GetModel() string {
	return m.model
}

func TestProviderResponder_ReturnsText(t *testing.T) {
	var got *provider.GenerateRequest
	p := &mockProvider{model: "m", GenerateFunc: func(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
		got = req
		return &provider.GenerateResponse{Text: "ALL SYSTEMS NOMINAL"}, nil
	}}
	r := NewProviderResponder(p, "You are MOTHER.", time.Second, nil)

	reply := r.Respond(context.Background(), "status")

	assert.Equal(t, Reply{Text: "ALL SYSTEMS NOMINAL"}, reply)
	require.NotNil(t, got)
	assert.Equal(t, "status", got.Prompt)
	assert.Equal(t, "You are MOTHER.", got.SystemInstruction)
	assert.Nil(t, got.Temperature)
}

func TestProviderResponder_SendsTemperature(t *testing.T) {
	var got *provider.GenerateRequest
	p := &mockProvider{GenerateFunc: func(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
		got = req
		return &provider.GenerateResponse{Text: "ok"}, nil
	}}
	temp := float32(0.2)

	NewProviderResponder(p, "", 0, nil).WithTemperature(&temp).Respond(context.Background(), "x")

	require.NotNil(t, got)
	require.NotNil(t, got.Temperature)
	assert.Equal(t, float32(0.2), *got.Temperature)
}

func TestProviderResponder_BannerTextFromModelIsNotAFailure(t *testing.T) {
	text := FailurePrefix + " JUST KIDDING."
	p := &mockProvider{GenerateFunc: func(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
		return &provider.GenerateResponse{Text: text}, nil
	}}

	reply := NewProviderResponder(p, "", 0, nil).Respond(context.Background(), "x")

	assert.Equal(t, Reply{Text: text}, reply)
}

func TestProviderResponder_EmptyText(t *testing.T) {
	p := &mockProvider{GenerateFunc: func(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
		return &provider.GenerateResponse{Text: "  \n"}, nil
	}}

	assert.Equal(t, Reply{Text: NoDataReply}, NewProviderResponder(p, "", 0, nil).Respond(context.Background(), "x"))
}

func TestProviderResponder_EmptyResponseError(t *testing.T) {
	p := &mockProvider{GenerateFunc: func(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
		return nil, &provider.ProviderError{Code: provider.ErrorCodeEmptyResponse, Message: "no candidates"}
	}}

	assert.Equal(t, Reply{Text: NoDataReply}, NewProviderResponder(p, "", 0, nil).Respond(context.Background(), "x"))
}

func TestProviderResponder_Failure(t *testing.T) {
	p := &mockProvider{GenerateFunc: func(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
		return nil, errors.New("dial tcp: connection refused")
	}}

	reply := NewProviderResponder(p, "", 0, nil).Respond(context.Background(), "x")

	assert.True(t, reply.Failed)
	assert.Equal(t, "CRITICAL ERROR: CONNECTION FAILED.\nDETAILS: dial tcp: connection refused", reply.Text)
}

func TestProviderResponder_LogsRetryAfter(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	after := 30 * time.Second
	p := &mockProvider{model: "m", GenerateFunc: func(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
		return nil, &provider.ProviderError{
			Code:       provider.ErrorCodeRateLimit,
			Message:    "quota exceeded",
			Retryable:  true,
			RetryAfter: &after,
		}
	}}

	reply := NewProviderResponder(p, "", 0, zap.New(core)).Respond(context.Background(), "x")

	assert.True(t, reply.Failed)
	entries := logs.FilterMessage("chat request failed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, after, fields["retry_after"])
	assert.Equal(t, true, fields["retryable"])
}

func TestProviderResponder_AppliesTimeout(t *testing.T) {
	p := &mockProvider{GenerateFunc: func(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
		deadline, ok := ctx.Deadline()
		assert.True(t, ok)
		assert.WithinDuration(t, time.Now().Add(5*time.Second), deadline, time.Second)
		return &provider.GenerateResponse{Text: "ok"}, nil
	}}

	assert.Equal(t, Reply{Text: "ok"}, NewProviderResponder(p, "", 5*time.Second, nil).Respond(context.Background(), "x"))
}

func TestUnavailableResponder_ReportsSetupError(t *testing.T) {
	r := NewUnavailableResponder(nil, nil)

	reply := r.Respond(context.Background(), "hello")

	assert.True(t, reply.Failed)
	assert.Contains(t, reply.Text, provider.ErrMissingAPIKey.Error())
}

func TestFailureReply(t *testing.T) {
	reply := FailureReply(errors.New("x"))

	assert.True(t, reply.Failed)
	assert.Equal(t, FailurePrefix+"\nDETAILS: x", reply.Text)
	assert.False(t, TextReply(NoDataReply).Failed)
}
