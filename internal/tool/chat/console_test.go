package chat

import (
	"context"
	"strings"
	"testing"
	"time"

	provider "github.com/Cyclone1070/cassette/internal/provider/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const greeting = "MOTHER SYSTEM ONLINE. WAITING FOR INPUT..."

func newTestConsole(r Responder) Console {
	return NewConsole(context.Background(), "mount-1", r, Options{Greeting: greeting})
}

func typeText(c Console, text string) Console {
	for _, r := range text {
		c, _ = c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return c
}

func submit(t *testing.T, c Console, text string) (Console, ResponseMsg) {
	t.Helper()
	c = typeText(c, text)
	c, cmd := c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.True(t, c.Pending())

	// the batch holds the request and the spinner tick; find the reply
	batch, ok := cmd().(tea.BatchMsg)
	require.True(t, ok)
	for _, sub := range batch {
		if sub == nil {
			continue
		}
		if resp, ok := sub().(ResponseMsg); ok {
			return c, resp
		}
	}
	t.Fatal("no ResponseMsg in batch")
	return c, ResponseMsg{}
}

func TestConsole_SuccessAppendsUserAndAssistant(t *testing.T) {
	c := newTestConsole(ResponderFunc(func(ctx context.Context, prompt string) Reply {
		return TextReply("ECHO: " + prompt)
	}))

	c, resp := submit(t, c, "status")
	assert.Equal(t, "mount-1", resp.MountID)
	c, _ = c.Update(resp)

	msgs := c.Transcript().Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, Message{Role: RoleUser, Text: "status"}, msgs[1])
	assert.Equal(t, Message{Role: RoleAssistant, Text: "ECHO: status"}, msgs[2])
	assert.False(t, c.Pending())
}

func TestConsole_FailureAppendsOneErrorEntry(t *testing.T) {
	c := newTestConsole(NewUnavailableResponder(provider.ErrMissingAPIKey, nil))

	c, resp := submit(t, c, "status")
	c, _ = c.Update(resp)

	msgs := c.Transcript().Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, RoleUser, msgs[1].Role)
	assert.Equal(t, RoleAssistant, msgs[2].Role)
	assert.True(t, msgs[2].Failed)
	assert.True(t, strings.HasPrefix(msgs[2].Text, FailurePrefix))
}

func TestConsole_FailedFlagComesFromReply(t *testing.T) {
	banner := FailurePrefix + " (QUOTED BY THE MODEL)"
	c := newTestConsole(ResponderFunc(func(ctx context.Context, prompt string) Reply {
		return TextReply(banner)
	}))

	c, resp := submit(t, c, "status")
	c, _ = c.Update(resp)

	last := c.Transcript().Messages()[2]
	assert.Equal(t, banner, last.Text)
	assert.False(t, last.Failed)
}

func TestConsole_IgnoresEmptyInput(t *testing.T) {
	c := newTestConsole(ResponderFunc(func(ctx context.Context, prompt string) Reply {
		t.Fatal("responder must not be called")
		return Reply{}
	}))

	c = typeText(c, "   ")
	c, cmd := c.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, c.Pending())
	assert.Equal(t, 1, c.Transcript().Len())
}

func TestConsole_RejectsSubmitWhilePending(t *testing.T) {
	c := newTestConsole(ResponderFunc(func(ctx context.Context, prompt string) Reply {
		return TextReply("ok")
	}))

	c, _ = submit(t, c, "first")
	c = typeText(c, "second")
	c, cmd := c.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.Equal(t, 2, c.Transcript().Len())
	assert.Contains(t, c.View(), PendingIndicator)
}

func TestConsole_DropsResponseForOtherMount(t *testing.T) {
	c := newTestConsole(ResponderFunc(func(ctx context.Context, prompt string) Reply {
		return TextReply("ok")
	}))

	c, _ = submit(t, c, "first")
	c, _ = c.Update(ResponseMsg{MountID: "mount-0", Reply: TextReply("stale")})

	assert.True(t, c.Pending())
	assert.Equal(t, 2, c.Transcript().Len())
}

func TestConsole_CloseCancelsRequest(t *testing.T) {
	defer goleak.VerifyNone(t)

	p := &mockProvider{GenerateFunc: func(ctx context.Context, req *provider.GenerateRequest) (*provider.GenerateResponse, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}}
	c := newTestConsole(NewProviderResponder(p, "", time.Minute, nil))
	c = typeText(c, "hang")
	c, cmd := c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	batch := cmd().(tea.BatchMsg)

	done := make(chan tea.Msg, len(batch))
	for _, sub := range batch {
		if sub == nil {
			continue
		}
		go func(sub tea.Cmd) { done <- sub() }(sub)
	}

	c.Close()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case msg := <-done:
			if resp, ok := msg.(ResponseMsg); ok {
				assert.True(t, resp.Reply.Failed)
				return
			}
		case <-deadline:
			t.Fatal("request did not return after Close")
		}
	}
}

func TestFormatTranscript_FallsBackToPlainText(t *testing.T) {
	tr := NewTranscript(greeting)
	tr.Append(Message{Role: RoleUser, Text: "status"})

	out := FormatTranscript(tr, 80, nil)

	assert.Contains(t, out, ">> MOTHER")
	assert.Contains(t, out, ">> OPERATOR")
	assert.Contains(t, out, greeting)
	assert.Contains(t, out, "status")
}
