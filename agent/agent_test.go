package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/convoy-ai/convoy/core"
	"github.com/convoy-ai/convoy/model"
)

// Interface compliance (compile-time assertions)
var (
	_ core.Agent = (*LLMAgent)(nil)
	_ core.Agent = (*FuncAgent)(nil)
)

func TestBaseAgent_Defaults(t *testing.T) {
	b := NewBaseAgent("billing")
	assert.Equal(t, "billing", b.Name())
	assert.Equal(t, "Agent billing", b.Description())

	b.SetDescription("Handles billing questions")
	assert.Equal(t, "Handles billing questions", b.Description())
}

func TestFuncAgent_Invoke(t *testing.T) {
	var gotTask, gotThread string
	a := NewFuncAgent("lookup", "Looks things up", func(ctx context.Context, task, threadID string) (string, error) {
		gotTask, gotThread = task, threadID
		return "found it", nil
	})

	assert.Equal(t, "Looks things up", a.Description())

	text, err := a.Invoke(context.Background(), "find x", "t1")
	require.NoError(t, err)
	assert.Equal(t, "found it", text)
	assert.Equal(t, "find x", gotTask)
	assert.Equal(t, "t1", gotThread)
}

func TestFuncAgent_InvokeErrorIsAgentError(t *testing.T) {
	cause := errors.New("lookup failed")
	a := NewFuncAgent("lookup", "", func(ctx context.Context, task, threadID string) (string, error) {
		return "", cause
	})

	_, err := a.Invoke(context.Background(), "find x", "t1")
	require.Error(t, err)
	var ae *core.AgentError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "lookup", ae.Agent)
	assert.ErrorIs(t, err, cause)
}

func TestFuncAgent_InvokeStreamSingleChunk(t *testing.T) {
	a := NewFuncAgent("lookup", "", func(ctx context.Context, task, threadID string) (string, error) {
		return "whole answer", nil
	})

	chunks, errs := a.InvokeStream(context.Background(), "find x", "t1")

	var got []string
	for chunk := range chunks {
		got = append(got, chunk)
	}
	require.NoError(t, <-errs)
	assert.Equal(t, []string{"whole answer"}, got)
}

func TestLLMAgent_Invoke(t *testing.T) {
	m := model.NewMockModel("m")
	m.AddResponse("what is 2+2?", "4")

	a := NewLLMAgent("math", m, func(o *LLMAgentOptions) {
		o.Description = "Does arithmetic"
		o.SystemPrompt = "You are a calculator."
	})

	assert.Equal(t, "Does arithmetic", a.Description())

	text, err := a.Invoke(context.Background(), "what is 2+2?", "t1")
	require.NoError(t, err)
	assert.Equal(t, "4", text)
}

func TestLLMAgent_StreamEquivalence(t *testing.T) {
	m := model.NewMockModel("m")
	m.AddResponse("tell me a story", "once upon a time")

	a := NewLLMAgent("teller", m)

	blocking, err := a.Invoke(context.Background(), "tell me a story", "t1")
	require.NoError(t, err)

	chunks, errs := a.InvokeStream(context.Background(), "tell me a story", "t1")
	var sb strings.Builder
	for chunk := range chunks {
		sb.WriteString(chunk)
	}
	require.NoError(t, <-errs)
	assert.Equal(t, blocking, sb.String())
}

func TestLLMAgent_DefaultDescription(t *testing.T) {
	a := NewLLMAgent("plain", model.NewMockModel("m"))
	assert.Equal(t, "Agent plain", a.Description())
}
