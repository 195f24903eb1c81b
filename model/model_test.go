package model

import (
	"context"
	"strings"
	"testing"
)

// Interface compliance (compile-time assertion)
var _ Model = (*MockModel)(nil)

func TestComplete_DrainsFinalResponse(t *testing.T) {
	m := NewMockModel("m")
	m.AddResponse("ping", "pong")

	text, err := Complete(context.Background(), m, "system", "ping")
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if text != "pong" {
		t.Fatalf("expected %q, got %q", "pong", text)
	}
}

func TestComplete_CanceledContext(t *testing.T) {
	m := NewMockModel("m")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Complete(ctx, m, "", "anything"); err == nil {
		t.Fatalf("expected error on canceled context")
	}
}

func TestMockModel_StreamingChunksConcatenate(t *testing.T) {
	m := NewMockModel("m")
	m.AddResponse("story", "once upon a time")

	respCh, errCh := m.Generate(context.Background(), Request{Prompt: "story", Stream: true})

	var sb strings.Builder
	var final string
	for resp := range respCh {
		if resp.Partial {
			sb.WriteString(resp.Text)
		} else {
			final = resp.Text
			if resp.FinishReason != "stop" {
				t.Fatalf("expected stop finish reason, got %q", resp.FinishReason)
			}
		}
	}
	if err := <-errCh; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sb.String() != final {
		t.Fatalf("streamed text %q must equal final text %q", sb.String(), final)
	}
}

func TestMockModel_DefaultResponse(t *testing.T) {
	m := NewMockModel("m")
	m.DefaultResponse = "fallback"

	text, err := Complete(context.Background(), m, "", "unknown prompt")
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if text != "fallback" {
		t.Fatalf("expected fallback response, got %q", text)
	}
}

func TestMockModel_Info(t *testing.T) {
	m := NewMockModel("test-model")
	info := m.Info()
	if info.Name != "test-model" || info.Provider != "mock" {
		t.Fatalf("unexpected info: %#v", info)
	}
}
