package coach

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/handwave/catchball/internal/config"
)

func TestTipFromEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Model != "test-model" {
			t.Errorf("model = %q, expected test-model", req.Model)
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Errorf("messages = %+v", req.Messages)
		}

		json.NewEncoder(w).Encode(chatResponse{Choices: []struct {
			Message chatMessage `json:"message"`
		}{{Message: chatMessage{Role: "assistant", Content: "Nice throws!"}}}})
	}))
	defer srv.Close()

	c := New(config.CoachConfig{
		Endpoint:  srv.URL,
		Model:     "test-model",
		TimeoutMS: 1000,
	}, nil)

	tip := c.Tip(context.Background(), Summary{Score: 50, Throws: 5})
	if tip != "Nice throws!" {
		t.Errorf("tip = %q, expected endpoint content", tip)
	}
}

func TestTipFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(config.CoachConfig{Endpoint: srv.URL, Model: "m", TimeoutMS: 1000}, nil)

	tip := c.Tip(context.Background(), Summary{Score: 30})
	if tip == "" {
		t.Fatal("fallback tip must not be empty")
	}
}

func TestTipFallsBackOnTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := New(config.CoachConfig{Endpoint: srv.URL, Model: "m", TimeoutMS: 10}, nil)

	tip := c.Tip(context.Background(), Summary{})
	if tip == "" {
		t.Fatal("fallback tip must not be empty")
	}
}

func TestTipWithoutEndpoint(t *testing.T) {
	c := New(config.CoachConfig{}, nil)

	// Deterministic: the same summary always yields the same tip
	a := c.Tip(context.Background(), Summary{Score: 20, Drops: 1})
	b := c.Tip(context.Background(), Summary{Score: 20, Drops: 1})
	if a == "" || a != b {
		t.Errorf("fallback tips = %q / %q, expected stable non-empty", a, b)
	}
}
