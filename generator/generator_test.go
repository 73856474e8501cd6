package generator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sneakerblog/config"
	"sneakerblog/types"
)

func TestBuildPrompt(t *testing.T) {
	item := types.FeedItem{
		Title:   "  Air Jordan 4 \"Bred\" Returns ",
		Summary: "<p>The <b>Bred</b>\n  colorway is back.</p>",
		Link:    "https://example.com/aj4",
	}
	prompt := BuildPrompt(item)

	for _, want := range []string{
		"in the tone of complex.com",
		`Title: Air Jordan 4 "Bred" Returns`,
		"Summary: The Bred colorway is back.",
		"URL: https://example.com/aj4",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestNewSelectsProvider(t *testing.T) {
	cases := []struct {
		name    string
		cfg     config.Config
		wantErr bool
		want    string
	}{
		{"openai default", config.Config{OpenAIKey: "k"}, false, "*generator.OpenAI"},
		{"openai missing key", config.Config{AIProvider: "openai"}, true, ""},
		{"cohere", config.Config{AIProvider: "cohere", CohereKey: "k"}, false, "*generator.Cohere"},
		{"cohere missing key", config.Config{AIProvider: "cohere"}, true, ""},
		{"unknown", config.Config{AIProvider: "llama"}, true, ""},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g, err := New(c.cfg, nil)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("New error: %v", err)
			}
			switch g.(type) {
			case *OpenAI:
				if c.want != "*generator.OpenAI" {
					t.Fatalf("got OpenAI; want %s", c.want)
				}
			case *Cohere:
				if c.want != "*generator.Cohere" {
					t.Fatalf("got Cohere; want %s", c.want)
				}
			default:
				t.Fatalf("unexpected generator %T", g)
			}
		})
	}
}

func newOpenAIServer(t *testing.T, status int, body string, check func(req map[string]interface{})) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		var req map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if check != nil {
			check(req)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestOpenAIGenerateReturnsCompletionVerbatim(t *testing.T) {
	const completion = "  The Bred 4 is back, and it hits different.\n"
	respBody, _ := json.Marshal(map[string]interface{}{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1,
		"model":   "gpt-4",
		"choices": []map[string]interface{}{
			{"index": 0, "finish_reason": "stop", "message": map[string]string{"role": "assistant", "content": completion}},
		},
	})

	srv := newOpenAIServer(t, http.StatusOK, string(respBody), func(req map[string]interface{}) {
		if req["model"] != "gpt-4" {
			t.Errorf("model = %v", req["model"])
		}
		if req["max_tokens"] != float64(500) {
			t.Errorf("max_tokens = %v", req["max_tokens"])
		}
		msgs, _ := req["messages"].([]interface{})
		if len(msgs) != 1 {
			t.Fatalf("messages = %v", req["messages"])
		}
		content, _ := msgs[0].(map[string]interface{})["content"].(string)
		if !strings.Contains(content, "Title: Bred 4") {
			t.Errorf("prompt does not embed title: %q", content)
		}
	})
	defer srv.Close()

	g := NewOpenAI("test-key", "", srv.URL+"/v1", 0, srv.Client())
	got, err := g.Generate(context.Background(), types.FeedItem{Title: "Bred 4"})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if got != completion {
		t.Fatalf("Generate = %q; want verbatim %q", got, completion)
	}
}

func TestOpenAIGeneratePropagatesErrors(t *testing.T) {
	srv := newOpenAIServer(t, http.StatusInternalServerError,
		`{"error":{"message":"upstream exploded","type":"server_error"}}`, nil)
	defer srv.Close()

	g := NewOpenAI("test-key", "gpt-4", srv.URL+"/v1", 100, srv.Client())
	if _, err := g.Generate(context.Background(), types.FeedItem{Title: "x"}); err == nil {
		t.Fatalf("expected error from failed completion")
	}
}

func TestOpenAIGenerateEmptyChoices(t *testing.T) {
	srv := newOpenAIServer(t, http.StatusOK,
		`{"id":"x","object":"chat.completion","created":1,"model":"gpt-4","choices":[]}`, nil)
	defer srv.Close()

	g := NewOpenAI("test-key", "gpt-4", srv.URL+"/v1", 100, srv.Client())
	_, err := g.Generate(context.Background(), types.FeedItem{Title: "x"})
	if !errors.Is(err, ErrEmptyCompletion) {
		t.Fatalf("err = %v; want ErrEmptyCompletion", err)
	}
}

func newCohereServer(t *testing.T, status int, body string, check func(req map[string]interface{})) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		var req map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if check != nil {
			check(req)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestCohereGenerateReturnsTextVerbatim(t *testing.T) {
	srv := newCohereServer(t, http.StatusOK, `{"text":"  The Samba keeps winning.\n","generation_id":"g1"}`,
		func(req map[string]interface{}) {
			if req["model"] != "command-r" {
				t.Errorf("model = %v", req["model"])
			}
			if req["max_tokens"] != float64(500) {
				t.Errorf("max_tokens = %v", req["max_tokens"])
			}
			msg, _ := req["message"].(string)
			if !strings.Contains(msg, "Title: adidas Samba") {
				t.Errorf("prompt does not embed title: %q", msg)
			}
		})
	defer srv.Close()

	g := NewCohere("test-key", "", srv.URL, 0, srv.Client())
	got, err := g.Generate(context.Background(), types.FeedItem{Title: "adidas Samba"})
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if got != "  The Samba keeps winning.\n" {
		t.Fatalf("Generate = %q; want verbatim text", got)
	}
}

func TestCohereGeneratePropagatesErrors(t *testing.T) {
	srv := newCohereServer(t, http.StatusBadRequest, `{"message":"invalid request"}`, nil)
	defer srv.Close()

	g := NewCohere("test-key", "command-r", srv.URL, 100, srv.Client())
	if _, err := g.Generate(context.Background(), types.FeedItem{Title: "x"}); err == nil {
		t.Fatalf("expected error from failed chat")
	}
}

func TestCohereGenerateEmptyText(t *testing.T) {
	srv := newCohereServer(t, http.StatusOK, `{"text":"","generation_id":"g1"}`, nil)
	defer srv.Close()

	g := NewCohere("test-key", "command-r", srv.URL, 100, srv.Client())
	_, err := g.Generate(context.Background(), types.FeedItem{Title: "x"})
	if !errors.Is(err, ErrEmptyCompletion) {
		t.Fatalf("err = %v; want ErrEmptyCompletion", err)
	}
}
