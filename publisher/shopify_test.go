package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"sneakerblog/types"
)

type capturedArticle struct {
	Article struct {
		Title     string `json:"title"`
		Author    string `json:"author"`
		Tags      string `json:"tags"`
		BodyHTML  string `json:"body_html"`
		Published bool   `json:"published"`
	} `json:"article"`
}

func TestPublishSendsOneArticle(t *testing.T) {
	var calls int32
	var got capturedArticle

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if r.URL.Path != "/admin/api/2024-10/blogs/42/articles.json" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if tok := r.Header.Get("X-Shopify-Access-Token"); tok != "shpat_test" {
			t.Errorf("token header = %q", tok)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"article":{"id":9001,"blog_id":42,"handle":"bred-4","title":"Bred 4"}}`))
	}))
	defer srv.Close()

	p := New(StaticSessionStore{Shop: srv.URL, AccessToken: "shpat_test"}, Options{
		BlogID:     "42",
		Author:     "Sneaker Desk",
		HTTPClient: srv.Client(),
	})

	req := types.PublishRequest{
		Title:   "Bred 4",
		Content: "<p>It's back & better.</p>",
		Image:   "https://cdn.example.com/bred4.jpg?w=800&h=600",
	}
	article, err := p.Publish(context.Background(), req)
	if err != nil {
		t.Fatalf("Publish error: %v", err)
	}

	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Fatalf("storefront called %d times; want 1", n)
	}
	if article.ID != 9001 || article.BlogID != 42 {
		t.Fatalf("article = %+v", article)
	}
	if !got.Article.Published {
		t.Errorf("published flag not set")
	}
	if got.Article.Tags != "Sneakers, Sneaker News, Streetwear" {
		t.Errorf("tags = %q", got.Article.Tags)
	}
	if got.Article.Author != "Sneaker Desk" {
		t.Errorf("author = %q", got.Article.Author)
	}
	if !strings.Contains(got.Article.BodyHTML, `src="`+req.Image+`"`) {
		t.Errorf("body does not embed image verbatim: %s", got.Article.BodyHTML)
	}
	if !strings.Contains(got.Article.BodyHTML, req.Content) {
		t.Errorf("body does not embed content verbatim: %s", got.Article.BodyHTML)
	}
	if got.Article.BodyHTML != RenderBody(req.Image, req.Title, req.Content) {
		t.Errorf("body does not match fixed template: %s", got.Article.BodyHTML)
	}
}

func TestPublishFailureStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errors":"Not Found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	p := New(StaticSessionStore{Shop: srv.URL, AccessToken: "tok"}, Options{BlogID: "1", HTTPClient: srv.Client()})
	_, err := p.Publish(context.Background(), types.PublishRequest{Title: "t", Content: "c"})
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Fatalf("err = %v; want 404 error", err)
	}
}

func TestPublishWithoutSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("storefront must not be called without a session")
	}))
	defer srv.Close()

	p := New(StaticSessionStore{Shop: srv.URL}, Options{BlogID: "1", HTTPClient: srv.Client()})
	_, err := p.Publish(context.Background(), types.PublishRequest{Title: "t", Content: "c"})
	if !errors.Is(err, ErrNoSession) {
		t.Fatalf("err = %v; want ErrNoSession", err)
	}
}

func TestPublishRequiresBlogID(t *testing.T) {
	p := New(StaticSessionStore{Shop: "x.myshopify.com", AccessToken: "tok"}, Options{})
	if _, err := p.Publish(context.Background(), types.PublishRequest{Title: "t", Content: "c"}); err == nil {
		t.Fatalf("expected error without blog id")
	}
}

func TestShopBaseURL(t *testing.T) {
	cases := map[string]string{
		"kicks.myshopify.com":    "https://kicks.myshopify.com",
		" kicks.myshopify.com/ ": "https://kicks.myshopify.com",
		"http://127.0.0.1:8080":  "http://127.0.0.1:8080",
		"https://kicks.example/": "https://kicks.example",
	}
	for in, want := range cases {
		if got := shopBaseURL(in); got != want {
			t.Errorf("shopBaseURL(%q) = %q; want %q", in, got, want)
		}
	}
}
