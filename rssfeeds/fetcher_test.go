package rssfeeds

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:media="http://search.yahoo.com/mrss/" xmlns:content="http://purl.org/rss/1.0/modules/content/">
<channel>
  <title>Kicks</title>
  <link>https://kicks.example.com</link>
  <description>test</description>
  <item>
    <title> Nike Air Max 1 "Big Bubble" Returns </title>
    <link>https://kicks.example.com/air-max-1</link>
    <description>Short summary</description>
    <content:encoded><![CDATA[<p><img src="https://img.example.com/am1.jpg"/></p>]]></content:encoded>
    <guid>am1</guid>
    <pubDate>Mon, 06 Jan 2025 10:00:00 +0000</pubDate>
    <enclosure url="https://img.example.com/am1-enc.jpg" type="image/jpeg" length="1234"/>
  </item>
  <item>
    <title>adidas Samba Restock</title>
    <link>https://kicks.example.com/samba</link>
    <description>Another</description>
    <media:content url="https://img.example.com/samba.jpg" medium="image"/>
  </item>
</channel>
</rss>`

func TestFeedParserParsesRSS(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	p := NewFeedParser(srv.Client(), "test-agent")
	items, err := p.Parse(context.Background(), Source{Name: "Kicks", URL: srv.URL, Kind: KindRSS})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items; want 2", len(items))
	}

	first := items[0]
	if first.Title != `Nike Air Max 1 "Big Bubble" Returns` {
		t.Errorf("title not trimmed: %q", first.Title)
	}
	if first.ID != "am1" || first.Source != "Kicks" {
		t.Errorf("unexpected id/source: %q/%q", first.ID, first.Source)
	}
	if len(first.Enclosures) != 1 || first.Enclosures[0].URL != "https://img.example.com/am1-enc.jpg" {
		t.Errorf("enclosure not mapped: %+v", first.Enclosures)
	}
	if first.Content == "" || first.Summary != "Short summary" {
		t.Errorf("content/summary not mapped: %q / %q", first.Content, first.Summary)
	}
	if first.PublishedAt.IsZero() {
		t.Errorf("published date not parsed")
	}

	second := items[1]
	if second.MediaURL != "https://img.example.com/samba.jpg" {
		t.Errorf("media url = %q", second.MediaURL)
	}
	if second.ID == "" {
		t.Errorf("expected generated id for item without guid")
	}
}

func TestFeedParserScrapesHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != "test-agent" {
			t.Errorf("User-Agent = %q", ua)
		}
		w.Write([]byte(`<html><body>
			<h2 class="post-title"><a href="/jordan-4">Air Jordan 4 Release Date</a></h2>
			<h2 class="post-title"><a href="https://other.example.com/dunk">  Nike Dunk Low  </a></h2>
			<h2 class="post-title"><a href="/empty"> </a></h2>
		</body></html>`))
	}))
	defer srv.Close()

	p := NewFeedParser(srv.Client(), "test-agent")
	items, err := p.Parse(context.Background(), Source{Name: "SN", URL: srv.URL + "/", Kind: KindHTML})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items; want 2", len(items))
	}
	if items[0].Link != srv.URL+"/jordan-4" {
		t.Errorf("relative link not resolved: %q", items[0].Link)
	}
	if items[1].Title != "Nike Dunk Low" || items[1].Link != "https://other.example.com/dunk" {
		t.Errorf("unexpected second item: %+v", items[1])
	}
}

func TestFeedParserReportsHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewFeedParser(srv.Client(), "")
	for _, kind := range []Kind{KindRSS, KindHTML} {
		if _, err := p.Parse(context.Background(), Source{Name: "bad", URL: srv.URL, Kind: kind}); err == nil {
			t.Errorf("kind %s: expected error", kind)
		}
	}
	if _, err := p.Parse(context.Background(), Source{Name: "x", URL: srv.URL, Kind: "ftp"}); err == nil {
		t.Errorf("expected error for unknown kind")
	}
}
