package capture

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchPlaylist(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/radio/playlist.m3u8" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("#EXTM3U\nmedia_001_20240101T0000.aac\n"))
	}))
	defer srv.Close()

	f := NewFetcher(nil)
	raw, err := f.FetchPlaylist(context.Background(), srv.URL+"/radio/playlist.m3u8")
	if err != nil {
		t.Fatalf("FetchPlaylist: %v", err)
	}
	if !strings.Contains(raw, "media_001_20240101T0000.aac") {
		t.Errorf("unexpected playlist body: %q", raw)
	}
}

func TestFetchPlaylist_http_error(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewFetcher(nil)
	if _, err := f.FetchPlaylist(context.Background(), srv.URL); err == nil {
		t.Error("expected error on HTTP 500")
	}
}

func TestFetchSegment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/radio/media_001_20240101T0005.aac" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("AUDIOBYTES"))
	}))
	defer srv.Close()

	f := NewFetcher(nil)
	data, err := f.FetchSegment(context.Background(), srv.URL+"/radio/", "media_001_20240101T0005.aac")
	if err != nil {
		t.Fatalf("FetchSegment: %v", err)
	}
	if string(data) != "AUDIOBYTES" {
		t.Errorf("segment body = %q", data)
	}
}

func TestFetchSegment_not_found(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	f := NewFetcher(nil)
	if _, err := f.FetchSegment(context.Background(), srv.URL+"/", "missing.aac"); err == nil {
		t.Error("expected error on HTTP 404")
	}
}

func TestBaseURL(t *testing.T) {
	got, err := BaseURL("http://example.com/radio/live/playlist.m3u8")
	if err != nil {
		t.Fatalf("BaseURL: %v", err)
	}
	if got != "http://example.com/radio/live/" {
		t.Errorf("BaseURL = %q", got)
	}
}

func TestBaseURL_root_path(t *testing.T) {
	got, err := BaseURL("https://example.com/playlist.m3u8")
	if err != nil {
		t.Fatalf("BaseURL: %v", err)
	}
	if got != "https://example.com/" {
		t.Errorf("BaseURL = %q", got)
	}
}

func TestBaseURL_no_path(t *testing.T) {
	got, err := BaseURL("https://example.com")
	if err != nil {
		t.Fatalf("BaseURL: %v", err)
	}
	if got != "https://example.com/" {
		t.Errorf("BaseURL = %q", got)
	}
}
