package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDetectNgrokURL(t *testing.T) {
	t.Run("Prefers the https tunnel", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"tunnels": [
				{"public_url": "http://abc.ngrok.io", "proto": "http"},
				{"public_url": "https://abc.ngrok.io", "proto": "https"}
			]}`))
		}))
		defer srv.Close()

		url, err := detectNgrokURL(context.Background(), srv.URL)
		if err != nil {
			t.Fatalf("detectNgrokURL: %v", err)
		}
		if url != "https://abc.ngrok.io" {
			t.Errorf("expected the https tunnel, got %q", url)
		}
	})

	t.Run("Falls back to any tunnel", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"tunnels": [{"public_url": "http://abc.ngrok.io", "proto": "http"}]}`))
		}))
		defer srv.Close()

		url, err := detectNgrokURL(context.Background(), srv.URL)
		if err != nil {
			t.Fatalf("detectNgrokURL: %v", err)
		}
		if url != "http://abc.ngrok.io" {
			t.Errorf("expected the http tunnel, got %q", url)
		}
	})

	t.Run("Broken response body surfaces the decode error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{broken`))
		}))
		defer srv.Close()

		if _, err := detectNgrokURL(context.Background(), srv.URL); err == nil {
			t.Fatal("expected a decode error")
		}
	})
}
