package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetch(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("0123456789"))
	}))
	defer server.Close()

	data, err := Fetch(context.Background(), server.URL, FetchOptions{})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(data) != "0123456789" {
		t.Errorf("Fetch() = %q", data)
	}
	if !strings.HasPrefix(gotUserAgent, UserAgentName+"/") {
		t.Errorf("User-Agent = %q, want prefix %q", gotUserAgent, UserAgentName+"/")
	}
}

func TestFetchMaxBytes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("0123456789"))
	}))
	defer server.Close()

	if _, err := Fetch(context.Background(), server.URL, FetchOptions{MaxBytes: 10}); err != nil {
		t.Errorf("Fetch() at the limit error = %v", err)
	}
	if _, err := Fetch(context.Background(), server.URL, FetchOptions{MaxBytes: 9}); err == nil {
		t.Error("Fetch() expected error above the limit")
	}
}

func TestFetchStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer server.Close()

	_, err := Fetch(context.Background(), server.URL, FetchOptions{})
	if err == nil || !strings.Contains(err.Error(), "418") {
		t.Errorf("Fetch() error = %v, want HTTP 418", err)
	}
}
