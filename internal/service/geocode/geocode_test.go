package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolve(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reverse" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"display_name":"12 MG Road, Bengaluru"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	got := client.Resolve(context.Background(), 12.9716, 77.5946)
	if got != "12 MG Road, Bengaluru" {
		t.Fatalf("expected resolved address, got %q", got)
	}
}

func TestResolveFallsBackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)

	if got := client.Resolve(context.Background(), 0, 0); got != Unavailable {
		t.Fatalf("expected sentinel on server error, got %q", got)
	}
}

func TestResolveFallsBackOnEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	if got := client.Resolve(context.Background(), 0, 0); got != Unavailable {
		t.Fatalf("expected sentinel on empty display name, got %q", got)
	}
}

func TestResolveFallsBackOnUnreachableHost(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")

	if got := client.Resolve(context.Background(), 0, 0); got != Unavailable {
		t.Fatalf("expected sentinel on connection failure, got %q", got)
	}
}
