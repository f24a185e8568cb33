package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func contentServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/text", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"text": "LOREM IPSUM"}`))
	})
	mux.HandleFunc("/text-empty", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"text": ""}`))
	})
	mux.HandleFunc("/tabs", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"tab1": {"editable": false, "body": "plain"},
			"tab2": {"editable": true,  "body": ["a", "b"]},
			"tab3": {"editable": false, "body": {"text": "obj"}}
		}`))
	})
	mux.HandleFunc("/tabs-bad", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"tab1": {"editable": "no", "body": "x"}}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_FetchText(t *testing.T) {
	srv := contentServer(t)
	client := NewClient(srv.URL)

	resp, err := client.FetchText(context.Background(), "/text")
	if err != nil {
		t.Fatalf("FetchText failed: %v", err)
	}
	if resp.Text != "LOREM IPSUM" {
		t.Errorf("expected LOREM IPSUM, got %q", resp.Text)
	}
}

func TestClient_FetchTextValidatesShape(t *testing.T) {
	srv := contentServer(t)
	client := NewClient(srv.URL)

	_, err := client.FetchText(context.Background(), "/text-empty")
	if err == nil {
		t.Fatal("expected validation error for empty text")
	}
	if !strings.Contains(err.Error(), "invalid text response") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestClient_FetchTabs(t *testing.T) {
	srv := contentServer(t)
	client := NewClient(srv.URL, WithHTTPClient(srv.Client()))

	tabs, err := client.FetchTabs(context.Background(), "/tabs")
	if err != nil {
		t.Fatalf("FetchTabs failed: %v", err)
	}
	if len(tabs) != 3 {
		t.Fatalf("expected 3 tabs, got %d", len(tabs))
	}

	if _, ok := tabs["tab1"].Body.(StringBody); !ok {
		t.Errorf("expected tab1 StringBody, got %T", tabs["tab1"].Body)
	}
	if _, ok := tabs["tab2"].Body.(ListBody); !ok {
		t.Errorf("expected tab2 ListBody, got %T", tabs["tab2"].Body)
	}
	if _, ok := tabs["tab3"].Body.(ObjectBody); !ok {
		t.Errorf("expected tab3 ObjectBody, got %T", tabs["tab3"].Body)
	}
}

func TestClient_FetchTabsPropagatesViolations(t *testing.T) {
	srv := contentServer(t)
	client := NewClient(srv.URL)

	_, err := client.FetchTabs(context.Background(), "/tabs-bad")
	if err == nil {
		t.Fatal("expected contract violation")
	}
}

func TestClient_UnexpectedStatus(t *testing.T) {
	srv := contentServer(t)
	client := NewClient(srv.URL)

	_, err := client.FetchText(context.Background(), "/missing")
	if err == nil {
		t.Fatal("expected error for 404")
	}
	if !strings.Contains(err.Error(), "unexpected status") {
		t.Errorf("unexpected error %v", err)
	}
}
