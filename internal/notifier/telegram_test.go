package notifier

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSendUnconfiguredSkips(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	for _, tg := range []*Telegram{
		NewTelegram("", "").WithBaseURL(srv.URL),
		NewTelegram("token", "").WithBaseURL(srv.URL),
		NewTelegram("", "42").WithBaseURL(srv.URL),
	} {
		if tg.Configured() {
			t.Errorf("notifier with missing credentials reports Configured")
		}
		if err := tg.Send(context.Background(), "привет"); err != nil {
			t.Errorf("unconfigured Send returned error: %v", err)
		}
	}
	if requests != 0 {
		t.Errorf("unconfigured notifier made %d requests, want 0", requests)
	}
}

func TestSendDeliversPayload(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tg := NewTelegram("123:abc", "42").WithBaseURL(srv.URL)
	if err := tg.Send(context.Background(), "📅 Новая запись!"); err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if gotPath != "/bot123:abc/sendMessage" {
		t.Errorf("path = %q, want /bot123:abc/sendMessage", gotPath)
	}
	if gotBody["chat_id"] != "42" || gotBody["text"] != "📅 Новая запись!" || gotBody["parse_mode"] != "HTML" {
		t.Errorf("unexpected payload: %v", gotBody)
	}
}

func TestSendNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	tg := NewTelegram("123:abc", "42").WithBaseURL(srv.URL)
	if err := tg.Send(context.Background(), "x"); err == nil {
		t.Errorf("Send should return an error on a non-2xx response")
	}
}

func TestSendNetworkFailureIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down immediately so the dial fails

	tg := NewTelegram("123:abc", "42").WithBaseURL(srv.URL)
	if err := tg.Send(context.Background(), "x"); err == nil {
		t.Errorf("Send should return an error when the endpoint is unreachable")
	}
}
