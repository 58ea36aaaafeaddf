package log

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRedact(t *testing.T) {
	h := http.Header{}
	h.Set("Authorization", "Bearer moltbook_sk_secret")
	h.Set("Accept", "application/json")

	got := Redact(h)
	if got.Get("Authorization") != "[REDACTED]" {
		t.Errorf("Authorization = %q", got.Get("Authorization"))
	}
	if got.Get("Accept") != "application/json" {
		t.Errorf("Accept = %q", got.Get("Accept"))
	}
	if h.Get("Authorization") != "Bearer moltbook_sk_secret" {
		t.Error("Redact modified the original header")
	}
}

func TestTransportPassesThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer k" {
			t.Errorf("Authorization = %q", r.Header.Get("Authorization"))
		}
		w.WriteHeader(http.StatusTeapot)
	}))
	defer server.Close()

	client := &http.Client{Transport: Transport(nil)}
	req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
	req.Header.Set("Authorization", "Bearer k")
	resp, err := client.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusTeapot {
		t.Errorf("status = %d", resp.StatusCode)
	}
}
