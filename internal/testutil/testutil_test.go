package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestServeAndDecode(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"status":"made"}`))
	})

	rr := Serve(handler, http.MethodPost, "/things", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)

	var body map[string]string
	DecodeJSON(t, rr, &body)
	if body["status"] != "made" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestServeRequestForwardsHeaders(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(r.Header.Get("X-Custom")))
	})

	req := httptest.NewRequest(http.MethodGet, "/echo", nil)
	req.Header.Set("X-Custom", "value")
	rr := ServeRequest(handler, req)

	if rr.Body.String() != "value" {
		t.Fatalf("unexpected body %q", rr.Body.String())
	}
}

func TestNewBufferLogger(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello", "key", "val")

	if !strings.Contains(buf.String(), "hello") || !strings.Contains(buf.String(), "key=val") {
		t.Fatalf("unexpected log output %q", buf.String())
	}
}
