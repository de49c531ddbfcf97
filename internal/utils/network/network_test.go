package network

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCheckURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if err := CheckURL(srv.URL + "/simple/"); err != nil {
		t.Errorf("expected reachable URL, got %v", err)
	}
	if err := CheckURL(srv.URL + "/missing"); err == nil {
		t.Error("expected error for 404 response")
	}
}

func TestCheckURLFallsBackToGET(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Some indexes reject HEAD outright.
		if r.Method == http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	if err := CheckURL(srv.URL); err != nil {
		t.Errorf("expected GET fallback to succeed, got %v", err)
	}
}

func TestCheckURLUnreachable(t *testing.T) {
	if err := CheckURL("http://127.0.0.1:1/"); err == nil {
		t.Error("expected error for unreachable host")
	}
}
