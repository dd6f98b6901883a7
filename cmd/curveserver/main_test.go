package main

import (
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gogpu/curvekit/internal/session"
)

func newTestServer(t *testing.T) (*httptest.Server, *session.Hub) {
	t.Helper()
	hub := session.NewHub(session.Options{Width: 120, Height: 80, Background: "#FFFFFF"}, 1,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	srv := httptest.NewServer(newRouter(hub, nil))
	t.Cleanup(srv.Close)
	return srv, hub
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := get(t, srv.URL+"/health")
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != `{"status":"ok"}` {
		t.Errorf("GET /health = %d %s", resp.StatusCode, body)
	}
}

func TestIndex(t *testing.T) {
	srv, _ := newTestServer(t)
	resp := get(t, srv.URL+"/")
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || !strings.Contains(string(body), "<canvas") {
		t.Errorf("GET / = %d, body without canvas", resp.StatusCode)
	}
}

func TestSnapshot(t *testing.T) {
	srv, hub := newTestServer(t)

	if resp := get(t, srv.URL+"/sessions/nope/snapshot.png"); resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown session status = %d, want 404", resp.StatusCode)
	}

	s := hub.Create()
	s.Handle(session.Message{Type: session.TypeSpawn, Kind: "circle"})

	resp := get(t, srv.URL+"/sessions/"+s.ID+"/snapshot.png")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q", ct)
	}
	img, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 80 {
		t.Errorf("snapshot bounds = %v, want 120x80", b)
	}
}
