package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type SiteParams struct {
	// html served at /archive, if unspecified it will 404
	ArchiveHTML string
	// raw bodies served at /raw/<id>, ids not present will 404
	RawPastes map[string]string
	// status to serve for ids listed in BrokenPastes instead of a body
	BrokenPastes map[string]int
}

// Site spins up an in-process HTTP server shaped like the paste site's
// public surface: an archive listing page and per-paste raw endpoints.
func Site(t testing.TB, params SiteParams) *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/archive", func(w http.ResponseWriter, r *http.Request) {
		if params.ArchiveHTML == "" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(params.ArchiveHTML))
	})

	mux.HandleFunc("/raw/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/raw/")

		if status, ok := params.BrokenPastes[id]; ok {
			http.Error(w, http.StatusText(status), status)
			return
		}
		body, ok := params.RawPastes[id]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(body))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}
