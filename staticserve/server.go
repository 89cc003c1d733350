// Package staticserve runs a CORS-enabled static-file HTTP server for local
// dashboards and report viewers. Every response carries permissive CORS
// headers and Cache-Control: no-cache so a browser-side UI always sees fresh
// artifacts; preflight OPTIONS requests are answered directly with 204.
package staticserve

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
)

// ErrPortInUse reports that the listen port is already taken, so callers can
// suggest picking another port instead of surfacing a raw socket error.
var ErrPortInUse = errors.New("staticserve: port already in use")

const shutdownGrace = 5 * time.Second

// Server serves the files under Dir over HTTP.
type Server struct {
	Host        string // bind address, defaults to 0.0.0.0
	Port        int    // listen port, defaults to 8000
	Dir         string // directory to serve, defaults to .
	OpenBrowser bool   // open the local URL in the default browser after start
}

// New returns a Server with the standard defaults applied.
func New(host string, port int, dir string) *Server {
	s := &Server{Host: host, Port: port, Dir: dir}
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8000
	}
	if s.Dir == "" {
		s.Dir = "."
	}
	return s
}

// Start listens and serves until ctx is canceled, then shuts down
// gracefully. It returns ErrPortInUse when the port is taken and nil on a
// clean shutdown.
func (s *Server) Start(ctx context.Context) error {
	addr := net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		if errors.Is(err, syscall.EADDRINUSE) {
			return fmt.Errorf("%w: %s", ErrPortInUse, addr)
		}
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	srv := &http.Server{Handler: s.handler()}

	stop := context.AfterFunc(ctx, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("server shutdown")
		}
	})
	defer stop()

	localURL := fmt.Sprintf("http://localhost:%d", s.Port)
	log.Info().Str("addr", addr).Str("dir", s.Dir).Str("url", localURL).Msg("static server running")

	if s.OpenBrowser {
		go func() {
			// Give the listener a moment before pointing a browser at it.
			time.Sleep(time.Second)
			if err := browser.OpenURL(localURL); err != nil {
				log.Warn().Err(err).Msg("open browser")
			}
		}()
	}

	err = srv.Serve(ln)
	if errors.Is(err, http.ErrServerClosed) {
		log.Info().Msg("static server stopped")
		return nil
	}
	return err
}

// handler builds the middleware chain: access logging wraps CORS wraps the
// file server.
func (s *Server) handler() http.Handler {
	files := http.FileServer(http.Dir(s.Dir))
	return withAccessLog(withCORS(files))
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		h.Set("Cache-Control", "no-cache")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for the access log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func withAccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r)

		log.Info().
			Str("request_id", uuid.NewString()).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Str("remote", r.RemoteAddr).
			Msg("request")
	})
}
