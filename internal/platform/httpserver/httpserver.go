// Package httpserver builds the *http.Server the API listens with.
package httpserver

import (
	"net/http"
	"time"
)

const (
	readHeaderTimeout = 5 * time.Second
	// A classification request is four numbers; anything slower than this is a
	// stalled client.
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 60 * time.Second
)

// New returns a server for handler on addr with bounded read, write and idle
// timeouts. The caller owns ListenAndServe and Shutdown.
func New(addr string, handler http.Handler) *http.Server {
	srv := &http.Server{Addr: addr, Handler: handler}
	srv.ReadHeaderTimeout = readHeaderTimeout
	srv.ReadTimeout = readTimeout
	srv.WriteTimeout = writeTimeout
	srv.IdleTimeout = idleTimeout
	return srv
}
