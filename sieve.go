// Package sieve is a small HTTP/1.1 server whose heart is a streaming,
// byte-at-a-time request parser. The parser core turns raw socket bytes
// into an immutable request head; everything around it is thin glue.
package sieve

import (
	"fmt"
	"net"

	"github.com/sieve-web/sieve/config"
	"github.com/sieve-web/sieve/http"
	"github.com/sieve-web/sieve/internal/server"
	"github.com/sieve-web/sieve/transport"
)

// App wires the transport, the parser and a user handler together.
type App struct {
	addr      string
	cfg       *config.Config
	onRequest http.Handler
	tcp       *transport.TCP
}

// New returns a new App instance listening on addr once served.
func New(addr string) *App {
	return &App{
		addr:      addr,
		cfg:       config.Default(),
		onRequest: respondOK,
		tcp:       transport.NewTCP(),
	}
}

// Tune replaces the default config.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// OnRequest sets the handler invoked for every successfully parsed request.
func (a *App) OnRequest(handler http.Handler) *App {
	a.onRequest = handler
	return a
}

// Serve binds the listener and runs the accept loop until Stop is called.
func (a *App) Serve() error {
	if err := a.tcp.Bind(a.addr); err != nil {
		return err
	}
	defer a.tcp.Close()

	srv := server.New(a.cfg, a.onRequest)

	return a.tcp.Listen(a.cfg.NET, func(conn net.Conn) {
		srv.ServeConn(conn)
	})
}

// Stop interrupts the accept loop and waits for in-flight connections.
func (a *App) Stop() {
	a.tcp.Stop()
	a.tcp.Wait()
}

func respondOK(request *http.Request) http.Response {
	return http.NewResponse().
		WithBody(fmt.Sprintf("<h1>Success</h1><p>Requested %s</p>", request.Target))
}
