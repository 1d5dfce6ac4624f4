// Package server is the glue between a raw connection and the parser core:
// it feeds socket bytes in, hands the completed request to the user handler
// and writes whatever comes back. One request per connection, then close.
package server

import (
	"log"
	"net"
	"time"

	"github.com/sieve-web/sieve/config"
	"github.com/sieve-web/sieve/http"
	"github.com/sieve-web/sieve/http/status"
	"github.com/sieve-web/sieve/internal/cursor"
	"github.com/sieve-web/sieve/internal/parser/http1"
)

type Server struct {
	cfg       *config.Config
	onRequest http.Handler
}

func New(cfg *config.Config, onRequest http.Handler) *Server {
	return &Server{
		cfg:       cfg,
		onRequest: onRequest,
	}
}

// ServeConn parses a single request head off conn and replies. Timeouts
// are enforced here through the socket read deadline; the parser itself
// just sees the stream end. Closing conn is left to the caller.
func (s *Server) ServeConn(conn net.Conn) {
	if s.cfg.NET.ReadTimeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(s.cfg.NET.ReadTimeout)); err != nil {
			return
		}
	}

	builder := http.NewBuilder()
	cur := cursor.NewSized(conn, s.cfg.NET.ReadBufferSize)

	if err := http1.Parse(cur, builder); err != nil {
		s.respondError(conn, err)
		return
	}

	request, err := builder.Build()
	if err != nil {
		// both parses succeeded, so all mandatory fields must be in place
		log.Printf("sieve: serve: %s", err)
		s.write(conn, http.NewResponse().WithError(err))
		return
	}

	s.write(conn, s.onRequest(request))
}

func (s *Server) respondError(conn net.Conn, err error) {
	code, ok := status.ResponseCode(err)
	if !ok {
		// the stream died mid-grammar, there is nobody left to reply to
		return
	}

	s.write(conn, http.NewResponse().WithCode(code).WithBody(err.Error()))
}

func (s *Server) write(conn net.Conn, resp http.Response) {
	if _, err := conn.Write(Serialize(nil, resp)); err != nil {
		log.Printf("sieve: write response: %s", err)
	}
}
