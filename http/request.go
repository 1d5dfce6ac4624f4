package http

import (
	"errors"

	"github.com/sieve-web/sieve/http/method"
	"github.com/sieve-web/sieve/http/proto"
	"github.com/sieve-web/sieve/kv"
)

// Request holds a fully parsed request head. Once built it is never
// mutated again, so it is safe to hand off to another goroutine for
// read-only use.
type Request struct {
	Version proto.Version
	Method  method.Method
	// Target is the request-target in origin-form: the absolute path,
	// optionally followed by the query.
	Target  string
	Headers *kv.Storage
	// Body is set by the connection glue, if at all. The parser itself
	// never reads past the header block.
	Body []byte
}

// Handler turns a parsed request into a response.
type Handler func(*Request) Response

// ErrIncompleteRequest is returned by Builder.Build when one of the
// mandatory fields was never set. Hitting it means the caller finalized
// before both the request line and the header block were parsed.
var ErrIncompleteRequest = errors.New("request is missing version, method or target")

// Builder accumulates request fields during a single parse pass.
type Builder struct {
	version    proto.Version
	method     method.Method
	target     string
	body       []byte
	headers    *kv.Storage
	hasVersion bool
	hasMethod  bool
	hasTarget  bool
}

func NewBuilder() *Builder {
	return &Builder{
		headers: kv.New(),
	}
}

func (b *Builder) SetVersion(major, minor uint8) {
	b.version = proto.Version{Major: major, Minor: minor}
	b.hasVersion = true
}

func (b *Builder) SetMethod(m method.Method) {
	b.method = m
	b.hasMethod = true
}

func (b *Builder) SetTarget(target string) {
	b.target = target
	b.hasTarget = true
}

func (b *Builder) SetBody(body []byte) {
	b.body = body
}

// SetHeader registers a header field. A repeated name overwrites the
// previously stored value: the last occurrence wins.
func (b *Builder) SetHeader(key, value string) {
	b.headers.Set(key, value)
}

// Build finalizes the builder into a Request. Version, method and target
// must all have been set by then.
func (b *Builder) Build() (*Request, error) {
	if !b.hasVersion || !b.hasMethod || !b.hasTarget {
		return nil, ErrIncompleteRequest
	}

	return &Request{
		Version: b.version,
		Method:  b.method,
		Target:  b.target,
		Headers: b.headers,
		Body:    b.body,
	}, nil
}
