package http

import (
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"

	"github.com/sieve-web/sieve/http/status"
	"github.com/sieve-web/sieve/kv"
)

// Response carries everything the connection glue needs in order to write
// an answer back. The parser core never touches it.
type Response struct {
	Code    status.Code
	Headers *kv.Storage
	Body    []byte
}

func NewResponse() Response {
	return Response{
		Code:    status.OK,
		Headers: kv.New(),
	}
}

func (r Response) WithCode(code status.Code) Response {
	r.Code = code
	return r
}

func (r Response) WithHeader(key, value string) Response {
	r.Headers.Set(key, value)
	return r
}

func (r Response) WithBody(body string) Response {
	return r.WithBodyBytes(uf.S2B(body))
}

func (r Response) WithBodyBytes(body []byte) Response {
	r.Body = body
	return r
}

// WithJSON serializes model into the response body and sets the
// Content-Type accordingly.
func (r Response) WithJSON(model any) Response {
	data, err := json.Marshal(model)
	if err != nil {
		return r.WithError(err)
	}

	return r.
		WithHeader("Content-Type", "application/json").
		WithBodyBytes(data)
}

// WithError renders err as a plain-text response, resolving the code via
// status.ResponseCode.
func (r Response) WithError(err error) Response {
	code, ok := status.ResponseCode(err)
	if !ok {
		// nothing sensible can be replied to a dead stream; the glue is
		// expected to have dropped the connection before getting here
		code = status.InternalServerError
	}

	return r.
		WithCode(code).
		WithBody(err.Error())
}
