package server

import (
	"strconv"

	"github.com/sieve-web/sieve/http"
	"github.com/sieve-web/sieve/http/status"
)

// Serialize appends the wire form of resp to buff and returns it. The
// status line always advertises HTTP/1.1, and Content-Length is derived
// from the body as connections are not reused.
func Serialize(buff []byte, resp http.Response) []byte {
	buff = append(buff, "HTTP/1.1 "...)
	buff = strconv.AppendUint(buff, uint64(resp.Code), 10)
	buff = append(buff, ' ')
	buff = append(buff, string(status.Text(resp.Code))...)
	buff = append(buff, '\r', '\n')

	if resp.Headers != nil {
		for key, value := range resp.Headers.Iter() {
			buff = append(buff, key...)
			buff = append(buff, ':', ' ')
			buff = append(buff, value...)
			buff = append(buff, '\r', '\n')
		}
	}

	buff = append(buff, "Content-Length: "...)
	buff = strconv.AppendInt(buff, int64(len(resp.Body)), 10)
	buff = append(buff, "\r\n\r\n"...)

	return append(buff, resp.Body...)
}
