// Package http1 implements a streaming RFC 7230 request-head parser. It
// pulls bytes one at a time off a cursor and fails fast on the first
// violated grammar rule: no recovery, no partial results.
package http1

import (
	"github.com/sieve-web/sieve/http"
	"github.com/sieve-web/sieve/internal/cursor"
)

// Parse consumes a complete request head: the request line, then the
// header block up to and including the terminating blank line. All parsed
// fields land in b. On failure the builder must be considered tainted and
// thrown away.
func Parse(cur *cursor.Cursor, b *http.Builder) error {
	if err := parseRequestLine(cur, b); err != nil {
		return err
	}

	return parseHeaders(cur, b)
}
