package http1

import (
	"errors"
	"unicode/utf8"

	"github.com/indigo-web/utils/uf"

	"github.com/sieve-web/sieve/http"
	"github.com/sieve-web/sieve/http/method"
	"github.com/sieve-web/sieve/http/status"
	"github.com/sieve-web/sieve/internal/cursor"
	"github.com/sieve-web/sieve/internal/grammar"
)

// parseRequestLine reads `METHOD SP target SP HTTP/major.minor CRLF`, as
// defined by RFC 7230 section 3.1.1.
func parseRequestLine(cur *cursor.Cursor, b *http.Builder) error {
	m, err := parseMethod(cur)
	if err != nil {
		return err
	}
	b.SetMethod(m)

	target, err := parseTarget(cur)
	if err != nil {
		return err
	}
	b.SetTarget(target)

	major, minor, err := parseVersion(cur)
	if err != nil {
		return err
	}
	b.SetVersion(major, minor)

	return nil
}

// parseMethod accumulates tchars up to the separating space. The verb is
// matched case-sensitively against the registered set; anything else is
// kept verbatim as a custom method. An empty verb is rejected.
func parseMethod(cur *cursor.Cursor) (method.Method, error) {
	var raw []byte

	for {
		c, ok := cur.Next()
		if !ok {
			return method.Method{}, status.ErrUnexpectedEOF
		}

		if c == ' ' {
			break
		}

		if !grammar.IsTChar(c) {
			return method.Method{}, status.ErrIllegalCharacter
		}

		raw = append(raw, c)
	}

	if len(raw) == 0 {
		return method.Method{}, status.ErrIllegalCharacter
	}

	return method.Parse(uf.B2S(raw)), nil
}

// parseTarget accumulates request-target bytes up to the separating space.
// Only the RFC 3986 URI character class is let through.
func parseTarget(cur *cursor.Cursor) (string, error) {
	var raw []byte

	for {
		c, ok := cur.Next()
		if !ok {
			return "", status.ErrUnexpectedEOF
		}

		if c == ' ' {
			break
		}

		if !grammar.IsTargetChar(c) {
			return "", status.ErrIllegalCharacter
		}

		raw = append(raw, c)
	}

	if len(raw) == 0 {
		return "", status.ErrIllegalCharacter
	}

	if !utf8.Valid(raw) {
		// unreachable while the target class stays ASCII-only, yet a decode
		// failure must not pass by unnoticed
		return "", status.Generic(errors.New("request target is not valid UTF-8"), status.BadRequest)
	}

	return uf.B2S(raw), nil
}

// parseVersion expects the literal `HTTP/`, one digit, a dot, one more
// digit and the terminating CRLF. The digits are returned as integers.
func parseVersion(cur *cursor.Cursor) (major, minor uint8, err error) {
	for _, expected := range []byte("HTTP/") {
		if err = expect(cur, expected); err != nil {
			return 0, 0, err
		}
	}

	if major, err = parseDigit(cur); err != nil {
		return 0, 0, err
	}

	if err = expect(cur, '.'); err != nil {
		return 0, 0, err
	}

	if minor, err = parseDigit(cur); err != nil {
		return 0, 0, err
	}

	if err = expect(cur, '\r'); err != nil {
		return 0, 0, err
	}

	if err = expect(cur, '\n'); err != nil {
		return 0, 0, err
	}

	return major, minor, nil
}

func parseDigit(cur *cursor.Cursor) (uint8, error) {
	c, ok := cur.Next()
	if !ok {
		return 0, status.ErrUnexpectedEOF
	}

	if c < '0' || c > '9' {
		return 0, status.ErrIllegalCharacter
	}

	return c - '0', nil
}

func expect(cur *cursor.Cursor, b byte) error {
	c, ok := cur.Next()
	if !ok {
		return status.ErrUnexpectedEOF
	}

	if c != b {
		return status.ErrIllegalCharacter
	}

	return nil
}
