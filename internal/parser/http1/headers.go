package http1

import (
	"errors"
	"unicode/utf8"

	"github.com/indigo-web/utils/uf"

	"github.com/sieve-web/sieve/http"
	"github.com/sieve-web/sieve/http/status"
	"github.com/sieve-web/sieve/internal/cursor"
	"github.com/sieve-web/sieve/internal/grammar"
)

type headerState uint8

const (
	sStart headerState = iota + 1
	sName
	sValueLeadingWS
	sValue
	sNewLine
	sFinalNewLine
)

// fsm walks the header block byte-by-byte. A transition that needs to
// re-examine its byte under another state reports consumed == false, in
// which case the drive loop feeds the very same byte again.
type fsm struct {
	builder *http.Builder
	name    string
	partial []byte
	state   headerState
}

// parseHeaders consumes `name ":" OWS value CRLF` lines until the blank
// line closing the header block.
func parseHeaders(cur *cursor.Cursor, b *http.Builder) error {
	f := fsm{
		builder: b,
		state:   sStart,
	}

	for {
		c, ok := cur.Next()
		if !ok {
			return status.ErrUnexpectedEOF
		}

		for {
			consumed, done, err := f.step(c)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
			if consumed {
				break
			}
		}
	}
}

func (f *fsm) step(c byte) (consumed, done bool, err error) {
	switch f.state {
	case sStart:
		if c == '\r' {
			f.state = sFinalNewLine
			return true, false, nil
		}

		f.state = sName
		return false, false, nil
	case sName:
		switch {
		case c == ':':
			name, err := freeze(f.partial)
			if err != nil {
				return true, false, err
			}

			f.name = name
			f.partial = nil
			f.state = sValueLeadingWS
			return true, false, nil
		case grammar.IsTChar(c):
			f.partial = append(f.partial, c)
			return true, false, nil
		default:
			return true, false, status.ErrIllegalCharacter
		}
	case sValueLeadingWS:
		if c == ' ' || c == '\t' {
			return true, false, nil
		}

		f.state = sValue
		return false, false, nil
	case sValue:
		switch {
		case c == '\r':
			value, err := freeze(f.partial)
			if err != nil {
				return true, false, err
			}

			f.builder.SetHeader(f.name, value)
			f.name = ""
			f.partial = nil
			f.state = sNewLine
			return true, false, nil
		case c == '\t' || grammar.IsVisible(c):
			f.partial = append(f.partial, c)
			return true, false, nil
		case c >= 0x80:
			// opaque octets are silently dropped instead of being rejected,
			// keeping values representable as plain text
			return true, false, nil
		default:
			return true, false, status.ErrIllegalCharacter
		}
	case sNewLine:
		if c != '\n' {
			return true, false, status.ErrIllegalCharacter
		}

		f.state = sStart
		return true, false, nil
	case sFinalNewLine:
		if c != '\n' {
			return true, false, status.ErrIllegalCharacter
		}

		return true, true, nil
	default:
		panic("BUG: unknown header parser state")
	}
}

// freeze finalizes an accumulated byte run into a string. The accumulators
// only ever hold ASCII, so the validity check cannot realistically trip,
// but a hypothetical failure is reported rather than asserted away.
func freeze(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", status.Generic(errors.New("header data is not valid UTF-8"), status.BadRequest)
	}

	return uf.B2S(raw), nil
}
