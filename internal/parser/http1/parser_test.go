package http1

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sieve-web/sieve/http"
	"github.com/sieve-web/sieve/http/method"
	"github.com/sieve-web/sieve/http/proto"
	"github.com/sieve-web/sieve/http/status"
	"github.com/sieve-web/sieve/internal/cursor"
	"github.com/sieve-web/sieve/transport/dummy"
)

func parse(raw string) (*http.Request, error) {
	b := http.NewBuilder()
	if err := Parse(cursor.New(strings.NewReader(raw)), b); err != nil {
		return nil, err
	}

	return b.Build()
}

func parseLine(raw string) (*http.Builder, error) {
	b := http.NewBuilder()
	err := parseRequestLine(cursor.New(strings.NewReader(raw)), b)

	return b, err
}

func TestRequestLine(t *testing.T) {
	t.Run("every registered verb", func(t *testing.T) {
		for _, verb := range []string{
			"GET", "POST", "PATCH", "DELETE", "PUT", "HEAD", "CONNECT", "OPTIONS", "TRACE",
		} {
			request, err := parse(verb + " /x HTTP/1.1\r\n\r\n")
			require.NoError(t, err, verb)
			require.Equal(t, method.Parse(verb), request.Method)
			require.False(t, request.Method.IsCustom())
			require.Equal(t, "/x", request.Target)
			require.Equal(t, proto.HTTP11, request.Version)
		}
	})

	t.Run("custom verb is kept verbatim", func(t *testing.T) {
		request, err := parse("PROPFIND /calendar HTTP/1.1\r\n\r\n")
		require.NoError(t, err)
		require.True(t, request.Method.IsCustom())
		require.Equal(t, "PROPFIND", request.Method.String())
	})

	t.Run("verbs are case-sensitive", func(t *testing.T) {
		request, err := parse("get / HTTP/1.1\r\n\r\n")
		require.NoError(t, err)
		require.True(t, request.Method.IsCustom())
		require.Equal(t, "get", request.Method.String())
	})

	t.Run("all version digits round-trip", func(t *testing.T) {
		for major := uint8(0); major <= 9; major++ {
			for minor := uint8(0); minor <= 9; minor++ {
				raw := fmt.Sprintf("GET / HTTP/%d.%d\r\n\r\n", major, minor)
				request, err := parse(raw)
				require.NoError(t, err, raw)
				require.Equal(t, proto.Version{Major: major, Minor: minor}, request.Version)
			}
		}
	})

	t.Run("illegal byte in method", func(t *testing.T) {
		for _, raw := range []string{
			"GE{T / HTTP/1.1\r\n",
			"GET\r\n/ HTTP/1.1\r\n",
			"G\x00ET / HTTP/1.1\r\n",
		} {
			_, err := parseLine(raw)
			require.ErrorIs(t, err, status.ErrIllegalCharacter, raw)
		}
	})

	t.Run("illegal byte in target", func(t *testing.T) {
		for _, raw := range []string{
			"GET /he llo HTTP/1.1\r\n",
			"GET /\x7f HTTP/1.1\r\n",
			"GET /a\"b HTTP/1.1\r\n",
			"GET /\r\n HTTP/1.1\r\n",
		} {
			_, err := parseLine(raw)
			require.ErrorIs(t, err, status.ErrIllegalCharacter, raw)
		}
	})

	t.Run("malformed version", func(t *testing.T) {
		for _, raw := range []string{
			"GET / HTPP/1.1\r\n",
			"GET / HTTP|1.1\r\n",
			"GET / HTTP/x.1\r\n",
			"GET / HTTP/1,1\r\n",
			"GET / HTTP/1.x\r\n",
			"GET / HTTP/11\r\n",
			"GET / HTTP/1.1\n",
			"GET / HTTP/1.1\r\r",
		} {
			_, err := parseLine(raw)
			require.ErrorIs(t, err, status.ErrIllegalCharacter, raw)
		}
	})

	t.Run("truncated streams", func(t *testing.T) {
		for _, raw := range []string{
			"",
			"GET",
			"GET ",
			"GET /x",
			"GET /x ",
			"GET /x HTTP",
			"GET /x HTTP/1",
			"GET /x HTTP/1.",
			"GET /x HTTP/1.1",
			"GET /x HTTP/1.1\r",
		} {
			_, err := parseLine(raw)
			require.ErrorIs(t, err, status.ErrUnexpectedEOF, fmt.Sprintf("%q", raw))
		}
	})

	t.Run("zero-length method", func(t *testing.T) {
		_, err := parseLine(" / HTTP/1.1\r\n")
		require.ErrorIs(t, err, status.ErrIllegalCharacter)
	})

	t.Run("zero-length target", func(t *testing.T) {
		_, err := parseLine("GET  HTTP/1.1\r\n")
		require.ErrorIs(t, err, status.ErrIllegalCharacter)
	})
}

func TestHeaders(t *testing.T) {
	t.Run("single header", func(t *testing.T) {
		request, err := parse("GET / HTTP/1.1\r\nName: value\r\n\r\n")
		require.NoError(t, err)
		require.Equal(t, 1, request.Headers.Len())
		require.Equal(t, "value", request.Headers.Value("Name"))
	})

	t.Run("last occurrence wins", func(t *testing.T) {
		request, err := parse("GET / HTTP/1.1\r\nA: 1\r\nA: 2\r\n\r\n")
		require.NoError(t, err)
		require.Equal(t, "2", request.Headers.Value("A"))
		require.Equal(t, 1, request.Headers.Len())
	})

	t.Run("leading whitespace is skipped", func(t *testing.T) {
		request, err := parse("GET / HTTP/1.1\r\nName:  \t value\r\n\r\n")
		require.NoError(t, err)
		require.Equal(t, "value", request.Headers.Value("Name"))
	})

	t.Run("no whitespace after colon", func(t *testing.T) {
		request, err := parse("GET / HTTP/1.1\r\nName:value\r\n\r\n")
		require.NoError(t, err)
		require.Equal(t, "value", request.Headers.Value("Name"))
	})

	t.Run("empty value", func(t *testing.T) {
		request, err := parse("GET / HTTP/1.1\r\nName:\r\n\r\n")
		require.NoError(t, err)
		require.True(t, request.Headers.Has("Name"))
		require.Equal(t, "", request.Headers.Value("Name"))
	})

	t.Run("inner spaces and tabs survive", func(t *testing.T) {
		request, err := parse("GET / HTTP/1.1\r\nUser-Agent: some agent\tv1.0\r\n\r\n")
		require.NoError(t, err)
		require.Equal(t, "some agent\tv1.0", request.Headers.Value("User-Agent"))
	})

	t.Run("bytes above 0x7f are dropped, not rejected", func(t *testing.T) {
		request, err := parse("GET / HTTP/1.1\r\nName: v\x80a\xffl\xc3\xa9ue\r\n\r\n")
		require.NoError(t, err)
		require.Equal(t, "value", request.Headers.Value("Name"))
	})

	t.Run("space inside the name", func(t *testing.T) {
		_, err := parse("GET / HTTP/1.1\r\nBad Name: v\r\n\r\n")
		require.ErrorIs(t, err, status.ErrIllegalCharacter)
	})

	t.Run("control byte in the value", func(t *testing.T) {
		_, err := parse("GET / HTTP/1.1\r\nName: v\x00alue\r\n\r\n")
		require.ErrorIs(t, err, status.ErrIllegalCharacter)
	})

	t.Run("lone LF instead of CRLF", func(t *testing.T) {
		_, err := parse("GET / HTTP/1.1\r\nName: value\n\r\n")
		require.ErrorIs(t, err, status.ErrIllegalCharacter)
	})

	t.Run("garbage after final CR", func(t *testing.T) {
		_, err := parse("GET / HTTP/1.1\r\n\rX")
		require.ErrorIs(t, err, status.ErrIllegalCharacter)
	})

	t.Run("truncated header block", func(t *testing.T) {
		for _, raw := range []string{
			"GET / HTTP/1.1\r\n",
			"GET / HTTP/1.1\r\nName",
			"GET / HTTP/1.1\r\nName: value",
			"GET / HTTP/1.1\r\nName: value\r",
			"GET / HTTP/1.1\r\nName: value\r\n",
			"GET / HTTP/1.1\r\nName: value\r\n\r",
		} {
			_, err := parse(raw)
			require.ErrorIs(t, err, status.ErrUnexpectedEOF, fmt.Sprintf("%q", raw))
		}
	})
}

func TestParse(t *testing.T) {
	t.Run("end-to-end", func(t *testing.T) {
		request, err := parse("GET /test/path?k=v&k2 HTTP/1.1\r\n\r\n")
		require.NoError(t, err)
		assert.Equal(t, method.GET, request.Method)
		assert.Equal(t, "/test/path?k=v&k2", request.Target)
		assert.Equal(t, proto.HTTP11, request.Version)
		assert.Zero(t, request.Headers.Len())
		assert.Nil(t, request.Body)
	})

	t.Run("idempotence", func(t *testing.T) {
		raw := "POST /submit?a=b HTTP/1.0\r\nHost: localhost\r\nAccept: */*\r\n\r\n"

		first, err := parse(raw)
		require.NoError(t, err)
		second, err := parse(raw)
		require.NoError(t, err)

		require.Equal(t, first, second)
	})

	t.Run("chunked feeding", func(t *testing.T) {
		raw := "GET /test/path?k=v&k2 HTTP/1.1\r\nHello: World!\r\nEaster: Egg\r\n\r\n"

		for n := 1; n <= len(raw); n++ {
			b := http.NewBuilder()
			err := Parse(cursor.New(dummy.NewStringReader(raw, n)), b)
			require.NoError(t, err, n)

			request, err := b.Build()
			require.NoError(t, err, n)
			require.Equal(t, "/test/path?k=v&k2", request.Target)
			require.Equal(t, "World!", request.Headers.Value("Hello"))
			require.Equal(t, "Egg", request.Headers.Value("Easter"))
		}
	})

	t.Run("generated headers", func(t *testing.T) {
		const n = 50

		var sb strings.Builder
		sb.WriteString("GET / HTTP/1.1\r\n")

		wanted := make(map[string]string, n)
		for i := 0; i < n; i++ {
			key, value := uniuri.NewLen(16), uniuri.NewLen(32)
			wanted[key] = value
			fmt.Fprintf(&sb, "%s: %s\r\n", key, value)
		}
		sb.WriteString("\r\n")

		request, err := parse(sb.String())
		require.NoError(t, err)

		for key, value := range wanted {
			require.Equal(t, value, request.Headers.Value(key))
		}
	})
}
