package cursor

import "io"

// DefaultBufferSize is the size of the internal read buffer unless
// overridden via NewSized.
const DefaultBufferSize = 1024

// Cursor is a pull-based reader over a byte source it does not own, so the
// same connection stays available for writing a response later. Bytes are
// produced lazily, refilling the internal buffer from the source as needed.
//
// A single slot of lookahead is available via Peek: the upcoming byte can be
// examined any number of times before Next consumes it. There is no pushback
// beyond that one slot.
//
// End of stream and read errors are not distinguished: both simply end the
// byte sequence.
type Cursor struct {
	src    io.Reader
	buff   []byte
	pos    int
	avail  int
	head   byte
	peeked bool
	done   bool
}

// New returns a cursor over src with the default buffer size.
func New(src io.Reader) *Cursor {
	return NewSized(src, DefaultBufferSize)
}

// NewSized returns a cursor over src with a custom buffer size.
func NewSized(src io.Reader, size int) *Cursor {
	return &Cursor{
		src:  src,
		buff: make([]byte, size),
	}
}

// Next consumes and returns the next byte. ok is false once the source is
// exhausted or reading from it failed.
func (c *Cursor) Next() (b byte, ok bool) {
	if c.peeked {
		c.peeked = false
		return c.head, true
	}

	return c.fetch()
}

// Peek returns the upcoming byte without consuming it. Repeated calls
// return the same byte until Next is called.
func (c *Cursor) Peek() (b byte, ok bool) {
	if c.peeked {
		return c.head, true
	}

	c.head, ok = c.fetch()
	c.peeked = ok

	return c.head, ok
}

func (c *Cursor) fetch() (b byte, ok bool) {
	if c.pos >= c.avail {
		if c.done {
			return 0, false
		}

		n, err := c.src.Read(c.buff)
		if err != nil {
			c.done = true
		}
		if n == 0 {
			c.done = true
			return 0, false
		}

		c.pos, c.avail = 0, n
	}

	b = c.buff[c.pos]
	c.pos++

	return b, true
}
