package dummy

import "io"

// Reader feeds predefined chunks of data, one chunk per Read call. It is
// used in tests to steer exactly where the cursor's buffer refills land.
type Reader struct {
	chunks  [][]byte
	pointer int
}

func NewReader(chunks ...[]byte) *Reader {
	return &Reader{
		chunks: chunks,
	}
}

// NewStringReader splits data into pieces of at most n bytes each.
func NewStringReader(data string, n int) *Reader {
	var chunks [][]byte

	for len(data) > 0 {
		end := min(n, len(data))
		chunks = append(chunks, []byte(data[:end]))
		data = data[end:]
	}

	return NewReader(chunks...)
}

func (r *Reader) Read(p []byte) (n int, err error) {
	if r.pointer >= len(r.chunks) {
		return 0, io.EOF
	}

	chunk := r.chunks[r.pointer]
	n = copy(p, chunk)

	if n < len(chunk) {
		r.chunks[r.pointer] = chunk[n:]
	} else {
		r.pointer++
	}

	return n, nil
}

// ErrReader yields its chunks and then a non-EOF error instead of a clean
// end of stream.
type ErrReader struct {
	inner *Reader
	err   error
}

func NewErrReader(err error, chunks ...[]byte) *ErrReader {
	return &ErrReader{
		inner: NewReader(chunks...),
		err:   err,
	}
}

func (r *ErrReader) Read(p []byte) (n int, err error) {
	n, err = r.inner.Read(p)
	if err == io.EOF {
		err = r.err
	}

	return n, err
}
