package proto

import "fmt"

// Version is an HTTP protocol version. Major and Minor are single decimal
// digits, as prescribed by RFC 7230 section 2.6.
type Version struct {
	Major, Minor uint8
}

var (
	HTTP10 = Version{1, 0}
	HTTP11 = Version{1, 1}
)

func (v Version) String() string {
	return fmt.Sprintf("HTTP/%d.%d", v.Major, v.Minor)
}
