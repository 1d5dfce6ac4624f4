package grammar

// tchar, as given by RFC 7230 appendix B:
//
//	tchar = "!" / "#" / "$" / "%" / "&" / "'" / "*" / "+" / "-" / "." /
//	        "^" / "_" / "`" / "|" / "~" / DIGIT / ALPHA
//
// Both method names and header field names are sequences of tchars.
var tchar = func() (lut [256]bool) {
	for _, c := range []byte("!#$%&'*+-.^_`|~") {
		lut[c] = true
	}

	for c := byte('0'); c <= '9'; c++ {
		lut[c] = true
	}

	for c := byte('a'); c <= 'z'; c++ {
		lut[c] = true
	}

	for c := byte('A'); c <= 'Z'; c++ {
		lut[c] = true
	}

	return lut
}()

// targetChar covers the bytes a request-target may consist of: RFC 3986
// unreserved characters, gen-delims, sub-delims and the percent sign. The
// whole class is plain ASCII.
var targetChar = func() (lut [256]bool) {
	for _, c := range []byte("-._~:/?#[]@!$&'()*+,;=%") {
		lut[c] = true
	}

	for c := byte('0'); c <= '9'; c++ {
		lut[c] = true
	}

	for c := byte('a'); c <= 'z'; c++ {
		lut[c] = true
	}

	for c := byte('A'); c <= 'Z'; c++ {
		lut[c] = true
	}

	return lut
}()

// IsTChar reports whether c is a token character.
func IsTChar(c byte) bool {
	return tchar[c]
}

// IsTargetChar reports whether c may appear in a request-target.
func IsTargetChar(c byte) bool {
	return targetChar[c]
}

// IsVisible reports whether c is printable ASCII, space included.
func IsVisible(c byte) bool {
	return c >= 0x20 && c <= 0x7e
}
