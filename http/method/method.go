package method

// Method is an HTTP verb as defined by RFC 7231 section 4. The registered
// verbs compare against the predeclared constants; anything else is carried
// verbatim as a custom method.
type Method struct {
	known uint8
	name  string
}

var (
	GET     = Method{known: 1}
	HEAD    = Method{known: 2}
	POST    = Method{known: 3}
	PUT     = Method{known: 4}
	DELETE  = Method{known: 5}
	CONNECT = Method{known: 6}
	OPTIONS = Method{known: 7}
	TRACE   = Method{known: 8}
	PATCH   = Method{known: 9}
)

var names = [...]string{
	1: "GET",
	2: "HEAD",
	3: "POST",
	4: "PUT",
	5: "DELETE",
	6: "CONNECT",
	7: "OPTIONS",
	8: "TRACE",
	9: "PATCH",
}

// Custom returns a method holding an unregistered verb as-is.
func Custom(name string) Method {
	return Method{name: name}
}

// Parse matches name case-sensitively against the registered verbs,
// falling back to a custom method.
func Parse(name string) Method {
	switch len(name) {
	case 3:
		if name == "GET" {
			return GET
		} else if name == "PUT" {
			return PUT
		}
	case 4:
		if name == "POST" {
			return POST
		} else if name == "HEAD" {
			return HEAD
		}
	case 5:
		if name == "PATCH" {
			return PATCH
		} else if name == "TRACE" {
			return TRACE
		}
	case 6:
		if name == "DELETE" {
			return DELETE
		}
	case 7:
		if name == "CONNECT" {
			return CONNECT
		} else if name == "OPTIONS" {
			return OPTIONS
		}
	}

	return Custom(name)
}

// IsCustom reports whether the method is outside the registered verb set.
func (m Method) IsCustom() bool {
	return m.known == 0
}

func (m Method) String() string {
	if m.known == 0 {
		return m.name
	}

	return names[m.known]
}
