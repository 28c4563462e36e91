package types

import "strings"

// Param is a single query parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered set of query parameters. Keys are unique per call:
// Set replaces an existing key in place so insertion order is preserved for
// the final request query string. Request signing sorts a copy separately.
type Params []Param

// NewParams builds a Params set from alternating key/value pairs. It panics
// on an odd argument count, which is always a programming error.
func NewParams(pairs ...string) Params {
	if len(pairs)%2 != 0 {
		panic("types: NewParams called with an odd number of arguments")
	}
	p := make(Params, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		p.Set(pairs[i], pairs[i+1])
	}
	return p
}

// Set adds the key, or replaces its value in place when already present.
func (p *Params) Set(key, value string) {
	for i := range *p {
		if (*p)[i].Key == key {
			(*p)[i].Value = value
			return
		}
	}
	*p = append(*p, Param{Key: key, Value: value})
}

// Get returns the value for key, or "".
func (p Params) Get(key string) string {
	for _, kv := range p {
		if kv.Key == key {
			return kv.Value
		}
	}
	return ""
}

// Has reports whether key is present.
func (p Params) Has(key string) bool {
	for _, kv := range p {
		if kv.Key == key {
			return true
		}
	}
	return false
}

// Clone returns an independent copy.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	copy(out, p)
	return out
}

// Encode serializes the set as key=value pairs joined by & in insertion
// order, percent-encoding keys and values per the RFC 3986 unreserved set.
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(PercentEncode(kv.Key))
		b.WriteByte('=')
		b.WriteString(PercentEncode(kv.Value))
	}
	return b.String()
}

const upperhex = "0123456789ABCDEF"

// PercentEncode encodes s per RFC 3986: unreserved characters (ALPHA, DIGIT,
// "-", ".", "_", "~") pass through, everything else becomes %XX with
// uppercase hex. This is stricter than url.QueryEscape, which the OAuth
// signature base string cannot tolerate (it encodes space as "+").
func PercentEncode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'A' <= c && c <= 'Z', 'a' <= c && c <= 'z', '0' <= c && c <= '9',
			c == '-', c == '.', c == '_', c == '~':
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0xF])
		}
	}
	return b.String()
}
