// Package codec centralizes the encoding of exported clustering results.
//
// Exported files record the codec name next to the data, so a reader can pick
// the matching codec with ByName.
package codec

import (
	"fmt"
	"strings"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// builtin lists the codecs ByName knows, in the order Names reports them.
var builtin = []Codec{JSON{}, GoJSON{}}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	for _, c := range builtin {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// Names returns the names of the built-in codecs joined by ", ".
func Names() string {
	names := make([]string, len(builtin))
	for i, c := range builtin {
		names[i] = c.Name()
	}
	return strings.Join(names, ", ")
}

// MustMarshal encodes v with c, or with Default when c is nil, and panics on
// failure. Intended for tests and benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s: marshal: %w", c.Name(), err))
	}
	return b
}
