// Package decode turns raw upload bytes into text by trying an ordered
// list of candidate character encodings, stopping at the first success.
package decode

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ErrInvalidEncoding is returned when no decoder in the chain accepts the
// input. It cannot occur with the default chain, whose last decoder
// accepts any byte sequence.
var ErrInvalidEncoding = errors.New("no candidate encoding matched")

// Decoder converts raw bytes to text, or reports that it cannot.
type Decoder interface {
	Name() string
	Decode(raw []byte) (string, error)
}

type utf8Decoder struct{}

func (utf8Decoder) Name() string { return "utf-8" }

func (utf8Decoder) Decode(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("invalid utf-8 byte sequence")
	}
	return string(raw), nil
}

type latin1Decoder struct{}

func (latin1Decoder) Name() string { return "latin-1" }

func (latin1Decoder) Decode(raw []byte) (string, error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// DefaultChain tries UTF-8 first, then Latin-1. Latin-1 maps every byte to
// a code point, so the chain as a whole never fails.
func DefaultChain() []Decoder {
	return []Decoder{utf8Decoder{}, latin1Decoder{}}
}

// Text decodes raw with the first decoder in chain that accepts it.
func Text(raw []byte, chain []Decoder) (string, error) {
	for _, d := range chain {
		if s, err := d.Decode(raw); err == nil {
			return s, nil
		}
	}
	return "", ErrInvalidEncoding
}
