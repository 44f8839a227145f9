package locale

import (
	"github.com/endlessm/xdg-user-dirs/pkg/errors"
	"github.com/endlessm/xdg-user-dirs/pkg/types"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// charsetEncoder converts UTF-8 names to a legacy charset
type charsetEncoder struct {
	name string
	enc  encoding.Encoding
}

func (c *charsetEncoder) Encode(s string) (string, error) {
	out, err := c.enc.NewEncoder().String(s)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrEncoding, "cannot convert %q to %s", s, c.name).
			WithDetail("charset", c.name)
	}
	return out, nil
}

type passthrough struct{}

func (passthrough) Encode(s string) (string, error) { return s, nil }

// NewEncoder returns an encoder for the named charset. An empty name means
// UTF-8, which needs no conversion. Unknown charsets are an ErrEncoding.
func NewEncoder(charset string) (types.Encoder, error) {
	if charset == "" {
		return passthrough{}, nil
	}
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrEncoding, "unknown filename encoding %s", charset).
			WithDetail("charset", charset)
	}
	if enc == nil {
		return nil, errors.Newf(errors.ErrEncoding, "unsupported filename encoding %s", charset).
			WithDetail("charset", charset)
	}
	return &charsetEncoder{name: charset, enc: enc}, nil
}
