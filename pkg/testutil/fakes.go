package testutil

import (
	"strings"

	"github.com/endlessm/xdg-user-dirs/pkg/errors"
)

// UpperEncoder "encodes" by upper-casing, to make encoding visible in tests
type UpperEncoder struct{}

// Encode implements types.Encoder
func (UpperEncoder) Encode(s string) (string, error) {
	return strings.ToUpper(s), nil
}

// FailingEncoder fails for every input containing Reject
type FailingEncoder struct {
	Reject string
}

// Encode implements types.Encoder
func (f FailingEncoder) Encode(s string) (string, error) {
	if strings.Contains(s, f.Reject) {
		return "", errors.Newf(errors.ErrEncoding, "cannot encode %q", s)
	}
	return s, nil
}

// ByteCollator compares strings bytewise
type ByteCollator struct{}

// Compare implements types.Collator
func (ByteCollator) Compare(a, b string) int {
	return strings.Compare(a, b)
}
