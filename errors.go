package dynarr

import "github.com/pkg/errors"

var (
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	ErrEmpty            = errors.New("cannot pop from an empty array")
)

func outOfBounds(index, length int) error {
	return errors.Wrapf(ErrIndexOutOfBounds, "index %d (length %d)", index, length)
}
