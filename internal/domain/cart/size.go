package cart

import (
	"errors"
	"strings"
)

var ErrInvalidSize = errors.New("invalid size")

type Size string

const (
	SizeXS   Size = "XS"
	SizeS    Size = "S"
	SizeM    Size = "M"
	SizeL    Size = "L"
	SizeXL   Size = "XL"
	SizeXXL  Size = "XXL"
	SizeXXXL Size = "XXXL"
)

var sizes = []Size{SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL, SizeXXXL}

func Sizes() []Size {
	out := make([]Size, len(sizes))
	copy(out, sizes)
	return out
}

func ParseSize(s string) (Size, error) {
	size := Size(strings.ToUpper(strings.TrimSpace(s)))
	if !size.IsValid() {
		return "", ErrInvalidSize
	}
	return size, nil
}

func (s Size) String() string {
	return string(s)
}

func (s Size) IsValid() bool {
	switch s {
	case SizeXS, SizeS, SizeM, SizeL, SizeXL, SizeXXL, SizeXXXL:
		return true
	default:
		return false
	}
}
