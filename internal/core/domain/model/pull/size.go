package pull

import (
	"fmt"

	"parcelhub/internal/pkg/errs"
)

// Size represents the physical size class of a pull (sack). It determines
// how many packages the sack is expected to hold during auto-distribution.
type Size int

const (
	// SizeUnknown represents an invalid or undefined size.
	SizeUnknown Size = iota

	// SizeSmall is a small sack.
	SizeSmall

	// SizeMedium is a medium sack.
	SizeMedium

	// SizeLarge is a large sack.
	SizeLarge
)

func getSizeStrings() map[Size]string {
	return map[Size]string{
		SizeUnknown: "DESCONOCIDO",
		SizeSmall:   "PEQUENO",
		SizeMedium:  "MEDIANO",
		SizeLarge:   "GRANDE",
	}
}

func getValidSizeStrings() map[Size]string {
	//nolint:exhaustive // SizeUnknown is intentionally excluded as it's invalid
	return map[Size]string{
		SizeSmall:  "PEQUENO",
		SizeMedium: "MEDIANO",
		SizeLarge:  "GRANDE",
	}
}

// Validate checks if the Size value is valid.
func (s Size) Validate() error {
	if _, ok := getValidSizeStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("size is invalid", fmt.Errorf("%d is not a valid size", s))
	}
	return nil
}

// String returns the size wire tag ("PEQUENO", "MEDIANO", "GRANDE").
// Invalid values render as "DESCONOCIDO".
func (s Size) String() string {
	if str, ok := getSizeStrings()[s]; ok {
		return str
	}
	return "DESCONOCIDO"
}

// SizeFromString converts a wire tag back to a Size.
func SizeFromString(s string) (Size, error) {
	for size, str := range getValidSizeStrings() {
		if str == s {
			return size, nil
		}
	}
	return SizeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"size is invalid",
		fmt.Errorf("%q is not a valid size", s),
	)
}
