package input

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
)

// Validation failures. The error text is the exact status line shown to the user.
var (
	ErrEmpty  = errors.New("Please enter something")
	ErrSpaces = errors.New("Remove any spaces")
	ErrLength = errors.New("Input seems too short or too long")
)

const (
	MinLength = 4
	MaxLength = 255
)

var (
	validate  = validator.New()
	lengthTag = fmt.Sprintf("min=%d,max=%d", MinLength, MaxLength)
)

// inputLength counts UTF-16 code units, the way the browser input measures it.
// Characters outside the BMP count twice.
func inputLength(value string) int {
	return len(utf16.Encode([]rune(value)))
}

// Validate checks a trimmed search value before any network call.
// Rules are checked in order and the first failure wins:
//  1. empty input
//  2. any whitespace character, including tabs, newlines and NBSP
//  3. length outside [MinLength, MaxLength] UTF-16 code units
//
// On success it returns the classification of the value.
func Validate(value string) (Kind, error) {
	if err := validate.Var(value, "required"); err != nil {
		return Domain, ErrEmpty
	}

	if strings.IndexFunc(value, unicode.IsSpace) >= 0 {
		return Domain, ErrSpaces
	}

	if err := validate.Var(inputLength(value), lengthTag); err != nil {
		return Domain, ErrLength
	}

	return Classify(value), nil
}

// IsValidationError reports whether err is one of the validation failures
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmpty) || errors.Is(err, ErrSpaces) || errors.Is(err, ErrLength)
}
