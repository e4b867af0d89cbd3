// Package validation turns raw text input into typed values, enforcing the
// format rules shared by every controller. Failures are ozzo validation
// errors whose Error() text is the user-facing message.
package validation

import (
	"regexp"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// MaxIDDigits is the number of significant digits allowed in an identifier.
const MaxIDDigits = 15

var (
	nitPattern  = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d$`)
	isbnPattern = regexp.MustCompile(`^\d{3}-\d-\d{2}-\d{6}-\d$`)
)

// IsBlank reports whether s is empty or whitespace only.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Required fails with message when text is blank.
func Required(text, message string) error {
	return validation.Validate(strings.TrimSpace(text),
		validation.Required.Error(message),
	)
}

// ParseID parses a non-negative integer identifier of at most MaxIDDigits
// significant digits. subject names the id in messages, e.g. "El id del stand".
func ParseID(text, subject string) (int64, error) {
	if err := Required(text, subject+" es obligatorio."); err != nil {
		return 0, err
	}

	trimmed := strings.TrimSpace(text)
	id, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		return 0, validation.NewError("validation_id_not_integer", subject+" debe ser un número entero.")
	}
	if id < 0 {
		return 0, validation.NewError("validation_id_negative", subject+" no puede ser negativo.")
	}
	if len(significantDigits(trimmed)) > MaxIDDigits {
		return 0, validation.NewError("validation_id_too_long", subject+" no puede tener más de 15 dígitos.")
	}
	return id, nil
}

// significantDigits strips leading zeros, keeping a single zero for "000".
func significantDigits(s string) string {
	digits := strings.TrimLeft(s, "0")
	if digits == "" {
		return "0"
	}
	return digits
}

// ValidateNIT checks the publisher tax id format NNN.NNN.NNN-N.
func ValidateNIT(nit string) error {
	return validation.Validate(nit,
		validation.Required.Error("El NIT es obligatorio."),
		validation.Match(nitPattern).Error("El NIT debe tener el formato XXX.XXX.XXX-X."),
	)
}

// ValidateISBN checks the book identifier format NNN-N-NN-NNNNNN-N.
func ValidateISBN(isbn string) error {
	return validation.Validate(isbn,
		validation.Required.Error("El ISBN es obligatorio."),
		validation.Match(isbnPattern).Error("El ISBN debe tener el formato XXX-X-XX-XXXXXX-X."),
	)
}

// ParsePositiveDecimal parses an amount that must be strictly greater than zero.
func ParsePositiveDecimal(text, notNumber, notPositive string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Zero, validation.NewError("validation_amount_not_number", notNumber)
	}
	if !amount.IsPositive() {
		return decimal.Zero, validation.NewError("validation_amount_not_positive", notPositive)
	}
	return amount, nil
}

// ParseInt parses a 32-bit integer. Blank input is reported as notInteger.
func ParseInt(text, notInteger string) (int, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 32)
	if err != nil {
		return 0, validation.NewError("validation_not_integer", notInteger)
	}
	return int(n), nil
}
