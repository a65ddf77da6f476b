package render

import (
	"errors"
	"strings"

	"github.com/fatih/color"
	"github.com/trebuchet-org/opctl/internal/domain"
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error for the operator. Validation and
// reconciliation errors keep their full chain; other errors are reduced to
// their innermost message.
func FormatError(err error) string {
	msg := err.Error()
	var reconciliation *domain.ReconciliationError
	if !domain.IsValidationError(err) && !errors.As(err, &reconciliation) {
		parts := strings.Split(msg, ": ")
		msg = parts[len(parts)-1]
	}
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}
	return color.New(color.FgRed).Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// shortHex abbreviates long hex strings for tables: 0x1234…abcd
func shortHex(s string) string {
	if len(s) <= 14 {
		return s
	}
	return s[:6] + "…" + s[len(s)-4:]
}
