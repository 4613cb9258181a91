package render

import (
	"github.com/go-faster/errors"
)

const fallbackLabel = "INTERNAL SERVER ERROR"

// labeled is implemented by domain errors that carry a report category.
type labeled interface {
	error
	Label() string
}

// ErrorReport serializes a fatal error into the single-row report written
// to the result file in place of a receipt. The two payload shapes are
// mutually exclusive outputs of the same channel.
func ErrorReport(err error) string {
	return "ERROR\n" + Label(err) + ": " + err.Error()
}

// Label resolves the report category for an error. Errors without an
// explicit category are treated as internal failures.
func Label(err error) string {
	var l labeled
	if errors.As(err, &l) {
		return l.Label()
	}
	return fallbackLabel
}
