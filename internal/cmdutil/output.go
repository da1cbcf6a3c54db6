package cmdutil

import (
	"errors"
	"fmt"

	oerrors "github.com/samvera-labs/workgen/internal/errors"
	"github.com/samvera-labs/workgen/internal/output"
	"github.com/samvera-labs/workgen/internal/work"
)

// PrintRunError prints a failed run in a user-friendly format.
// A reserved or empty name is printed as the bare red message. Detail errors
// print their type, location and hint. Anything else falls back to the
// key-value log format.
func PrintRunError(msg string, err error) {
	var nameErr *work.InvalidNameError
	if errors.As(err, &nameErr) {
		output.Println(output.StyleError.Render(nameErr.Error()))
		return
	}

	var detail *oerrors.DetailError
	if errors.As(err, &detail) {
		keyvals := []interface{}{"type", detail.Type}
		if detail.Location != "" {
			keyvals = append(keyvals, "path", detail.Location)
		}
		output.Error(fmt.Sprintf("%s: %s", msg, detail.Message), keyvals...)
		if detail.Hint != "" {
			output.Info(detail.Hint)
		}
		return
	}

	output.Error(msg, "error", err)
}

// PrintWarnings repeats the run's non-fatal problems after the summary.
func PrintWarnings(warnings []string) {
	for _, w := range warnings {
		output.Warn(w)
	}
}
