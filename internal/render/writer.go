package render

import (
	"os"

	"github.com/go-faster/errors"
)

// WriteFile writes the serialized result (receipt or error report) to the
// given path, replacing any previous content.
func WriteFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.Wrapf(err, "write result file %s", path)
	}
	return nil
}
