package csvfile

import (
	"bufio"
	"context"
	"io"
	"os"
	"strconv"
	"strings"

	pgzip "github.com/klauspost/pgzip"
	"github.com/shopspring/decimal"
)

const columnSeparator = ";"

// readRows streams a semicolon-delimited reference file and calls fn for
// every data row. The header row is skipped, blank lines are ignored, and
// each row must carry exactly wantFields fields. Files with a .gz suffix
// are decompressed transparently.
func readRows(ctx context.Context, path string, wantFields int, fn func(fields []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return &StorageError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := pgzip.NewReader(f)
		if err != nil {
			return &StorageError{Path: path, Err: err}
		}
		defer func() { _ = gz.Close() }()
		r = gz
	}

	scanner := bufio.NewScanner(r)
	header := true
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := scanner.Text()
		if header {
			header = false
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := strings.Split(line, columnSeparator)
		if len(fields) != wantFields {
			return &FieldError{Path: path, Field: "row", Reason: "has wrong number of columns"}
		}
		if err := fn(fields); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return &StorageError{Path: path, Err: err}
	}

	return nil
}

// parsePositiveInt parses an integer field that must be strictly positive.
func parsePositiveInt(path, field, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, &FieldError{Path: path, Field: field, Reason: "must be an integer"}
	}
	if n <= 0 {
		return 0, &FieldError{Path: path, Field: field, Reason: "must be positive"}
	}
	return n, nil
}

// parsePositiveDecimal parses a decimal field that must be strictly
// positive. Both comma and dot are accepted as the fractional separator.
func parsePositiveDecimal(path, field, value string) (decimal.Decimal, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return decimal.Decimal{}, &FieldError{Path: path, Field: field, Reason: "must be a decimal"}
	}
	if !d.IsPositive() {
		return decimal.Decimal{}, &FieldError{Path: path, Field: field, Reason: "must be positive"}
	}
	return d, nil
}

// parseNonEmpty validates a text field that cannot be blank.
func parseNonEmpty(path, field, value string) (string, error) {
	if value == "" {
		return "", &FieldError{Path: path, Field: field, Reason: "cannot be null or empty"}
	}
	return value, nil
}
