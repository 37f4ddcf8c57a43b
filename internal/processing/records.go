package processing

import (
	"bufio"
	"io"
	"strings"

	"github.com/lgbarn/boardstate-go/internal/errors"
)

// Record is one FEN record read from an input, with its location.
type Record struct {
	Text  string
	File  string
	Line  int
	Index int
}

// ReadRecords reads one record per line. Blank lines and lines starting
// with '#' are skipped. Index numbers records from 0 across the input;
// base is added so that several inputs can share one numbering.
func ReadRecords(r io.Reader, file string, base int) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		records = append(records, Record{
			Text:  text,
			File:  file,
			Line:  line,
			Index: base + len(records),
		})
	}
	if err := scanner.Err(); err != nil {
		return records, errors.Wrapf(err, "reading %s", file)
	}
	return records, nil
}

// asValidationError extracts a *errors.ValidationError from an error chain.
func asValidationError(err error) *errors.ValidationError {
	var verr *errors.ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return nil
}
