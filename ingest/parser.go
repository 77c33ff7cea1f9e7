package ingest

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/tetsuzan/procgo/model"
)

// ErrMalformedSource indicates the raw stream cannot be parsed against the
// fixed schema. It is fatal at load time: no partial record set is returned.
var ErrMalformedSource = errors.New("malformed source")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse reads the raw survey stream and returns the records in source row
// order.
//
// The first two lines are discarded unconditionally. Rows shorter than the
// schema are padded with empty trailing fields; the survey has historically
// shipped short rows and dropping them would silently lose records. Rows
// wider than the schema cannot be mapped and abort the parse.
func Parse(r io.Reader) ([]model.Record, error) {
	br := bufio.NewReaderSize(r, 64<<10)
	if err := stripBOM(br); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedSource, err)
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	// Two header lines: column indexes and column names. Neither carries
	// the schema; both are discarded.
	for i := 0; i < 2; i++ {
		if _, err := cr.Read(); err != nil {
			return nil, fmt.Errorf("%w: missing header line %d", ErrMalformedSource, i+1)
		}
	}

	var records []model.Record
	row := make([]string, model.FieldCount)

	for {
		raw, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedSource, err)
		}
		if blankRow(raw) {
			continue
		}
		if len(raw) > model.FieldCount {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d has %d fields, schema has %d",
				ErrMalformedSource, line, len(raw), model.FieldCount)
		}

		n := copy(row, raw)
		for i := n; i < model.FieldCount; i++ {
			row[i] = ""
		}

		rec, err := model.FromRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedSource, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// stripBOM consumes a leading UTF-8 byte-order mark if present.
func stripBOM(br *bufio.Reader) error {
	head, err := br.Peek(len(utf8BOM))
	if err != nil {
		if err == io.EOF {
			// Streams shorter than a BOM are handled by the header check.
			return nil
		}
		return err
	}
	if bytes.Equal(head, utf8BOM) {
		if _, err := br.Discard(len(utf8BOM)); err != nil {
			return err
		}
	}
	return nil
}

func blankRow(fields []string) bool {
	for _, f := range fields {
		if f != "" {
			return false
		}
	}
	return true
}
