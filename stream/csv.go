package stream

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/tetsuzan/procgo/model"
)

// CSVWriter renders chunks back into the survey's tabular shape for
// download endpoints: UTF-8 BOM (spreadsheet tools expect it), one header
// row of source column names, then one row per record.
type CSVWriter struct {
	w           io.Writer
	cw          *csv.Writer
	wroteHeader bool
}

// NewCSVWriter creates a CSV chunk writer.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: w, cw: csv.NewWriter(w)}
}

// WriteChunk appends one chunk of rows, emitting BOM and header before
// the first.
func (w *CSVWriter) WriteChunk(chunk []model.Record) error {
	if !w.wroteHeader {
		if _, err := w.w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return err
		}
		header := make([]string, model.FieldCount)
		for i, f := range model.Schema {
			header[i] = f.Name
		}
		if err := w.cw.Write(header); err != nil {
			return err
		}
		w.wroteHeader = true
	}
	for i := range chunk {
		if err := w.cw.Write(chunk[i].Row()); err != nil {
			return err
		}
	}
	w.cw.Flush()
	return w.cw.Error()
}

// DeliverCSV pumps a cursor into a CSV writer chunk by chunk.
func DeliverCSV(ctx context.Context, c *Cursor, w *CSVWriter) error {
	for {
		chunk, err := c.Next(ctx)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := w.WriteChunk(chunk); err != nil {
			return err
		}
	}
}
