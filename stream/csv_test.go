package stream

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tetsuzan/procgo/model"
	"github.com/tetsuzan/procgo/testutil"
)

func TestCSVWriter(t *testing.T) {
	t.Run("BOMAndHeaderOnce", func(t *testing.T) {
		records := testutil.Records(25)
		c, err := Chunks(records, 10)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, DeliverCSV(context.Background(), c, NewCSVWriter(&buf)))

		out := buf.Bytes()
		require.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}))

		rows, err := csv.NewReader(bytes.NewReader(out[3:])).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 1+len(records))

		assert.Equal(t, testutil.Header(), rows[0])
		for i := range records {
			assert.Equal(t, records[i].Row(), rows[1+i], "row %d", i)
		}
	})

	t.Run("EmptySequence", func(t *testing.T) {
		c, err := Chunks(nil, 10)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, DeliverCSV(context.Background(), c, NewCSVWriter(&buf)))
		// No chunk, no header.
		assert.Zero(t, buf.Len())
	})

	t.Run("RowWidthMatchesSchema", func(t *testing.T) {
		c, err := Chunks(testutil.Records(1), 10)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, DeliverCSV(context.Background(), c, NewCSVWriter(&buf)))

		rows, err := csv.NewReader(bytes.NewReader(buf.Bytes()[3:])).ReadAll()
		require.NoError(t, err)
		for _, row := range rows {
			assert.Len(t, row, model.FieldCount)
		}
	})
}
