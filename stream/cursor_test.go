package stream

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tetsuzan/procgo/model"
	"github.com/tetsuzan/procgo/testutil"
)

func TestChunks(t *testing.T) {
	t.Run("InvalidSize", func(t *testing.T) {
		for _, size := range []int{0, -1, -100} {
			_, err := Chunks(nil, size)
			var sizeErr *InvalidChunkSizeError
			require.ErrorAs(t, err, &sizeErr)
			assert.Equal(t, size, sizeErr.Size)
		}
	})

	t.Run("ExactWindows", func(t *testing.T) {
		records := testutil.Records(250)
		c, err := Chunks(records, 100)
		require.NoError(t, err)
		ctx := context.Background()

		var sizes []int
		var joined []model.Record
		for {
			chunk, err := c.Next(ctx)
			if err == io.EOF {
				break
			}
			require.NoError(t, err)
			sizes = append(sizes, len(chunk))
			joined = append(joined, chunk...)
		}

		assert.Equal(t, []int{100, 100, 50}, sizes)
		require.Len(t, joined, len(records))
		for i := range records {
			assert.True(t, records[i].Equal(joined[i]), "record %d", i)
		}

		// Exhausted cursors keep returning io.EOF.
		_, err = c.Next(ctx)
		assert.ErrorIs(t, err, io.EOF)
		_, err = c.Next(ctx)
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("MultipleOfSize", func(t *testing.T) {
		c, err := Chunks(testutil.Records(200), 100)
		require.NoError(t, err)
		ctx := context.Background()

		for i := 0; i < 2; i++ {
			chunk, err := c.Next(ctx)
			require.NoError(t, err)
			assert.Len(t, chunk, 100)
		}
		_, err = c.Next(ctx)
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("SmallerThanSize", func(t *testing.T) {
		c, err := Chunks(testutil.Records(7), DefaultChunkSize)
		require.NoError(t, err)

		chunk, err := c.Next(context.Background())
		require.NoError(t, err)
		assert.Len(t, chunk, 7)
	})

	t.Run("EmptySequence", func(t *testing.T) {
		c, err := Chunks(nil, 10)
		require.NoError(t, err)
		_, err = c.Next(context.Background())
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("Remaining", func(t *testing.T) {
		c, err := Chunks(testutil.Records(25), 10)
		require.NoError(t, err)
		ctx := context.Background()

		assert.Equal(t, 25, c.Remaining())
		_, err = c.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, 15, c.Remaining())
		_, err = c.Next(ctx)
		require.NoError(t, err)
		_, err = c.Next(ctx)
		require.NoError(t, err)
		assert.Zero(t, c.Remaining())
	})

	t.Run("Cancellation", func(t *testing.T) {
		c, err := Chunks(testutil.Records(30), 10)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		_, err = c.Next(ctx)
		require.NoError(t, err)

		cancel()
		_, err = c.Next(ctx)
		assert.ErrorIs(t, err, context.Canceled)
		// The untaken remainder stays untaken.
		assert.Equal(t, 20, c.Remaining())
	})
}

func TestCursorSeq(t *testing.T) {
	t.Run("YieldsAllChunks", func(t *testing.T) {
		records := testutil.Records(45)
		c, err := Chunks(records, 20)
		require.NoError(t, err)

		var joined []model.Record
		for chunk, err := range c.Seq(context.Background()) {
			require.NoError(t, err)
			joined = append(joined, chunk...)
		}
		assert.Len(t, joined, len(records))
	})

	t.Run("BreakStopsProduction", func(t *testing.T) {
		c, err := Chunks(testutil.Records(50), 10)
		require.NoError(t, err)

		for range c.Seq(context.Background()) {
			break
		}
		assert.Equal(t, 40, c.Remaining())
	})

	t.Run("ContextErrorSurfaces", func(t *testing.T) {
		c, err := Chunks(testutil.Records(10), 5)
		require.NoError(t, err)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var got error
		for _, err := range c.Seq(ctx) {
			got = err
		}
		assert.ErrorIs(t, got, context.Canceled)
	})
}
