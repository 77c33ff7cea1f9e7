package stream

import (
	"bufio"
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/tetsuzan/procgo/codec"
	"github.com/tetsuzan/procgo/model"
	"github.com/tetsuzan/procgo/testutil"
)

func TestWriter(t *testing.T) {
	t.Run("LinesIndependentlyParseable", func(t *testing.T) {
		records := testutil.Records(25)
		c, err := Chunks(records, 10)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, Deliver(context.Background(), c, NewWriter(&buf)))

		var joined []model.Record
		sc := bufio.NewScanner(&buf)
		sc.Buffer(make([]byte, 1<<20), 1<<20)
		lines := 0
		for sc.Scan() {
			lines++
			var chunk []model.Record
			require.NoError(t, codec.Default.Unmarshal(sc.Bytes(), &chunk))
			joined = append(joined, chunk...)
		}
		require.NoError(t, sc.Err())

		assert.Equal(t, 3, lines)
		require.Len(t, joined, len(records))
		for i := range records {
			assert.True(t, records[i].Equal(joined[i]), "record %d", i)
		}
	})

	t.Run("CustomCodec", func(t *testing.T) {
		c, err := Chunks(testutil.Records(3), 10)
		require.NoError(t, err)

		var buf bytes.Buffer
		w := NewWriter(&buf, WithCodec(codec.JSON{}))
		require.NoError(t, Deliver(context.Background(), c, w))

		var chunk []model.Record
		require.NoError(t, codec.JSON{}.Unmarshal(bytes.TrimRight(buf.Bytes(), "\n"), &chunk))
		assert.Len(t, chunk, 3)
	})

	t.Run("EmptySequenceWritesNothing", func(t *testing.T) {
		c, err := Chunks(nil, 10)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, Deliver(context.Background(), c, NewWriter(&buf)))
		assert.Zero(t, buf.Len())
	})

	t.Run("CancellationStopsDelivery", func(t *testing.T) {
		c, err := Chunks(testutil.Records(50), 10)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var buf bytes.Buffer
		err = Deliver(ctx, c, NewWriter(&buf))
		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, buf.Len())
	})

	t.Run("TransportErrorSurfaces", func(t *testing.T) {
		c, err := Chunks(testutil.Records(5), 10)
		require.NoError(t, err)

		err = Deliver(context.Background(), c, NewWriter(failWriter{}))
		assert.ErrorContains(t, err, "write chunk")
	})

	t.Run("RateLimitedDeliveryCancellable", func(t *testing.T) {
		c, err := Chunks(testutil.Records(20), 1)
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
		defer cancel()

		var buf bytes.Buffer
		// One chunk per hour after the initial burst: the deadline fires
		// while the limiter is waiting.
		w := NewWriter(&buf, WithRateLimit(rate.Every(time.Hour), 1))
		err = Deliver(ctx, c, w)
		assert.Error(t, err)
		assert.Positive(t, c.Remaining())
	})
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}
