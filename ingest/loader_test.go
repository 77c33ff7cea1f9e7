package ingest

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tetsuzan/procgo/blobstore"
	"github.com/tetsuzan/procgo/snapshot"
	"github.com/tetsuzan/procgo/testutil"
)

func TestLoader(t *testing.T) {
	ctx := context.Background()
	records := testutil.Records(10)

	t.Run("LoadFromCSV", func(t *testing.T) {
		source := blobstore.NewMemoryStore()
		require.NoError(t, source.Put(ctx, "survey.csv", testutil.CSV(records...)))

		got, err := NewLoader(source, "survey.csv").Load(ctx)
		require.NoError(t, err)
		assert.Len(t, got, len(records))
	})

	t.Run("MissingSource", func(t *testing.T) {
		source := blobstore.NewMemoryStore()
		_, err := NewLoader(source, "survey.csv").Load(ctx)
		require.ErrorIs(t, err, blobstore.ErrNotFound)
	})

	t.Run("SnapshotWrittenAndPreferred", func(t *testing.T) {
		source := blobstore.NewMemoryStore()
		require.NoError(t, source.Put(ctx, "survey.csv", testutil.CSV(records...)))

		l := NewLoader(source, "survey.csv", WithSnapshot("survey.snap"))
		got, err := l.Load(ctx)
		require.NoError(t, err)
		require.Len(t, got, len(records))

		// The first load must have written the snapshot.
		rc, err := source.Open(ctx, "survey.snap")
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		decoded, err := snapshot.Decode(data)
		require.NoError(t, err)
		assert.Len(t, decoded, len(records))

		// Break the CSV: a warm start must not touch it.
		require.NoError(t, source.Put(ctx, "survey.csv", []byte("garbage")))
		got, err = l.Load(ctx)
		require.NoError(t, err)
		require.Len(t, got, len(records))
		for i := range records {
			assert.True(t, records[i].Equal(got[i]), "record %d", i)
		}
	})

	t.Run("CorruptSnapshotFallsBack", func(t *testing.T) {
		source := blobstore.NewMemoryStore()
		require.NoError(t, source.Put(ctx, "survey.csv", testutil.CSV(records...)))
		require.NoError(t, source.Put(ctx, "survey.snap", []byte("not a snapshot")))

		got, err := NewLoader(source, "survey.csv", WithSnapshot("survey.snap")).Load(ctx)
		require.NoError(t, err)
		assert.Len(t, got, len(records))

		// The fallback parse rewrites a usable snapshot.
		rc, err := source.Open(ctx, "survey.snap")
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		_, err = snapshot.Decode(data)
		assert.NoError(t, err)
	})

	t.Run("SnapshotOptions", func(t *testing.T) {
		source := blobstore.NewMemoryStore()
		require.NoError(t, source.Put(ctx, "survey.csv", testutil.CSV(records...)))

		l := NewLoader(source, "survey.csv",
			WithSnapshot("survey.snap", snapshot.WithCompressor(snapshot.LZ4{})))
		_, err := l.Load(ctx)
		require.NoError(t, err)

		rc, err := source.Open(ctx, "survey.snap")
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		decoded, err := snapshot.Decode(data)
		require.NoError(t, err)
		assert.Len(t, decoded, len(records))
	})
}
