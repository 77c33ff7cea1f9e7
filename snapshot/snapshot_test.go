package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tetsuzan/procgo/codec"
	"github.com/tetsuzan/procgo/testutil"
)

func TestRoundTrip(t *testing.T) {
	records := testutil.Records(30)

	compressors := []Compressor{Zstd{}, LZ4{}, None{}}
	codecs := []codec.Codec{codec.GoJSON{}, codec.JSON{}}

	for _, comp := range compressors {
		for _, c := range codecs {
			t.Run(comp.Name()+"/"+c.Name(), func(t *testing.T) {
				data, err := Encode(records, WithCompressor(comp), WithCodec(c))
				require.NoError(t, err)

				got, err := Decode(data)
				require.NoError(t, err)
				require.Len(t, got, len(records))
				for i := range records {
					assert.True(t, records[i].Equal(got[i]), "record %d", i)
				}
			})
		}
	}
}

func TestEmptyRecordSet(t *testing.T) {
	data, err := Encode(nil)
	require.NoError(t, err)
	got, err := Decode(data)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	valid, err := Encode(testutil.Records(5))
	require.NoError(t, err)

	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"truncated header", valid[:4]},
		{"bad magic", append([]byte{0, 0, 0, 0}, valid[4:]...)},
		{"truncated payload", valid[:len(valid)-10]},
		{"not a snapshot", []byte("こんにちは")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			assert.ErrorIs(t, err, ErrInvalidSnapshot)
		})
	}

	t.Run("flipped payload byte", func(t *testing.T) {
		corrupt := append([]byte(nil), valid...)
		corrupt[len(corrupt)-1] ^= 0xFF
		_, err := Decode(corrupt)
		assert.ErrorIs(t, err, ErrInvalidSnapshot)
	})

	t.Run("unsupported version", func(t *testing.T) {
		corrupt := append([]byte(nil), valid...)
		corrupt[4], corrupt[5] = 0xFF, 0xFF
		_, err := Decode(corrupt)
		assert.ErrorIs(t, err, ErrInvalidSnapshot)
	})
}

func TestDecodeChecksCount(t *testing.T) {
	// Re-encode with a lying record count in the header.
	records := testutil.Records(3)
	data, err := Encode(records, WithCompressor(None{}))
	require.NoError(t, err)

	corrupt := append([]byte(nil), data...)
	corrupt[9]++ // count is big-endian at bytes 6..9
	_, err = Decode(corrupt)
	assert.ErrorIs(t, err, ErrInvalidSnapshot)
}
