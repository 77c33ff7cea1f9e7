package snapshot

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compressor compresses and decompresses snapshot payloads.
// Implementations must be safe for concurrent use.
type Compressor interface {
	Name() string
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

func compressorByName(name string) (Compressor, bool) {
	switch name {
	case "zstd":
		return Zstd{}, true
	case "lz4":
		return LZ4{}, true
	case "none":
		return None{}, true
	default:
		return nil, false
	}
}

// Zstd compresses with klauspost zstd. The default: best ratio on the
// highly repetitive survey text at decode speeds that keep warm start
// parse-free in practice.
type Zstd struct{}

// Name returns "zstd".
func (Zstd) Name() string { return "zstd" }

// Compress compresses data.
func (Zstd) Compress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	out := enc.EncodeAll(data, make([]byte, 0, len(data)/4))
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return out, nil
}

// Decompress decompresses data.
func (Zstd) Decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(data, nil)
}

// LZ4 compresses with the lz4 frame format. Faster than zstd at a worse
// ratio; useful when the snapshot sits on fast local disk.
type LZ4 struct{}

// Name returns "lz4".
func (LZ4) Name() string { return "lz4" }

// Compress compresses data.
func (LZ4) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decompress decompresses data.
func (LZ4) Decompress(data []byte) ([]byte, error) {
	return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
}

// None is the identity compressor, mainly for tests and debugging.
type None struct{}

// Name returns "none".
func (None) Name() string { return "none" }

// Compress returns data unchanged.
func (None) Compress(data []byte) ([]byte, error) { return data, nil }

// Decompress returns data unchanged.
func (None) Decompress(data []byte) ([]byte, error) { return data, nil }
