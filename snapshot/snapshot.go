package snapshot

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"

	"github.com/tetsuzan/procgo/codec"
	"github.com/tetsuzan/procgo/model"
)

const (
	// magic identifies procedure snapshot files (ASCII "PSN1").
	magic = 0x50534E31
	// version is the current snapshot format version.
	version = 1
)

var (
	// ErrInvalidSnapshot indicates the bytes are not a decodable snapshot.
	// The loader treats this as a cache miss, not a fatal error.
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)

// Options configure snapshot encoding.
type Options struct {
	// Codec encodes the record slice. Defaults to codec.Default.
	Codec codec.Codec
	// Compressor compresses the encoded payload. Defaults to Zstd.
	Compressor Compressor
}

// Option mutates Options.
type Option func(*Options)

// WithCodec selects the payload codec.
func WithCodec(c codec.Codec) Option {
	return func(o *Options) {
		if c != nil {
			o.Codec = c
		}
	}
}

// WithCompressor selects the payload compressor.
func WithCompressor(c Compressor) Option {
	return func(o *Options) {
		if c != nil {
			o.Compressor = c
		}
	}
}

// Encode serializes records into a self-describing snapshot.
func Encode(records []model.Record, opts ...Option) ([]byte, error) {
	o := Options{Codec: codec.Default, Compressor: Zstd{}}
	for _, fn := range opts {
		fn(&o)
	}

	payload, err := o.Codec.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("snapshot encode: %w", err)
	}
	compressed, err := o.Compressor.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("snapshot compress: %w", err)
	}

	var buf bytes.Buffer
	writeHeader(&buf, header{
		codecName:      o.Codec.Name(),
		compressorName: o.Compressor.Name(),
		count:          uint32(len(records)),
		checksum:       crc32.ChecksumIEEE(compressed),
	})
	buf.Write(compressed)
	return buf.Bytes(), nil
}

// Decode deserializes a snapshot produced by Encode.
//
// All failure modes return an error wrapping ErrInvalidSnapshot so callers
// can treat a stale or foreign file as a plain cache miss.
func Decode(data []byte) ([]model.Record, error) {
	h, body, err := readHeader(data)
	if err != nil {
		return nil, err
	}
	if crc32.ChecksumIEEE(body) != h.checksum {
		return nil, fmt.Errorf("%w: checksum mismatch", ErrInvalidSnapshot)
	}

	c, ok := codec.ByName(h.codecName)
	if !ok {
		return nil, fmt.Errorf("%w: unknown codec %q", ErrInvalidSnapshot, h.codecName)
	}
	comp, ok := compressorByName(h.compressorName)
	if !ok {
		return nil, fmt.Errorf("%w: unknown compressor %q", ErrInvalidSnapshot, h.compressorName)
	}

	payload, err := comp.Decompress(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}

	var records []model.Record
	if err := c.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	if uint32(len(records)) != h.count {
		return nil, fmt.Errorf("%w: header says %d records, payload has %d",
			ErrInvalidSnapshot, h.count, len(records))
	}
	return records, nil
}

type header struct {
	codecName      string
	compressorName string
	count          uint32
	checksum       uint32
}

func writeHeader(buf *bytes.Buffer, h header) {
	var fixed [10]byte
	binary.BigEndian.PutUint32(fixed[0:], magic)
	binary.BigEndian.PutUint16(fixed[4:], version)
	binary.BigEndian.PutUint32(fixed[6:], h.count)
	buf.Write(fixed[:])
	writeString(buf, h.codecName)
	writeString(buf, h.compressorName)
	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], h.checksum)
	buf.Write(sum[:])
}

func readHeader(data []byte) (header, []byte, error) {
	var h header
	if len(data) < 10 {
		return h, nil, fmt.Errorf("%w: truncated header", ErrInvalidSnapshot)
	}
	if binary.BigEndian.Uint32(data[0:]) != magic {
		return h, nil, fmt.Errorf("%w: bad magic", ErrInvalidSnapshot)
	}
	if v := binary.BigEndian.Uint16(data[4:]); v != version {
		return h, nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidSnapshot, v)
	}
	h.count = binary.BigEndian.Uint32(data[6:])

	rest := data[10:]
	var err error
	if h.codecName, rest, err = readString(rest); err != nil {
		return h, nil, err
	}
	if h.compressorName, rest, err = readString(rest); err != nil {
		return h, nil, err
	}
	if len(rest) < 4 {
		return h, nil, fmt.Errorf("%w: truncated checksum", ErrInvalidSnapshot)
	}
	h.checksum = binary.BigEndian.Uint32(rest)
	return h, rest[4:], nil
}

func writeString(buf *bytes.Buffer, s string) {
	var n [2]byte
	binary.BigEndian.PutUint16(n[:], uint16(len(s)))
	buf.Write(n[:])
	buf.WriteString(s)
}

func readString(data []byte) (string, []byte, error) {
	if len(data) < 2 {
		return "", nil, fmt.Errorf("%w: truncated string", ErrInvalidSnapshot)
	}
	n := int(binary.BigEndian.Uint16(data))
	if len(data) < 2+n {
		return "", nil, fmt.Errorf("%w: truncated string", ErrInvalidSnapshot)
	}
	return string(data[2 : 2+n]), data[2+n:], nil
}
