package series

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"math"

	"github.com/arloliu/growthlaw/compress"
	"github.com/arloliu/growthlaw/endian"
	"github.com/arloliu/growthlaw/format"
	"github.com/arloliu/growthlaw/internal/options"
	"github.com/arloliu/growthlaw/internal/pool"
)

// Encoded layout:
//
//	header (20 bytes)
//	  magic        [4]byte  "GLS1"
//	  version      uint8
//	  compression  uint8    format.CompressionType of the body
//	  flags        uint8    flagBigEndian | flagHasScale
//	  reserved     uint8
//	  count        uint32   number of samples
//	  bodyLen      uint32   uncompressed body length
//	  checksum     uint32   CRC32 (IEEE) of the uncompressed body
//	body (compressed)
//	  name         uvarint length + bytes
//	  per sample   varint year delta, uvarint label length + bytes,
//	               float64 value, float64 scale (only with flagHasScale)
//
// Multi-byte header fields and float64 values use the byte order selected by flagBigEndian.
const (
	headerSize     = 20
	codecVersion   = 1
	flagBigEndian  = 0x01
	flagHasScale   = 0x02
	minSampleBytes = 1 + 1 + 8 // year delta, label length, value
)

var magic = [4]byte{'G', 'L', 'S', '1'}

var (
	// ErrInvalidMagic is returned when data does not start with an encoded series header.
	ErrInvalidMagic = errors.New("invalid series magic")
	// ErrUnsupportedVersion is returned for payloads written by an unknown codec version.
	ErrUnsupportedVersion = errors.New("unsupported series codec version")
	// ErrChecksumMismatch is returned when the decompressed body fails its CRC32 check.
	ErrChecksumMismatch = errors.New("series checksum mismatch")
	// ErrTruncated is returned when the payload ends before all declared fields are read.
	ErrTruncated = errors.New("series payload truncated")
	// ErrBodyTooLarge is returned when the header declares a body over compress.MaxDecodedSize.
	ErrBodyTooLarge = errors.New("series body too large")
)

// EncodeConfig controls how Encode lays out a series.
type EncodeConfig struct {
	Compression format.CompressionType
	Engine      endian.EndianEngine
}

func defaultEncodeConfig() EncodeConfig {
	return EncodeConfig{
		Compression: format.CompressionZstd,
		Engine:      endian.GetLittleEndianEngine(),
	}
}

// EncodeOption is a functional option for Encode.
type EncodeOption = options.Option[*EncodeConfig]

// WithCompression selects the body codec.
func WithCompression(c format.CompressionType) EncodeOption {
	return options.New(func(cfg *EncodeConfig) error {
		if !c.Valid() {
			return fmt.Errorf("invalid series compression: %s", c)
		}
		cfg.Compression = c

		return nil
	})
}

// WithLittleEndian writes fixed-width fields least significant byte first (the default).
func WithLittleEndian() EncodeOption {
	return options.NoError(func(cfg *EncodeConfig) {
		cfg.Engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian writes fixed-width fields most significant byte first.
func WithBigEndian() EncodeOption {
	return options.NoError(func(cfg *EncodeConfig) {
		cfg.Engine = endian.GetBigEndianEngine()
	})
}

// WithNativeEndian writes fixed-width fields in the host byte order, so producer and consumer
// on the same machine skip byte swapping. The header flag still records the order used.
func WithNativeEndian() EncodeOption {
	return options.NoError(func(cfg *EncodeConfig) {
		cfg.Engine = endian.GetNativeEngine()
	})
}

// Encode serializes s into a self-describing, checksummed payload.
//
// The body (name and samples) is compressed with the configured codec; the 20-byte header
// stays uncompressed so Decode can validate it before touching the body.
//
// Parameters:
//   - s: Series to encode; samples are written in slice order
//   - opts: Optional compression and byte order settings, zstd little-endian by default
//
// Returns:
//   - []byte: Encoded payload, owned by the caller
//   - error: Invalid option or a series with more than math.MaxUint32 samples
//
// Example:
//
//	payload, err := series.Encode(s, series.WithCompression(format.CompressionS2))
//	if err != nil {
//	    return err
//	}
//	decoded, err := series.Decode(payload)
func Encode(s Series, opts ...EncodeOption) ([]byte, error) {
	out, _, err := EncodeWithStats(s, opts...)
	return out, err
}

// EncodeWithStats is Encode that also reports how the body compressed.
//
// The stats cover the body only: OriginalSize is the uncompressed body length recorded in
// the header and CompressedSize is the payload length minus the header.
func EncodeWithStats(s Series, opts ...EncodeOption) ([]byte, compress.Stats, error) {
	cfg := defaultEncodeConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, compress.Stats{}, err
	}
	if uint64(len(s.Samples)) > math.MaxUint32 {
		return nil, compress.Stats{}, fmt.Errorf("series %q has too many samples: %d", s.Name, len(s.Samples))
	}

	var flags uint8
	if endian.IsBigEndian(cfg.Engine) {
		flags |= flagBigEndian
	}
	for _, sample := range s.Samples {
		if sample.Scale != 0 {
			flags |= flagHasScale
			break
		}
	}

	buf := pool.GetBodyBuffer()
	defer pool.PutBodyBuffer(buf)

	encodeBody(buf, s, cfg.Engine, flags&flagHasScale != 0)
	body := buf.Bytes()

	packed, stats, err := compress.CompressWithStats(cfg.Compression, body)
	if err != nil {
		return nil, compress.Stats{}, fmt.Errorf("failed to compress series %q: %w", s.Name, err)
	}

	// packed may alias the pooled buffer, so it is copied out before the buffer is returned
	out := make([]byte, 0, headerSize+len(packed))
	out = append(out, magic[:]...)
	out = append(out, codecVersion, uint8(cfg.Compression), flags, 0)
	out = cfg.Engine.AppendUint32(out, uint32(len(s.Samples)))
	out = cfg.Engine.AppendUint32(out, uint32(len(body)))
	out = cfg.Engine.AppendUint32(out, crc32.ChecksumIEEE(body))

	return append(out, packed...), stats, nil
}

func encodeBody(dst *pool.Buffer, s Series, engine endian.EndianEngine, withScale bool) {
	dst.Grow(binary.MaxVarintLen64 + len(s.Name) + len(s.Samples)*(minSampleBytes+8))

	buf := appendString(dst.B, s.Name)
	prevYear := 0
	for _, sample := range s.Samples {
		buf = binary.AppendVarint(buf, int64(sample.Year-prevYear))
		prevYear = sample.Year
		buf = appendString(buf, sample.Label)
		buf = engine.AppendUint64(buf, math.Float64bits(sample.Value))
		if withScale {
			buf = engine.AppendUint64(buf, math.Float64bits(sample.Scale))
		}
	}

	dst.B = buf
}

func appendString(buf []byte, s string) []byte {
	buf = binary.AppendUvarint(buf, uint64(len(s)))
	return append(buf, s...)
}

// Decode parses a payload produced by Encode.
//
// The header is validated before the body is decompressed: a declared body length over
// compress.MaxDecodedSize is rejected without allocating, and the decompressed body must
// match both the declared length and the CRC32 checksum.
//
// Parameters:
//   - data: Encoded payload; it is not retained
//
// Returns:
//   - Series: Decoded series
//   - error: ErrInvalidMagic, ErrUnsupportedVersion, ErrBodyTooLarge, ErrChecksumMismatch,
//     ErrTruncated or a codec error, all matchable with errors.Is
//
// Example:
//
//	s, err := series.Decode(payload)
//	if errors.Is(err, series.ErrChecksumMismatch) {
//	    // payload corrupted in transit
//	}
func Decode(data []byte) (Series, error) {
	if len(data) < headerSize {
		return Series{}, fmt.Errorf("%w: header needs %d bytes, got %d", ErrTruncated, headerSize, len(data))
	}
	if !bytes.Equal(data[:4], magic[:]) {
		return Series{}, ErrInvalidMagic
	}
	if data[4] != codecVersion {
		return Series{}, fmt.Errorf("%w: %d", ErrUnsupportedVersion, data[4])
	}

	compression := format.CompressionType(data[5])
	flags := data[6]
	engine := endian.ForFlag(flags&flagBigEndian != 0)
	count := engine.Uint32(data[8:12])
	bodyLen := engine.Uint32(data[12:16])
	checksum := engine.Uint32(data[16:20])

	if bodyLen > compress.MaxDecodedSize {
		return Series{}, fmt.Errorf("%w: header declares %d bytes", ErrBodyTooLarge, bodyLen)
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return Series{}, err
	}
	body, err := compress.DecompressSized(codec, data[headerSize:], int(bodyLen))
	if err != nil {
		return Series{}, fmt.Errorf("failed to decompress series body: %w", err)
	}
	if uint32(len(body)) != bodyLen {
		return Series{}, fmt.Errorf("%w: body is %d bytes, header declares %d", ErrTruncated, len(body), bodyLen)
	}
	if crc32.ChecksumIEEE(body) != checksum {
		return Series{}, ErrChecksumMismatch
	}

	return decodeBody(body, int(count), engine, flags&flagHasScale != 0)
}

func decodeBody(body []byte, count int, engine endian.EndianEngine, withScale bool) (Series, error) {
	if count > len(body)/minSampleBytes {
		return Series{}, fmt.Errorf("%w: %d samples cannot fit in %d bytes", ErrTruncated, count, len(body))
	}

	r := bodyReader{buf: body, engine: engine}
	s := Series{Name: r.readString()}
	if count > 0 {
		s.Samples = make([]Sample, 0, count)
	}

	year := 0
	for i := 0; i < count && r.err == nil; i++ {
		year += int(r.readVarint())
		sample := Sample{Year: year, Label: r.readString(), Value: r.readFloat()}
		if withScale {
			sample.Scale = r.readFloat()
		}
		s.Samples = append(s.Samples, sample)
	}
	if r.err != nil {
		return Series{}, r.err
	}

	return s, nil
}

// bodyReader consumes a decompressed body and latches the first error.
type bodyReader struct {
	buf    []byte
	pos    int
	engine endian.EndianEngine
	err    error
}

func (r *bodyReader) fail() {
	if r.err == nil {
		r.err = fmt.Errorf("%w: at body offset %d", ErrTruncated, r.pos)
	}
}

func (r *bodyReader) readVarint() int64 {
	if r.err != nil {
		return 0
	}
	v, n := binary.Varint(r.buf[r.pos:])
	if n <= 0 {
		r.fail()
		return 0
	}
	r.pos += n

	return v
}

func (r *bodyReader) readString() string {
	if r.err != nil {
		return ""
	}
	l, n := binary.Uvarint(r.buf[r.pos:])
	if n <= 0 || l > uint64(len(r.buf)-r.pos-n) {
		r.fail()
		return ""
	}
	r.pos += n
	s := string(r.buf[r.pos : r.pos+int(l)])
	r.pos += int(l)

	return s
}

func (r *bodyReader) readFloat() float64 {
	if r.err != nil {
		return 0
	}
	if len(r.buf)-r.pos < 8 {
		r.fail()
		return 0
	}
	v := math.Float64frombits(r.engine.Uint64(r.buf[r.pos:]))
	r.pos += 8

	return v
}
