package compress

import (
	"errors"
	"fmt"

	"github.com/arloliu/growthlaw/format"
)

// Compressor compresses an encoded series body.
//
// The returned slice is owned by the caller; the input is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a body produced by the matching Compressor.
//
// It returns an error when data is corrupted or was produced by a different algorithm.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// MaxDecodedSize bounds the output of every decompression; no encoded series body comes close.
const MaxDecodedSize = 64 << 20

// ErrDecodedSizeLimit is returned when a declared or produced output exceeds MaxDecodedSize.
var ErrDecodedSizeLimit = errors.New("decoded size exceeds limit")

// SizedDecompressor is implemented by codecs that can decode straight into a buffer of a
// known size instead of guessing and growing.
type SizedDecompressor interface {
	DecompressSized(data []byte, size int) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// Stats describes one compression operation.
type Stats struct {
	Algorithm      format.CompressionType
	OriginalSize   int
	CompressedSize int
}

// Ratio returns CompressedSize / OriginalSize, or 0 for an empty input.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the saved space as a percentage of the original size.
func (s Stats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		return 0
	}

	return (1 - s.Ratio()) * 100
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the built-in Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}

// CompressWithStats compresses data with the codec registered for compressionType and reports
// the resulting sizes.
func CompressWithStats(compressionType format.CompressionType, data []byte) ([]byte, Stats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, Stats{}, err
	}

	out, err := codec.Compress(data)
	if err != nil {
		return nil, Stats{}, fmt.Errorf("%s compression failed: %w", compressionType, err)
	}

	return out, Stats{Algorithm: compressionType, OriginalSize: len(data), CompressedSize: len(out)}, nil
}

// DecompressSized decompresses data whose original length is known to be size.
//
// Sizes outside [0, MaxDecodedSize] are rejected before any work is done. Codecs
// implementing SizedDecompressor allocate the output once; others fall back to Decompress.
// The result is not guaranteed to be exactly size bytes, callers still verify the length.
//
// Parameters:
//   - d: Codec registered for the payload's compression type
//   - data: Compressed bytes
//   - size: Expected decompressed length, usually read from a trusted header field
//
// Returns:
//   - []byte: Decompressed bytes
//   - error: ErrDecodedSizeLimit for an out-of-range size, or the codec's error
func DecompressSized(d Decompressor, data []byte, size int) ([]byte, error) {
	if size < 0 || size > MaxDecodedSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrDecodedSizeLimit, size)
	}
	if sd, ok := d.(SizedDecompressor); ok {
		return sd.DecompressSized(data, size)
	}

	return d.Decompress(data)
}
