package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"
)

// S2Compressor balances compression speed and ratio.
type S2Compressor struct{}

var (
	_ Codec             = (*S2Compressor)(nil)
	_ SizedDecompressor = (*S2Compressor)(nil)
)

// NewS2Compressor creates an S2 codec.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes data as an S2 block.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes an S2 block.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	return c.DecompressSized(data, MaxDecodedSize)
}

// DecompressSized decodes an S2 block whose decoded length must not exceed size.
// The block header records the decoded length, so oversized blocks fail before allocation.
func (c S2Compressor) DecompressSized(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	n, err := s2.DecodedLen(data)
	if err != nil {
		return nil, err
	}
	if n > size || n > MaxDecodedSize {
		return nil, fmt.Errorf("%w: s2 block decodes to %d bytes, limit %d", ErrDecodedSizeLimit, n, min(size, MaxDecodedSize))
	}

	return s2.Decode(make([]byte, n), data)
}
