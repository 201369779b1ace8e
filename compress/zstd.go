package compress

// ZstdCompressor gives the best compression ratio of the built-in codecs and is the
// default for archived series.
//
// The implementation is selected at build time, see the package documentation.
type ZstdCompressor struct{}

var (
	_ Codec             = (*ZstdCompressor)(nil)
	_ SizedDecompressor = (*ZstdCompressor)(nil)
)

// NewZstdCompressor creates a Zstd codec.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
