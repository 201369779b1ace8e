// Package compress provides the codecs applied to encoded series bodies.
//
// # Overview
//
// An encoded series goes through two stages:
//
//  1. Encoding: the series package writes the name, year deltas as varints, labels and
//     fixed-width float64 values into a body
//  2. Compression: a codec from this package shrinks that body
//
// Only the body is compressed. The series header stays readable so the decoder can check
// the magic, version and declared body length before any decompression happens.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Codecs that can decode into a buffer of known size also implement SizedDecompressor.
// DecompressSized uses it when available and falls back to Decompress otherwise.
//
// # Supported Algorithms
//
// **NoOp** (format.CompressionNone)
//
//	codec := compress.NewNoOpCompressor()
//	packed, _ := codec.Compress(body) // returns body itself
//
// Use when the body is tiny (a handful of samples) or when the payload is inspected by hand.
//
// **Zstandard** (format.CompressionZstd, the series default)
//
//	codec := compress.NewZstdCompressor()
//	packed, _ := codec.Compress(body)
//	body, _ = codec.Decompress(packed)
//
// Best ratio of the built-in codecs. Repeated label text ("Intel", "Core") and the shared
// exponent bytes of float64 values compress well. Use for archived datasets.
//
// **S2** (format.CompressionS2)
//
//	codec := compress.NewS2Compressor()
//	packed, _ := codec.Compress(body)
//
// Balanced speed and ratio. The block header records the decoded length, so oversized
// blocks are rejected before the output is allocated.
//
// **LZ4** (format.CompressionLZ4)
//
//	codec := compress.NewLZ4Compressor()
//	packed, _ := codec.Compress(body)
//
// Fastest decompression. Raw LZ4 blocks do not record their decoded length; pass the
// length from the series header through DecompressSized to decode in a single allocation.
//
// # Algorithm Selection Guide
//
//	| Workload                    | Recommended | Reason                       |
//	|-----------------------------|-------------|------------------------------|
//	| Archived datasets           | Zstd        | Best compression ratio       |
//	| Batch analysis of many sets | S2          | Balanced speed and ratio     |
//	| Repeated reads of one set   | LZ4         | Fastest decompression        |
//	| Debugging payloads          | None        | Body readable as encoded     |
//
// # Statistics
//
// CompressWithStats reports the original and compressed sizes of one operation:
//
//	packed, stats, err := compress.CompressWithStats(format.CompressionZstd, body)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%.1f%% saved\n", stats.SpaceSavings())
//
// # Size Limits
//
// No decompression produces more than MaxDecodedSize bytes. DecompressSized rejects a
// larger declared size up front with ErrDecodedSizeLimit, the zstd decoder is configured
// with the same memory ceiling, and the LZ4 growth loop stops there.
//
// # Build Tags
//
// Zstd uses the pure-Go github.com/klauspost/compress/zstd implementation by default.
// Building with cgo enabled and the gozstd tag switches to github.com/valyala/gozstd:
//
//	go build -tags gozstd ./...
//
// Both produce standard zstd frames, so payloads are interchangeable.
//
// # Thread Safety
//
// All codecs are stateless values backed by pooled encoders and decoders and are safe
// for concurrent use.
package compress
