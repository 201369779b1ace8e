// Package pool recycles scratch buffers used while encoding series bodies.
package pool

import "sync"

const (
	// BodyBufferDefaultSize is the initial capacity of pooled body buffers.
	BodyBufferDefaultSize = 4 * 1024 // 4KiB
	// BodyBufferMaxThreshold is the largest buffer the default pool retains.
	BodyBufferMaxThreshold = 64 * 1024 // 64KiB
)

// Buffer is a reusable, growable byte slice.
type Buffer struct {
	B []byte
}

// NewBuffer creates an empty buffer with the given capacity.
func NewBuffer(size int) *Buffer {
	return &Buffer{B: make([]byte, 0, size)}
}

// Bytes returns the buffered data.
func (b *Buffer) Bytes() []byte {
	return b.B
}

// Len returns the number of buffered bytes.
func (b *Buffer) Len() int {
	return len(b.B)
}

// Reset empties the buffer and keeps its storage.
func (b *Buffer) Reset() {
	b.B = b.B[:0]
}

// Grow ensures at least n more bytes fit without reallocating.
// Small buffers grow by BodyBufferDefaultSize, larger ones by a quarter of their capacity.
func (b *Buffer) Grow(n int) {
	if cap(b.B)-len(b.B) >= n {
		return
	}

	growBy := BodyBufferDefaultSize
	if cap(b.B) > 4*BodyBufferDefaultSize {
		growBy = cap(b.B) / 4
	}
	growBy = max(growBy, n)

	grown := make([]byte, len(b.B), len(b.B)+growBy)
	copy(grown, b.B)
	b.B = grown
}

// BufferPool is a sync.Pool of Buffers that drops buffers grown beyond maxThreshold.
type BufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewBufferPool creates a pool handing out buffers of defaultSize capacity.
// A non-positive maxThreshold retains buffers of any size.
func NewBufferPool(defaultSize, maxThreshold int) *BufferPool {
	return &BufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get returns an empty buffer.
func (p *BufferPool) Get() *Buffer {
	b, _ := p.pool.Get().(*Buffer)
	return b
}

// Put resets b and returns it to the pool. The caller must not use b afterwards.
func (p *BufferPool) Put(b *Buffer) {
	if b == nil {
		return
	}
	if p.maxThreshold > 0 && cap(b.B) > p.maxThreshold {
		return
	}

	b.Reset()
	p.pool.Put(b)
}

var bodyPool = NewBufferPool(BodyBufferDefaultSize, BodyBufferMaxThreshold)

// GetBodyBuffer retrieves a buffer from the default series body pool.
func GetBodyBuffer() *Buffer {
	return bodyPool.Get()
}

// PutBodyBuffer returns a buffer to the default series body pool.
func PutBodyBuffer(b *Buffer) {
	bodyPool.Put(b)
}
