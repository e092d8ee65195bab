// Package ioseq turns byte sources into lazy sequences of byte chunks.
package ioseq

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"slices"

	"github.com/go-softwarelab/common/pkg/seqerr"

	"commons/unchecked"
)

// a reader that keeps returning 0, nil is treated as stuck after this many reads
const maxConsecutiveEmptyReads = 100

// ChunkReader reads a source one buffer at a time:
//
//	cr := ioseq.NewChunkReader(r)
//	for cr.Next() {
//		use(cr.Chunk())
//	}
//	if err := cr.Err(); err != nil {
//		...
//	}
//
// Every chunk is a fresh copy of exactly the bytes one Read produced, so it
// stays valid after later calls to Next reuse the buffer. io.EOF ends the
// sequence without an error; any other failure is classified with
// unchecked.Classify and reported by Err once the chunks read before it have
// been handed out.
type ChunkReader struct {
	src    io.Reader
	buf    []byte
	chunk  []byte
	err    error
	done   bool
	chunks int
	bytes  int64
	logger *slog.Logger
}

func NewChunkReader(r io.Reader, opts ...ChunkOption) *ChunkReader {
	cfg := newChunkConfig(opts)
	return &ChunkReader{
		src:    r,
		buf:    make([]byte, cfg.BufferSize),
		logger: cfg.Logger,
	}
}

// Next reads the next chunk from the source. It returns false once the
// source is exhausted or has failed.
func (cr *ChunkReader) Next() bool {
	cr.chunk = nil
	if cr.done {
		return false
	}
	for empty := 0; empty < maxConsecutiveEmptyReads; empty++ {
		n, err := cr.src.Read(cr.buf)
		if n < 0 || n > len(cr.buf) {
			cr.finish(fmt.Errorf("ioseq: invalid read count %d for buffer of %d", n, len(cr.buf)))
			return false
		}
		if n > 0 {
			cr.chunk = slices.Clone(cr.buf[:n])
			cr.chunks++
			cr.bytes += int64(n)
			if err != nil {
				cr.finish(err)
			}
			return true
		}
		if err != nil {
			cr.finish(err)
			return false
		}
	}
	cr.finish(io.ErrNoProgress)
	return false
}

// Chunk returns the chunk read by the last successful Next.
func (cr *ChunkReader) Chunk() []byte {
	return cr.chunk
}

// Err returns the classified read failure, or nil if the source ended with io.EOF.
func (cr *ChunkReader) Err() error {
	if cr.chunk != nil {
		// the chunk read together with the failure is handed out first
		return nil
	}
	return cr.err
}

func (cr *ChunkReader) finish(err error) {
	cr.done = true
	if errors.Is(err, io.EOF) {
		cr.logger.Debug("byte source exhausted", "chunks", cr.chunks, "bytes", cr.bytes)
		return
	}
	cr.err = unchecked.Classify(err)
	kind, _ := unchecked.KindOf(cr.err)
	cr.logger.Warn("byte source read failed",
		"kind", kind.String(),
		"chunks", cr.chunks,
		"bytes", cr.bytes,
		"error", cr.err.Error(),
	)
}

// All yields the remaining chunks. A read failure is yielded as the final
// pair, with a nil chunk.
func (cr *ChunkReader) All() iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for cr.Next() {
			if !yield(cr.Chunk(), nil) {
				return
			}
		}
		if err := cr.Err(); err != nil {
			yield(nil, err)
		}
	}
}

// Chunks is NewChunkReader(r, opts...).All(). The source is read lazily, one
// buffer per pull, and the sequence is single-pass.
func Chunks(r io.Reader, opts ...ChunkOption) iter.Seq2[[]byte, error] {
	return NewChunkReader(r, opts...).All()
}

// ReadAll concatenates every chunk of r. On failure it returns nil and the
// classified error.
func ReadAll(r io.Reader, opts ...ChunkOption) ([]byte, error) {
	return seqerr.Reduce(Chunks(r, opts...), func(data []byte, chunk []byte) []byte {
		return append(data, chunk...)
	}, []byte{})
}
