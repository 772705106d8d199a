// internal/split/split.go
package split

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fastasplit/internal/fasta"
)

// ChunkPath returns the output path for the 1-based chunk index idx:
// <outputDir>/<stem>_<idx><ext>, stem and extension taken from the
// input basename. A trailing .gz is dropped first, since chunks are
// always written as plain text.
func ChunkPath(inputPath, outputDir string, idx int) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), ".gz")
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(outputDir, fmt.Sprintf("%s_%d%s", stem, idx, ext))
}

// chunk is the currently-open output file.
type chunk struct {
	path string
	fh   *os.File
	w    *bufio.Writer
}

func openChunk(path string) (*chunk, error) {
	fh, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s: %w", path, err)
	}
	return &chunk{path: path, fh: fh, w: bufio.NewWriter(fh)}, nil
}

func (c *chunk) write(s string) error {
	if _, err := c.w.WriteString(s); err != nil {
		return fmt.Errorf("cannot write %s: %w", c.path, err)
	}
	return nil
}

func (c *chunk) close() error {
	if err := c.w.Flush(); err != nil {
		_ = c.fh.Close()
		return fmt.Errorf("cannot write %s: %w", c.path, err)
	}
	if err := c.fh.Close(); err != nil {
		return fmt.Errorf("cannot close %s: %w", c.path, err)
	}
	return nil
}

// formatRecord serializes a record the one way both policies write it:
// header, wrapped sequence, one trailing newline each.
func formatRecord(rec fasta.Record, width int) string {
	return rec.Header + "\n" + Wrap(rec.Seq, width) + "\n"
}

// rolloverFunc decides, from the open chunk's accumulators, whether
// the next record must start a new chunk.
type rolloverFunc func(records, bytes int64) bool

// run streams records from inputPath into numbered chunk files,
// consulting roll before each write. At most one input and one output
// handle are open at any time. Returns the number of chunks written;
// on error, chunks already written stay on disk.
func run(ctx context.Context, inputPath, outputDir string, width int, roll rolloverFunc) (int, error) {
	rd, closer, err := fasta.Open(inputPath)
	if err != nil {
		return 0, fmt.Errorf("cannot open %s: %w", inputPath, err)
	}
	defer func() { _ = closer.Close() }()

	idx := 1
	cur, err := openChunk(ChunkPath(inputPath, outputDir, idx))
	if err != nil {
		return 0, err
	}
	var records, size int64
	for {
		if err := ctx.Err(); err != nil {
			_ = cur.close()
			return idx, err
		}
		rec, err := rd.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			_ = cur.close()
			return idx, fmt.Errorf("cannot read %s: %w", inputPath, err)
		}
		if roll(records, size) {
			if err := cur.close(); err != nil {
				return idx, err
			}
			idx++
			records, size = 0, 0
			if cur, err = openChunk(ChunkPath(inputPath, outputDir, idx)); err != nil {
				return idx, err
			}
		}
		out := formatRecord(rec, width)
		if err := cur.write(out); err != nil {
			_ = cur.close()
			return idx, err
		}
		records++
		size += int64(len(out))
	}
	if err := cur.close(); err != nil {
		return idx, err
	}
	return idx, nil
}

// ByCount writes exactly chunkSize records into each chunk; the last
// chunk holds the remainder. Records keep their input order and each
// lands in exactly one chunk.
func ByCount(ctx context.Context, inputPath string, chunkSize int64, outputDir string, width int) (int, error) {
	if chunkSize < 1 {
		return 0, fmt.Errorf("chunk size must be at least 1, got %d", chunkSize)
	}
	return run(ctx, inputPath, outputDir, width, func(records, _ int64) bool {
		return records >= chunkSize
	})
}

// ByMaxSize starts a new chunk once the open chunk has accumulated at
// least maxBytes. The check happens before each write, so a chunk may
// exceed maxBytes by up to one serialized record; records are never
// split across chunks.
func ByMaxSize(ctx context.Context, inputPath string, maxBytes int64, outputDir string, width int) (int, error) {
	if maxBytes < 1 {
		return 0, fmt.Errorf("max file size must be at least 1, got %d", maxBytes)
	}
	return run(ctx, inputPath, outputDir, width, func(_, size int64) bool {
		return size >= maxBytes
	})
}
