// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"io"
)

// Record is one FASTA entry: the full header line (including the
// leading '>') and the concatenated sequence with no line breaks.
type Record struct {
	Header string
	Seq    []byte
}

const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)

// Reader yields Records from a FASTA stream, one per Next call.
// Forward-only; not restartable.
type Reader struct {
	sc     *bufio.Scanner
	header string
	seq    []byte
	done   bool
}

func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return &Reader{sc: sc}
}

// Open returns a Reader over path (gzip handled transparently).
// The returned Closer releases the underlying file.
func Open(path string) (*Reader, io.Closer, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, nil, err
	}
	return NewReader(rc), rc, nil
}

// Next returns the next record, or io.EOF once the stream is
// exhausted. Content before the first header line is discarded; blank
// lines contribute nothing to the sequence.
func (r *Reader) Next() (Record, error) {
	if r.done {
		return Record{}, io.EOF
	}
	for r.sc.Scan() {
		line := bytes.TrimRight(r.sc.Bytes(), "\r")
		if len(line) > 0 && line[0] == '>' {
			if r.header != "" {
				rec := Record{Header: r.header, Seq: r.seq}
				r.header = string(line)
				r.seq = nil
				return rec, nil
			}
			r.header = string(line)
			continue
		}
		if r.header == "" {
			continue
		}
		r.seq = append(r.seq, line...)
	}
	if err := r.sc.Err(); err != nil {
		return Record{}, err
	}
	r.done = true
	if r.header != "" {
		return Record{Header: r.header, Seq: r.seq}, nil
	}
	return Record{}, io.EOF
}
