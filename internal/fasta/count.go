// internal/fasta/count.go
package fasta

import (
	"bufio"
	"fmt"
)

// CountRecords scans path and returns the number of FASTA header
// lines. It never parses sequence data, so malformed record bodies do
// not affect the count.
func CountRecords(path string) (int, error) {
	rc, err := openReader(path)
	if err != nil {
		return 0, fmt.Errorf("cannot open %s: %w", path, err)
	}
	defer func() { _ = rc.Close() }()

	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	n := 0
	for sc.Scan() {
		if b := sc.Bytes(); len(b) > 0 && b[0] == '>' {
			n++
		}
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("cannot read %s: %w", path, err)
	}
	return n, nil
}
