// internal/bytesize/bytesize.go
package bytesize

import (
	"fmt"
	"strconv"
)

// Binary multiples for the single-letter size suffixes.
const (
	KiB = int64(1) << 10
	MiB = int64(1) << 20
	GiB = int64(1) << 30
	TiB = int64(1) << 40
)

// Parse converts a byte count with an optional single-letter suffix
// (k, M, G, T — binary multiples) into bytes. The numeric part may be
// fractional; the result is truncated to an integer.
func Parse(s string) (int64, error) {
	if s == "" {
		return 0, fmt.Errorf("empty size")
	}
	mult := int64(1)
	num := s
	if last := s[len(s)-1]; last < '0' || last > '9' {
		switch last {
		case 'k':
			mult = KiB
		case 'M':
			mult = MiB
		case 'G':
			mult = GiB
		case 'T':
			mult = TiB
		default:
			return 0, fmt.Errorf("unknown suffix %q", string(last))
		}
		num = s[:len(s)-1]
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q", s)
	}
	return int64(v * float64(mult)), nil
}
