// internal/split/wrap.go
package split

import "strings"

// DefaultLineWidth is the classic 80-column FASTA line width.
const DefaultLineWidth = 80

// Wrap splits seq into lines of exactly width bytes joined by '\n';
// only the last line may be shorter. A width <= 0 disables wrapping
// and returns the sequence as a single line.
func Wrap(seq []byte, width int) string {
	if width <= 0 || len(seq) <= width {
		return string(seq)
	}
	var b strings.Builder
	b.Grow(len(seq) + len(seq)/width)
	for i := 0; i < len(seq); i += width {
		if i > 0 {
			b.WriteByte('\n')
		}
		end := i + width
		if end > len(seq) {
			end = len(seq)
		}
		b.Write(seq[i:end])
	}
	return b.String()
}
