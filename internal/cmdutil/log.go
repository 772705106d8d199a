// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
)

// Infof prints a progress line unless quiet is set.
func Infof(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, format+"\n", a...)
}
