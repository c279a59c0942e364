// Package textio writes plain-text report artifacts.
package textio

import (
	"io"

	iox "github.com/wdm0006/pulse/pkg/io/ioutils"
)

// WriteReport writes the rendered report to path, creating or overwriting
// the file. A ".gz" path is gzip compressed; "-" writes to stdout.
func WriteReport(path, report string) error {
	out, err := iox.CreateMaybeCompressed(path)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(out, report); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
