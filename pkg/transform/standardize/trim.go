// Package standardize holds cleanup transforms run before the analyses,
// for survey exports with padded or inconsistently spelled labels.
package standardize

import (
	"context"
	"strings"

	p "github.com/wdm0006/pulse/pkg/pulse"
)

type Trim struct{ Column string }

func (t *Trim) Name() string { return "trim" }

func (t *Trim) Apply(ctx context.Context, f *p.Frame) (*p.Frame, error) {
	if c := f.Strings(t.Column); c != nil {
		for i := 0; i < c.Len(); i++ {
			if c.IsNull(i) {
				continue
			}
			v, _ := c.Get(i)
			c.Set(i, strings.TrimSpace(v))
		}
	}
	return f, nil
}
