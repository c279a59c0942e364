package standardize

import (
	"context"

	p "github.com/wdm0006/pulse/pkg/pulse"
)

// MapValues rewrites exact string matches, e.g. canonicalizing engagement
// labels ("HIGH" -> "High") before scoring.
type MapValues struct {
	Column string
	Map    map[string]string
}

func (t *MapValues) Name() string { return "map_values" }

func (t *MapValues) Apply(ctx context.Context, f *p.Frame) (*p.Frame, error) {
	if c := f.Strings(t.Column); c != nil {
		for i := 0; i < c.Len(); i++ {
			if c.IsNull(i) {
				continue
			}
			v, _ := c.Get(i)
			if nv, ok := t.Map[v]; ok {
				c.Set(i, nv)
			}
		}
	}
	return f, nil
}
