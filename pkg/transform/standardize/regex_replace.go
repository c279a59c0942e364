package standardize

import (
	"context"
	"regexp"

	p "github.com/wdm0006/pulse/pkg/pulse"
)

type RegexReplace struct {
	Column  string
	Pattern string
	Replace string
	re      *regexp.Regexp
}

func (t *RegexReplace) Name() string { return "regex_replace" }

func (t *RegexReplace) Apply(ctx context.Context, f *p.Frame) (*p.Frame, error) {
	if t.re == nil {
		re, err := regexp.Compile(t.Pattern)
		if err != nil {
			return f, err
		}
		t.re = re
	}
	if c := f.Strings(t.Column); c != nil {
		for i := 0; i < c.Len(); i++ {
			if c.IsNull(i) {
				continue
			}
			v, _ := c.Get(i)
			c.Set(i, t.re.ReplaceAllString(v, t.Replace))
		}
	}
	return f, nil
}
