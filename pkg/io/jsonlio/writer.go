// Package jsonlio writes result frames as JSON Lines, one object per row.
package jsonlio

import (
	"bufio"
	"encoding/json"

	iox "github.com/wdm0006/pulse/pkg/io/ioutils"
	p "github.com/wdm0006/pulse/pkg/pulse"
)

func WriteAll(path string, f *p.Frame) error {
	out, err := iox.CreateMaybeCompressed(path)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	w := bufio.NewWriter(out)
	enc := json.NewEncoder(w)
	for r := 0; r < f.Rows(); r++ {
		m := map[string]any{}
		for _, cs := range f.Schema().Columns {
			col, _ := f.ColumnByName(cs.Name)
			switch cs.Type {
			case p.KindFloat:
				if v, ok := col.(*p.FloatColumn).Get(r); ok {
					m[cs.Name] = v
				}
			case p.KindInt:
				if v, ok := col.(*p.IntColumn).Get(r); ok {
					m[cs.Name] = v
				}
			case p.KindBool:
				if v, ok := col.(*p.BoolColumn).Get(r); ok {
					m[cs.Name] = v
				}
			case p.KindString:
				if v, ok := col.(*p.StringColumn).Get(r); ok {
					m[cs.Name] = v
				}
			}
		}
		if err := enc.Encode(m); err != nil {
			return err
		}
	}
	return w.Flush()
}
