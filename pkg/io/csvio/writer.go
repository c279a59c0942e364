package csvio

import (
	"encoding/csv"
	"os"
	"strconv"

	p "github.com/wdm0006/pulse/pkg/pulse"
)

type WriterOptions struct {
	Delimiter     rune // default ','
	FloatDecimals int  // fixed fractional digits; 0 = shortest form
}

// WriteAll writes a Frame to a CSV file with a header row. Report writers
// pass FloatDecimals=2 so percentage artifacts are byte-stable across runs.
func WriteAll(path string, f *p.Frame, opt WriterOptions) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	w := csv.NewWriter(out)
	if opt.Delimiter != 0 {
		w.Comma = opt.Delimiter
	}

	hdr := make([]string, len(f.Schema().Columns))
	for i, cs := range f.Schema().Columns {
		hdr[i] = cs.Name
	}
	if err := w.Write(hdr); err != nil {
		return err
	}

	for r := 0; r < f.Rows(); r++ {
		row := make([]string, len(hdr))
		for c, cs := range f.Schema().Columns {
			col, _ := f.ColumnByName(cs.Name)
			switch cs.Type {
			case p.KindFloat:
				if v, ok := col.(*p.FloatColumn).Get(r); ok {
					if opt.FloatDecimals > 0 {
						row[c] = strconv.FormatFloat(v, 'f', opt.FloatDecimals, 64)
					} else {
						row[c] = strconv.FormatFloat(v, 'g', -1, 64)
					}
				}
			case p.KindInt:
				if v, ok := col.(*p.IntColumn).Get(r); ok {
					row[c] = strconv.FormatInt(v, 10)
				}
			case p.KindBool:
				if v, ok := col.(*p.BoolColumn).Get(r); ok {
					// mirror the input contract's tokens
					if v {
						row[c] = "True"
					} else {
						row[c] = "False"
					}
				}
			case p.KindString:
				if v, ok := col.(*p.StringColumn).Get(r); ok {
					row[c] = v
				}
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
