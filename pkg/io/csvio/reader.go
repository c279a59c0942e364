// Package csvio loads the employee survey CSV and writes tabular result
// artifacts. Loading is strict: the file either conforms to the declared
// employee schema or the whole load fails with a SchemaMismatchError.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	iox "github.com/wdm0006/pulse/pkg/io/ioutils"
	p "github.com/wdm0006/pulse/pkg/pulse"
)

// LoadEmployees reads the CSV at path into an employee frame. Gzip input
// is handled transparently; "-" reads stdin.
func LoadEmployees(path string) (*p.Frame, error) {
	rc, err := iox.OpenMaybeCompressed(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return ReadEmployees(rc)
}

// ReadEmployees reads employee rows from r. The header must contain
// exactly the seven schema columns (any order, exact case-sensitive
// names). Every cell must coerce to its declared type; booleans accept
// only the literal tokens "True" and "False". There is no partial
// recovery: the first bad cell fails the load.
func ReadEmployees(r io.Reader) (*p.Frame, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	hdr, err := cr.Read()
	if err == io.EOF {
		return nil, &p.SchemaMismatchError{Reason: "empty input, header row required"}
	}
	if err != nil {
		return nil, &p.SchemaMismatchError{Reason: err.Error()}
	}

	schema := p.EmployeeSchema()
	pos := make(map[string]int, len(hdr))
	for i, name := range hdr {
		name = strings.ToValidUTF8(name, "?")
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		if _, dup := pos[name]; dup {
			return nil, &p.SchemaMismatchError{Column: name, Reason: "duplicate column"}
		}
		pos[name] = i
	}
	for name := range pos {
		if !schemaHas(schema, name) {
			return nil, &p.SchemaMismatchError{Column: name, Reason: "unexpected column"}
		}
	}
	for _, cs := range schema.Columns {
		if _, ok := pos[cs.Name]; !ok {
			return nil, &p.SchemaMismatchError{Column: cs.Name, Reason: "missing column"}
		}
	}

	f := p.NewFrame(schema)
	row := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, &p.SchemaMismatchError{Row: row, Reason: err.Error()}
		}
		f.AppendNullRow()
		for _, cs := range schema.Columns {
			raw := rec[pos[cs.Name]]
			if err := setCell(f, row-1, cs, raw); err != nil {
				return nil, &p.SchemaMismatchError{Column: cs.Name, Row: row, Reason: err.Error()}
			}
		}
	}
	return f, nil
}

func setCell(f *p.Frame, row int, cs p.ColumnSchema, raw string) error {
	switch cs.Type {
	case p.KindInt:
		v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return fmt.Errorf("cannot coerce %q to integer", raw)
		}
		return f.SetCell(row, cs.Name, v)
	case p.KindBool:
		switch strings.TrimSpace(raw) {
		case "True":
			return f.SetCell(row, cs.Name, true)
		case "False":
			return f.SetCell(row, cs.Name, false)
		default:
			return fmt.Errorf("cannot coerce %q to boolean, want True or False", raw)
		}
	case p.KindFloat:
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("cannot coerce %q to float", raw)
		}
		return f.SetCell(row, cs.Name, v)
	default:
		return f.SetCell(row, cs.Name, raw)
	}
}

func schemaHas(s p.Schema, name string) bool {
	for _, cs := range s.Columns {
		if cs.Name == name {
			return true
		}
	}
	return false
}
