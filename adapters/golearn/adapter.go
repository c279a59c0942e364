// Package golearn converts between pulse Frames and golearn
// DenseInstances, so engagement tables can feed golearn models (e.g.
// clustering employees by satisfaction and engagement score).
package golearn

import (
	"github.com/sjwhitworth/golearn/base"

	p "github.com/wdm0006/pulse/pkg/pulse"
)

// ToDenseInstances converts a Frame into golearn DenseInstances. Numeric
// columns become float attributes, everything else categorical; the last
// attribute is registered as the class attribute.
func ToDenseInstances(f *p.Frame) (*base.DenseInstances, error) {
	attrs := make([]base.Attribute, len(f.Schema().Columns))
	for i, cs := range f.Schema().Columns {
		switch cs.Type {
		case p.KindFloat, p.KindInt:
			attrs[i] = base.NewFloatAttribute(cs.Name)
		default:
			ca := new(base.CategoricalAttribute)
			ca.SetName(cs.Name)
			attrs[i] = ca
		}
	}
	inst := base.NewDenseInstances()
	specs := make([]base.AttributeSpec, len(attrs))
	for i, a := range attrs {
		specs[i] = inst.AddAttribute(a)
	}
	if err := inst.Extend(f.Rows()); err != nil {
		return nil, err
	}

	for r := 0; r < f.Rows(); r++ {
		for c, cs := range f.Schema().Columns {
			col, _ := f.ColumnByName(cs.Name)
			switch cs.Type {
			case p.KindFloat:
				if v, ok := col.(*p.FloatColumn).Get(r); ok {
					inst.Set(specs[c], r, base.PackFloatToBytes(v))
				}
			case p.KindInt:
				if v, ok := col.(*p.IntColumn).Get(r); ok {
					inst.Set(specs[c], r, base.PackFloatToBytes(float64(v)))
				}
			case p.KindBool:
				if v, ok := col.(*p.BoolColumn).Get(r); ok {
					s := "False"
					if v {
						s = "True"
					}
					inst.Set(specs[c], r, base.Attribute.GetSysValFromString(attrs[c], s))
				}
			default:
				if v, ok := col.(*p.StringColumn).Get(r); ok {
					inst.Set(specs[c], r, base.Attribute.GetSysValFromString(attrs[c], v))
				}
			}
		}
	}
	if len(attrs) > 0 {
		if err := inst.AddClassAttribute(attrs[len(attrs)-1]); err != nil {
			return nil, err
		}
	}
	return inst, nil
}

// FromDenseInstances converts golearn DenseInstances into a Frame. Float
// attributes map to float columns, everything else to strings.
func FromDenseInstances(inst *base.DenseInstances) (*p.Frame, error) {
	attrs := inst.AllAttributes()
	schema := p.Schema{Columns: make([]p.ColumnSchema, len(attrs))}
	specs := make([]base.AttributeSpec, len(attrs))
	for i, a := range attrs {
		k := p.KindString
		if a.GetType() == base.Float64Type {
			k = p.KindFloat
		}
		schema.Columns[i] = p.ColumnSchema{Name: a.GetName(), Type: k}
		spec, _ := inst.GetAttribute(a)
		specs[i] = spec
	}
	f := p.NewFrame(schema)
	_, nrows := inst.Size()
	for r := 0; r < nrows; r++ {
		f.AppendNullRow()
		for c, cs := range schema.Columns {
			switch cs.Type {
			case p.KindFloat:
				v := base.UnpackBytesToFloat(inst.Get(specs[c], r))
				_ = f.SetCell(r, cs.Name, v)
			default:
				v := base.Attribute.GetStringFromSysVal(specs[c].GetAttribute(), inst.Get(specs[c], r))
				_ = f.SetCell(r, cs.Name, v)
			}
		}
	}
	return f, nil
}
