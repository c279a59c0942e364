// Package profile computes per-column summary statistics over a loaded
// frame, surfaced by the CLI --profile flag for sanity-checking a survey
// export before the analyses run.
package profile

import (
	"fmt"
	"math"
	"sort"
	"strings"

	p "github.com/wdm0006/pulse/pkg/pulse"
)

type NumStats struct {
	Count int
	Nulls int
	Min   float64
	Max   float64
	Sum   float64
}

type BoolStats struct {
	Count int
	Nulls int
	True  int
	False int
}

type StringStats struct {
	Count int
	Nulls int
	TopK  int
	Freqs map[string]int
}

type ColumnProfile struct {
	Name string
	Kind p.Kind
	Num  *NumStats
	Bool *BoolStats
	Str  *StringStats
}

type Collector struct {
	cols  []ColumnProfile
	index map[string]int
	topK  int
}

func NewCollector(schema p.Schema, topK int) *Collector {
	c := &Collector{index: make(map[string]int), topK: topK}
	c.cols = make([]ColumnProfile, len(schema.Columns))
	for i, cs := range schema.Columns {
		cp := ColumnProfile{Name: cs.Name, Kind: cs.Type}
		switch cs.Type {
		case p.KindFloat, p.KindInt:
			cp.Num = &NumStats{Min: math.Inf(1), Max: math.Inf(-1)}
		case p.KindBool:
			cp.Bool = &BoolStats{}
		case p.KindString:
			cp.Str = &StringStats{TopK: topK, Freqs: make(map[string]int)}
		}
		c.cols[i] = cp
		c.index[cs.Name] = i
	}
	return c
}

func (c *Collector) ConsumeFrame(f *p.Frame) {
	for _, cs := range f.Schema().Columns {
		idx, ok := c.index[cs.Name]
		if !ok {
			continue
		}
		cp := &c.cols[idx]
		switch cs.Type {
		case p.KindFloat:
			col := f.Floats(cs.Name)
			for i := 0; i < col.Len(); i++ {
				if col.IsNull(i) {
					cp.Num.Nulls++
					continue
				}
				v, _ := col.Get(i)
				cp.Num.Count++
				if v < cp.Num.Min {
					cp.Num.Min = v
				}
				if v > cp.Num.Max {
					cp.Num.Max = v
				}
				cp.Num.Sum += v
			}
		case p.KindInt:
			col := f.Ints(cs.Name)
			for i := 0; i < col.Len(); i++ {
				if col.IsNull(i) {
					cp.Num.Nulls++
					continue
				}
				v, _ := col.Get(i)
				cp.Num.Count++
				fv := float64(v)
				if fv < cp.Num.Min {
					cp.Num.Min = fv
				}
				if fv > cp.Num.Max {
					cp.Num.Max = fv
				}
				cp.Num.Sum += fv
			}
		case p.KindBool:
			col := f.Bools(cs.Name)
			for i := 0; i < col.Len(); i++ {
				if col.IsNull(i) {
					cp.Bool.Nulls++
					continue
				}
				v, _ := col.Get(i)
				cp.Bool.Count++
				if v {
					cp.Bool.True++
				} else {
					cp.Bool.False++
				}
			}
		case p.KindString:
			col := f.Strings(cs.Name)
			for i := 0; i < col.Len(); i++ {
				if col.IsNull(i) {
					cp.Str.Nulls++
					continue
				}
				v, _ := col.Get(i)
				cp.Str.Count++
				if c.topK > 0 {
					cp.Str.Freqs[v]++
				}
			}
		}
	}
}

func (c *Collector) ReportText() string {
	var b strings.Builder
	b.WriteString("Profile Summary\n")
	for _, cp := range c.cols {
		fmt.Fprintf(&b, "- %s (%s): ", cp.Name, kindString(cp.Kind))
		switch cp.Kind {
		case p.KindFloat, p.KindInt:
			mean := 0.0
			if cp.Num.Count > 0 {
				mean = cp.Num.Sum / float64(cp.Num.Count)
			}
			fmt.Fprintf(&b, "count=%d nulls=%d min=%.6g max=%.6g mean=%.6g\n", cp.Num.Count, cp.Num.Nulls, cp.Num.Min, cp.Num.Max, mean)
		case p.KindBool:
			fmt.Fprintf(&b, "count=%d nulls=%d true=%d false=%d\n", cp.Bool.Count, cp.Bool.Nulls, cp.Bool.True, cp.Bool.False)
		default:
			fmt.Fprintf(&b, "count=%d nulls=%d\n", cp.Str.Count, cp.Str.Nulls)
			if cp.Str != nil && len(cp.Str.Freqs) > 0 {
				type kv struct {
					k string
					v int
				}
				arr := make([]kv, 0, len(cp.Str.Freqs))
				for k, v := range cp.Str.Freqs {
					arr = append(arr, kv{k, v})
				}
				sort.Slice(arr, func(i, j int) bool {
					if arr[i].v != arr[j].v {
						return arr[i].v > arr[j].v
					}
					return arr[i].k < arr[j].k
				})
				n := c.topK
				if n <= 0 || n > len(arr) {
					n = len(arr)
				}
				for i := 0; i < n; i++ {
					fmt.Fprintf(&b, "    %q: %d\n", arr[i].k, arr[i].v)
				}
			}
		}
	}
	return b.String()
}

type JSONProfile struct {
	Columns []JSONColumn `json:"columns"`
}

type JSONColumn struct {
	Name string     `json:"name"`
	Kind string     `json:"kind"`
	Num  *NumStats  `json:"num,omitempty"`
	Bool *BoolStats `json:"bool,omitempty"`
	Str  *JSONStr   `json:"str,omitempty"`
}

type JSONStr struct {
	Count int            `json:"count"`
	Nulls int            `json:"nulls"`
	Top   map[string]int `json:"top,omitempty"`
}

func (c *Collector) ReportJSON() JSONProfile {
	out := JSONProfile{Columns: make([]JSONColumn, 0, len(c.cols))}
	for _, cp := range c.cols {
		jc := JSONColumn{Name: cp.Name, Kind: kindString(cp.Kind)}
		switch cp.Kind {
		case p.KindFloat, p.KindInt:
			jc.Num = cp.Num
		case p.KindBool:
			jc.Bool = cp.Bool
		default:
			if cp.Str != nil {
				var top map[string]int
				if len(cp.Str.Freqs) > 0 {
					top = cp.Str.Freqs
				}
				jc.Str = &JSONStr{Count: cp.Str.Count, Nulls: cp.Str.Nulls, Top: top}
			}
		}
		out.Columns = append(out.Columns, jc)
	}
	return out
}

func kindString(k p.Kind) string {
	switch k {
	case p.KindBool:
		return "bool"
	case p.KindInt:
		return "int"
	case p.KindFloat:
		return "float"
	case p.KindString:
		return "string"
	default:
		return "invalid"
	}
}
