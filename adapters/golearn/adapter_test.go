package golearn

import (
	"testing"

	p "github.com/wdm0006/pulse/pkg/pulse"
)

func TestRoundTrip(t *testing.T) {
	f := p.NewFrame(p.Schema{Columns: []p.ColumnSchema{
		{Name: "SatisfactionRating", Type: p.KindInt},
		{Name: "EngagementLevel", Type: p.KindString},
	}})
	ratings := []int64{5, 3, 1}
	levels := []string{"High", "Medium", "Low"}
	for i := range ratings {
		f.AppendNullRow()
		_ = f.SetCell(i, "SatisfactionRating", ratings[i])
		_ = f.SetCell(i, "EngagementLevel", levels[i])
	}

	inst, err := ToDenseInstances(f)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromDenseInstances(inst)
	if err != nil {
		t.Fatal(err)
	}
	if back.Rows() != 3 || back.Cols() != 2 {
		t.Fatalf("round trip shape %dx%d, want 3x2", back.Rows(), back.Cols())
	}
	// int columns come back as floats through golearn
	for i := range ratings {
		v, ok := back.Floats("SatisfactionRating").Get(i)
		if !ok || v != float64(ratings[i]) {
			t.Fatalf("row %d rating %v, want %d", i, v, ratings[i])
		}
		s, ok := back.Strings("EngagementLevel").Get(i)
		if !ok || s != levels[i] {
			t.Fatalf("row %d level %q, want %q", i, s, levels[i])
		}
	}
}
