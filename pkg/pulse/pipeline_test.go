package pulse_test

import (
	"context"
	"testing"

	p "github.com/wdm0006/pulse/pkg/pulse"
	std "github.com/wdm0006/pulse/pkg/transform/standardize"
)

func TestPipeline(t *testing.T) {
	f := p.NewFrame(p.EmployeeSchema())
	f.AppendNullRow()
	_ = f.SetCell(0, p.ColDepartment, " Sales ")
	_ = f.SetCell(0, p.ColEngagementLevel, "HIGH")

	pl := p.NewPipeline().
		Add(&std.Trim{Column: p.ColDepartment}).
		Add(&std.MapValues{Column: p.ColEngagementLevel, Map: map[string]string{"HIGH": p.EngagementHigh}})
	out, err := pl.Run(context.Background(), f)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := out.Strings(p.ColDepartment).Get(0); v != "Sales" {
		t.Fatalf("trim failed, got %q", v)
	}
	if v, _ := out.Strings(p.ColEngagementLevel).Get(0); v != p.EngagementHigh {
		t.Fatalf("map_values failed, got %q", v)
	}
}
