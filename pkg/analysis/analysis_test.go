package analysis

import (
	"context"
	"errors"
	"testing"

	p "github.com/wdm0006/pulse/pkg/pulse"
)

type empRow struct {
	id          int64
	dept        string
	title       string
	rating      int64
	level       string
	concerns    bool
	suggestions bool
}

func makeFrame(rows []empRow) *p.Frame {
	f := p.NewFrame(p.EmployeeSchema())
	for i, r := range rows {
		f.AppendNullRow()
		_ = f.SetCell(i, p.ColEmployeeID, r.id)
		_ = f.SetCell(i, p.ColDepartment, r.dept)
		_ = f.SetCell(i, p.ColJobTitle, r.title)
		_ = f.SetCell(i, p.ColSatisfactionRating, r.rating)
		_ = f.SetCell(i, p.ColEngagementLevel, r.level)
		_ = f.SetCell(i, p.ColReportsConcerns, r.concerns)
		_ = f.SetCell(i, p.ColProvidedSuggestions, r.suggestions)
	}
	return f
}

// The canonical five-row sample: Sales and IT land at exactly 50%, HR at
// 100%; nobody satisfied withheld suggestions; Manager outranks Executive
// outranks Developer.
func sampleRows() []empRow {
	return []empRow{
		{1, "Sales", "Manager", 5, p.EngagementHigh, false, true},
		{2, "IT", "Developer", 3, p.EngagementLow, false, false},
		{3, "HR", "Executive", 5, p.EngagementHigh, false, true},
		{4, "Sales", "Executive", 2, p.EngagementLow, true, false},
		{5, "IT", "Manager", 5, p.EngagementHigh, false, true},
	}
}

func TestRatioDefaultThreshold(t *testing.T) {
	f := makeFrame(sampleRows())
	out, err := (&Ratio{}).Apply(context.Background(), f)
	if err != nil {
		t.Fatal(err)
	}
	if out.Rows() != 1 {
		t.Fatalf("expected 1 qualifying department, got %d", out.Rows())
	}
	d, _ := out.Strings(p.ColDepartment).Get(0)
	pct, _ := out.Floats(ColPercentage).Get(0)
	if d != "HR" || pct != 100.0 {
		t.Fatalf("expected HR 100.00, got %s %v", d, pct)
	}
}

func TestRatioExactThresholdExcluded(t *testing.T) {
	// Sales and IT sit at exactly 50%; qualification is strictly greater.
	f := makeFrame(sampleRows())
	out, err := (&Ratio{Threshold: 50}).Apply(context.Background(), f)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < out.Rows(); i++ {
		if d, _ := out.Strings(p.ColDepartment).Get(i); d == "Sales" || d == "IT" {
			t.Fatalf("department %s at exactly 50%% must not qualify", d)
		}
	}
}

func TestRatioLowThresholdSorted(t *testing.T) {
	f := makeFrame(sampleRows())
	out, err := (&Ratio{Threshold: 5}).Apply(context.Background(), f)
	if err != nil {
		t.Fatal(err)
	}
	if out.Rows() != 3 {
		t.Fatalf("expected 3 departments, got %d", out.Rows())
	}
	wantDepts := []string{"HR", "IT", "Sales"}
	wantPcts := []float64{100.0, 50.0, 50.0}
	for i := range wantDepts {
		d, _ := out.Strings(p.ColDepartment).Get(i)
		pct, _ := out.Floats(ColPercentage).Get(i)
		if d != wantDepts[i] || pct != wantPcts[i] {
			t.Fatalf("row %d: got %s %v, want %s %v", i, d, pct, wantDepts[i], wantPcts[i])
		}
	}
}

func TestRatioRounding(t *testing.T) {
	// 1 match out of 3 rows: 33.333... rounds half-up to 33.33.
	rows := []empRow{
		{1, "Ops", "Analyst", 5, p.EngagementHigh, false, true},
		{2, "Ops", "Analyst", 3, p.EngagementLow, false, true},
		{3, "Ops", "Analyst", 3, p.EngagementLow, false, true},
	}
	out, err := (&Ratio{Threshold: 10}).Apply(context.Background(), makeFrame(rows))
	if err != nil {
		t.Fatal(err)
	}
	pct, _ := out.Floats(ColPercentage).Get(0)
	if pct != 33.33 {
		t.Fatalf("expected 33.33, got %v", pct)
	}
}

func TestRatioEmptyFrame(t *testing.T) {
	out, err := (&Ratio{}).Apply(context.Background(), makeFrame(nil))
	if err != nil {
		t.Fatal(err)
	}
	if out.Rows() != 0 {
		t.Fatalf("expected empty result, got %d rows", out.Rows())
	}
}

func TestCohortSample(t *testing.T) {
	sum, err := (&Cohort{}).Apply(context.Background(), makeFrame(sampleRows()))
	if err != nil {
		t.Fatal(err)
	}
	if sum.Count != 0 || sum.Total != 5 || sum.Proportion != 0.0 {
		t.Fatalf("got %+v, want count=0 total=5 proportion=0", sum)
	}
	want := "Number of Employees Feeling Valued without Suggestions: 0\nProportion: 0.00%\n"
	if got := sum.Render(); got != want {
		t.Fatalf("render mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestCohortCountsAndComplement(t *testing.T) {
	rows := []empRow{
		{1, "Sales", "Manager", 5, p.EngagementHigh, false, false}, // in cohort
		{2, "Sales", "Manager", 4, p.EngagementMedium, false, false}, // in cohort
		{3, "IT", "Developer", 4, p.EngagementLow, false, true},
		{4, "IT", "Developer", 2, p.EngagementLow, false, false},
	}
	sum, err := (&Cohort{}).Apply(context.Background(), makeFrame(rows))
	if err != nil {
		t.Fatal(err)
	}
	if sum.Count != 2 || sum.Total != 4 {
		t.Fatalf("got count=%d total=%d, want 2/4", sum.Count, sum.Total)
	}
	if sum.Proportion != 50.0 {
		t.Fatalf("got proportion %v, want 50", sum.Proportion)
	}
	// complement: satisfaction<4 OR suggestions==true
	remaining := 0
	for _, r := range rows {
		if r.rating < 4 || r.suggestions {
			remaining++
		}
	}
	if sum.Count+remaining != sum.Total {
		t.Fatalf("count %d + remaining %d != total %d", sum.Count, remaining, sum.Total)
	}
}

func TestCohortEmptyDataset(t *testing.T) {
	_, err := (&Cohort{}).Apply(context.Background(), makeFrame(nil))
	if !errors.Is(err, p.ErrEmptyDataset) {
		t.Fatalf("expected ErrEmptyDataset, got %v", err)
	}
}

func TestRankingSample(t *testing.T) {
	out, err := (&Ranking{}).Apply(context.Background(), makeFrame(sampleRows()))
	if err != nil {
		t.Fatal(err)
	}
	wantTitles := []string{"Manager", "Executive", "Developer"}
	wantAvgs := []float64{3.0, 2.0, 1.0}
	if out.Rows() != len(wantTitles) {
		t.Fatalf("expected %d titles, got %d", len(wantTitles), out.Rows())
	}
	for i := range wantTitles {
		jt, _ := out.Strings(p.ColJobTitle).Get(i)
		avg, _ := out.Floats(ColAvgEngagementLevel).Get(i)
		if jt != wantTitles[i] || avg != wantAvgs[i] {
			t.Fatalf("row %d: got %s %v, want %s %v", i, jt, avg, wantTitles[i], wantAvgs[i])
		}
		if avg < 1.0 || avg > 3.0 {
			t.Fatalf("average %v outside [1,3]", avg)
		}
	}
	top, ok := TopTitle(out)
	if !ok || top != "Manager" {
		t.Fatalf("expected top title Manager, got %q (%v)", top, ok)
	}
}

func TestRankingUnknownLevelExcluded(t *testing.T) {
	rows := append(sampleRows(),
		empRow{6, "HR", "Executive", 3, "Unknown", false, false})
	out, err := (&Ranking{}).Apply(context.Background(), makeFrame(rows))
	if err != nil {
		t.Fatal(err)
	}
	// Executive average must stay at 2.0: the Unknown row contributes nothing.
	for i := 0; i < out.Rows(); i++ {
		jt, _ := out.Strings(p.ColJobTitle).Get(i)
		if jt != "Executive" {
			continue
		}
		avg, _ := out.Floats(ColAvgEngagementLevel).Get(i)
		if avg != 2.0 {
			t.Fatalf("Executive average shifted to %v", avg)
		}
		return
	}
	t.Fatal("Executive missing from ranking")
}

func TestRankingAllInvalidTitleAbsent(t *testing.T) {
	rows := []empRow{
		{1, "Ops", "Intern", 3, "N/A", false, false},
		{2, "Ops", "Analyst", 3, p.EngagementMedium, false, false},
	}
	out, err := (&Ranking{}).Apply(context.Background(), makeFrame(rows))
	if err != nil {
		t.Fatal(err)
	}
	if out.Rows() != 1 {
		t.Fatalf("expected 1 title, got %d", out.Rows())
	}
	if jt, _ := out.Strings(p.ColJobTitle).Get(0); jt != "Analyst" {
		t.Fatalf("expected Analyst only, got %s", jt)
	}
}

func TestRankingTieBreakLexicographic(t *testing.T) {
	rows := []empRow{
		{1, "Ops", "Zoologist", 3, p.EngagementHigh, false, false},
		{2, "Ops", "Analyst", 3, p.EngagementHigh, false, false},
	}
	out, err := (&Ranking{}).Apply(context.Background(), makeFrame(rows))
	if err != nil {
		t.Fatal(err)
	}
	top, _ := TopTitle(out)
	if top != "Analyst" {
		t.Fatalf("tie must go to lexicographically smaller title, got %s", top)
	}
}
