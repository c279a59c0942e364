// Command benchpulse generates synthetic employee tables and reports
// analysis throughput at sizes well beyond a real survey export.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/wdm0006/pulse/pkg/analysis"
	p "github.com/wdm0006/pulse/pkg/pulse"
)

var (
	departments = []string{"Sales", "IT", "HR", "Finance", "Ops", "Marketing"}
	titles      = []string{"Manager", "Developer", "Executive", "Analyst", "Designer"}
	levels      = []string{p.EngagementLow, p.EngagementMedium, p.EngagementHigh}
)

func synthFrame(rows int, rnd *rand.Rand) *p.Frame {
	f := p.NewFrame(p.EmployeeSchema())
	for i := 0; i < rows; i++ {
		f.AppendNullRow()
		_ = f.SetCell(i, p.ColEmployeeID, int64(i+1))
		_ = f.SetCell(i, p.ColDepartment, departments[rnd.Intn(len(departments))])
		_ = f.SetCell(i, p.ColJobTitle, titles[rnd.Intn(len(titles))])
		_ = f.SetCell(i, p.ColSatisfactionRating, int64(1+rnd.Intn(5)))
		_ = f.SetCell(i, p.ColEngagementLevel, levels[rnd.Intn(len(levels))])
		_ = f.SetCell(i, p.ColReportsConcerns, rnd.Intn(4) == 0)
		_ = f.SetCell(i, p.ColProvidedSuggestions, rnd.Intn(2) == 0)
	}
	return f
}

func main() {
	rows := flag.Int("rows", 1_000_000, "synthetic rows per run")
	runs := flag.Int("runs", 3, "runs per analysis")
	seed := flag.Int64("seed", 42, "rng seed")
	flag.Parse()

	rnd := rand.New(rand.NewSource(*seed))
	frame := synthFrame(*rows, rnd)
	ctx := context.Background()

	bench := func(name string, fn func() error) {
		best := time.Duration(1<<63 - 1)
		for i := 0; i < *runs; i++ {
			start := time.Now()
			if err := fn(); err != nil {
				fmt.Fprintln(os.Stderr, name, err)
				os.Exit(1)
			}
			if d := time.Since(start); d < best {
				best = d
			}
		}
		fmt.Printf("%-32s %12d rows %10s best %14.0f rows/s\n",
			name, *rows, best, float64(*rows)/best.Seconds())
	}

	bench("department_engagement_ratio", func() error {
		_, err := (&analysis.Ratio{Threshold: 5}).Apply(ctx, frame)
		return err
	})
	bench("valued_without_suggestions", func() error {
		_, err := (&analysis.Cohort{}).Apply(ctx, frame)
		return err
	})
	bench("engagement_by_title", func() error {
		_, err := (&analysis.Ranking{}).Apply(ctx, frame)
		return err
	})
}
