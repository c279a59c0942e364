package parquetio

import (
	"os"
	"path/filepath"
	"testing"

	p "github.com/wdm0006/pulse/pkg/pulse"
)

func rankingFrame(rows int) *p.Frame {
	f := p.NewFrame(p.Schema{Columns: []p.ColumnSchema{
		{Name: "JobTitle", Type: p.KindString},
		{Name: "AvgEngagementLevel", Type: p.KindFloat},
	}})
	titles := []string{"Manager", "Developer", "Executive", "Analyst"}
	for i := 0; i < rows; i++ {
		f.AppendNullRow()
		_ = f.SetCell(i, "JobTitle", titles[i%len(titles)])
		_ = f.SetCell(i, "AvgEngagementLevel", float64(1+i%3))
	}
	return f
}

func TestWriteAllCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranking.parquet")
	if err := WriteAll(path, rankingFrame(8)); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Fatal("empty parquet artifact")
	}
}

func BenchmarkParquetWrite(b *testing.B) {
	f := rankingFrame(50000)
	path := filepath.Join(b.TempDir(), "bench.parquet")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = WriteAll(path, f)
	}
}
