// Command pulse loads an employee survey CSV, optionally cleans it, runs
// the configured analyses, and writes one artifact per analysis.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/wdm0006/pulse/pkg/analysis"
	csvio "github.com/wdm0006/pulse/pkg/io/csvio"
	jsonlio "github.com/wdm0006/pulse/pkg/io/jsonlio"
	parquetio "github.com/wdm0006/pulse/pkg/io/parquetio"
	textio "github.com/wdm0006/pulse/pkg/io/textio"
	"github.com/wdm0006/pulse/pkg/profile"
	p "github.com/wdm0006/pulse/pkg/pulse"
	std "github.com/wdm0006/pulse/pkg/transform/standardize"
	val "github.com/wdm0006/pulse/pkg/transform/validate"
)

var version = "0.1.0-dev"

// Set by the toml/yaml build-tagged variants; nil when built without the
// corresponding tag.
var (
	tomlUnmarshal func([]byte, any) error
	yamlUnmarshal func([]byte, any) error
)

type TrimStep struct {
	Column string `json:"column" yaml:"column" toml:"column"`
}

type MapValuesStep struct {
	Column string            `json:"column" yaml:"column" toml:"column"`
	Map    map[string]string `json:"map" yaml:"map" toml:"map"`
}

type RegexReplaceStep struct {
	Column  string `json:"column" yaml:"column" toml:"column"`
	Pattern string `json:"pattern" yaml:"pattern" toml:"pattern"`
	Replace string `json:"replace" yaml:"replace" toml:"replace"`
}

type ValidateInStep struct {
	Column string   `json:"column" yaml:"column" toml:"column"`
	Values []string `json:"values" yaml:"values" toml:"values"`
}

type ValidateRangeStep struct {
	Column string   `json:"column" yaml:"column" toml:"column"`
	Min    *float64 `json:"min" yaml:"min" toml:"min"`
	Max    *float64 `json:"max" yaml:"max" toml:"max"`
}

// CleanStep is a union: exactly one field should be set per entry.
type CleanStep struct {
	Trim          *TrimStep          `json:"trim,omitempty" yaml:"trim,omitempty" toml:"trim,omitempty"`
	MapValues     *MapValuesStep     `json:"map_values,omitempty" yaml:"map_values,omitempty" toml:"map_values,omitempty"`
	RegexReplace  *RegexReplaceStep  `json:"regex_replace,omitempty" yaml:"regex_replace,omitempty" toml:"regex_replace,omitempty"`
	ValidateIn    *ValidateInStep    `json:"validate_in,omitempty" yaml:"validate_in,omitempty" toml:"validate_in,omitempty"`
	ValidateRange *ValidateRangeStep `json:"validate_range,omitempty" yaml:"validate_range,omitempty" toml:"validate_range,omitempty"`
}

type RatioConfig struct {
	Output    string  `json:"output" yaml:"output" toml:"output"`
	Format    string  `json:"format" yaml:"format" toml:"format"` // csv|jsonl|parquet
	Threshold float64 `json:"threshold" yaml:"threshold" toml:"threshold"`
}

type CohortConfig struct {
	Output string `json:"output" yaml:"output" toml:"output"`
}

type RankingConfig struct {
	Output string `json:"output" yaml:"output" toml:"output"`
	Format string `json:"format" yaml:"format" toml:"format"`
}

type Config struct {
	Input struct {
		Path string `json:"path" yaml:"path" toml:"path"`
	} `json:"input" yaml:"input" toml:"input"`
	Clean    []CleanStep `json:"clean" yaml:"clean" toml:"clean"`
	Analyses struct {
		Ratio   *RatioConfig   `json:"department_ratio" yaml:"department_ratio" toml:"department_ratio"`
		Cohort  *CohortConfig  `json:"valued_silent" yaml:"valued_silent" toml:"valued_silent"`
		Ranking *RankingConfig `json:"title_ranking" yaml:"title_ranking" toml:"title_ranking"`
	} `json:"analyses" yaml:"analyses" toml:"analyses"`
}

func loadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	switch filepath.Ext(path) {
	case ".toml":
		if tomlUnmarshal == nil {
			return nil, fmt.Errorf("built without toml support, rebuild with -tags toml")
		}
		err = tomlUnmarshal(b, &cfg)
	case ".yaml", ".yml":
		if yamlUnmarshal == nil {
			return nil, fmt.Errorf("built without yaml support, rebuild with -tags yaml")
		}
		err = yamlUnmarshal(b, &cfg)
	default:
		err = json.Unmarshal(b, &cfg)
	}
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func buildPipeline(steps []CleanStep) *p.Pipeline {
	pl := p.NewPipeline()
	for _, s := range steps {
		switch {
		case s.Trim != nil:
			pl.Add(&std.Trim{Column: s.Trim.Column})
		case s.MapValues != nil:
			pl.Add(&std.MapValues{Column: s.MapValues.Column, Map: s.MapValues.Map})
		case s.RegexReplace != nil:
			pl.Add(&std.RegexReplace{Column: s.RegexReplace.Column, Pattern: s.RegexReplace.Pattern, Replace: s.RegexReplace.Replace})
		case s.ValidateIn != nil:
			pl.Add(val.NewInSet(s.ValidateIn.Column, s.ValidateIn.Values))
		case s.ValidateRange != nil:
			pl.Add(&val.Range{Column: s.ValidateRange.Column, Min: s.ValidateRange.Min, Max: s.ValidateRange.Max})
		}
	}
	return pl
}

func writeFrame(path, format string, f *p.Frame) error {
	switch format {
	case "", "csv":
		return csvio.WriteAll(path, f, csvio.WriterOptions{FloatDecimals: 2})
	case "jsonl":
		return jsonlio.WriteAll(path, f)
	case "parquet":
		return parquetio.WriteAll(path, f)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func main() {
	showVersion := flag.Bool("version", false, "Print version and exit")
	configPath := flag.String("config", "", "Path to run config (JSON; TOML/YAML with build tags)")
	doProfile := flag.Bool("profile", false, "Print a profile of the loaded table before running analyses")
	flag.Parse()

	if *showVersion {
		fmt.Println("pulse", version)
		return
	}
	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "no config provided; nothing to do. try --config <file> or --version")
		os.Exit(2)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	log := logger.Sugar()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalw("load config", "path", *configPath, "error", err)
	}

	frame, err := csvio.LoadEmployees(cfg.Input.Path)
	if err != nil {
		log.Fatalw("load employees", "path", cfg.Input.Path, "error", err)
	}
	log.Infow("loaded employee table", "path", cfg.Input.Path, "rows", frame.Rows())

	if *doProfile {
		c := profile.NewCollector(frame.Schema(), 5)
		c.ConsumeFrame(frame)
		fmt.Print(c.ReportText())
	}

	ctx := context.Background()
	frame, err = buildPipeline(cfg.Clean).Run(ctx, frame)
	if err != nil {
		log.Fatalw("cleanup pipeline", "error", err)
	}

	if rc := cfg.Analyses.Ratio; rc != nil {
		a := &analysis.Ratio{Threshold: rc.Threshold}
		res, err := a.Apply(ctx, frame)
		if err != nil {
			log.Fatalw("department ratio", "error", err)
		}
		if err := writeFrame(rc.Output, rc.Format, res); err != nil {
			log.Fatalw("write department ratio artifact", "path", rc.Output, "error", err)
		}
		log.Infow("department ratio written", "path", rc.Output, "departments", res.Rows())
	}

	if cc := cfg.Analyses.Cohort; cc != nil {
		sum, err := (&analysis.Cohort{}).Apply(ctx, frame)
		if err != nil {
			log.Fatalw("valued-but-silent cohort", "error", err)
		}
		if err := textio.WriteReport(cc.Output, sum.Render()); err != nil {
			log.Fatalw("write cohort artifact", "path", cc.Output, "error", err)
		}
		log.Infow("cohort written", "path", cc.Output, "count", sum.Count, "proportion", sum.Proportion)
	}

	if kc := cfg.Analyses.Ranking; kc != nil {
		res, err := (&analysis.Ranking{}).Apply(ctx, frame)
		if err != nil {
			log.Fatalw("engagement ranking", "error", err)
		}
		if err := writeFrame(kc.Output, kc.Format, res); err != nil {
			log.Fatalw("write ranking artifact", "path", kc.Output, "error", err)
		}
		if top, ok := analysis.TopTitle(res); ok {
			log.Infow("ranking written", "path", kc.Output, "titles", res.Rows(), "top", top)
		} else {
			log.Infow("ranking written", "path", kc.Output, "titles", 0)
		}
	}
}
