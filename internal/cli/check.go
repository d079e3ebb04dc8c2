package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"sort"
	"sync"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/bearlint/internal/astjson"
	"github.com/leapstack-labs/bearlint/pkg/lint"
	"github.com/leapstack-labs/bearlint/pkg/lint/rules"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Format   string   // Output format: table, json
	Jobs     int      // Parallel workers
	Suppress []string // line:codes suppression pairs, applied to every file
}

type fileResult struct {
	File   string       `json:"file"`
	Report *lint.Report `json:"report"`
	Err    error        `json:"-"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check <tree.json>...",
		Short: "Run the rules over JSON tree dumps",
		Long: `Analyze one or more Python syntax trees exported as JSON and report
violations. Files are analyzed in parallel; output order is stable.

Suppressions normally come from the exporter alongside the tree. The
--suppress flag adds ad-hoc ones, e.g. --suppress 12:B006,B008 or
--suppress 40:* for a whole line.`,
		Example: `  # Check one file
  bearlint check app.json

  # Enable the opt-in generator rule
  bearlint check --extend-select B901 app.json

  # Machine-readable output
  bearlint check --format json dumps/*.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "table", "Output format: table, json")
	cmd.Flags().IntVarP(&opts.Jobs, "jobs", "j", runtime.NumCPU(), "Number of files analyzed in parallel")
	cmd.Flags().StringArrayVar(&opts.Suppress, "suppress", nil, "Extra suppression, line:codes (repeatable)")

	return cmd
}

func runCheck(cmd *cobra.Command, files []string, opts *CheckOptions) error {
	cfg, err := engineConfig(cmd)
	if err != nil {
		return err
	}
	suppressions, err := buildSuppressions(opts.Suppress)
	if err != nil {
		return err
	}

	analyzer := lint.NewAnalyzer(
		lint.MustNewRegistry(rules.All()),
		cfg,
		lint.WithLogger(commandLogger(cmd)),
	)

	results := make([]fileResult, len(files))
	var mu sync.Mutex

	g := new(errgroup.Group)
	if opts.Jobs > 0 {
		g.SetLimit(opts.Jobs)
	}
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			report, err := checkFile(analyzer, path, suppressions)
			mu.Lock()
			results[i] = fileResult{File: path, Report: report, Err: err}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // per-file errors are carried in results

	violations := 0
	failures := 0
	for _, res := range results {
		if res.Err != nil {
			failures++
			continue
		}
		violations += len(res.Report.Violations)
	}

	switch opts.Format {
	case "json":
		if err := renderCheckJSON(cmd, results); err != nil {
			return err
		}
	default:
		renderCheckTable(cmd, results)
	}

	if failures > 0 {
		return fmt.Errorf("%d file(s) could not be analyzed", failures)
	}
	if violations > 0 {
		return fmt.Errorf("found %d violation(s)", violations)
	}
	return nil
}

func checkFile(analyzer *lint.Analyzer, path string, supp lint.SuppressionMap) (*lint.Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	tree, err := astjson.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return analyzer.Analyze(tree, supp)
}

func buildSuppressions(pairs []string) (lint.SuppressionMap, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	byLine, err := astjson.ParseLineDirectives(pairs)
	if err != nil {
		return nil, err
	}
	supp := make(lint.SuppressionMap, len(byLine))
	for line, codes := range byLine {
		s := supp[line]
		for _, code := range codes {
			if code == "*" {
				s.All = true
				continue
			}
			s.Codes = append(s.Codes, code)
		}
		supp[line] = s
	}
	return supp, nil
}

func renderCheckTable(cmd *cobra.Command, results []fileResult) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"File", "Line", "Col", "Code", "Severity", "Message"})

	for _, res := range results {
		if res.Err != nil {
			t.AppendRow(table.Row{res.File, "", "", "", "error", res.Err.Error()})
			continue
		}
		for _, v := range res.Report.Violations {
			t.AppendRow(table.Row{res.File, v.Pos.Line, v.Pos.Col, v.Code, v.Severity.String(), v.Message})
		}
		for _, f := range res.Report.Faults {
			t.AppendRow(table.Row{res.File, f.Pos.Line, "", f.RuleCode, "fault", f.Err.Error()})
		}
	}

	t.SortBy([]table.SortBy{{Name: "File", Mode: table.Asc}})
	t.Render()
}

func renderCheckJSON(cmd *cobra.Command, results []fileResult) error {
	type jsonViolation struct {
		Line     int    `json:"line"`
		Col      int    `json:"col"`
		Code     string `json:"code"`
		Severity string `json:"severity"`
		Message  string `json:"message"`
	}
	type jsonFile struct {
		File       string          `json:"file"`
		Error      string          `json:"error,omitempty"`
		Violations []jsonViolation `json:"violations"`
		Faults     []string        `json:"faults,omitempty"`
	}

	out := make([]jsonFile, 0, len(results))
	for _, res := range results {
		jf := jsonFile{File: res.File, Violations: []jsonViolation{}}
		if res.Err != nil {
			jf.Error = res.Err.Error()
			out = append(out, jf)
			continue
		}
		for _, v := range res.Report.Violations {
			jf.Violations = append(jf.Violations, jsonViolation{
				Line: v.Pos.Line, Col: v.Pos.Col, Code: v.Code,
				Severity: v.Severity.String(), Message: v.Message,
			})
		}
		for _, f := range res.Report.Faults {
			jf.Faults = append(jf.Faults, f.Err.Error())
		}
		out = append(out, jf)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].File < out[j].File })

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
