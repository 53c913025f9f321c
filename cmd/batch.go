package cmd

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/chriserin/gwtgen/internal/codegen"
	"github.com/chriserin/gwtgen/internal/config"
	"github.com/chriserin/gwtgen/internal/db"
	"github.com/chriserin/gwtgen/internal/feature"
	"github.com/chriserin/gwtgen/internal/logger"
	"github.com/chriserin/gwtgen/internal/parser"
	"github.com/chriserin/gwtgen/internal/ui"
)

var jobsFlag int

var batchCmd = &cobra.Command{
	Use:   "batch <dir> <outdir>",
	Short: "Generate a class for every feature file under a directory",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunBatch(cmd.Context(), cmd.OutOrStdout(), cfg, args[0], args[1], jobsFlag)
	},
}

func init() {
	batchCmd.Flags().IntVarP(&jobsFlag, "jobs", "j", runtime.NumCPU(), "Number of files generated in parallel")
	rootCmd.AddCommand(batchCmd)
}

type batchItem struct {
	source      string
	output      string
	doc         *feature.Document
	parseErrors []parser.ParseError
	plan        codegen.ClassPlan
}

// RunBatch generates one class file per feature file found under dir.
// Documents are independent, so parsing and generation run in parallel;
// reporting and tracking happen afterwards in sorted file order.
func RunBatch(ctx context.Context, w io.Writer, c config.Config, dir, outDir string, jobs int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	gen, err := newGenerator(c)
	if err != nil {
		return err
	}

	sources, err := listFeatureFiles(dir)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", dir, err)
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", outDir, err)
	}

	items := make([]batchItem, len(sources))
	err = forEach(ctx, len(items), jobs, func(i int) error {
		doc, parseErrors, err := loadDocument(sources[i])
		if err != nil {
			return err
		}
		plan := gen.Describe(doc)
		items[i] = batchItem{
			source:      sources[i],
			output:      filepath.Join(outDir, plan.ClassName+c.Output.Extension),
			doc:         doc,
			parseErrors: parseErrors,
			plan:        plan,
		}
		return nil
	})
	if err != nil {
		return err
	}

	seen := make(map[string]string, len(items))
	for _, it := range items {
		if prev, ok := seen[it.output]; ok {
			return fmt.Errorf("%s and %s both generate %s", prev, it.source, it.output)
		}
		seen[it.output] = it.source
	}

	err = forEach(ctx, len(items), jobs, func(i int) error {
		logger.Debugf("generating %s", items[i].output)
		return writeClassFile(gen, items[i].doc, items[i].output)
	})
	if err != nil {
		return err
	}

	return reportBatch(w, c, items)
}

func reportBatch(w io.Writer, c config.Config, items []batchItem) error {
	if c.Tracking.Database == "" {
		for _, it := range items {
			warnParseErrors(w, it)
			ui.GenLine(w, it.source, it.output)
		}
		ui.SummaryLine(w, len(items))
		return nil
	}

	sqlDB, err := db.Open(c.Tracking.Database)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	for _, it := range items {
		warnParseErrors(w, it)
		isNew, err := db.RecordClass(sqlDB, it.source, it.plan)
		if err != nil {
			return fmt.Errorf("tracking %s: %w", it.source, err)
		}
		statusLine(w, isNew, it.source, it.output)
	}
	ui.SummaryLine(w, len(items))
	return nil
}

func warnParseErrors(w io.Writer, it batchItem) {
	for _, pe := range it.parseErrors {
		ui.WarnLine(w, it.source, pe.Line, pe.Message)
	}
}

// forEach runs fn for 0..n-1 with at most jobs calls in flight and returns
// the first error.
func forEach(ctx context.Context, n, jobs int, fn func(i int) error) error {
	if n == 0 {
		return nil
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, n)))
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fn(i)
		})
	}
	return g.Wait()
}

// listFeatureFiles returns the sorted .feature and .ft files under dir.
func listFeatureFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch filepath.Ext(path) {
		case ".feature", ".ft":
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
