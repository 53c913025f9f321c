package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chriserin/gwtgen/internal/codegen"
	"github.com/chriserin/gwtgen/internal/config"
	"github.com/chriserin/gwtgen/internal/db"
	"github.com/chriserin/gwtgen/internal/feature"
	"github.com/chriserin/gwtgen/internal/logger"
	"github.com/chriserin/gwtgen/internal/ui"
)

var outputFlag string

var generateCmd = &cobra.Command{
	Use:   "generate <feature-file>",
	Short: "Generate a scenario test class from one feature file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunGenerate(cmd.OutOrStdout(), cfg, args[0], outputFlag)
	},
}

func init() {
	generateCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write the class to this file instead of stdout")
	rootCmd.AddCommand(generateCmd)
}

// RunGenerate writes the class generated from path to w, or to outPath when
// it is set. With an output file, w receives a status line instead.
func RunGenerate(w io.Writer, c config.Config, path, outPath string) error {
	gen, err := newGenerator(c)
	if err != nil {
		return err
	}

	doc, parseErrors, err := loadDocument(path)
	if err != nil {
		return err
	}
	logParseErrors(path, parseErrors)
	logger.Debugf("%s: %d scenarios", path, len(doc.Scenarios))

	if outPath == "" {
		if err := gen.Generate(w, doc); err != nil {
			return err
		}
	} else if err := writeClassFile(gen, doc, outPath); err != nil {
		return err
	}

	plan := gen.Describe(doc)
	if c.Tracking.Database == "" {
		if outPath != "" {
			ui.GenLine(w, path, outPath)
		}
		return nil
	}

	isNew, err := trackClass(c.Tracking.Database, path, plan)
	if err != nil {
		return err
	}
	if outPath != "" {
		statusLine(w, isNew, path, outPath)
	}
	return nil
}

// writeClassFile generates doc into outPath. The file is closed on every
// path; a failed generation may leave partial content behind.
func writeClassFile(gen *codegen.Generator, doc *feature.Document, outPath string) (err error) {
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outPath, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing %s: %w", outPath, cerr)
		}
	}()
	if err := gen.Generate(f, doc); err != nil {
		return fmt.Errorf("%s: %w", outPath, err)
	}
	return nil
}

func trackClass(dbPath, source string, plan codegen.ClassPlan) (bool, error) {
	sqlDB, err := db.Open(dbPath)
	if err != nil {
		return false, fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	isNew, err := db.RecordClass(sqlDB, source, plan)
	if err != nil {
		return false, fmt.Errorf("tracking %s: %w", source, err)
	}
	logger.Debugf("tracked %s as %s (%d methods)", source, plan.ClassName, len(plan.Methods))
	return isNew, nil
}

func statusLine(w io.Writer, isNew bool, source, output string) {
	if isNew {
		ui.GenLine(w, source, output)
	} else {
		ui.TrkLine(w, source, output)
	}
}
