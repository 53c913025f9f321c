package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chriserin/gwtgen/internal/config"
	"github.com/chriserin/gwtgen/internal/db"
	"github.com/chriserin/gwtgen/internal/ui"
)

var classFlag string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked generated test methods",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunList(cmd.OutOrStdout(), cfg, classFlag)
	},
}

func init() {
	listCmd.Flags().StringVar(&classFlag, "class", "", "Only list methods of this class")
	rootCmd.AddCommand(listCmd)
}

func RunList(w io.Writer, c config.Config, className string) error {
	if c.Tracking.Database == "" {
		return fmt.Errorf("tracking is not configured, run `gwtgen init` first")
	}
	if _, err := os.Stat(c.Tracking.Database); os.IsNotExist(err) {
		return fmt.Errorf("run `gwtgen init` first")
	}

	sqlDB, err := db.Open(c.Tracking.Database)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	methods, err := db.ListMethods(sqlDB, className)
	if err != nil {
		return err
	}
	if len(methods) == 0 {
		return nil
	}

	// Compute column widths
	classWidth, methodWidth := 0, 0
	for _, m := range methods {
		classWidth = max(classWidth, ui.Width(m.ClassName))
		methodWidth = max(methodWidth, ui.Width(m.Name))
	}

	for _, m := range methods {
		location := fmt.Sprintf("%s:%d", m.SourcePath, m.Line)
		ui.ListRow(w, m.ClassName, m.Name, location, m.Statements, classWidth, methodWidth)
	}

	return nil
}
