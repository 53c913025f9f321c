package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chriserin/gwtgen/internal/config"
	"github.com/chriserin/gwtgen/internal/db"
)

const defaultDatabase = "gwtgen.db"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create gwtgen.toml and the tracking database in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunInit(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func RunInit(w io.Writer) error {
	// config file
	_, err := os.Stat(config.FileName)
	configExists := err == nil
	dbPath := defaultDatabase
	if configExists {
		existing, err := config.Load(config.FileName, false)
		if err != nil {
			return err
		}
		if existing.Tracking.Database != "" {
			dbPath = existing.Tracking.Database
		}
		fmt.Fprintln(w, config.FileName+" already exists")
	} else {
		c := config.Default()
		c.Tracking.Database = dbPath
		if err := config.Write(config.FileName, c); err != nil {
			return fmt.Errorf("writing %s: %w", config.FileName, err)
		}
		fmt.Fprintln(w, config.FileName+" created")
	}

	// database
	_, err = os.Stat(dbPath)
	dbExists := err == nil
	sqlDB, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	sqlDB.Close()
	if dbExists {
		fmt.Fprintln(w, dbPath+" already exists")
	} else {
		fmt.Fprintln(w, dbPath+" created")
	}

	// gitignore
	msgs, err := ensureGitignore(dbPath)
	if err != nil {
		return fmt.Errorf("updating .gitignore: %w", err)
	}
	for _, msg := range msgs {
		fmt.Fprintln(w, msg)
	}

	return nil
}

func ensureGitignore(entry string) ([]string, error) {
	data, err := os.ReadFile(".gitignore")
	if os.IsNotExist(err) {
		if err := os.WriteFile(".gitignore", []byte(entry+"\n"), 0o644); err != nil {
			return nil, err
		}
		return []string{".gitignore created", entry + " added to .gitignore"}, nil
	}
	if err != nil {
		return nil, err
	}

	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == entry {
			return []string{entry + " already in .gitignore"}, nil
		}
	}

	content := string(data)
	if len(content) > 0 && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += entry + "\n"

	if err := os.WriteFile(".gitignore", []byte(content), 0o644); err != nil {
		return nil, err
	}
	return []string{entry + " added to .gitignore"}, nil
}
