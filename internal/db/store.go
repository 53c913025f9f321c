package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/chriserin/gwtgen/internal/codegen"
)

// Method is a tracked generated test method.
type Method struct {
	ClassName  string
	SourcePath string
	Name       string
	Statements int
	Line       int
}

// RecordClass stores the plan generated from sourcePath, replacing the
// methods recorded by any earlier run. It reports whether sourcePath was
// seen for the first time.
func RecordClass(sqlDB *sql.DB, sourcePath string, plan codegen.ClassPlan) (bool, error) {
	tx, err := sqlDB.Begin()
	if err != nil {
		return false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var classID int64
	isNew := false
	err = tx.QueryRow(`SELECT id FROM classes WHERE source_path = ?`, sourcePath).Scan(&classID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		res, err := tx.Exec(`INSERT INTO classes (source_path, class_name) VALUES (?, ?)`, sourcePath, plan.ClassName)
		if err != nil {
			return false, fmt.Errorf("inserting %s: %w", sourcePath, err)
		}
		if classID, err = res.LastInsertId(); err != nil {
			return false, fmt.Errorf("reading class id: %w", err)
		}
		isNew = true
	case err != nil:
		return false, fmt.Errorf("querying %s: %w", sourcePath, err)
	default:
		_, err = tx.Exec(`UPDATE classes SET class_name = ?, generated_at = datetime('now') WHERE id = ?`, plan.ClassName, classID)
		if err != nil {
			return false, fmt.Errorf("updating %s: %w", sourcePath, err)
		}
		if _, err := tx.Exec(`DELETE FROM methods WHERE class_id = ?`, classID); err != nil {
			return false, fmt.Errorf("clearing methods of %s: %w", sourcePath, err)
		}
	}

	for _, m := range plan.Methods {
		// Scenarios whose names normalize to the same identifier keep the first.
		_, err := tx.Exec(`INSERT OR IGNORE INTO methods (class_id, method_name, statements, line_number) VALUES (?, ?, ?, ?)`,
			classID, m.Name, m.Statements, m.Line)
		if err != nil {
			return false, fmt.Errorf("inserting method %s: %w", m.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing %s: %w", sourcePath, err)
	}
	return isNew, nil
}

// ListMethods returns tracked methods ordered by class and source line. An
// empty className lists every class.
func ListMethods(sqlDB *sql.DB, className string) ([]Method, error) {
	rows, err := sqlDB.Query(`
		SELECT c.class_name, c.source_path, m.method_name, m.statements, m.line_number
		FROM methods m
		JOIN classes c ON m.class_id = c.id
		WHERE ? = '' OR c.class_name = ?
		ORDER BY c.class_name, c.source_path, m.line_number, m.method_name
	`, className, className)
	if err != nil {
		return nil, fmt.Errorf("querying methods: %w", err)
	}
	defer rows.Close()

	var methods []Method
	for rows.Next() {
		var m Method
		if err := rows.Scan(&m.ClassName, &m.SourcePath, &m.Name, &m.Statements, &m.Line); err != nil {
			return nil, fmt.Errorf("scanning method: %w", err)
		}
		methods = append(methods, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating methods: %w", err)
	}
	return methods, nil
}
