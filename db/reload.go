package db

import (
	"log"
	"os"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

const defaultSetupScript = "db/scripts/setup.sql"

// Statements end with a semicolon followed by a line break. Splitting on bare
// semicolons would break string literals containing them.
var stmtSep = regexp.MustCompile(`;\s*[\r\n]+`)

func LoadSetupScript() (string, error) {
	path := os.Getenv("SETUP_SQL_PATH")

	if path == "" {
		path = defaultSetupScript
	}

	contents, err := os.ReadFile(path)

	if err != nil {
		return "", err
	}

	return string(contents), nil
}

// RunScript executes the setup script one statement at a time. DROP statements
// against objects that don't exist yet are expected on a fresh database and are
// skipped silently; any other failure is logged and the remaining statements
// still run.
func RunScript(gdb *gorm.DB, script string) error {
	for _, stmt := range stmtSep.Split(script, -1) {
		stmt = strings.TrimSpace(stmt)

		if stmt == "" {
			continue
		}

		if err := gdb.Exec(stmt).Error; err != nil {
			if isMissingObject(err) {
				continue
			}

			log.Printf("Setup script statement failed: %v", err)
		}
	}

	return nil
}

func isMissingObject(err error) bool {
	msg := err.Error()

	// postgres: `relation "x" does not exist`; sqlite: `no such table: x`
	return strings.Contains(msg, "does not exist") || strings.Contains(msg, "no such table")
}
