package store

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/outreach-dev/outreach/internal/models"
)

// setupTestDB opens a per-test in-memory database with foreign keys enforced,
// so constraint failures behave like production.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on",
		strings.ReplaceAll(t.Name(), "/", "_"))

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = gdb.AutoMigrate(
		&models.Department{},
		&models.CommunityMember{},
		&models.Supervisor{},
		&models.Volunteer{},
		&models.OfficeWorker{},
		&models.Donor{},
		&models.Donation{},
		&models.Donates{},
		&models.Project{},
		&models.Funds{},
		&models.Campaign{},
		&models.Participates{},
	)
	require.NoError(t, err)

	return gdb
}

func date(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse(DateLayout, value)
	require.NoError(t, err)

	return parsed
}

func seedMember(t *testing.T, gdb *gorm.DB, id uint, name, email string) {
	t.Helper()

	require.NoError(t, gdb.Create(&models.CommunityMember{
		MemberID:   id,
		Name:       name,
		Email:      email,
		Phone:      "6045550100",
		DateJoined: date(t, "2022-01-01"),
	}).Error)
}

func seedDepartment(t *testing.T, gdb *gorm.DB, id uint, name string) {
	t.Helper()

	require.NoError(t, gdb.Create(&models.Department{DeptID: id, Name: name}).Error)
}
