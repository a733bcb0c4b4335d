package store

import (
	"strconv"
	"strings"

	"github.com/outreach-dev/outreach/internal/models"
	"gorm.io/gorm"
)

type ProjectInsert struct {
	ProjectID    string
	Name         string
	Description  string
	GoalAmount   string
	SupervisorID string
}

type ProjectOption struct {
	ProjectID uint
	Name      string
}

func ListProjects(gdb *gorm.DB) ([]models.Project, error) {
	var rows []models.Project

	err := gdb.Order("project_id").Find(&rows).Error

	return rows, err
}

func ListProjectOptions(gdb *gorm.DB) ([]ProjectOption, error) {
	var rows []ProjectOption

	err := gdb.Model(&models.Project{}).
		Select("project_id, name").
		Order("project_id").
		Scan(&rows).Error

	return rows, err
}

// FilterProjectsByGoal filters on goal amount: "lt" below, "gt" above. Any
// other operator returns the full list, as the original console did.
func FilterProjectsByGoal(gdb *gorm.DB, op string, amount float64) ([]models.Project, error) {
	query := gdb.Model(&models.Project{})

	switch op {
	case "lt":
		query = query.Where("goal_amount < ?", amount)
	case "gt":
		query = query.Where("goal_amount > ?", amount)
	}

	var rows []models.Project

	err := query.Order("project_id").Find(&rows).Error

	return rows, err
}

// AddProject inserts one project. The supervisor FK is enforced by the store;
// callers are expected to have pre-validated it via ValidateSupervisor, but a
// race still surfaces as ErrConstraint rather than a crash.
func AddProject(gdb *gorm.DB, in ProjectInsert) error {
	projectID, err := strconv.ParseUint(strings.TrimSpace(in.ProjectID), 10, 32)

	if err != nil {
		return ErrInvalidRequest
	}

	goalAmount, err := strconv.ParseFloat(strings.TrimSpace(in.GoalAmount), 64)

	if err != nil {
		return ErrInvalidRequest
	}

	supervisorID, err := strconv.ParseUint(strings.TrimSpace(in.SupervisorID), 10, 32)

	if err != nil {
		return ErrInvalidRequest
	}

	project := models.Project{
		ProjectID:          uint(projectID),
		Name:               in.Name,
		Description:        in.Description,
		GoalAmount:         goalAmount,
		SupervisorMemberID: uint(supervisorID),
	}

	if err := gdb.Create(&project).Error; err != nil {
		return translateWrite(err)
	}

	return nil
}

// ValidateSupervisor reports whether the member id belongs to a registered
// supervisor.
func ValidateSupervisor(gdb *gorm.DB, memberID uint) (bool, error) {
	var count int64

	err := gdb.Model(&models.Supervisor{}).
		Joins("JOIN community_members cm ON cm.member_id = supervisors.member_id").
		Where("supervisors.member_id = ?", memberID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count == 1, nil
}
