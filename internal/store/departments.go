package store

import (
	"github.com/outreach-dev/outreach/internal/models"
	"gorm.io/gorm"
)

func ListDepartments(gdb *gorm.DB) ([]models.Department, error) {
	var rows []models.Department

	err := gdb.Order("dept_id").Find(&rows).Error

	return rows, err
}
