package store

import (
	"strconv"
	"strings"
	"time"

	"github.com/outreach-dev/outreach/internal/models"
	"gorm.io/gorm"
)

type OfficeWorkerRow struct {
	MemberID   uint
	Name       string
	Email      string
	Phone      string
	DateJoined time.Time
	Location   string
	Salary     float64
	DeptID     uint
}

// OfficeWorkerUpdate carries candidate values as text, the way the form submits
// them. A blank field means "leave the stored value alone".
type OfficeWorkerUpdate struct {
	Name       string
	Email      string
	Phone      string
	DateJoined string
	Location   string
	Salary     string
	DeptID     string
}

func ListOfficeWorkers(gdb *gorm.DB) ([]OfficeWorkerRow, error) {
	var rows []OfficeWorkerRow

	err := gdb.Table("office_workers ow").
		Select("ow.member_id, cm.name, cm.email, cm.phone, cm.date_joined, ow.location, ow.salary, ow.dept_id").
		Joins("JOIN community_members cm ON cm.member_id = ow.member_id").
		Order("ow.member_id").
		Scan(&rows).Error

	return rows, err
}

// UpdateOfficeWorker merges the candidate fields over the stored row and writes
// the result: the base contact fields and the subtype fields update together or
// not at all. Returns ErrNotFound when the member isn't an office worker,
// ErrConflict when the new email belongs to someone else, ErrConstraint when
// the department doesn't exist, and ErrNoRowsUpdated when the subtype update
// touched nothing.
func UpdateOfficeWorker(gdb *gorm.DB, memberID uint, in OfficeWorkerUpdate) error {
	return gdb.Transaction(func(tx *gorm.DB) error {
		var current OfficeWorkerRow

		res := tx.Table("office_workers ow").
			Select("ow.member_id, cm.name, cm.email, cm.phone, cm.date_joined, ow.location, ow.salary, ow.dept_id").
			Joins("JOIN community_members cm ON cm.member_id = ow.member_id").
			Where("ow.member_id = ?", memberID).
			Scan(&current)

		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		email := current.Email

		if candidate := strings.TrimSpace(in.Email); candidate != "" {
			email = strings.ToLower(candidate)
		}

		if !strings.EqualFold(email, current.Email) {
			var others int64

			err := tx.Model(&models.CommunityMember{}).
				Where("LOWER(email) = ? AND member_id <> ?", strings.ToLower(email), memberID).
				Count(&others).Error

			if err != nil {
				return err
			}

			if others > 0 {
				return ErrConflict
			}
		}

		name := mergeText(in.Name, current.Name)
		phone := mergeText(in.Phone, current.Phone)
		location := mergeText(in.Location, current.Location)

		dateJoined := current.DateJoined

		if candidate := strings.TrimSpace(in.DateJoined); candidate != "" {
			parsed, err := time.Parse(DateLayout, candidate)

			if err != nil {
				return ErrInvalidRequest
			}

			dateJoined = parsed
		}

		salary := current.Salary

		if candidate := strings.TrimSpace(in.Salary); candidate != "" {
			parsed, err := strconv.ParseFloat(candidate, 64)

			if err != nil {
				return ErrInvalidRequest
			}

			salary = parsed
		}

		deptID := current.DeptID

		if candidate := strings.TrimSpace(in.DeptID); candidate != "" {
			parsed, err := strconv.ParseUint(candidate, 10, 32)

			if err != nil {
				return ErrInvalidRequest
			}

			deptID = uint(parsed)
		}

		err := tx.Model(&models.CommunityMember{}).
			Where("member_id = ?", memberID).
			Updates(map[string]interface{}{
				"name":        name,
				"email":       email,
				"phone":       phone,
				"date_joined": dateJoined,
			}).Error

		if err != nil {
			return translateWrite(err)
		}

		res = tx.Model(&models.OfficeWorker{}).
			Where("member_id = ?", memberID).
			Updates(map[string]interface{}{
				"location": location,
				"salary":   salary,
				"dept_id":  deptID,
			})

		if res.Error != nil {
			return translateWrite(res.Error)
		}

		if res.RowsAffected == 0 {
			return ErrNoRowsUpdated
		}

		return nil
	})
}

func mergeText(candidate, current string) string {
	if strings.TrimSpace(candidate) != "" {
		return candidate
	}

	return current
}
