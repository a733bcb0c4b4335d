package store

import (
	"sort"
	"time"

	"github.com/outreach-dev/outreach/internal/models"
	"gorm.io/gorm"
)

// Role labels as the API reports them. "Office Worker" is the display form;
// the subtype table is office_workers.
const (
	RoleSupervisor   = "Supervisor"
	RoleVolunteer    = "Volunteer"
	RoleOfficeWorker = "Office Worker"
	RoleNone         = "None"
)

type CommunityMemberRow struct {
	MemberID   uint
	Name       string
	Role       string
	Email      string
	Phone      string
	DateJoined time.Time
}

// memberRoleUnion filters to members appearing in none of the subtype tables.
const memberRoleUnion = `member_id NOT IN (
	SELECT member_id FROM supervisors
	UNION SELECT member_id FROM volunteers
	UNION SELECT member_id FROM office_workers)`

// ListCommunityMembers returns one row per (member, role) pair, plus a "None"
// row for members holding no role at all. A member with several roles appears
// once per role.
func ListCommunityMembers(gdb *gorm.DB) ([]CommunityMemberRow, error) {
	roleJoins := []struct {
		role string
		join string
	}{
		{RoleSupervisor, "JOIN supervisors r ON r.member_id = community_members.member_id"},
		{RoleVolunteer, "JOIN volunteers r ON r.member_id = community_members.member_id"},
		{RoleOfficeWorker, "JOIN office_workers r ON r.member_id = community_members.member_id"},
	}

	var rows []CommunityMemberRow

	for _, rj := range roleJoins {
		var part []CommunityMemberRow

		err := gdb.Model(&models.CommunityMember{}).
			Select("community_members.member_id, community_members.name, community_members.email, community_members.phone, community_members.date_joined").
			Joins(rj.join).
			Scan(&part).Error

		if err != nil {
			return nil, err
		}

		for i := range part {
			part[i].Role = rj.role
		}

		rows = append(rows, part...)
	}

	var roleless []CommunityMemberRow

	err := gdb.Model(&models.CommunityMember{}).
		Select("member_id, name, email, phone, date_joined").
		Where(memberRoleUnion).
		Scan(&roleless).Error

	if err != nil {
		return nil, err
	}

	for i := range roleless {
		roleless[i].Role = RoleNone
	}

	rows = append(rows, roleless...)

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].MemberID != rows[j].MemberID {
			return rows[i].MemberID < rows[j].MemberID
		}
		return rows[i].Role < rows[j].Role
	})

	return rows, nil
}

// DeleteCommunityMember removes one role membership. When that was the member's
// last role the base identity row goes too, in the same transaction. Deleting a
// role the member doesn't hold is a no-op, not an error. Returns whether the
// base row was deleted.
func DeleteCommunityMember(gdb *gorm.DB, memberID uint, role string) (bool, error) {
	var roleModel interface{}

	switch role {
	case RoleSupervisor:
		roleModel = &models.Supervisor{}
	case RoleVolunteer:
		roleModel = &models.Volunteer{}
	case RoleOfficeWorker:
		roleModel = &models.OfficeWorker{}
	default:
		return false, ErrInvalidRequest
	}

	var fullDelete bool

	err := gdb.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("member_id = ?", memberID).Delete(roleModel).Error; err != nil {
			return translateWrite(err)
		}

		var remaining int64

		err := tx.Raw(`SELECT COUNT(*) FROM (
			SELECT member_id FROM supervisors WHERE member_id = ?
			UNION SELECT member_id FROM volunteers WHERE member_id = ?
			UNION SELECT member_id FROM office_workers WHERE member_id = ?) roles`,
			memberID, memberID, memberID).Scan(&remaining).Error

		if err != nil {
			return err
		}

		if remaining == 0 {
			if err := tx.Where("member_id = ?", memberID).Delete(&models.CommunityMember{}).Error; err != nil {
				return translateWrite(err)
			}

			fullDelete = true
		}

		return nil
	})

	if err != nil {
		return false, err
	}

	return fullDelete, nil
}
