package store

import (
	"time"

	"github.com/outreach-dev/outreach/internal/models"
	"gorm.io/gorm"
)

type VolunteerRow struct {
	MemberID uint
	Name     string
	Email    string
	Phone    string
}

type VolunteerHoursRow struct {
	MemberID   uint
	Name       string
	TotalHours float64
}

type ParticipationRow struct {
	MemberID      uint
	VolunteerName string
	CampaignID    uint
	CampaignName  string
	Type          string
	Hours         float64
}

type CampaignRow struct {
	CampaignID   uint
	Name         string
	CampaignDate time.Time
	Type         string
}

func ListCampaigns(gdb *gorm.DB) ([]CampaignRow, error) {
	var rows []CampaignRow

	err := gdb.Model(&models.Campaign{}).
		Select("campaign_id, name, campaign_date, type").
		Order("type, campaign_id").
		Scan(&rows).Error

	return rows, err
}

func CampaignTypes(gdb *gorm.DB) ([]string, error) {
	var types []string

	err := gdb.Model(&models.Campaign{}).
		Distinct("type").
		Order("type").
		Pluck("type", &types).Error

	return types, err
}

func CampaignParticipation(gdb *gorm.DB) ([]ParticipationRow, error) {
	var rows []ParticipationRow

	err := gdb.Table("participates p").
		Joins(`JOIN volunteers v ON v.member_id = p.member_id
			JOIN community_members cm ON cm.member_id = v.member_id
			JOIN campaigns c ON c.campaign_id = p.campaign_id`).
		Select("v.member_id, cm.name AS volunteer_name, c.campaign_id, c.name AS campaign_name, c.type, p.hours").
		Order("c.type, c.campaign_id, v.member_id").
		Scan(&rows).Error

	return rows, err
}

// VolunteersForAllCampaignsOfType is the division query: a volunteer qualifies
// iff no campaign of the given type exists that they lack a participation row
// for. A type with zero campaigns therefore returns every volunteer.
func VolunteersForAllCampaignsOfType(gdb *gorm.DB, campaignType string) ([]VolunteerRow, error) {
	var rows []VolunteerRow

	err := gdb.Raw(`
		SELECT v.member_id, cm.name, cm.email, cm.phone
		FROM volunteers v
		JOIN community_members cm ON cm.member_id = v.member_id
		WHERE NOT EXISTS (
			SELECT c.campaign_id
			FROM campaigns c
			WHERE c.type = ?
			  AND NOT EXISTS (
				SELECT p.member_id
				FROM participates p
				WHERE p.member_id = v.member_id
				  AND p.campaign_id = c.campaign_id))
		ORDER BY v.member_id`, campaignType).
		Scan(&rows).Error

	return rows, err
}

// VolunteerMVP returns volunteers whose summed hours exceed the average of
// per-volunteer totals (not the average of raw hour entries).
func VolunteerMVP(gdb *gorm.DB) ([]VolunteerHoursRow, error) {
	var rows []VolunteerHoursRow

	err := gdb.Raw(`
		SELECT v.member_id, cm.name, SUM(p.hours) AS total_hours
		FROM volunteers v
		JOIN community_members cm ON cm.member_id = v.member_id
		JOIN participates p ON p.member_id = v.member_id
		GROUP BY v.member_id, cm.name
		HAVING SUM(p.hours) > (
			SELECT AVG(per_volunteer.total_hours)
			FROM (
				SELECT SUM(p2.hours) AS total_hours
				FROM volunteers v2
				JOIN participates p2 ON p2.member_id = v2.member_id
				GROUP BY v2.member_id) per_volunteer)
		ORDER BY total_hours DESC`).
		Scan(&rows).Error

	return rows, err
}
