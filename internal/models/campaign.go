package models

import "time"

type Campaign struct {
	CampaignID   uint      `gorm:"column:campaign_id;primaryKey"`
	Name         string    `gorm:"column:name;not null"`
	CampaignDate time.Time `gorm:"column:campaign_date;not null"`
	Type         string    `gorm:"column:type;not null"`

	// Relationships
	Participations []Participates `gorm:"foreignKey:CampaignID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

// Participates records a volunteer's hours on a campaign.
type Participates struct {
	MemberID   uint    `gorm:"column:member_id;primaryKey"`
	CampaignID uint    `gorm:"column:campaign_id;primaryKey"`
	Hours      float64 `gorm:"column:hours;not null"`
}

func (Participates) TableName() string {
	return "participates"
}
