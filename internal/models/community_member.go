package models

import "time"

// CommunityMember is the base identity row. Role-specific attributes live in the
// Supervisor, Volunteer and OfficeWorker subtype tables keyed by the same MemberID;
// a member may hold any combination of the three roles, or none.
type CommunityMember struct {
	MemberID   uint      `gorm:"column:member_id;primaryKey"`
	Name       string    `gorm:"column:name;not null"`
	Email      string    `gorm:"column:email;uniqueIndex;not null"`
	Phone      string    `gorm:"column:phone"`
	DateJoined time.Time `gorm:"column:date_joined;not null"`

	// Relationships
	Supervisor   *Supervisor   `gorm:"foreignKey:MemberID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Volunteer    *Volunteer    `gorm:"foreignKey:MemberID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	OfficeWorker *OfficeWorker `gorm:"foreignKey:MemberID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
