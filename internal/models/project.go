package models

type Project struct {
	ProjectID          uint    `gorm:"column:project_id;primaryKey"`
	Name               string  `gorm:"column:name;not null"`
	Description        string  `gorm:"column:description"`
	GoalAmount         float64 `gorm:"column:goal_amount;not null"`
	SupervisorMemberID uint    `gorm:"column:supervisor_member_id;not null"`

	// Relationships
	Supervisor Supervisor `gorm:"foreignKey:SupervisorMemberID;references:MemberID;constraint:OnUpdate:Cascade"`
}
