package models

// Supervisor marks a community member as eligible to lead projects.
type Supervisor struct {
	MemberID uint `gorm:"column:member_id;primaryKey"`
}

// Volunteer marks a community member as eligible to participate in campaigns.
type Volunteer struct {
	MemberID uint `gorm:"column:member_id;primaryKey"`

	// Relationships
	Participations []Participates `gorm:"foreignKey:MemberID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

// OfficeWorker carries the salaried-staff attributes for a community member.
type OfficeWorker struct {
	MemberID uint    `gorm:"column:member_id;primaryKey"`
	Location string  `gorm:"column:location"`
	Salary   float64 `gorm:"column:salary;not null"`
	DeptID   uint    `gorm:"column:dept_id;not null"`

	// Relationships
	Department Department `gorm:"foreignKey:DeptID;references:DeptID;constraint:OnUpdate:Cascade"`
}
