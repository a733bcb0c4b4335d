package models

type Donor struct {
	SSN   string `gorm:"column:ssn;primaryKey"`
	Name  string `gorm:"column:name;not null"`
	Email string `gorm:"column:email"`

	// Relationships
	Donates []Donates `gorm:"foreignKey:SSN;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
