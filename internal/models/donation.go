package models

import "time"

type Donation struct {
	DonationID   uint      `gorm:"column:donation_id;primaryKey"`
	Amount       float64   `gorm:"column:amount;not null"`
	DonationDate time.Time `gorm:"column:donation_date;not null"`
	Method       string    `gorm:"column:method;not null"`
}

// Donates links a donation to the donor who made it. Every donation has one.
type Donates struct {
	DonationID uint   `gorm:"column:donation_id;primaryKey"`
	SSN        string `gorm:"column:ssn;not null"`

	// Relationships
	Donation Donation `gorm:"foreignKey:DonationID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (Donates) TableName() string {
	return "donates"
}

// Funds links a donation to the project it finances. Optional: undirected
// donations have no funds row.
type Funds struct {
	ProjectID  uint `gorm:"column:project_id;primaryKey"`
	DonationID uint `gorm:"column:donation_id;primaryKey"`

	// Relationships
	Project  Project  `gorm:"foreignKey:ProjectID;references:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Donation Donation `gorm:"foreignKey:DonationID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

func (Funds) TableName() string {
	return "funds"
}
