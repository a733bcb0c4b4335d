package models

type Department struct {
	DeptID uint   `gorm:"column:dept_id;primaryKey"`
	Name   string `gorm:"column:name;not null"`
}
