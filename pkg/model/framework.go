package model

import "time"

// IndustryAll marks a framework as applicable to every industry.
const IndustryAll = "all"

// Framework is a named compliance standard. Reference data, rarely mutated.
type Framework struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Code      string    `gorm:"column:code;uniqueIndex"`
	Name      string    `gorm:"column:name"`
	Version   string    `gorm:"column:version"`
	Industry  string    `gorm:"column:industry"`
	Mandatory bool      `gorm:"column:mandatory"`
	Active    bool      `gorm:"column:active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Framework) TableName() string {
	return "frameworks"
}
