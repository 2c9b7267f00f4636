package models

import "time"

// Quantity stays text on purpose: the public site submits it as a free-form
// field ("5", "5-10 units", …) and the admin panel never does arithmetic on it.
type RFQSubmission struct {
	ID            uint    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	PartNumber    string  `gorm:"column:part_number;type:text" json:"part_number"`
	ConditionCode *string `gorm:"column:condition_code;type:text" json:"condition_code"`
	Description   string  `gorm:"column:description;type:text" json:"description"`
	Certificate   *string `gorm:"column:certificate;type:text" json:"certificate"`
	Quantity      string  `gorm:"column:quantity;type:text" json:"quantity"`
	Notes         string  `gorm:"column:notes;type:text" json:"notes"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (RFQSubmission) TableName() string { return "rfq_submissions" }
