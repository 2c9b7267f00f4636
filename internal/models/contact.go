package models

import "time"

type ContactSubmission struct {
	ID      uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name    string `gorm:"column:name;type:text" json:"name"`
	Email   string `gorm:"column:email;type:text" json:"email"`
	Phone   string `gorm:"column:phone;type:text" json:"phone"`
	Message string `gorm:"column:message;type:text" json:"message"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ContactSubmission) TableName() string { return "contact_submissions" }
