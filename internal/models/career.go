package models

import "time"

// CareerApplication stores its attachments inline. For each slot the data,
// filename and mimetype columns are either all set or all NULL.
type CareerApplication struct {
	ID        uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	JobType   string `gorm:"column:job_type;type:text" json:"job_type"`
	JobRole   string `gorm:"column:job_role;type:text" json:"job_role"`
	Position  string `gorm:"column:position;type:text" json:"position"`
	Name      string `gorm:"column:name;type:text" json:"name"`
	Email     string `gorm:"column:email;type:text" json:"email"`
	Phone     string `gorm:"column:phone;type:text" json:"phone"`
	Education string `gorm:"column:education;type:text" json:"education"`
	Address   string `gorm:"column:address;type:text" json:"address"`

	ResumeFilename *string `gorm:"column:resume_filename;type:text" json:"resume_filename"`
	ResumeData     []byte  `gorm:"column:resume_data" json:"-"`
	ResumeMimetype *string `gorm:"column:resume_mimetype;type:text" json:"resume_mimetype"`

	PhotoFilename *string `gorm:"column:photo_filename;type:text" json:"photo_filename"`
	PhotoData     []byte  `gorm:"column:photo_data" json:"-"`
	PhotoMimetype *string `gorm:"column:photo_mimetype;type:text" json:"photo_mimetype"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (CareerApplication) TableName() string { return "career_applications" }

// CareerApplicationSummary is the blob-free projection of career_applications
// used by listings, so responses stay small no matter how large the uploads were.
type CareerApplicationSummary struct {
	ID        uint   `gorm:"column:id" json:"id"`
	JobType   string `gorm:"column:job_type" json:"job_type"`
	JobRole   string `gorm:"column:job_role" json:"job_role"`
	Position  string `gorm:"column:position" json:"position"`
	Name      string `gorm:"column:name" json:"name"`
	Email     string `gorm:"column:email" json:"email"`
	Phone     string `gorm:"column:phone" json:"phone"`
	Education string `gorm:"column:education" json:"education"`
	Address   string `gorm:"column:address" json:"address"`

	ResumeFilename *string `gorm:"column:resume_filename" json:"resume_filename"`
	ResumeMimetype *string `gorm:"column:resume_mimetype" json:"resume_mimetype"`
	PhotoFilename  *string `gorm:"column:photo_filename" json:"photo_filename"`
	PhotoMimetype  *string `gorm:"column:photo_mimetype" json:"photo_mimetype"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (CareerApplicationSummary) TableName() string { return "career_applications" }
