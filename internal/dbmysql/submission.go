package dbmysql

import (
	"time"
)

// ContactMessage is created once by the public contact form and afterwards
// only touched by admin actions.
type ContactMessage struct {
	MessageID  uint64    `gorm:"primaryKey;autoIncrement;column:message_id" json:"id"`
	Name       string    `gorm:"size:255;column:name" json:"name"`
	Email      string    `gorm:"size:255;column:email" json:"email"`
	Subject    string    `gorm:"size:255;column:subject" json:"subject"`
	Message    string    `gorm:"type:text;column:message" json:"message"`
	Status     string    `gorm:"size:20;index;column:status;default:new" json:"status"`
	AdminNotes string    `gorm:"type:text;column:admin_notes" json:"admin_notes"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}

// JobApplication is submitted against a job_post entity, optionally with a CV
// stored through the asset store.
type JobApplication struct {
	ApplicationID uint64    `gorm:"primaryKey;autoIncrement;column:application_id" json:"id"`
	JobPostID     uint64    `gorm:"index;column:job_post_id" json:"job_post_id"`
	Name          string    `gorm:"size:255;column:name" json:"name"`
	Email         string    `gorm:"size:255;column:email" json:"email"`
	Phone         string    `gorm:"size:50;column:phone" json:"phone"`
	CoverLetter   string    `gorm:"type:text;column:cover_letter" json:"cover_letter"`
	CVFileID      string    `gorm:"size:24;column:cv_file_id" json:"cv_file_id"`
	CVFileName    string    `gorm:"size:255;column:cv_file_name" json:"cv_file_name"`
	CVURL         string    `gorm:"size:500;column:cv_url" json:"cv_url"`
	Status        string    `gorm:"size:20;index;column:status;default:new" json:"status"`
	AdminNotes    string    `gorm:"type:text;column:admin_notes" json:"admin_notes"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (JobApplication) TableName() string {
	return "job_applications"
}
