package dbmysql

import (
	"context"

	"gorm.io/gorm"
)

type ContactMessageRepository interface {
	CreateMessage(ctx context.Context, msg *ContactMessage) error
	GetMessageByID(ctx context.Context, id uint64) (*ContactMessage, error)
	UpdateMessage(ctx context.Context, msg *ContactMessage) error
	DeleteMessage(ctx context.Context, id uint64) error
	ListMessages(ctx context.Context, status string, page, limit int) ([]ContactMessage, int64, error)
}

type JobApplicationRepository interface {
	CreateApplication(ctx context.Context, app *JobApplication) error
	GetApplicationByID(ctx context.Context, id uint64) (*JobApplication, error)
	UpdateApplication(ctx context.Context, app *JobApplication) error
	DeleteApplication(ctx context.Context, id uint64) error
	ListApplications(ctx context.Context, status string, page, limit int) ([]JobApplication, int64, error)
}

type contactMessageRepository struct {
	db *gorm.DB
}

func NewContactMessageRepository(db *gorm.DB) ContactMessageRepository {
	return &contactMessageRepository{db: db}
}

func (r *contactMessageRepository) CreateMessage(ctx context.Context, msg *ContactMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *contactMessageRepository) GetMessageByID(ctx context.Context, id uint64) (*ContactMessage, error) {
	var msg ContactMessage
	err := r.db.WithContext(ctx).First(&msg, "message_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *contactMessageRepository) UpdateMessage(ctx context.Context, msg *ContactMessage) error {
	return r.db.WithContext(ctx).Save(msg).Error
}

func (r *contactMessageRepository) DeleteMessage(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&ContactMessage{}, "message_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *contactMessageRepository) ListMessages(ctx context.Context, status string, page, limit int) ([]ContactMessage, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	query := r.db.WithContext(ctx).Model(&ContactMessage{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var messages []ContactMessage
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&messages).Error
	return messages, total, err
}

type jobApplicationRepository struct {
	db *gorm.DB
}

func NewJobApplicationRepository(db *gorm.DB) JobApplicationRepository {
	return &jobApplicationRepository{db: db}
}

func (r *jobApplicationRepository) CreateApplication(ctx context.Context, app *JobApplication) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *jobApplicationRepository) GetApplicationByID(ctx context.Context, id uint64) (*JobApplication, error) {
	var app JobApplication
	err := r.db.WithContext(ctx).First(&app, "application_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *jobApplicationRepository) UpdateApplication(ctx context.Context, app *JobApplication) error {
	return r.db.WithContext(ctx).Save(app).Error
}

func (r *jobApplicationRepository) DeleteApplication(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&JobApplication{}, "application_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *jobApplicationRepository) ListApplications(ctx context.Context, status string, page, limit int) ([]JobApplication, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	query := r.db.WithContext(ctx).Model(&JobApplication{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []JobApplication
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&apps).Error
	return apps, total, err
}
