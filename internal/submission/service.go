package submission

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"strings"

	"gorm.io/gorm"

	"clubhub/internal/common"
	"clubhub/internal/dbmongo"
	"clubhub/internal/dbmysql"
)

// AssetStore is the slice of the byte store this package needs for CVs.
type AssetStore interface {
	Store(ctx context.Context, filename, contentType string, content io.Reader) (*dbmongo.StoredFile, error)
	Delete(ctx context.Context, fileID string) error
}

// SubmissionService covers both inbound record kinds: contact messages and
// job applications. Records are created once by the public forms and from
// then on only admins touch them.
type SubmissionService interface {
	SubmitContact(ctx context.Context, name, email, subject, message string) (*dbmysql.ContactMessage, error)
	ViewContactMessage(ctx context.Context, id uint64) (*dbmysql.ContactMessage, error)
	ListContactMessages(ctx context.Context, status string, page, limit int) (*MessagePage, error)
	UpdateContactMessage(ctx context.Context, id uint64, status, notes *string) (*dbmysql.ContactMessage, error)
	DeleteContactMessage(ctx context.Context, id uint64) error

	Apply(ctx context.Context, jobPostID uint64, name, email, phone, coverLetter string, cvName, cvType string, cv io.Reader) (*dbmysql.JobApplication, error)
	GetApplication(ctx context.Context, id uint64) (*dbmysql.JobApplication, error)
	ListApplications(ctx context.Context, status string, page, limit int) (*ApplicationPage, error)
	UpdateApplication(ctx context.Context, id uint64, status, notes *string) (*dbmysql.JobApplication, error)
	DeleteApplication(ctx context.Context, id uint64) error
}

type MessagePage struct {
	Items      []dbmysql.ContactMessage `json:"items"`
	Page       int                      `json:"page"`
	PageSize   int                      `json:"page_size"`
	TotalCount int64                    `json:"total_count"`
	TotalPages int                      `json:"total_pages"`
}

type ApplicationPage struct {
	Items      []dbmysql.JobApplication `json:"items"`
	Page       int                      `json:"page"`
	PageSize   int                      `json:"page_size"`
	TotalCount int64                    `json:"total_count"`
	TotalPages int                      `json:"total_pages"`
}

type submissionService struct {
	messages     dbmysql.ContactMessageRepository
	applications dbmysql.JobApplicationRepository
	entities     dbmysql.EntityRepository
	store        AssetStore
	mediaBaseURL string
}

func NewSubmissionService(messages dbmysql.ContactMessageRepository, applications dbmysql.JobApplicationRepository, entities dbmysql.EntityRepository, store AssetStore, mediaBaseURL string) SubmissionService {
	return &submissionService{
		messages:     messages,
		applications: applications,
		entities:     entities,
		store:        store,
		mediaBaseURL: mediaBaseURL,
	}
}

func (s *submissionService) SubmitContact(ctx context.Context, name, email, subject, message string) (*dbmysql.ContactMessage, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: name and message are required", ErrValidation)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	if err := common.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	msg := &dbmysql.ContactMessage{
		Name:    name,
		Email:   email,
		Subject: subject,
		Message: message,
		Status:  ContactStatusNew.String(),
	}
	if err := s.messages.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// ViewContactMessage returns the message and, if this is the first time an
// admin opens it, flips new -> read as a side effect. Later views of an
// already-read message change nothing.
func (s *submissionService) ViewContactMessage(ctx context.Context, id uint64) (*dbmysql.ContactMessage, error) {
	msg, err := s.messages.GetMessageByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: message %d", ErrNotFound, id)
		}
		return nil, err
	}

	if AutoReadOnView(ContactStatus(msg.Status)) {
		msg.Status = ContactStatusRead.String()
		if err := s.messages.UpdateMessage(ctx, msg); err != nil {
			return nil, err
		}
	}
	return msg, nil
}

func (s *submissionService) ListContactMessages(ctx context.Context, status string, page, limit int) (*MessagePage, error) {
	if status != "" && !ContactStatus(status).IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	items, total, err := s.messages.ListMessages(ctx, status, page, limit)
	if err != nil {
		return nil, err
	}
	return &MessagePage{
		Items:      items,
		Page:       page,
		PageSize:   limit,
		TotalCount: total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

func (s *submissionService) UpdateContactMessage(ctx context.Context, id uint64, status, notes *string) (*dbmysql.ContactMessage, error) {
	msg, err := s.messages.GetMessageByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: message %d", ErrNotFound, id)
		}
		return nil, err
	}

	if status != nil {
		if !ContactStatus(*status).IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *status)
		}
		msg.Status = *status
	}
	if notes != nil {
		msg.AdminNotes = *notes
	}

	if err := s.messages.UpdateMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *submissionService) DeleteContactMessage(ctx context.Context, id uint64) error {
	if err := s.messages.DeleteMessage(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: message %d", ErrNotFound, id)
		}
		return err
	}
	return nil
}

// Apply records a job application against a live job post, storing the CV
// (PDF only) through the asset store when one is attached.
func (s *submissionService) Apply(ctx context.Context, jobPostID uint64, name, email, phone, coverLetter string, cvName, cvType string, cv io.Reader) (*dbmysql.JobApplication, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	if err := common.ValidateEmail(email); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	post, err := s.entities.GetEntityByID(ctx, jobPostID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: job post %d", ErrNotFound, jobPostID)
		}
		return nil, err
	}
	if post.Category != common.CategoryJobPost || !post.Active {
		return nil, fmt.Errorf("%w: job post %d", ErrNotFound, jobPostID)
	}

	app := &dbmysql.JobApplication{
		JobPostID:   jobPostID,
		Name:        name,
		Email:       email,
		Phone:       phone,
		CoverLetter: coverLetter,
		Status:      ApplicationStatusNew.String(),
	}

	if cv != nil {
		if cvType != "application/pdf" {
			return nil, fmt.Errorf("%w: CV must be a PDF", ErrValidation)
		}
		stored, err := s.store.Store(ctx, cvName, cvType, cv)
		if err != nil {
			return nil, fmt.Errorf("CV storage failed: %w", err)
		}
		app.CVFileID = stored.ID
		app.CVFileName = stored.FileName
		app.CVURL = s.mediaBaseURL + stored.ID
	}

	if err := s.applications.CreateApplication(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *submissionService) GetApplication(ctx context.Context, id uint64) (*dbmysql.JobApplication, error) {
	app, err := s.applications.GetApplicationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: application %d", ErrNotFound, id)
		}
		return nil, err
	}
	return app, nil
}

func (s *submissionService) ListApplications(ctx context.Context, status string, page, limit int) (*ApplicationPage, error) {
	if status != "" && !ApplicationStatus(status).IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	items, total, err := s.applications.ListApplications(ctx, status, page, limit)
	if err != nil {
		return nil, err
	}
	return &ApplicationPage{
		Items:      items,
		Page:       page,
		PageSize:   limit,
		TotalCount: total,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

func (s *submissionService) UpdateApplication(ctx context.Context, id uint64, status, notes *string) (*dbmysql.JobApplication, error) {
	app, err := s.applications.GetApplicationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: application %d", ErrNotFound, id)
		}
		return nil, err
	}

	if status != nil {
		if !ApplicationStatus(*status).IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, *status)
		}
		app.Status = *status
	}
	if notes != nil {
		app.AdminNotes = *notes
	}

	if err := s.applications.UpdateApplication(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

// DeleteApplication removes the record and the stored CV bytes, if any.
func (s *submissionService) DeleteApplication(ctx context.Context, id uint64) error {
	app, err := s.applications.GetApplicationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: application %d", ErrNotFound, id)
		}
		return err
	}

	if app.CVFileID != "" {
		if err := s.store.Delete(ctx, app.CVFileID); err != nil {
			log.Printf("Warning: failed to delete CV bytes for application %d: %v", id, err)
		}
	}

	if err := s.applications.DeleteApplication(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: application %d", ErrNotFound, id)
		}
		return err
	}
	return nil
}
