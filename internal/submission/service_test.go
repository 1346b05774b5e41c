package submission

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"clubhub/internal/common"
	"clubhub/internal/dbmongo"
	"clubhub/internal/dbmysql"
)

// fakeEntityRepo serves the one lookup Apply needs.
type fakeEntityRepo struct {
	dbmysql.EntityRepository
	posts map[uint64]*dbmysql.ContentEntity
}

func (f *fakeEntityRepo) GetEntityByID(ctx context.Context, id uint64) (*dbmysql.ContentEntity, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return post, nil
}

// fakeStore records stored and deleted file ids.
type fakeStore struct {
	stored  []string
	deleted []string
	failErr error
}

func (f *fakeStore) Store(ctx context.Context, filename, contentType string, content io.Reader) (*dbmongo.StoredFile, error) {
	if f.failErr != nil {
		return nil, f.failErr
	}
	f.stored = append(f.stored, filename)
	return &dbmongo.StoredFile{ID: "cv-" + filename, FileName: filename, ContentType: contentType}, nil
}

func (f *fakeStore) Delete(ctx context.Context, fileID string) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.deleted = append(f.deleted, fileID)
	return nil
}

type submissionFixture struct {
	service      SubmissionService
	messages     *MockContactMessageRepository
	applications *MockJobApplicationRepository
	entities     *fakeEntityRepo
	store        *fakeStore
}

func newSubmissionFixture(t *testing.T) submissionFixture {
	ctrl := gomock.NewController(t)
	messages := NewMockContactMessageRepository(ctrl)
	applications := NewMockJobApplicationRepository(ctrl)
	entities := &fakeEntityRepo{posts: map[uint64]*dbmysql.ContentEntity{
		7: {EntityID: 7, Category: common.CategoryJobPost, Title: "Backend Engineer", Active: true},
		8: {EntityID: 8, Category: common.CategoryJobPost, Title: "Old Role", Active: false},
		9: {EntityID: 9, Category: common.CategoryActivity, Title: "Not a job", Active: true},
	}}
	store := &fakeStore{}
	return submissionFixture{
		service:      NewSubmissionService(messages, applications, entities, store, "http://localhost:8081/media/"),
		messages:     messages,
		applications: applications,
		entities:     entities,
		store:        store,
	}
}

func TestSubmitContactStartsAsNew(t *testing.T) {
	f := newSubmissionFixture(t)

	f.messages.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(nil)

	msg, err := f.service.SubmitContact(context.Background(), "Ada", "ada@example.com", "Hi", "Question about the club")
	require.NoError(t, err)
	require.Equal(t, "new", msg.Status)
}

func TestSubmitContactValidation(t *testing.T) {
	f := newSubmissionFixture(t)

	tests := []struct {
		name    string
		cName   string
		email   string
		message string
	}{
		{"missing name", "", "a@b.com", "hello"},
		{"missing message", "Ada", "a@b.com", "  "},
		{"missing email", "Ada", "", "hello"},
		{"bad email", "Ada", "not-an-email", "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.SubmitContact(context.Background(), tt.cName, tt.email, "subj", tt.message)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestViewFlipsNewToReadExactlyOnce(t *testing.T) {
	f := newSubmissionFixture(t)

	msg := &dbmysql.ContactMessage{MessageID: 3, Status: "new"}
	gomock.InOrder(
		f.messages.EXPECT().GetMessageByID(gomock.Any(), uint64(3)).Return(msg, nil),
		f.messages.EXPECT().UpdateMessage(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m *dbmysql.ContactMessage) error {
				require.Equal(t, "read", m.Status)
				return nil
			}),
		// Second view: already read, no update issued.
		f.messages.EXPECT().GetMessageByID(gomock.Any(), uint64(3)).Return(msg, nil),
	)

	first, err := f.service.ViewContactMessage(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, "read", first.Status)

	second, err := f.service.ViewContactMessage(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, "read", second.Status)
}

func TestViewDoesNotTouchRepliedMessages(t *testing.T) {
	f := newSubmissionFixture(t)

	f.messages.EXPECT().GetMessageByID(gomock.Any(), uint64(4)).
		Return(&dbmysql.ContactMessage{MessageID: 4, Status: "replied"}, nil)

	msg, err := f.service.ViewContactMessage(context.Background(), 4)
	require.NoError(t, err)
	require.Equal(t, "replied", msg.Status)
}

func TestListMessagesRejectsUnknownStatusFilter(t *testing.T) {
	f := newSubmissionFixture(t)

	_, err := f.service.ListContactMessages(context.Background(), "pending", 1, 10)
	require.ErrorIs(t, err, ErrValidation)
}

func TestListMessagesPassesFilterThrough(t *testing.T) {
	f := newSubmissionFixture(t)

	f.messages.EXPECT().ListMessages(gomock.Any(), "archived", 1, 10).
		Return([]dbmysql.ContactMessage{{MessageID: 1}}, int64(1), nil)

	page, err := f.service.ListContactMessages(context.Background(), "archived", 0, 0)
	require.NoError(t, err)
	require.Equal(t, int64(1), page.TotalCount)
	require.Equal(t, 1, page.TotalPages)
}

func TestUpdateMessageStatusAndNotes(t *testing.T) {
	f := newSubmissionFixture(t)

	status := "replied"
	notes := "answered by email"
	f.messages.EXPECT().GetMessageByID(gomock.Any(), uint64(3)).
		Return(&dbmysql.ContactMessage{MessageID: 3, Status: "read"}, nil)
	f.messages.EXPECT().UpdateMessage(gomock.Any(), gomock.Any()).Return(nil)

	msg, err := f.service.UpdateContactMessage(context.Background(), 3, &status, &notes)
	require.NoError(t, err)
	require.Equal(t, "replied", msg.Status)
	require.Equal(t, "answered by email", msg.AdminNotes)
}

func TestUpdateMessageRejectsUnknownStatus(t *testing.T) {
	f := newSubmissionFixture(t)

	status := "spam"
	f.messages.EXPECT().GetMessageByID(gomock.Any(), uint64(3)).
		Return(&dbmysql.ContactMessage{MessageID: 3, Status: "read"}, nil)

	_, err := f.service.UpdateContactMessage(context.Background(), 3, &status, nil)
	require.ErrorIs(t, err, ErrValidation)
}

func TestApplyStoresCVAndCreatesRecord(t *testing.T) {
	f := newSubmissionFixture(t)

	f.applications.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).Return(nil)

	app, err := f.service.Apply(context.Background(), 7, "Ada", "ada@example.com", "123", "Hire me",
		"cv.pdf", "application/pdf", strings.NewReader("%PDF-1.4"))
	require.NoError(t, err)
	require.Equal(t, "new", app.Status)
	require.Equal(t, "cv-cv.pdf", app.CVFileID)
	require.Equal(t, "http://localhost:8081/media/cv-cv.pdf", app.CVURL)
	require.Equal(t, []string{"cv.pdf"}, f.store.stored)
}

func TestApplyWithoutCV(t *testing.T) {
	f := newSubmissionFixture(t)

	f.applications.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).Return(nil)

	app, err := f.service.Apply(context.Background(), 7, "Ada", "ada@example.com", "", "", "", "", nil)
	require.NoError(t, err)
	require.Empty(t, app.CVFileID)
	require.Empty(t, f.store.stored)
}

func TestApplyRejectsNonPDFCV(t *testing.T) {
	f := newSubmissionFixture(t)

	_, err := f.service.Apply(context.Background(), 7, "Ada", "ada@example.com", "", "",
		"cv.docx", "application/msword", strings.NewReader("doc"))
	require.ErrorIs(t, err, ErrValidation)
	require.Empty(t, f.store.stored)
}

func TestApplyTargetMustBeLiveJobPost(t *testing.T) {
	f := newSubmissionFixture(t)

	tests := []struct {
		name string
		id   uint64
	}{
		{"missing post", 99},
		{"inactive post", 8},
		{"not a job post", 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.Apply(context.Background(), tt.id, "Ada", "ada@example.com", "", "", "", "", nil)
			require.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestDeleteApplicationRemovesCVBytes(t *testing.T) {
	f := newSubmissionFixture(t)

	f.applications.EXPECT().GetApplicationByID(gomock.Any(), uint64(5)).
		Return(&dbmysql.JobApplication{ApplicationID: 5, CVFileID: "cv-abc"}, nil)
	f.applications.EXPECT().DeleteApplication(gomock.Any(), uint64(5)).Return(nil)

	require.NoError(t, f.service.DeleteApplication(context.Background(), 5))
	require.Equal(t, []string{"cv-abc"}, f.store.deleted)
}

func TestDeleteApplicationSurvivesMissingBytes(t *testing.T) {
	f := newSubmissionFixture(t)
	f.store.failErr = errors.New("file not found")

	f.applications.EXPECT().GetApplicationByID(gomock.Any(), uint64(5)).
		Return(&dbmysql.JobApplication{ApplicationID: 5, CVFileID: "cv-abc"}, nil)
	f.applications.EXPECT().DeleteApplication(gomock.Any(), uint64(5)).Return(nil)

	require.NoError(t, f.service.DeleteApplication(context.Background(), 5))
}

func TestDeleteApplicationTwiceReportsNotFound(t *testing.T) {
	f := newSubmissionFixture(t)

	f.applications.EXPECT().GetApplicationByID(gomock.Any(), uint64(5)).
		Return(nil, gorm.ErrRecordNotFound)

	err := f.service.DeleteApplication(context.Background(), 5)
	require.ErrorIs(t, err, ErrNotFound)
}
