package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"

	"clubhub/internal/common"
	"clubhub/internal/dbmysql"
)

// fakeContentService records destructive calls so tests can assert the
// confirm gate really blocks them.
type fakeContentService struct {
	ContentService
	deletes      int
	assetDeletes int
}

func (f *fakeContentService) Delete(ctx context.Context, id uint64) error {
	f.deletes++
	return nil
}

func (f *fakeContentService) DeleteAsset(ctx context.Context, assetID uint64) error {
	f.assetDeletes++
	return nil
}

func (f *fakeContentService) List(ctx context.Context, category common.ContentCategory) ([]dbmysql.ContentEntity, error) {
	return []dbmysql.ContentEntity{{EntityID: 1, Category: category}}, nil
}

func newTestRouter(service ContentService) *mux.Router {
	router := mux.NewRouter()
	NewHandler(service).RegisterRoutes(router)
	return router
}

func TestDeleteWithoutConfirmationIs412AndDoesNothing(t *testing.T) {
	fake := &fakeContentService{}
	router := newTestRouter(fake)

	for _, target := range []string{"/activities/42", "/activities/images/7"} {
		req := httptest.NewRequest(http.MethodDelete, target, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusPreconditionFailed, rec.Code)
	}
	require.Zero(t, fake.deletes)
	require.Zero(t, fake.assetDeletes)
}

func TestDeleteWithConfirmationRuns(t *testing.T) {
	fake := &fakeContentService{}
	router := newTestRouter(fake)

	req := httptest.NewRequest(http.MethodDelete, "/activities/42", nil)
	req.Header.Set("X-Confirm-Delete", "true")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, fake.deletes)
}

func TestDeclinedConfirmationHeaderIsADecline(t *testing.T) {
	fake := &fakeContentService{}
	router := newTestRouter(fake)

	req := httptest.NewRequest(http.MethodDelete, "/activities/images/7", nil)
	req.Header.Set("X-Confirm-Delete", "false")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusPreconditionFailed, rec.Code)
	require.Zero(t, fake.assetDeletes)
}

func TestUnknownResourceIs404(t *testing.T) {
	router := newTestRouter(&fakeContentService{})

	req := httptest.NewRequest(http.MethodGet, "/mixtapes", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStaticGate(t *testing.T) {
	require.True(t, StaticGate(true).Confirm("delete everything?"))
	require.False(t, StaticGate(false).Confirm("delete everything?"))
}
