package content

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"clubhub/internal/common"
	"clubhub/internal/dbmongo"
	"clubhub/internal/dbmysql"
)

type serviceFixture struct {
	service  ContentService
	entities *MockEntityRepository
	assets   *MockMediaAssetRepository
	store    *MockBlobStore
}

func newServiceFixture(t *testing.T) serviceFixture {
	ctrl := gomock.NewController(t)
	entities := NewMockEntityRepository(ctrl)
	assets := NewMockMediaAssetRepository(ctrl)
	store := NewMockBlobStore(ctrl)
	manager := NewAssetManager(assets, store, "http://localhost:8081/media/")
	return serviceFixture{
		service:  NewContentService(entities, manager),
		entities: entities,
		assets:   assets,
		store:    store,
	}
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCreateEntityWithImages(t *testing.T) {
	f := newServiceFixture(t)

	f.entities.EXPECT().CreateEntity(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *dbmysql.ContentEntity) error {
			e.EntityID = 42
			return nil
		})
	f.assets.EXPECT().CountByEntity(gomock.Any(), uint64(42)).Return(int64(0), nil).AnyTimes()
	f.assets.EXPECT().MaxPosition(gomock.Any(), uint64(42)).Return(-1, nil)
	f.store.EXPECT().Store(gomock.Any(), "fair.png", "image/png", gomock.Any()).
		Return(&dbmongo.StoredFile{ID: "f1", FileName: "fair.png", ContentType: "image/png"}, nil)
	f.assets.EXPECT().CreateAsset(gomock.Any(), gomock.Any()).Return(nil)
	f.assets.EXPECT().ListByEntity(gomock.Any(), uint64(42)).
		Return([]dbmysql.MediaAsset{{AssetID: 1, EntityID: 42, FileID: "f1", Position: 0}}, nil)

	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	entity, err := f.service.Create(context.Background(), CreateEntityCommand{
		Category:  common.CategoryActivity,
		Title:     "Career Fair 2024",
		EventDate: &date,
		Location:  "Main Hall",
		Active:    true,
	}, []NewFile{{FileName: "fair.png", ContentType: "image/png", Content: strings.NewReader("png")}})

	require.NoError(t, err)
	require.Equal(t, uint64(42), entity.EntityID)
	require.Len(t, entity.Assets, 1)
}

func TestCreateRejectsBadFileBeforePersisting(t *testing.T) {
	f := newServiceFixture(t)

	// No CreateEntity expectation: a bad file must stop the command before
	// any row is written.
	_, err := f.service.Create(context.Background(), CreateEntityCommand{
		Category: common.CategoryActivity,
		Title:    "Career Fair 2024",
	}, []NewFile{{FileName: "clip.mp4", ContentType: "video/mp4", Content: strings.NewReader("v")}})

	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestCreateValidatesCommand(t *testing.T) {
	f := newServiceFixture(t)

	tests := []struct {
		name string
		cmd  CreateEntityCommand
	}{
		{"missing title", CreateEntityCommand{Category: common.CategoryActivity}},
		{"unknown category", CreateEntityCommand{Category: "mixtape", Title: "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.Create(context.Background(), tt.cmd, nil)
			require.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestCreateSurvivesAssetStorageFailure(t *testing.T) {
	f := newServiceFixture(t)

	f.entities.EXPECT().CreateEntity(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *dbmysql.ContentEntity) error {
			e.EntityID = 42
			return nil
		})
	f.assets.EXPECT().CountByEntity(gomock.Any(), uint64(42)).Return(int64(0), nil).AnyTimes()
	f.assets.EXPECT().MaxPosition(gomock.Any(), uint64(42)).Return(-1, nil)
	f.store.EXPECT().Store(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("gridfs down"))

	entity, err := f.service.Create(context.Background(), CreateEntityCommand{
		Category: common.CategoryActivity,
		Title:    "Career Fair 2024",
		Active:   true,
	}, []NewFile{{FileName: "a.png", ContentType: "image/png", Content: strings.NewReader("png")}})

	// The row stays; the caller gets the entity plus the asset error and
	// retries with an update. No rollback.
	require.ErrorIs(t, err, ErrAssetIncomplete)
	require.NotNil(t, entity)
	require.Equal(t, uint64(42), entity.EntityID)
}

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	f := newServiceFixture(t)

	stored := &dbmysql.ContentEntity{
		EntityID:    42,
		Category:    common.CategoryActivity,
		Title:       "Career Fair 2024",
		Description: "Annual fair",
		Location:    "Main Hall",
		Featured:    true,
		Active:      true,
	}
	f.entities.EXPECT().GetEntityByID(gomock.Any(), uint64(42)).Return(stored, nil)

	var saved dbmysql.ContentEntity
	f.entities.EXPECT().UpdateEntity(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e *dbmysql.ContentEntity) error {
			saved = *e
			return nil
		})
	f.assets.EXPECT().ListByEntity(gomock.Any(), uint64(42)).Return(nil, nil)

	_, err := f.service.Update(context.Background(), 42, UpdateEntityCommand{
		Title:    strPtr("Career Fair 2025"),
		Featured: boolPtr(false),
	}, nil, nil)
	require.NoError(t, err)

	require.Equal(t, "Career Fair 2025", saved.Title)
	require.False(t, saved.Featured)
	// Untouched fields keep their stored values.
	require.Equal(t, "Annual fair", saved.Description)
	require.Equal(t, "Main Hall", saved.Location)
	require.True(t, saved.Active)
}

func TestUpdateMissingEntityReportsNotFound(t *testing.T) {
	f := newServiceFixture(t)

	f.entities.EXPECT().GetEntityByID(gomock.Any(), uint64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := f.service.Update(context.Background(), 99, UpdateEntityCommand{Title: strPtr("x")}, nil, nil)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCascadesAssetsThenEntity(t *testing.T) {
	f := newServiceFixture(t)

	stored := &dbmysql.ContentEntity{
		EntityID: 42,
		Category: common.CategoryActivity,
		Title:    "Career Fair 2024",
		Assets: []dbmysql.MediaAsset{
			{AssetID: 1, FileID: "f1"},
			{AssetID: 2, FileID: "f2"},
		},
	}
	f.entities.EXPECT().GetEntityByID(gomock.Any(), uint64(42)).Return(stored, nil)

	gomock.InOrder(
		f.assets.EXPECT().GetAssetByID(gomock.Any(), uint64(1)).Return(&stored.Assets[0], nil),
		f.store.EXPECT().Delete(gomock.Any(), "f1").Return(nil),
		f.assets.EXPECT().DeleteAsset(gomock.Any(), uint64(1)).Return(nil),
		f.assets.EXPECT().GetAssetByID(gomock.Any(), uint64(2)).Return(&stored.Assets[1], nil),
		f.store.EXPECT().Delete(gomock.Any(), "f2").Return(nil),
		f.assets.EXPECT().DeleteAsset(gomock.Any(), uint64(2)).Return(nil),
		f.entities.EXPECT().DeleteEntity(gomock.Any(), uint64(42)).Return(nil),
	)

	require.NoError(t, f.service.Delete(context.Background(), 42))
}

func TestDeleteTwiceReportsNotFound(t *testing.T) {
	f := newServiceFixture(t)

	f.entities.EXPECT().GetEntityByID(gomock.Any(), uint64(42)).Return(nil, gorm.ErrRecordNotFound)

	err := f.service.Delete(context.Background(), 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestListPageComputesTotals(t *testing.T) {
	f := newServiceFixture(t)

	items := []dbmysql.ContentEntity{{EntityID: 1}, {EntityID: 2}}
	f.entities.EXPECT().ListPage(gomock.Any(), common.CategoryActivity, 2, 2).Return(items, int64(5), nil)

	result, err := f.service.ListPage(context.Background(), common.CategoryActivity, 2, 2)
	require.NoError(t, err)
	require.Equal(t, int64(5), result.TotalCount)
	require.Equal(t, 3, result.TotalPages)
	require.Equal(t, 2, result.Page)
	require.Len(t, result.Items, 2)
}
