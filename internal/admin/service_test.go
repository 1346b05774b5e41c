package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"clubhub/internal/common"
	"clubhub/internal/dbmysql"
)

type fakeAdminRepo struct {
	admins map[string]*dbmysql.AdminUser
}

func (f *fakeAdminRepo) CreateAdmin(ctx context.Context, admin *dbmysql.AdminUser) error {
	f.admins[admin.Username] = admin
	return nil
}

func (f *fakeAdminRepo) GetAdminByUsername(ctx context.Context, username string) (*dbmysql.AdminUser, error) {
	admin, ok := f.admins[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return admin, nil
}

func newAuthFixture(t *testing.T) AuthService {
	hash, err := common.HashPassword("s3cret-pass")
	require.NoError(t, err)
	return NewAuthService(&fakeAdminRepo{admins: map[string]*dbmysql.AdminUser{
		"root": {AdminID: 1, Username: "root", PasswordHash: hash},
	}})
}

func TestLoginIssuesToken(t *testing.T) {
	service := newAuthFixture(t)

	admin, token, err := service.Login(context.Background(), "root", "s3cret-pass")
	require.NoError(t, err)
	require.Equal(t, uint64(1), admin.AdminID)

	claims, err := common.ValidToken(token)
	require.NoError(t, err)
	require.Equal(t, uint64(1), claims.AdminID)
	require.Equal(t, "root", claims.Username)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	service := newAuthFixture(t)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "root", "guess"},
		{"unknown user", "ghost", "s3cret-pass"},
		{"empty password", "root", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := service.Login(context.Background(), tt.username, tt.password)
			require.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}
