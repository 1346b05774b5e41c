package admin

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"clubhub/internal/common"
	"clubhub/internal/dbmysql"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService issues the admin session tokens the /api/admin middleware
// checks. Everything behind that middleware assumes this already ran.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*dbmysql.AdminUser, string, error)
}

type authService struct {
	admins dbmysql.AdminRepository
}

func NewAuthService(admins dbmysql.AdminRepository) AuthService {
	return &authService{admins: admins}
}

func (s *authService) Login(ctx context.Context, username, password string) (*dbmysql.AdminUser, string, error) {
	if username == "" || password == "" {
		return nil, "", ErrInvalidCredentials
	}

	admin, err := s.admins.GetAdminByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := common.CheckPassword(password, admin.PasswordHash); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := common.GenerateToken(admin.AdminID, admin.Username)
	if err != nil {
		return nil, "", err
	}
	return admin, token, nil
}
