package dbmysql

import (
	"context"

	"gorm.io/gorm"
)

type AdminRepository interface {
	CreateAdmin(ctx context.Context, admin *AdminUser) error
	GetAdminByUsername(ctx context.Context, username string) (*AdminUser, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) CreateAdmin(ctx context.Context, admin *AdminUser) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

func (r *adminRepository) GetAdminByUsername(ctx context.Context, username string) (*AdminUser, error) {
	var admin AdminUser
	err := r.db.WithContext(ctx).First(&admin, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}
