package blog

import (
	"context"

	"frontsession/internal/models"

	"gorm.io/gorm"
)

type Users struct {
	db *gorm.DB
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (u *Users) ByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := u.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ByLogin finds a user by email or username
func (u *Users) ByLogin(ctx context.Context, login string) (*models.User, error) {
	var user models.User
	err := u.db.WithContext(ctx).Where("email = ? OR username = ?", login, login).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
