package config

import (
	"testblog/models"
	"testblog/utils"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedData creates the fixed role set and the three bootstrap accounts on an
// empty database. Subsequent starts are no-ops.
func SeedData(db *gorm.DB, logger *zap.Logger) error {
	var roleCount int64
	if err := db.Model(&models.Role{}).Count(&roleCount).Error; err != nil {
		return err
	}
	if roleCount == 0 {
		roles := []models.Role{
			{Name: models.RoleAdmin, Description: "Full system access"},
			{Name: models.RoleModerator, Description: "Can moderate content"},
			{Name: models.RoleUser, Description: "Regular user"},
		}
		if err := db.Create(&roles).Error; err != nil {
			return err
		}
		logger.Info("seeded roles", zap.Int("count", len(roles)))
	}

	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return nil
	}

	seedAccounts := []struct {
		username string
		email    string
		password string
		role     models.RoleName
	}{
		{"admin", "admin@blog.com", "admin", models.RoleAdmin},
		{"user", "user@example.com", "user123", models.RoleUser},
		{"moderator", "moderator@blog.com", "moderator123", models.RoleModerator},
	}

	for _, account := range seedAccounts {
		user := models.User{
			Username:         account.username,
			Email:            account.email,
			PasswordHash:     utils.HashPassword(account.password),
			RegistrationDate: time.Now(),
			IsActive:         true,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}

		var role models.Role
		if err := db.Where("name = ?", string(account.role)).First(&role).Error; err != nil {
			return err
		}
		join := models.UserRole{UserID: user.ID, RoleID: role.ID}
		if err := db.Create(&join).Error; err != nil {
			return err
		}
		logger.Info("seeded account",
			zap.String("username", account.username),
			zap.String("role", account.role.String()))
	}
	return nil
}
