package models

import "time"

type User struct {
	ID               uint       `json:"id" gorm:"primarykey"`
	Username         string     `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Email            string     `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash     string     `json:"-" gorm:"not null"`
	RegistrationDate time.Time  `json:"registration_date"`
	LastLoginDate    *time.Time `json:"last_login_date"`
	IsActive         bool       `json:"is_active"`

	// Roles are resolved through the user_roles join table, never stored
	// inline. Populated on demand by the service layer.
	Roles []Role `json:"roles,omitempty" gorm:"-"`
}
