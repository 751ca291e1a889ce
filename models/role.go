package models

// RoleName is the closed set of roles the platform knows about. Handlers and
// services pass RoleName values around; conversion to plain strings happens
// only when claims are serialized into a session token.
type RoleName string

const (
	RoleAdmin     RoleName = "Admin"
	RoleModerator RoleName = "Moderator"
	RoleUser      RoleName = "User"
)

// ParseRoleName maps an external string onto the closed role set. Unknown
// names are rejected so a typo can never grant or deny access silently.
func ParseRoleName(s string) (RoleName, bool) {
	switch RoleName(s) {
	case RoleAdmin, RoleModerator, RoleUser:
		return RoleName(s), true
	}
	return "", false
}

func (r RoleName) String() string { return string(r) }

type Role struct {
	ID          uint     `json:"id" gorm:"primarykey"`
	Name        RoleName `json:"name" gorm:"uniqueIndex;size:50;not null"`
	Description string   `json:"description"`
}

// UserRole is the join row between users and roles. The composite key keeps
// a pairing unique; assignment is idempotent at the service layer.
type UserRole struct {
	UserID uint `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	RoleID uint `json:"role_id" gorm:"primaryKey;autoIncrement:false"`
}
