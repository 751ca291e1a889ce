package repositories

import (
	"errors"

	"testblog/errs"
	"testblog/models"

	"gorm.io/gorm"
)

var ErrRoleNotFound = errors.New("role not found")

type RoleRepository interface {
	Create(role *models.Role) error
	GetByID(id uint) (*models.Role, error)
	GetByName(name models.RoleName) (*models.Role, error)
	GetAll() ([]models.Role, error)
	GetRolesForUser(userID uint) ([]models.Role, error)
	HasUserRole(userID, roleID uint) (bool, error)
	AddUserRole(userRole *models.UserRole) error
	RemoveUserRole(userID, roleID uint) (bool, error)
}

type roleRepository struct {
	repository[models.Role]
}

func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{repository[models.Role]{db: db}}
}

func (r *roleRepository) GetByID(id uint) (*models.Role, error) {
	role, err := r.getByID(id)
	if errs.NotFound(err) {
		return nil, ErrRoleNotFound
	}
	return role, err
}

func (r *roleRepository) GetByName(name models.RoleName) (*models.Role, error) {
	var role models.Role
	err := r.db.Where("name = ?", string(name)).First(&role).Error
	if errs.NotFound(err) {
		return nil, ErrRoleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// GetRolesForUser resolves the join rows first and then each referenced
// role, skipping danglers instead of failing the whole lookup.
func (r *roleRepository) GetRolesForUser(userID uint) ([]models.Role, error) {
	var joins []models.UserRole
	if err := r.db.Where("user_id = ?", userID).Find(&joins).Error; err != nil {
		return nil, err
	}

	roles := make([]models.Role, 0, len(joins))
	for _, join := range joins {
		var role models.Role
		err := r.db.First(&role, join.RoleID).Error
		if errs.NotFound(err) {
			continue
		}
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}

func (r *roleRepository) HasUserRole(userID, roleID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.UserRole{}).
		Where("user_id = ? AND role_id = ?", userID, roleID).
		Count(&count).Error
	return count > 0, err
}

func (r *roleRepository) AddUserRole(userRole *models.UserRole) error {
	return r.db.Create(userRole).Error
}

func (r *roleRepository) RemoveUserRole(userID, roleID uint) (bool, error) {
	result := r.db.Where("user_id = ? AND role_id = ?", userID, roleID).
		Delete(&models.UserRole{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
