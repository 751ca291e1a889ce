package services

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"testblog/errs"
	"testblog/models"
	"testblog/repositories"
	"testblog/utils"

	"go.uber.org/zap"
)

// protectedUsername can never be deleted or deactivated, not even by another
// administrator.
const protectedUsername = "admin"

type UserService interface {
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	CreateUser(user *models.User, password string) bool
	UpdateUser(user *models.User) bool
	DeleteUser(id uint) bool
	SetUserActive(id uint, active bool) bool
	Authenticate(username, password string) bool
	ChangePassword(userID uint, oldPassword, newPassword string) bool
	AssignRole(userID uint, role models.RoleName) bool
	RevokeRole(userID uint, role models.RoleName) bool
	ListRoles(userID uint) ([]models.Role, error)
	HasRole(userID uint, role models.RoleName) bool
}

type userService struct {
	userRepo repositories.UserRepository
	roleRepo repositories.RoleRepository
	log      *zap.Logger
}

func NewUserService(userRepo repositories.UserRepository, roleRepo repositories.RoleRepository, log *zap.Logger) UserService {
	return &userService{userRepo: userRepo, roleRepo: roleRepo, log: log}
}

func (s *userService) GetUserByID(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

func (s *userService) GetUserByUsername(username string) (*models.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, repositories.ErrUserNotFound
	}
	return s.userRepo.GetByUsername(username)
}

func (s *userService) GetUserByEmail(email string) (*models.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, repositories.ErrUserNotFound
	}
	return s.userRepo.GetByEmail(email)
}

func (s *userService) GetAllUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

// CreateUser validates, hashes the password, stamps defaults and grants the
// default User role. All failures come back as false; nothing here panics or
// leaks a datastore error to the caller.
func (s *userService) CreateUser(user *models.User, password string) bool {
	if user == nil {
		return false
	}
	if strings.TrimSpace(user.Username) == "" ||
		strings.TrimSpace(user.Email) == "" ||
		strings.TrimSpace(password) == "" {
		return false
	}
	if _, err := mail.ParseAddress(user.Email); err != nil {
		return false
	}

	if _, err := s.userRepo.GetByUsername(user.Username); err == nil {
		return false
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		s.log.Error("user lookup failed", zap.Error(err), zap.Bool("retriable", errs.Retriable(err)))
		return false
	}
	if _, err := s.userRepo.GetByEmail(user.Email); err == nil {
		return false
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		s.log.Error("user lookup failed", zap.Error(err), zap.Bool("retriable", errs.Retriable(err)))
		return false
	}

	// New credentials get salted bcrypt hashes; stored legacy SHA-256
	// hashes keep verifying through utils.VerifyPassword.
	hash, err := utils.BcryptPassword(password)
	if err != nil {
		s.log.Error("password hash failed", zap.Error(err))
		return false
	}
	user.PasswordHash = hash
	user.RegistrationDate = time.Now()
	user.IsActive = true

	if err := s.userRepo.Create(user); err != nil {
		// Uniqueness races past the pre-checks land here as a constraint
		// violation.
		s.log.Error("create user failed",
			zap.String("username", user.Username),
			zap.Error(err),
			zap.Bool("retriable", errs.Retriable(err)),
			zap.Bool("constraint", errs.ConstraintViolation(err)))
		return false
	}

	if !s.AssignRole(user.ID, models.RoleUser) {
		s.log.Warn("default role not assigned", zap.Uint("user_id", user.ID))
	}
	return true
}

func (s *userService) UpdateUser(user *models.User) bool {
	if err := s.userRepo.Update(user); err != nil {
		s.log.Error("update user failed", zap.Uint("user_id", user.ID), zap.Error(err))
		return false
	}
	return true
}

func (s *userService) DeleteUser(id uint) bool {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return false
	}
	if strings.EqualFold(user.Username, protectedUsername) {
		return false
	}
	if err := s.userRepo.Delete(id); err != nil {
		s.log.Error("delete user failed", zap.Uint("user_id", id), zap.Error(err))
		return false
	}
	s.log.Info("user deleted", zap.Uint("user_id", id), zap.String("username", user.Username))
	return true
}

func (s *userService) SetUserActive(id uint, active bool) bool {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return false
	}
	if !active && strings.EqualFold(user.Username, protectedUsername) {
		return false
	}
	user.IsActive = active
	return s.UpdateUser(user)
}

// Authenticate resolves the account case-insensitively and fails closed on a
// missing account, a deactivated account, or a hash mismatch.
func (s *userService) Authenticate(username, password string) bool {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return false
	}
	if !user.IsActive {
		return false
	}
	return utils.VerifyPassword(password, user.PasswordHash)
}

func (s *userService) ChangePassword(userID uint, oldPassword, newPassword string) bool {
	if strings.TrimSpace(oldPassword) == "" || strings.TrimSpace(newPassword) == "" {
		return false
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return false
	}
	if !utils.VerifyPassword(oldPassword, user.PasswordHash) {
		return false
	}
	// Changing the password also upgrades any legacy hash to bcrypt.
	hash, err := utils.BcryptPassword(newPassword)
	if err != nil {
		s.log.Error("password hash failed", zap.Uint("user_id", userID), zap.Error(err))
		return false
	}
	user.PasswordHash = hash
	return s.UpdateUser(user)
}

// AssignRole inserts the pairing once. A second call for the same pair
// reports false and leaves exactly one join row behind.
func (s *userService) AssignRole(userID uint, role models.RoleName) bool {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		return false
	}
	roleRow, err := s.roleRepo.GetByName(role)
	if err != nil {
		return false
	}

	exists, err := s.roleRepo.HasUserRole(userID, roleRow.ID)
	if err != nil || exists {
		return false
	}

	join := models.UserRole{UserID: userID, RoleID: roleRow.ID}
	if err := s.roleRepo.AddUserRole(&join); err != nil {
		s.log.Error("assign role failed",
			zap.Uint("user_id", userID),
			zap.String("role", role.String()),
			zap.Error(err))
		return false
	}
	return true
}

func (s *userService) RevokeRole(userID uint, role models.RoleName) bool {
	roleRow, err := s.roleRepo.GetByName(role)
	if err != nil {
		return false
	}
	removed, err := s.roleRepo.RemoveUserRole(userID, roleRow.ID)
	if err != nil {
		s.log.Error("revoke role failed",
			zap.Uint("user_id", userID),
			zap.String("role", role.String()),
			zap.Error(err))
		return false
	}
	return removed
}

func (s *userService) ListRoles(userID uint) ([]models.Role, error) {
	return s.roleRepo.GetRolesForUser(userID)
}

func (s *userService) HasRole(userID uint, role models.RoleName) bool {
	roles, err := s.ListRoles(userID)
	if err != nil {
		return false
	}
	for _, r := range roles {
		if r.Name == role {
			return true
		}
	}
	return false
}
