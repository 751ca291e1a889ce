package services

import (
	"errors"
	"time"

	"testblog/config"
	"testblog/models"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrRegistrationFailed = errors.New("username or email already taken")
)

type AuthService interface {
	Register(req models.RegisterRequest) (*models.AuthResponse, error)
	Login(req models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(id uint) (*models.User, error)
}

type authService struct {
	users UserService
	log   *zap.Logger
}

func NewAuthService(users UserService, log *zap.Logger) AuthService {
	return &authService{users: users, log: log}
}

func (s *authService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
	}
	if !s.users.CreateUser(user, req.Password) {
		return nil, ErrRegistrationFailed
	}
	return s.issueFor(user)
}

// Login verifies credentials and stamps the last-login date. A deactivated
// account never gets a token, correct password or not.
func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	if !s.users.Authenticate(req.Username, req.Password) {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetUserByUsername(req.Username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLoginDate = &now
	if !s.users.UpdateUser(user) {
		s.log.Warn("last login date not updated", zap.Uint("user_id", user.ID))
	}

	return s.issueFor(user)
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	return s.users.GetUserByID(id)
}

func (s *authService) issueFor(user *models.User) (*models.AuthResponse, error) {
	roles, err := s.users.ListRoles(user.ID)
	if err != nil {
		return nil, err
	}
	user.Roles = roles

	token, err := s.generateToken(user, roles)
	if err != nil {
		return nil, err
	}
	return &models.AuthResponse{Token: token, User: *user}, nil
}

// generateToken serializes the session principal: stable user id, username,
// email and one entry per held role. This is the only place role names leave
// the closed enumeration and become plain strings.
func (s *authService) generateToken(user *models.User, roles []models.Role) (string, error) {
	roleNames := make([]string, 0, len(roles))
	for _, role := range roles {
		if role.Name != "" {
			roleNames = append(roleNames, role.Name.String())
		}
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"email":    user.Email,
		"roles":    roleNames,
		"exp":      now.Add(config.JWTExpiration).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}
