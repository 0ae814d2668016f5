package service

import (
	"context"

	"github.com/partsledger/partsledger-api/internal/domain/entity"
	"github.com/partsledger/partsledger-api/internal/store"
	"github.com/partsledger/partsledger-api/pkg/apperror"
	"github.com/partsledger/partsledger-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService issues session tokens against the two stored passwords: the
// admin password grants the admin role, the login password grants staff.
type AuthService struct {
	store      *store.Store
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(st *store.Store, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{store: st, jwtManager: jwtManager}
}

// LoginResult carries the issued session token and its role
type LoginResult struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// Login validates the given password and issues a session token. The admin
// password is tried first so the single shared form grants the highest
// matching role.
func (s *AuthService) Login(ctx context.Context, password string) (*LoginResult, error) {
	var loginHash, adminHash string
	s.store.View(func(st *entity.AppState) {
		loginHash = st.Settings.LoginPassword
		adminHash = st.Settings.AdminPassword
	})

	role := ""
	if bcrypt.CompareHashAndPassword([]byte(adminHash), []byte(password)) == nil {
		role = utils.RoleAdmin
	} else if bcrypt.CompareHashAndPassword([]byte(loginHash), []byte(password)) == nil {
		role = utils.RoleStaff
	}
	if role == "" {
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateToken(role)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, Role: role}, nil
}
