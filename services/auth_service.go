package services

import (
	"context"
	"strings"

	"cancha.link/configs/configslog"
	"cancha.link/models"
	"cancha.link/repositories"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthServiceError son los errores tipificados de autenticación.
type AuthServiceError string

func (e AuthServiceError) Error() string { return string(e) }

const (
	ErrInvalidCredentials AuthServiceError = "correo o contraseña incorrectos"
	ErrAuthInternal       AuthServiceError = "no se pudo iniciar sesión. Por favor intenta de nuevo"
)

// IAuthService autentica a los usuarios del dashboard.
type IAuthService interface {
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

// AuthService implementa IAuthService.
type AuthService struct {
	userRepo repositories.IUserRepository
}

func NewAuthService() IAuthService {
	return &AuthService{userRepo: repositories.NewUserRepository()}
}

// Authenticate verifica las credenciales contra el hash almacenado. El
// mensaje de error no revela si el correo existe.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, ErrInvalidCredentials
		}
		configslog.Log.Error("AuthService.Authenticate: error de BD", zap.Error(err))
		return nil, ErrAuthInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	configslog.SLog.Infof("Sesión iniciada: %s (ID: %d)", user.Email, user.ID)
	return user, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if err == repositories.ErrNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}

var _ IAuthService = (*AuthService)(nil)
