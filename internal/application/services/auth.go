package services

import (
	"golang.org/x/crypto/bcrypt"

	"task-manager-api/internal/application/ports"
	"task-manager-api/internal/domain/user"
	"task-manager-api/internal/infrastructure/jwt"
)

type AuthService struct {
	jwtService *jwt.Service
}

func NewAuthService(jwtService *jwt.Service) ports.Auth {
	return &AuthService{
		jwtService: jwtService,
	}
}

func (as *AuthService) SessionToken(u *user.User) (string, error) {
	token, err := as.jwtService.Issue(u.ID.Hex(), u.Email, jwt.SessionTTL)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}

// InvalidationToken is only handed out on rejection paths; if signing
// fails the client simply receives no token, which is equivalent.
func (as *AuthService) InvalidationToken(id string) string {
	token, _ := as.jwtService.Issue(id, "", jwt.InvalidationTTL)
	return token
}

func (as *AuthService) CheckPassword(u *user.User, requestPassword string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(requestPassword)); err != nil {
		return ErrPasswordIncorrect
	}

	return nil
}
