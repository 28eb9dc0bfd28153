package user

import (
	"fmt"
	"time"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/go-redis/redis/v8"
)

// TokenTTL is the lifetime of issued access tokens.
const TokenTTL = 24 * time.Hour

// DefaultUserService implements UserService over the user repository, with an
// optional Redis session cache backing token revocation.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Sessions *redis.Client
}

func (s *DefaultUserService) UpsertUser(u models.User) (string, error) {
	if u.Email == "" {
		return "", fmt.Errorf("user email is required")
	}
	if err := s.Repo.Upsert(&u); err != nil {
		return "", err
	}

	token, err := utils.GenerateToken(u.Email, TokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to issue access token: %w", err)
	}
	if s.Sessions != nil {
		if err := utils.RegisterAuthSession(s.Sessions, utils.HashToken(token), TokenTTL); err != nil {
			return "", fmt.Errorf("failed to register auth session: %w", err)
		}
	}
	return token, nil
}

func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}

// IsAdmin is the role gate consulted before privileged operations. It is a
// pure comparison on the typed role tag; an absent record is simply not an
// admin.
func (s *DefaultUserService) IsAdmin(email string) (bool, error) {
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return false, err
	}
	if u == nil {
		return false, nil
	}
	return u.Role == models.RoleAdmin, nil
}

func (s *DefaultUserService) PromoteToAdmin(requester, target string) error {
	return s.setRole(requester, target, models.RoleAdmin)
}

func (s *DefaultUserService) DemoteToPatient(requester, target string) error {
	return s.setRole(requester, target, models.RolePatient)
}

func (s *DefaultUserService) setRole(requester, target string, role models.Role) error {
	admin, err := s.IsAdmin(requester)
	if err != nil {
		return err
	}
	if !admin {
		return ErrForbidden
	}

	matched, err := s.Repo.SetRole(target, role)
	if err != nil {
		return err
	}
	if !matched {
		return ErrNotFound
	}
	return nil
}

func (s *DefaultUserService) RevokeToken(tokenString string) error {
	if s.Sessions == nil {
		return nil
	}
	return utils.RevokeAuthSession(s.Sessions, utils.HashToken(tokenString))
}
