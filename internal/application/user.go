package application

import (
	"strings"
	"time"

	"github.com/linskybing/civictrack/internal/api/middleware"
	"github.com/linskybing/civictrack/internal/domain/user"
	"github.com/linskybing/civictrack/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	Repos    *repository.Repos
	tokenTTL time.Duration
}

func NewUserService(repos *repository.Repos, tokenTTL time.Duration) *UserService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &UserService{
		Repos:    repos,
		tokenTTL: tokenTTL,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup registers a citizen account and returns it with a fresh token.
func (s *UserService) Signup(input user.SignupInput) (user.User, string, error) {
	if len(input.Password) < 6 {
		return user.User{}, "", ErrPasswordTooShort
	}
	email := normalizeEmail(input.Email)

	_, err := s.Repos.User.GetUserByEmail(email)
	if err != nil && !repository.IsNotFound(err) {
		return user.User{}, "", storageError("get user", err)
	}
	if err == nil {
		return user.User{}, "", ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, "", ErrPasswordHashFailure
	}

	usr := user.User{
		Name:           strings.TrimSpace(input.Name),
		Email:          email,
		HashedPassword: string(hashed),
		Role:           user.RoleCitizen,
		Ward:           input.Ward,
		IsActive:       true,
	}
	if err := s.Repos.User.CreateUser(&usr); err != nil {
		if repository.IsUniqueViolation(err) {
			return user.User{}, "", ErrEmailTaken
		}
		return user.User{}, "", storageError("create user", err)
	}

	token, err := middleware.GenerateToken(usr.ID, usr.Role, s.tokenTTL)
	if err != nil {
		return user.User{}, "", err
	}
	return usr, token, nil
}

func (s *UserService) Login(email, password string) (user.User, string, error) {
	usr, err := s.Repos.User.GetUserByEmail(normalizeEmail(email))
	if err != nil {
		if repository.IsNotFound(err) {
			return user.User{}, "", ErrInvalidCredentials
		}
		return user.User{}, "", storageError("get user", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.HashedPassword), []byte(password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}
	if !usr.IsActive {
		return user.User{}, "", ErrInactiveUser
	}

	token, err := middleware.GenerateToken(usr.ID, usr.Role, s.tokenTTL)
	if err != nil {
		return user.User{}, "", err
	}
	return usr, token, nil
}

func (s *UserService) GetUser(id uint) (user.User, error) {
	usr, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		if repository.IsNotFound(err) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, storageError("get user", err)
	}
	return usr, nil
}

// UpdateRole changes a user's role. Tokens issued earlier keep the old role
// until they expire.
func (s *UserService) UpdateRole(id uint, role user.Role) (user.User, error) {
	if !role.Valid() {
		return user.User{}, ErrInvalidRole
	}
	if err := s.Repos.User.UpdateRole(id, role); err != nil {
		if repository.IsNotFound(err) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, storageError("update role", err)
	}
	return s.GetUser(id)
}
