package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"userbase/internal/auth"
	"userbase/internal/domain"
	"userbase/internal/httperr"
	"userbase/internal/repository"
	"userbase/internal/schema"
)

// UserService describes account lifecycle operations. Payloads arrive
// already validated by the schema package.
type UserService interface {
	Register(ctx context.Context, req schema.RegisterRequest) (*domain.User, error)
	Authenticate(ctx context.Context, req schema.LoginRequest) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

// Register creates a new account. The username is derived from the email
// local-part and must independently satisfy the username shape rules.
func (s *userService) Register(ctx context.Context, req schema.RegisterRequest) (*domain.User, error) {
	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.Conflict("Email already in use")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	username, err := schema.Username(localPart(req.Email))
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:             uuid.NewString(),
		Email:          req.Email,
		Username:       username,
		Name:           req.Name,
		HashedPassword: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// a concurrent signup with the same email loses the race at the
		// store's unique constraint; answer as the pre-check would have
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, httperr.Conflict("Email already in use")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *userService) Authenticate(ctx context.Context, req schema.LoginRequest) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, httperr.Unauthorized("This email does not exist")
	}
	if user.HashedPassword == "" {
		return nil, httperr.Unauthorized("This user does not have a password")
	}

	if !auth.ComparePassword(req.Password, user.HashedPassword) {
		return nil, httperr.Unauthorized("Invalid email or password")
	}

	user.HashedPassword = ""
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.GetAll(ctx)
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, httperr.NotFound("User not found")
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	return s.users.DeleteByID(ctx, id)
}

func localPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}
