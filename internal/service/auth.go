package service

import (
	"context"
	"errors"
	"strings"

	"github.com/wandering/emailpassword-go/internal/crypto"
	"github.com/wandering/emailpassword-go/internal/email"
	"github.com/wandering/emailpassword-go/internal/model"
	"github.com/wandering/emailpassword-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailRequired      = errors.New("email is required")
	ErrInvalidEmail       = errors.New("email is not a valid address")
	ErrEmailTaken         = errors.New("email already taken")

	ErrInvalidProvisionLength = errors.New("provision password length must be at least 1")
)

// UserStore persists accounts.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}

// PasswordHasher turns passwords into stored hashes and checks them.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, encodedHash string) (bool, error)
}

// AuthService handles account provisioning and authentication.
type AuthService struct {
	users           UserStore
	hasher          PasswordHasher
	tokens          *crypto.TokenIssuer
	gen             *crypto.Generator
	provisionLength int
}

// NewAuthService creates a new AuthService. Registrations without a
// password get a generated one of provisionLength characters, which must
// be at least 1.
func NewAuthService(users UserStore, hasher PasswordHasher, tokens *crypto.TokenIssuer, gen *crypto.Generator, provisionLength int) (*AuthService, error) {
	if provisionLength < 1 {
		return nil, ErrInvalidProvisionLength
	}
	if gen == nil {
		gen = crypto.NewGenerator(nil)
	}
	return &AuthService{
		users:           users,
		hasher:          hasher,
		tokens:          tokens,
		gen:             gen,
		provisionLength: provisionLength,
	}, nil
}

// Register creates a new account for a valid address and returns an auth
// token. The address is stored normalized.
func (s *AuthService) Register(ctx context.Context, req model.CreateUserRequest) (model.AuthResponse, error) {
	if strings.TrimSpace(req.Email) == "" {
		return model.AuthResponse{}, ErrEmailRequired
	}
	if !email.Valid(req.Email) {
		return model.AuthResponse{}, ErrInvalidEmail
	}
	addr, _ := email.Normalize(req.Email)

	password := req.Password
	var generated string
	if password == "" {
		opts := crypto.DefaultOptions()
		opts.Length = s.provisionLength
		generated = s.gen.Generate(opts)
		password = generated
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{
		Email:    addr,
		AuthHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, err
	}

	resp, err := s.authResponse(user)
	if err != nil {
		return model.AuthResponse{}, err
	}
	resp.GeneratedPassword = generated
	return resp, nil
}

// Login authenticates a user and returns an auth token.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	addr, ok := email.Normalize(req.Email)
	if !ok || req.Password == "" {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, addr)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	match, err := s.hasher.Verify(req.Password, user.AuthHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	return s.authResponse(user)
}

// GetUser retrieves a user by ID and returns safe user data.
func (s *AuthService) GetUser(ctx context.Context, userID int64) (model.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return model.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *AuthService) authResponse(user *model.User) (model.AuthResponse, error) {
	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return model.AuthResponse{}, err
	}
	return model.AuthResponse{
		Token: token,
		User:  toUserResponse(user),
	}, nil
}

func toUserResponse(user *model.User) model.UserResponse {
	return model.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
