package profile

import (
	"context"
	"encoding/json"
	"errors"

	"fitclub/internal/auth"
	"fitclub/internal/kv"

	"github.com/google/uuid"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

const accountKeyPrefix = "users:"

// Service owns member accounts in the same key-value store the user data
// store persists to, one record per email.
type Service struct {
	kv        kv.Store
	jwtSecret string
}

func NewService(store kv.Store, jwtSecret string) *Service {
	return &Service{
		kv:        store,
		jwtSecret: jwtSecret,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*UserProfile, string, string, error) {
	key := accountKeyPrefix + req.Email

	if _, err := s.kv.Get(ctx, key); err == nil {
		return nil, "", "", ErrEmailExists
	} else if !errors.Is(err, kv.ErrNotFound) {
		return nil, "", "", err
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", "", err
	}

	acct := account{
		UserProfile: UserProfile{
			ID:             uuid.NewString(),
			Name:           req.Name,
			Email:          req.Email,
			MembershipType: "Basic",
		},
		PasswordHash: passwordHash,
	}

	data, err := json.Marshal(acct)
	if err != nil {
		return nil, "", "", err
	}
	if err := s.kv.Set(ctx, key, data); err != nil {
		return nil, "", "", err
	}

	accessToken, refreshToken, err := auth.GenerateTokens(acct.ID, acct.Email, s.jwtSecret)
	if err != nil {
		return nil, "", "", err
	}

	return &acct.UserProfile, accessToken, refreshToken, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*UserProfile, string, string, error) {
	acct, err := s.findByEmail(ctx, req.Email)
	if err != nil {
		return nil, "", "", ErrInvalidCredentials
	}

	if !auth.CheckPassword(acct.PasswordHash, req.Password) {
		return nil, "", "", ErrInvalidCredentials
	}

	accessToken, refreshToken, err := auth.GenerateTokens(acct.ID, acct.Email, s.jwtSecret)
	if err != nil {
		return nil, "", "", err
	}

	return &acct.UserProfile, accessToken, refreshToken, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*UserProfile, error) {
	acct, err := s.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return &acct.UserProfile, nil
}

func (s *Service) RefreshToken(ctx context.Context, refreshToken string) (string, *UserProfile, error) {
	newAccessToken, claims, err := auth.RefreshAccessToken(refreshToken, s.jwtSecret)
	if err != nil {
		return "", nil, err
	}

	acct, err := s.findByEmail(ctx, claims.Email)
	if err != nil {
		return "", nil, ErrUserNotFound
	}

	return newAccessToken, &acct.UserProfile, nil
}

func (s *Service) findByEmail(ctx context.Context, email string) (*account, error) {
	data, err := s.kv.Get(ctx, accountKeyPrefix+email)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var acct account
	if err := json.Unmarshal(data, &acct); err != nil {
		return nil, err
	}

	return &acct, nil
}
