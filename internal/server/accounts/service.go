// Package accounts implements registration, login, and account lookup. It
// owns the Account record and orchestrates the password hasher and token
// issuer against the account store.
package accounts

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mkarpenko/tasktrack/internal/common"
	"github.com/mkarpenko/tasktrack/internal/server/auth"
	"github.com/mkarpenko/tasktrack/internal/server/config"
)

// MinPasswordLength is the registration minimum.
const MinPasswordLength = 6

type Service struct {
	repo                  Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// NormalizeEmail is the canonical form used as the unique account key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates an account for email with the hashed password and issues
// a token for it. Returns common.ErrorValidation for missing fields or a
// short password, common.ErrorAlreadyExists when the normalized email is
// taken.
func (s *Service) Register(ctx context.Context, email, password string) (*Account, string, error) {

	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, "", common.ErrorValidation
	}
	if len(password) < MinPasswordLength {
		return nil, "", common.ErrorValidation
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", common.ErrorValidation
	}

	account, err := s.repo.Create(ctx, &Account{Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, "", common.ErrorAlreadyExists
		}
		return nil, "", common.ErrorInternal
	}

	token, err := s.issueToken(account)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return account, token, nil
}

// Login verifies the credentials and issues a fresh token. An unknown email
// and a wrong password produce the identical common.ErrorUnauthorized, so a
// caller cannot tell which factor failed.
func (s *Service) Login(ctx context.Context, email, password string) (*Account, string, error) {

	if email == "" || password == "" {
		return nil, "", common.ErrorValidation
	}

	account, err := s.repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, account.PasswordHash) {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := s.issueToken(account)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return account, token, nil
}

// Current resolves the authenticated principal's account. An id whose
// account no longer exists is reported as common.ErrorUnauthorized: the
// identity behind the token has been revoked.
func (s *Service) Current(ctx context.Context, accountID string) (*Account, error) {

	account, err := s.repo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	return account, nil
}

func (s *Service) issueToken(account *Account) (string, error) {
	return auth.GenerateToken(account.ID, s.jwtSecret, s.tokenValidityDuration)
}
