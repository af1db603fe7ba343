package users

import (
	"context"
	"errors"
	"regexp"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/matchpredictor/internal/common"
	"github.com/dmitrijs2005/matchpredictor/internal/server/auth"
	"github.com/dmitrijs2005/matchpredictor/internal/server/models"
)

const minPasswordLength = 6

// emailRegexp accepts local@domain.tld shapes: non-whitespace local part,
// "@", non-whitespace domain containing a dot.
var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthResult is returned to the caller on successful signup or login.
type AuthResult struct {
	UserID string
	Token  string
}

// Service orchestrates signup and login: input validation, the user store,
// password hashing, and token issuance.
type Service struct {
	repo   Repository
	hasher auth.PasswordHasher
	tokens *auth.TokenService
}

func NewService(repo Repository, hasher auth.PasswordHasher, tokens *auth.TokenService) *Service {
	return &Service{repo: repo, hasher: hasher, tokens: tokens}
}

// SignUp registers a new account and returns its id with a fresh token.
// Validation runs as a linear pipeline with early exit on the first failure.
func (s *Service) SignUp(ctx context.Context, email, password string) (*AuthResult, error) {

	if email == "" || password == "" {
		return nil, common.ErrCredentialsRequired
	}
	if !emailRegexp.MatchString(email) {
		return nil, common.ErrInvalidEmailFormat
	}
	if len(password) < minPasswordLength {
		return nil, common.ErrPasswordTooShort
	}

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrUserAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, common.ErrorInternal
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		// The store enforces uniqueness as well; a concurrent signup for the
		// same email surfaces as a conflict, not an internal error.
		if errors.Is(err, common.ErrUserAlreadyExists) {
			return nil, common.ErrUserAlreadyExists
		}
		return nil, common.ErrorInternal
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{UserID: user.ID, Token: token}, nil
}

// Login checks the credentials against the stored digest and returns the
// user id with a fresh token. Unknown emails and wrong passwords are
// indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {

	if email == "" || password == "" {
		return nil, common.ErrCredentialsRequired
	}

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return &AuthResult{UserID: user.ID, Token: token}, nil
}
