package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/thapelomagqazana/t3-skeleton-ddd/internal/core/domain"
	"github.com/thapelomagqazana/t3-skeleton-ddd/internal/core/ports"
)

// AuthService implements sign-up and sign-in.
type AuthService struct {
	repo     ports.UserRepository
	hasher   *HashService
	tokens   ports.TokenIssuer
	tokenTTL time.Duration
	log      zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, hasher *HashService, tokens ports.TokenIssuer, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	return &AuthService{
		repo:     repo,
		hasher:   hasher,
		tokens:   tokens,
		tokenTTL: tokenTTL,
		log:      log,
	}
}

// SignUp registers a new account and returns a session token alongside the
// created user. The caller-supplied role is honoured as the original design
// did: anything other than an explicit ADMIN becomes USER.
func (s *AuthService) SignUp(ctx context.Context, in ports.SignUpInput) (string, *domain.User, error) {
	email, err := domain.NewEmail(in.Email)
	if err != nil {
		return "", nil, err
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return "", nil, domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return "", nil, err
	}

	role := domain.RoleUser
	if in.Role == domain.RoleAdmin {
		role = domain.RoleAdmin
	}

	user, err := domain.NewUser(uuid.NewString(), in.Name, email, hash, role)
	if err != nil {
		return "", nil, err
	}

	// A concurrent sign-up for the same email loses the race at the unique
	// index and surfaces here as ErrEmailExists.
	if err := s.repo.Create(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("email", user.Email.String()).Msg("user signed up")
	return token, user, nil
}

// SignIn authenticates by email and password. An unknown email and a wrong
// password are indistinguishable to the caller.
func (s *AuthService) SignIn(ctx context.Context, rawEmail, password string) (string, *domain.User, error) {
	email, err := domain.NewEmail(rawEmail)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user signed in")
	return token, user, nil
}

func (s *AuthService) issueToken(user *domain.User) (string, error) {
	return s.tokens.Issue(ports.TokenClaims{
		UserID: user.ID,
		Email:  user.Email.String(),
		Role:   user.Role,
	}, s.tokenTTL)
}
