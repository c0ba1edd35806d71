package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/joblane/joblane/internal/db"
	"github.com/joblane/joblane/internal/models"
)

var (
	ErrMissingField       = errors.New("auth: required field missing")
	ErrEmailInvalid       = errors.New("auth: email is invalid")
	ErrPasswordTooWeak    = errors.New("auth: password must be at least 8 characters")
	ErrEmailExists        = errors.New("auth: email already registered")
	ErrInvalidCredentials = errors.New("auth: invalid credentials")
	ErrInvalidToken       = errors.New("auth: invalid token")
)

// dummyHash keeps the unknown-email and wrong-password login failures on
// the same bcrypt cost, so response timing does not reveal which one it was.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserStore is the credential store the service runs against. *db.UserStore
// satisfies it; tests substitute an in-memory implementation.
type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}

type SignupInput struct {
	Name             string
	Email            string
	Password         string
	Username         string
	PhoneNumber      string
	Gender           string
	DateOfBirth      time.Time
	MembershipStatus string
	Bio              string
	Address          string
	ProfilePicture   string
}

type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      models.User
}

// Service orchestrates signup, login and token authentication over the
// credential store, the password hasher and the token issuer.
type Service struct {
	store  UserStore
	tokens *TokenIssuer
}

func NewService(store UserStore, secret string, ttl time.Duration) (*Service, error) {
	tokens, err := NewTokenIssuer(secret, ttl)
	if err != nil {
		return nil, err
	}
	return &Service{store: store, tokens: tokens}, nil
}

// Signup validates the payload, hashes the password, persists the user and
// issues a token for the new account. The plaintext password is discarded
// as soon as the hash exists.
func (s *Service) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	if err := validateSignup(input); err != nil {
		return nil, err
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:             strings.TrimSpace(input.Name),
		Email:            strings.TrimSpace(input.Email),
		Username:         strings.TrimSpace(input.Username),
		PasswordHash:     hash,
		PhoneNumber:      strings.TrimSpace(input.PhoneNumber),
		Gender:           strings.TrimSpace(input.Gender),
		DateOfBirth:      input.DateOfBirth.UTC(),
		MembershipStatus: strings.TrimSpace(input.MembershipStatus),
		Bio:              input.Bio,
		Address:          input.Address,
		ProfilePicture:   input.ProfilePicture,
	}

	if err := s.store.Insert(ctx, user); err != nil {
		if errors.Is(err, db.ErrDuplicateEmail) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	return s.issueFor(user)
}

// Login verifies the credentials and issues a fresh token. Unknown email
// and wrong password both come back as ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, db.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return s.issueFor(user)
}

// Authenticate resolves a bearer token to the user it was issued for. Token
// failures propagate as ErrTokenExpired/ErrTokenMalformed; a token whose
// user no longer exists is ErrInvalidToken.
func (s *Service) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := s.store.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, db.ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	return user, nil
}

// Tokens exposes the issuer for callers that only need token verification.
func (s *Service) Tokens() *TokenIssuer {
	return s.tokens
}

func (s *Service) issueFor(user *models.User) (*AuthResult, error) {
	token, expiresAt, err := s.tokens.Issue(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user.Sanitize(),
	}, nil
}

func validateSignup(input SignupInput) error {
	required := []string{input.Name, input.PhoneNumber, input.Gender, input.MembershipStatus}
	for _, field := range required {
		if strings.TrimSpace(field) == "" {
			return ErrMissingField
		}
	}
	if input.DateOfBirth.IsZero() {
		return ErrMissingField
	}

	email := strings.TrimSpace(input.Email)
	if email == "" || !strings.Contains(email, "@") {
		return ErrEmailInvalid
	}

	if len(input.Password) < 8 {
		return ErrPasswordTooWeak
	}

	return nil
}

var _ UserStore = (*db.UserStore)(nil)
