package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"article-digest/internal/domain/entity"
	"article-digest/internal/repository"
)

// tokenTTL is the lifetime of issued session tokens.
const tokenTTL = 12 * time.Hour

// Service handles signup, login and token verification.
type Service struct {
	users  repository.UserRepository
	secret []byte
	now    func() time.Time
}

// NewService creates an auth service signing tokens with the given secret.
func NewService(users repository.UserRepository, secret []byte) *Service {
	return &Service{users: users, secret: secret, now: time.Now}
}

// Signup registers a new account. The email must be unused and the password
// must satisfy the strength policy; only the bcrypt hash is stored.
func (s *Service) Signup(ctx context.Context, name, email, password string) error {
	if err := entity.ValidateEmail(email); err != nil {
		return err
	}
	if err := entity.ValidatePassword(password); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{Name: name, Email: email, PasswordHash: string(hash)}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, entity.ErrDuplicateEmail) {
			return entity.ErrDuplicateEmail
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Login verifies the credentials and issues a signed session token embedding
// the email with a 12 hour expiry. Unknown emails and wrong passwords both
// map to entity.ErrInvalidCredentials so the response does not reveal which
// part was wrong.
func (s *Service) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return "", nil, entity.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, entity.ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.Email,
		"exp": s.now().Add(tokenTTL).Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return signed, user, nil
}

// Verify validates a session token and returns the embedded email.
// Failures are distinct: ErrTokenMissing for an absent token,
// ErrTokenExpired when the expiry has passed, ErrTokenInvalid otherwise.
func (s *Service) Verify(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrTokenMissing
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	token, err := parser.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrTokenInvalid
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrTokenInvalid
	}
	return sub, nil
}
