package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"article-digest/internal/domain/entity"
)

const testSecret = "0123456789abcdef0123456789abcdef"

type stubUsers struct {
	byEmail   map[string]*entity.User
	createErr error
	created   *entity.User
}

func (s *stubUsers) Create(_ context.Context, user *entity.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = user
	return nil
}

func (s *stubUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if user, ok := s.byEmail[email]; ok {
		return user, nil
	}
	return nil, entity.ErrNotFound
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestSignup(t *testing.T) {
	users := &stubUsers{}
	svc := NewService(users, []byte(testSecret))

	require.NoError(t, svc.Signup(context.Background(), "Alice", "alice@example.com", "Abcdef1!"))

	require.NotNil(t, users.created)
	assert.Equal(t, "alice@example.com", users.created.Email)
	assert.NotEqual(t, "Abcdef1!", users.created.PasswordHash, "plaintext must never be stored")
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(users.created.PasswordHash), []byte("Abcdef1!")))
}

func TestSignup_WeakPassword(t *testing.T) {
	svc := NewService(&stubUsers{}, []byte(testSecret))

	err := svc.Signup(context.Background(), "Alice", "alice@example.com", "abc")
	var vErr *entity.ValidationError
	assert.ErrorAs(t, err, &vErr)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	users := &stubUsers{createErr: entity.ErrDuplicateEmail}
	svc := NewService(users, []byte(testSecret))

	err := svc.Signup(context.Background(), "Alice", "alice@example.com", "Abcdef1!")
	assert.ErrorIs(t, err, entity.ErrDuplicateEmail)
}

func TestLoginAndVerify(t *testing.T) {
	users := &stubUsers{byEmail: map[string]*entity.User{
		"alice@example.com": {
			Name:         "Alice",
			Email:        "alice@example.com",
			PasswordHash: hashOf(t, "Abcdef1!"),
		},
	}}
	svc := NewService(users, []byte(testSecret))

	token, user, err := svc.Login(context.Background(), "alice@example.com", "Abcdef1!")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	require.NotEmpty(t, token)

	email, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := &stubUsers{byEmail: map[string]*entity.User{
		"alice@example.com": {Email: "alice@example.com", PasswordHash: hashOf(t, "Abcdef1!")},
	}}
	svc := NewService(users, []byte(testSecret))

	_, _, err := svc.Login(context.Background(), "alice@example.com", "wrong")
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewService(&stubUsers{}, []byte(testSecret))

	_, _, err := svc.Login(context.Background(), "ghost@example.com", "Abcdef1!")
	assert.ErrorIs(t, err, entity.ErrInvalidCredentials)
}

func TestVerify_Missing(t *testing.T) {
	svc := NewService(&stubUsers{}, []byte(testSecret))

	_, err := svc.Verify("")
	assert.ErrorIs(t, err, ErrTokenMissing)
}

func TestVerify_Expired(t *testing.T) {
	svc := NewService(&stubUsers{}, []byte(testSecret))

	// Issue a token that expired an hour ago.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice@example.com",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, ErrTokenExpired)
	assert.NotErrorIs(t, err, ErrTokenInvalid, "expired must be distinct from invalid")
}

func TestVerify_BadSignature(t *testing.T) {
	svc := NewService(&stubUsers{}, []byte(testSecret))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice@example.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("another-secret-another-secret-xx"))
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerify_WrongAlgorithm(t *testing.T) {
	svc := NewService(&stubUsers{}, []byte(testSecret))

	// "none" algorithm tokens must be rejected.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "alice@example.com",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(signed)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
