package users

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"sync"
	"testing"

	"pet-identifier/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeRepo: repo mínimo en memoria para tests del service.
type fakeRepo struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]User
	err    error
}

func newFakeRepo() *fakeRepo { return &fakeRepo{byID: map[int64]User{}} }

func (f *fakeRepo) Create(_ context.Context, u User) (User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return User{}, f.err
	}
	for _, x := range f.byID {
		if x.Email == u.Email || x.Name == u.Name {
			return User{}, ErrUserExists
		}
	}
	f.nextID++
	u.ID = f.nextID
	f.byID[u.ID] = u
	return u, nil
}

func (f *fakeRepo) GetByName(_ context.Context, name string) (User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Name == name {
			return u, nil
		}
	}
	return User{}, ErrUserNotFound
}

func (f *fakeRepo) List(context.Context) ([]User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]User, 0, len(f.byID))
	for i := int64(1); i <= f.nextID; i++ {
		if u, ok := f.byID[i]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeIssuer struct{}

func (fakeIssuer) Issue(_ context.Context, c auth.Claims) (string, error) {
	return "tok-" + c.UserID, nil
}

func clientHash(pw string) string {
	sum := sha256.Sum256([]byte(pw))
	return hex.EncodeToString(sum[:])
}

func newTestService(repo Repository, issuer auth.TokenIssuer) *Service {
	return NewService(repo, Options{Pepper: "pepper", BcryptRounds: bcrypt.MinCost, Issuer: issuer})
}

func TestService_RegisterThenLogin(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil)
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterInput{Email: "Ana@Example.com", Username: "ana_01", PasswordHashClient: clientHash("secret")})
	require.NoError(t, err)
	assert.Equal(t, "ana_01", reg.User.Name)
	assert.Equal(t, "ana@example.com", reg.User.Email)
	assert.Empty(t, reg.Token)

	stored := repo.byID[reg.User.ID].PasswordHash
	assert.True(t, strings.HasPrefix(stored, "$2"))
	assert.NotContains(t, stored, clientHash("secret"))

	// El hash del cliente se compara sin importar mayúsculas.
	login, err := svc.Login(ctx, LoginInput{Username: "ana_01", PasswordHashClient: strings.ToUpper(clientHash("secret"))})
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)
}

func TestService_LoginFailures(t *testing.T) {
	svc := newTestService(newFakeRepo(), nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "a@b.co", Username: "ana", PasswordHashClient: clientHash("x")})
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginInput{Username: "ana", PasswordHashClient: clientHash("y")})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, LoginInput{Username: "nadie", PasswordHashClient: clientHash("x")})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, LoginInput{Username: "ana"})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Login(ctx, LoginInput{Username: "ana", PasswordHashClient: "abc"})
	assert.ErrorIs(t, err, ErrInvalidPasswordHash)
}

func TestService_PepperChangesHash(t *testing.T) {
	repo := newFakeRepo()
	ctx := context.Background()

	a := NewService(repo, Options{Pepper: "one", BcryptRounds: bcrypt.MinCost})
	_, err := a.Register(ctx, RegisterInput{Email: "a@b.co", Username: "ana", PasswordHashClient: clientHash("x")})
	require.NoError(t, err)

	b := NewService(repo, Options{Pepper: "two", BcryptRounds: bcrypt.MinCost})
	_, err = b.Login(ctx, LoginInput{Username: "ana", PasswordHashClient: clientHash("x")})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_RegisterValidation(t *testing.T) {
	good := clientHash("pw")
	tests := []struct {
		name string
		in   RegisterInput
		want error
	}{
		{"faltan campos", RegisterInput{Email: "a@b.co", Username: "ana"}, ErrMissingFields},
		{"email inválido", RegisterInput{Email: "nope", Username: "ana", PasswordHashClient: good}, ErrInvalidEmail},
		{"email largo", RegisterInput{Email: strings.Repeat("a", 250) + "@b.co", Username: "ana", PasswordHashClient: good}, ErrInvalidEmail},
		{"usuario corto", RegisterInput{Email: "a@b.co", Username: "an", PasswordHashClient: good}, ErrInvalidUsername},
		{"usuario con espacios", RegisterInput{Email: "a@b.co", Username: "ana maria", PasswordHashClient: good}, ErrInvalidUsername},
		{"usuario largo", RegisterInput{Email: "a@b.co", Username: strings.Repeat("a", 51), PasswordHashClient: good}, ErrInvalidUsername},
		{"hash no hex", RegisterInput{Email: "a@b.co", Username: "ana", PasswordHashClient: strings.Repeat("z", 64)}, ErrInvalidPasswordHash},
		{"hash corto", RegisterInput{Email: "a@b.co", Username: "ana", PasswordHashClient: "abcd"}, ErrInvalidPasswordHash},
	}

	svc := newTestService(newFakeRepo(), nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestService_RegisterDuplicate(t *testing.T) {
	svc := newTestService(newFakeRepo(), nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "a@b.co", Username: "ana", PasswordHashClient: clientHash("x")})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Email: "a@b.co", Username: "otra", PasswordHashClient: clientHash("x")})
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestService_IssuesTokenWhenConfigured(t *testing.T) {
	svc := newTestService(newFakeRepo(), fakeIssuer{})

	s, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.co", Username: "ana", PasswordHashClient: clientHash("x")})
	require.NoError(t, err)
	assert.Equal(t, "tok-1", s.Token)
}

func TestService_RepoErrorPropagates(t *testing.T) {
	repo := newFakeRepo()
	repo.err = errors.New("db down")
	svc := newTestService(repo, nil)

	_, err := svc.Register(context.Background(), RegisterInput{Email: "a@b.co", Username: "ana", PasswordHashClient: clientHash("x")})
	assert.EqualError(t, err, "db down")
}
