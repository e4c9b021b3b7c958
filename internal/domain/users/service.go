package users

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"pet-identifier/internal/platform/apperr"
	"pet-identifier/internal/platform/logger"
	"pet-identifier/internal/ports/auth"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingFields       = apperr.Invalid("missing_fields")
	ErrInvalidEmail        = apperr.Invalid("invalid_email")
	ErrInvalidUsername     = apperr.Invalid("invalid_username")
	ErrInvalidPasswordHash = apperr.Invalid("invalid_password_hash")
	ErrInvalidCredentials  = apperr.Unauthorized("invalid_credentials")
)

const maxEmailLen = 254

var (
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_.\-]{3,50}$`)
	// SHA-256 hex calculado en el cliente.
	clientHashRe = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)
)

type Options struct {
	// Pepper se mezcla con HMAC-SHA256 antes de bcrypt.
	Pepper       string
	BcryptRounds int
	// Issuer es opcional: sin él login/register no devuelven token.
	Issuer auth.TokenIssuer
	Logger logger.Logger
}

type Service struct {
	repo   Repository
	pepper []byte
	rounds int
	issuer auth.TokenIssuer
	log    logger.Logger
	now    func() time.Time

	// dummyHash iguala el costo de login cuando el usuario no existe.
	dummyHash []byte
}

func NewService(repo Repository, opts Options) *Service {
	rounds := opts.BcryptRounds
	if rounds < bcrypt.MinCost || rounds > bcrypt.MaxCost {
		rounds = bcrypt.DefaultCost
	}
	lg := opts.Logger
	if lg == nil {
		lg = logger.Noop()
	}
	s := &Service{
		repo:   repo,
		pepper: []byte(opts.Pepper),
		rounds: rounds,
		issuer: opts.Issuer,
		log:    lg,
		now:    time.Now,
	}
	s.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy"), rounds)
	return s
}

type RegisterInput struct {
	Email              string
	Username           string
	PasswordHashClient string
}

type LoginInput struct {
	Username           string
	PasswordHashClient string
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (Session, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	name := strings.TrimSpace(in.Username)
	hash := strings.TrimSpace(in.PasswordHashClient)

	if email == "" || name == "" || hash == "" {
		return Session{}, ErrMissingFields
	}
	if len(email) > maxEmailLen || !emailRe.MatchString(email) {
		return Session{}, ErrInvalidEmail
	}
	if !usernameRe.MatchString(name) {
		return Session{}, ErrInvalidUsername
	}
	if !clientHashRe.MatchString(hash) {
		return Session{}, ErrInvalidPasswordHash
	}

	stored, err := bcrypt.GenerateFromPassword(s.pepperize(hash), s.rounds)
	if err != nil {
		return Session{}, err
	}

	u, err := s.repo.Create(ctx, User{
		Email:        email,
		Name:         name,
		PasswordHash: string(stored),
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return Session{}, err
	}

	s.log.Info("user registered", map[string]any{"user_id": u.ID, "name": u.Name})
	return s.session(ctx, u)
}

func (s *Service) Login(ctx context.Context, in LoginInput) (Session, error) {
	name := strings.TrimSpace(in.Username)
	hash := strings.TrimSpace(in.PasswordHashClient)

	if name == "" || hash == "" {
		return Session{}, ErrMissingFields
	}
	if !clientHashRe.MatchString(hash) {
		return Session{}, ErrInvalidPasswordHash
	}

	u, err := s.repo.GetByName(ctx, name)
	if errors.Is(err, ErrUserNotFound) {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, s.pepperize(hash))
		return Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), s.pepperize(hash)); err != nil {
		return Session{}, ErrInvalidCredentials
	}
	return s.session(ctx, u)
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// pepperize: bcrypt corta a 72 bytes, así que en vez de concatenar hash+pepper
// se guarda bcrypt(hex(HMAC-SHA256(pepper, hash))).
func (s *Service) pepperize(clientHash string) []byte {
	mac := hmac.New(sha256.New, s.pepper)
	mac.Write([]byte(strings.ToLower(clientHash)))
	return []byte(hex.EncodeToString(mac.Sum(nil)))
}

func (s *Service) session(ctx context.Context, u User) (Session, error) {
	out := Session{User: u}
	if s.issuer == nil {
		return out, nil
	}
	tok, err := s.issuer.Issue(ctx, auth.Claims{UserID: strconv.FormatInt(u.ID, 10), Username: u.Name})
	if err != nil {
		return Session{}, err
	}
	out.Token = tok
	return out, nil
}
