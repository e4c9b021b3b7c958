package pets

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"pet-identifier/internal/platform/apperr"
	"pet-identifier/internal/platform/logger"
)

var (
	ErrMissingFields      = apperr.Invalid("missing_fields")
	ErrInvalidName        = apperr.Invalid("invalid_name")
	ErrInvalidBreed       = apperr.Invalid("invalid_breed")
	ErrInvalidDescription = apperr.Invalid("invalid_description")
	ErrInvalidUserID      = apperr.Invalid("invalid_user_id")
	ErrInvalidPetID       = apperr.Invalid("invalid_pet_id")
)

const (
	maxNameLen        = 100
	maxBreedLen       = 100
	maxDescriptionLen = 1000
)

type Service struct {
	repo Repository
	log  logger.Logger
	now  func() time.Time
}

func NewService(repo Repository, lg logger.Logger) *Service {
	if lg == nil {
		lg = logger.Noop()
	}
	return &Service{
		repo: repo,
		log:  lg,
		now:  time.Now,
	}
}

type SaveInput struct {
	Name        string
	Breed       string
	Description string
	UserID      int64
}

func (s *Service) Save(ctx context.Context, in SaveInput) (Pet, error) {
	name := strings.TrimSpace(in.Name)
	breed := strings.TrimSpace(in.Breed)
	desc := strings.TrimSpace(in.Description)

	if name == "" {
		return Pet{}, ErrMissingFields
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return Pet{}, ErrInvalidName
	}
	if utf8.RuneCountInString(breed) > maxBreedLen {
		return Pet{}, ErrInvalidBreed
	}
	if utf8.RuneCountInString(desc) > maxDescriptionLen {
		return Pet{}, ErrInvalidDescription
	}
	if in.UserID <= 0 {
		return Pet{}, ErrInvalidUserID
	}

	p, err := s.repo.Create(ctx, Pet{
		Name:        name,
		Breed:       breed,
		Description: desc,
		UserID:      in.UserID,
		CreatedAt:   s.now().UTC(),
	})
	if err != nil {
		return Pet{}, err
	}

	s.log.Info("pet saved", map[string]any{"pet_id": p.ID, "user_id": p.UserID})
	return p, nil
}

func (s *Service) Delete(ctx context.Context, petID, userID int64) error {
	if petID <= 0 {
		return ErrInvalidPetID
	}
	if userID <= 0 {
		return ErrInvalidUserID
	}
	if err := s.repo.Delete(ctx, petID, userID); err != nil {
		return err
	}

	s.log.Info("pet deleted", map[string]any{"pet_id": petID, "user_id": userID})
	return nil
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]Pet, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}
	return s.repo.ListByUser(ctx, userID)
}
