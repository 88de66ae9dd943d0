package registrants

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"cadastro/internal/notifications"
	"cadastro/pkg/cache"
	"cadastro/pkg/logger"
)

type Service interface {
	Register(ctx context.Context, req *RegisterRequest) (*Registrant, error)
	GetByID(ctx context.Context, id uint) (*RegistrantResponse, error)
	GetByEmail(ctx context.Context, email string) (*RegistrantResponse, error)
}

type service struct {
	repo     Repository
	validate *validator.Validate
	cache    cache.Service
	cacheTTL time.Duration
	producer notifications.Producer
	log      *logger.Logger
}

// NewService builds the registration service. cache and producer may be nil;
// lookups then skip the cache and registrations skip the welcome notification.
func NewService(repo Repository, cacheSvc cache.Service, cacheTTL time.Duration, producer notifications.Producer) Service {
	return &service{
		repo:     repo,
		validate: NewValidator(),
		cache:    cacheSvc,
		cacheTTL: cacheTTL,
		producer: producer,
		log:      logger.GetDefault(),
	}
}

func (s *service) Register(ctx context.Context, req *RegisterRequest) (*Registrant, error) {
	// Validation short-circuits before any storage access.
	if err := validateRegister(s.validate, req); err != nil {
		return nil, err
	}

	// Fast path for the common duplicate case. The unique index on email
	// still backs this up when two registrations race the same address.
	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("checking email: %w", err)
	}
	if exists {
		return nil, ErrDuplicateEmail
	}

	registrant := &Registrant{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
	}

	if err := s.repo.Create(ctx, registrant); err != nil {
		return nil, err
	}

	s.log.LogRegistrantCreated(ctx, registrant.ID, registrant.Email)
	s.publishWelcome(ctx, registrant)

	return registrant, nil
}

func (s *service) GetByID(ctx context.Context, id uint) (*RegistrantResponse, error) {
	key := fmt.Sprintf("registrant:id:%d", id)
	return s.lookup(ctx, key, func() (*Registrant, error) {
		return s.repo.GetByID(ctx, id)
	})
}

func (s *service) GetByEmail(ctx context.Context, email string) (*RegistrantResponse, error) {
	key := "registrant:email:" + email
	return s.lookup(ctx, key, func() (*Registrant, error) {
		return s.repo.GetByEmail(ctx, email)
	})
}

// lookup serves reads cache-aside: a cache hit answers directly, anything
// else (miss or cache fault) falls through to the repository.
func (s *service) lookup(ctx context.Context, key string, fetch func() (*Registrant, error)) (*RegistrantResponse, error) {
	if s.cache != nil {
		var cached RegistrantResponse
		err := s.cache.Get(ctx, key, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.log.Warn("registrant cache read failed", slog.String("key", key), slog.Any("error", err))
		}
	}

	registrant, err := fetch()
	if err != nil {
		return nil, err
	}

	resp := &RegistrantResponse{
		ID:        registrant.ID,
		FirstName: registrant.FirstName,
		Email:     registrant.Email,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, resp, s.cacheTTL); err != nil {
			s.log.Warn("registrant cache write failed", slog.String("key", key), slog.Any("error", err))
		}
	}

	return resp, nil
}

// publishWelcome is best-effort: a broker outage must not fail a signup that
// is already committed.
func (s *service) publishWelcome(ctx context.Context, registrant *Registrant) {
	if s.producer == nil {
		return
	}

	notification := notifications.NewWelcomeNotification(registrant.ID, registrant.Email, registrant.FirstName)
	if err := s.producer.PublishWelcome(ctx, notification); err != nil {
		s.log.Error("failed to publish welcome notification",
			slog.Uint64("registrant_id", uint64(registrant.ID)),
			slog.Any("error", err),
		)
	}
}
