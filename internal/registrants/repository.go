package registrants

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrNotFound       = errors.New("registrant not found")
)

type Repository interface {
	Create(ctx context.Context, registrant *Registrant) error
	GetByID(ctx context.Context, id uint) (*Registrant, error)
	GetByEmail(ctx context.Context, email string) (*Registrant, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db: db,
	}
}

func (r *repository) Create(ctx context.Context, registrant *Registrant) error {
	if err := r.db.WithContext(ctx).Create(registrant).Error; err != nil {
		// The unique index on email is the authority for duplicates: two
		// requests can both pass EmailExists before either inserts, and the
		// loser lands here with a unique violation.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Registrant, error) {
	var registrant Registrant
	err := r.db.WithContext(ctx).
		Select("id", "first_name", "email").
		Where("id = ?", id).
		First(&registrant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &registrant, nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (*Registrant, error) {
	var registrant Registrant
	err := r.db.WithContext(ctx).
		Select("id", "first_name", "email").
		Where("email = ?", email).
		First(&registrant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &registrant, nil
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Registrant{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
