package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"healthbridge-api/internal/models"
)

var (
	// ErrNotFound is returned when a lookup matches no document.
	ErrNotFound = errors.New("store: not found")
	// ErrDuplicate is returned when an insert violates a unique index.
	ErrDuplicate = errors.New("store: duplicate key")
)

type AdminStore interface {
	FindAdminByEmail(ctx context.Context, email string) (*models.SuperAdmin, error)
	InsertAdmin(ctx context.Context, admin *models.SuperAdmin) error
}

type UserStore interface {
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	InsertUser(ctx context.Context, user *models.User) error
	ListUsers(ctx context.Context) ([]models.User, error)
}

type OwnerStore interface {
	FindOwnerByEmail(ctx context.Context, email string) (*models.BusinessOwner, error)
	FindOwnerByID(ctx context.Context, id primitive.ObjectID) (*models.BusinessOwner, error)
	InsertOwner(ctx context.Context, owner *models.BusinessOwner) error
	UpdatePhlebotomists(ctx context.Context, id primitive.ObjectID, roster []models.Phlebotomist) error
	ListOwners(ctx context.Context) ([]models.BusinessOwner, error)
}

type ServiceStore interface {
	InsertService(ctx context.Context, svc *models.Service) error
	ListServices(ctx context.Context) ([]models.Service, error)
}

// Store is everything the handlers need from persistence.
type Store interface {
	AdminStore
	UserStore
	OwnerStore
	ServiceStore
}
