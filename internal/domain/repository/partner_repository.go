// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"partnerdash/internal/domain/entity"
)

var (
	// ErrPartnerNotFound is returned when no partner matches the lookup.
	ErrPartnerNotFound = errors.New("partner not found")
	// ErrDuplicateEmail is returned when a partner with the same email already exists.
	ErrDuplicateEmail = errors.New("partner email already exists")
)

// PartnerRepository persists establishment accounts keyed by a unique email.
type PartnerRepository interface {
	// FindByID retrieves a partner by its id (the token subject).
	FindByID(ctx context.Context, id int64) (*entity.Partner, error)

	// FindByEmail retrieves a partner by its login email.
	FindByEmail(ctx context.Context, email string) (*entity.Partner, error)

	// Create persists a new partner and fills its generated id and timestamps.
	Create(ctx context.Context, partner *entity.Partner) error
}
