// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"partnerdash/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open a partner account.
type RegisterInput struct {
	CompanyName string
	TradeName   *string
	Email       string
	Phone       *string
	Password    string
}

// LoginInput defines the credentials of a partner.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput carries the session token issued on register or login.
type AuthOutput struct {
	Token   string
	Partner *entity.Partner
}

// PartnerUsecase defines account and profile operations.
type PartnerUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	GetEstablishment(ctx context.Context, partnerID int64) (*entity.Partner, error)
}
