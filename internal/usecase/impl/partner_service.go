// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	deliverycontext "partnerdash/internal/delivery/context"
	"partnerdash/internal/domain/entity"
	domainerrors "partnerdash/internal/domain/errors"
	"partnerdash/internal/domain/repository"
	"partnerdash/internal/domain/service"
	"partnerdash/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dummyPassword is hashed once to give unknown-email logins the same bcrypt cost as real ones.
const dummyPassword = "partnerdash-dummy-password"

// partnerService implements the PartnerUsecase interface.
type partnerService struct {
	txManager    repository.TransactionManager
	partnerRepo  repository.PartnerRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger

	dummyOnce sync.Once
	dummyHash string
}

// PartnerServiceParams holds dependencies for PartnerService, injected by Fx.
type PartnerServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	PartnerRepo  repository.PartnerRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewPartnerService is the constructor for partnerService.
func NewPartnerService(params PartnerServiceParams) usecase.PartnerUsecase {
	return &partnerService{
		txManager:    params.TxManager,
		partnerRepo:  params.PartnerRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *partnerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an unverified partner and signs it in.
func (srv *partnerService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	companyName := strings.TrimSpace(input.CompanyName)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if companyName == "" || email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingRegistrationFields
	}
	if len(input.Password) > service.MaxPasswordBytes {
		return nil, domainerrors.ErrValidationFailed
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	// Hashing stays outside the transaction; bcrypt is deliberately slow.
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	partner := &entity.Partner{
		CompanyName:  companyName,
		TradeName:    trimmedOrNil(input.TradeName),
		Email:        email,
		Phone:        trimmedOrNil(input.Phone),
		PasswordHash: passwordHash,
		Latitude:     entity.DefaultLatitude,
		Longitude:    entity.DefaultLongitude,
		IsVerified:   false,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		partnerRepo := repoFactory.PartnerRepo()

		_, err := partnerRepo.FindByEmail(ctx, email)
		if err == nil {
			return domainerrors.ErrEmailAlreadyRegistered
		}
		if !errors.Is(err, repository.ErrPartnerNotFound) {
			return errors.Wrap(err, "failed to look up partner email")
		}

		if err := partnerRepo.Create(ctx, partner); err != nil {
			// A concurrent registration won the race between lookup and insert.
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrEmailAlreadyRegistered
			}

			return errors.Wrap(err, "failed to create partner")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Partner registered", slog.Int64("partner_id", partner.ID))

	return srv.issue(partner)
}

// Login verifies the credentials. Unknown emails and wrong passwords are indistinguishable.
func (srv *partnerService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrMissingCredentials
	}

	partner, err := srv.partnerRepo.FindByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrPartnerNotFound) {
			return nil, errors.Wrap(err, "failed to look up partner email")
		}
		srv.hasher.Check(input.Password, srv.dummyVerifier())
		srv.log(ctx).Debug("Login rejected: unknown email")

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !srv.hasher.Check(input.Password, partner.PasswordHash) {
		srv.log(ctx).Debug("Login rejected: password mismatch", slog.Int64("partner_id", partner.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issue(partner)
}

// GetEstablishment loads the caller's own profile.
func (srv *partnerService) GetEstablishment(ctx context.Context, partnerID int64) (*entity.Partner, error) {
	partner, err := srv.partnerRepo.FindByID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, repository.ErrPartnerNotFound) {
			return nil, domainerrors.ErrEstablishmentNotFound
		}

		return nil, errors.Wrap(err, "failed to load establishment")
	}

	return partner, nil
}

func (srv *partnerService) issue(partner *entity.Partner) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.Issue(partner.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.AuthOutput{Token: token, Partner: partner}, nil
}

func (srv *partnerService) dummyVerifier() string {
	srv.dummyOnce.Do(func() {
		hash, err := srv.hasher.Hash(dummyPassword)
		if err != nil {
			srv.logger.Warn("Failed to prepare dummy verifier", slog.Any("error", err))

			return
		}
		srv.dummyHash = hash
	})

	return srv.dummyHash
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
