package impl

import (
	"context"
	"strings"
	"testing"

	"partnerdash/internal/domain/entity"
	domainerrors "partnerdash/internal/domain/errors"
	"partnerdash/internal/domain/repository"
	mockRepo "partnerdash/internal/mocks/repository"
	mockSvc "partnerdash/internal/mocks/service"
	"partnerdash/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// partnerServiceFixtures holds all test dependencies for partner service tests.
type partnerServiceFixtures struct {
	service      usecase.PartnerUsecase
	txManager    *mockRepo.MockTransactionManager
	partnerRepo  *mockRepo.MockPartnerRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestPartnerService(t *testing.T) partnerServiceFixtures {
	partnerRepo := mockRepo.NewMockPartnerRepository(t)
	txManager := mockRepo.NewMockTransactionManager(partnerRepo, nil, nil)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	return partnerServiceFixtures{
		service: NewPartnerService(PartnerServiceParams{
			TxManager:    txManager,
			PartnerRepo:  partnerRepo,
			Hasher:       hasher,
			TokenService: tokenService,
			Logger:       newDiscardLogger(),
		}),
		txManager:    txManager,
		partnerRepo:  partnerRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestPartnerService_Register_Success(t *testing.T) {
	fx := createTestPartnerService(t)
	ctx := context.Background()

	fx.hasher.On("ValidatePasswordStrength", "secret1").Return(nil)
	fx.hasher.On("Hash", "secret1").Return("hashed", nil)
	fx.partnerRepo.On("FindByEmail", ctx, "a@b.com").Return(nil, repository.ErrPartnerNotFound)
	fx.partnerRepo.On("Create", ctx, mock.MatchedBy(func(p *entity.Partner) bool {
		return p.CompanyName == "Acme" &&
			p.Email == "a@b.com" &&
			p.PasswordHash == "hashed" &&
			!p.IsVerified &&
			p.Latitude == entity.DefaultLatitude &&
			p.Longitude == entity.DefaultLongitude &&
			p.TradeName == nil
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Partner).ID = 11
	}).Return(nil)
	fx.tokenService.On("Issue", int64(11)).Return("signed-token", nil)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{
		CompanyName: " Acme ",
		TradeName:   ptr("  "),
		Email:       " A@B.com",
		Password:    "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
	assert.Equal(t, int64(11), out.Partner.ID)
	assert.Equal(t, 1, fx.txManager.Calls)
}

func TestPartnerService_Register_MissingFields(t *testing.T) {
	inputs := []*usecase.RegisterInput{
		{Email: "a@b.com", Password: "secret1"},
		{CompanyName: "Acme", Password: "secret1"},
		{CompanyName: "Acme", Email: "a@b.com"},
		{CompanyName: "   ", Email: "a@b.com", Password: "secret1"},
	}

	for _, input := range inputs {
		fx := createTestPartnerService(t)
		_, err := fx.service.Register(context.Background(), input)
		assert.ErrorIs(t, err, domainerrors.ErrMissingRegistrationFields)
		assert.Zero(t, fx.txManager.Calls)
	}
}

func TestPartnerService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestPartnerService(t)
	ctx := context.Background()

	fx.hasher.On("ValidatePasswordStrength", "secret1").Return(nil)
	fx.hasher.On("Hash", "secret1").Return("hashed", nil)
	fx.partnerRepo.On("FindByEmail", ctx, "a@b.com").Return(&entity.Partner{ID: 1}, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{CompanyName: "Acme", Email: "a@b.com", Password: "secret1"})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
	fx.partnerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPartnerService_Register_RaceOnInsert(t *testing.T) {
	fx := createTestPartnerService(t)
	ctx := context.Background()

	fx.hasher.On("ValidatePasswordStrength", "secret1").Return(nil)
	fx.hasher.On("Hash", "secret1").Return("hashed", nil)
	fx.partnerRepo.On("FindByEmail", ctx, "a@b.com").Return(nil, repository.ErrPartnerNotFound)
	fx.partnerRepo.On("Create", ctx, mock.Anything).Return(repository.ErrDuplicateEmail)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{CompanyName: "Acme", Email: "a@b.com", Password: "secret1"})
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestPartnerService_Register_PasswordTooLong(t *testing.T) {
	fx := createTestPartnerService(t)

	// 40 two-byte runes: 40 characters, 80 bytes.
	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		CompanyName: "Acme",
		Email:       "a@b.com",
		Password:    strings.Repeat("é", 40),
	})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Zero(t, fx.txManager.Calls)
}

func TestPartnerService_Register_WeakPassword(t *testing.T) {
	fx := createTestPartnerService(t)
	fx.hasher.On("ValidatePasswordStrength", "123").Return(domainerrors.ErrPasswordStrength)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{CompanyName: "Acme", Email: "a@b.com", Password: "123"})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
	assert.Zero(t, fx.txManager.Calls)
}

func TestPartnerService_Login(t *testing.T) {
	ctx := context.Background()
	partner := &entity.Partner{ID: 5, Email: "a@b.com", PasswordHash: "stored"}

	t.Run("success", func(t *testing.T) {
		fx := createTestPartnerService(t)
		fx.partnerRepo.On("FindByEmail", ctx, "a@b.com").Return(partner, nil)
		fx.hasher.On("Check", "secret1", "stored").Return(true)
		fx.tokenService.On("Issue", int64(5)).Return("tok", nil)

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@b.com", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, "tok", out.Token)
		assert.Same(t, partner, out.Partner)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestPartnerService(t)
		fx.partnerRepo.On("FindByEmail", ctx, "a@b.com").Return(partner, nil)
		fx.hasher.On("Check", "nope", "stored").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@b.com", Password: "nope"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown email still hashes", func(t *testing.T) {
		fx := createTestPartnerService(t)
		fx.partnerRepo.On("FindByEmail", ctx, "ghost@b.com").Return(nil, repository.ErrPartnerNotFound)
		fx.hasher.On("Hash", dummyPassword).Return("dummy-hash", nil).Once()
		fx.hasher.On("Check", "secret1", "dummy-hash").Return(false).Twice()

		for range 2 {
			_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@b.com", Password: "secret1"})
			assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		fx := createTestPartnerService(t)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@b.com"})
		assert.ErrorIs(t, err, domainerrors.ErrMissingCredentials)
		_, err = fx.service.Login(ctx, &usecase.LoginInput{Password: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrMissingCredentials)
	})

	t.Run("store failure is not a credential error", func(t *testing.T) {
		fx := createTestPartnerService(t)
		dbErr := domainerrors.NewDatabaseExecuteError(errors.New("down"), "find")
		fx.partnerRepo.On("FindByEmail", ctx, "a@b.com").Return(nil, dbErr)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@b.com", Password: "secret1"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestPartnerService_GetEstablishment(t *testing.T) {
	ctx := context.Background()

	fx := createTestPartnerService(t)
	fx.partnerRepo.On("FindByID", ctx, int64(5)).Return(&entity.Partner{ID: 5}, nil)
	fx.partnerRepo.On("FindByID", ctx, int64(6)).Return(nil, repository.ErrPartnerNotFound)

	partner, err := fx.service.GetEstablishment(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), partner.ID)

	_, err = fx.service.GetEstablishment(ctx, 6)
	assert.ErrorIs(t, err, domainerrors.ErrEstablishmentNotFound)
}
