// Package repository provides testify mocks of the domain repository interfaces.
package repository

import (
	"context"

	"partnerdash/internal/domain/entity"
	"partnerdash/internal/domain/repository"

	"github.com/stretchr/testify/mock"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockPartnerRepository is a mock of repository.PartnerRepository.
type MockPartnerRepository struct {
	mock.Mock
}

// NewMockPartnerRepository creates a mock that asserts its expectations on cleanup.
func NewMockPartnerRepository(t testingT) *MockPartnerRepository {
	m := &MockPartnerRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockPartnerRepository) FindByID(ctx context.Context, id int64) (*entity.Partner, error) {
	args := m.Called(ctx, id)
	partner, _ := args.Get(0).(*entity.Partner)

	return partner, args.Error(1)
}

func (m *MockPartnerRepository) FindByEmail(ctx context.Context, email string) (*entity.Partner, error) {
	args := m.Called(ctx, email)
	partner, _ := args.Get(0).(*entity.Partner)

	return partner, args.Error(1)
}

func (m *MockPartnerRepository) Create(ctx context.Context, partner *entity.Partner) error {
	return m.Called(ctx, partner).Error(0)
}

// MockEventRepository is a mock of repository.EventRepository.
type MockEventRepository struct {
	mock.Mock
}

// NewMockEventRepository creates a mock that asserts its expectations on cleanup.
func NewMockEventRepository(t testingT) *MockEventRepository {
	m := &MockEventRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEventRepository) FindByPartner(ctx context.Context, partnerID int64) ([]*entity.Event, error) {
	args := m.Called(ctx, partnerID)
	events, _ := args.Get(0).([]*entity.Event)

	return events, args.Error(1)
}

func (m *MockEventRepository) FindOwned(ctx context.Context, partnerID, eventID int64) (*entity.Event, error) {
	args := m.Called(ctx, partnerID, eventID)
	event, _ := args.Get(0).(*entity.Event)

	return event, args.Error(1)
}

func (m *MockEventRepository) DeleteOwned(ctx context.Context, partnerID, eventID int64) error {
	return m.Called(ctx, partnerID, eventID).Error(0)
}

func (m *MockEventRepository) CountActive(ctx context.Context, partnerID int64) (int64, error) {
	args := m.Called(ctx, partnerID)

	return args.Get(0).(int64), args.Error(1)
}

// MockReservationRepository is a mock of repository.ReservationRepository.
type MockReservationRepository struct {
	mock.Mock
}

// NewMockReservationRepository creates a mock that asserts its expectations on cleanup.
func NewMockReservationRepository(t testingT) *MockReservationRepository {
	m := &MockReservationRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockReservationRepository) FindByPartner(ctx context.Context, partnerID int64) ([]*entity.Reservation, error) {
	args := m.Called(ctx, partnerID)
	reservations, _ := args.Get(0).([]*entity.Reservation)

	return reservations, args.Error(1)
}

func (m *MockReservationRepository) FindOwned(ctx context.Context, partnerID, reservationID int64) (*entity.Reservation, error) {
	args := m.Called(ctx, partnerID, reservationID)
	reservation, _ := args.Get(0).(*entity.Reservation)

	return reservation, args.Error(1)
}

func (m *MockReservationRepository) UpdateStatus(ctx context.Context, partnerID, reservationID int64, status entity.ReservationStatus) error {
	return m.Called(ctx, partnerID, reservationID, status).Error(0)
}

func (m *MockReservationRepository) CountByPartner(ctx context.Context, partnerID int64) (int64, error) {
	args := m.Called(ctx, partnerID)

	return args.Get(0).(int64), args.Error(1)
}

// MockReviewRepository is a mock of repository.ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

// NewMockReviewRepository creates a mock that asserts its expectations on cleanup.
func NewMockReviewRepository(t testingT) *MockReviewRepository {
	m := &MockReviewRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockReviewRepository) FindByPartner(ctx context.Context, partnerID int64) ([]*entity.Review, error) {
	args := m.Called(ctx, partnerID)
	reviews, _ := args.Get(0).([]*entity.Review)

	return reviews, args.Error(1)
}

func (m *MockReviewRepository) Summarize(ctx context.Context, partnerID int64) (*entity.ReviewSummary, error) {
	args := m.Called(ctx, partnerID)
	summary, _ := args.Get(0).(*entity.ReviewSummary)

	return summary, args.Error(1)
}

// MockTransactionManager runs the callback against a fixed RepositoryFactory, without a database.
type MockTransactionManager struct {
	Factory repository.RepositoryFactory
	Calls   int
}

// NewMockTransactionManager wraps the given repositories in a factory.
func NewMockTransactionManager(partners repository.PartnerRepository, events repository.EventRepository, reservations repository.ReservationRepository) *MockTransactionManager {
	return &MockTransactionManager{Factory: &mockRepositoryFactory{partners: partners, events: events, reservations: reservations}}
}

func (m *MockTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	m.Calls++

	return fn(m.Factory)
}

type mockRepositoryFactory struct {
	partners     repository.PartnerRepository
	events       repository.EventRepository
	reservations repository.ReservationRepository
}

func (f *mockRepositoryFactory) PartnerRepo() repository.PartnerRepository { return f.partners }

func (f *mockRepositoryFactory) EventRepo() repository.EventRepository { return f.events }

func (f *mockRepositoryFactory) ReservationRepo() repository.ReservationRepository {
	return f.reservations
}
