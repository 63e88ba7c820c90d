package tests

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"sotrama/internal/domain"
	"sotrama/internal/repository"
)

// ──────────────────────────────────────────────
// MOCK TRIP REPOSITORY
// ──────────────────────────────────────────────

// MockTripRepository is a mock implementation of TripRepository.
type MockTripRepository struct {
	mu    sync.RWMutex
	trips map[int64]*domain.Trip

	// Error injection
	GetByIDError error
}

// NewMockTripRepository creates a new mock trip repository.
func NewMockTripRepository() *MockTripRepository {
	return &MockTripRepository{
		trips: make(map[int64]*domain.Trip),
	}
}

// AddTrip adds a trip to the mock repository.
func (m *MockTripRepository) AddTrip(trip *domain.Trip) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips[trip.ID] = trip
}

func (m *MockTripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips[trip.ID] = trip
	return nil
}

func (m *MockTripRepository) GetByID(ctx context.Context, id int64) (*domain.Trip, error) {
	if m.GetByIDError != nil {
		return nil, m.GetByIDError
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	trip, ok := m.trips[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	// Return a copy to avoid mutation issues.
	copy := *trip
	return &copy, nil
}

func (m *MockTripRepository) GetAll(ctx context.Context) ([]*domain.Trip, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Trip, 0, len(m.trips))
	for _, t := range m.trips {
		copy := *t
		result = append(result, &copy)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *MockTripRepository) AdjustSeats(ctx context.Context, id, delta int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	trip, ok := m.trips[id]
	if !ok {
		return repository.ErrNotFound
	}
	next := trip.AvailableSeats + delta
	if next < 0 {
		return &repository.InsufficientSeatsError{TripID: id, Remaining: trip.AvailableSeats}
	}
	trip.AvailableSeats = next
	return nil
}

func (m *MockTripRepository) DeleteAll(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trips = make(map[int64]*domain.Trip)
	return nil
}

func (m *MockTripRepository) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.trips)), nil
}

// ──────────────────────────────────────────────
// MOCK RESERVATION REPOSITORY
// ──────────────────────────────────────────────

// MockReservationRepository is a mock implementation of ReservationRepository.
type MockReservationRepository struct {
	mu           sync.RWMutex
	reservations map[int64]*domain.Reservation
	nextID       int64

	// Counters for verification
	UpdatePaymentStatusCallCount int32

	// Error injection
	UpdatePaymentStatusError error
}

// NewMockReservationRepository creates a new mock reservation repository.
func NewMockReservationRepository() *MockReservationRepository {
	return &MockReservationRepository{
		reservations: make(map[int64]*domain.Reservation),
	}
}

// AddReservation adds a reservation to the mock repository.
func (m *MockReservationRepository) AddReservation(reservation *domain.Reservation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if reservation.ID > m.nextID {
		m.nextID = reservation.ID
	}
	m.reservations[reservation.ID] = reservation
}

func (m *MockReservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	reservation.ID = m.nextID
	m.reservations[reservation.ID] = reservation
	return nil
}

func (m *MockReservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	reservation, ok := m.reservations[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *reservation
	return &copy, nil
}

func (m *MockReservationRepository) GetAll(ctx context.Context) ([]*domain.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Reservation, 0, len(m.reservations))
	for _, r := range m.reservations {
		copy := *r
		result = append(result, &copy)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (m *MockReservationRepository) GetByStatus(ctx context.Context, status domain.ReservationStatus) ([]*domain.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Reservation, 0)
	for _, r := range m.reservations {
		if r.Status == status {
			copy := *r
			result = append(result, &copy)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (m *MockReservationRepository) GetAllWithTrips(ctx context.Context) ([]*domain.ReservationDetail, error) {
	return nil, nil
}

func (m *MockReservationRepository) Update(ctx context.Context, reservation *domain.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reservations[reservation.ID]; !ok {
		return repository.ErrNotFound
	}
	m.reservations[reservation.ID] = reservation
	return nil
}

func (m *MockReservationRepository) UpdatePaymentStatus(ctx context.Context, id int64, status domain.PaymentStatus) error {
	atomic.AddInt32(&m.UpdatePaymentStatusCallCount, 1)
	if m.UpdatePaymentStatusError != nil {
		return m.UpdatePaymentStatusError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	reservation, ok := m.reservations[id]
	if !ok {
		return repository.ErrNotFound
	}
	reservation.PaymentStatus = status
	return nil
}

func (m *MockReservationRepository) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reservations[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.reservations, id)
	return nil
}

func (m *MockReservationRepository) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.reservations)), nil
}

// ──────────────────────────────────────────────
// MOCK AGENCY REPOSITORY
// ──────────────────────────────────────────────

// MockAgencyRepository is a mock implementation of AgencyRepository.
type MockAgencyRepository struct {
	mu       sync.RWMutex
	agencies map[int64]*domain.Agency
}

// NewMockAgencyRepository creates a new mock agency repository.
func NewMockAgencyRepository() *MockAgencyRepository {
	return &MockAgencyRepository{
		agencies: make(map[int64]*domain.Agency),
	}
}

// AddAgency adds an agency to the mock repository.
func (m *MockAgencyRepository) AddAgency(agency *domain.Agency) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.agencies[agency.ID] = agency
}

func (m *MockAgencyRepository) Create(ctx context.Context, agency *domain.Agency) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.agencies[agency.ID] = agency
	return nil
}

func (m *MockAgencyRepository) GetByID(ctx context.Context, id int64) (*domain.Agency, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	agency, ok := m.agencies[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copy := *agency
	return &copy, nil
}

func (m *MockAgencyRepository) GetAll(ctx context.Context) ([]*domain.Agency, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	result := make([]*domain.Agency, 0, len(m.agencies))
	for _, a := range m.agencies {
		copy := *a
		result = append(result, &copy)
	}
	return result, nil
}

func (m *MockAgencyRepository) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.agencies)), nil
}

// ──────────────────────────────────────────────
// MOCK LOCK STORE
// ──────────────────────────────────────────────

// MockLockStore is an in-memory implementation of LockStoreInterface.
type MockLockStore struct {
	mu    sync.Mutex
	locks map[int64]bool

	// Counters for verification
	AcquireCallCount int32
	ReleaseCallCount int32

	// Error injection
	AcquireError error
}

// NewMockLockStore creates a new mock lock store.
func NewMockLockStore() *MockLockStore {
	return &MockLockStore{
		locks: make(map[int64]bool),
	}
}

func (m *MockLockStore) AcquirePaymentLock(ctx context.Context, reservationID int64, ttl time.Duration) (bool, error) {
	atomic.AddInt32(&m.AcquireCallCount, 1)
	if m.AcquireError != nil {
		return false, m.AcquireError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locks[reservationID] {
		return false, nil
	}
	m.locks[reservationID] = true
	return true, nil
}

func (m *MockLockStore) ReleasePaymentLock(ctx context.Context, reservationID int64) error {
	atomic.AddInt32(&m.ReleaseCallCount, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.locks, reservationID)
	return nil
}

// HoldLock marks a lock as held, simulating a concurrent payment.
func (m *MockLockStore) HoldLock(reservationID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locks[reservationID] = true
}

// ──────────────────────────────────────────────
// MOCK SESSION STORE
// ──────────────────────────────────────────────

// MockSessionStore is an in-memory implementation of SessionStoreInterface.
type MockSessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session

	// Error injection
	SaveError error
}

// NewMockSessionStore creates a new mock session store.
func NewMockSessionStore() *MockSessionStore {
	return &MockSessionStore{
		sessions: make(map[string]*domain.Session),
	}
}

func (m *MockSessionStore) Save(ctx context.Context, session *domain.Session) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	copy := *session
	m.sessions[session.Phone] = &copy
	return nil
}

func (m *MockSessionStore) Get(ctx context.Context, phone string) (*domain.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[phone]
	if !ok {
		return nil, nil
	}
	copy := *session
	return &copy, nil
}

func (m *MockSessionStore) Delete(ctx context.Context, phone string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, phone)
	return nil
}

// ──────────────────────────────────────────────
// MOCK FAVORITE STORE
// ──────────────────────────────────────────────

// MockFavoriteStore is an in-memory implementation of FavoriteStoreInterface.
type MockFavoriteStore struct {
	mu        sync.RWMutex
	favorites map[string]map[int64]bool
}

// NewMockFavoriteStore creates a new mock favorite store.
func NewMockFavoriteStore() *MockFavoriteStore {
	return &MockFavoriteStore{
		favorites: make(map[string]map[int64]bool),
	}
}

func (m *MockFavoriteStore) Add(ctx context.Context, phone string, tripID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.favorites[phone] == nil {
		m.favorites[phone] = make(map[int64]bool)
	}
	m.favorites[phone][tripID] = true
	return nil
}

func (m *MockFavoriteStore) Remove(ctx context.Context, phone string, tripID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.favorites[phone], tripID)
	return nil
}

func (m *MockFavoriteStore) Members(ctx context.Context, phone string) ([]int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]int64, 0, len(m.favorites[phone]))
	for id := range m.favorites[phone] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// ──────────────────────────────────────────────
// MOCK PSP
// ──────────────────────────────────────────────

// MockPSP is a configurable payment provider.
type MockPSP struct {
	// ChargeCallCount counts Charge invocations.
	ChargeCallCount int32

	// Decline makes every charge fail without an error.
	Decline bool

	// ChargeError is returned from Charge when set.
	ChargeError error
}

// NewMockPSP creates a new mock PSP.
func NewMockPSP() *MockPSP {
	return &MockPSP{}
}

func (p *MockPSP) Charge(ctx context.Context, amount int64) (bool, error) {
	atomic.AddInt32(&p.ChargeCallCount, 1)
	if p.ChargeError != nil {
		return false, p.ChargeError
	}
	return !p.Decline, nil
}
