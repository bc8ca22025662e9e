package services

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pghive/internal/adapters/persistence/repositories"
	"pghive/internal/core/domain"
	"pghive/internal/pkg/metrics"
)

// OwnerService is the owner's entry point: it holds the owner account and
// orchestrates the room inventory, tenant registry, ledgers and pricing.
type OwnerService struct {
	mu    sync.Mutex
	owner domain.Owner
	mode  BillingMode

	store   *repositories.Store
	rooms   *RoomInventory
	tenants *TenantRegistry
	log     *zap.Logger
}

// NewOwnerService creates the owner facade over store
func NewOwnerService(store *repositories.Store, owner domain.Owner, mode BillingMode, log *zap.Logger) *OwnerService {
	if mode == "" {
		mode = BillingFlat
	}

	return &OwnerService{
		owner:   owner,
		mode:    mode,
		store:   store,
		rooms:   NewRoomInventory(store, log),
		tenants: NewTenantRegistry(store, log),
		log:     log.Named("owner"),
	}
}

// Rooms returns the room inventory
func (s *OwnerService) Rooms() *RoomInventory {
	return s.rooms
}

// Tenants returns the tenant registry
func (s *OwnerService) Tenants() *TenantRegistry {
	return s.tenants
}

// ============================================================
// Owner account
// ============================================================

// Profile returns a copy of the owner account
func (s *OwnerService) Profile() domain.Owner {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.owner
}

// Login authenticates the owner
func (s *OwnerService) Login(email, plain string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.owner.Authenticate(email, plain); err != nil {
		return &LoginError{Remaining: s.owner.RemainingAttempts(), Err: err}
	}
	return nil
}

// Logout ends the owner session
func (s *OwnerService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.owner.EndSession()
}

// LoggedIn reports whether the owner has an open session
func (s *OwnerService) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.owner.LoggedIn
}

// ChangePassword replaces the owner password
func (s *OwnerService) ChangePassword(current, next string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.owner.ChangePassword(current, next)
}

// BillingMode returns the current bulk billing mode
func (s *OwnerService) BillingMode() BillingMode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SetBillingMode changes the bulk billing mode
func (s *OwnerService) SetBillingMode(mode BillingMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
}

// ============================================================
// Tenants and rooms
// ============================================================

// CreateTenant registers a tenant
func (s *OwnerService) CreateTenant(ctx context.Context, input CreateTenantInput) (*domain.Tenant, error) {
	return s.tenants.Create(ctx, input)
}

// EditTenant updates a tenant's details
func (s *OwnerService) EditTenant(ctx context.Context, id string, input EditTenantInput) error {
	return s.tenants.Edit(ctx, id, input)
}

// RemoveTenant deletes a tenant and vacates their room
func (s *OwnerService) RemoveTenant(ctx context.Context, id string) error {
	return s.tenants.Remove(ctx, id)
}

// AddRoom creates or replaces a room
func (s *OwnerService) AddRoom(ctx context.Context, input CreateRoomInput) (*domain.Room, error) {
	return s.rooms.Create(ctx, input)
}

// AssignRoom puts a tenant in a vacant room
func (s *OwnerService) AssignRoom(ctx context.Context, roomID, tenantID string) error {
	return s.rooms.Assign(ctx, roomID, tenantID)
}

// ============================================================
// Ledgers
// ============================================================

// GenerateBulkPayments appends months payment records to the ledger of every
// tenant with a room, in registration order. Record i is due i months after
// start and is identified as {tenantID}-M{i+1}. Tenants without a room are skipped.
func (s *OwnerService) GenerateBulkPayments(ctx context.Context, months int, start time.Time) (*BulkResult, error) {
	result := &BulkResult{Mode: s.BillingMode(), Months: months, StartDate: start}
	if months <= 0 {
		return result, nil
	}

	err := s.store.Update(ctx, func(tx *repositories.Tx) error {
		result.TenantsBilled, result.TenantsSkipped, result.Payments = 0, 0, 0

		tenants, err := tx.Tenants.List(ctx)
		if err != nil {
			return err
		}

		for _, tenant := range tenants {
			if !tenant.HasRoom() {
				result.TenantsSkipped++
				continue
			}

			room, err := tx.Rooms.GetByID(ctx, tenant.RoomID)
			if err != nil {
				return fmt.Errorf("bill tenant %s: %w", tenant.ID, err)
			}

			amount := billingAmount(result.Mode, tenant, room)
			due := start
			for i := 0; i < months; i++ {
				tenant.Ledger.Record(domain.NewPayment(fmt.Sprintf("%s-M%d", tenant.ID, i+1), amount, due))
				due = nextMonth(due)
			}

			if err := tx.Tenants.Update(ctx, tenant); err != nil {
				return err
			}
			result.TenantsBilled++
			result.Payments += months
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordPaymentsGenerated("bulk", result.Payments)
	s.log.Info("bulk payments generated",
		zap.String("mode", string(result.Mode)),
		zap.Int("months", months),
		zap.Time("start", start),
		zap.Int("tenants_billed", result.TenantsBilled),
		zap.Int("payments", result.Payments),
	)
	return result, nil
}

// RecordPayment appends one payment to a tenant's ledger
func (s *OwnerService) RecordPayment(ctx context.Context, tenantID string, input RecordPaymentInput) (domain.Payment, error) {
	if input.Amount.IsNegative() {
		return domain.Payment{}, domainErrorf(domain.ErrInvalidInput, "amount must not be negative")
	}

	id := input.ID
	if id == "" {
		id = uuid.New().String()
	}
	payment := domain.NewPayment(id, input.Amount, input.DueDate)

	err := s.tenants.modify(ctx, tenantID, func(t *domain.Tenant) error {
		t.Ledger.Record(payment)
		return nil
	})
	if err != nil {
		return domain.Payment{}, err
	}

	metrics.RecordPaymentsGenerated("manual", 1)
	s.log.Info("payment recorded", zap.String("tenant_id", tenantID), zap.String("payment_id", id))
	return payment, nil
}

// MarkPaid settles a payment in a tenant's ledger
func (s *OwnerService) MarkPaid(ctx context.Context, tenantID, paymentID string) error {
	err := s.tenants.modify(ctx, tenantID, func(t *domain.Tenant) error {
		return t.Ledger.MarkPaid(paymentID)
	})
	if err != nil {
		return err
	}

	s.log.Info("payment settled", zap.String("tenant_id", tenantID), zap.String("payment_id", paymentID))
	return nil
}

// PaymentHistory returns a tenant's payments in insertion order
func (s *OwnerService) PaymentHistory(ctx context.Context, tenantID string) ([]domain.Payment, error) {
	tenant, err := s.tenants.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return tenant.Ledger.History(), nil
}

// ============================================================
// Reports
// ============================================================

// Report is the occupancy summary
type Report struct {
	TotalTenants     int     `json:"total_tenants"`
	TotalRooms       int     `json:"total_rooms"`
	OccupiedRooms    int     `json:"occupied_rooms"`
	VacantRooms      int     `json:"vacant_rooms"`
	OccupancyRate    float64 `json:"occupancy_rate"`
	OccupancyPercent int     `json:"occupancy_percent"`
}

// RentSuggestion compares a room's rent with the optimizer's price
type RentSuggestion struct {
	RoomID        string             `json:"room_id"`
	SharingType   domain.SharingType `json:"sharing_type"`
	CurrentRent   decimal.Decimal    `json:"current_rent"`
	SuggestedRent decimal.Decimal    `json:"suggested_rent"`
	ChangePercent decimal.Decimal    `json:"change_percent"`
}

// RentReport lists suggestions ordered Single, Double, Triple, Four
type RentReport struct {
	OccupancyRate float64           `json:"occupancy_rate"`
	Suggestions   []*RentSuggestion `json:"suggestions"`
}

// Report builds the occupancy summary from one snapshot
func (s *OwnerService) Report(ctx context.Context) (*Report, error) {
	report := &Report{}

	err := s.store.View(ctx, func(tx *repositories.Tx) error {
		n, err := tx.Tenants.Count(ctx)
		if err != nil {
			return err
		}

		rooms, err := tx.Rooms.List(ctx)
		if err != nil {
			return err
		}

		report.TotalTenants = n
		report.TotalRooms = len(rooms)
		report.OccupiedRooms = countOccupied(rooms)
		report.VacantRooms = report.TotalRooms - report.OccupiedRooms
		report.OccupancyRate = occupancyRate(rooms)
		if report.TotalRooms > 0 {
			report.OccupancyPercent = report.OccupiedRooms * 100 / report.TotalRooms
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.SetOccupancyRate(report.OccupancyRate)
	return report, nil
}

// RentSuggestions prices every room at the current occupancy rate
func (s *OwnerService) RentSuggestions(ctx context.Context) (*RentReport, error) {
	rooms, err := s.rooms.List(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(rooms, func(i, j int) bool {
		return rooms[i].SharingType.Rank() < rooms[j].SharingType.Rank()
	})

	report := &RentReport{
		OccupancyRate: occupancyRate(rooms),
		Suggestions:   make([]*RentSuggestion, 0, len(rooms)),
	}

	for _, room := range rooms {
		suggested, err := SuggestRent(room, report.OccupancyRate)
		if err != nil {
			return nil, fmt.Errorf("price room %s: %w", room.ID, err)
		}

		report.Suggestions = append(report.Suggestions, &RentSuggestion{
			RoomID:        room.ID,
			SharingType:   room.SharingType,
			CurrentRent:   room.BaseRent,
			SuggestedRent: suggested,
			ChangePercent: changePercent(room.BaseRent, suggested),
		})
	}
	return report, nil
}
