package services

import (
	"context"
	"sort"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pghive/internal/pkg/metrics"
)

// ============================================================
// Payment reminders: unpaid dues inside the lookahead window
// ============================================================

// DefaultReminderSchedule runs the scan every day at 08:30
const DefaultReminderSchedule = "30 8 * * *"

// Reminder is one unpaid payment that needs the tenant's attention
type Reminder struct {
	TenantID   string          `json:"tenant_id"`
	TenantName string          `json:"tenant_name"`
	RoomID     string          `json:"room_id,omitempty"`
	PaymentID  string          `json:"payment_id"`
	Amount     decimal.Decimal `json:"amount"`
	DueDate    time.Time       `json:"due_date"`
	Overdue    bool            `json:"overdue"`
}

// ReminderService scans ledgers on a cron schedule
type ReminderService struct {
	owner     *OwnerService
	schedule  string
	lookahead int
	cron      *cron.Cron
	log       *zap.Logger
}

// NewReminderService creates a new reminder service
func NewReminderService(owner *OwnerService, schedule string, lookaheadDays int, log *zap.Logger) *ReminderService {
	if schedule == "" {
		schedule = DefaultReminderSchedule
	}
	if lookaheadDays < 0 {
		lookaheadDays = 0
	}

	return &ReminderService{
		owner:     owner,
		schedule:  schedule,
		lookahead: lookaheadDays,
		log:       log.Named("reminders"),
	}
}

// Start registers the scan with cron and starts the scheduler
func (s *ReminderService) Start() error {
	c := cron.New()
	if _, err := c.AddFunc(s.schedule, func() {
		if _, err := s.RunOnce(context.Background(), time.Now()); err != nil {
			s.log.Error("reminder scan failed", zap.Error(err))
		}
	}); err != nil {
		return err
	}

	c.Start()
	s.cron = c
	s.log.Info("🚀 ReminderService started", zap.String("schedule", s.schedule), zap.Int("lookahead_days", s.lookahead))
	return nil
}

// Stop stops the scheduler and waits for a running scan to finish
func (s *ReminderService) Stop() {
	if s.cron == nil {
		return
	}
	<-s.cron.Stop().Done()
	s.log.Info("🛑 ReminderService stopped")
}

// RunOnce lists unpaid payments due on or before now plus the lookahead,
// ordered by due date, and refreshes the dues and occupancy gauges.
func (s *ReminderService) RunOnce(ctx context.Context, now time.Time) ([]Reminder, error) {
	tenants, err := s.owner.Tenants().List(ctx)
	if err != nil {
		return nil, err
	}

	horizon := now.AddDate(0, 0, s.lookahead)
	outstanding := decimal.Zero
	reminders := []Reminder{}

	for _, tenant := range tenants {
		outstanding = outstanding.Add(tenant.Ledger.Outstanding())

		for _, p := range tenant.Ledger.History() {
			if p.Paid || p.DueDate.After(horizon) {
				continue
			}
			reminders = append(reminders, Reminder{
				TenantID:   tenant.ID,
				TenantName: tenant.Name,
				RoomID:     tenant.RoomID,
				PaymentID:  p.ID,
				Amount:     p.Amount,
				DueDate:    p.DueDate,
				Overdue:    p.DueDate.Before(now),
			})
		}
	}

	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].DueDate.Before(reminders[j].DueDate)
	})

	for _, r := range reminders {
		s.log.Info("payment reminder",
			zap.String("tenant_id", r.TenantID),
			zap.String("payment_id", r.PaymentID),
			zap.String("amount", r.Amount.StringFixed(2)),
			zap.Time("due_date", r.DueDate),
			zap.Bool("overdue", r.Overdue),
		)
	}
	metrics.RemindersCounter.Add(float64(len(reminders)))

	total, _ := outstanding.Float64()
	metrics.SetOutstandingDues(total)
	if _, err := s.owner.Rooms().OccupancyRate(ctx); err != nil {
		return nil, err
	}

	return reminders, nil
}
