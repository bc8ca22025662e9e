package config

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pghive/internal/core/domain"
	"pghive/internal/core/services"
	"pghive/internal/pkg/logger"
)

// Seeder loads the demo building
type Seeder struct {
	owner *services.OwnerService
	log   *zap.Logger
}

// NewSeeder creates a new seeder instance
func NewSeeder(owner *services.OwnerService) *Seeder {
	return &Seeder{owner: owner, log: logger.Named("seeder")}
}

// SampleRooms are the demo rooms R101-R104
var SampleRooms = []services.CreateRoomInput{
	{ID: "R101", BaseRent: decimal.NewFromInt(6000), SizeSqft: 180, AmenityScore: 7, SharingType: string(domain.SharingSingle)},
	{ID: "R102", BaseRent: decimal.NewFromInt(4500), SizeSqft: 220, AmenityScore: 6, SharingType: string(domain.SharingDouble)},
	{ID: "R103", BaseRent: decimal.NewFromInt(3500), SizeSqft: 250, AmenityScore: 5, SharingType: string(domain.SharingTriple)},
	{ID: "R104", BaseRent: decimal.NewFromInt(3000), SizeSqft: 300, AmenityScore: 4, SharingType: string(domain.SharingFour)},
}

// SampleTenants are the demo tenants. The first one moves into R101.
var SampleTenants = []services.CreateTenantInput{
	{ID: "T001", Name: "John Doe", Email: "john@example.com", Password: "password123", Contact: "9876543210"},
	{ID: "T002", Name: "Jane Smith", Email: "jane@example.com", Password: "password456", Contact: "8765432109"},
}

// Run executes all seeders
func (s *Seeder) Run(ctx context.Context) error {
	s.log.Info("🌱 Seeding sample data...")

	if err := s.seedRooms(ctx); err != nil {
		return err
	}
	if err := s.seedTenants(ctx); err != nil {
		return err
	}

	s.log.Info("✅ Seeding completed",
		zap.Int("rooms", len(SampleRooms)),
		zap.Int("tenants", len(SampleTenants)),
	)
	return nil
}

func (s *Seeder) seedRooms(ctx context.Context) error {
	for _, input := range SampleRooms {
		if _, err := s.owner.AddRoom(ctx, input); err != nil {
			return fmt.Errorf("seed room %s: %w", input.ID, err)
		}
	}
	return nil
}

func (s *Seeder) seedTenants(ctx context.Context) error {
	for _, input := range SampleTenants {
		if _, err := s.owner.CreateTenant(ctx, input); err != nil {
			return fmt.Errorf("seed tenant %s: %w", input.ID, err)
		}
	}

	return s.owner.AssignRoom(ctx, SampleRooms[0].ID, SampleTenants[0].ID)
}
