package console

import (
	"context"
	"errors"
	"strconv"

	"github.com/shopspring/decimal"

	"pghive/internal/core/domain"
	"pghive/internal/core/services"
)

var ownerOptions = []string{
	"Add Tenant",
	"Edit Tenant",
	"Delete Tenant",
	"Add Room",
	"Assign Room",
	"View All Tenants",
	"View All Rooms",
	"Generate Reports",
	"Generate Bulk Payments",
	"Change Password",
	"Optimize Rent Prices",
	"Logout",
}

func (c *Console) ownerMenu(ctx context.Context, session services.Session) error {
	actions := map[string]func(context.Context) error{
		"1":  c.addTenant,
		"2":  c.editTenant,
		"3":  c.deleteTenant,
		"4":  c.addRoom,
		"5":  c.assignRoom,
		"6":  c.listTenants,
		"7":  c.listRooms,
		"8":  c.showReport,
		"9":  c.bulkPayments,
		"10": func(ctx context.Context) error { return c.changePassword(ctx, session) },
		"11": c.optimizeRent,
	}

	for {
		c.println("\n=== OWNER DASHBOARD ===")
		for i, opt := range ownerOptions {
			c.printf("%d. %s\n", i+1, opt)
		}

		choice, err := c.ask("Select option: ")
		if err != nil {
			return err
		}

		if choice == "12" {
			return c.logout(ctx, session)
		}

		action, ok := actions[choice]
		if !ok {
			c.println("Invalid choice!")
			continue
		}
		if err := action(ctx); err != nil {
			return err
		}
	}
}

func (c *Console) addTenant(ctx context.Context) error {
	c.println("\n--- Add New Tenant ---")

	var input services.CreateTenantInput
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter Tenant ID: ", &input.ID},
		{"Enter Name: ", &input.Name},
		{"Enter Email: ", &input.Email},
		{"Enter Password: ", &input.Password},
		{"Enter Contact: ", &input.Contact},
	}
	for _, f := range fields {
		v, err := c.ask(f.prompt)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	var err error
	if input.MoveInDate, err = c.askDate("Enter Move-in Date (yyyy-mm-dd): "); err != nil {
		return err
	}
	if input.MoveOutDate, err = c.askDate("Enter Move-out Date (yyyy-mm-dd): "); err != nil {
		return err
	}

	c.println("\nSelect Tenant Type:")
	for i, cadence := range domain.Cadences {
		c.printf("%d. %s (%d days)\n", i+1, cadence, cadence.PeriodDays())
	}
	choice, err := c.ask("Enter choice (1-6): ")
	if err != nil {
		return err
	}
	if n, convErr := strconv.Atoi(choice); convErr != nil || n < 1 || n > len(domain.Cadences) {
		c.println("Invalid choice! Creating default tenant type.")
	}
	input.Cadence = choice

	if _, err := c.owner.CreateTenant(ctx, input); err != nil {
		return c.report(err)
	}
	c.println("Tenant added successfully!")
	return nil
}

func (c *Console) editTenant(ctx context.Context) error {
	c.println("\n--- Edit Tenant ---")

	id, err := c.ask("Enter Tenant ID to edit: ")
	if err != nil {
		return err
	}

	var input services.EditTenantInput
	if input.Name, err = c.ask("Enter New Name: "); err != nil {
		return err
	}
	if input.Contact, err = c.ask("Enter New Contact: "); err != nil {
		return err
	}
	if input.MoveInDate, err = c.askDate("Enter New Move-in Date (yyyy-mm-dd): "); err != nil {
		return err
	}
	if input.MoveOutDate, err = c.askDate("Enter New Move-out Date (yyyy-mm-dd): "); err != nil {
		return err
	}

	if err := c.owner.EditTenant(ctx, id, input); err != nil {
		return c.report(err)
	}
	c.println("Tenant details updated.")
	return nil
}

func (c *Console) deleteTenant(ctx context.Context) error {
	c.println("\n--- Delete Tenant ---")

	id, err := c.ask("Enter Tenant ID to delete: ")
	if err != nil {
		return err
	}

	if err := c.owner.RemoveTenant(ctx, id); err != nil {
		return c.report(err)
	}
	c.println("Tenant deleted successfully.")
	return nil
}

func (c *Console) addRoom(ctx context.Context) error {
	c.println("\n--- Add New Room ---")

	var input services.CreateRoomInput
	var err error
	if input.ID, err = c.ask("Enter Room ID: "); err != nil {
		return err
	}

	raw, err := c.ask("Enter Base Rent: ")
	if err != nil {
		return err
	}
	if input.BaseRent, err = decimal.NewFromString(raw); err != nil {
		c.println("Error: rent must be a number")
		return nil
	}

	if raw, err = c.ask("Enter Size (sqft): "); err != nil {
		return err
	}
	if input.SizeSqft, err = strconv.ParseFloat(raw, 64); err != nil {
		c.println("Error: size must be a number")
		return nil
	}

	if raw, err = c.ask("Enter Amenity Score (1-10): "); err != nil {
		return err
	}
	if input.AmenityScore, err = strconv.Atoi(raw); err != nil {
		c.println("Error: amenity score must be a whole number")
		return nil
	}

	if input.SharingType, err = c.ask("Enter Sharing Type (Single/Double/Triple/Four): "); err != nil {
		return err
	}

	if _, err := c.owner.AddRoom(ctx, input); err != nil {
		return c.report(err)
	}
	c.println("Room added successfully!")
	return nil
}

func (c *Console) assignRoom(ctx context.Context) error {
	c.println("\n--- Assign Room ---")

	roomID, err := c.ask("Enter Room ID: ")
	if err != nil {
		return err
	}
	tenantID, err := c.ask("Enter Tenant ID: ")
	if err != nil {
		return err
	}

	if err := c.owner.AssignRoom(ctx, roomID, tenantID); err != nil {
		return c.report(err)
	}
	c.println("Room assigned successfully!")
	return nil
}

func (c *Console) listTenants(ctx context.Context) error {
	c.println("\n--- All Tenants ---")

	tenants, err := c.owner.Tenants().List(ctx)
	if err != nil {
		return err
	}
	if len(tenants) == 0 {
		c.println("No tenants found.")
		return nil
	}

	for _, t := range tenants {
		room := "Not assigned"
		if t.HasRoom() {
			room = t.RoomID
		}
		c.printf("ID: %s | Name: %s | Email: %s | Room: %s | Type: %s (%d days)\n",
			t.ID, t.Name, t.Email, room, t.Cadence, t.Cadence.PeriodDays())
	}
	return nil
}

func (c *Console) listRooms(ctx context.Context) error {
	c.println("\n--- All Rooms ---")

	rooms, err := c.owner.Rooms().List(ctx)
	if err != nil {
		return err
	}
	if len(rooms) == 0 {
		c.println("No rooms found.")
		return nil
	}

	for _, r := range rooms {
		status := "Vacant"
		if r.Occupied {
			status = "Occupied by " + r.TenantID
		}
		c.printf("Room ID: %s | Rent: %s | Type: %s | Size: %g sqft | Amenities: %d/10 | Status: %s\n",
			r.ID, rupees(r.BaseRent), r.SharingType, r.SizeSqft, r.AmenityScore, status)
	}
	return nil
}

func (c *Console) showReport(ctx context.Context) error {
	report, err := c.owner.Report(ctx)
	if err != nil {
		return err
	}

	c.println("\n--- PG STATUS REPORT ---")
	c.printf("Total Tenants: %d\n", report.TotalTenants)
	c.printf("Total Rooms: %d\n", report.TotalRooms)
	c.printf("Occupied Rooms: %d\n", report.OccupiedRooms)
	c.printf("Vacant Rooms: %d\n", report.VacantRooms)
	c.printf("Occupancy Rate: %d%%\n", report.OccupancyPercent)
	return nil
}

func (c *Console) bulkPayments(ctx context.Context) error {
	c.println("\n--- Generate Bulk Payments ---")

	raw, err := c.ask("Enter number of months to generate payments: ")
	if err != nil {
		return err
	}
	months, convErr := strconv.Atoi(raw)
	if convErr != nil {
		c.println("Error: months must be a whole number")
		return nil
	}

	rawDate, err := c.ask("Enter Start Date (yyyy-mm-dd): ")
	if err != nil {
		return err
	}
	start := c.parseDate(rawDate)

	result, err := c.owner.GenerateBulkPayments(ctx, months, start)
	if err != nil {
		return c.report(err)
	}
	c.printf("Payment records generated for all tenants. (%d payments, %d tenants, %s billing)\n",
		result.Payments, result.TenantsBilled, result.Mode)
	return nil
}

func (c *Console) optimizeRent(ctx context.Context) error {
	report, err := c.owner.RentSuggestions(ctx)
	if err != nil {
		return err
	}

	c.println("\n=== RENT OPTIMIZATION REPORT ===")
	c.printf("Current Occupancy: %.0f%%\n", report.OccupancyRate*100)
	c.println("Sharing Type | Room | Current Rent | Suggested Rent | Change")
	c.println("----------------------------------------------------------")
	for _, s := range report.Suggestions {
		c.printf("%-12s | %-4s | %12s | %14s | %s%%\n",
			s.SharingType, s.RoomID, rupees(s.CurrentRent), rupees(s.SuggestedRent), s.ChangePercent)
	}
	return nil
}

func (c *Console) changePassword(ctx context.Context, session services.Session) error {
	c.println("\n--- Change Password ---")

	current, err := c.ask("Enter current password: ")
	if err != nil {
		return err
	}
	next, err := c.ask("Enter new password: ")
	if err != nil {
		return err
	}

	if err := c.auth.ChangePassword(ctx, session, current, next); err != nil {
		if errors.Is(err, domain.ErrPasswordMismatch) {
			c.println("Current password incorrect!")
			return nil
		}
		return c.report(err)
	}
	c.println("Password changed successfully!")
	return nil
}

func (c *Console) logout(ctx context.Context, session services.Session) error {
	if err := c.auth.Logout(ctx, session); err != nil {
		return err
	}
	c.println("Logged out successfully.")
	return nil
}

// report prints a domain error and keeps the menu running.
// Anything else is returned to stop the console.
func (c *Console) report(err error) error {
	for _, known := range []error{
		domain.ErrInvalidRoom,
		domain.ErrRoomNotFound,
		domain.ErrAlreadyOccupied,
		domain.ErrTenantNotFound,
		domain.ErrPaymentNotFound,
		domain.ErrInvalidInput,
		domain.ErrInvalidArgument,
		domain.ErrDuplicateEntry,
	} {
		if errors.Is(err, known) {
			c.println("Error: " + err.Error())
			return nil
		}
	}
	return err
}
