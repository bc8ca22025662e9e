package console

import (
	"context"
	"errors"

	"pghive/internal/core/domain"
	"pghive/internal/core/services"
)

func (c *Console) tenantMenu(ctx context.Context, session services.Session) error {
	for {
		c.println("\n=== TENANT DASHBOARD ===")
		c.println("1. View My Details")
		c.println("2. View Rent History")
		c.println("3. Upload Document")
		c.println("4. View Documents")
		c.println("5. Change Password")
		c.println("6. Logout")

		choice, err := c.ask("Select option: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = c.showDetails(ctx, session.AccountID)
		case "2":
			err = c.showRentHistory(ctx, session.AccountID)
		case "3":
			err = c.uploadDocument(ctx, session.AccountID)
		case "4":
			err = c.showDocuments(ctx, session.AccountID)
		case "5":
			err = c.changePassword(ctx, session)
		case "6":
			return c.logout(ctx, session)
		default:
			c.println("Invalid choice!")
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) showDetails(ctx context.Context, tenantID string) error {
	tenant, err := c.owner.Tenants().FindByID(ctx, tenantID)
	if err != nil {
		return err
	}

	c.println("\n--- MY DETAILS ---")
	c.println("ID: " + tenant.ID)
	c.println("Name: " + tenant.Name)
	c.println("Email: " + tenant.Email)
	c.println("Contact: " + tenant.Contact)

	if !tenant.HasRoom() {
		c.println("Room: Not assigned")
	} else {
		room, err := c.owner.Rooms().Find(ctx, tenant.RoomID)
		if err != nil && !errors.Is(err, domain.ErrRoomNotFound) {
			return err
		}
		c.println("Room: " + tenant.RoomID)
		if room != nil {
			c.printf("Rent per %d days: %s\n", tenant.Cadence.PeriodDays(), rupees(tenant.PeriodAmount(room)))
		}
	}

	c.printf("Payment Type: %s\n", tenant.Cadence)
	c.println("Move-in Date: " + formatDate(tenant.MoveInDate))
	c.println("Move-out Date: " + formatDate(tenant.MoveOutDate))
	return nil
}

func (c *Console) showRentHistory(ctx context.Context, tenantID string) error {
	payments, err := c.owner.PaymentHistory(ctx, tenantID)
	if err != nil {
		return err
	}

	c.println("\n--- RENT HISTORY ---")
	if len(payments) == 0 {
		c.println("No payment records found.")
		return nil
	}

	for _, p := range payments {
		c.printf("Payment ID: %s | Amount: %s | Due Date: %s | Status: %s\n",
			p.ID, rupees(p.Amount), p.DueDate.Format(dateLayout), p.Status())
	}
	return nil
}

func (c *Console) uploadDocument(ctx context.Context, tenantID string) error {
	name, err := c.ask("\nEnter document name to upload: ")
	if err != nil {
		return err
	}

	added, err := c.owner.Tenants().UploadDocument(ctx, tenantID, name)
	if err != nil {
		return c.report(err)
	}
	if !added {
		c.println("Document already uploaded: " + name)
		return nil
	}
	c.println("Document uploaded: " + name)
	return nil
}

func (c *Console) showDocuments(ctx context.Context, tenantID string) error {
	docs, err := c.owner.Tenants().Documents(ctx, tenantID)
	if err != nil {
		return err
	}

	c.println("\n--- MY DOCUMENTS ---")
	if len(docs) == 0 {
		c.println("No documents uploaded.")
		return nil
	}
	for _, doc := range docs {
		c.println("- " + doc)
	}
	return nil
}
