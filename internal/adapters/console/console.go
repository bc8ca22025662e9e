// Package console is the interactive menu front end of the building.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"pghive/internal/core/domain"
	"pghive/internal/core/services"
)

const dateLayout = "2006-01-02"

// Console drives the owner and tenant menus over a line-oriented stream
type Console struct {
	owner *services.OwnerService
	auth  *services.AuthService
	in    *bufio.Scanner
	out   io.Writer
	now   func() time.Time
	log   *zap.Logger
}

// Option configures a Console
type Option func(*Console)

// WithClock replaces time.Now, used for "today" fallbacks
func WithClock(now func() time.Time) Option {
	return func(c *Console) {
		c.now = now
	}
}

// New creates a new console. Logins go through auth, which needs no
// token secret here.
func New(owner *services.OwnerService, auth *services.AuthService, in io.Reader, out io.Writer, log *zap.Logger, opts ...Option) *Console {
	c := &Console{
		owner: owner,
		auth:  auth,
		in:    bufio.NewScanner(in),
		out:   out,
		now:   time.Now,
		log:   log.Named("console"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run shows the main menu until Exit is chosen or input ends
func (c *Console) Run(ctx context.Context) error {
	c.log.Debug("console started")

	err := c.mainMenu(ctx)
	if errors.Is(err, io.EOF) {
		c.log.Debug("input closed")
		return nil
	}
	if err != nil {
		c.log.Error("console stopped", zap.Error(err))
	}
	return err
}

func (c *Console) mainMenu(ctx context.Context) error {
	for {
		c.println("\n=== PG MANAGEMENT SYSTEM ===")
		c.println("1. Owner Login")
		c.println("2. Tenant Login")
		c.println("3. Exit")

		choice, err := c.ask("Select option: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = c.ownerLogin(ctx)
		case "2":
			err = c.tenantLogin(ctx)
		case "3":
			c.println("Exiting system... Goodbye!")
			return nil
		default:
			c.println("Invalid choice!")
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) ownerLogin(ctx context.Context) error {
	c.println("\n--- OWNER LOGIN ---")
	email, password, err := c.credentials()
	if err != nil {
		return err
	}

	result, err := c.auth.OwnerLogin(ctx, email, password)
	var loginErr *services.LoginError
	switch {
	case errors.Is(err, domain.ErrAuthLocked):
		c.println("Account locked. Too many failed attempts.")
		return nil
	case errors.As(err, &loginErr):
		c.printf("Invalid credentials! Attempts left: %d\n", loginErr.Remaining)
		return nil
	case err != nil:
		return err
	}

	c.println("Login successful!")
	return c.ownerMenu(ctx, result.Session())
}

func (c *Console) tenantLogin(ctx context.Context) error {
	c.println("\n--- TENANT LOGIN ---")
	email, password, err := c.credentials()
	if err != nil {
		return err
	}

	result, err := c.auth.TenantLogin(ctx, email, password)
	var loginErr *services.LoginError
	switch {
	case errors.Is(err, domain.ErrTenantNotFound):
		c.println("Tenant not found! Please check your email or contact the owner.")
		return nil
	case errors.Is(err, domain.ErrAuthLocked):
		c.println("Account locked. Too many failed attempts.")
		return nil
	case errors.As(err, &loginErr):
		c.printf("Invalid credentials! Attempts left: %d\n", loginErr.Remaining)
		return nil
	case err != nil:
		return err
	}

	c.println("Login successful!")
	return c.tenantMenu(ctx, result.Session())
}

func (c *Console) credentials() (string, string, error) {
	email, err := c.ask("Email: ")
	if err != nil {
		return "", "", err
	}
	password, err := c.ask("Password: ")
	if err != nil {
		return "", "", err
	}
	return email, password, nil
}

// ============================================================
// I/O helpers
// ============================================================

// ask prints a prompt and reads one trimmed line, io.EOF when input ends
func (c *Console) ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// askDate reads an optional date. Empty input means no date; anything
// unparseable falls back to today with a warning.
func (c *Console) askDate(prompt string) (*time.Time, error) {
	raw, err := c.ask(prompt)
	if err != nil || raw == "" {
		return nil, err
	}
	d := c.parseDate(raw)
	return &d, nil
}

func (c *Console) parseDate(raw string) time.Time {
	d, err := time.Parse(dateLayout, raw)
	if err != nil {
		c.println("Invalid date format. Using today's date.")
		now := c.now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	return d
}

func (c *Console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

func rupees(d decimal.Decimal) string {
	return "₹" + d.StringFixed(2)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format(dateLayout)
}
