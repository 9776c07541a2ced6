package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jwalitptl/clinic-desk/internal/service/auth"
	"github.com/jwalitptl/clinic-desk/internal/service/booking"
	"github.com/jwalitptl/clinic-desk/internal/service/directory"
	"github.com/jwalitptl/clinic-desk/pkg/logger"
)

// SecretReader reads a credential without echoing it. The default reader
// falls back to a plain line read, which tests rely on.
type SecretReader func() (string, error)

// CLI drives the interactive menus. All input flows through one scanner so
// scripted input in tests behaves exactly like a terminal session.
type CLI struct {
	in         *bufio.Scanner
	out        io.Writer
	auth       *auth.Service
	directory  *directory.Service
	booking    *booking.Service
	logger     *logger.Logger
	readSecret SecretReader
}

type Option func(*CLI)

// WithSecretReader replaces the plain-echo credential reader, e.g. with a
// terminal no-echo read.
func WithSecretReader(fn SecretReader) Option {
	return func(c *CLI) {
		c.readSecret = fn
	}
}

func New(in io.Reader, out io.Writer, authSvc *auth.Service, dirSvc *directory.Service, bookingSvc *booking.Service, log *logger.Logger, opts ...Option) *CLI {
	c := &CLI{
		in:        bufio.NewScanner(in),
		out:       out,
		auth:      authSvc,
		directory: dirSvc,
		booking:   bookingSvc,
		logger:    log,
	}
	c.readSecret = c.readLine
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run starts the outer menu and blocks until the operator exits or input
// ends.
func (c *CLI) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, "  ==== CLINIC DESK ====")
		fmt.Fprintln(c.out, "  1. Login (Admin)")
		fmt.Fprintln(c.out, "  2. Register (New Admin)")
		fmt.Fprintln(c.out, "  3. Exit")

		choice, err := c.promptInt("  Select option: ")
		if err != nil {
			return c.finish(err)
		}

		switch choice {
		case 1:
			if err := c.login(ctx); err != nil {
				return c.finish(err)
			}
		case 2:
			if err := c.signup(ctx); err != nil {
				return c.finish(err)
			}
		case 3:
			fmt.Fprintln(c.out, "  Exiting. Goodbye!")
			return nil
		default:
			fmt.Fprintln(c.out, "  [!] Invalid choice.")
		}
	}
}

// finish maps end-of-input to a clean exit so piped sessions terminate
// without an error.
func (c *CLI) finish(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (c *CLI) login(ctx context.Context) error {
	id, err := c.promptLine("  User ID: ")
	if err != nil {
		return err
	}
	fmt.Fprint(c.out, "  Password: ")
	password, err := c.readSecret()
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out)

	session, err := c.auth.Login(ctx, id, password)
	if err != nil {
		c.reportError(err)
		return nil
	}

	fmt.Fprintf(c.out, "  Welcome, %s.\n", session.AdminID)
	return c.mainMenu(ctx)
}

func (c *CLI) signup(ctx context.Context) error {
	id, err := c.promptLine("  New admin ID: ")
	if err != nil {
		return err
	}
	fmt.Fprint(c.out, "  Password: ")
	password, err := c.readSecret()
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out)

	if err := c.auth.Signup(ctx, id, password); err != nil {
		c.reportError(err)
		return nil
	}

	fmt.Fprintln(c.out, "  [Success] New admin registered.")
	return nil
}

// reportError prints a failure and returns control to the menu. Nothing
// here is fatal to the process.
func (c *CLI) reportError(err error) {
	fmt.Fprintf(c.out, "  [Error] %s\n", err)
}
