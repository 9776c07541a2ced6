package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jwalitptl/clinic-desk/internal/model"
	"github.com/jwalitptl/clinic-desk/internal/repository"
	apperrors "github.com/jwalitptl/clinic-desk/pkg/errors"
	"github.com/jwalitptl/clinic-desk/pkg/logger"
)

// Service handles admin signup and login. Passwords are stored and
// compared as plain text; hardening the credential store is out of scope.
type Service struct {
	admins repository.AdminRepository
	logger *logger.Logger
}

func NewService(admins repository.AdminRepository, log *logger.Logger) *Service {
	return &Service{admins: admins, logger: log}
}

// Signup registers a new admin account. The ID must not already exist.
// IDs and passwords are space-delimited on disk, so neither may contain
// whitespace.
func (s *Service) Signup(ctx context.Context, id, password string) error {
	if id == "" || strings.ContainsAny(id, " \t") {
		return apperrors.Validation("ID", "admin ID must be non-empty and contain no spaces")
	}
	if password == "" || strings.ContainsAny(password, " \t") {
		return apperrors.Validation("Password", "password must be non-empty and contain no spaces")
	}

	existing, err := s.admins.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check existing accounts: %w", err)
	}
	if existing != nil {
		return apperrors.DuplicateAdminID(id)
	}

	if err := s.admins.Create(ctx, &model.Admin{ID: id, Password: password}); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	s.logger.Info("admin registered", "admin_id", id)
	return nil
}

// Login checks the credentials against the account collection and opens a
// session on success.
func (s *Service) Login(ctx context.Context, id, password string) (*model.Session, error) {
	admin, err := s.admins.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to read accounts: %w", err)
	}
	if admin == nil || admin.Password != password {
		s.logger.Warn("login failed", "admin_id", id)
		return nil, apperrors.InvalidCredentials()
	}

	session := &model.Session{
		ID:        uuid.New(),
		AdminID:   admin.ID,
		StartedAt: time.Now(),
	}
	s.logger.Info("login succeeded",
		"admin_id", admin.ID,
		"session_id", session.ID.String(),
	)
	return session, nil
}
