package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/agi-health/medfleet/internal/fleet/domain"
	"github.com/agi-health/medfleet/internal/fleet/store"
	"github.com/agi-health/medfleet/pkg/cryptox"
	"github.com/agi-health/medfleet/pkg/idx"
	"github.com/agi-health/medfleet/pkg/jwtx"
	"github.com/agi-health/medfleet/pkg/slogx"
)

const minPasswordLength = 6

type AuthService struct {
	Store      store.Store
	KeyManager *jwtx.KeyManager
	Audit      *AuditRecorder
	Issuer     string
	AccessTTL  time.Duration
}

type RegisterParams struct {
	Name           string
	Email          string
	Password       string
	OrganizationID string
}

// Register creates a user in the given organization with the default
// hospital_user role (read_only when that is missing) and returns a signed
// access token. Email uniqueness is enforced by the store.
func (s *AuthService) Register(ctx context.Context, p RegisterParams) (string, error) {
	l := slogx.FromContext(ctx)

	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(strings.ToLower(p.Email))

	var violations []FieldViolation
	if p.Name == "" {
		violations = append(violations, FieldViolation{Msg: "Name is required", Param: "name"})
	}
	if _, err := mail.ParseAddress(p.Email); err != nil {
		violations = append(violations, FieldViolation{Msg: "Please include a valid email", Param: "email"})
	}
	if len(p.Password) < minPasswordLength {
		violations = append(violations, FieldViolation{Msg: "Please enter a password with 6 or more characters", Param: "password"})
	}
	if p.OrganizationID == "" {
		violations = append(violations, FieldViolation{Msg: "Organization ID is required", Param: "organization_id"})
	}
	if len(violations) > 0 {
		return "", &ValidationError{Violations: violations}
	}

	if _, err := s.Store.Organizations().GetOrganizationByID(ctx, p.OrganizationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", Invalid("Organization not found", "organization_id")
		}
		return "", err
	}

	role, err := s.defaultRole(ctx)
	if err != nil {
		return "", err
	}

	hash, err := cryptox.HashPassword(p.Password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:             idx.New().String(),
		Name:           p.Name,
		Email:          p.Email,
		PasswordHash:   hash,
		OrganizationID: p.OrganizationID,
		RoleID:         role.ID,
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return "", Invalid("User already exists", "email")
		}
		return "", err
	}

	l.Info("user registered", "user_id", user.ID, "org_id", user.OrganizationID, "role", role.Name)
	s.Audit.Record(Identity{UserID: user.ID, OrgID: user.OrganizationID, Role: role.Name},
		domain.ActionUserRegistered, domain.TargetUser, user.ID, map[string]any{"email": user.Email})

	return s.mint(user, role)
}

// Login verifies the password and returns a signed access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	l := slogx.FromContext(ctx)

	email = strings.TrimSpace(strings.ToLower(email))

	var violations []FieldViolation
	if _, err := mail.ParseAddress(email); err != nil {
		violations = append(violations, FieldViolation{Msg: "Please include a valid email", Param: "email"})
	}
	if password == "" {
		violations = append(violations, FieldViolation{Msg: "Password is required", Param: "password"})
	}
	if len(violations) > 0 {
		return "", &ValidationError{Violations: violations}
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		l.Info("login failed", "user_id", user.ID)
		return "", ErrInvalidCredentials
	}

	role, err := s.Store.Roles().GetRoleByID(ctx, user.RoleID)
	if err != nil {
		return "", err
	}

	return s.mint(user, role)
}

// defaultRole returns hospital_user, falling back to read_only when the
// seeder has not created it.
func (s *AuthService) defaultRole(ctx context.Context) (domain.Role, error) {
	role, err := s.Store.Roles().GetRoleByName(ctx, domain.RoleHospitalUser)
	if err == nil {
		return role, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return domain.Role{}, err
	}
	return s.Store.Roles().GetRoleByName(ctx, domain.RoleReadOnly)
}

func (s *AuthService) mint(user domain.User, role domain.Role) (string, error) {
	claims := jwtx.NewAccessClaims(
		user.ID, user.OrganizationID, role.Name, role.Permissions, user.Name,
		s.AccessTTL, s.Issuer, time.Now(),
	)
	token, err := s.KeyManager.Signer.Sign(claims)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}
