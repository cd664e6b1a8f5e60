package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/talentdesk/recruitment-service/internal/auth"
	"github.com/talentdesk/recruitment-service/internal/config"
	"github.com/talentdesk/recruitment-service/internal/domain"
	"github.com/talentdesk/recruitment-service/internal/repository"
	apperrors "github.com/talentdesk/recruitment-service/pkg/util/errorutil"
)

// StaffService manages staff accounts. All operations require a
// super_admin actor; staff administration is never region-scoped
// because only super admins reach it.
type StaffService struct {
	staff      repository.StaffRepository
	bcryptCost int
}

// NewStaffService constructs the service.
func NewStaffService(cfg config.Config, staffRepo repository.StaffRepository) *StaffService {
	return &StaffService{staff: staffRepo, bcryptCost: cfg.Auth.BcryptCost}
}

func requireSuperAdmin(actor *domain.Staff) error {
	if actor == nil || actor.Role != domain.StaffRoleSuperAdmin {
		return apperrors.NewForbidden("super_admin role required")
	}
	return nil
}

// CreateStaff creates a new staff account.
func (s *StaffService) CreateStaff(ctx context.Context, actor *domain.Staff, staff *domain.Staff, password string) (*domain.Staff, error) {
	if err := requireSuperAdmin(actor); err != nil {
		return nil, err
	}
	if _, err := s.staff.GetByEmail(ctx, staff.Email); err == nil {
		return nil, apperrors.NewConflict("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	staff.PasswordHash = hash
	if staff.Role == "" {
		staff.Role = domain.StaffRoleConsultant
	}
	staff.Active = true

	if err := s.staff.Create(ctx, staff); err != nil {
		return nil, apperrors.MapError(err)
	}
	return staff, nil
}

// GetStaff loads one staff account.
func (s *StaffService) GetStaff(ctx context.Context, actor *domain.Staff, id string) (*domain.Staff, error) {
	if err := requireSuperAdmin(actor); err != nil {
		return nil, err
	}
	staff, err := s.staff.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("staff", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return staff, nil
}

// ListStaff returns staff accounts matching the filter.
func (s *StaffService) ListStaff(ctx context.Context, actor *domain.Staff, filter repository.StaffFilter) ([]domain.Staff, error) {
	if err := requireSuperAdmin(actor); err != nil {
		return nil, err
	}
	list, err := s.staff.List(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return list, nil
}

// StaffUpdate carries optional staff mutations.
type StaffUpdate struct {
	FirstName  *string
	LastName   *string
	Email      *string
	Role       *domain.StaffRole
	Region     *string
	Department *string
	Position   *string
	Active     *bool
}

// UpdateStaff applies partial updates to a staff account.
func (s *StaffService) UpdateStaff(ctx context.Context, actor *domain.Staff, id string, update StaffUpdate) (*domain.Staff, error) {
	staff, err := s.GetStaff(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if update.FirstName != nil {
		staff.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		staff.LastName = *update.LastName
	}
	if update.Email != nil {
		staff.Email = *update.Email
	}
	if update.Role != nil {
		staff.Role = *update.Role
	}
	if update.Region != nil {
		staff.Region = *update.Region
	}
	if update.Department != nil {
		staff.Department = *update.Department
	}
	if update.Position != nil {
		staff.Position = *update.Position
	}
	if update.Active != nil {
		staff.Active = *update.Active
	}

	if err := s.staff.Update(ctx, staff); err != nil {
		return nil, apperrors.MapError(err)
	}
	return staff, nil
}
