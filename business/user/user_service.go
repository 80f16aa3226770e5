package user

import (
	"context"
	"fmt"
	"susuhub/domain"
	"susuhub/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type UserService struct {
	userRepo UserRepository
	validate *validator.Validate
}

func NewUserService(userRepo UserRepository, validate *validator.Validate) *UserService {
	return &UserService{
		userRepo: userRepo,
		validate: validate,
	}
}

// Register creates the user. Status and verification status are forced to
// PENDING regardless of what the caller supplied.
func (s *UserService) Register(ctx context.Context, user *domain.User) error {
	if err := s.validate.Var(user.Email, "required,email"); err != nil {
		logger.Error("Invalid email format", err)
		return fmt.Errorf("%w: invalid email format", domain.ErrValidation)
	}

	if user.Name == "" {
		return fmt.Errorf("%w: missing user name", domain.ErrValidation)
	}

	if user.Role == "" {
		user.Role = domain.RoleMember
	}
	if !domain.ValidUserRoles[user.Role] {
		return fmt.Errorf("%w: invalid role %q", domain.ErrValidation, user.Role)
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}

	user.Status = domain.UserStatusPending
	user.VerificationStatus = domain.VerificationPending
	if user.ReliabilityScore == 0 {
		user.ReliabilityScore = 100
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.Error("Failed to create user", err)
		return err
	}

	return nil
}

// GetAllUsers returns every user, most recently joined first.
func (s *UserService) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to get all users", err)
		return nil, err
	}

	return users, nil
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	if email == "" {
		return domain.User{}, fmt.Errorf("%w: missing email", domain.ErrValidation)
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}

// UpdateUser applies the patch; nil fields stay unchanged. ReliabilityScore
// uses presence, not truthiness, so an explicit 0 is written.
func (s *UserService) UpdateUser(ctx context.Context, id string, patch domain.UserPatch) error {
	if id == "" {
		return fmt.Errorf("%w: missing user id", domain.ErrValidation)
	}

	fields := map[string]interface{}{}
	if patch.Name != nil {
		fields["name"] = *patch.Name
	}
	if patch.Status != nil {
		if !domain.ValidUserStatuses[*patch.Status] {
			return fmt.Errorf("%w: invalid status %q", domain.ErrValidation, *patch.Status)
		}
		fields["status"] = *patch.Status
	}
	if patch.VerificationStatus != nil {
		if !domain.ValidVerificationStatuses[*patch.VerificationStatus] {
			return fmt.Errorf("%w: invalid verification status %q", domain.ErrValidation, *patch.VerificationStatus)
		}
		fields["verification_status"] = *patch.VerificationStatus
	}
	if patch.Role != nil {
		if !domain.ValidUserRoles[*patch.Role] {
			return fmt.Errorf("%w: invalid role %q", domain.ErrValidation, *patch.Role)
		}
		fields["role"] = *patch.Role
	}
	if patch.ReliabilityScore != nil {
		fields["reliability_score"] = *patch.ReliabilityScore
	}
	if patch.Avatar != nil {
		fields["avatar"] = *patch.Avatar
	}
	if patch.KycDocumentImage != nil {
		fields["kyc_document_image"] = *patch.KycDocumentImage
	}
	if patch.Occupation != nil {
		fields["occupation"] = *patch.Occupation
	}
	if patch.PhoneNumber != nil {
		fields["phone_number"] = *patch.PhoneNumber
	}

	if len(fields) == 0 {
		return nil
	}

	if err := s.userRepo.UpdateFields(ctx, id, fields); err != nil {
		logger.Error("Failed to update user", err)
		return err
	}

	return nil
}

// DeleteUser hard-deletes the user with its memberships and transactions.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: missing user id", domain.ErrValidation)
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to delete user", err)
		return err
	}

	return nil
}
