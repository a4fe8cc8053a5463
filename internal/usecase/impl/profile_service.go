package impl

import (
	"context"
	"log/slog"

	deliverycontext "roster/internal/delivery/context"
	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager      repository.TransactionManager
	userRepo       repository.UserRepository
	nameChangeRepo repository.NameChangeRepository
	logger         *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	UserRepo       repository.UserRepository
	NameChangeRepo repository.NameChangeRepository
	Logger         *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:      params.TxManager,
		userRepo:       params.UserRepo,
		nameChangeRepo: params.NameChangeRepo,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile looks up a user and their profile by ID. An unknown ID is not an
// error: the method returns (nil, nil) and the handler renders an empty result.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.log(ctx).Debug("Getting profile", slog.Any("userID", userID))

	// Single read - use the direct repository instance.
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// ChangeName updates the profile display name and writes exactly one audit
// record for the change. Both writes happen in the same transaction, so the
// audit trail never diverges from the profile.
func (srv *profileService) ChangeName(ctx context.Context, input *usecase.ChangeNameInput) (*usecase.ChangeNameOutput, error) {
	srv.log(ctx).Info("Changing profile name", slog.Any("userID", input.UserID))

	var updatedProfile *entity.UserProfile
	var auditRecord *entity.NameChangeRecord

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.ProfileRepo()
		nameChangeRepo := repoFactory.NameChangeRepo()

		profile, findErr := profileRepo.FindByUserID(ctx, input.UserID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound.WrapMessage("cannot change name without a profile")
			}

			return errors.Wrap(findErr, "failed to load profile for name change")
		}

		if updateErr := profileRepo.UpdateName(ctx, input.UserID, input.NewName); updateErr != nil {
			if errors.Is(updateErr, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound.WrapMessage("cannot change name without a profile")
			}

			return errors.Wrap(updateErr, "failed to update profile name")
		}

		record := &entity.NameChangeRecord{
			UserID:     input.UserID,
			BeforeName: profile.Name,
			AfterName:  input.NewName,
		}
		if createErr := nameChangeRepo.Create(ctx, record); createErr != nil {
			return errors.Wrap(createErr, "failed to record name change")
		}

		profile.Name = input.NewName
		updatedProfile = profile
		auditRecord = record

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute name change transaction", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, asTransactionFailure(err)
	}

	srv.log(ctx).Debug("Name change completed",
		slog.Any("userID", input.UserID),
		slog.String("beforeName", auditRecord.BeforeName),
		slog.String("afterName", auditRecord.AfterName))

	return &usecase.ChangeNameOutput{
		Profile: updatedProfile,
		Record:  auditRecord,
	}, nil
}

// ListNameChanges returns the audit trail for a user, newest first.
func (srv *profileService) ListNameChanges(ctx context.Context, userID uuid.UUID) ([]*entity.NameChangeRecord, error) {
	srv.log(ctx).Debug("Listing name changes", slog.Any("userID", userID))

	// Single query operation - use the direct repository instance.
	records, err := srv.nameChangeRepo.ListByUserID(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list name changes", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list name changes")
	}

	return records, nil
}
