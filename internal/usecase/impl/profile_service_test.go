package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	"roster/internal/domain/entity"
	domainerrors "roster/internal/domain/errors"
	"roster/internal/domain/repository"
	mockRepo "roster/internal/mocks/repository"
	"roster/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service        usecase.ProfileUsecase
	txManager      *mockRepo.MockTransactionManager
	userRepo       *mockRepo.MockUserRepository
	nameChangeRepo *mockRepo.MockNameChangeRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	nameChangeRepo := mockRepo.NewMockNameChangeRepository(t)

	service := NewProfileService(ProfileServiceParams{
		TxManager:      txManager,
		UserRepo:       userRepo,
		NameChangeRepo: nameChangeRepo,
		Logger:         newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:        service,
		txManager:      txManager,
		userRepo:       userRepo,
		nameChangeRepo: nameChangeRepo,
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	expectedUser := &entity.User{
		ID:    userID,
		Email: "test@example.com",
		Profile: &entity.UserProfile{
			UserID: userID,
			Name:   "Test User",
			Age:    28,
			Gender: "FEMALE",
		},
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(expectedUser, nil)

	user, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expectedUser, user)
}

func TestProfileService_GetProfile_UnknownUser(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetProfile(ctx, userID)

	// An unknown ID is an empty result, not an error.
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestProfileService_ChangeName_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	existingProfile := &entity.UserProfile{
		UserID: userID,
		Name:   "Old Name",
		Age:    28,
	}

	var createdRecord *entity.NameChangeRecord

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockNameChangeRepo := mockRepo.NewMockNameChangeRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockFactory.EXPECT().NameChangeRepo().Return(mockNameChangeRepo)
			mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(existingProfile, nil)
			mockProfileRepo.EXPECT().UpdateName(ctx, userID, "New Name").Return(nil)
			mockNameChangeRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.NameChangeRecord")).
				Run(func(ctx context.Context, record *entity.NameChangeRecord) {
					record.ID = uuid.New()
					record.CreatedAt = time.Now()
					createdRecord = record
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.ChangeName(ctx, &usecase.ChangeNameInput{
		UserID:  userID,
		NewName: "New Name",
	})

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "New Name", output.Profile.Name)

	// Exactly one audit record, carrying the old and new names.
	require.NotNil(t, createdRecord)
	assert.Equal(t, userID, createdRecord.UserID)
	assert.Equal(t, "Old Name", createdRecord.BeforeName)
	assert.Equal(t, "New Name", createdRecord.AfterName)
	assert.Equal(t, createdRecord, output.Record)
}

func TestProfileService_ChangeName_ProfileNotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockNameChangeRepo := mockRepo.NewMockNameChangeRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockFactory.EXPECT().NameChangeRepo().Return(mockNameChangeRepo)
			mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)

			return fn(mockFactory)
		})

	output, err := fx.service.ChangeName(ctx, &usecase.ChangeNameInput{
		UserID:  userID,
		NewName: "New Name",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestProfileService_ChangeName_AuditWriteFailureAborts(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	existingProfile := &entity.UserProfile{
		UserID: userID,
		Name:   "Old Name",
	}

	// When the audit insert fails the whole transaction fails, so the name
	// update is rolled back with it.
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProfileRepo := mockRepo.NewMockProfileRepository(t)
			mockNameChangeRepo := mockRepo.NewMockNameChangeRepository(t)

			mockFactory.EXPECT().ProfileRepo().Return(mockProfileRepo)
			mockFactory.EXPECT().NameChangeRepo().Return(mockNameChangeRepo)
			mockProfileRepo.EXPECT().FindByUserID(ctx, userID).Return(existingProfile, nil)
			mockProfileRepo.EXPECT().UpdateName(ctx, userID, "New Name").Return(nil)
			mockNameChangeRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.NameChangeRecord")).
				Return(errors.New("insert failed"))

			return fn(mockFactory)
		})

	output, err := fx.service.ChangeName(ctx, &usecase.ChangeNameInput{
		UserID:  userID,
		NewName: "New Name",
	})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrTransactionFailed))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestProfileService_ListNameChanges_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	expectedRecords := []*entity.NameChangeRecord{
		{ID: uuid.New(), UserID: userID, BeforeName: "Second", AfterName: "Third"},
		{ID: uuid.New(), UserID: userID, BeforeName: "First", AfterName: "Second"},
	}

	fx.nameChangeRepo.EXPECT().ListByUserID(ctx, userID).Return(expectedRecords, nil)

	records, err := fx.service.ListNameChanges(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expectedRecords, records)
}

func TestProfileService_ListNameChanges_Empty(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.nameChangeRepo.EXPECT().ListByUserID(ctx, userID).Return([]*entity.NameChangeRecord{}, nil)

	records, err := fx.service.ListNameChanges(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, records)
}
