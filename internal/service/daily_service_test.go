package service_test

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/advent/internal/error_values"
	"github.com/limbo/advent/internal/repository/mocks"
	"github.com/limbo/advent/internal/service"
	"github.com/limbo/advent/pkg/entity"
	"github.com/stretchr/testify/assert"
)

type dailyServiceMocks struct {
	users       *mocks.MockUsersRepositoryI
	challenges  *mocks.MockChallengesRepositoryI
	assignments *mocks.MockAssignmentsRepositoryI
}

func newDailyService(t *testing.T) (*service.DailyChallengeService, dailyServiceMocks) {
	ctrl := gomock.NewController(t)
	m := dailyServiceMocks{
		users:       mocks.NewMockUsersRepositoryI(ctrl),
		challenges:  mocks.NewMockChallengesRepositoryI(ctrl),
		assignments: mocks.NewMockAssignmentsRepositoryI(ctrl),
	}
	selector := service.NewChallengeSelector(rand.NewSource(1))
	ds := service.NewDailyChallengeService(m.users, m.challenges, m.assignments, selector)
	return ds, m
}

var (
	testUserID    = uuid.New()
	testChallenge = entity.Challenge{
		ID:          uuid.New(),
		Title:       "test_challenge",
		Description: "test_description",
		Category:    entity.CategoryFood,
		EnergyLevel: entity.EnergyLow,
		Culture:     entity.CultureGlobal,
		Active:      true,
	}
	testUser = entity.User{
		ID:      testUserID,
		Name:    "test_user",
		Culture: entity.CultureIndia,
	}
)

func TestGetOrAssignCreatesNewAssignment(t *testing.T) {
	t.Parallel()
	ds, m := newDailyService(t)
	assignmentID := uuid.New()

	m.users.EXPECT().FindByID(gomock.Any(), testUserID).Return(&testUser, nil)
	m.assignments.EXPECT().GetDailyByUserSince(gomock.Any(), testUserID, gomock.Any()).Return(nil, nil)
	m.challenges.EXPECT().GetActive(gomock.Any()).Return([]entity.Challenge{testChallenge}, nil)
	m.assignments.EXPECT().GetLatestCategoryBefore(gomock.Any(), testUserID, gomock.Any()).Return(entity.ChallengeCategory(""), nil)
	m.assignments.EXPECT().CountByUser(gomock.Any(), testUserID).Return(0, nil)
	m.assignments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(assignmentID, nil)

	assignment, err := ds.GetOrAssign(context.Background(), testUserID, entity.MoodLow)
	assert.NoError(t, err)
	assert.Equal(t, assignmentID, assignment.ID)
	assert.Equal(t, testChallenge.ID, assignment.ChallengeID)
	assert.Equal(t, entity.SourceDaily, assignment.Source)
	assert.Equal(t, entity.StatusAssigned, assignment.Status)
}

func TestGetOrAssignIsIdempotentPerDay(t *testing.T) {
	t.Parallel()
	ds, m := newDailyService(t)
	existing := entity.Assignment{
		ID:          uuid.New(),
		UserID:      testUserID,
		ChallengeID: testChallenge.ID,
		Status:      entity.StatusAssigned,
		Source:      entity.SourceDaily,
	}

	m.users.EXPECT().FindByID(gomock.Any(), testUserID).Return(&testUser, nil).Times(2)
	m.assignments.EXPECT().GetDailyByUserSince(gomock.Any(), testUserID, gomock.Any()).
		Return([]entity.Assignment{existing}, nil).Times(2)
	m.assignments.EXPECT().UpdateMood(gomock.Any(), existing.ID, entity.MoodHigh).Return(nil).Times(2)

	first, err := ds.GetOrAssign(context.Background(), testUserID, entity.MoodHigh)
	assert.NoError(t, err)
	second, err := ds.GetOrAssign(context.Background(), testUserID, entity.MoodHigh)
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, entity.MoodHigh, *second.Mood)
}

func TestGetOrAssignResolvesConcurrentDuplicate(t *testing.T) {
	t.Parallel()
	ds, m := newDailyService(t)
	winner := entity.Assignment{
		ID:          uuid.New(),
		UserID:      testUserID,
		ChallengeID: testChallenge.ID,
		Status:      entity.StatusAssigned,
		Source:      entity.SourceDaily,
	}

	m.users.EXPECT().FindByID(gomock.Any(), testUserID).Return(&testUser, nil)
	gomock.InOrder(
		m.assignments.EXPECT().GetDailyByUserSince(gomock.Any(), testUserID, gomock.Any()).Return(nil, nil),
		m.assignments.EXPECT().GetDailyByUserSince(gomock.Any(), testUserID, gomock.Any()).
			Return([]entity.Assignment{winner}, nil),
	)
	m.challenges.EXPECT().GetActive(gomock.Any()).Return([]entity.Challenge{testChallenge}, nil)
	m.assignments.EXPECT().GetLatestCategoryBefore(gomock.Any(), testUserID, gomock.Any()).Return(entity.ChallengeCategory(""), nil)
	m.assignments.EXPECT().CountByUser(gomock.Any(), testUserID).Return(3, nil)
	m.assignments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.UUID{}, errorvalues.ErrAssignmentExists)
	m.assignments.EXPECT().UpdateMood(gomock.Any(), winner.ID, entity.MoodLow).Return(nil)

	assignment, err := ds.GetOrAssign(context.Background(), testUserID, entity.MoodLow)
	assert.NoError(t, err)
	assert.Equal(t, winner.ID, assignment.ID)
}

func TestGetOrAssignReturnsCompletedDay(t *testing.T) {
	t.Parallel()
	ds, m := newDailyService(t)
	completedAt := time.Now()
	completed := entity.Assignment{
		ID:             uuid.New(),
		UserID:         testUserID,
		ChallengeID:    testChallenge.ID,
		Status:         entity.StatusCompleted,
		Source:         entity.SourceDaily,
		CompletionTime: &completedAt,
	}

	m.users.EXPECT().FindByID(gomock.Any(), testUserID).Return(&testUser, nil)
	m.assignments.EXPECT().GetDailyByUserSince(gomock.Any(), testUserID, gomock.Any()).
		Return([]entity.Assignment{completed}, nil)
	m.assignments.EXPECT().UpdateMood(gomock.Any(), completed.ID, entity.MoodNeutral).Return(nil)

	assignment, err := ds.GetOrAssign(context.Background(), testUserID, entity.MoodNeutral)
	assert.NoError(t, err)
	assert.Equal(t, completed.ID, assignment.ID)
	assert.Equal(t, entity.StatusCompleted, assignment.Status)
}

func TestGetOrAssignResolvesConflictWithCompletedRow(t *testing.T) {
	t.Parallel()
	ds, m := newDailyService(t)
	completedAt := time.Now()
	winner := entity.Assignment{
		ID:             uuid.New(),
		UserID:         testUserID,
		ChallengeID:    testChallenge.ID,
		Status:         entity.StatusCompleted,
		Source:         entity.SourceDaily,
		CompletionTime: &completedAt,
	}

	// First lookup misses, the insert trips the per-day unique index and the
	// re-read must surface the already-completed row instead of erroring.
	m.users.EXPECT().FindByID(gomock.Any(), testUserID).Return(&testUser, nil)
	gomock.InOrder(
		m.assignments.EXPECT().GetDailyByUserSince(gomock.Any(), testUserID, gomock.Any()).Return(nil, nil),
		m.assignments.EXPECT().GetDailyByUserSince(gomock.Any(), testUserID, gomock.Any()).
			Return([]entity.Assignment{winner}, nil),
	)
	m.challenges.EXPECT().GetActive(gomock.Any()).Return([]entity.Challenge{testChallenge}, nil)
	m.assignments.EXPECT().GetLatestCategoryBefore(gomock.Any(), testUserID, gomock.Any()).Return(entity.ChallengeCategory(""), nil)
	m.assignments.EXPECT().CountByUser(gomock.Any(), testUserID).Return(5, nil)
	m.assignments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.UUID{}, errorvalues.ErrAssignmentExists)
	m.assignments.EXPECT().UpdateMood(gomock.Any(), winner.ID, entity.MoodLow).Return(nil)

	assignment, err := ds.GetOrAssign(context.Background(), testUserID, entity.MoodLow)
	assert.NoError(t, err)
	assert.Equal(t, winner.ID, assignment.ID)
	assert.Equal(t, entity.StatusCompleted, assignment.Status)
}

func TestConfirmReturnsCompletedDay(t *testing.T) {
	t.Parallel()
	ds, m := newDailyService(t)
	completedAt := time.Now()
	completed := entity.Assignment{
		ID:             uuid.New(),
		UserID:         testUserID,
		ChallengeID:    testChallenge.ID,
		Status:         entity.StatusCompleted,
		Source:         entity.SourceDaily,
		CompletionTime: &completedAt,
	}

	m.users.EXPECT().FindByID(gomock.Any(), testUserID).Return(&testUser, nil)
	m.assignments.EXPECT().GetDailyByUserSince(gomock.Any(), testUserID, gomock.Any()).
		Return([]entity.Assignment{completed}, nil)
	m.assignments.EXPECT().UpdateMood(gomock.Any(), completed.ID, entity.MoodHigh).Return(nil)

	assignment, err := ds.Confirm(context.Background(), testUserID, uuid.New(), entity.MoodHigh)
	assert.NoError(t, err)
	assert.Equal(t, completed.ID, assignment.ID)
}

func TestPreviewIsCachedPerMoodAndDay(t *testing.T) {
	t.Parallel()
	ds, m := newDailyService(t)

	m.users.EXPECT().FindByID(gomock.Any(), testUserID).Return(&testUser, nil).Times(2)
	m.assignments.EXPECT().GetDailyByUserSince(gomock.Any(), testUserID, gomock.Any()).
		Return(nil, nil).Times(2)
	// Selection runs once, the second call hits the cache
	m.challenges.EXPECT().GetActive(gomock.Any()).Return([]entity.Challenge{testChallenge}, nil).Times(1)
	m.assignments.EXPECT().GetLatestCategoryBefore(gomock.Any(), testUserID, gomock.Any()).
		Return(entity.ChallengeCategory(""), nil).Times(1)
	m.assignments.EXPECT().CountByUser(gomock.Any(), testUserID).Return(0, nil).Times(1)

	first, err := ds.Preview(context.Background(), testUserID, entity.MoodLow)
	assert.NoError(t, err)
	second, err := ds.Preview(context.Background(), testUserID, entity.MoodLow)
	assert.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestPreviewReturnsConfirmedChallenge(t *testing.T) {
	t.Parallel()
	ds, m := newDailyService(t)
	existing := entity.Assignment{
		ID:          uuid.New(),
		UserID:      testUserID,
		ChallengeID: testChallenge.ID,
		Status:      entity.StatusAssigned,
		Source:      entity.SourceDaily,
	}

	m.users.EXPECT().FindByID(gomock.Any(), testUserID).Return(&testUser, nil)
	m.assignments.EXPECT().GetDailyByUserSince(gomock.Any(), testUserID, gomock.Any()).
		Return([]entity.Assignment{existing}, nil)
	m.challenges.EXPECT().GetByID(gomock.Any(), testChallenge.ID).Return(&testChallenge, nil)

	challenge, err := ds.Preview(context.Background(), testUserID, entity.MoodLow)
	assert.NoError(t, err)
	assert.Equal(t, testChallenge.ID, challenge.ID)
}

func TestConfirmPersistsPreviewedChallenge(t *testing.T) {
	t.Parallel()
	ds, m := newDailyService(t)
	assignmentID := uuid.New()

	m.users.EXPECT().FindByID(gomock.Any(), testUserID).Return(&testUser, nil).Times(2)
	m.assignments.EXPECT().GetDailyByUserSince(gomock.Any(), testUserID, gomock.Any()).
		Return(nil, nil).Times(2)
	m.challenges.EXPECT().GetActive(gomock.Any()).Return([]entity.Challenge{testChallenge}, nil)
	m.assignments.EXPECT().GetLatestCategoryBefore(gomock.Any(), testUserID, gomock.Any()).Return(entity.ChallengeCategory(""), nil)
	m.assignments.EXPECT().CountByUser(gomock.Any(), testUserID).Return(0, nil)
	m.assignments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(assignmentID, nil)

	previewed, err := ds.Preview(context.Background(), testUserID, entity.MoodLow)
	assert.NoError(t, err)
	assignment, err := ds.Confirm(context.Background(), testUserID, previewed.ID, entity.MoodLow)
	assert.NoError(t, err)
	assert.Equal(t, assignmentID, assignment.ID)
	assert.Equal(t, previewed.ID, assignment.ChallengeID)
}

func TestConfirmRejectsMismatchedChallenge(t *testing.T) {
	t.Parallel()
	ds, m := newDailyService(t)

	m.users.EXPECT().FindByID(gomock.Any(), testUserID).Return(&testUser, nil).Times(2)
	m.assignments.EXPECT().GetDailyByUserSince(gomock.Any(), testUserID, gomock.Any()).
		Return(nil, nil).Times(2)
	m.challenges.EXPECT().GetActive(gomock.Any()).Return([]entity.Challenge{testChallenge}, nil)
	m.assignments.EXPECT().GetLatestCategoryBefore(gomock.Any(), testUserID, gomock.Any()).Return(entity.ChallengeCategory(""), nil)
	m.assignments.EXPECT().CountByUser(gomock.Any(), testUserID).Return(0, nil)

	_, err := ds.Preview(context.Background(), testUserID, entity.MoodLow)
	assert.NoError(t, err)
	_, err = ds.Confirm(context.Background(), testUserID, uuid.New(), entity.MoodLow)
	assert.ErrorIs(t, err, errorvalues.ErrPreviewMismatch)
}

func TestConfirmRecomputesOnCacheMiss(t *testing.T) {
	t.Parallel()
	ds, m := newDailyService(t)
	assignmentID := uuid.New()

	// No preceding Preview call, the selection runs inside Confirm. With a
	// single-challenge pool the recomputed pick is deterministic.
	m.users.EXPECT().FindByID(gomock.Any(), testUserID).Return(&testUser, nil)
	m.assignments.EXPECT().GetDailyByUserSince(gomock.Any(), testUserID, gomock.Any()).Return(nil, nil)
	m.challenges.EXPECT().GetActive(gomock.Any()).Return([]entity.Challenge{testChallenge}, nil)
	m.assignments.EXPECT().GetLatestCategoryBefore(gomock.Any(), testUserID, gomock.Any()).Return(entity.ChallengeCategory(""), nil)
	m.assignments.EXPECT().CountByUser(gomock.Any(), testUserID).Return(0, nil)
	m.assignments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(assignmentID, nil)

	assignment, err := ds.Confirm(context.Background(), testUserID, testChallenge.ID, entity.MoodLow)
	assert.NoError(t, err)
	assert.Equal(t, assignmentID, assignment.ID)
}

func TestStartReturnsExistingAssignment(t *testing.T) {
	t.Parallel()
	ds, m := newDailyService(t)
	existing := entity.Assignment{
		ID:          uuid.New(),
		UserID:      testUserID,
		ChallengeID: testChallenge.ID,
		Status:      entity.StatusAssigned,
		Source:      entity.SourceManual,
	}

	m.users.EXPECT().FindByID(gomock.Any(), testUserID).Return(&testUser, nil)
	m.challenges.EXPECT().GetByID(gomock.Any(), testChallenge.ID).Return(&testChallenge, nil)
	m.assignments.EXPECT().GetByUserAndChallengeSince(gomock.Any(), testUserID, testChallenge.ID, gomock.Any()).
		Return(&existing, nil)

	assignment, err := ds.Start(context.Background(), testUserID, testChallenge.ID, entity.MoodNeutral)
	assert.NoError(t, err)
	assert.Equal(t, existing.ID, assignment.ID)
}

func TestStartCreatesManualAssignment(t *testing.T) {
	t.Parallel()
	ds, m := newDailyService(t)
	assignmentID := uuid.New()

	m.users.EXPECT().FindByID(gomock.Any(), testUserID).Return(&testUser, nil)
	m.challenges.EXPECT().GetByID(gomock.Any(), testChallenge.ID).Return(&testChallenge, nil)
	m.assignments.EXPECT().GetByUserAndChallengeSince(gomock.Any(), testUserID, testChallenge.ID, gomock.Any()).
		Return(nil, errorvalues.ErrAssignmentNotFound)
	m.assignments.EXPECT().Create(gomock.Any(), gomock.Any()).Return(assignmentID, nil)

	assignment, err := ds.Start(context.Background(), testUserID, testChallenge.ID, entity.MoodNeutral)
	assert.NoError(t, err)
	assert.Equal(t, assignmentID, assignment.ID)
	assert.Equal(t, entity.SourceManual, assignment.Source)
}

func TestStartUnknownChallenge(t *testing.T) {
	t.Parallel()
	ds, m := newDailyService(t)
	unknownID := uuid.New()

	m.users.EXPECT().FindByID(gomock.Any(), testUserID).Return(&testUser, nil)
	m.challenges.EXPECT().GetByID(gomock.Any(), unknownID).Return(nil, errorvalues.ErrChallengeNotFound)

	_, err := ds.Start(context.Background(), testUserID, unknownID, entity.MoodNeutral)
	assert.ErrorIs(t, err, errorvalues.ErrChallengeNotFound)
}

func TestClearPendingReturnsDeletedCount(t *testing.T) {
	t.Parallel()
	ds, m := newDailyService(t)

	m.users.EXPECT().FindByID(gomock.Any(), testUserID).Return(&testUser, nil)
	m.assignments.EXPECT().DeleteByUserAndStatus(gomock.Any(), testUserID, entity.StatusAssigned).Return(3, nil)

	deleted, err := ds.ClearPending(context.Background(), testUserID)
	assert.NoError(t, err)
	assert.Equal(t, 3, deleted)
}

func TestComplete(t *testing.T) {
	t.Parallel()
	ds, m := newDailyService(t)
	assignmentID := uuid.New()

	t.Run("success", func(t *testing.T) {
		m.assignments.EXPECT().GetByID(gomock.Any(), assignmentID).Return(&entity.Assignment{
			ID:          assignmentID,
			UserID:      testUserID,
			ChallengeID: testChallenge.ID,
			Status:      entity.StatusAssigned,
		}, nil)
		m.assignments.EXPECT().Complete(gomock.Any(), assignmentID, gomock.Any()).Return(nil)

		assignment, err := ds.Complete(context.Background(), assignmentID, testUserID)
		assert.NoError(t, err)
		assert.Equal(t, entity.StatusCompleted, assignment.Status)
		assert.NotNil(t, assignment.CompletionTime)
	})
	t.Run("wrong owner", func(t *testing.T) {
		m.assignments.EXPECT().GetByID(gomock.Any(), assignmentID).Return(&entity.Assignment{
			ID:     assignmentID,
			UserID: uuid.New(),
			Status: entity.StatusAssigned,
		}, nil)

		_, err := ds.Complete(context.Background(), assignmentID, testUserID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("already completed", func(t *testing.T) {
		m.assignments.EXPECT().GetByID(gomock.Any(), assignmentID).Return(&entity.Assignment{
			ID:     assignmentID,
			UserID: testUserID,
			Status: entity.StatusCompleted,
		}, nil)

		_, err := ds.Complete(context.Background(), assignmentID, testUserID)
		assert.ErrorIs(t, err, errorvalues.ErrAlreadyCompleted)
	})
	t.Run("not found", func(t *testing.T) {
		m.assignments.EXPECT().GetByID(gomock.Any(), assignmentID).Return(nil, errorvalues.ErrAssignmentNotFound)

		_, err := ds.Complete(context.Background(), assignmentID, testUserID)
		assert.ErrorIs(t, err, errorvalues.ErrAssignmentNotFound)
	})
}

func TestProgress(t *testing.T) {
	t.Parallel()
	ds, m := newDailyService(t)

	t.Run("with assignments", func(t *testing.T) {
		m.users.EXPECT().FindByID(gomock.Any(), testUserID).Return(&testUser, nil)
		m.assignments.EXPECT().CountByUser(gomock.Any(), testUserID).Return(8, nil)
		m.assignments.EXPECT().CountByUserAndStatus(gomock.Any(), testUserID, entity.StatusCompleted).Return(6, nil)

		progress, err := ds.Progress(context.Background(), testUserID)
		assert.NoError(t, err)
		assert.Equal(t, 8, progress.TotalAssigned)
		assert.Equal(t, 6, progress.TotalCompleted)
		assert.InDelta(t, 75.0, progress.Percentage, 0.001)
	})
	t.Run("no assignments", func(t *testing.T) {
		m.users.EXPECT().FindByID(gomock.Any(), testUserID).Return(&testUser, nil)
		m.assignments.EXPECT().CountByUser(gomock.Any(), testUserID).Return(0, nil)
		m.assignments.EXPECT().CountByUserAndStatus(gomock.Any(), testUserID, entity.StatusCompleted).Return(0, nil)

		progress, err := ds.Progress(context.Background(), testUserID)
		assert.NoError(t, err)
		assert.Zero(t, progress.Percentage)
	})
}
