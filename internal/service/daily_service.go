package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/advent/internal/error_values"
	"github.com/limbo/advent/internal/repository"
	"github.com/limbo/advent/pkg/entity"
)

// DailyChallengeService coordinates the daily flow: get-or-assign, the
// preview/confirm protocol and explicit starts. Per (user, day) the state
// moves NoAssignment -> Previewed -> Confirmed; Confirmed is terminal for
// the day, completion is a separate status on the assignment itself.
type DailyChallengeService struct {
	usersRepo       repository.UsersRepositoryI
	challengesRepo  repository.ChallengesRepositoryI
	assignmentsRepo repository.AssignmentsRepositoryI
	selector        *ChallengeSelector
	previews        *PreviewCache
	now             func() time.Time
}

func NewDailyChallengeService(
	usersRepo repository.UsersRepositoryI,
	challengesRepo repository.ChallengesRepositoryI,
	assignmentsRepo repository.AssignmentsRepositoryI,
	selector *ChallengeSelector,
) *DailyChallengeService {
	if usersRepo == nil || challengesRepo == nil || assignmentsRepo == nil || selector == nil {
		log.Fatal("on daily challenge service provided nil dependencies")
	}
	return &DailyChallengeService{
		usersRepo:       usersRepo,
		challengesRepo:  challengesRepo,
		assignmentsRepo: assignmentsRepo,
		selector:        selector,
		previews:        NewPreviewCache(),
		now:             time.Now,
	}
}

func (ds *DailyChallengeService) GetOrAssign(ctx context.Context, uid uuid.UUID, mood entity.Mood) (*entity.Assignment, error) {
	user, err := ds.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	now := ds.now()
	startOfDay := startOfDay(now)
	if existing, err := ds.todayAssignment(ctx, uid, startOfDay, mood); err != nil || existing != nil {
		return existing, err
	}
	challenge, err := ds.selectForToday(ctx, user, mood, startOfDay)
	if err != nil {
		return nil, err
	}
	return ds.persistDaily(ctx, uid, challenge.ID, mood, now, startOfDay)
}

func (ds *DailyChallengeService) Preview(ctx context.Context, uid uuid.UUID, mood entity.Mood) (*entity.Challenge, error) {
	user, err := ds.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	now := ds.now()
	startOfDay := startOfDay(now)
	// An already-confirmed day previews as the confirmed challenge
	existing, err := ds.assignmentsRepo.GetDailyByUserSince(ctx, uid, startOfDay)
	if err != nil {
		return nil, errors.New("assignments repository error: " + err.Error())
	}
	if len(existing) > 0 {
		challenge, err := ds.challengesRepo.GetByID(ctx, existing[0].ChallengeID)
		if err != nil {
			return nil, errors.New("challenges repository error: " + err.Error())
		}
		return challenge, nil
	}
	key := NewPreviewKey(uid, now, mood)
	if cached, ok := ds.previews.Get(key); ok {
		return &cached, nil
	}
	challenge, err := ds.selectForToday(ctx, user, mood, startOfDay)
	if err != nil {
		return nil, err
	}
	ds.previews.Put(key, *challenge)
	return challenge, nil
}

func (ds *DailyChallengeService) Confirm(ctx context.Context, uid, challengeID uuid.UUID, mood entity.Mood) (*entity.Assignment, error) {
	user, err := ds.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	now := ds.now()
	startOfDay := startOfDay(now)
	// Already confirmed today: challengeID is ignored, only mood is refreshed
	if existing, err := ds.todayAssignment(ctx, uid, startOfDay, mood); err != nil || existing != nil {
		return existing, err
	}
	key := NewPreviewKey(uid, now, mood)
	previewed, ok := ds.previews.Get(key)
	if !ok {
		recomputed, err := ds.selectForToday(ctx, user, mood, startOfDay)
		if err != nil {
			return nil, err
		}
		previewed = *recomputed
	}
	if previewed.ID != challengeID {
		return nil, errorvalues.ErrPreviewMismatch
	}
	assignment, err := ds.persistDaily(ctx, uid, challengeID, mood, now, startOfDay)
	if err != nil {
		return nil, err
	}
	ds.previews.Remove(key)
	return assignment, nil
}

func (ds *DailyChallengeService) Start(ctx context.Context, uid, challengeID uuid.UUID, mood entity.Mood) (*entity.Assignment, error) {
	_, err := ds.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	challenge, err := ds.challengesRepo.GetByID(ctx, challengeID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrChallengeNotFound) {
			return nil, err
		}
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	now := ds.now()
	startOfDay := startOfDay(now)
	existing, err := ds.assignmentsRepo.GetByUserAndChallengeSince(ctx, uid, challenge.ID, startOfDay)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errorvalues.ErrAssignmentNotFound) {
		return nil, errors.New("assignments repository error: " + err.Error())
	}
	assignment := &entity.Assignment{
		UserID:      uid,
		ChallengeID: challenge.ID,
		Status:      entity.StatusAssigned,
		Source:      entity.SourceManual,
		StartTime:   now,
		Mood:        &mood,
	}
	id, err := ds.assignmentsRepo.Create(ctx, assignment)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAssignmentExists) {
			return ds.refetchByChallenge(ctx, uid, challenge.ID, startOfDay)
		}
		return nil, errors.New("assignments repository error: " + err.Error())
	}
	assignment.ID = id
	return assignment, nil
}

func (ds *DailyChallengeService) ClearPending(ctx context.Context, uid uuid.UUID) (int, error) {
	_, err := ds.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return 0, err
		}
		return 0, errors.New("users repository error: " + err.Error())
	}
	deleted, err := ds.assignmentsRepo.DeleteByUserAndStatus(ctx, uid, entity.StatusAssigned)
	if err != nil {
		return 0, errors.New("assignments repository error: " + err.Error())
	}
	return deleted, nil
}

func (ds *DailyChallengeService) Complete(ctx context.Context, id, uid uuid.UUID) (*entity.Assignment, error) {
	assignment, err := ds.assignmentsRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAssignmentNotFound) {
			return nil, err
		}
		return nil, errors.New("assignments repository error: " + err.Error())
	}
	if assignment.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	if assignment.Status != entity.StatusAssigned {
		return nil, errorvalues.ErrAlreadyCompleted
	}
	completedAt := ds.now()
	err = ds.assignmentsRepo.Complete(ctx, id, completedAt)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAssignmentNotFound) {
			return nil, err
		}
		return nil, errors.New("assignments repository error: " + err.Error())
	}
	assignment.Status = entity.StatusCompleted
	assignment.CompletionTime = &completedAt
	return assignment, nil
}

func (ds *DailyChallengeService) GetUserAssignments(ctx context.Context, uid uuid.UUID) ([]entity.Assignment, error) {
	assignments, err := ds.assignmentsRepo.GetByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("assignments repository error: " + err.Error())
	}
	return assignments, nil
}

func (ds *DailyChallengeService) GetUserAssignmentsByStatus(ctx context.Context, uid uuid.UUID, status entity.CompletionStatus) ([]entity.Assignment, error) {
	assignments, err := ds.assignmentsRepo.GetByUserAndStatus(ctx, uid, status)
	if err != nil {
		return nil, errors.New("assignments repository error: " + err.Error())
	}
	return assignments, nil
}

func (ds *DailyChallengeService) Progress(ctx context.Context, uid uuid.UUID) (*entity.UserProgress, error) {
	_, err := ds.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	assigned, err := ds.assignmentsRepo.CountByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("assignments repository error: " + err.Error())
	}
	completed, err := ds.assignmentsRepo.CountByUserAndStatus(ctx, uid, entity.StatusCompleted)
	if err != nil {
		return nil, errors.New("assignments repository error: " + err.Error())
	}
	percentage := 0.0
	if assigned > 0 {
		percentage = float64(completed) / float64(assigned) * 100
	}
	return &entity.UserProgress{
		UserID:         uid,
		TotalAssigned:  assigned,
		TotalCompleted: completed,
		Percentage:     percentage,
	}, nil
}

// todayAssignment returns today's already-existing DAILY row with its mood
// refreshed, or nil when the day is still open. The row is matched by any
// status: a completed day stays occupied until midnight.
func (ds *DailyChallengeService) todayAssignment(ctx context.Context, uid uuid.UUID, startOfDay time.Time, mood entity.Mood) (*entity.Assignment, error) {
	existing, err := ds.assignmentsRepo.GetDailyByUserSince(ctx, uid, startOfDay)
	if err != nil {
		return nil, errors.New("assignments repository error: " + err.Error())
	}
	if len(existing) == 0 {
		return nil, nil
	}
	assignment := existing[0]
	err = ds.assignmentsRepo.UpdateMood(ctx, assignment.ID, mood)
	if err != nil {
		return nil, errors.New("assignments repository error: " + err.Error())
	}
	assignment.Mood = &mood
	return &assignment, nil
}

func (ds *DailyChallengeService) selectForToday(ctx context.Context, user *entity.User, mood entity.Mood, startOfDay time.Time) (*entity.Challenge, error) {
	pool, err := ds.challengesRepo.GetActive(ctx)
	if err != nil {
		return nil, errors.New("challenges repository error: " + err.Error())
	}
	yesterdayCategory, err := ds.assignmentsRepo.GetLatestCategoryBefore(ctx, user.ID, startOfDay)
	if err != nil {
		return nil, errors.New("assignments repository error: " + err.Error())
	}
	assignedCount, err := ds.assignmentsRepo.CountByUser(ctx, user.ID)
	if err != nil {
		return nil, errors.New("assignments repository error: " + err.Error())
	}
	challenge, err := ds.selector.Select(pool, mood, user.Culture, yesterdayCategory, IsCrossCulturalDay(assignedCount))
	if err != nil {
		return nil, err
	}
	return challenge, nil
}

// persistDaily inserts today's DAILY row. A concurrent insert for the same
// day trips the (user, day) unique index; that conflict resolves
// idempotently by returning the row the other caller won with.
func (ds *DailyChallengeService) persistDaily(ctx context.Context, uid, challengeID uuid.UUID, mood entity.Mood, now, startOfDay time.Time) (*entity.Assignment, error) {
	assignment := &entity.Assignment{
		UserID:      uid,
		ChallengeID: challengeID,
		Status:      entity.StatusAssigned,
		Source:      entity.SourceDaily,
		StartTime:   now,
		Mood:        &mood,
	}
	id, err := ds.assignmentsRepo.Create(ctx, assignment)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAssignmentExists) {
			existing, err := ds.todayAssignment(ctx, uid, startOfDay, mood)
			if err != nil {
				return nil, err
			}
			if existing == nil {
				return nil, errorvalues.ErrAssignmentNotFound
			}
			return existing, nil
		}
		return nil, errors.New("assignments repository error: " + err.Error())
	}
	assignment.ID = id
	return assignment, nil
}

func (ds *DailyChallengeService) refetchByChallenge(ctx context.Context, uid, challengeID uuid.UUID, startOfDay time.Time) (*entity.Assignment, error) {
	existing, err := ds.assignmentsRepo.GetByUserAndChallengeSince(ctx, uid, challengeID, startOfDay)
	if err != nil {
		return nil, errors.New("assignments repository error: " + err.Error())
	}
	return existing, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
