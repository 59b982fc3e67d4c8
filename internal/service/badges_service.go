package service

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/advent/internal/error_values"
	"github.com/limbo/advent/internal/repository"
	"github.com/limbo/advent/pkg/entity"
)

const (
	criteriaStreakDays          = "STREAK_DAYS"
	criteriaCompletedChallenges = "COMPLETED_CHALLENGES"

	pointsPerCompletedChallenge = 10
)

type BadgeService struct {
	usersRepo       repository.UsersRepositoryI
	assignmentsRepo repository.AssignmentsRepositoryI
	badgesRepo      repository.BadgesRepositoryI
	now             func() time.Time
}

func NewBadgeService(
	usersRepo repository.UsersRepositoryI,
	assignmentsRepo repository.AssignmentsRepositoryI,
	badgesRepo repository.BadgesRepositoryI,
) *BadgeService {
	return &BadgeService{
		usersRepo:       usersRepo,
		assignmentsRepo: assignmentsRepo,
		badgesRepo:      badgesRepo,
		now:             time.Now,
	}
}

type criteriaRule struct {
	metric    string
	threshold int
}

// parseCriteria reads a "METRIC:THRESHOLD" string. Malformed criteria yield
// a rule no progress can satisfy rather than an error: a bad catalog row
// must not block evaluation of the rest.
func parseCriteria(criteria string) criteriaRule {
	parts := strings.SplitN(criteria, ":", 2)
	if len(parts) != 2 {
		return criteriaRule{}
	}
	threshold, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return criteriaRule{}
	}
	return criteriaRule{
		metric:    strings.ToUpper(strings.TrimSpace(parts[0])),
		threshold: threshold,
	}
}

func (rule criteriaRule) satisfied(currentStreak, completedCount int) bool {
	switch rule.metric {
	case criteriaStreakDays:
		return currentStreak >= rule.threshold
	case criteriaCompletedChallenges:
		return completedCount >= rule.threshold
	default:
		return false
	}
}

// EvaluateBadges recomputes streak, points and earned badges from completion
// history and persists the user only when something actually changed.
// Returns the badges newly unlocked by this evaluation.
func (bs *BadgeService) EvaluateBadges(ctx context.Context, uid uuid.UUID) ([]entity.Badge, error) {
	user, err := bs.usersRepo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("users repository error: " + err.Error())
	}
	completedCount, err := bs.assignmentsRepo.CountByUserAndStatus(ctx, uid, entity.StatusCompleted)
	if err != nil {
		return nil, errors.New("assignments repository error: " + err.Error())
	}
	completionTimes, err := bs.assignmentsRepo.GetCompletionTimesDesc(ctx, uid)
	if err != nil {
		return nil, errors.New("assignments repository error: " + err.Error())
	}
	currentStreak, _ := CalculateStreaks(completionTimes, bs.now())
	totalPoints := completedCount * pointsPerCompletedChallenge

	catalog, err := bs.badgesRepo.GetAllOrderedByTitle(ctx)
	if err != nil {
		return nil, errors.New("badges repository error: " + err.Error())
	}
	var unlocked []entity.Badge
	earned := user.Badges
	for _, badge := range catalog {
		if slices.Contains(earned, badge.ID) {
			continue
		}
		if parseCriteria(badge.Criteria).satisfied(currentStreak, completedCount) {
			earned = append(earned, badge.ID)
			unlocked = append(unlocked, badge)
		}
	}

	changed := user.Streak != currentStreak ||
		user.TotalPoints != totalPoints ||
		len(unlocked) > 0
	if user.ThemePreference == "" {
		user.ThemePreference = entity.ThemeSystem
		changed = true
	}
	if !changed {
		return nil, nil
	}
	user.Streak = currentStreak
	user.TotalPoints = totalPoints
	user.Badges = earned
	err = bs.usersRepo.UpdateDerived(ctx, user)
	if err != nil {
		return nil, errors.New("users repository error: " + err.Error())
	}
	return unlocked, nil
}

func (bs *BadgeService) Catalog(ctx context.Context) ([]entity.Badge, error) {
	catalog, err := bs.badgesRepo.GetAllOrderedByTitle(ctx)
	if err != nil {
		return nil, errors.New("badges repository error: " + err.Error())
	}
	return catalog, nil
}

// EnsureCatalog seeds the static badge catalog on startup. Existing rows
// are left untouched.
func (bs *BadgeService) EnsureCatalog(ctx context.Context) error {
	seeds := []entity.Badge{
		{
			ID:          "STREAK_3_DAYS",
			Title:       "3 Day Streak",
			Description: "Complete challenges for 3 consecutive days.",
			Icon:        "flame",
			Criteria:    "STREAK_DAYS:3",
		},
		{
			ID:          "STREAK_7_DAYS",
			Title:       "7 Day Streak",
			Description: "Complete challenges for 7 consecutive days.",
			Icon:        "bolt",
			Criteria:    "STREAK_DAYS:7",
		},
		{
			ID:          "FIRST_CHALLENGE_COMPLETED",
			Title:       "First Challenge Completed",
			Description: "Complete your first challenge.",
			Icon:        "sparkles",
			Criteria:    "COMPLETED_CHALLENGES:1",
		},
		{
			ID:          "CHALLENGES_10_COMPLETED",
			Title:       "10 Challenges Completed",
			Description: "Complete 10 total challenges.",
			Icon:        "trophy",
			Criteria:    "COMPLETED_CHALLENGES:10",
		},
		{
			ID:          "CONSISTENCY_30_DAYS",
			Title:       "30 Day Consistency Badge",
			Description: "Maintain a 30 day streak.",
			Icon:        "crown",
			Criteria:    "STREAK_DAYS:30",
		},
	}
	for _, seed := range seeds {
		exists, err := bs.badgesRepo.Exists(ctx, seed.ID)
		if err != nil {
			return errors.New("badges repository error: " + err.Error())
		}
		if exists {
			continue
		}
		err = bs.badgesRepo.Create(ctx, &seed)
		if err != nil {
			return errors.New("badges repository error: " + err.Error())
		}
	}
	return nil
}
