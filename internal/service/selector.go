package service

import (
	"fmt"
	"math/rand"
	"sync"

	errorvalues "github.com/limbo/advent/internal/error_values"
	"github.com/limbo/advent/pkg/entity"
)

// ChallengeSelector picks a daily challenge from the active pool based on
// mood, culture and rotation rules. Selection is random: two calls with
// identical inputs may disagree, per-day stability comes from the preview
// cache, not from here.
type ChallengeSelector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewChallengeSelector takes an explicit source so tests can pin outcomes.
func NewChallengeSelector(src rand.Source) *ChallengeSelector {
	return &ChallengeSelector{
		rng: rand.New(src),
	}
}

// IsCrossCulturalDay reports whether the next assignment should target the
// other culture. Every 7th assignment is cross-cultural: counts 7, 14, ...
func IsCrossCulturalDay(assignedCount int) bool {
	return assignedCount > 0 && assignedCount%7 == 0
}

func (cs *ChallengeSelector) Select(
	pool []entity.Challenge,
	mood entity.Mood,
	homeCulture entity.Culture,
	yesterdayCategory entity.ChallengeCategory,
	crossCultural bool,
) (*entity.Challenge, error) {
	energy := mapMoodToEnergy(mood)
	target := targetCulture(homeCulture, crossCultural)

	byEnergy := filterByEnergy(pool, energy)
	byCulture := filterByCulture(byEnergy, target)
	candidates := excludeCategory(byCulture, yesterdayCategory)
	if len(candidates) == 0 {
		candidates = byCulture
	}
	if len(candidates) == 0 {
		candidates = byEnergy
	}
	if len(candidates) == 0 {
		candidates = pool
	}
	if len(candidates) == 0 {
		return nil, errorvalues.ErrNoChallengesAvailable
	}

	cs.mu.Lock()
	picked := candidates[cs.rng.Intn(len(candidates))]
	cs.mu.Unlock()
	return &picked, nil
}

// mapMoodToEnergy is total over the three moods. An unknown mood is a caller
// contract violation, never a silent fallback.
func mapMoodToEnergy(mood entity.Mood) entity.EnergyLevel {
	switch mood {
	case entity.MoodLow:
		return entity.EnergyLow
	case entity.MoodNeutral:
		return entity.EnergyMedium
	case entity.MoodHigh:
		return entity.EnergyHigh
	}
	panic(fmt.Sprintf("unreachable: unknown mood %q", mood))
}

// targetCulture swaps to the other known culture on cross-cultural days.
// On normal days an unset home culture defaults to GLOBAL.
func targetCulture(home entity.Culture, crossCultural bool) entity.Culture {
	if crossCultural {
		if home == "" || home == entity.CultureIndia {
			return entity.CultureRussia
		}
		return entity.CultureIndia
	}
	if home == "" {
		return entity.CultureGlobal
	}
	return home
}

func filterByEnergy(pool []entity.Challenge, energy entity.EnergyLevel) []entity.Challenge {
	result := make([]entity.Challenge, 0, len(pool))
	for _, c := range pool {
		if c.EnergyLevel == energy {
			result = append(result, c)
		}
	}
	return result
}

// GLOBAL challenges always match
func filterByCulture(pool []entity.Challenge, target entity.Culture) []entity.Challenge {
	result := make([]entity.Challenge, 0, len(pool))
	for _, c := range pool {
		if c.Culture == target || c.Culture == entity.CultureGlobal {
			result = append(result, c)
		}
	}
	return result
}

func excludeCategory(pool []entity.Challenge, category entity.ChallengeCategory) []entity.Challenge {
	if category == "" {
		return pool
	}
	result := make([]entity.Challenge, 0, len(pool))
	for _, c := range pool {
		if c.Category != category {
			result = append(result, c)
		}
	}
	return result
}
