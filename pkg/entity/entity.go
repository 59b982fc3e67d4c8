package entity

import (
	"time"

	"github.com/google/uuid"
)

// Mood is the user-reported daily energy state driving challenge selection.
type Mood string

const (
	MoodLow     Mood = "LOW"
	MoodNeutral Mood = "NEUTRAL"
	MoodHigh    Mood = "HIGH"
)

// EnergyLevel is a challenge attribute matched against mood.
type EnergyLevel string

const (
	EnergyLow    EnergyLevel = "LOW"
	EnergyMedium EnergyLevel = "MEDIUM"
	EnergyHigh   EnergyLevel = "HIGH"
)

// Culture tags challenges and users. GLOBAL challenges match every user.
type Culture string

const (
	CultureIndia  Culture = "INDIA"
	CultureRussia Culture = "RUSSIA"
	CultureGlobal Culture = "GLOBAL"
)

type ChallengeCategory string

const (
	CategoryExploreCity ChallengeCategory = "EXPLORE_CITY"
	CategoryFood        ChallengeCategory = "FOOD"
	CategoryCreativity  ChallengeCategory = "CREATIVITY"
	CategoryKindness    ChallengeCategory = "KINDNESS"
	CategoryMindfulness ChallengeCategory = "MINDFULNESS"
	CategoryFitness     ChallengeCategory = "FITNESS"
)

// CompletionStatus has exactly two states. COMPLETED is terminal.
type CompletionStatus string

const (
	StatusAssigned  CompletionStatus = "ASSIGNED"
	StatusCompleted CompletionStatus = "COMPLETED"
)

type ThemePreference string

const (
	ThemeLight  ThemePreference = "LIGHT"
	ThemeDark   ThemePreference = "DARK"
	ThemeSystem ThemePreference = "SYSTEM"
)

// AssignmentSource tells daily-rotation rows apart from explicitly started
// ones. The at-most-one-per-day unique index only covers DAILY rows.
type AssignmentSource string

const (
	SourceDaily  AssignmentSource = "DAILY"
	SourceManual AssignmentSource = "MANUAL"
)

type User struct {
	ID              uuid.UUID
	Name            string
	PasswordHash    string
	Culture         Culture
	Streak          int
	TotalPoints     int
	Badges          []string
	ThemePreference ThemePreference
}

type Challenge struct {
	ID          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"desc"`
	Category    ChallengeCategory `json:"category"`
	EnergyLevel EnergyLevel       `json:"energy_level"`
	Culture     Culture           `json:"culture"`
	Active      bool              `json:"active"`
}

type Assignment struct {
	ID             uuid.UUID        `json:"id"`
	UserID         uuid.UUID        `json:"uid"`
	ChallengeID    uuid.UUID        `json:"challenge_id"`
	Status         CompletionStatus `json:"status"`
	Source         AssignmentSource `json:"source"`
	StartTime      time.Time        `json:"start_time"`
	CompletionTime *time.Time       `json:"completion_time,omitempty"`
	Mood           *Mood            `json:"mood,omitempty"`
}

// Badge criteria is a METRIC:THRESHOLD rule string, e.g. "STREAK_DAYS:7".
type Badge struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"desc"`
	Icon        string `json:"icon"`
	Criteria    string `json:"criteria"`
}

type UserProgress struct {
	UserID         uuid.UUID `json:"uid"`
	TotalAssigned  int       `json:"total_assigned"`
	TotalCompleted int       `json:"total_completed"`
	Percentage     float64   `json:"percentage"`
}
