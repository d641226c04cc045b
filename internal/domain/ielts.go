package domain

import (
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"
)

// IELTSPlan is a named IELTS study goal. Band scores are 0.0–9.0 in half
// steps, all optional. At most one plan per user is active; activation is
// enforced in SQL by the plan repository.
type IELTSPlan struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Name             string
	ExamDate         *civil.Date
	TargetScores     BandScores
	CurrentScores    BandScores
	StudyHoursPerDay int
	Notes            *string
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// BandScores holds per-skill band scores plus the overall band.
type BandScores struct {
	Listening *float64
	Reading   *float64
	Writing   *float64
	Speaking  *float64
	Overall   *float64
}

// IELTSSession is one logged study session. Immutable once created except
// for deletion. Multiple sessions may share a date.
type IELTSSession struct {
	ID              uuid.UUID
	PlanID          uuid.UUID
	UserID          uuid.UUID
	Skill           IELTSSkill
	DurationMinutes int
	Activity        *string
	Notes           *string
	Date            civil.Date
	CreatedAt       time.Time
}

// IELTSMilestone marks a scored checkpoint (practice test, mock exam, …)
// on a plan's timeline.
type IELTSMilestone struct {
	ID        uuid.UUID
	PlanID    uuid.UUID
	UserID    uuid.UUID
	Type      MilestoneType
	Scores    BandScores
	Title     *string
	Notes     *string
	Date      civil.Date
	CreatedAt time.Time
}

// IELTSStats is the derived statistics snapshot for a plan. It is computed
// fresh from sessions on every request and never persisted, so it cannot go
// stale.
type IELTSStats struct {
	TotalMinutes     int
	MinutesBySkill   map[IELTSSkill]int
	SessionsThisWeek int
	CurrentStreak    int
	DaysUntilExam    *int
}
