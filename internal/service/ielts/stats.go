package ielts

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"

	"github.com/minhngo/englishpal-backend/internal/domain"
	"github.com/minhngo/englishpal-backend/pkg/ctxutil"
)

// Stats returns derived study statistics for a plan, computed fresh from
// its sessions on every call.
func (s *Service) Stats(ctx context.Context, planID uuid.UUID) (*domain.IELTSStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.plans.GetByID(ctx, userID, planID)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	sessions, err := s.sessions.ListByPlan(ctx, userID, planID)
	if err != nil {
		return nil, fmt.Errorf("stats: %w", err)
	}

	stats := ComputeStats(sessions, p.ExamDate, civil.DateOf(time.Now()))
	return &stats, nil
}

// ComputeStats aggregates sessions into an IELTSStats snapshot relative to
// today. SessionsThisWeek covers the last seven calendar days including
// today. The streak counts consecutive days with at least one session
// ending today; a day without sessions yet keeps yesterday's streak alive
// until midnight. DaysUntilExam goes negative once the exam date has
// passed.
func ComputeStats(sessions []*domain.IELTSSession, examDate *civil.Date, today civil.Date) domain.IELTSStats {
	stats := domain.IELTSStats{
		MinutesBySkill: make(map[domain.IELTSSkill]int, len(domain.Skills())),
	}
	for _, skill := range domain.Skills() {
		stats.MinutesBySkill[skill] = 0
	}

	weekStart := today.AddDays(-6)
	seen := make(map[civil.Date]bool)
	for _, sess := range sessions {
		stats.TotalMinutes += sess.DurationMinutes
		stats.MinutesBySkill[sess.Skill] += sess.DurationMinutes
		if !sess.Date.Before(weekStart) && !sess.Date.After(today) {
			stats.SessionsThisWeek++
		}
		seen[sess.Date] = true
	}

	stats.CurrentStreak = streak(seen, today)

	if examDate != nil {
		days := examDate.DaysSince(today)
		stats.DaysUntilExam = &days
	}

	return stats
}

// streak walks backwards from today over the set of studied days. A miss
// on today itself does not break the streak, a miss on any earlier day
// does.
func streak(studied map[civil.Date]bool, today civil.Date) int {
	dates := make([]civil.Date, 0, len(studied))
	for d := range studied {
		if !d.After(today) {
			dates = append(dates, d)
		}
	}
	if len(dates) == 0 {
		return 0
	}
	sort.Slice(dates, func(i, j int) bool { return dates[j].Before(dates[i]) })

	expected := today
	if dates[0] != today {
		expected = today.AddDays(-1)
	}

	count := 0
	for _, d := range dates {
		if d != expected {
			break
		}
		count++
		expected = expected.AddDays(-1)
	}
	return count
}
