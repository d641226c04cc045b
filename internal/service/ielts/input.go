package ielts

import (
	"math"
	"strings"

	"github.com/golang-sql/civil"
	"github.com/google/uuid"

	"github.com/minhngo/englishpal-backend/internal/domain"
)

// validBand reports whether v is an IELTS band score: 0.0 to 9.0 in half
// steps.
func validBand(v float64) bool {
	if v < 0 || v > 9 {
		return false
	}
	doubled := v * 2
	return doubled == math.Trunc(doubled)
}

func validateScores(field string, scores *domain.BandScores, errs []domain.FieldError) []domain.FieldError {
	if scores == nil {
		return errs
	}
	for name, v := range map[string]*float64{
		field + ".listening": scores.Listening,
		field + ".reading":   scores.Reading,
		field + ".writing":   scores.Writing,
		field + ".speaking":  scores.Speaking,
		field + ".overall":   scores.Overall,
	} {
		if v != nil && !validBand(*v) {
			errs = append(errs, domain.FieldError{Field: name, Message: "must be 0.0-9.0 in half steps"})
		}
	}
	return errs
}

// CreatePlanInput holds the parameters for a new study plan.
type CreatePlanInput struct {
	Name             string
	ExamDate         *civil.Date
	TargetScores     domain.BandScores
	CurrentScores    domain.BandScores
	StudyHoursPerDay int
	Notes            *string
}

// Validate checks all fields and collects all errors.
func (i CreatePlanInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}

	if i.StudyHoursPerDay < 1 || i.StudyHoursPerDay > 12 {
		errs = append(errs, domain.FieldError{Field: "study_hours_per_day", Message: "must be between 1 and 12"})
	}
	if i.ExamDate != nil && !i.ExamDate.IsValid() {
		errs = append(errs, domain.FieldError{Field: "exam_date", Message: "invalid date"})
	}

	errs = validateScores("target_scores", &i.TargetScores, errs)
	errs = validateScores("current_scores", &i.CurrentScores, errs)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdatePlanInput holds the parameters for editing a plan. Nil fields are
// left unchanged; a set score group replaces the whole group.
type UpdatePlanInput struct {
	PlanID           uuid.UUID
	Name             *string
	ExamDate         *civil.Date
	TargetScores     *domain.BandScores
	CurrentScores    *domain.BandScores
	StudyHoursPerDay *int
	Notes            *string
}

// Validate checks all fields and collects all errors.
func (i UpdatePlanInput) Validate() error {
	var errs []domain.FieldError

	if i.PlanID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "plan_id", Message: "required"})
	}
	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if i.StudyHoursPerDay != nil && (*i.StudyHoursPerDay < 1 || *i.StudyHoursPerDay > 12) {
		errs = append(errs, domain.FieldError{Field: "study_hours_per_day", Message: "must be between 1 and 12"})
	}
	if i.ExamDate != nil && !i.ExamDate.IsValid() {
		errs = append(errs, domain.FieldError{Field: "exam_date", Message: "invalid date"})
	}

	errs = validateScores("target_scores", i.TargetScores, errs)
	errs = validateScores("current_scores", i.CurrentScores, errs)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LogSessionInput holds the parameters for logging one study session.
// A nil Date defaults to today.
type LogSessionInput struct {
	PlanID          uuid.UUID
	Skill           domain.IELTSSkill
	DurationMinutes int
	Activity        *string
	Notes           *string
	Date            *civil.Date
}

// Validate checks all fields and collects all errors.
func (i LogSessionInput) Validate() error {
	var errs []domain.FieldError

	if i.PlanID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "plan_id", Message: "required"})
	}
	if !i.Skill.IsValid() {
		errs = append(errs, domain.FieldError{Field: "skill", Message: "unknown skill"})
	}
	if i.DurationMinutes <= 0 {
		errs = append(errs, domain.FieldError{Field: "duration_minutes", Message: "must be positive"})
	} else if i.DurationMinutes > 24*60 {
		errs = append(errs, domain.FieldError{Field: "duration_minutes", Message: "max 1440"})
	}
	if i.Date != nil && !i.Date.IsValid() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "invalid date"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateMilestoneInput holds the parameters for a new milestone. A nil Date
// defaults to today.
type CreateMilestoneInput struct {
	PlanID uuid.UUID
	Type   domain.MilestoneType
	Scores domain.BandScores
	Title  *string
	Notes  *string
	Date   *civil.Date
}

// Validate checks all fields and collects all errors.
func (i CreateMilestoneInput) Validate() error {
	var errs []domain.FieldError

	if i.PlanID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "plan_id", Message: "required"})
	}
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "milestone_type", Message: "unknown type"})
	}
	if i.Title != nil && len(strings.TrimSpace(*i.Title)) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	if i.Date != nil && !i.Date.IsValid() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "invalid date"})
	}

	errs = validateScores("scores", &i.Scores, errs)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
