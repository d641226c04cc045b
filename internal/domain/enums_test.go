package domain

import "testing"

func TestWordStatus_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status WordStatus
		want   bool
	}{
		{WordStatusNew, true},
		{WordStatusLearning, true},
		{WordStatusReviewing, true},
		{WordStatusMastered, true},
		{WordStatus("MASTERED"), false},
		{WordStatus("done"), false},
		{WordStatus(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			t.Parallel()
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("WordStatus(%q).IsValid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestIELTSSkill_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		skill IELTSSkill
		want  bool
	}{
		{SkillListening, true},
		{SkillReading, true},
		{SkillWriting, true},
		{SkillSpeaking, true},
		{IELTSSkill("grammar"), false},
		{IELTSSkill(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.skill), func(t *testing.T) {
			t.Parallel()
			if got := tt.skill.IsValid(); got != tt.want {
				t.Errorf("IELTSSkill(%q).IsValid() = %v, want %v", tt.skill, got, tt.want)
			}
		})
	}
}

func TestSkills_CoversAllFour(t *testing.T) {
	t.Parallel()

	skills := Skills()
	if len(skills) != 4 {
		t.Fatalf("Skills() returned %d skills, want 4", len(skills))
	}
	for _, s := range skills {
		if !s.IsValid() {
			t.Errorf("Skills() contains invalid skill %q", s)
		}
	}
}

func TestMilestoneType_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mt   MilestoneType
		want bool
	}{
		{MilestonePracticeTest, true},
		{MilestoneMockExam, true},
		{MilestoneAchievement, true},
		{MilestoneNote, true},
		{MilestoneType("exam"), false},
		{MilestoneType(""), false},
	}
	for _, tt := range tests {
		t.Run(string(tt.mt), func(t *testing.T) {
			t.Parallel()
			if got := tt.mt.IsValid(); got != tt.want {
				t.Errorf("MilestoneType(%q).IsValid() = %v, want %v", tt.mt, got, tt.want)
			}
		})
	}
}
