package domain

// WordStatus represents the mastery stage of a vocabulary item (word or phrase).
type WordStatus string

const (
	WordStatusNew       WordStatus = "new"
	WordStatusLearning  WordStatus = "learning"
	WordStatusReviewing WordStatus = "reviewing"
	WordStatusMastered  WordStatus = "mastered"
)

func (s WordStatus) String() string { return string(s) }

func (s WordStatus) IsValid() bool {
	switch s {
	case WordStatusNew, WordStatusLearning, WordStatusReviewing, WordStatusMastered:
		return true
	}
	return false
}

// IELTSSkill represents one of the four IELTS exam skills.
type IELTSSkill string

const (
	SkillListening IELTSSkill = "listening"
	SkillReading   IELTSSkill = "reading"
	SkillWriting   IELTSSkill = "writing"
	SkillSpeaking  IELTSSkill = "speaking"
)

func (s IELTSSkill) String() string { return string(s) }

func (s IELTSSkill) IsValid() bool {
	switch s {
	case SkillListening, SkillReading, SkillWriting, SkillSpeaking:
		return true
	}
	return false
}

// Skills lists all IELTS skills in display order.
// Aggregations iterate this so every skill is reported even with zero minutes.
func Skills() []IELTSSkill {
	return []IELTSSkill{SkillListening, SkillReading, SkillWriting, SkillSpeaking}
}

// MilestoneType represents the kind of progress milestone on an IELTS plan.
type MilestoneType string

const (
	MilestonePracticeTest MilestoneType = "practice_test"
	MilestoneMockExam     MilestoneType = "mock_exam"
	MilestoneAchievement  MilestoneType = "achievement"
	MilestoneNote         MilestoneType = "note"
)

func (m MilestoneType) String() string { return string(m) }

func (m MilestoneType) IsValid() bool {
	switch m {
	case MilestonePracticeTest, MilestoneMockExam, MilestoneAchievement, MilestoneNote:
		return true
	}
	return false
}
