package domain

// Advance is the flashcard status transition rule. Pure function — no DB,
// no clock; the caller persists the returned status.
//
// A failed self-assessment resets any status to "learning" (not "new"):
// a forgotten word is never brand new again. A successful one moves a single
// step along new → learning → reviewing → mastered; mastered is absorbing.
func Advance(s WordStatus, knew bool) (WordStatus, error) {
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}

	if !knew {
		return WordStatusLearning, nil
	}

	switch s {
	case WordStatusNew:
		return WordStatusLearning, nil
	case WordStatusLearning:
		return WordStatusReviewing, nil
	default:
		// reviewing and mastered both land on mastered
		return WordStatusMastered, nil
	}
}
