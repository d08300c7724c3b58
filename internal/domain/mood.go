package domain

// Mood is one of the fixed emotional states a user can report before a draw.
type Mood string

// The eight supported moods. Card weighting tables are keyed by these values;
// any other mood string falls back to a neutral weight of 1.0.
const (
	MoodAnxious       Mood = "anxious"
	MoodExcited       Mood = "excited"
	MoodUncertain     Mood = "uncertain"
	MoodHopeful       Mood = "hopeful"
	MoodPeaceful      Mood = "peaceful"
	MoodFrustrated    Mood = "frustrated"
	MoodCurious       Mood = "curious"
	MoodContemplative Mood = "contemplative"
)

// AllMoods lists every supported mood, in display order.
func AllMoods() []Mood {
	return []Mood{
		MoodAnxious,
		MoodExcited,
		MoodUncertain,
		MoodHopeful,
		MoodPeaceful,
		MoodFrustrated,
		MoodCurious,
		MoodContemplative,
	}
}

// IsValid reports whether the mood is one of the supported values.
func (m Mood) IsValid() bool {
	switch m {
	case MoodAnxious, MoodExcited, MoodUncertain, MoodHopeful,
		MoodPeaceful, MoodFrustrated, MoodCurious, MoodContemplative:
		return true
	}
	return false
}
