package domain

// Card is one immutable entry of the fixed 22-card major arcana catalog.
// Downstream persistence stores only the ID and name, so catalog edits must
// keep IDs stable or historical draw records become unresolvable.
type Card struct {
	ID                 int              `json:"id"`
	Name               string           `json:"name"`
	Number             string           `json:"number"`
	Keywords           []string         `json:"keywords"`
	Archetypes         []string         `json:"archetypes"`
	Elements           []string         `json:"elements"`
	Astrology          string           `json:"astrology,omitempty"`
	TraditionalMeaning string           `json:"traditional_meaning"`
	LightAspects       []string         `json:"light_aspects"`
	ShadowAspects      []string         `json:"shadow_aspects"`
	ImageryDescription string           `json:"imagery_description"`
	Colors             []string         `json:"colors"`
	Symbols            []string         `json:"symbols"`
	MoodWeights        map[Mood]float64 `json:"mood_weights"`
}

// MoodWeight returns the card's multiplier for the given mood, defaulting to
// a neutral 1.0 for moods the card's table does not list.
func (c *Card) MoodWeight(m Mood) float64 {
	if w, ok := c.MoodWeights[m]; ok {
		return w
	}
	return 1.0
}

// CardRef is a lightweight reference to a catalog card, used where the full
// record is not needed (for example in remote service responses).
type CardRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Ref returns a reference to the card.
func (c *Card) Ref() CardRef {
	return CardRef{ID: c.ID, Name: c.Name}
}
