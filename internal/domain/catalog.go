package domain

// CatalogSize is the number of cards in the major arcana catalog.
const CatalogSize = 22

// Cards returns the full major arcana catalog in ID order.
// The catalog is fixed at startup and must be treated as read-only;
// callers must not mutate the returned cards.
func Cards() []Card {
	return majorArcana
}

// CardByID returns the catalog card with the given ID.
// Returns ErrCardNotFound if the ID is outside the catalog.
func CardByID(id int) (Card, error) {
	if id < 0 || id >= len(majorArcana) {
		return Card{}, ErrCardNotFound
	}
	return majorArcana[id], nil
}

var majorArcana = []Card{
	{
		ID: 0, Name: "The Fool", Number: "0",
		Keywords:           []string{"new-beginnings", "innocence", "spontaneity", "faith", "potential"},
		Archetypes:         []string{"innocent", "seeker", "beginner"},
		Elements:           []string{"air"},
		Astrology:          "Uranus",
		TraditionalMeaning: "New beginnings, innocence, spontaneity, leap of faith",
		ShadowAspects:      []string{"recklessness", "naivety", "foolishness", "poor judgment"},
		LightAspects:       []string{"faith", "optimism", "adventure", "trust", "openness"},
		ImageryDescription: "A young traveler steps toward a cliff edge, face to the sun, a white rose in hand and a small dog at their heels.",
		Colors:             []string{"yellow", "white", "sky blue"},
		Symbols:            []string{"cliff", "white rose", "dog", "knapsack"},
		MoodWeights: map[Mood]float64{
			MoodAnxious: 0.3, MoodExcited: 1.2, MoodUncertain: 1.1, MoodHopeful: 1.3,
			MoodPeaceful: 0.8, MoodFrustrated: 0.7, MoodCurious: 1.2, MoodContemplative: 0.9,
		},
	},
	{
		ID: 1, Name: "The Magician", Number: "I",
		Keywords:           []string{"manifestation", "power", "skill", "concentration", "action"},
		Archetypes:         []string{"creator", "magician", "alchemist"},
		Elements:           []string{"fire", "air"},
		Astrology:          "Mercury",
		TraditionalMeaning: "Manifestation, resourcefulness, power, inspired action",
		ShadowAspects:      []string{"manipulation", "poor planning", "unused talents"},
		LightAspects:       []string{"willpower", "desire", "creation", "manifestation"},
		ImageryDescription: "A robed figure raises a wand to the heavens, the four suit emblems arrayed on the table before them, an infinity sign overhead.",
		Colors:             []string{"red", "white", "gold"},
		Symbols:            []string{"infinity sign", "wand", "altar", "ouroboros belt"},
		MoodWeights: map[Mood]float64{
			MoodAnxious: 0.8, MoodExcited: 1.3, MoodUncertain: 0.9, MoodHopeful: 1.2,
			MoodPeaceful: 0.7, MoodFrustrated: 1.1, MoodCurious: 1.0, MoodContemplative: 0.8,
		},
	},
	{
		ID: 2, Name: "The High Priestess", Number: "II",
		Keywords:           []string{"intuition", "sacred-knowledge", "divine-feminine", "subconscious"},
		Archetypes:         []string{"wise-woman", "oracle", "mystic"},
		Elements:           []string{"water"},
		Astrology:          "Moon",
		TraditionalMeaning: "Intuition, sacred knowledge, divine feminine, the subconscious mind",
		ShadowAspects:      []string{"secrets", "withdrawn", "silence", "repressed-feelings"},
		LightAspects:       []string{"intuitive", "wise", "serene", "understanding"},
		ImageryDescription: "A veiled priestess sits between two pillars, a crescent moon at her feet and a scroll half-hidden in her lap.",
		Colors:             []string{"blue", "silver", "white"},
		Symbols:            []string{"twin pillars", "crescent moon", "veil", "scroll"},
		MoodWeights: map[Mood]float64{
			MoodAnxious: 1.1, MoodExcited: 0.6, MoodUncertain: 1.2, MoodHopeful: 0.9,
			MoodPeaceful: 1.3, MoodFrustrated: 0.8, MoodCurious: 1.1, MoodContemplative: 1.4,
		},
	},
	{
		ID: 3, Name: "The Empress", Number: "III",
		Keywords:           []string{"fertility", "femininity", "beauty", "nature", "abundance"},
		Archetypes:         []string{"mother", "creator", "nurturer"},
		Elements:           []string{"earth"},
		Astrology:          "Venus",
		TraditionalMeaning: "Fertility, femininity, beauty, nature, abundance",
		ShadowAspects:      []string{"creative-block", "dependence", "smothering", "lack"},
		LightAspects:       []string{"motherhood", "fertility", "sensuality", "creativity"},
		ImageryDescription: "A crowned figure reclines in a field of ripe wheat, a heart-shaped shield bearing the sign of Venus resting beside her throne.",
		Colors:             []string{"green", "gold", "rose"},
		Symbols:            []string{"wheat", "venus shield", "crown of stars", "flowing river"},
		MoodWeights: map[Mood]float64{
			MoodAnxious: 0.7, MoodExcited: 1.1, MoodUncertain: 0.8, MoodHopeful: 1.2,
			MoodPeaceful: 1.3, MoodFrustrated: 0.6, MoodCurious: 0.9, MoodContemplative: 1.0,
		},
	},
	{
		ID: 4, Name: "The Emperor", Number: "IV",
		Keywords:           []string{"authority", "father-figure", "structure", "control", "leadership"},
		Archetypes:         []string{"ruler", "father", "leader"},
		Elements:           []string{"fire"},
		Astrology:          "Aries",
		TraditionalMeaning: "Authority, father-figure, structure, control",
		ShadowAspects:      []string{"domination", "excessive-control", "rigidity", "lack-of-compassion"},
		LightAspects:       []string{"leadership", "logic", "stability", "security"},
		ImageryDescription: "An armored ruler sits on a stone throne carved with rams' heads, an ankh scepter in one hand and an orb in the other.",
		Colors:             []string{"red", "orange", "grey"},
		Symbols:            []string{"stone throne", "ram heads", "ankh scepter", "mountains"},
		MoodWeights: map[Mood]float64{
			MoodAnxious: 1.0, MoodExcited: 0.8, MoodUncertain: 1.1, MoodHopeful: 1.0,
			MoodPeaceful: 0.7, MoodFrustrated: 1.2, MoodCurious: 0.8, MoodContemplative: 0.9,
		},
	},
	{
		ID: 5, Name: "The Hierophant", Number: "V",
		Keywords:           []string{"spiritual-wisdom", "religious-beliefs", "conformity", "tradition"},
		Archetypes:         []string{"teacher", "guide", "traditionalist"},
		Elements:           []string{"earth"},
		Astrology:          "Taurus",
		TraditionalMeaning: "Spiritual wisdom, religious beliefs, conformity, tradition, institutions",
		ShadowAspects:      []string{"restriction", "challenging-the-status-quo", "personal-beliefs"},
		LightAspects:       []string{"education", "knowledge", "beliefs", "conformity"},
		ImageryDescription: "A robed teacher raises a hand in blessing before two kneeling acolytes, crossed keys at his feet and a triple crown above.",
		Colors:             []string{"red", "white", "gold"},
		Symbols:            []string{"crossed keys", "triple crown", "pillars", "acolytes"},
		MoodWeights: map[Mood]float64{
			MoodAnxious: 1.0, MoodExcited: 0.7, MoodUncertain: 1.1, MoodHopeful: 0.9,
			MoodPeaceful: 1.2, MoodFrustrated: 0.8, MoodCurious: 1.0, MoodContemplative: 1.3,
		},
	},
	{
		ID: 6, Name: "The Lovers", Number: "VI",
		Keywords:           []string{"love", "harmony", "relationships", "values-alignment", "choices"},
		Archetypes:         []string{"lover", "partner", "chooser"},
		Elements:           []string{"air"},
		Astrology:          "Gemini",
		TraditionalMeaning: "Love, harmony, relationships, values alignment",
		ShadowAspects:      []string{"disharmony", "imbalance", "misalignment-of-values", "indecision"},
		LightAspects:       []string{"love", "unity", "relationships", "partnerships"},
		ImageryDescription: "Two figures stand beneath a radiant angel, a fruit tree behind one and a tree of flames behind the other.",
		Colors:             []string{"sky blue", "green", "flame orange"},
		Symbols:            []string{"angel", "tree of knowledge", "serpent", "sun"},
		MoodWeights: map[Mood]float64{
			MoodAnxious: 0.9, MoodExcited: 1.2, MoodUncertain: 1.3, MoodHopeful: 1.2,
			MoodPeaceful: 1.1, MoodFrustrated: 0.7, MoodCurious: 1.0, MoodContemplative: 1.0,
		},
	},
	{
		ID: 7, Name: "The Chariot", Number: "VII",
		Keywords:           []string{"control", "willpower", "success", "determination", "direction"},
		Archetypes:         []string{"warrior", "victor", "driver"},
		Elements:           []string{"water"},
		Astrology:          "Cancer",
		TraditionalMeaning: "Control, willpower, success, determination, direction",
		ShadowAspects:      []string{"lack-of-control", "lack-of-direction", "aggression"},
		LightAspects:       []string{"control", "willpower", "victory", "assertion"},
		ImageryDescription: "An armored charioteer stands beneath a starry canopy, drawn by one black and one white sphinx facing opposite ways.",
		Colors:             []string{"blue", "black", "white"},
		Symbols:            []string{"sphinxes", "starry canopy", "crescent moons", "city walls"},
		MoodWeights: map[Mood]float64{
			MoodAnxious: 0.8, MoodExcited: 1.1, MoodUncertain: 0.9, MoodHopeful: 1.2,
			MoodPeaceful: 0.6, MoodFrustrated: 1.3, MoodCurious: 0.9, MoodContemplative: 0.7,
		},
	},
	{
		ID: 8, Name: "Strength", Number: "VIII",
		Keywords:           []string{"strength", "courage", "patience", "control", "compassion"},
		Archetypes:         []string{"healer", "saint", "tamer"},
		Elements:           []string{"fire"},
		Astrology:          "Leo",
		TraditionalMeaning: "Strength, courage, patience, control, compassion",
		ShadowAspects:      []string{"self-doubt", "lack-of-confidence", "inadequacy"},
		LightAspects:       []string{"strength", "courage", "patience", "control"},
		ImageryDescription: "A garlanded figure gently closes a lion's jaws with bare hands, an infinity sign hovering above her brow.",
		Colors:             []string{"white", "gold", "amber"},
		Symbols:            []string{"lion", "infinity sign", "garland", "mountain"},
		MoodWeights: map[Mood]float64{
			MoodAnxious: 1.2, MoodExcited: 1.0, MoodUncertain: 1.1, MoodHopeful: 1.1,
			MoodPeaceful: 1.2, MoodFrustrated: 1.3, MoodCurious: 0.9, MoodContemplative: 1.0,
		},
	},
	{
		ID: 9, Name: "The Hermit", Number: "IX",
		Keywords:           []string{"soul-searching", "seeking-inner-guidance", "looking-inward"},
		Archetypes:         []string{"sage", "seeker", "guide"},
		Elements:           []string{"earth"},
		Astrology:          "Virgo",
		TraditionalMeaning: "Soul searching, seeking inner guidance, looking inward",
		ShadowAspects:      []string{"isolation", "loneliness", "withdrawal", "paranoia"},
		LightAspects:       []string{"self-reflection", "introspection", "guidance", "solitude"},
		ImageryDescription: "A cloaked elder stands alone on a snowy peak, holding a lantern that shelters a single six-pointed star.",
		Colors:             []string{"grey", "deep blue", "lantern gold"},
		Symbols:            []string{"lantern", "six-pointed star", "staff", "snowy peak"},
		MoodWeights: map[Mood]float64{
			MoodAnxious: 1.1, MoodExcited: 0.5, MoodUncertain: 1.3, MoodHopeful: 0.8,
			MoodPeaceful: 1.2, MoodFrustrated: 1.0, MoodCurious: 1.2, MoodContemplative: 1.4,
		},
	},
	{
		ID: 10, Name: "Wheel of Fortune", Number: "X",
		Keywords:           []string{"change", "cycles", "fate", "turning-point", "luck"},
		Archetypes:         []string{"gambler", "opportunist", "fatalist"},
		Elements:           []string{"fire"},
		Astrology:          "Jupiter",
		TraditionalMeaning: "Change, cycles, fate, turning point, good luck",
		ShadowAspects:      []string{"lack-of-control", "clinging-to-the-past", "bad-luck"},
		LightAspects:       []string{"good-luck", "karma", "life-cycles", "destiny"},
		ImageryDescription: "A great wheel inscribed with alchemical marks turns in the clouds, a sphinx perched on top and winged creatures reading in each corner.",
		Colors:             []string{"royal blue", "gold", "crimson"},
		Symbols:            []string{"wheel", "sphinx", "serpent", "winged creatures"},
		MoodWeights: map[Mood]float64{
			MoodAnxious: 1.0, MoodExcited: 1.2, MoodUncertain: 1.3, MoodHopeful: 1.2,
			MoodPeaceful: 0.8, MoodFrustrated: 1.1, MoodCurious: 1.1, MoodContemplative: 1.0,
		},
	},
	{
		ID: 11, Name: "Justice", Number: "XI",
		Keywords:           []string{"justice", "fairness", "truth", "cause-and-effect", "law"},
		Archetypes:         []string{"judge", "arbiter", "seeker-of-truth"},
		Elements:           []string{"air"},
		Astrology:          "Libra",
		TraditionalMeaning: "Justice, fairness, truth, cause and effect, law",
		ShadowAspects:      []string{"unfairness", "lack-of-accountability", "dishonesty"},
		LightAspects:       []string{"justice", "truth", "fairness", "integrity"},
		ImageryDescription: "A crowned figure sits between two pillars holding an upright sword in one hand and balanced scales in the other.",
		Colors:             []string{"red", "green", "gold"},
		Symbols:            []string{"scales", "sword", "pillars", "crown"},
		MoodWeights: map[Mood]float64{
			MoodAnxious: 1.0, MoodExcited: 0.8, MoodUncertain: 1.1, MoodHopeful: 1.0,
			MoodPeaceful: 1.1, MoodFrustrated: 1.2, MoodCurious: 1.0, MoodContemplative: 1.2,
		},
	},
	{
		ID: 12, Name: "The Hanged Man", Number: "XII",
		Keywords:           []string{"suspension", "restriction", "letting-go", "sacrifice"},
		Archetypes:         []string{"martyr", "sacrificer", "suspended-one"},
		Elements:           []string{"water"},
		Astrology:          "Neptune",
		TraditionalMeaning: "Suspension, restriction, letting go, sacrifice",
		ShadowAspects:      []string{"delays", "resistance", "stalling", "needless-sacrifice"},
		LightAspects:       []string{"letting-go", "surrendering", "new-perspective", "sacrifice"},
		ImageryDescription: "A serene figure hangs upside-down from a living tree by one ankle, legs crossed, a soft halo around his head.",
		Colors:             []string{"blue", "red", "pale gold"},
		Symbols:            []string{"living gallows", "halo", "crossed legs", "bound ankle"},
		MoodWeights: map[Mood]float64{
			MoodAnxious: 1.2, MoodExcited: 0.4, MoodUncertain: 1.3, MoodHopeful: 0.7,
			MoodPeaceful: 1.1, MoodFrustrated: 1.3, MoodCurious: 1.1, MoodContemplative: 1.4,
		},
	},
	{
		ID: 13, Name: "Death", Number: "XIII",
		Keywords:           []string{"endings", "beginnings", "change", "transformation", "transition"},
		Archetypes:         []string{"transformer", "ender", "renewer"},
		Elements:           []string{"water"},
		Astrology:          "Scorpio",
		TraditionalMeaning: "Endings, beginnings, change, transformation, transition",
		ShadowAspects:      []string{"resistance-to-change", "repeating-negative-patterns"},
		LightAspects:       []string{"transformation", "renewal", "metamorphosis", "release"},
		ImageryDescription: "A skeletal rider in black armor carries a banner bearing a white rose while the sun rises between two distant towers.",
		Colors:             []string{"black", "white", "dawn gold"},
		Symbols:            []string{"white rose banner", "rising sun", "river", "two towers"},
		MoodWeights: map[Mood]float64{
			MoodAnxious: 1.3, MoodExcited: 0.6, MoodUncertain: 1.2, MoodHopeful: 0.8,
			MoodPeaceful: 0.7, MoodFrustrated: 1.1, MoodCurious: 1.0, MoodContemplative: 1.3,
		},
	},
	{
		ID: 14, Name: "Temperance", Number: "XIV",
		Keywords:           []string{"balance", "moderation", "patience", "purpose", "meaning"},
		Archetypes:         []string{"alchemist", "angel", "mixer"},
		Elements:           []string{"fire"},
		Astrology:          "Sagittarius",
		TraditionalMeaning: "Balance, moderation, patience, purpose",
		ShadowAspects:      []string{"imbalance", "excess", "self-indulgence", "clashing"},
		LightAspects:       []string{"balance", "moderation", "patience", "purpose"},
		ImageryDescription: "A winged figure with one foot on land and one in a pool pours water between two cups, a path winding toward distant peaks.",
		Colors:             []string{"white", "blue", "iris violet"},
		Symbols:            []string{"two cups", "wings", "pool", "winding path"},
		MoodWeights: map[Mood]float64{
			MoodAnxious: 1.1, MoodExcited: 0.8, MoodUncertain: 1.0, MoodHopeful: 1.1,
			MoodPeaceful: 1.3, MoodFrustrated: 1.2, MoodCurious: 1.0, MoodContemplative: 1.2,
		},
	},
	{
		ID: 15, Name: "The Devil", Number: "XV",
		Keywords:           []string{"bondage", "addiction", "sexuality", "materialism", "playfulness"},
		Archetypes:         []string{"shadow", "tempter", "bound-one"},
		Elements:           []string{"earth"},
		Astrology:          "Capricorn",
		TraditionalMeaning: "Bondage, addiction, sexuality, materialism, playfulness",
		ShadowAspects:      []string{"addiction", "materialism", "playfulness", "powerlessness"},
		LightAspects:       []string{"humor", "sexuality", "passion", "commitment"},
		ImageryDescription: "A horned figure crouches on a black pedestal above two chained figures whose loose chains could be slipped at any moment.",
		Colors:             []string{"black", "red", "ember orange"},
		Symbols:            []string{"inverted pentagram", "loose chains", "pedestal", "torch"},
		MoodWeights: map[Mood]float64{
			MoodAnxious: 1.2, MoodExcited: 1.1, MoodUncertain: 1.0, MoodHopeful: 0.6,
			MoodPeaceful: 0.5, MoodFrustrated: 1.3, MoodCurious: 1.2, MoodContemplative: 1.0,
		},
	},
	{
		ID: 16, Name: "The Tower", Number: "XVI",
		Keywords:           []string{"sudden-change", "upheaval", "chaos", "revelation", "awakening"},
		Archetypes:         []string{"destroyer", "awakener", "revolutionary"},
		Elements:           []string{"fire"},
		Astrology:          "Mars",
		TraditionalMeaning: "Sudden change, upheaval, chaos, revelation, awakening",
		ShadowAspects:      []string{"disaster", "upheaval", "trauma", "sudden-change"},
		LightAspects:       []string{"revelation", "awakening", "breakthrough", "disaster"},
		ImageryDescription: "Lightning strikes a crowned tower on a jagged peak, flames at the windows and two figures falling through a rain of sparks.",
		Colors:             []string{"storm grey", "flame red", "gold"},
		Symbols:            []string{"lightning bolt", "falling crown", "flames", "jagged peak"},
		MoodWeights: map[Mood]float64{
			MoodAnxious: 1.4, MoodExcited: 0.8, MoodUncertain: 1.3, MoodHopeful: 0.5,
			MoodPeaceful: 0.3, MoodFrustrated: 1.2, MoodCurious: 1.1, MoodContemplative: 1.0,
		},
	},
	{
		ID: 17, Name: "The Star", Number: "XVII",
		Keywords:           []string{"hope", "faith", "purpose", "renewal", "spirituality"},
		Archetypes:         []string{"star", "wisher", "hope-bringer"},
		Elements:           []string{"air"},
		Astrology:          "Aquarius",
		TraditionalMeaning: "Hope, faith, purpose, renewal, spirituality",
		ShadowAspects:      []string{"lack-of-faith", "despair", "self-trust", "disconnection"},
		LightAspects:       []string{"hope", "faith", "purpose", "renewal"},
		ImageryDescription: "A kneeling figure pours water onto land and pool alike beneath one great star ringed by seven smaller ones.",
		Colors:             []string{"deep blue", "silver", "white"},
		Symbols:            []string{"eight stars", "two pitchers", "pool", "ibis"},
		MoodWeights: map[Mood]float64{
			MoodAnxious: 0.8, MoodExcited: 1.1, MoodUncertain: 0.9, MoodHopeful: 1.4,
			MoodPeaceful: 1.3, MoodFrustrated: 0.7, MoodCurious: 1.0, MoodContemplative: 1.2,
		},
	},
	{
		ID: 18, Name: "The Moon", Number: "XVIII",
		Keywords:           []string{"illusion", "fear", "anxiety", "subconscious", "intuition"},
		Archetypes:         []string{"dreamer", "intuitive", "shadow-walker"},
		Elements:           []string{"water"},
		Astrology:          "Pisces",
		TraditionalMeaning: "Illusion, fear, anxiety, subconscious, intuition",
		ShadowAspects:      []string{"fear", "anxiety", "confusion", "illusion"},
		LightAspects:       []string{"intuition", "dreams", "subconscious", "mystery"},
		ImageryDescription: "A full moon with a pensive face lights a path between two towers while a dog and a wolf howl and a crayfish climbs from the water.",
		Colors:             []string{"midnight blue", "pale yellow", "grey"},
		Symbols:            []string{"moon", "dog and wolf", "crayfish", "twin towers"},
		MoodWeights: map[Mood]float64{
			MoodAnxious: 1.4, MoodExcited: 0.6, MoodUncertain: 1.3, MoodHopeful: 0.7,
			MoodPeaceful: 0.8, MoodFrustrated: 1.1, MoodCurious: 1.2, MoodContemplative: 1.3,
		},
	},
	{
		ID: 19, Name: "The Sun", Number: "XIX",
		Keywords:           []string{"joy", "success", "celebration", "positivity", "vitality"},
		Archetypes:         []string{"child", "celebrant", "optimist"},
		Elements:           []string{"fire"},
		Astrology:          "Sun",
		TraditionalMeaning: "Joy, success, celebration, positivity, vitality",
		ShadowAspects:      []string{"inner-child", "feeling-down", "lack-of-enthusiasm"},
		LightAspects:       []string{"joy", "success", "vitality", "enlightenment"},
		ImageryDescription: "A laughing child rides a white horse beneath a radiant sun, a red banner streaming and sunflowers nodding over a garden wall.",
		Colors:             []string{"gold", "orange", "white"},
		Symbols:            []string{"sun", "white horse", "sunflowers", "red banner"},
		MoodWeights: map[Mood]float64{
			MoodAnxious: 0.6, MoodExcited: 1.4, MoodUncertain: 0.7, MoodHopeful: 1.3,
			MoodPeaceful: 1.2, MoodFrustrated: 0.5, MoodCurious: 1.1, MoodContemplative: 0.8,
		},
	},
	{
		ID: 20, Name: "Judgement", Number: "XX",
		Keywords:           []string{"judgement", "rebirth", "inner-calling", "forgiveness"},
		Archetypes:         []string{"judge", "awakener", "caller"},
		Elements:           []string{"fire"},
		Astrology:          "Pluto",
		TraditionalMeaning: "Judgement, rebirth, inner calling, forgiveness",
		ShadowAspects:      []string{"harsh-judgement", "self-doubt", "lack-of-self-awareness"},
		LightAspects:       []string{"judgement", "rebirth", "inner-calling", "forgiveness"},
		ImageryDescription: "An angel sounds a trumpet from the clouds as figures rise from open graves with their arms lifted in answer.",
		Colors:             []string{"white", "sky blue", "flame red"},
		Symbols:            []string{"trumpet", "banner cross", "open graves", "mountains"},
		MoodWeights: map[Mood]float64{
			MoodAnxious: 1.0, MoodExcited: 1.1, MoodUncertain: 1.2, MoodHopeful: 1.1,
			MoodPeaceful: 1.0, MoodFrustrated: 1.0, MoodCurious: 1.1, MoodContemplative: 1.3,
		},
	},
	{
		ID: 21, Name: "The World", Number: "XXI",
		Keywords:           []string{"completion", "accomplishment", "travel", "success", "fulfillment"},
		Archetypes:         []string{"achiever", "completion", "wholeness"},
		Elements:           []string{"earth"},
		Astrology:          "Saturn",
		TraditionalMeaning: "Completion, accomplishment, travel, success, fulfillment",
		ShadowAspects:      []string{"incomplete", "no-closure", "stagnation", "failed-goals"},
		LightAspects:       []string{"completion", "accomplishment", "success", "fulfillment"},
		ImageryDescription: "A dancing figure floats within a laurel wreath, a wand in each hand, the four winged creatures watching from the corners.",
		Colors:             []string{"green", "violet", "gold"},
		Symbols:            []string{"laurel wreath", "two wands", "winged creatures", "ribbons"},
		MoodWeights: map[Mood]float64{
			MoodAnxious: 0.7, MoodExcited: 1.2, MoodUncertain: 0.8, MoodHopeful: 1.2,
			MoodPeaceful: 1.2, MoodFrustrated: 0.6, MoodCurious: 1.0, MoodContemplative: 1.1,
		},
	},
}
