package catalog

// Rhythm tier configurations. Each tier is a step up in rhythm
// complexity; tempo is the default playback tempo for the tier.
type rhythmTier struct {
	Name     string
	Patterns []string
	TempoBPM int
}

var rhythmTiers = map[int]rhythmTier{
	1: {Name: "Quarters Only", Patterns: []string{"quarter"}, TempoBPM: 65},
	2: {Name: "Quarters + Halves", Patterns: []string{"quarter", "half"}, TempoBPM: 70},
	3: {Name: "Quarters + Eighths", Patterns: []string{"quarter", "eighth"}, TempoBPM: 70},
	4: {Name: "All Rhythms", Patterns: []string{"quarter", "half", "eighth", "whole"}, TempoBPM: 75},
	5: {Name: "Advanced + Rests", Patterns: []string{"quarter", "half", "eighth", "whole", "dotted"}, TempoBPM: 80},
}

// nodeSpec is the authoring shorthand a node is generated from. Zero
// values get sensible defaults in buildNode.
type nodeSpec struct {
	ID              string
	Name            string
	Description     string
	Category        Category
	NodeType        NodeType
	Unit            int
	UnitName        string
	Order           int
	OrderInUnit     int
	Prerequisites   []string
	NotePool        []string
	Clef            string
	RhythmTier      int
	ExerciseTypes   []ExerciseType
	QuestionCount   int
	TimeLimitSecs   int
	XPReward        int
	AccessoryUnlock string
	IsBoss          bool
	IsReview        bool
	ReviewsUnits    []int
}

func buildNode(spec nodeSpec) Node {
	if spec.RhythmTier == 0 {
		spec.RhythmTier = 1
	}
	if spec.QuestionCount == 0 {
		spec.QuestionCount = 10
	}
	if spec.XPReward == 0 {
		spec.XPReward = 50
	}
	if len(spec.ExerciseTypes) == 0 {
		spec.ExerciseTypes = []ExerciseType{ExerciseNoteRecognition, ExerciseSightReading}
	}
	tier := rhythmTiers[spec.RhythmTier]

	exercises := make([]Exercise, 0, len(spec.ExerciseTypes))
	for _, exType := range spec.ExerciseTypes {
		switch exType {
		case ExerciseNoteRecognition:
			exercises = append(exercises, Exercise{
				Type: ExerciseNoteRecognition,
				Note: &NoteConfig{
					NotePool:      spec.NotePool,
					Clef:          spec.Clef,
					QuestionCount: spec.QuestionCount,
					TimeLimitSecs: spec.TimeLimitSecs,
				},
			})
		case ExerciseSightReading:
			exercises = append(exercises, Exercise{
				Type: ExerciseSightReading,
				SightReading: &SightReadingConfig{
					NotePool:           spec.NotePool,
					Clef:               spec.Clef,
					MeasuresPerPattern: 1,
					TimeSignature:      "4/4",
					RhythmPatterns:     tier.Patterns,
					TempoBPM:           tier.TempoBPM,
				},
			})
		case ExerciseRhythm:
			exercises = append(exercises, Exercise{
				Type: ExerciseRhythm,
				Rhythm: &RhythmConfig{
					Tier:           spec.RhythmTier,
					RhythmPatterns: tier.Patterns,
					TempoBPM:       tier.TempoBPM,
					MeasureCount:   2,
				},
			})
		case ExerciseMemoryGame:
			exercises = append(exercises, Exercise{
				Type: ExerciseMemoryGame,
				Memory: &MemoryConfig{
					NotePool:  spec.NotePool,
					Clef:      spec.Clef,
					PairCount: 6,
				},
			})
		case ExerciseBossChallenge:
			clefs := []string{spec.Clef}
			if spec.Clef == "" {
				clefs = []string{"treble", "bass"}
			}
			exercises = append(exercises, Exercise{
				Type: ExerciseBossChallenge,
				Boss: &BossConfig{
					NotePool:      spec.NotePool,
					Clefs:         clefs,
					QuestionCount: spec.QuestionCount,
					TimeLimitSecs: spec.TimeLimitSecs,
				},
			})
		}
	}

	return Node{
		ID:              spec.ID,
		Name:            spec.Name,
		Description:     spec.Description,
		Category:        spec.Category,
		NodeType:        spec.NodeType,
		Order:           spec.Order,
		Unit:            spec.Unit,
		UnitName:        spec.UnitName,
		OrderInUnit:     spec.OrderInUnit,
		Prerequisites:   spec.Prerequisites,
		Skills:          spec.NotePool,
		Exercises:       exercises,
		XPReward:        spec.XPReward,
		AccessoryUnlock: spec.AccessoryUnlock,
		IsBoss:          spec.IsBoss,
		IsReview:        spec.IsReview,
		ReviewsUnits:    spec.ReviewsUnits,
	}
}

func buildNodes(specs []nodeSpec) []Node {
	nodes := make([]Node, len(specs))
	for i, spec := range specs {
		nodes[i] = buildNode(spec)
	}
	return nodes
}

var units = []Unit{
	{
		ID: "treble_unit_1", Category: CategoryTrebleClef, Order: 1,
		Name: "First Steps", Description: "Meet C, D and E in the treble clef",
		Theme: "The Beginning", Icon: "🌱",
		Reward: UnitReward{Type: "accessory", ID: "sprout_badge", Name: "Music Sprout Badge"},
	},
	{
		ID: "treble_unit_2", Category: CategoryTrebleClef, Order: 2,
		Name: "Five Finger Position", Description: "Extend your range from C to G",
		Theme: "Growing Stronger", Icon: "🌿",
		Reward: UnitReward{Type: "accessory", ID: "five_finger_badge", Name: "Five Finger Badge"},
	},
	{
		ID: "bass_unit_1", Category: CategoryBassClef, Order: 1,
		Name: "Middle C Position", Description: "Start with C, B and A in bass clef",
		Theme: "The Bass Beginning", Icon: "🌱",
		Reward: UnitReward{Type: "accessory", ID: "bass_sprout_badge", Name: "Bass Sprout Badge"},
	},
	{
		ID: "bass_unit_2", Category: CategoryBassClef, Order: 2,
		Name: "Five Finger Low", Description: "Extend downward from C to F",
		Theme: "Going Lower", Icon: "🌿",
		Reward: UnitReward{Type: "accessory", ID: "bass_five_finger_badge", Name: "Bass Five Finger Badge"},
	},
	{
		ID: "rhythm_unit_1", Category: CategoryRhythm, Order: 1,
		Name: "Steady Beat", Description: "Keep time with quarter and half notes",
		Theme: "Finding the Pulse", Icon: "🥁",
		Reward: UnitReward{Type: "accessory", ID: "steady_beat_badge", Name: "Steady Beat Badge"},
	},
	{
		ID: "rhythm_unit_2", Category: CategoryRhythm, Order: 2,
		Name: "Eighth Notes", Description: "Master faster rhythms with eighth notes",
		Theme: "Quick Steps", Icon: "⚡",
		Reward: UnitReward{Type: "accessory", ID: "eighth_note_badge", Name: "Eighth Note Badge"},
	},
}

// skillNodes is the full trail. Nodes are introduced one new element at a
// time, with variety nodes (memory game, speed round, review) between
// discoveries and a mini-boss checkpoint closing each unit.
var skillNodes = buildNodes([]nodeSpec{
	// ============================================
	// TREBLE UNIT 1: First Steps (C4-E4)
	// ============================================
	{
		ID: "treble_1_1", Name: "Meet Middle C", Description: "Learn your very first piano note",
		Category: CategoryTrebleClef, NodeType: NodeTypeDiscovery,
		Unit: 1, UnitName: "First Steps", Order: 1, OrderInUnit: 1,
		Prerequisites: []string{},
		NotePool:      []string{"C4"}, Clef: "treble",
		ExerciseTypes: []ExerciseType{ExerciseNoteRecognition},
		QuestionCount: 6, XPReward: 40,
	},
	{
		ID: "treble_1_2", Name: "C and D", Description: "Add a second note to your collection",
		Category: CategoryTrebleClef, NodeType: NodeTypeDiscovery,
		Unit: 1, UnitName: "First Steps", Order: 2, OrderInUnit: 2,
		Prerequisites: []string{"treble_1_1"},
		NotePool:      []string{"C4", "D4"}, Clef: "treble",
		ExerciseTypes: []ExerciseType{ExerciseNoteRecognition},
		QuestionCount: 8, XPReward: 40,
	},
	{
		ID: "treble_1_3", Name: "Practice C and D", Description: "Drill your first two notes",
		Category: CategoryTrebleClef, NodeType: NodeTypePractice,
		Unit: 1, UnitName: "First Steps", Order: 3, OrderInUnit: 3,
		Prerequisites: []string{"treble_1_2"},
		NotePool:      []string{"C4", "D4"}, Clef: "treble",
		XPReward:      45,
	},
	{
		ID: "treble_1_4", Name: "Meet E", Description: "Complete your first three-note set",
		Category: CategoryTrebleClef, NodeType: NodeTypeDiscovery,
		Unit: 1, UnitName: "First Steps", Order: 4, OrderInUnit: 4,
		Prerequisites: []string{"treble_1_3"},
		NotePool:      []string{"C4", "D4", "E4"}, Clef: "treble",
		ExerciseTypes: []ExerciseType{ExerciseNoteRecognition},
		XPReward:      40,
	},
	{
		ID: "treble_1_5", Name: "Note Match", Description: "Match notes to their places on the staff",
		Category: CategoryTrebleClef, NodeType: NodeTypeMixUp,
		Unit: 1, UnitName: "First Steps", Order: 5, OrderInUnit: 5,
		Prerequisites: []string{"treble_1_4"},
		NotePool:      []string{"C4", "D4", "E4"}, Clef: "treble",
		ExerciseTypes: []ExerciseType{ExerciseMemoryGame},
		XPReward:      50,
	},
	{
		ID: "treble_1_6", Name: "Speed Round: C to E", Description: "How many notes can you name in time?",
		Category: CategoryTrebleClef, NodeType: NodeTypeSpeedRound,
		Unit: 1, UnitName: "First Steps", Order: 6, OrderInUnit: 6,
		Prerequisites: []string{"treble_1_5"},
		NotePool:      []string{"C4", "D4", "E4"}, Clef: "treble",
		ExerciseTypes: []ExerciseType{ExerciseNoteRecognition},
		QuestionCount: 12, TimeLimitSecs: 60, XPReward: 50,
	},
	{
		ID: "treble_1_7", Name: "First Songs", Description: "Read short melodies with your three notes",
		Category: CategoryTrebleClef, NodeType: NodeTypePractice,
		Unit: 1, UnitName: "First Steps", Order: 7, OrderInUnit: 7,
		Prerequisites: []string{"treble_1_6"},
		NotePool:      []string{"C4", "D4", "E4"}, Clef: "treble",
		ExerciseTypes: []ExerciseType{ExerciseSightReading},
		RhythmTier:    2, XPReward: 45,
	},
	{
		ID: "treble_1_8", Name: "First Steps Checkpoint", Description: "Show everything you learned in Unit 1",
		Category: CategoryTrebleClef, NodeType: NodeTypeMiniBoss,
		Unit: 1, UnitName: "First Steps", Order: 8, OrderInUnit: 8,
		Prerequisites: []string{"treble_1_7"},
		NotePool:      []string{"C4", "D4", "E4"}, Clef: "treble",
		ExerciseTypes: []ExerciseType{ExerciseBossChallenge},
		QuestionCount: 15, TimeLimitSecs: 120,
		XPReward:      80, AccessoryUnlock: "sprout_badge", IsBoss: true,
	},

	// ============================================
	// TREBLE UNIT 2: Five Finger Position (C4-G4)
	// ============================================
	{
		ID: "treble_2_1", Name: "Meet F", Description: "Stretch up to your fourth note",
		Category: CategoryTrebleClef, NodeType: NodeTypeDiscovery,
		Unit: 2, UnitName: "Five Finger Position", Order: 9, OrderInUnit: 1,
		Prerequisites: []string{"treble_1_8"},
		NotePool:      []string{"C4", "D4", "E4", "F4"}, Clef: "treble",
		ExerciseTypes: []ExerciseType{ExerciseNoteRecognition},
		XPReward:      40,
	},
	{
		ID: "treble_2_2", Name: "Meet G", Description: "Complete the five finger position",
		Category: CategoryTrebleClef, NodeType: NodeTypeDiscovery,
		Unit: 2, UnitName: "Five Finger Position", Order: 10, OrderInUnit: 2,
		Prerequisites: []string{"treble_2_1"},
		NotePool:      []string{"C4", "D4", "E4", "F4", "G4"}, Clef: "treble",
		ExerciseTypes: []ExerciseType{ExerciseNoteRecognition},
		XPReward:      40,
	},
	{
		ID: "treble_2_3", Name: "Five Finger Practice", Description: "Read melodies across all five notes",
		Category: CategoryTrebleClef, NodeType: NodeTypePractice,
		Unit: 2, UnitName: "Five Finger Position", Order: 11, OrderInUnit: 3,
		Prerequisites: []string{"treble_2_2"},
		NotePool:      []string{"C4", "D4", "E4", "F4", "G4"}, Clef: "treble",
		RhythmTier:    2, XPReward: 45,
	},
	{
		ID: "treble_2_4", Name: "Remember First Steps", Description: "Revisit Unit 1 to keep it fresh",
		Category: CategoryTrebleClef, NodeType: NodeTypeReview,
		Unit: 2, UnitName: "Five Finger Position", Order: 12, OrderInUnit: 4,
		Prerequisites: []string{"treble_2_3"},
		NotePool:      []string{"C4", "D4", "E4"}, Clef: "treble",
		ExerciseTypes: []ExerciseType{ExerciseNoteRecognition, ExerciseMemoryGame},
		XPReward:      35, IsReview: true, ReviewsUnits: []int{1},
	},
	{
		ID: "treble_2_5", Name: "Speed Round: C to G", Description: "Beat the clock across five notes",
		Category: CategoryTrebleClef, NodeType: NodeTypeSpeedRound,
		Unit: 2, UnitName: "Five Finger Position", Order: 13, OrderInUnit: 5,
		Prerequisites: []string{"treble_2_4"},
		NotePool:      []string{"C4", "D4", "E4", "F4", "G4"}, Clef: "treble",
		ExerciseTypes: []ExerciseType{ExerciseNoteRecognition},
		QuestionCount: 15, TimeLimitSecs: 75, XPReward: 50,
	},
	{
		ID: "treble_2_6", Name: "Five Finger Checkpoint", Description: "Master the full five finger position",
		Category: CategoryTrebleClef, NodeType: NodeTypeMiniBoss,
		Unit: 2, UnitName: "Five Finger Position", Order: 14, OrderInUnit: 6,
		Prerequisites: []string{"treble_2_5"},
		NotePool:      []string{"C4", "D4", "E4", "F4", "G4"}, Clef: "treble",
		ExerciseTypes: []ExerciseType{ExerciseBossChallenge},
		QuestionCount: 18, TimeLimitSecs: 150,
		XPReward:      80, AccessoryUnlock: "five_finger_badge", IsBoss: true,
	},

	// ============================================
	// BASS UNIT 1: Middle C Position (C4-A3)
	// ============================================
	{
		ID: "bass_1_1", Name: "Meet Bass C", Description: "Find middle C in the bass clef",
		Category: CategoryBassClef, NodeType: NodeTypeDiscovery,
		Unit: 1, UnitName: "Middle C Position", Order: 1, OrderInUnit: 1,
		Prerequisites: []string{},
		NotePool:      []string{"C4"}, Clef: "bass",
		ExerciseTypes: []ExerciseType{ExerciseNoteRecognition},
		QuestionCount: 6, XPReward: 40,
	},
	{
		ID: "bass_1_2", Name: "C and B", Description: "Step down to your second bass note",
		Category: CategoryBassClef, NodeType: NodeTypeDiscovery,
		Unit: 1, UnitName: "Middle C Position", Order: 2, OrderInUnit: 2,
		Prerequisites: []string{"bass_1_1"},
		NotePool:      []string{"C4", "B3"}, Clef: "bass",
		ExerciseTypes: []ExerciseType{ExerciseNoteRecognition},
		QuestionCount: 8, XPReward: 40,
	},
	{
		ID: "bass_1_3", Name: "Practice C and B", Description: "Drill your first two bass notes",
		Category: CategoryBassClef, NodeType: NodeTypePractice,
		Unit: 1, UnitName: "Middle C Position", Order: 3, OrderInUnit: 3,
		Prerequisites: []string{"bass_1_2"},
		NotePool:      []string{"C4", "B3"}, Clef: "bass",
		XPReward:      45,
	},
	{
		ID: "bass_1_4", Name: "Meet A", Description: "Three bass notes down",
		Category: CategoryBassClef, NodeType: NodeTypeDiscovery,
		Unit: 1, UnitName: "Middle C Position", Order: 4, OrderInUnit: 4,
		Prerequisites: []string{"bass_1_3"},
		NotePool:      []string{"C4", "B3", "A3"}, Clef: "bass",
		ExerciseTypes: []ExerciseType{ExerciseNoteRecognition},
		XPReward:      40,
	},
	{
		ID: "bass_1_5", Name: "Bass Note Match", Description: "Match bass notes to the staff",
		Category: CategoryBassClef, NodeType: NodeTypeMixUp,
		Unit: 1, UnitName: "Middle C Position", Order: 5, OrderInUnit: 5,
		Prerequisites: []string{"bass_1_4"},
		NotePool:      []string{"C4", "B3", "A3"}, Clef: "bass",
		ExerciseTypes: []ExerciseType{ExerciseMemoryGame},
		XPReward:      50,
	},
	{
		ID: "bass_1_6", Name: "Speed Round: Bass Notes", Description: "Quick-fire bass note naming",
		Category: CategoryBassClef, NodeType: NodeTypeSpeedRound,
		Unit: 1, UnitName: "Middle C Position", Order: 6, OrderInUnit: 6,
		Prerequisites: []string{"bass_1_5"},
		NotePool:      []string{"C4", "B3", "A3"}, Clef: "bass",
		ExerciseTypes: []ExerciseType{ExerciseNoteRecognition},
		QuestionCount: 12, TimeLimitSecs: 60, XPReward: 50,
	},
	{
		ID: "bass_1_7", Name: "Reading Low Notes", Description: "Read short bass melodies",
		Category: CategoryBassClef, NodeType: NodeTypePractice,
		Unit: 1, UnitName: "Middle C Position", Order: 7, OrderInUnit: 7,
		Prerequisites: []string{"bass_1_6"},
		NotePool:      []string{"C4", "B3", "A3"}, Clef: "bass",
		ExerciseTypes: []ExerciseType{ExerciseSightReading},
		RhythmTier:    2, XPReward: 45,
	},
	{
		ID: "bass_1_8", Name: "Bass Checkpoint", Description: "Show off your bass clef skills",
		Category: CategoryBassClef, NodeType: NodeTypeMiniBoss,
		Unit: 1, UnitName: "Middle C Position", Order: 8, OrderInUnit: 8,
		Prerequisites: []string{"bass_1_7"},
		NotePool:      []string{"C4", "B3", "A3"}, Clef: "bass",
		ExerciseTypes: []ExerciseType{ExerciseBossChallenge},
		QuestionCount: 15, TimeLimitSecs: 120,
		XPReward:      80, AccessoryUnlock: "bass_sprout_badge", IsBoss: true,
	},

	// ============================================
	// BASS UNIT 2: Five Finger Low (C4-F3)
	// ============================================
	{
		ID: "bass_2_1", Name: "Meet Low G", Description: "Reach down to G below the staff line",
		Category: CategoryBassClef, NodeType: NodeTypeDiscovery,
		Unit: 2, UnitName: "Five Finger Low", Order: 9, OrderInUnit: 1,
		Prerequisites: []string{"bass_1_8"},
		NotePool:      []string{"C4", "B3", "A3", "G3"}, Clef: "bass",
		ExerciseTypes: []ExerciseType{ExerciseNoteRecognition},
		XPReward:      40,
	},
	{
		ID: "bass_2_2", Name: "Meet Low F", Description: "Complete the low five finger position",
		Category: CategoryBassClef, NodeType: NodeTypeDiscovery,
		Unit: 2, UnitName: "Five Finger Low", Order: 10, OrderInUnit: 2,
		Prerequisites: []string{"bass_2_1"},
		NotePool:      []string{"C4", "B3", "A3", "G3", "F3"}, Clef: "bass",
		ExerciseTypes: []ExerciseType{ExerciseNoteRecognition},
		XPReward:      40,
	},
	{
		ID: "bass_2_3", Name: "Low Five Practice", Description: "Read melodies across all five low notes",
		Category: CategoryBassClef, NodeType: NodeTypePractice,
		Unit: 2, UnitName: "Five Finger Low", Order: 11, OrderInUnit: 3,
		Prerequisites: []string{"bass_2_2"},
		NotePool:      []string{"C4", "B3", "A3", "G3", "F3"}, Clef: "bass",
		RhythmTier:    2, XPReward: 45,
	},
	{
		ID: "bass_2_4", Name: "Remember Middle C Position", Description: "Revisit Bass Unit 1 to keep it fresh",
		Category: CategoryBassClef, NodeType: NodeTypeReview,
		Unit: 2, UnitName: "Five Finger Low", Order: 12, OrderInUnit: 4,
		Prerequisites: []string{"bass_2_3"},
		NotePool:      []string{"C4", "B3", "A3"}, Clef: "bass",
		ExerciseTypes: []ExerciseType{ExerciseNoteRecognition, ExerciseMemoryGame},
		XPReward:      35, IsReview: true, ReviewsUnits: []int{1},
	},
	{
		ID: "bass_2_5", Name: "Speed Round: F to C", Description: "Beat the clock across the low five",
		Category: CategoryBassClef, NodeType: NodeTypeSpeedRound,
		Unit: 2, UnitName: "Five Finger Low", Order: 13, OrderInUnit: 5,
		Prerequisites: []string{"bass_2_4"},
		NotePool:      []string{"C4", "B3", "A3", "G3", "F3"}, Clef: "bass",
		ExerciseTypes: []ExerciseType{ExerciseNoteRecognition},
		QuestionCount: 15, TimeLimitSecs: 75, XPReward: 50,
	},
	{
		ID: "bass_2_6", Name: "Low Five Checkpoint", Description: "Master the low five finger position",
		Category: CategoryBassClef, NodeType: NodeTypeMiniBoss,
		Unit: 2, UnitName: "Five Finger Low", Order: 14, OrderInUnit: 6,
		Prerequisites: []string{"bass_2_5"},
		NotePool:      []string{"C4", "B3", "A3", "G3", "F3"}, Clef: "bass",
		ExerciseTypes: []ExerciseType{ExerciseBossChallenge},
		QuestionCount: 18, TimeLimitSecs: 150,
		XPReward:      80, AccessoryUnlock: "bass_five_finger_badge", IsBoss: true,
	},

	// ============================================
	// RHYTHM UNIT 1: Steady Beat
	// ============================================
	{
		ID: "rhythm_1_1", Name: "Feel the Beat", Description: "Find the steady pulse in music",
		Category: CategoryRhythm, NodeType: NodeTypeDiscovery,
		Unit: 1, UnitName: "Steady Beat", Order: 1, OrderInUnit: 1,
		Prerequisites: []string{},
		ExerciseTypes: []ExerciseType{ExerciseRhythm},
		RhythmTier:    1, XPReward: 40,
	},
	{
		ID: "rhythm_1_2", Name: "Quarter Notes", Description: "Clap along with quarter notes",
		Category: CategoryRhythm, NodeType: NodeTypePractice,
		Unit: 1, UnitName: "Steady Beat", Order: 2, OrderInUnit: 2,
		Prerequisites: []string{"rhythm_1_1"},
		ExerciseTypes: []ExerciseType{ExerciseRhythm},
		RhythmTier:    1, XPReward: 45,
	},
	{
		ID: "rhythm_1_3", Name: "Half Notes", Description: "Hold notes for two beats",
		Category: CategoryRhythm, NodeType: NodeTypeDiscovery,
		Unit: 1, UnitName: "Steady Beat", Order: 3, OrderInUnit: 3,
		Prerequisites: []string{"rhythm_1_2"},
		ExerciseTypes: []ExerciseType{ExerciseRhythm},
		RhythmTier:    2, XPReward: 40,
	},
	{
		ID: "rhythm_1_4", Name: "Clap Along", Description: "Mix quarters and halves in longer patterns",
		Category: CategoryRhythm, NodeType: NodeTypePractice,
		Unit: 1, UnitName: "Steady Beat", Order: 4, OrderInUnit: 4,
		Prerequisites: []string{"rhythm_1_3"},
		ExerciseTypes: []ExerciseType{ExerciseRhythm},
		RhythmTier:    2, XPReward: 45,
	},
	{
		ID: "rhythm_1_5", Name: "Echo Game", Description: "Listen and clap the pattern back",
		Category: CategoryRhythm, NodeType: NodeTypeMixUp,
		Unit: 1, UnitName: "Steady Beat", Order: 5, OrderInUnit: 5,
		Prerequisites: []string{"rhythm_1_4"},
		ExerciseTypes: []ExerciseType{ExerciseMemoryGame, ExerciseRhythm},
		RhythmTier:    2, XPReward: 50,
	},
	{
		ID: "rhythm_1_6", Name: "Speed Claps", Description: "Keep up as the tempo rises",
		Category: CategoryRhythm, NodeType: NodeTypeSpeedRound,
		Unit: 1, UnitName: "Steady Beat", Order: 6, OrderInUnit: 6,
		Prerequisites: []string{"rhythm_1_5"},
		ExerciseTypes: []ExerciseType{ExerciseRhythm},
		RhythmTier:    2, TimeLimitSecs: 60, XPReward: 50,
	},
	{
		ID: "rhythm_1_7", Name: "Steady Beat Checkpoint", Description: "Prove you can keep perfect time",
		Category: CategoryRhythm, NodeType: NodeTypeMiniBoss,
		Unit: 1, UnitName: "Steady Beat", Order: 7, OrderInUnit: 7,
		Prerequisites: []string{"rhythm_1_6"},
		ExerciseTypes: []ExerciseType{ExerciseBossChallenge},
		QuestionCount: 12, TimeLimitSecs: 120,
		XPReward:      80, AccessoryUnlock: "steady_beat_badge", IsBoss: true,
	},

	// ============================================
	// RHYTHM UNIT 2: Eighth Notes
	// ============================================
	{
		ID: "rhythm_2_1", Name: "Meet Eighth Notes", Description: "Two quick sounds in one beat",
		Category: CategoryRhythm, NodeType: NodeTypeDiscovery,
		Unit: 2, UnitName: "Eighth Notes", Order: 8, OrderInUnit: 1,
		Prerequisites: []string{"rhythm_1_7"},
		ExerciseTypes: []ExerciseType{ExerciseRhythm},
		RhythmTier:    3, XPReward: 40,
	},
	{
		ID: "rhythm_2_2", Name: "Running Notes", Description: "String eighth notes together",
		Category: CategoryRhythm, NodeType: NodeTypePractice,
		Unit: 2, UnitName: "Eighth Notes", Order: 9, OrderInUnit: 2,
		Prerequisites: []string{"rhythm_2_1"},
		ExerciseTypes: []ExerciseType{ExerciseRhythm},
		RhythmTier:    3, XPReward: 45,
	},
	{
		ID: "rhythm_2_3", Name: "Remember Steady Beat", Description: "Revisit Rhythm Unit 1 patterns",
		Category: CategoryRhythm, NodeType: NodeTypeReview,
		Unit: 2, UnitName: "Eighth Notes", Order: 10, OrderInUnit: 3,
		Prerequisites: []string{"rhythm_2_2"},
		ExerciseTypes: []ExerciseType{ExerciseRhythm},
		RhythmTier:    2, XPReward: 35, IsReview: true, ReviewsUnits: []int{1},
	},
	{
		ID: "rhythm_2_4", Name: "Mixed Rhythms", Description: "Quarters, halves and eighths together",
		Category: CategoryRhythm, NodeType: NodeTypeChallenge,
		Unit: 2, UnitName: "Eighth Notes", Order: 11, OrderInUnit: 4,
		Prerequisites: []string{"rhythm_2_3"},
		ExerciseTypes: []ExerciseType{ExerciseRhythm},
		RhythmTier:    4, XPReward: 50,
	},
	{
		ID: "rhythm_2_5", Name: "Speed Rhythms", Description: "Fast patterns against the clock",
		Category: CategoryRhythm, NodeType: NodeTypeSpeedRound,
		Unit: 2, UnitName: "Eighth Notes", Order: 12, OrderInUnit: 5,
		Prerequisites: []string{"rhythm_2_4"},
		ExerciseTypes: []ExerciseType{ExerciseRhythm},
		RhythmTier:    4, TimeLimitSecs: 60, XPReward: 50,
	},
	{
		ID: "rhythm_2_6", Name: "Eighth Note Checkpoint", Description: "Master every rhythm you know",
		Category: CategoryRhythm, NodeType: NodeTypeMiniBoss,
		Unit: 2, UnitName: "Eighth Notes", Order: 13, OrderInUnit: 6,
		Prerequisites: []string{"rhythm_2_5"},
		ExerciseTypes: []ExerciseType{ExerciseBossChallenge},
		QuestionCount: 15, TimeLimitSecs: 120,
		XPReward:      80, AccessoryUnlock: "eighth_note_badge", IsBoss: true,
	},

	// ============================================
	// BOSS BATTLES (cross-path milestones)
	// ============================================
	{
		ID: "boss_trail_guardian", Name: "Trail Guardian", Description: "Combine notes and rhythm in your first big battle",
		Category: CategoryBoss, NodeType: NodeTypeBoss,
		Unit: 1, UnitName: "Boss Battles", Order: 1, OrderInUnit: 1,
		Prerequisites: []string{"treble_1_8", "bass_1_8", "rhythm_1_7"},
		NotePool:      []string{"C4", "D4", "E4", "B3", "A3"},
		ExerciseTypes: []ExerciseType{ExerciseBossChallenge},
		QuestionCount: 20, TimeLimitSecs: 180, XPReward: 150, IsBoss: true,
	},
	{
		ID: "boss_melody_master", Name: "Melody Master", Description: "The ultimate test of both clefs and every rhythm",
		Category: CategoryBoss, NodeType: NodeTypeBoss,
		Unit: 2, UnitName: "Boss Battles", Order: 2, OrderInUnit: 1,
		Prerequisites: []string{"treble_2_6", "bass_2_6", "rhythm_2_6"},
		NotePool:      []string{"C4", "D4", "E4", "F4", "G4", "B3", "A3", "G3", "F3"},
		ExerciseTypes: []ExerciseType{ExerciseBossChallenge},
		QuestionCount: 25, TimeLimitSecs: 240, XPReward: 200, IsBoss: true,
	},
})
