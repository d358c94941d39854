package catalog

import "sort"

// Category identifies which trail path a node belongs to.
type Category string

const (
	CategoryTrebleClef Category = "treble_clef"
	CategoryBassClef   Category = "bass_clef"
	CategoryRhythm     Category = "rhythm"
	CategoryBoss       Category = "boss"
)

// MainCategories are the parallel content paths whose XP totals should
// stay balanced (boss nodes sit outside the per-path economy).
func MainCategories() []Category {
	return []Category{CategoryTrebleClef, CategoryBassClef, CategoryRhythm}
}

// NodeType classifies the learning experience a node provides. Nodes
// without a type are legacy nodes and are exempt from type validation.
type NodeType string

const (
	NodeTypeDiscovery  NodeType = "discovery"   // Introduce 1-2 new notes
	NodeTypePractice   NodeType = "practice"    // Drill recent notes
	NodeTypeMixUp      NodeType = "mix_up"      // Game variation (memory game)
	NodeTypeSpeedRound NodeType = "speed_round" // Timed recognition challenge
	NodeTypeReview     NodeType = "review"      // Spaced repetition of previous units
	NodeTypeChallenge  NodeType = "challenge"   // Increased difficulty
	NodeTypeMiniBoss   NodeType = "mini_boss"   // Unit checkpoint
	NodeTypeBoss       NodeType = "boss"        // Major milestone
)

// ValidNodeTypes returns every recognized node type.
func ValidNodeTypes() []NodeType {
	return []NodeType{
		NodeTypeDiscovery,
		NodeTypePractice,
		NodeTypeMixUp,
		NodeTypeSpeedRound,
		NodeTypeReview,
		NodeTypeChallenge,
		NodeTypeMiniBoss,
		NodeTypeBoss,
	}
}

// ExerciseType selects which config variant an Exercise carries.
type ExerciseType string

const (
	ExerciseNoteRecognition ExerciseType = "note_recognition"
	ExerciseSightReading    ExerciseType = "sight_reading"
	ExerciseRhythm          ExerciseType = "rhythm"
	ExerciseMemoryGame      ExerciseType = "memory_game"
	ExerciseBossChallenge   ExerciseType = "boss_challenge"
)

// NoteConfig configures note-recognition exercises.
type NoteConfig struct {
	NotePool      []string `json:"note_pool"`
	Clef          string   `json:"clef"`
	QuestionCount int      `json:"question_count"`
	TimeLimitSecs int      `json:"time_limit_secs,omitempty"` // 0 = untimed
}

// SightReadingConfig configures short reading passages.
type SightReadingConfig struct {
	NotePool           []string `json:"note_pool"`
	Clef               string   `json:"clef"`
	MeasuresPerPattern int      `json:"measures_per_pattern"`
	TimeSignature      string   `json:"time_signature"`
	RhythmPatterns     []string `json:"rhythm_patterns"`
	TempoBPM           int      `json:"tempo_bpm"`
}

// RhythmConfig configures clap-along rhythm exercises.
type RhythmConfig struct {
	Tier           int      `json:"tier"`
	RhythmPatterns []string `json:"rhythm_patterns"`
	TempoBPM       int      `json:"tempo_bpm"`
	MeasureCount   int      `json:"measure_count"`
}

// MemoryConfig configures the note-matching memory game.
type MemoryConfig struct {
	NotePool  []string `json:"note_pool"`
	Clef      string   `json:"clef"`
	PairCount int      `json:"pair_count"`
}

// BossConfig configures milestone challenges.
type BossConfig struct {
	NotePool      []string `json:"note_pool"`
	Clefs         []string `json:"clefs"`
	QuestionCount int      `json:"question_count"`
	TimeLimitSecs int      `json:"time_limit_secs"`
}

// Exercise is a tagged union: Type selects exactly one non-nil config.
// The engine passes these through to the exercise players unchanged.
type Exercise struct {
	Type         ExerciseType        `json:"type"`
	Note         *NoteConfig         `json:"note,omitempty"`
	SightReading *SightReadingConfig `json:"sight_reading,omitempty"`
	Rhythm       *RhythmConfig       `json:"rhythm,omitempty"`
	Memory       *MemoryConfig       `json:"memory,omitempty"`
	Boss         *BossConfig         `json:"boss,omitempty"`
}

// Node is a single learnable unit on the skill trail. Nodes are authored
// statically and never mutated at runtime.
type Node struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Description     string     `json:"description"`
	Category        Category   `json:"category"`
	NodeType        NodeType   `json:"node_type,omitempty"`
	Order           int        `json:"order"`
	Unit            int        `json:"unit"`
	UnitName        string     `json:"unit_name"`
	OrderInUnit     int        `json:"order_in_unit"`
	Prerequisites   []string   `json:"prerequisites"`
	Skills          []string   `json:"skills"`
	Exercises       []Exercise `json:"exercises"`
	XPReward        int        `json:"xp_reward"`
	AccessoryUnlock string     `json:"accessory_unlock,omitempty"`
	IsBoss          bool       `json:"is_boss"`
	IsReview        bool       `json:"is_review"`
	ReviewsUnits    []int      `json:"reviews_units,omitempty"`
}

// UnitReward is granted when every node in a unit is completed.
type UnitReward struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Unit is a themed group of nodes with progressive difficulty.
type Unit struct {
	ID          string     `json:"id"`
	Category    Category   `json:"category"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Order       int        `json:"order"`
	Theme       string     `json:"theme"`
	Icon        string     `json:"icon"`
	Reward      UnitReward `json:"reward"`
}

// AllNodes returns the full catalog.
func AllNodes() []Node {
	return skillNodes
}

// NodesByCategory returns that category's nodes sorted by order ascending.
func NodesByCategory(category Category) []Node {
	var nodes []Node
	for _, node := range skillNodes {
		if node.Category == category {
			nodes = append(nodes, node)
		}
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Order < nodes[j].Order })
	return nodes
}

// NodeByID looks up a node; ok is false for unknown IDs.
func NodeByID(nodeID string) (Node, bool) {
	node, ok := nodeIndex[nodeID]
	return node, ok
}

// BossNodes returns all boss nodes sorted by order.
func BossNodes() []Node {
	var nodes []Node
	for _, node := range skillNodes {
		if node.IsBoss {
			nodes = append(nodes, node)
		}
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].Order < nodes[j].Order })
	return nodes
}

// StartingNodes returns nodes with no prerequisites.
func StartingNodes() []Node {
	var nodes []Node
	for _, node := range skillNodes {
		if len(node.Prerequisites) == 0 {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

// UnitByID looks up unit metadata.
func UnitByID(unitID string) (Unit, bool) {
	for _, unit := range units {
		if unit.ID == unitID {
			return unit, true
		}
	}
	return Unit{}, false
}

// UnitsByCategory returns a category's units sorted by order.
func UnitsByCategory(category Category) []Unit {
	var result []Unit
	for _, unit := range units {
		if unit.Category == category {
			result = append(result, unit)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Order < result[j].Order })
	return result
}

// NodesInUnit returns a unit's nodes sorted by their order within the unit.
func NodesInUnit(unitNumber int, category Category) []Node {
	var nodes []Node
	for _, node := range skillNodes {
		if node.Unit == unitNumber && node.Category == category {
			nodes = append(nodes, node)
		}
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].OrderInUnit < nodes[j].OrderInUnit })
	return nodes
}

// CurrentUnit returns the unit the student is working through in a
// category: the unit of the first incomplete non-boss node, or the last
// unit when the path is finished.
func CurrentUnit(completed CompletedSet, category Category) int {
	categoryNodes := NodesByCategory(category)

	var last int = 1
	for _, node := range categoryNodes {
		if node.IsBoss {
			continue
		}
		if !completed[node.ID] {
			return node.Unit
		}
		last = node.Unit
	}
	return last
}

var nodeIndex map[string]Node

func init() {
	nodeIndex = make(map[string]Node, len(skillNodes))
	for _, node := range skillNodes {
		nodeIndex[node.ID] = node
	}
}
