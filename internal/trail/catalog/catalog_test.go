package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllNodes_NotEmpty(t *testing.T) {
	nodes := AllNodes()
	assert.NotEmpty(t, nodes)
}

func TestNodeByID_Known(t *testing.T) {
	node, ok := NodeByID("treble_1_1")

	assert.True(t, ok)
	assert.Equal(t, "Meet Middle C", node.Name)
	assert.Equal(t, CategoryTrebleClef, node.Category)
	assert.Empty(t, node.Prerequisites)
}

func TestNodeByID_Unknown(t *testing.T) {
	_, ok := NodeByID("no_such_node")
	assert.False(t, ok)
}

func TestNodesByCategory_SortedByOrder(t *testing.T) {
	for _, category := range MainCategories() {
		nodes := NodesByCategory(category)
		assert.NotEmpty(t, nodes, "category %s has no nodes", category)

		for i := 1; i < len(nodes); i++ {
			assert.LessOrEqual(t, nodes[i-1].Order, nodes[i].Order)
			assert.Equal(t, category, nodes[i].Category)
		}
	}
}

func TestStartingNodes_HaveNoPrerequisites(t *testing.T) {
	starting := StartingNodes()
	assert.NotEmpty(t, starting)

	for _, node := range starting {
		assert.Empty(t, node.Prerequisites, "node %s is not a valid start", node.ID)
	}
}

func TestStartingNodes_OnePerMainPath(t *testing.T) {
	starting := StartingNodes()

	byCategory := make(map[Category]int)
	for _, node := range starting {
		byCategory[node.Category]++
	}

	for _, category := range MainCategories() {
		assert.Equal(t, 1, byCategory[category], "category %s", category)
	}
}

func TestBossNodes_AllFlagged(t *testing.T) {
	// Unit checkpoints count as bosses too, not just the big battles.
	bosses := BossNodes()
	assert.Greater(t, len(bosses), 2)

	ids := make([]string, 0, len(bosses))
	for i, boss := range bosses {
		assert.True(t, boss.IsBoss, "node %s", boss.ID)
		assert.NotEmpty(t, boss.Prerequisites, "bosses gate on earlier content")
		if i > 0 {
			assert.LessOrEqual(t, bosses[i-1].Order, boss.Order)
		}
		ids = append(ids, boss.ID)
	}

	assert.Contains(t, ids, "boss_trail_guardian")
	assert.Contains(t, ids, "boss_melody_master")
	assert.Contains(t, ids, "treble_1_8", "unit checkpoints are flagged as bosses")
}

func TestEveryExercise_HasMatchingConfig(t *testing.T) {
	for _, node := range AllNodes() {
		assert.NotEmpty(t, node.Exercises, "node %s has no exercises", node.ID)

		for _, ex := range node.Exercises {
			switch ex.Type {
			case ExerciseNoteRecognition:
				assert.NotNil(t, ex.Note, "node %s", node.ID)
			case ExerciseSightReading:
				assert.NotNil(t, ex.SightReading, "node %s", node.ID)
			case ExerciseRhythm:
				assert.NotNil(t, ex.Rhythm, "node %s", node.ID)
			case ExerciseMemoryGame:
				assert.NotNil(t, ex.Memory, "node %s", node.ID)
			case ExerciseBossChallenge:
				assert.NotNil(t, ex.Boss, "node %s", node.ID)
			default:
				t.Errorf("node %s has unknown exercise type %q", node.ID, ex.Type)
			}
		}
	}
}

func TestUnitByID_Known(t *testing.T) {
	unit, ok := UnitByID("treble_unit_1")

	assert.True(t, ok)
	assert.Equal(t, CategoryTrebleClef, unit.Category)
	assert.Equal(t, "accessory", unit.Reward.Type)
}

func TestUnitsByCategory_SortedByOrder(t *testing.T) {
	units := UnitsByCategory(CategoryTrebleClef)
	assert.Len(t, units, 2)
	assert.Less(t, units[0].Order, units[1].Order)
}

func TestNodesInUnit_AllBelong(t *testing.T) {
	nodes := NodesInUnit(1, CategoryTrebleClef)
	assert.Len(t, nodes, 8)

	for i, node := range nodes {
		assert.Equal(t, 1, node.Unit)
		assert.Equal(t, CategoryTrebleClef, node.Category)
		assert.Equal(t, i+1, node.OrderInUnit)
	}
}

func TestCurrentUnit_NewStudent(t *testing.T) {
	unit := CurrentUnit(NewCompletedSet(nil), CategoryTrebleClef)
	assert.Equal(t, 1, unit)
}

func TestCurrentUnit_FirstUnitDone(t *testing.T) {
	completed := NewCompletedSet([]string{
		"treble_1_1", "treble_1_2", "treble_1_3", "treble_1_4",
		"treble_1_5", "treble_1_6", "treble_1_7", "treble_1_8",
	})

	unit := CurrentUnit(completed, CategoryTrebleClef)
	assert.Equal(t, 2, unit)
}

func TestReviewNodes_ReferenceEarlierUnits(t *testing.T) {
	node, ok := NodeByID("treble_2_4")

	assert.True(t, ok)
	assert.True(t, node.IsReview)
	assert.Contains(t, node.ReviewsUnits, 1)
}
