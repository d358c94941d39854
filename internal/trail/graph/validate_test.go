package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/melodytrail/backend/internal/trail/catalog"
)

func node(id string, prereqs ...string) catalog.Node {
	return catalog.Node{
		ID:            id,
		Category:      catalog.CategoryTrebleClef,
		NodeType:      catalog.NodeTypePractice,
		Prerequisites: prereqs,
		XPReward:      50,
	}
}

func TestValidate_BuiltinCatalogPasses(t *testing.T) {
	report := Validate(catalog.AllNodes())

	assert.False(t, report.HasErrors())
	assert.Empty(t, report.MissingPrereqs)
	assert.Empty(t, report.Cycles)
	assert.Empty(t, report.InvalidTypes)
	assert.Empty(t, report.DuplicateIDs)
	assert.Nil(t, report.XPWarning, "shipped paths should be balanced")
}

func TestValidate_MissingPrerequisite(t *testing.T) {
	nodes := []catalog.Node{
		node("a"),
		node("b", "a", "ghost"),
	}

	report := Validate(nodes)

	assert.True(t, report.HasErrors())
	assert.Len(t, report.MissingPrereqs, 1)
	assert.Equal(t, "b", report.MissingPrereqs[0].NodeID)
	assert.Equal(t, "ghost", report.MissingPrereqs[0].PrereqID)
}

func TestValidate_Cycle(t *testing.T) {
	nodes := []catalog.Node{
		node("a", "b"),
		node("b", "a"),
	}

	report := Validate(nodes)

	assert.True(t, report.HasErrors())
	assert.Len(t, report.Cycles, 1)

	cycle := report.Cycles[0]
	assert.GreaterOrEqual(t, len(cycle), 3)
	assert.Equal(t, cycle[0], cycle[len(cycle)-1], "cycle closes on itself")
}

func TestValidate_SelfCycle(t *testing.T) {
	nodes := []catalog.Node{node("a", "a")}

	report := Validate(nodes)

	assert.True(t, report.HasErrors())
	assert.Len(t, report.Cycles, 1)
	assert.Equal(t, []string{"a", "a"}, report.Cycles[0])
}

func TestValidate_LinearChainHasNoCycle(t *testing.T) {
	nodes := []catalog.Node{
		node("a"),
		node("b", "a"),
		node("c", "b"),
		node("d", "a", "c"),
	}

	report := Validate(nodes)

	assert.False(t, report.HasErrors())
	assert.Empty(t, report.Cycles)
}

func TestValidate_DuplicateID(t *testing.T) {
	nodes := []catalog.Node{
		node("a"),
		node("a"),
	}

	report := Validate(nodes)

	assert.True(t, report.HasErrors())
	assert.Equal(t, []string{"a"}, report.DuplicateIDs)
}

func TestValidate_InvalidNodeType(t *testing.T) {
	bad := node("a")
	bad.NodeType = "dance_party"

	report := Validate([]catalog.Node{bad})

	assert.True(t, report.HasErrors())
	assert.Len(t, report.InvalidTypes, 1)
	assert.Equal(t, "dance_party", report.InvalidTypes[0].NodeType)
}

func TestValidate_UntypedNodesAreLegacy(t *testing.T) {
	legacy := node("a")
	legacy.NodeType = ""

	report := Validate([]catalog.Node{legacy, node("b")})

	assert.False(t, report.HasErrors())
	assert.Equal(t, 1, report.LegacyNodes)
	assert.Equal(t, 1, report.TypedNodes)
}

func TestValidate_XPImbalanceWarns(t *testing.T) {
	rich := node("a")
	rich.XPReward = 200

	poor := node("b")
	poor.Category = catalog.CategoryBassClef
	poor.XPReward = 100

	report := Validate([]catalog.Node{rich, poor})

	assert.False(t, report.HasErrors(), "imbalance is a warning, not an error")
	assert.True(t, report.HasWarnings())
	assert.NotNil(t, report.XPWarning)
	assert.InDelta(t, 50.0, report.XPWarning.VariancePercent, 0.01)
	assert.Equal(t, catalog.CategoryTrebleClef, report.XPWarning.MaxCategory)
	assert.Equal(t, catalog.CategoryBassClef, report.XPWarning.MinCategory)
}

func TestValidate_BalancedPathsDoNotWarn(t *testing.T) {
	a := node("a")
	a.XPReward = 100

	b := node("b")
	b.Category = catalog.CategoryBassClef
	b.XPReward = 95

	report := Validate([]catalog.Node{a, b})

	assert.Nil(t, report.XPWarning)
}

func TestValidate_BossXPExcludedFromVariance(t *testing.T) {
	a := node("a")
	a.XPReward = 100

	b := node("b")
	b.Category = catalog.CategoryBassClef
	b.XPReward = 100

	boss := node("boss", "a", "b")
	boss.Category = catalog.CategoryBoss
	boss.XPReward = 1000

	report := Validate([]catalog.Node{a, b, boss})

	assert.Nil(t, report.XPWarning)
	assert.Len(t, report.CategoryXP, 3)
}

func TestValidate_AllChecksRunDespiteErrors(t *testing.T) {
	bad := node("a", "ghost")
	bad.NodeType = "dance_party"

	report := Validate([]catalog.Node{bad, node("a")})

	assert.NotEmpty(t, report.MissingPrereqs)
	assert.NotEmpty(t, report.InvalidTypes)
	assert.NotEmpty(t, report.DuplicateIDs)
}
