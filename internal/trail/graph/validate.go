// Package graph validates the static trail catalog before deploy. It is
// run from cmd/validate-trail as a build-time check; the runtime engine
// assumes a validated catalog and never re-checks these invariants.
package graph

import (
	"github.com/melodytrail/backend/internal/trail/catalog"
)

// MissingPrereq is a prerequisite reference to a node that does not exist.
type MissingPrereq struct {
	NodeID   string
	PrereqID string
}

// InvalidType is a node whose classification tag is not a recognized
// node type. Nodes without a tag are legacy and pass silently.
type InvalidType struct {
	NodeID   string
	NodeType string
}

// CategoryXP sums the XP economy of one category.
type CategoryXP struct {
	Category  catalog.Category
	TotalXP   int
	NodeCount int
}

// XPWarning reports an imbalance above the variance threshold between
// the main content paths. Informational only, never fails validation.
type XPWarning struct {
	VariancePercent float64
	MaxCategory     catalog.Category
	MaxXP           int
	MinCategory     catalog.Category
	MinXP           int
}

// Report aggregates every finding from a validation run. All checks run
// to completion so a single run surfaces every problem.
type Report struct {
	NodeCount      int
	MissingPrereqs []MissingPrereq
	Cycles         [][]string
	InvalidTypes   []InvalidType
	DuplicateIDs   []string
	TypedNodes     int
	LegacyNodes    int
	CategoryXP     []CategoryXP
	XPWarning      *XPWarning
}

// HasErrors reports whether any fatal finding was recorded. XP warnings
// are not errors.
func (r *Report) HasErrors() bool {
	return len(r.MissingPrereqs) > 0 ||
		len(r.Cycles) > 0 ||
		len(r.InvalidTypes) > 0 ||
		len(r.DuplicateIDs) > 0
}

// HasWarnings reports whether the run produced informational warnings.
func (r *Report) HasWarnings() bool {
	return r.XPWarning != nil
}

// XPVarianceThresholdPercent is the allowed spread between the main
// paths' XP totals before a balance warning is raised.
const XPVarianceThresholdPercent = 10.0

// Validate runs the four structural checks plus the XP economy report
// over the given node set.
func Validate(nodes []catalog.Node) *Report {
	report := &Report{NodeCount: len(nodes)}

	nodeMap := make(map[string]catalog.Node, len(nodes))
	for _, node := range nodes {
		if _, seen := nodeMap[node.ID]; seen {
			report.DuplicateIDs = append(report.DuplicateIDs, node.ID)
			continue
		}
		nodeMap[node.ID] = node
	}

	checkMissingPrereqs(nodes, nodeMap, report)
	checkCycles(nodes, nodeMap, report)
	checkNodeTypes(nodes, report)
	checkXPEconomy(nodes, report)

	return report
}

func checkMissingPrereqs(nodes []catalog.Node, nodeMap map[string]catalog.Node, report *Report) {
	for _, node := range nodes {
		for _, prereqID := range node.Prerequisites {
			if _, ok := nodeMap[prereqID]; !ok {
				report.MissingPrereqs = append(report.MissingPrereqs, MissingPrereq{
					NodeID:   node.ID,
					PrereqID: prereqID,
				})
			}
		}
	}
}

// Three-color DFS cycle detection.
const (
	unvisited = 0
	visiting  = 1
	visited   = 2
)

func checkCycles(nodes []catalog.Node, nodeMap map[string]catalog.Node, report *Report) {
	state := make(map[string]int, len(nodes))

	var path []string

	var dfs func(nodeID string) bool
	dfs = func(nodeID string) bool {
		switch state[nodeID] {
		case visiting:
			// Found a cycle: from the first occurrence on the path
			// through the current node, inclusive.
			start := 0
			for i, id := range path {
				if id == nodeID {
					start = i
					break
				}
			}
			cycle := append(append([]string{}, path[start:]...), nodeID)
			report.Cycles = append(report.Cycles, cycle)
			return true
		case visited:
			return false
		}

		state[nodeID] = visiting
		path = append(path, nodeID)

		node := nodeMap[nodeID]
		for _, prereqID := range node.Prerequisites {
			// Only traverse existing prerequisites; missing ones are
			// already reported and would cascade false positives.
			if _, ok := nodeMap[prereqID]; ok {
				if dfs(prereqID) {
					return true
				}
			}
		}

		path = path[:len(path)-1]
		state[nodeID] = visited
		return false
	}

	for _, node := range nodes {
		if state[node.ID] == unvisited {
			path = path[:0]
			dfs(node.ID)
		}
	}
}

func checkNodeTypes(nodes []catalog.Node, report *Report) {
	valid := make(map[catalog.NodeType]bool)
	for _, t := range catalog.ValidNodeTypes() {
		valid[t] = true
	}

	for _, node := range nodes {
		if node.NodeType == "" {
			report.LegacyNodes++
			continue
		}
		report.TypedNodes++
		if !valid[node.NodeType] {
			report.InvalidTypes = append(report.InvalidTypes, InvalidType{
				NodeID:   node.ID,
				NodeType: string(node.NodeType),
			})
		}
	}
}

func checkXPEconomy(nodes []catalog.Node, report *Report) {
	totals := make(map[catalog.Category]*CategoryXP)
	for _, node := range nodes {
		entry, ok := totals[node.Category]
		if !ok {
			entry = &CategoryXP{Category: node.Category}
			totals[node.Category] = entry
		}
		entry.TotalXP += node.XPReward
		entry.NodeCount++
	}

	for _, category := range []catalog.Category{
		catalog.CategoryTrebleClef, catalog.CategoryBassClef,
		catalog.CategoryRhythm, catalog.CategoryBoss,
	} {
		if entry, ok := totals[category]; ok {
			report.CategoryXP = append(report.CategoryXP, *entry)
		}
	}

	// Variance across the main content paths only.
	var mainPaths []*CategoryXP
	for _, category := range catalog.MainCategories() {
		if entry, ok := totals[category]; ok {
			mainPaths = append(mainPaths, entry)
		}
	}
	if len(mainPaths) < 2 {
		return
	}

	maxEntry, minEntry := mainPaths[0], mainPaths[0]
	for _, entry := range mainPaths[1:] {
		if entry.TotalXP > maxEntry.TotalXP {
			maxEntry = entry
		}
		if entry.TotalXP < minEntry.TotalXP {
			minEntry = entry
		}
	}
	if maxEntry.TotalXP == 0 {
		return
	}

	variance := float64(maxEntry.TotalXP-minEntry.TotalXP) / float64(maxEntry.TotalXP) * 100
	if variance > XPVarianceThresholdPercent {
		report.XPWarning = &XPWarning{
			VariancePercent: variance,
			MaxCategory:     maxEntry.Category,
			MaxXP:           maxEntry.TotalXP,
			MinCategory:     minEntry.Category,
			MinXP:           minEntry.TotalXP,
		}
	}
}
