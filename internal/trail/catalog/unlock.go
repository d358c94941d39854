package catalog

// CompletedSet is the set of node IDs a student has completed (earned at
// least one star on).
type CompletedSet map[string]bool

// NewCompletedSet builds a CompletedSet from a list of node IDs.
func NewCompletedSet(nodeIDs []string) CompletedSet {
	set := make(CompletedSet, len(nodeIDs))
	for _, id := range nodeIDs {
		set[id] = true
	}
	return set
}

// IsNodeUnlocked reports whether every prerequisite of the node is
// completed. Nodes with no prerequisites are always unlocked. Unknown
// node IDs are simply not unlocked.
func IsNodeUnlocked(nodeID string, completed CompletedSet) bool {
	node, ok := NodeByID(nodeID)
	if !ok {
		return false
	}

	for _, prereqID := range node.Prerequisites {
		if !completed[prereqID] {
			return false
		}
	}
	return true
}

// UnlockedNodes returns every catalog node whose prerequisites are all
// satisfied by the completed set.
func UnlockedNodes(completed CompletedSet) []Node {
	var unlocked []Node
	for _, node := range skillNodes {
		if IsNodeUnlocked(node.ID, completed) {
			unlocked = append(unlocked, node)
		}
	}
	return unlocked
}
