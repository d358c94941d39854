package services

import (
	"sort"

	"github.com/melodytrail/backend/internal/common/errors"
	"github.com/melodytrail/backend/internal/trail/catalog"
	"github.com/melodytrail/backend/internal/trail/models"
	"github.com/melodytrail/backend/internal/trail/repository"
)

// GetTrailMap returns every catalog node annotated with the student's
// unlock state and progress, for trail rendering.
func GetTrailMap(studentID uint) ([]*models.NodeWithProgress, error) {
	if studentID == 0 {
		return nil, errors.BadRequest("invalid student ID")
	}

	completedIDs, err := repository.GetCompletedNodeIDs(studentID)
	if err != nil {
		return nil, err
	}
	completed := catalog.NewCompletedSet(completedIDs)

	records, err := repository.GetProgressByStudent(studentID)
	if err != nil {
		return nil, err
	}
	progressByNode := make(map[string]*models.ProgressRecord, len(records))
	for _, record := range records {
		progressByNode[record.NodeID] = record
	}

	nodes := catalog.AllNodes()
	trail := make([]*models.NodeWithProgress, len(nodes))
	for i, node := range nodes {
		trail[i] = &models.NodeWithProgress{
			Node:     node,
			Unlocked: catalog.IsNodeUnlocked(node.ID, completed),
			Progress: progressByNode[node.ID],
		}
	}
	return trail, nil
}

// GetAvailableNodes returns the unlocked nodes joined with the student's
// progress on each.
func GetAvailableNodes(studentID uint) ([]*models.NodeWithProgress, error) {
	trail, err := GetTrailMap(studentID)
	if err != nil {
		return nil, err
	}

	var available []*models.NodeWithProgress
	for _, entry := range trail {
		if entry.Unlocked {
			available = append(available, entry)
		}
	}
	return available, nil
}

// CheckNodeUnlocked reports whether one node is unlocked for a student.
func CheckNodeUnlocked(studentID uint, nodeID string) (bool, error) {
	if studentID == 0 {
		return false, errors.BadRequest("invalid student ID")
	}
	completedIDs, err := repository.GetCompletedNodeIDs(studentID)
	if err != nil {
		return false, err
	}
	return catalog.IsNodeUnlocked(nodeID, catalog.NewCompletedSet(completedIDs)), nil
}

// GetNextRecommendedNode picks the node a student should play next:
// started-but-not-mastered nodes first (most recently practiced),
// then unstarted unlocked nodes by trail order, then mastered-short
// nodes worth improving.
func GetNextRecommendedNode(studentID uint) (*models.NodeWithProgress, error) {
	available, err := GetAvailableNodes(studentID)
	if err != nil {
		return nil, err
	}
	if len(available) == 0 {
		return nil, errors.NotFound("recommended node")
	}

	// Priority 1: in progress (started but under three stars), most
	// recently practiced first.
	var inProgress []*models.NodeWithProgress
	for _, entry := range available {
		if entry.Progress != nil && entry.Progress.Stars > 0 && entry.Progress.Stars < 3 {
			inProgress = append(inProgress, entry)
		}
	}
	if len(inProgress) > 0 {
		sort.Slice(inProgress, func(i, j int) bool {
			return inProgress[i].Progress.LastPracticed.After(inProgress[j].Progress.LastPracticed)
		})
		return inProgress[0], nil
	}

	// Priority 2: unlocked but never started, in trail order.
	var unstarted []*models.NodeWithProgress
	for _, entry := range available {
		if entry.Progress == nil {
			unstarted = append(unstarted, entry)
		}
	}
	if len(unstarted) > 0 {
		sort.Slice(unstarted, func(i, j int) bool {
			return unstarted[i].Order < unstarted[j].Order
		})
		return unstarted[0], nil
	}

	// Priority 3: anything still short of three stars.
	var improvable []*models.NodeWithProgress
	for _, entry := range available {
		if entry.Progress != nil && entry.Progress.Stars < 3 {
			improvable = append(improvable, entry)
		}
	}
	if len(improvable) > 0 {
		sort.Slice(improvable, func(i, j int) bool {
			return improvable[i].Order < improvable[j].Order
		})
		return improvable[0], nil
	}

	sort.Slice(available, func(i, j int) bool {
		return available[i].Order < available[j].Order
	})
	return available[0], nil
}
