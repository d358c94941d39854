package repository

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/melodytrail/backend/internal/common/database"
	"github.com/melodytrail/backend/internal/common/errors"
	"github.com/melodytrail/backend/internal/trail/models"
)

// GetProgressByStudent retrieves all progress records for a student,
// most recently practiced first.
func GetProgressByStudent(studentID uint) ([]*models.ProgressRecord, error) {
	var records []*models.ProgressRecord
	result := database.DB.
		Where("student_id = ?", studentID).
		Order("last_practiced DESC").
		Find(&records)

	if result.Error != nil {
		return nil, errors.Internal("failed to fetch progress", result.Error.Error())
	}
	return records, nil
}

// GetNodeProgress retrieves the record for one (student, node) pair.
func GetNodeProgress(studentID uint, nodeID string) (*models.ProgressRecord, error) {
	var record models.ProgressRecord
	result := database.DB.
		Where("student_id = ? AND node_id = ?", studentID, nodeID).
		First(&record)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("node progress")
		}
		return nil, errors.Internal("failed to fetch node progress", result.Error.Error())
	}
	return &record, nil
}

// UpsertCompletion records an accepted completion with ratchet-merge
// semantics in a single conflict statement: stars and best_score only
// move up, the completion counter always increments and the practice
// timestamp always advances. The unique (student_id, node_id) index
// guarantees at most one row per pair under concurrent submissions.
func UpsertCompletion(studentID uint, nodeID string, stars, bestScore int, practicedAt time.Time) (*models.ProgressRecord, error) {
	record := models.ProgressRecord{
		StudentID:          studentID,
		NodeID:             nodeID,
		Stars:              stars,
		BestScore:          bestScore,
		ExercisesCompleted: 1,
		LastPracticed:      practicedAt,
	}

	result := database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "student_id"}, {Name: "node_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"stars":               gorm.Expr("CASE WHEN excluded.stars > progress_records.stars THEN excluded.stars ELSE progress_records.stars END"),
			"best_score":          gorm.Expr("CASE WHEN excluded.best_score > progress_records.best_score THEN excluded.best_score ELSE progress_records.best_score END"),
			"exercises_completed": gorm.Expr("progress_records.exercises_completed + 1"),
			"last_practiced":      gorm.Expr("excluded.last_practiced"),
		}),
	}).Create(&record)

	if result.Error != nil {
		return nil, errors.Internal("failed to record completion", result.Error.Error())
	}

	// Re-read: on conflict the in-memory struct does not reflect the
	// merged row.
	return GetNodeProgress(studentID, nodeID)
}

// GetCompletedNodeIDs returns the IDs of every node the student has at
// least one star on. This set feeds the unlock engine.
func GetCompletedNodeIDs(studentID uint) ([]string, error) {
	var nodeIDs []string
	result := database.DB.
		Model(&models.ProgressRecord{}).
		Where("student_id = ? AND stars > 0", studentID).
		Pluck("node_id", &nodeIDs)

	if result.Error != nil {
		return nil, errors.Internal("failed to fetch completed nodes", result.Error.Error())
	}
	return nodeIDs, nil
}

// DeleteProgressByStudent removes all of a student's progress records.
func DeleteProgressByStudent(studentID uint) error {
	result := database.DB.
		Where("student_id = ?", studentID).
		Delete(&models.ProgressRecord{})

	if result.Error != nil {
		return errors.Internal("failed to reset progress", result.Error.Error())
	}
	return nil
}
