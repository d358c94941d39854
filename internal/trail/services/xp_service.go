package services

import (
	"github.com/melodytrail/backend/internal/common/errors"
	"github.com/melodytrail/backend/internal/trail/models"
	"github.com/melodytrail/backend/internal/trail/repository"
	"github.com/melodytrail/backend/internal/trail/xp"
)

// GetStudentLevel returns the student's XP account plus derived level
// progress.
func GetStudentLevel(studentID uint) (*models.LevelResponse, error) {
	if studentID == 0 {
		return nil, errors.BadRequest("invalid student ID")
	}

	student, err := repository.GetStudentByID(studentID)
	if err != nil {
		return nil, err
	}

	return &models.LevelResponse{
		TotalXP:  student.TotalXP,
		Level:    xp.CalculateLevel(student.TotalXP),
		Progress: xp.LevelProgress(student.TotalXP),
	}, nil
}

// GetXPLeaderboard returns the top students by total XP.
func GetXPLeaderboard(limit int) ([]*models.LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}

	students, err := repository.GetXPLeaderboard(limit)
	if err != nil {
		return nil, err
	}

	leaderboard := make([]*models.LeaderboardEntry, len(students))
	for i, student := range students {
		leaderboard[i] = &models.LeaderboardEntry{
			Rank:     i + 1,
			UserID:   student.ID,
			Username: student.Username,
			TotalXP:  student.TotalXP,
			Level:    xp.CalculateLevel(student.TotalXP),
		}
	}
	return leaderboard, nil
}
