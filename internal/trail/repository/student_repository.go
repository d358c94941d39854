package repository

import (
	"gorm.io/gorm"

	"github.com/melodytrail/backend/internal/common/database"
	"github.com/melodytrail/backend/internal/common/errors"
	"github.com/melodytrail/backend/internal/trail/models"
	"github.com/melodytrail/backend/internal/trail/xp"
)

// GetStudentByID retrieves a student row.
func GetStudentByID(studentID uint) (*models.Student, error) {
	var student models.Student
	result := database.DB.First(&student, studentID)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("student")
		}
		return nil, errors.Internal("failed to fetch student", result.Error.Error())
	}
	return &student, nil
}

// CreateStudent inserts a new student with a fresh XP account.
func CreateStudent(student *models.Student) error {
	if student.CurrentLevel == 0 {
		student.CurrentLevel = 1
	}
	result := database.DB.Create(student)
	if result.Error != nil {
		return errors.Internal("failed to create student", result.Error.Error())
	}
	return nil
}

// AwardXPResult reports the student's XP account after an award.
type AwardXPResult struct {
	NewTotalXP int  `json:"new_total_xp"`
	NewLevel   int  `json:"new_level"`
	LeveledUp  bool `json:"leveled_up"`
}

// AwardXP credits XP to a student and recomputes their level inside one
// transaction so concurrent awards cannot lose an increment.
func AwardXP(studentID uint, amount int) (*AwardXPResult, error) {
	var award AwardXPResult

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var student models.Student
		if err := tx.First(&student, studentID).Error; err != nil {
			return err
		}

		newTotal := student.TotalXP + amount
		newLevel := xp.CalculateLevel(newTotal).Level

		award = AwardXPResult{
			NewTotalXP: newTotal,
			NewLevel:   newLevel,
			LeveledUp:  newLevel > student.CurrentLevel,
		}

		return tx.Model(&models.Student{}).
			Where("id = ?", studentID).
			Updates(map[string]interface{}{
				"total_xp":      newTotal,
				"current_level": newLevel,
			}).Error
	})

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("student")
		}
		return nil, errors.Internal("failed to award XP", err.Error())
	}
	return &award, nil
}

// GetXPLeaderboard retrieves the top students by total XP.
func GetXPLeaderboard(limit int) ([]*models.Student, error) {
	var students []*models.Student
	result := database.DB.
		Order("total_xp DESC").
		Limit(limit).
		Find(&students)

	if result.Error != nil {
		return nil, errors.Internal("failed to fetch leaderboard", result.Error.Error())
	}
	return students, nil
}
