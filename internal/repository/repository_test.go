package repository

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/noah-isme/gradebook-api/internal/models"
)

// setupTestDB opens a per-test in-memory database so parallel tests cannot
// leak rows into each other. Foreign keys are enabled so cascade and
// restrict behaviour matches the production schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Faculty{},
		&models.FacultyAssignment{},
		&models.Student{},
		&models.StudentEnrollment{},
		&models.Marks{},
		&models.ActivityLog{},
	))

	return db
}

func createFaculty(t *testing.T, db *gorm.DB, email, employeeID string) models.Faculty {
	t.Helper()
	faculty := models.Faculty{
		Name:       "Test Faculty",
		Email:      email,
		EmployeeID: employeeID,
		Password:   "not-a-real-hash",
	}
	require.NoError(t, db.Create(&faculty).Error)
	return faculty
}

func createStudent(t *testing.T, db *gorm.DB, name, studentID, className string, subjects ...string) models.Student {
	t.Helper()
	student := models.Student{
		Name:      name,
		StudentID: studentID,
		ClassName: className,
	}
	require.NoError(t, db.Create(&student).Error)
	for _, subject := range subjects {
		require.NoError(t, db.Create(&models.StudentEnrollment{
			StudentID: student.ID,
			Subject:   subject,
		}).Error)
	}
	return student
}
