package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/noah-isme/gradebook-api/internal/models"
	"github.com/noah-isme/gradebook-api/internal/repository"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func floatPtr(v float64) *float64 {
	return &v
}

type fakeFacultyRepo struct {
	byID        map[string]models.Faculty
	assignments []models.FacultyAssignment
	deleteErr   error
	nextID      uint
}

func newFakeFacultyRepo() *fakeFacultyRepo {
	return &fakeFacultyRepo{byID: make(map[string]models.Faculty)}
}

func (f *fakeFacultyRepo) GetByID(_ context.Context, id string) (models.Faculty, error) {
	if faculty, ok := f.byID[id]; ok {
		return faculty, nil
	}
	return models.Faculty{}, gorm.ErrRecordNotFound
}

func (f *fakeFacultyRepo) GetByEmail(_ context.Context, email string) (models.Faculty, error) {
	for _, faculty := range f.byID {
		if faculty.Email == email {
			return faculty, nil
		}
	}
	return models.Faculty{}, gorm.ErrRecordNotFound
}

func (f *fakeFacultyRepo) Create(_ context.Context, faculty *models.Faculty) error {
	for _, existing := range f.byID {
		if existing.Email == faculty.Email || existing.EmployeeID == faculty.EmployeeID {
			return gorm.ErrDuplicatedKey
		}
	}
	if faculty.ID == "" {
		faculty.ID = uuid.NewString()
	}
	f.byID[faculty.ID] = *faculty
	return nil
}

func (f *fakeFacultyRepo) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.byID[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeFacultyRepo) ListAssignments(_ context.Context, facultyID string) ([]models.FacultyAssignment, error) {
	var result []models.FacultyAssignment
	for _, assignment := range f.assignments {
		if assignment.FacultyID == facultyID {
			result = append(result, assignment)
		}
	}
	return result, nil
}

func (f *fakeFacultyRepo) CreateAssignment(_ context.Context, assignment *models.FacultyAssignment) error {
	for _, existing := range f.assignments {
		if existing.FacultyID == assignment.FacultyID &&
			existing.ClassName == assignment.ClassName &&
			existing.Subject == assignment.Subject {
			return gorm.ErrDuplicatedKey
		}
	}
	f.nextID++
	assignment.ID = f.nextID
	f.assignments = append(f.assignments, *assignment)
	return nil
}

type fakeStudentRepo struct {
	byID        map[string]models.Student
	enrollments []models.StudentEnrollment
	roster      []models.Student
	listCalls   int
	listErr     error
	deleteErr   error
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{byID: make(map[string]models.Student)}
}

func (f *fakeStudentRepo) GetByID(_ context.Context, id string) (models.Student, error) {
	if student, ok := f.byID[id]; ok {
		return student, nil
	}
	return models.Student{}, gorm.ErrRecordNotFound
}

func (f *fakeStudentRepo) GetByStudentID(_ context.Context, studentID string) (models.Student, error) {
	for _, student := range f.byID {
		if student.StudentID == studentID {
			return student, nil
		}
	}
	return models.Student{}, gorm.ErrRecordNotFound
}

func (f *fakeStudentRepo) ListByClassAndSubject(_ context.Context, _, _ string) ([]models.Student, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.roster, nil
}

func (f *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	for _, existing := range f.byID {
		if existing.StudentID == student.StudentID {
			return gorm.ErrDuplicatedKey
		}
	}
	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	f.byID[student.ID] = *student
	return nil
}

func (f *fakeStudentRepo) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.byID[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeStudentRepo) CreateEnrollment(_ context.Context, enrollment *models.StudentEnrollment) error {
	for _, existing := range f.enrollments {
		if existing.StudentID == enrollment.StudentID && existing.Subject == enrollment.Subject {
			return gorm.ErrDuplicatedKey
		}
	}
	f.enrollments = append(f.enrollments, *enrollment)
	return nil
}

func (f *fakeStudentRepo) CountEnrollments(_ context.Context, studentRowID string) (int64, error) {
	var count int64
	for _, enrollment := range f.enrollments {
		if enrollment.StudentID == studentRowID {
			count++
		}
	}
	return count, nil
}

type fakeMarksRepo struct {
	rows          map[string]models.Marks
	saveCalls     int
	failFirstSave bool
	saveErr       error
}

func newFakeMarksRepo() *fakeMarksRepo {
	return &fakeMarksRepo{rows: make(map[string]models.Marks)}
}

func marksKey(studentRowID, className, subject string) string {
	return fmt.Sprintf("%s|%s|%s", studentRowID, className, subject)
}

func (f *fakeMarksRepo) GetByCompositeKey(_ context.Context, studentRowID, className, subject string) (models.Marks, error) {
	if row, ok := f.rows[marksKey(studentRowID, className, subject)]; ok {
		return row, nil
	}
	return models.Marks{}, gorm.ErrRecordNotFound
}

func (f *fakeMarksRepo) Save(_ context.Context, studentRowID, className, subject string, merge func(existing models.Marks) models.Marks) (models.Marks, error) {
	f.saveCalls++
	if f.saveErr != nil {
		return models.Marks{}, f.saveErr
	}
	if f.failFirstSave && f.saveCalls == 1 {
		return models.Marks{}, gorm.ErrDuplicatedKey
	}

	key := marksKey(studentRowID, className, subject)
	merged := merge(f.rows[key])
	merged.StudentID = studentRowID
	merged.ClassName = className
	merged.Subject = subject
	if merged.ID == "" {
		merged.ID = uuid.NewString()
	}
	f.rows[key] = merged
	return merged, nil
}

type fakeActivityRecorder struct {
	entries   []ActivityEntry
	recordErr error
}

func (f *fakeActivityRecorder) Record(_ context.Context, entry ActivityEntry) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	f.entries = append(f.entries, entry)
	return nil
}

type fakeActivityLogRepo struct {
	entries []models.ActivityLog
	nextID  uint
}

func (f *fakeActivityLogRepo) Create(_ context.Context, entry *models.ActivityLog) error {
	f.nextID++
	entry.ID = f.nextID
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeActivityLogRepo) List(_ context.Context, filter repository.ActivityLogFilter) ([]models.ActivityLog, int64, error) {
	var matched []models.ActivityLog
	for _, entry := range f.entries {
		if filter.Action != "" && entry.Action != filter.Action {
			continue
		}
		if filter.EntityType != "" && entry.EntityType != filter.EntityType {
			continue
		}
		matched = append(matched, entry)
	}

	total := int64(len(matched))
	if filter.PageSize > 0 && len(matched) > filter.PageSize {
		matched = matched[:filter.PageSize]
	}
	return matched, total, nil
}
