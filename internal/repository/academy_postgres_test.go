package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Go4ItSports/go4it/internal/domain"
)

func setupAcademyMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *AcademyRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock, NewAcademyRepository(db).(*AcademyRepository)
}

func TestAcademyRepository_EnrollFlowQueries(t *testing.T) {
	db, mock, repo := setupAcademyMock(t)
	defer func() { _ = db.Close() }()
	ctx := context.Background()
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM academy_courses WHERE id = \$1 AND organization_id = \$2 FOR UPDATE`).
		WithArgs("c1", "org-1").
		WillReturnRows(sqlmock.NewRows(courseColumns).AddRow(
			"c1", "org-1", "QB Mechanics", nil, "football", "beginner", nil, 10, 0, "published", nil, nil, now, now))
	mock.ExpectQuery(`SELECT (.+) FROM student_enrollments WHERE course_id = \$1 AND student_id = \$2 AND status <> \$3 LIMIT 1`).
		WithArgs("c1", "s1", domain.EnrollmentDropped).
		WillReturnRows(sqlmock.NewRows(enrollmentColumns))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM student_enrollments WHERE course_id = \$1 AND status IN \(\$2,\$3\)`).
		WithArgs("c1", "active", "pending_payment").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectExec(`INSERT INTO student_enrollments`).WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		course, err := repo.LockCourseTx(ctx, tx, "org-1", "c1")
		require.NoError(t, err)
		assert.Equal(t, 10, course.Capacity)

		existing, err := repo.FindOpenEnrollmentTx(ctx, tx, "c1", "s1")
		require.NoError(t, err)
		assert.Nil(t, existing)

		seats, err := repo.CountSeatsTx(ctx, tx, "c1")
		require.NoError(t, err)
		assert.Equal(t, 3, seats)

		return repo.CreateEnrollmentTx(ctx, tx, &domain.Enrollment{
			CourseID: "c1", OrganizationID: "org-1", StudentID: "s1", Status: domain.EnrollmentActive,
		})
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcademyRepository_NextWaitlistedTx(t *testing.T) {
	db, mock, repo := setupAcademyMock(t)
	defer func() { _ = db.Close() }()
	ctx := context.Background()
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM student_enrollments WHERE course_id = \$1 AND status = \$2 ORDER BY enrolled_at, id LIMIT 1 FOR UPDATE`).
		WithArgs("c1", domain.EnrollmentWaitlisted).
		WillReturnRows(sqlmock.NewRows(enrollmentColumns).AddRow("e9", "c1", "org-1", "s9", "waitlisted", 0, now, nil, now))
	mock.ExpectQuery(`SELECT (.+) FROM student_enrollments WHERE course_id = \$1 AND status = \$2`).
		WillReturnRows(sqlmock.NewRows(enrollmentColumns))
	mock.ExpectCommit()

	err := repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		next, err := repo.NextWaitlistedTx(ctx, tx, "c1")
		require.NoError(t, err)
		require.NotNil(t, next)
		assert.Equal(t, "e9", next.ID)

		none, err := repo.NextWaitlistedTx(ctx, tx, "c1")
		require.NoError(t, err)
		assert.Nil(t, none)
		return nil
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcademyRepository_CreateEnrollmentDuplicate(t *testing.T) {
	db, mock, repo := setupAcademyMock(t)
	defer func() { _ = db.Close() }()
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO student_enrollments`).
		WillReturnError(duplicateKeyError())
	mock.ExpectRollback()

	err := repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		return repo.CreateEnrollmentTx(ctx, tx, &domain.Enrollment{CourseID: "c1", StudentID: "s1"})
	})
	var conflict *domain.ErrConflict
	assert.ErrorAs(t, err, &conflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcademyRepository_ListCourses(t *testing.T) {
	db, mock, repo := setupAcademyMock(t)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(`SELECT (.+) FROM academy_courses WHERE organization_id = \$1 AND status = \$2 AND sport = \$3 ORDER BY created_at DESC, id LIMIT 50 OFFSET 0`).
		WithArgs("org-1", domain.CourseStatusPublished, "soccer").
		WillReturnRows(sqlmock.NewRows(courseColumns))

	courses, err := repo.ListCourses(context.Background(), domain.CourseFilter{
		OrganizationID: "org-1", Status: domain.CourseStatusPublished, Sport: "soccer",
	})
	require.NoError(t, err)
	assert.Empty(t, courses)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// duplicateKeyError is what lib/pq returns for a unique violation
func duplicateKeyError() error {
	return &pq.Error{Code: "23505", Message: `duplicate key value violates unique constraint "idx_student_enrollments_open"`}
}
