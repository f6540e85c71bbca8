package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/Go4ItSports/go4it/internal/domain"
)

// AcademyRepository stores courses and student enrollments
type AcademyRepository struct {
	systemDB *sql.DB
}

// NewAcademyRepository creates a new AcademyRepository
func NewAcademyRepository(db *sql.DB) domain.AcademyRepository {
	return &AcademyRepository{systemDB: db}
}

func (r *AcademyRepository) WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return withTransaction(ctx, r.systemDB, fn)
}

var courseColumns = []string{
	"id", "organization_id", "title", "description", "sport", "level", "instructor_id", "capacity",
	"price_cents", "status", "starts_at", "ends_at", "created_at", "updated_at",
}

func scanCourse(row rowScanner) (*domain.Course, error) {
	var (
		c                                domain.Course
		description, sport, instructorID sql.NullString
		startsAt, endsAt                 sql.NullTime
	)
	err := row.Scan(&c.ID, &c.OrganizationID, &c.Title, &description, &sport, &c.Level, &instructorID,
		&c.Capacity, &c.PriceCents, &c.Status, &startsAt, &endsAt, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	c.Description = description.String
	c.Sport = sport.String
	c.InstructorID = instructorID.String
	c.StartsAt = timePtr(startsAt)
	c.EndsAt = timePtr(endsAt)
	return &c, nil
}

func (r *AcademyRepository) CreateCourse(ctx context.Context, c *domain.Course) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err := execBuilder(ctx, r.systemDB, psql.Insert("academy_courses").
		Columns(courseColumns...).
		Values(c.ID, c.OrganizationID, c.Title, nullString(c.Description), nullString(c.Sport), c.Level,
			nullString(c.InstructorID), c.Capacity, c.PriceCents, c.Status, nullTime(c.StartsAt),
			nullTime(c.EndsAt), c.CreatedAt, c.UpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}

func (r *AcademyRepository) getCourse(ctx context.Context, q querier, organizationID, id string, lock bool) (*domain.Course, error) {
	b := psql.Select(courseColumns...).
		From("academy_courses").
		Where(sq.Eq{"id": id, "organization_id": organizationID})
	if lock {
		b = b.Suffix("FOR UPDATE")
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	c, err := scanCourse(q.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err, "course", id, "get course")
	}
	return c, nil
}

func (r *AcademyRepository) GetCourse(ctx context.Context, organizationID, id string) (*domain.Course, error) {
	return r.getCourse(ctx, r.systemDB, organizationID, id, false)
}

func (r *AcademyRepository) LockCourseTx(ctx context.Context, tx *sql.Tx, organizationID, id string) (*domain.Course, error) {
	return r.getCourse(ctx, tx, organizationID, id, true)
}

func (r *AcademyRepository) UpdateCourse(ctx context.Context, c *domain.Course) error {
	c.UpdatedAt = time.Now().UTC()
	res, err := execBuilder(ctx, r.systemDB, psql.Update("academy_courses").
		SetMap(map[string]interface{}{
			"title":         c.Title,
			"description":   nullString(c.Description),
			"sport":         nullString(c.Sport),
			"level":         c.Level,
			"instructor_id": nullString(c.InstructorID),
			"capacity":      c.Capacity,
			"price_cents":   c.PriceCents,
			"status":        c.Status,
			"starts_at":     nullTime(c.StartsAt),
			"ends_at":       nullTime(c.EndsAt),
			"updated_at":    c.UpdatedAt,
		}).
		Where(sq.Eq{"id": c.ID, "organization_id": c.OrganizationID}))
	if err != nil {
		return fmt.Errorf("failed to update course: %w", err)
	}
	return expectOneRow(res, "course", c.ID)
}

func (r *AcademyRepository) ListCourses(ctx context.Context, filter domain.CourseFilter) ([]*domain.Course, error) {
	b := psql.Select(courseColumns...).
		From("academy_courses").
		Where(sq.Eq{"organization_id": filter.OrganizationID})
	if filter.Status != "" {
		b = b.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Sport != "" {
		b = b.Where(sq.Eq{"sport": filter.Sport})
	}
	query, args, err := b.OrderBy("created_at DESC", "id").
		Limit(pageLimit(filter.Limit, 50, 200)).
		Offset(uint64(max(filter.Offset, 0))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.systemDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer rows.Close()

	courses := []*domain.Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan course: %w", err)
		}
		courses = append(courses, c)
	}
	return courses, rows.Err()
}

var enrollmentColumns = []string{
	"id", "course_id", "organization_id", "student_id", "status", "progress", "enrolled_at",
	"completed_at", "updated_at",
}

func scanEnrollment(row rowScanner) (*domain.Enrollment, error) {
	var (
		e           domain.Enrollment
		completedAt sql.NullTime
	)
	err := row.Scan(&e.ID, &e.CourseID, &e.OrganizationID, &e.StudentID, &e.Status, &e.Progress,
		&e.EnrolledAt, &completedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.CompletedAt = timePtr(completedAt)
	return &e, nil
}

// scanOptionalEnrollment returns nil, nil when the row does not exist
func scanOptionalEnrollment(row rowScanner) (*domain.Enrollment, error) {
	e, err := scanEnrollment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return e, err
}

func (r *AcademyRepository) FindOpenEnrollmentTx(ctx context.Context, tx *sql.Tx, courseID, studentID string) (*domain.Enrollment, error) {
	query, args, err := psql.Select(enrollmentColumns...).
		From("student_enrollments").
		Where(sq.Eq{"course_id": courseID, "student_id": studentID}).
		Where(sq.NotEq{"status": domain.EnrollmentDropped}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	e, err := scanOptionalEnrollment(tx.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to find enrollment: %w", err)
	}
	return e, nil
}

// CountSeatsTx counts enrollments holding a seat: active or waiting on payment
func (r *AcademyRepository) CountSeatsTx(ctx context.Context, tx *sql.Tx, courseID string) (int, error) {
	n, err := countQuery(ctx, tx, psql.Select("COUNT(*)").
		From("student_enrollments").
		Where(sq.Eq{"course_id": courseID, "status": []string{
			string(domain.EnrollmentActive), string(domain.EnrollmentPendingPayment),
		}}))
	if err != nil {
		return 0, fmt.Errorf("failed to count seats: %w", err)
	}
	return n, nil
}

func (r *AcademyRepository) CreateEnrollmentTx(ctx context.Context, tx *sql.Tx, e *domain.Enrollment) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	e.EnrolledAt = now
	e.UpdatedAt = now

	_, err := execBuilder(ctx, tx, psql.Insert("student_enrollments").
		Columns(enrollmentColumns...).
		Values(e.ID, e.CourseID, e.OrganizationID, e.StudentID, e.Status, e.Progress, e.EnrolledAt,
			nullTime(e.CompletedAt), e.UpdatedAt))
	if err != nil {
		if domain.IsUniqueViolation(err) {
			return domain.NewConflict("enrollment", "student is already enrolled in this course")
		}
		return fmt.Errorf("failed to create enrollment: %w", err)
	}
	return nil
}

func (r *AcademyRepository) GetEnrollment(ctx context.Context, organizationID, id string) (*domain.Enrollment, error) {
	query, args, err := psql.Select(enrollmentColumns...).
		From("student_enrollments").
		Where(sq.Eq{"id": id, "organization_id": organizationID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	e, err := scanEnrollment(r.systemDB.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err, "enrollment", id, "get enrollment")
	}
	return e, nil
}

func (r *AcademyRepository) LockEnrollmentTx(ctx context.Context, tx *sql.Tx, id string) (*domain.Enrollment, error) {
	query, args, err := psql.Select(enrollmentColumns...).
		From("student_enrollments").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	e, err := scanEnrollment(tx.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, notFoundOr(err, "enrollment", id, "lock enrollment")
	}
	return e, nil
}

func (r *AcademyRepository) UpdateEnrollmentTx(ctx context.Context, tx *sql.Tx, e *domain.Enrollment) error {
	e.UpdatedAt = time.Now().UTC()
	res, err := execBuilder(ctx, tx, psql.Update("student_enrollments").
		Set("status", e.Status).
		Set("progress", e.Progress).
		Set("completed_at", nullTime(e.CompletedAt)).
		Set("updated_at", e.UpdatedAt).
		Where(sq.Eq{"id": e.ID}))
	if err != nil {
		return fmt.Errorf("failed to update enrollment: %w", err)
	}
	return expectOneRow(res, "enrollment", e.ID)
}

func (r *AcademyRepository) NextWaitlistedTx(ctx context.Context, tx *sql.Tx, courseID string) (*domain.Enrollment, error) {
	query, args, err := psql.Select(enrollmentColumns...).
		From("student_enrollments").
		Where(sq.Eq{"course_id": courseID, "status": domain.EnrollmentWaitlisted}).
		OrderBy("enrolled_at", "id").
		Limit(1).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}
	e, err := scanOptionalEnrollment(tx.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("failed to load waitlist: %w", err)
	}
	return e, nil
}

func (r *AcademyRepository) ListEnrollments(ctx context.Context, filter domain.EnrollmentFilter) ([]*domain.Enrollment, error) {
	b := psql.Select(enrollmentColumns...).
		From("student_enrollments").
		Where(sq.Eq{"organization_id": filter.OrganizationID})
	if filter.CourseID != "" {
		b = b.Where(sq.Eq{"course_id": filter.CourseID})
	}
	if filter.StudentID != "" {
		b = b.Where(sq.Eq{"student_id": filter.StudentID})
	}
	if filter.Status != "" {
		b = b.Where(sq.Eq{"status": filter.Status})
	}
	query, args, err := b.OrderBy("enrolled_at", "id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.systemDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []*domain.Enrollment{}
	for rows.Next() {
		e, err := scanEnrollment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan enrollment: %w", err)
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

func (r *AcademyRepository) CountActiveEnrollments(ctx context.Context, organizationID string) (int, error) {
	n, err := countQuery(ctx, r.systemDB, psql.Select("COUNT(*)").
		From("student_enrollments").
		Where(sq.Eq{"organization_id": organizationID, "status": domain.EnrollmentActive}))
	if err != nil {
		return 0, fmt.Errorf("failed to count enrollments: %w", err)
	}
	return n, nil
}

func (r *AcademyRepository) CountPublishedCourses(ctx context.Context, organizationID string) (int, error) {
	n, err := countQuery(ctx, r.systemDB, psql.Select("COUNT(*)").
		From("academy_courses").
		Where(sq.Eq{"organization_id": organizationID, "status": domain.CourseStatusPublished}))
	if err != nil {
		return 0, fmt.Errorf("failed to count courses: %w", err)
	}
	return n, nil
}
