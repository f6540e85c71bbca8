package domain

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

//go:generate mockgen -destination mocks/mock_academy_repository.go -package mocks github.com/Go4ItSports/go4it/internal/domain AcademyRepository
//go:generate mockgen -destination mocks/mock_academy_service.go -package mocks github.com/Go4ItSports/go4it/internal/domain AcademyService

type CourseLevel string

const (
	CourseLevelBeginner     CourseLevel = "beginner"
	CourseLevelIntermediate CourseLevel = "intermediate"
	CourseLevelAdvanced     CourseLevel = "advanced"
)

type CourseStatus string

const (
	CourseStatusDraft     CourseStatus = "draft"
	CourseStatusPublished CourseStatus = "published"
	CourseStatusArchived  CourseStatus = "archived"
)

// Course is an academy offering. Capacity 0 means unlimited.
type Course struct {
	ID             string       `json:"id"`
	OrganizationID string       `json:"organization_id"`
	Title          string       `json:"title"`
	Description    string       `json:"description,omitempty"`
	Sport          string       `json:"sport,omitempty"`
	Level          CourseLevel  `json:"level"`
	InstructorID   string       `json:"instructor_id,omitempty"`
	Capacity       int          `json:"capacity"`
	PriceCents     int64        `json:"price_cents"`
	Status         CourseStatus `json:"status"`
	StartsAt       *time.Time   `json:"starts_at,omitempty"`
	EndsAt         *time.Time   `json:"ends_at,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

func (c *Course) Validate() error {
	c.Title = strings.TrimSpace(c.Title)
	c.Sport = strings.ToLower(strings.TrimSpace(c.Sport))
	if c.OrganizationID == "" {
		return NewValidationError("organization_id is required")
	}
	if c.Title == "" {
		return NewValidationError("course title is required")
	}
	if len(c.Title) > 255 {
		return NewValidationError("course title must be at most 255 characters")
	}
	if c.Sport != "" && !IsSupportedSport(c.Sport) {
		return NewValidationError("unsupported sport: " + c.Sport)
	}
	if c.Level == "" {
		c.Level = CourseLevelBeginner
	}
	switch c.Level {
	case CourseLevelBeginner, CourseLevelIntermediate, CourseLevelAdvanced:
	default:
		return NewValidationError("invalid course level: " + string(c.Level))
	}
	if c.Status == "" {
		c.Status = CourseStatusDraft
	}
	switch c.Status {
	case CourseStatusDraft, CourseStatusPublished, CourseStatusArchived:
	default:
		return NewValidationError("invalid course status: " + string(c.Status))
	}
	if c.Capacity < 0 {
		return NewValidationError("capacity cannot be negative")
	}
	if c.PriceCents < 0 {
		return NewValidationError("price cannot be negative")
	}
	if c.StartsAt != nil && c.EndsAt != nil && !c.EndsAt.After(*c.StartsAt) {
		return NewValidationError("course must end after it starts")
	}
	return nil
}

type EnrollmentStatus string

const (
	EnrollmentPendingPayment EnrollmentStatus = "pending_payment"
	EnrollmentActive         EnrollmentStatus = "active"
	EnrollmentWaitlisted     EnrollmentStatus = "waitlisted"
	EnrollmentCompleted      EnrollmentStatus = "completed"
	EnrollmentDropped        EnrollmentStatus = "dropped"
)

// HoldsSeat reports whether the enrollment counts against course capacity
func (s EnrollmentStatus) HoldsSeat() bool {
	return s == EnrollmentActive || s == EnrollmentPendingPayment
}

// Enrollment ties a student athlete to a course
type Enrollment struct {
	ID             string           `json:"id"`
	CourseID       string           `json:"course_id"`
	OrganizationID string           `json:"organization_id"`
	StudentID      string           `json:"student_id"`
	Status         EnrollmentStatus `json:"status"`
	Progress       int              `json:"progress"`
	EnrolledAt     time.Time        `json:"enrolled_at"`
	CompletedAt    *time.Time       `json:"completed_at,omitempty"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// InitialEnrollmentStatus decides where a new enrollment lands
func InitialEnrollmentStatus(course *Course, seatsTaken int) EnrollmentStatus {
	if course.Capacity > 0 && seatsTaken >= course.Capacity {
		return EnrollmentWaitlisted
	}
	if course.PriceCents > 0 {
		return EnrollmentPendingPayment
	}
	return EnrollmentActive
}

// PromotedStatus is the status a waitlisted enrollment moves to when a seat frees up
func PromotedStatus(course *Course) EnrollmentStatus {
	if course.PriceCents > 0 {
		return EnrollmentPendingPayment
	}
	return EnrollmentActive
}

// SetProgress applies a monotonic progress update and reports whether it completed the course
func (e *Enrollment) SetProgress(progress int, at time.Time) (bool, error) {
	if e.Status != EnrollmentActive {
		return false, NewValidationError(fmt.Sprintf("cannot update progress of a %s enrollment", e.Status))
	}
	if progress < 0 || progress > 100 {
		return false, NewValidationError("progress must be between 0 and 100")
	}
	if progress < e.Progress {
		return false, NewValidationError(fmt.Sprintf("progress cannot go back from %d to %d", e.Progress, progress))
	}
	e.Progress = progress
	e.UpdatedAt = at
	if progress == 100 {
		e.Status = EnrollmentCompleted
		e.CompletedAt = &at
		return true, nil
	}
	return false, nil
}

type EnrollRequest struct {
	OrganizationID string `json:"organization_id"`
	CourseID       string `json:"course_id"`
	StudentID      string `json:"student_id"`
}

func (r *EnrollRequest) Validate() error {
	if r.OrganizationID == "" || r.CourseID == "" || r.StudentID == "" {
		return NewValidationError("organization_id, course_id and student_id are required")
	}
	return nil
}

type EnrollResult struct {
	Enrollment  *Enrollment `json:"enrollment"`
	CheckoutURL string      `json:"checkout_url,omitempty"`
}

type CourseFilter struct {
	OrganizationID string
	Status         CourseStatus
	Sport          string
	Limit          int
	Offset         int
}

type EnrollmentFilter struct {
	OrganizationID string
	CourseID       string
	StudentID      string
	Status         EnrollmentStatus
}

type AcademyService interface {
	CreateCourse(ctx context.Context, course *Course) error
	GetCourse(ctx context.Context, organizationID, id string) (*Course, error)
	UpdateCourse(ctx context.Context, course *Course) error
	PublishCourse(ctx context.Context, organizationID, id string) (*Course, error)
	ArchiveCourse(ctx context.Context, organizationID, id string) (*Course, error)
	ListCourses(ctx context.Context, filter CourseFilter) ([]*Course, error)
	Enroll(ctx context.Context, req EnrollRequest) (*EnrollResult, error)
	UpdateProgress(ctx context.Context, organizationID, enrollmentID string, progress int) (*Enrollment, error)
	Drop(ctx context.Context, organizationID, enrollmentID string) (*Enrollment, error)
	ListEnrollments(ctx context.Context, filter EnrollmentFilter) ([]*Enrollment, error)
	// ActivatePaidEnrollment is called by the payment webhook
	ActivatePaidEnrollment(ctx context.Context, enrollmentID string) error
}

type AcademyRepository interface {
	WithTransaction(ctx context.Context, fn func(*sql.Tx) error) error
	CreateCourse(ctx context.Context, course *Course) error
	GetCourse(ctx context.Context, organizationID, id string) (*Course, error)
	LockCourseTx(ctx context.Context, tx *sql.Tx, organizationID, id string) (*Course, error)
	UpdateCourse(ctx context.Context, course *Course) error
	ListCourses(ctx context.Context, filter CourseFilter) ([]*Course, error)
	// FindOpenEnrollmentTx returns the student's non dropped enrollment, or nil
	FindOpenEnrollmentTx(ctx context.Context, tx *sql.Tx, courseID, studentID string) (*Enrollment, error)
	CountSeatsTx(ctx context.Context, tx *sql.Tx, courseID string) (int, error)
	CreateEnrollmentTx(ctx context.Context, tx *sql.Tx, enrollment *Enrollment) error
	GetEnrollment(ctx context.Context, organizationID, id string) (*Enrollment, error)
	LockEnrollmentTx(ctx context.Context, tx *sql.Tx, id string) (*Enrollment, error)
	UpdateEnrollmentTx(ctx context.Context, tx *sql.Tx, enrollment *Enrollment) error
	// NextWaitlistedTx returns the earliest waitlisted enrollment locked, or nil
	NextWaitlistedTx(ctx context.Context, tx *sql.Tx, courseID string) (*Enrollment, error)
	ListEnrollments(ctx context.Context, filter EnrollmentFilter) ([]*Enrollment, error)
	CountActiveEnrollments(ctx context.Context, organizationID string) (int, error)
	CountPublishedCourses(ctx context.Context, organizationID string) (int, error)
}
