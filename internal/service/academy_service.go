package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

type AcademyService struct {
	repo        domain.AcademyRepository
	athleteRepo domain.AthleteRepository
	payments    domain.PaymentService
	starPath    domain.StarPathService
	authService domain.AuthService
	eventBus    domain.EventBus
	logger      logger.Logger
	now         func() time.Time
}

type AcademyServiceConfig struct {
	Repository        domain.AcademyRepository
	AthleteRepository domain.AthleteRepository
	PaymentService    domain.PaymentService
	StarPathService   domain.StarPathService
	AuthService       domain.AuthService
	EventBus          domain.EventBus
	Logger            logger.Logger
}

func NewAcademyService(cfg AcademyServiceConfig) *AcademyService {
	return &AcademyService{
		repo:        cfg.Repository,
		athleteRepo: cfg.AthleteRepository,
		payments:    cfg.PaymentService,
		starPath:    cfg.StarPathService,
		authService: cfg.AuthService,
		eventBus:    cfg.EventBus,
		logger:      cfg.Logger,
		now:         time.Now,
	}
}

var _ domain.AcademyService = (*AcademyService)(nil)

func (s *AcademyService) CreateCourse(ctx context.Context, course *domain.Course) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, course.OrganizationID, domain.ResourceAcademy, domain.ActionWrite)
	if err != nil {
		return err
	}
	if err := course.Validate(); err != nil {
		return err
	}
	course.ID = uuid.New().String()
	course.CreatedAt = s.now().UTC()
	course.UpdatedAt = course.CreatedAt
	if err := s.repo.CreateCourse(ctx, course); err != nil {
		s.logger.WithField("organization_id", course.OrganizationID).Error(fmt.Sprintf("Failed to create course: %v", err))
		return err
	}
	return nil
}

func (s *AcademyService) GetCourse(ctx context.Context, organizationID, id string) (*domain.Course, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceAcademy, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	return s.repo.GetCourse(ctx, organizationID, id)
}

func (s *AcademyService) UpdateCourse(ctx context.Context, course *domain.Course) error {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, course.OrganizationID, domain.ResourceAcademy, domain.ActionWrite)
	if err != nil {
		return err
	}
	existing, err := s.repo.GetCourse(ctx, course.OrganizationID, course.ID)
	if err != nil {
		return err
	}
	if err := course.Validate(); err != nil {
		return err
	}
	course.CreatedAt = existing.CreatedAt
	course.UpdatedAt = s.now().UTC()
	if err := s.repo.UpdateCourse(ctx, course); err != nil {
		s.logger.WithField("course_id", course.ID).Error(fmt.Sprintf("Failed to update course: %v", err))
		return err
	}
	return nil
}

func (s *AcademyService) setCourseStatus(ctx context.Context, organizationID, id string, status domain.CourseStatus) (*domain.Course, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceAcademy, domain.ActionWrite)
	if err != nil {
		return nil, err
	}
	course, err := s.repo.GetCourse(ctx, organizationID, id)
	if err != nil {
		return nil, err
	}
	if course.Status == status {
		return course, nil
	}
	if course.Status == domain.CourseStatusArchived {
		return nil, domain.NewValidationError("archived courses cannot change status")
	}
	course.Status = status
	course.UpdatedAt = s.now().UTC()
	if err := s.repo.UpdateCourse(ctx, course); err != nil {
		s.logger.WithField("course_id", id).Error(fmt.Sprintf("Failed to set course %s: %v", status, err))
		return nil, err
	}
	return course, nil
}

func (s *AcademyService) PublishCourse(ctx context.Context, organizationID, id string) (*domain.Course, error) {
	return s.setCourseStatus(ctx, organizationID, id, domain.CourseStatusPublished)
}

func (s *AcademyService) ArchiveCourse(ctx context.Context, organizationID, id string) (*domain.Course, error) {
	return s.setCourseStatus(ctx, organizationID, id, domain.CourseStatusArchived)
}

// ListCourses lists courses. Athletes and parents only see published ones.
func (s *AcademyService) ListCourses(ctx context.Context, filter domain.CourseFilter) ([]*domain.Course, error) {
	ctx, _, member, err := s.authService.AuthorizeOrganization(ctx, filter.OrganizationID, domain.ResourceAcademy, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	if !member.Can(domain.ResourceAcademy, domain.ActionWrite) {
		filter.Status = domain.CourseStatusPublished
	}
	filter.Limit, filter.Offset = domain.NormalizePage(filter.Limit, filter.Offset)
	courses, err := s.repo.ListCourses(ctx, filter)
	if err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []*domain.Course{}
	}
	return courses, nil
}

// authorizeStudent checks access to enrollments of a student. Athlete
// members may only act on their own profile.
func (s *AcademyService) authorizeStudent(ctx context.Context, organizationID, studentID string) (context.Context, *domain.AthleteProfile, error) {
	ctx, user, member, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceEnrollments, domain.ActionWrite)
	if err != nil {
		return ctx, nil, err
	}
	student, err := s.athleteRepo.GetByID(ctx, organizationID, studentID)
	if err != nil {
		return ctx, nil, err
	}
	if member.Role == domain.RoleAthlete && (student.UserID == nil || *student.UserID != user.ID) {
		return ctx, nil, domain.NewPermissionError(domain.ResourceEnrollments, domain.ActionWrite, "athletes can only manage their own enrollments")
	}
	return ctx, student, nil
}

// Enroll places a student in a course, on the waitlist when it is full.
// A priced seat comes back with a checkout URL; retrying a pending enrollment
// reopens checkout instead of failing.
func (s *AcademyService) Enroll(ctx context.Context, req domain.EnrollRequest) (*domain.EnrollResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	ctx, student, err := s.authorizeStudent(ctx, req.OrganizationID, req.StudentID)
	if err != nil {
		return nil, err
	}

	var course *domain.Course
	var enrollment *domain.Enrollment
	err = s.repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		var err error
		course, err = s.repo.LockCourseTx(ctx, tx, req.OrganizationID, req.CourseID)
		if err != nil {
			return err
		}
		if course.Status != domain.CourseStatusPublished {
			return domain.NewValidationError("course is not open for enrollment")
		}

		existing, err := s.repo.FindOpenEnrollmentTx(ctx, tx, course.ID, req.StudentID)
		if err != nil {
			return err
		}
		if existing != nil {
			if existing.Status == domain.EnrollmentPendingPayment {
				enrollment = existing
				return nil
			}
			return domain.NewConflict("enrollment", "student is already enrolled in this course")
		}

		taken, err := s.repo.CountSeatsTx(ctx, tx, course.ID)
		if err != nil {
			return err
		}
		now := s.now().UTC()
		enrollment = &domain.Enrollment{
			ID:             uuid.New().String(),
			CourseID:       course.ID,
			OrganizationID: course.OrganizationID,
			StudentID:      req.StudentID,
			Status:         domain.InitialEnrollmentStatus(course, taken),
			EnrolledAt:     now,
			UpdatedAt:      now,
		}
		return s.repo.CreateEnrollmentTx(ctx, tx, enrollment)
	})
	if err != nil {
		if !domain.IsValidation(err) && !domain.IsConflict(err) && !domain.IsNotFound(err) {
			s.logger.WithField("course_id", req.CourseID).Error(fmt.Sprintf("Failed to enroll student: %v", err))
		}
		return nil, err
	}

	result := &domain.EnrollResult{Enrollment: enrollment}
	if enrollment.Status != domain.EnrollmentPendingPayment {
		return result, nil
	}
	if s.payments == nil {
		return nil, fmt.Errorf("payments are not configured")
	}
	checkout, err := s.payments.CreateCheckout(ctx, domain.CheckoutRequest{
		OrganizationID: enrollment.OrganizationID,
		Purpose:        domain.PurposeCourse,
		ReferenceID:    enrollment.ID,
		Email:          student.Email,
		AmountCents:    course.PriceCents,
		Description:    course.Title,
	})
	if err != nil {
		s.logger.WithField("enrollment_id", enrollment.ID).Error(fmt.Sprintf("Failed to open course checkout: %v", err))
		return nil, err
	}
	result.CheckoutURL = checkout.URL
	return result, nil
}

// loadEnrollmentTx locks an enrollment and scopes it to the organization
func (s *AcademyService) loadEnrollmentTx(ctx context.Context, tx *sql.Tx, organizationID, id string) (*domain.Enrollment, error) {
	enrollment, err := s.repo.LockEnrollmentTx(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if enrollment.OrganizationID != organizationID {
		return nil, domain.NewNotFound("enrollment", id)
	}
	return enrollment, nil
}

// UpdateProgress moves progress forward and awards completion XP at 100
func (s *AcademyService) UpdateProgress(ctx context.Context, organizationID, enrollmentID string, progress int) (*domain.Enrollment, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceAcademy, domain.ActionWrite)
	if err != nil {
		return nil, err
	}

	var enrollment *domain.Enrollment
	var completed bool
	err = s.repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		var err error
		enrollment, err = s.loadEnrollmentTx(ctx, tx, organizationID, enrollmentID)
		if err != nil {
			return err
		}
		completed, err = enrollment.SetProgress(progress, s.now().UTC())
		if err != nil {
			return err
		}
		return s.repo.UpdateEnrollmentTx(ctx, tx, enrollment)
	})
	if err != nil {
		return nil, err
	}
	if !completed {
		return enrollment, nil
	}

	if s.starPath != nil {
		_, err := s.starPath.AwardXP(ctx, domain.AwardXPInput{
			OrganizationID: organizationID,
			AthleteID:      enrollment.StudentID,
			Amount:         domain.CourseCompletionXP,
			Source:         domain.XPSourceCourseCompletion,
			ReferenceID:    enrollment.ID,
		})
		if err != nil {
			s.logger.WithField("enrollment_id", enrollment.ID).Error(fmt.Sprintf("Failed to award course completion xp: %v", err))
		}
	}
	if s.eventBus != nil {
		s.eventBus.Publish(ctx, domain.EventPayload{
			Type:           domain.EventEnrollmentCompleted,
			OrganizationID: organizationID,
			EntityID:       enrollment.ID,
			Data: map[string]interface{}{
				"course_id":  enrollment.CourseID,
				"athlete_id": enrollment.StudentID,
			},
		})
	}
	return enrollment, nil
}

// Drop withdraws an enrollment and hands its seat to the earliest waitlisted student
func (s *AcademyService) Drop(ctx context.Context, organizationID, enrollmentID string) (*domain.Enrollment, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, organizationID, domain.ResourceEnrollments, domain.ActionWrite)
	if err != nil {
		return nil, err
	}
	current, err := s.repo.GetEnrollment(ctx, organizationID, enrollmentID)
	if err != nil {
		return nil, err
	}
	if ctx, _, err = s.authorizeStudent(ctx, organizationID, current.StudentID); err != nil {
		return nil, err
	}

	var course *domain.Course
	var enrollment, promoted *domain.Enrollment
	err = s.repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		// course first, same order as Enroll
		var err error
		course, err = s.repo.LockCourseTx(ctx, tx, organizationID, current.CourseID)
		if err != nil {
			return err
		}
		enrollment, err = s.loadEnrollmentTx(ctx, tx, organizationID, enrollmentID)
		if err != nil {
			return err
		}
		switch enrollment.Status {
		case domain.EnrollmentDropped, domain.EnrollmentCompleted:
			return domain.NewValidationError(fmt.Sprintf("cannot drop a %s enrollment", enrollment.Status))
		}

		heldSeat := enrollment.Status.HoldsSeat()
		now := s.now().UTC()
		enrollment.Status = domain.EnrollmentDropped
		enrollment.UpdatedAt = now
		if err := s.repo.UpdateEnrollmentTx(ctx, tx, enrollment); err != nil {
			return err
		}
		if !heldSeat {
			return nil
		}

		promoted, err = s.repo.NextWaitlistedTx(ctx, tx, course.ID)
		if err != nil || promoted == nil {
			return err
		}
		promoted.Status = domain.PromotedStatus(course)
		promoted.UpdatedAt = now
		return s.repo.UpdateEnrollmentTx(ctx, tx, promoted)
	})
	if err != nil {
		if !domain.IsValidation(err) && !domain.IsNotFound(err) {
			s.logger.WithField("enrollment_id", enrollmentID).Error(fmt.Sprintf("Failed to drop enrollment: %v", err))
		}
		return nil, err
	}
	if promoted != nil {
		s.logger.WithFields(map[string]interface{}{
			"enrollment_id": promoted.ID,
			"status":        string(promoted.Status),
		}).Info("Promoted waitlisted enrollment")
		// the student learns about the seat through the notification service
		if s.eventBus != nil {
			s.eventBus.Publish(ctx, domain.EventPayload{
				Type:           domain.EventEnrollmentPromoted,
				OrganizationID: organizationID,
				EntityID:       promoted.ID,
				Data: map[string]interface{}{
					"course_id":    course.ID,
					"course_title": course.Title,
					"athlete_id":   promoted.StudentID,
					"status":       string(promoted.Status),
				},
			})
		}
	}
	return enrollment, nil
}

func (s *AcademyService) ListEnrollments(ctx context.Context, filter domain.EnrollmentFilter) ([]*domain.Enrollment, error) {
	ctx, _, _, err := s.authService.AuthorizeOrganization(ctx, filter.OrganizationID, domain.ResourceEnrollments, domain.ActionRead)
	if err != nil {
		return nil, err
	}
	enrollments, err := s.repo.ListEnrollments(ctx, filter)
	if err != nil {
		return nil, err
	}
	if enrollments == nil {
		enrollments = []*domain.Enrollment{}
	}
	return enrollments, nil
}

// ActivatePaidEnrollment is the course payment confirmer. Repeated calls are no-ops.
func (s *AcademyService) ActivatePaidEnrollment(ctx context.Context, enrollmentID string) error {
	return s.repo.WithTransaction(ctx, func(tx *sql.Tx) error {
		enrollment, err := s.repo.LockEnrollmentTx(ctx, tx, enrollmentID)
		if err != nil {
			return err
		}
		if enrollment.Status != domain.EnrollmentPendingPayment {
			if enrollment.Status != domain.EnrollmentActive && enrollment.Status != domain.EnrollmentCompleted {
				s.logger.WithFields(map[string]interface{}{
					"enrollment_id": enrollment.ID,
					"status":        string(enrollment.Status),
				}).Warn("Payment received for an enrollment that no longer holds a seat")
			}
			return nil
		}
		enrollment.Status = domain.EnrollmentActive
		enrollment.UpdatedAt = s.now().UTC()
		return s.repo.UpdateEnrollmentTx(ctx, tx, enrollment)
	})
}
