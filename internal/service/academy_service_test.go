package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/internal/domain/mocks"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

type academyDeps struct {
	repo     *mocks.MockAcademyRepository
	athletes *mocks.MockAthleteRepository
	payments *mocks.MockPaymentService
	starPath *mocks.MockStarPathService
	auth     *mocks.MockAuthService
	bus      *recordingBus
}

func setupAcademyTest(t *testing.T) (*academyDeps, *AcademyService) {
	ctrl := gomock.NewController(t)
	d := &academyDeps{
		repo:     mocks.NewMockAcademyRepository(ctrl),
		athletes: mocks.NewMockAthleteRepository(ctrl),
		payments: mocks.NewMockPaymentService(ctrl),
		starPath: mocks.NewMockStarPathService(ctrl),
		auth:     mocks.NewMockAuthService(ctrl),
		bus:      &recordingBus{},
	}
	d.repo.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(runInTx).AnyTimes()
	svc := NewAcademyService(AcademyServiceConfig{
		Repository:        d.repo,
		AthleteRepository: d.athletes,
		PaymentService:    d.payments,
		StarPathService:   d.starPath,
		AuthService:       d.auth,
		EventBus:          d.bus,
		Logger:            logger.NewMockLogger(t),
	})
	return d, svc
}

func publishedCourse(capacity int, price int64) *domain.Course {
	return &domain.Course{
		ID: "course-1", OrganizationID: "org-1", Title: "Elite Shooting",
		Status: domain.CourseStatusPublished, Capacity: capacity, PriceCents: price,
	}
}

func TestAcademyService_Enroll(t *testing.T) {
	coach := &domain.User{ID: "coach-1"}
	student := &domain.AthleteProfile{ID: "ath-1", OrganizationID: "org-1", Email: "ath@example.com"}
	req := domain.EnrollRequest{OrganizationID: "org-1", CourseID: "course-1", StudentID: "ath-1"}

	tests := []struct {
		name       string
		course     *domain.Course
		seatsTaken int
		want       domain.EnrollmentStatus
		checkout   bool
	}{
		{name: "free course with room", course: publishedCourse(10, 0), seatsTaken: 3, want: domain.EnrollmentActive},
		{name: "unlimited", course: publishedCourse(0, 0), seatsTaken: 500, want: domain.EnrollmentActive},
		{name: "full course waitlists", course: publishedCourse(2, 5000), seatsTaken: 2, want: domain.EnrollmentWaitlisted},
		{name: "priced course needs payment", course: publishedCourse(10, 5000), seatsTaken: 0, want: domain.EnrollmentPendingPayment, checkout: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, svc := setupAcademyTest(t)
			expectAuthorize(d.auth, "org-1", coach, domain.RoleCoach)
			d.athletes.EXPECT().GetByID(gomock.Any(), "org-1", "ath-1").Return(student, nil)
			d.repo.EXPECT().LockCourseTx(gomock.Any(), gomock.Any(), "org-1", "course-1").Return(tt.course, nil)
			d.repo.EXPECT().FindOpenEnrollmentTx(gomock.Any(), gomock.Any(), "course-1", "ath-1").Return(nil, nil)
			d.repo.EXPECT().CountSeatsTx(gomock.Any(), gomock.Any(), "course-1").Return(tt.seatsTaken, nil)
			d.repo.EXPECT().CreateEnrollmentTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			if tt.checkout {
				d.payments.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r domain.CheckoutRequest) (*domain.CheckoutResult, error) {
						assert.Equal(t, domain.PurposeCourse, r.Purpose)
						assert.Equal(t, int64(5000), r.AmountCents)
						assert.Equal(t, "ath@example.com", r.Email)
						return &domain.CheckoutResult{URL: "https://pay.example.com/x"}, nil
					})
			}

			res, err := svc.Enroll(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Enrollment.Status)
			if tt.checkout {
				assert.Equal(t, "https://pay.example.com/x", res.CheckoutURL)
			} else {
				assert.Empty(t, res.CheckoutURL)
			}
		})
	}

	t.Run("already enrolled", func(t *testing.T) {
		d, svc := setupAcademyTest(t)
		expectAuthorize(d.auth, "org-1", coach, domain.RoleCoach)
		d.athletes.EXPECT().GetByID(gomock.Any(), "org-1", "ath-1").Return(student, nil)
		d.repo.EXPECT().LockCourseTx(gomock.Any(), gomock.Any(), "org-1", "course-1").Return(publishedCourse(0, 0), nil)
		d.repo.EXPECT().FindOpenEnrollmentTx(gomock.Any(), gomock.Any(), "course-1", "ath-1").
			Return(&domain.Enrollment{ID: "enr-0", Status: domain.EnrollmentActive}, nil)

		_, err := svc.Enroll(context.Background(), req)
		assert.True(t, domain.IsConflict(err))
	})

	t.Run("pending enrollment reopens checkout", func(t *testing.T) {
		d, svc := setupAcademyTest(t)
		expectAuthorize(d.auth, "org-1", coach, domain.RoleCoach)
		d.athletes.EXPECT().GetByID(gomock.Any(), "org-1", "ath-1").Return(student, nil)
		d.repo.EXPECT().LockCourseTx(gomock.Any(), gomock.Any(), "org-1", "course-1").Return(publishedCourse(0, 900), nil)
		d.repo.EXPECT().FindOpenEnrollmentTx(gomock.Any(), gomock.Any(), "course-1", "ath-1").
			Return(&domain.Enrollment{ID: "enr-0", OrganizationID: "org-1", Status: domain.EnrollmentPendingPayment}, nil)
		d.payments.EXPECT().CreateCheckout(gomock.Any(), gomock.Any()).
			Return(&domain.CheckoutResult{URL: "https://pay.example.com/again"}, nil)

		res, err := svc.Enroll(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "enr-0", res.Enrollment.ID)
		assert.Equal(t, "https://pay.example.com/again", res.CheckoutURL)
	})

	t.Run("draft course", func(t *testing.T) {
		d, svc := setupAcademyTest(t)
		expectAuthorize(d.auth, "org-1", coach, domain.RoleCoach)
		d.athletes.EXPECT().GetByID(gomock.Any(), "org-1", "ath-1").Return(student, nil)
		draft := publishedCourse(0, 0)
		draft.Status = domain.CourseStatusDraft
		d.repo.EXPECT().LockCourseTx(gomock.Any(), gomock.Any(), "org-1", "course-1").Return(draft, nil)

		_, err := svc.Enroll(context.Background(), req)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("athlete enrolling someone else", func(t *testing.T) {
		d, svc := setupAcademyTest(t)
		expectAuthorize(d.auth, "org-1", &domain.User{ID: "ath-user"}, domain.RoleAthlete)
		d.athletes.EXPECT().GetByID(gomock.Any(), "org-1", "ath-1").Return(student, nil)

		_, err := svc.Enroll(context.Background(), req)
		var perm *domain.PermissionError
		assert.ErrorAs(t, err, &perm)
	})
}

func TestAcademyService_UpdateProgress(t *testing.T) {
	coach := &domain.User{ID: "coach-1"}
	active := func(progress int) *domain.Enrollment {
		return &domain.Enrollment{
			ID: "enr-1", CourseID: "course-1", OrganizationID: "org-1", StudentID: "ath-1",
			Status: domain.EnrollmentActive, Progress: progress,
		}
	}

	t.Run("completion awards xp", func(t *testing.T) {
		d, svc := setupAcademyTest(t)
		expectAuthorize(d.auth, "org-1", coach, domain.RoleCoach)
		d.repo.EXPECT().LockEnrollmentTx(gomock.Any(), gomock.Any(), "enr-1").Return(active(80), nil)
		d.repo.EXPECT().UpdateEnrollmentTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		d.starPath.EXPECT().AwardXP(gomock.Any(), domain.AwardXPInput{
			OrganizationID: "org-1",
			AthleteID:      "ath-1",
			Amount:         domain.CourseCompletionXP,
			Source:         domain.XPSourceCourseCompletion,
			ReferenceID:    "enr-1",
		}).Return(&domain.AwardXPResult{}, nil)

		enrollment, err := svc.UpdateProgress(context.Background(), "org-1", "enr-1", 100)
		require.NoError(t, err)
		assert.Equal(t, domain.EnrollmentCompleted, enrollment.Status)
		assert.NotNil(t, enrollment.CompletedAt)
		assert.Equal(t, []domain.EventType{domain.EventEnrollmentCompleted}, d.bus.types())
	})

	t.Run("partial progress", func(t *testing.T) {
		d, svc := setupAcademyTest(t)
		expectAuthorize(d.auth, "org-1", coach, domain.RoleCoach)
		d.repo.EXPECT().LockEnrollmentTx(gomock.Any(), gomock.Any(), "enr-1").Return(active(10), nil)
		d.repo.EXPECT().UpdateEnrollmentTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		enrollment, err := svc.UpdateProgress(context.Background(), "org-1", "enr-1", 40)
		require.NoError(t, err)
		assert.Equal(t, 40, enrollment.Progress)
		assert.Empty(t, d.bus.types())
	})

	t.Run("progress cannot go back", func(t *testing.T) {
		d, svc := setupAcademyTest(t)
		expectAuthorize(d.auth, "org-1", coach, domain.RoleCoach)
		d.repo.EXPECT().LockEnrollmentTx(gomock.Any(), gomock.Any(), "enr-1").Return(active(60), nil)

		_, err := svc.UpdateProgress(context.Background(), "org-1", "enr-1", 50)
		assert.True(t, domain.IsValidation(err))
	})

	t.Run("other organization", func(t *testing.T) {
		d, svc := setupAcademyTest(t)
		expectAuthorize(d.auth, "org-2", coach, domain.RoleCoach)
		d.repo.EXPECT().LockEnrollmentTx(gomock.Any(), gomock.Any(), "enr-1").Return(active(0), nil)

		_, err := svc.UpdateProgress(context.Background(), "org-2", "enr-1", 50)
		assert.True(t, domain.IsNotFound(err))
	})

	t.Run("athletes cannot set progress", func(t *testing.T) {
		d, svc := setupAcademyTest(t)
		expectAuthorize(d.auth, "org-1", &domain.User{ID: "a"}, domain.RoleAthlete)
		_, err := svc.UpdateProgress(context.Background(), "org-1", "enr-1", 50)
		var perm *domain.PermissionError
		assert.ErrorAs(t, err, &perm)
	})
}

func TestAcademyService_Drop(t *testing.T) {
	coach := &domain.User{ID: "coach-1"}
	enrollment := func(status domain.EnrollmentStatus) *domain.Enrollment {
		return &domain.Enrollment{ID: "enr-1", CourseID: "course-1", OrganizationID: "org-1", StudentID: "ath-1", Status: status}
	}

	setup := func(t *testing.T, status domain.EnrollmentStatus, course *domain.Course) *academyDeps {
		d, _ := setupAcademyTest(t)
		expectAuthorize(d.auth, "org-1", coach, domain.RoleCoach).Times(2)
		d.repo.EXPECT().GetEnrollment(gomock.Any(), "org-1", "enr-1").Return(enrollment(status), nil)
		d.athletes.EXPECT().GetByID(gomock.Any(), "org-1", "ath-1").Return(&domain.AthleteProfile{ID: "ath-1"}, nil)
		d.repo.EXPECT().LockCourseTx(gomock.Any(), gomock.Any(), "org-1", "course-1").Return(course, nil)
		d.repo.EXPECT().LockEnrollmentTx(gomock.Any(), gomock.Any(), "enr-1").Return(enrollment(status), nil)
		return d
	}

	t.Run("promotes waitlisted to pending payment on priced course", func(t *testing.T) {
		d := setup(t, domain.EnrollmentActive, publishedCourse(1, 1000))
		svc := NewAcademyService(AcademyServiceConfig{
			Repository: d.repo, AthleteRepository: d.athletes, AuthService: d.auth, EventBus: d.bus, Logger: logger.NewMockLogger(t),
		})
		waiting := &domain.Enrollment{ID: "enr-2", CourseID: "course-1", StudentID: "ath-2", Status: domain.EnrollmentWaitlisted}
		var updated []domain.EnrollmentStatus
		d.repo.EXPECT().UpdateEnrollmentTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sql.Tx, e *domain.Enrollment) error {
				updated = append(updated, e.Status)
				return nil
			}).Times(2)
		d.repo.EXPECT().NextWaitlistedTx(gomock.Any(), gomock.Any(), "course-1").Return(waiting, nil)

		dropped, err := svc.Drop(context.Background(), "org-1", "enr-1")
		require.NoError(t, err)
		assert.Equal(t, domain.EnrollmentDropped, dropped.Status)
		assert.Equal(t, []domain.EnrollmentStatus{domain.EnrollmentDropped, domain.EnrollmentPendingPayment}, updated)

		require.Equal(t, []domain.EventType{domain.EventEnrollmentPromoted}, d.bus.types())
		event := d.bus.events[0]
		assert.Equal(t, "enr-2", event.EntityID)
		assert.Equal(t, "ath-2", event.Data["athlete_id"])
		assert.Equal(t, "pending_payment", event.Data["status"])
		assert.Equal(t, "Elite Shooting", event.Data["course_title"])
	})

	t.Run("promotes to active on free course", func(t *testing.T) {
		d := setup(t, domain.EnrollmentPendingPayment, publishedCourse(1, 0))
		svc := NewAcademyService(AcademyServiceConfig{
			Repository: d.repo, AthleteRepository: d.athletes, AuthService: d.auth, Logger: logger.NewMockLogger(t),
		})
		waiting := &domain.Enrollment{ID: "enr-2", Status: domain.EnrollmentWaitlisted}
		d.repo.EXPECT().UpdateEnrollmentTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
		d.repo.EXPECT().NextWaitlistedTx(gomock.Any(), gomock.Any(), "course-1").Return(waiting, nil)

		_, err := svc.Drop(context.Background(), "org-1", "enr-1")
		require.NoError(t, err)
		assert.Equal(t, domain.EnrollmentActive, waiting.Status)
	})

	t.Run("waitlisted drop frees nothing", func(t *testing.T) {
		d := setup(t, domain.EnrollmentWaitlisted, publishedCourse(1, 0))
		svc := NewAcademyService(AcademyServiceConfig{
			Repository: d.repo, AthleteRepository: d.athletes, AuthService: d.auth, Logger: logger.NewMockLogger(t),
		})
		d.repo.EXPECT().UpdateEnrollmentTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(1)

		_, err := svc.Drop(context.Background(), "org-1", "enr-1")
		require.NoError(t, err)
	})

	t.Run("completed cannot be dropped", func(t *testing.T) {
		d := setup(t, domain.EnrollmentCompleted, publishedCourse(1, 0))
		svc := NewAcademyService(AcademyServiceConfig{
			Repository: d.repo, AthleteRepository: d.athletes, AuthService: d.auth, Logger: logger.NewMockLogger(t),
		})
		_, err := svc.Drop(context.Background(), "org-1", "enr-1")
		assert.True(t, domain.IsValidation(err))
	})
}

func TestAcademyService_ActivatePaidEnrollment(t *testing.T) {
	tests := []struct {
		name     string
		status   domain.EnrollmentStatus
		activate bool
	}{
		{name: "pending becomes active", status: domain.EnrollmentPendingPayment, activate: true},
		{name: "already active", status: domain.EnrollmentActive},
		{name: "dropped is left alone", status: domain.EnrollmentDropped},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, svc := setupAcademyTest(t)
			e := &domain.Enrollment{ID: "enr-1", Status: tt.status}
			d.repo.EXPECT().LockEnrollmentTx(gomock.Any(), gomock.Any(), "enr-1").Return(e, nil)
			if tt.activate {
				d.repo.EXPECT().UpdateEnrollmentTx(gomock.Any(), gomock.Any(), e).Return(nil)
			}
			require.NoError(t, svc.ActivatePaidEnrollment(context.Background(), "enr-1"))
			if tt.activate {
				assert.Equal(t, domain.EnrollmentActive, e.Status)
			}
		})
	}

	t.Run("lock failure propagates", func(t *testing.T) {
		d, svc := setupAcademyTest(t)
		d.repo.EXPECT().LockEnrollmentTx(gomock.Any(), gomock.Any(), "enr-1").Return(nil, errors.New("timeout"))
		assert.Error(t, svc.ActivatePaidEnrollment(context.Background(), "enr-1"))
	})
}

func TestAcademyService_ListCourses(t *testing.T) {
	t.Run("athletes only see published", func(t *testing.T) {
		d, svc := setupAcademyTest(t)
		expectAuthorize(d.auth, "org-1", &domain.User{ID: "a"}, domain.RoleAthlete)
		d.repo.EXPECT().ListCourses(gomock.Any(), domain.CourseFilter{
			OrganizationID: "org-1", Status: domain.CourseStatusPublished, Limit: domain.DefaultPageSize,
		}).Return(nil, nil)

		courses, err := svc.ListCourses(context.Background(), domain.CourseFilter{OrganizationID: "org-1", Status: domain.CourseStatusDraft})
		require.NoError(t, err)
		assert.NotNil(t, courses)
	})

	t.Run("coaches filter freely", func(t *testing.T) {
		d, svc := setupAcademyTest(t)
		expectAuthorize(d.auth, "org-1", &domain.User{ID: "c"}, domain.RoleCoach)
		d.repo.EXPECT().ListCourses(gomock.Any(), domain.CourseFilter{
			OrganizationID: "org-1", Status: domain.CourseStatusDraft, Limit: 5,
		}).Return([]*domain.Course{{ID: "c1"}}, nil)

		courses, err := svc.ListCourses(context.Background(), domain.CourseFilter{OrganizationID: "org-1", Status: domain.CourseStatusDraft, Limit: 5})
		require.NoError(t, err)
		assert.Len(t, courses, 1)
	})
}

func TestAcademyService_PublishArchive(t *testing.T) {
	coach := &domain.User{ID: "coach-1"}

	t.Run("publish draft", func(t *testing.T) {
		d, svc := setupAcademyTest(t)
		expectAuthorize(d.auth, "org-1", coach, domain.RoleCoach)
		draft := publishedCourse(0, 0)
		draft.Status = domain.CourseStatusDraft
		d.repo.EXPECT().GetCourse(gomock.Any(), "org-1", "course-1").Return(draft, nil)
		d.repo.EXPECT().UpdateCourse(gomock.Any(), draft).Return(nil)

		course, err := svc.PublishCourse(context.Background(), "org-1", "course-1")
		require.NoError(t, err)
		assert.Equal(t, domain.CourseStatusPublished, course.Status)
	})

	t.Run("archived stays archived", func(t *testing.T) {
		d, svc := setupAcademyTest(t)
		expectAuthorize(d.auth, "org-1", coach, domain.RoleCoach)
		archived := publishedCourse(0, 0)
		archived.Status = domain.CourseStatusArchived
		d.repo.EXPECT().GetCourse(gomock.Any(), "org-1", "course-1").Return(archived, nil)

		_, err := svc.PublishCourse(context.Background(), "org-1", "course-1")
		assert.True(t, domain.IsValidation(err))
	})
}
