package http

import (
	"net/http"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

type AcademyHandler struct {
	service domain.AcademyService
	logger  logger.Logger
}

func NewAcademyHandler(service domain.AcademyService, logger logger.Logger) *AcademyHandler {
	return &AcademyHandler{service: service, logger: logger}
}

type updateProgressRequest struct {
	OrganizationID string `json:"organization_id"`
	EnrollmentID   string `json:"enrollment_id"`
	Progress       int    `json:"progress"`
}

type enrollmentRequest struct {
	OrganizationID string `json:"organization_id"`
	EnrollmentID   string `json:"enrollment_id"`
}

func (h *AcademyHandler) RegisterRoutes(mux *http.ServeMux, requireAuth Middleware) {
	mux.Handle("/api/courses.list", requireAuth(http.HandlerFunc(h.handleListCourses)))
	mux.Handle("/api/courses.get", requireAuth(http.HandlerFunc(h.handleGetCourse)))
	mux.Handle("/api/courses.create", requireAuth(http.HandlerFunc(h.handleCreateCourse)))
	mux.Handle("/api/courses.update", requireAuth(http.HandlerFunc(h.handleUpdateCourse)))
	mux.Handle("/api/courses.publish", requireAuth(http.HandlerFunc(h.handlePublish)))
	mux.Handle("/api/courses.archive", requireAuth(http.HandlerFunc(h.handleArchive)))
	mux.Handle("/api/enrollments.create", requireAuth(http.HandlerFunc(h.handleEnroll)))
	mux.Handle("/api/enrollments.list", requireAuth(http.HandlerFunc(h.handleListEnrollments)))
	mux.Handle("/api/enrollments.progress", requireAuth(http.HandlerFunc(h.handleProgress)))
	mux.Handle("/api/enrollments.drop", requireAuth(http.HandlerFunc(h.handleDrop)))
}

func (h *AcademyHandler) handleListCourses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	filter := domain.CourseFilter{
		OrganizationID: q.Get("organization_id"),
		Status:         domain.CourseStatus(q.Get("status")),
		Sport:          q.Get("sport"),
	}
	var ok bool
	if filter.Limit, ok = queryInt(r, "limit"); !ok {
		WriteJSONError(w, "Invalid limit", http.StatusBadRequest)
		return
	}
	if filter.Offset, ok = queryInt(r, "offset"); !ok {
		WriteJSONError(w, "Invalid offset", http.StatusBadRequest)
		return
	}
	courses, err := h.service.ListCourses(r.Context(), filter)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list courses")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"courses": courses})
}

func (h *AcademyHandler) handleGetCourse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	orgID, id := orgAndID(r)
	if id == "" {
		WriteJSONError(w, "Missing course ID", http.StatusBadRequest)
		return
	}
	course, err := h.service.GetCourse(r.Context(), orgID, id)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to get course")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"course": course})
}

func (h *AcademyHandler) handleCreateCourse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var course domain.Course
	if !decodeJSON(w, r, &course) {
		return
	}
	if err := h.service.CreateCourse(r.Context(), &course); err != nil {
		writeServiceError(w, h.logger, err, "Failed to create course")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"course": course})
}

func (h *AcademyHandler) handleUpdateCourse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var course domain.Course
	if !decodeJSON(w, r, &course) {
		return
	}
	if course.ID == "" {
		WriteJSONError(w, "Missing ID", http.StatusBadRequest)
		return
	}
	if err := h.service.UpdateCourse(r.Context(), &course); err != nil {
		writeServiceError(w, h.logger, err, "Failed to update course")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"course": course})
}

func (h *AcademyHandler) handlePublish(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req orgIDRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	course, err := h.service.PublishCourse(r.Context(), req.OrganizationID, req.ID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to publish course")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"course": course})
}

func (h *AcademyHandler) handleArchive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req orgIDRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	course, err := h.service.ArchiveCourse(r.Context(), req.OrganizationID, req.ID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to archive course")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"course": course})
}

func (h *AcademyHandler) handleEnroll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req domain.EnrollRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	result, err := h.service.Enroll(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to enroll")
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (h *AcademyHandler) handleListEnrollments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	enrollments, err := h.service.ListEnrollments(r.Context(), domain.EnrollmentFilter{
		OrganizationID: q.Get("organization_id"),
		CourseID:       q.Get("course_id"),
		StudentID:      q.Get("student_id"),
		Status:         domain.EnrollmentStatus(q.Get("status")),
	})
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to list enrollments")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"enrollments": enrollments})
}

func (h *AcademyHandler) handleProgress(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req updateProgressRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	enrollment, err := h.service.UpdateProgress(r.Context(), req.OrganizationID, req.EnrollmentID, req.Progress)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to update progress")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"enrollment": enrollment})
}

func (h *AcademyHandler) handleDrop(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req enrollmentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	enrollment, err := h.service.Drop(r.Context(), req.OrganizationID, req.EnrollmentID)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to drop enrollment")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"enrollment": enrollment})
}
