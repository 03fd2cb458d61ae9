package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"seatportal-backend/internal/store"
)

// StreamResponse represents the API response for a single stream.
type StreamResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CourseResponse represents the API response for a single course.
type CourseResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SemesterResponse represents the API response for a single semester.
type SemesterResponse struct {
	ID             int64 `json:"id"`
	Number         int   `json:"number"`
	AvailableSeats int   `json:"available_seats"`
}

// GetStreams handles the GET /api/streams request.
func (h *Handler) GetStreams(c *gin.Context) {
	streams, err := h.store.ListStreams(c.Request.Context())
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve streams"})
		return
	}

	responses := make([]StreamResponse, 0, len(streams))
	for _, s := range streams {
		responses = append(responses, StreamResponse{ID: s.ID, Name: s.Name})
	}
	c.JSON(http.StatusOK, responses)
}

// GetCourses handles the GET /api/courses/{stream_id} request. A stream with
// no courses answers an empty list, not an error.
func (h *Handler) GetCourses(c *gin.Context) {
	streamID, err := strconv.ParseInt(c.Param("stream_id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid stream ID"})
		return
	}

	courses, err := h.store.ListCourses(c.Request.Context(), streamID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve courses"})
		return
	}

	responses := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, CourseResponse{ID: course.ID, Name: course.Name})
	}
	c.JSON(http.StatusOK, responses)
}

// GetSemesters handles the GET /api/semesters/{course_id} request.
func (h *Handler) GetSemesters(c *gin.Context) {
	courseID, err := strconv.ParseInt(c.Param("course_id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	semesters, err := h.store.ListSemesters(c.Request.Context(), courseID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve semesters"})
		return
	}

	responses := make([]SemesterResponse, 0, len(semesters))
	for _, sem := range semesters {
		responses = append(responses, SemesterResponse{
			ID:             sem.ID,
			Number:         sem.Number,
			AvailableSeats: sem.AvailableSeats,
		})
	}
	c.JSON(http.StatusOK, responses)
}

// GetSeats handles the GET /api/seats/{semester_id} request.
func (h *Handler) GetSeats(c *gin.Context) {
	semesterID, err := strconv.ParseInt(c.Param("semester_id"), 10, 64)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid semester ID"})
		return
	}

	sem, err := h.store.GetSemester(c.Request.Context(), semesterID)
	if errors.Is(err, store.ErrSemesterNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Semester not found"})
		return
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve semester"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"semester_id": sem.ID, "available": sem.AvailableSeats})
}

type createStreamRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateStream handles the POST /api/streams request (admin only).
func (h *Handler) CreateStream(c *gin.Context) {
	var req createStreamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	stream, err := h.store.CreateStream(c.Request.Context(), req.Name)
	if errors.Is(err, store.ErrDuplicateStream) {
		c.JSON(http.StatusConflict, gin.H{"error": "Stream name already exists"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create stream"})
		return
	}

	c.JSON(http.StatusCreated, StreamResponse{ID: stream.ID, Name: stream.Name})
}

type createCourseRequest struct {
	StreamID int64  `json:"stream_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

// CreateCourse handles the POST /api/courses request (admin only).
func (h *Handler) CreateCourse(c *gin.Context) {
	var req createCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	course, err := h.store.CreateCourse(c.Request.Context(), req.StreamID, req.Name)
	if errors.Is(err, store.ErrStreamNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stream not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create course"})
		return
	}

	c.JSON(http.StatusCreated, CourseResponse{ID: course.ID, Name: course.Name})
}

type createSemesterRequest struct {
	CourseID       int64 `json:"course_id" binding:"required"`
	Number         int   `json:"number" binding:"required,gt=0"`
	AvailableSeats int   `json:"available_seats"`
}

// CreateSemester handles the POST /api/semesters request (admin only).
func (h *Handler) CreateSemester(c *gin.Context) {
	var req createSemesterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	sem, err := h.store.CreateSemester(c.Request.Context(), req.CourseID, req.Number, req.AvailableSeats)
	if errors.Is(err, store.ErrCourseNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create semester"})
		return
	}

	c.JSON(http.StatusCreated, SemesterResponse{
		ID:             sem.ID,
		Number:         sem.Number,
		AvailableSeats: sem.AvailableSeats,
	})
}

// DeleteStream handles the DELETE /api/streams/{id} request (admin only).
// Deleting a stream cascades to its courses and their semesters.
func (h *Handler) DeleteStream(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stream ID"})
		return
	}

	err = h.store.DeleteStream(c.Request.Context(), id)
	if errors.Is(err, store.ErrStreamNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stream not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete stream"})
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteCourse handles the DELETE /api/courses/{id} request (admin only).
// Deleting a course cascades to its semesters.
func (h *Handler) DeleteCourse(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course ID"})
		return
	}

	err = h.store.DeleteCourse(c.Request.Context(), id)
	if errors.Is(err, store.ErrCourseNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Course not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete course"})
		return
	}
	c.Status(http.StatusNoContent)
}
