package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"seatportal-backend/internal/store"
)

type updateSeatsRequest struct {
	SemesterID *int64 `json:"semester_id"`
	Count      *int   `json:"count"`
}

// UpdateSeats handles the POST /api/update_seats request. The admin role
// guard runs before this handler; here the payload is validated, the
// semester loaded, and its seat counter overwritten in a single commit.
// Concurrent updates to the same semester are last-write-wins. The count is
// deliberately not bounded or checked for sign; the admin input is trusted
// as-is.
func (h *Handler) UpdateSeats(c *gin.Context) {
	var req updateSeatsRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.SemesterID == nil || req.Count == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	sem, opened, err := h.store.UpdateSeats(c.Request.Context(), *req.SemesterID, *req.Count)
	if errors.Is(err, store.ErrSemesterNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Semester not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update seats"})
		return
	}

	if opened && h.notifier != nil {
		h.notifier.Dispatch(sem.ID)
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Updated successfully",
		"semester_id": sem.ID,
		"available":   sem.AvailableSeats,
	})
}
