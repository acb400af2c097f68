package delivery

import (
	"errors"
	"net/http"

	"studyplan-backend/internal/subject/usecase"

	"github.com/gin-gonic/gin"
)

// SubjectHandler handles subject-related HTTP requests
type SubjectHandler struct {
	subjectUsecase usecase.SubjectUsecase
}

// NewSubjectHandler creates a new SubjectHandler
func NewSubjectHandler(subjectUsecase usecase.SubjectUsecase) *SubjectHandler {
	return &SubjectHandler{subjectUsecase: subjectUsecase}
}

// CreateSubjectRequest represents the request body for creating a subject
type CreateSubjectRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

// GetSubjects returns all subjects
// GET /api/subjects
func (h *SubjectHandler) GetSubjects(c *gin.Context) {
	subjects, err := h.subjectUsecase.ListSubjects()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subjects"})
		return
	}
	c.JSON(http.StatusOK, subjects)
}

// GetSubjectByID returns a specific subject
// GET /api/subjects/:id
func (h *SubjectHandler) GetSubjectByID(c *gin.Context) {
	subject, err := h.subjectUsecase.GetSubjectByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrSubjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subject not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subject"})
		return
	}
	c.JSON(http.StatusOK, subject)
}

// CreateSubject creates a new subject
// POST /api/subjects
func (h *SubjectHandler) CreateSubject(c *gin.Context) {
	var req CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subject, err := h.subjectUsecase.CreateSubject(req.Name, req.Color)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidSubject) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create subject"})
		return
	}

	c.JSON(http.StatusCreated, subject)
}

// UpdateSubject patches an existing subject
// PATCH /api/subjects/:id
func (h *SubjectHandler) UpdateSubject(c *gin.Context) {
	var updates usecase.SubjectUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subject, err := h.subjectUsecase.UpdateSubject(c.Param("id"), updates)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSubjectNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Subject not found"})
		case errors.Is(err, usecase.ErrInvalidSubject):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update subject"})
		}
		return
	}

	c.JSON(http.StatusOK, subject)
}

// DeleteSubject deletes a subject. Tasks referencing it are left alone.
// DELETE /api/subjects/:id
func (h *SubjectHandler) DeleteSubject(c *gin.Context) {
	if err := h.subjectUsecase.DeleteSubject(c.Param("id")); err != nil {
		if errors.Is(err, usecase.ErrSubjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Subject not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete subject"})
		return
	}

	c.Status(http.StatusNoContent)
}
