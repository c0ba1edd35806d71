package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joblane/joblane/internal/db"
	"github.com/joblane/joblane/internal/models"
)

type jobRequest struct {
	Title       string  `json:"title" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Company     company `json:"company" binding:"required"`
	Location    string  `json:"location"`
	Salary      float64 `json:"salary"`
}

type company struct {
	Name         string `json:"name" binding:"required"`
	ContactEmail string `json:"contactEmail" binding:"required,email"`
	ContactPhone string `json:"contactPhone" binding:"required"`
}

func (r jobRequest) toModel() *models.Job {
	return &models.Job{
		Title:       r.Title,
		Type:        r.Type,
		Description: r.Description,
		Company: models.Company{
			Name:         r.Company.Name,
			ContactEmail: r.Company.ContactEmail,
			ContactPhone: r.Company.ContactPhone,
		},
		Location: r.Location,
		Salary:   r.Salary,
	}
}

func (h *Handler) handleListJobs(c *gin.Context) {
	jobs, err := h.jobs.List(c.Request.Context())
	if err != nil {
		writeInternalError(c, "failed to list jobs", err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (h *Handler) handleGetJob(c *gin.Context) {
	job, err := h.jobs.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, db.ErrJobNotFound) {
			writeError(c, http.StatusNotFound, "job not found")
			return
		}
		writeInternalError(c, "failed to fetch job", err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *Handler) handleCreateJob(c *gin.Context) {
	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidationError(c, err)
		return
	}

	job := req.toModel()
	if user, ok := CurrentUser(c); ok {
		job.PostedBy = user.ID
	}

	if err := h.jobs.Insert(c.Request.Context(), job); err != nil {
		writeInternalError(c, "failed to create job", err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

func (h *Handler) handleUpdateJob(c *gin.Context) {
	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeValidationError(c, err)
		return
	}

	id := c.Param("id")
	if err := h.jobs.Update(c.Request.Context(), id, req.toModel()); err != nil {
		if errors.Is(err, db.ErrJobNotFound) {
			writeError(c, http.StatusNotFound, "job not found")
			return
		}
		writeInternalError(c, "failed to update job", err)
		return
	}

	job, err := h.jobs.FindByID(c.Request.Context(), id)
	if err != nil {
		writeInternalError(c, "failed to fetch job", err)
		return
	}

	c.JSON(http.StatusOK, job)
}

func (h *Handler) handleDeleteJob(c *gin.Context) {
	if err := h.jobs.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, db.ErrJobNotFound) {
			writeError(c, http.StatusNotFound, "job not found")
			return
		}
		writeInternalError(c, "failed to delete job", err)
		return
	}

	c.Status(http.StatusNoContent)
}

var _ JobStore = (*db.JobStore)(nil)
