package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"certification-api/config"
	"certification-api/fields"
	"certification-api/models"
	"certification-api/services"
	"certification-api/utils"
)

// Shared wiring for the wizard endpoints: one autosave hub and one upload
// tracker registry for the process.
var (
	autosaveHub    = services.NewAutosaveHub(services.DebounceWindow)
	uploadRegistry = services.NewTrackerRegistry(config.NewLocalStorage())
)

// MintTrackingID issues a tracking id for clients that prefer a
// server-minted one. Most clients mint a UUID themselves and round-trip it
// via the URL; both are equivalent.
func MintTrackingID(c *gin.Context) {
	c.JSON(http.StatusCreated, gin.H{"tracking_id": services.MintTrackingID()})
}

// GetApplications lists the caller's applications for the dashboard.
func GetApplications(c *gin.Context) {
	userID, _ := c.Get("userID")

	apps, err := services.ListByUser(userID.(int))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch applications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": apps,
		"total":        len(apps),
	})
}

// GetApplication rehydrates the field model for a tracking id. A tracking
// id with no record yet returns defaults so the form mounts cleanly.
func GetApplication(c *gin.Context) {
	trackingID := c.Param("tracking_id")
	userID, _ := c.Get("userID")

	if !utils.ValidateTrackingID(trackingID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tracking id"})
		return
	}

	set, app, err := services.LoadForUser(userID.(int), trackingID)
	if errors.Is(err, services.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Application belongs to another user"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load application"})
		return
	}

	resp := gin.H{"tracking_id": trackingID}
	if app == nil {
		resp["exists"] = false
		resp["fields"] = fields.NewSet()
		resp["status"] = models.StatusDraft
		resp["completion_percentage"] = 0
	} else {
		resp["exists"] = true
		resp["fields"] = set
		resp["status"] = app.Status
		resp["completion_percentage"] = app.CompletionPercentage
	}
	if notice, ok := autosaveHub.Notice(trackingID); ok {
		resp["notice"] = notice
	}
	c.JSON(http.StatusOK, resp)
}

// SaveDraft accepts one edit snapshot and hands it to the autosave hub,
// which debounces and persists it. The write itself is asynchronous; the
// response carries the recomputed completion estimate for the UI.
func SaveDraft(c *gin.Context) {
	trackingID := c.Param("tracking_id")
	userID, _ := c.Get("userID")

	if !utils.ValidateTrackingID(trackingID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tracking id"})
		return
	}

	type SaveDraftRequest struct {
		Fields fields.Set `json:"fields" binding:"required"`
	}

	var req SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	autosaveHub.Observe(userID.(int), trackingID, req.Fields)

	c.JSON(http.StatusAccepted, gin.H{
		"tracking_id":           trackingID,
		"completion_percentage": fields.EstimateCompletion(req.Fields),
	})
}

// ValidateStep checks only the named substep's fields, the gate for
// forward navigation. Violations elsewhere do not block this screen.
func ValidateStep(c *gin.Context) {
	type ValidateStepRequest struct {
		Step    int        `json:"step" binding:"required"`
		Substep int        `json:"substep" binding:"required"`
		Fields  fields.Set `json:"fields" binding:"required"`
	}

	var req ValidateStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	errs := fields.ValidateStep(req.Fields, req.Step, req.Substep)
	c.JSON(http.StatusOK, gin.H{
		"valid":  len(errs) == 0,
		"errors": errs,
	})
}

// SubmitApplication flushes pending edits and moves the draft to pending.
func SubmitApplication(c *gin.Context) {
	trackingID := c.Param("tracking_id")
	userID, _ := c.Get("userID")

	if !utils.ValidateTrackingID(trackingID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tracking id"})
		return
	}

	autosaveHub.Flush(trackingID)

	app, err := services.Submit(userID.(int), trackingID)
	if err != nil {
		var vErr *services.ValidationFailedError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Application is incomplete",
				"fields": vErr.Errors,
			})
		case errors.Is(err, services.ErrNotDraft):
			c.JSON(http.StatusConflict, gin.H{"error": "Application was already submitted"})
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "Application belongs to another user"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit application"})
		}
		return
	}

	autosaveHub.Drop(trackingID)

	c.JSON(http.StatusOK, gin.H{
		"message":     "Application submitted successfully",
		"application": app,
	})
}

// TrackApplication is the public status view behind the tracking id: just
// status and completion, no field data.
func TrackApplication(c *gin.Context) {
	trackingID := c.Param("tracking_id")

	if !utils.ValidateTrackingID(trackingID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tracking id"})
		return
	}

	_, app, err := services.LoadByTrackingID(trackingID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load application"})
		return
	}
	if app == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tracking_id":           app.TrackingID,
		"status":                app.Status,
		"completion_percentage": app.CompletionPercentage,
		"submitted_at":          app.SubmittedAt,
		"updated_at":            app.UpdateAt,
	})
}
