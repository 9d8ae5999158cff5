package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"certification-api/config"
	"certification-api/models"
	"certification-api/services"
)

// AdminListApplications returns every application for the review queue,
// optionally filtered by status.
func AdminListApplications(c *gin.Context) {
	apps, err := services.ListAll(c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch applications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"applications": apps,
		"total":        len(apps),
	})
}

// AdminUpdateStatus transitions a submitted application. This is the only
// path that mutates a non-draft record.
func AdminUpdateStatus(c *gin.Context) {
	trackingID := c.Param("tracking_id")

	type UpdateStatusRequest struct {
		Status string `json:"status" binding:"required"`
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	app, err := services.UpdateStatus(trackingID, req.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
			return
		}
		var pErr *services.PersistenceError
		if errors.As(err, &pErr) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Status updated successfully",
		"application": app,
	})
}

// AdminAnalytics summarizes the review pipeline: counts per status and the
// average completion of drafts.
func AdminAnalytics(c *gin.Context) {
	type statusCount struct {
		Status string `gorm:"column:status"`
		Count  int64  `gorm:"column:count"`
	}

	var counts []statusCount
	if err := config.DB.Model(&models.Application{}).
		Select("status, COUNT(*) AS count").
		Group("status").Scan(&counts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
		return
	}

	byStatus := gin.H{}
	var total int64
	for _, sc := range counts {
		byStatus[sc.Status] = sc.Count
		total += sc.Count
	}

	var avgCompletion float64
	config.DB.Model(&models.Application{}).
		Where("status = ?", models.StatusDraft).
		Select("COALESCE(AVG(completion_percentage), 0)").Scan(&avgCompletion)

	c.JSON(http.StatusOK, gin.H{
		"total":                total,
		"by_status":            byStatus,
		"avg_draft_completion": avgCompletion,
	})
}
