package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"certification-api/fields"
	"certification-api/services"
	"certification-api/utils"
)

// UploadDocument streams one multipart file into a named document slot.
// The tracker enforces the size limit, reports progress, supersedes any
// in-flight upload on the same slot, and persists the storage path into
// the application record on completion.
func UploadDocument(c *gin.Context) {
	trackingID := c.Param("tracking_id")
	slot := c.Param("slot")
	userID, _ := c.Get("userID")

	if !utils.ValidateTrackingID(trackingID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tracking id"})
		return
	}
	if !services.ValidSlot(slot) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown document category"})
		return
	}

	_, app, err := services.LoadForUser(userID.(int), trackingID)
	if errors.Is(err, services.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Application belongs to another user"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load application"})
		return
	}
	if app != nil && !app.IsDraft() {
		c.JSON(http.StatusConflict, gin.H{"error": "Cannot upload documents to a submitted application"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read file"})
		return
	}
	defer src.Close()

	tracker := uploadRegistry.ForApplication(trackingID)
	upload, err := tracker.Upload(c.Request.Context(), slot, file.Filename,
		file.Header.Get("Content-Type"), file.Size, src)
	if err != nil {
		var sizeErr *services.SizeExceededError
		if errors.As(err, &sizeErr) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": "File too large. Please upload a file smaller than 50MB.",
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"error":  "Error uploading file. Please try again.",
			"upload": upload,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "File uploaded successfully.",
		"upload":  upload,
	})
}

// DeleteDocument removes a blob and its reference. A blob-store failure
// keeps the reference; the client sees the error and can retry.
func DeleteDocument(c *gin.Context) {
	trackingID := c.Param("tracking_id")
	slot := c.Param("slot")
	userID, _ := c.Get("userID")

	if !utils.ValidateTrackingID(trackingID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tracking id"})
		return
	}
	if !services.ValidSlot(slot) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown document category"})
		return
	}

	type DeleteDocumentRequest struct {
		Path string `json:"path" binding:"required"`
	}
	var req DeleteDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, app, err := services.LoadForUser(userID.(int), trackingID)
	if errors.Is(err, services.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Application belongs to another user"})
		return
	}
	if err != nil || app == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		return
	}

	tracker := uploadRegistry.ForApplication(trackingID)
	if err := tracker.Delete(c.Request.Context(), slot, req.Path); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error deleting file. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "File deleted."})
}

// GetDocuments returns both the persisted document paths per category and
// the transient upload-tracker state (progress, errors, previews).
func GetDocuments(c *gin.Context) {
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

	documents := gin.H{}
	if app != nil {
		for _, slot := range fields.DocumentFields {
			documents[slot] = set.Strings(slot)
		}
	}

	tracker := uploadRegistry.ForApplication(trackingID)
	c.JSON(http.StatusOK, gin.H{
		"documents": documents,
		"uploads":   tracker.Snapshot(),
	})
}
