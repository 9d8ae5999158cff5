package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"certification-api/config"
	"certification-api/fields"
	"certification-api/models"
)

// MintTrackingID returns a fresh opaque tracking identifier. The client
// normally mints its own and round-trips it via URL; this endpoint-backed
// variant exists for clients that want the server to do it.
func MintTrackingID() string {
	return uuid.NewString()
}

// SaveDraft persists a partial-or-complete field snapshot under a tracking
// id. Blank fields are stripped first so a partial save never overwrites
// stored values, the completion percentage is recomputed, and the write is
// an upsert keyed on tracking_id: concurrent saves for the same id replace
// the row's data columns, never duplicate the row. Submitted records are
// frozen to this path.
func SaveDraft(userID int, trackingID string, set fields.Set) (*models.Application, error) {
	if trackingID == "" {
		return nil, &PersistenceError{Op: "save", Err: errors.New("tracking id is required")}
	}

	var existing models.Application
	err := config.DB.Select("application_id", "user_id", "status").
		Where("tracking_id = ?", trackingID).First(&existing).Error
	switch {
	case err == nil:
		if !existing.IsDraft() {
			return nil, ErrNotDraft
		}
		if existing.UserID != 0 && existing.UserID != userID {
			return nil, ErrForbidden
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// first save for this tracking id
	default:
		return nil, &PersistenceError{Op: "load", Err: err}
	}

	stripped := set.StripBlanks()
	app := models.Application{
		TrackingID:           trackingID,
		UserID:               userID,
		Status:               models.StatusDraft,
		CompletionPercentage: fields.EstimateCompletion(set),
		UpdateAt:             time.Now(),
	}
	columns := fields.ApplyToRecord(stripped, &app)
	columns = append(columns, "user_id", "completion_percentage", "update_at")

	err = config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tracking_id"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(&app).Error
	if err != nil {
		return nil, &PersistenceError{Op: "save", Err: err}
	}
	return &app, nil
}

// LoadByTrackingID rehydrates the field model for a tracking id. A missing
// record is (nil, nil, nil) - distinct from an I/O failure - so a fresh
// form mounts at defaults instead of crashing.
func LoadByTrackingID(trackingID string) (fields.Set, *models.Application, error) {
	var app models.Application
	err := config.DB.Where("tracking_id = ?", trackingID).First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, &PersistenceError{Op: "load", Err: err}
	}
	return fields.FromRecord(&app), &app, nil
}

// LoadForUser is LoadByTrackingID plus the ownership check: once a record
// has an owner, only that owner (or an admin, checked by the caller) may
// read it. Anonymous drafts with no owner stay open to the tracking-id
// holder - the id acts as a capability token for resumability.
func LoadForUser(userID int, trackingID string) (fields.Set, *models.Application, error) {
	set, app, err := LoadByTrackingID(trackingID)
	if err != nil || app == nil {
		return set, app, err
	}
	if app.UserID != 0 && app.UserID != userID {
		return nil, nil, ErrForbidden
	}
	return set, app, nil
}

// Submit validates the full field model and moves the record from draft to
// pending. After this the autosave path refuses the record.
func Submit(userID int, trackingID string) (*models.Application, error) {
	set, app, err := LoadForUser(userID, trackingID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, &PersistenceError{Op: "submit", Err: gorm.ErrRecordNotFound}
	}
	if !app.IsDraft() {
		return nil, ErrNotDraft
	}
	if errs := fields.Validate(set); len(errs) > 0 {
		return nil, &ValidationFailedError{Errors: errs}
	}

	now := time.Now()
	updates := map[string]any{
		"status":       models.StatusPending,
		"submitted_at": now,
		"update_at":    now,
	}
	if err := config.DB.Model(app).Updates(updates).Error; err != nil {
		return nil, &PersistenceError{Op: "submit", Err: err}
	}
	app.Status = models.StatusPending
	app.SubmittedAt = &now

	notifySubmission(userID, app)
	return app, nil
}

// UpdateStatus is the admin-only transition for submitted applications.
func UpdateStatus(trackingID, status string) (*models.Application, error) {
	valid := false
	for _, s := range models.ValidStatuses {
		if s == status {
			valid = true
			break
		}
	}
	if !valid {
		return nil, fmt.Errorf("invalid status %q", status)
	}

	var app models.Application
	if err := config.DB.Where("tracking_id = ?", trackingID).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, &PersistenceError{Op: "load", Err: err}
	}

	now := time.Now()
	if err := config.DB.Model(&app).Updates(map[string]any{
		"status":    status,
		"update_at": now,
	}).Error; err != nil {
		return nil, &PersistenceError{Op: "update status", Err: err}
	}
	app.Status = status

	notifyStatusChange(&app)
	return &app, nil
}

// ListByUser returns a user's applications for the dashboard, newest first.
func ListByUser(userID int) ([]models.Application, error) {
	var apps []models.Application
	err := config.DB.Where("user_id = ?", userID).
		Order("update_at DESC").Find(&apps).Error
	if err != nil {
		return nil, &PersistenceError{Op: "list", Err: err}
	}
	return apps, nil
}

// ListAll returns every application, optionally filtered by status.
func ListAll(status string) ([]models.Application, error) {
	query := config.DB.Order("update_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var apps []models.Application
	if err := query.Find(&apps).Error; err != nil {
		return nil, &PersistenceError{Op: "list", Err: err}
	}
	return apps, nil
}

// AppendDocumentPath records a completed upload's storage path into the
// slot's array column so the file survives a reload.
func AppendDocumentPath(trackingID, slot, path string) error {
	var app models.Application
	if err := config.DB.Where("tracking_id = ?", trackingID).First(&app).Error; err != nil {
		return &PersistenceError{Op: "load", Err: err}
	}
	col := fields.DocumentColumn(&app, slot)
	if col == nil {
		return fmt.Errorf("unknown document slot %q", slot)
	}
	for _, p := range *col {
		if p == path {
			return nil
		}
	}
	*col = append(*col, path)

	column, _ := fields.ColumnFor(slot)
	if err := config.DB.Model(&app).Updates(map[string]any{
		column:      *col,
		"update_at": time.Now(),
	}).Error; err != nil {
		return &PersistenceError{Op: "append document", Err: err}
	}
	return nil
}

// RemoveDocumentPath drops a path from a slot's array column. Called only
// after the blob itself was deleted; a failed blob delete keeps the
// reference so the review UI never points at bookkeeping that quietly
// vanished (an orphaned blob is the preferred failure).
func RemoveDocumentPath(trackingID, slot, path string) error {
	var app models.Application
	if err := config.DB.Where("tracking_id = ?", trackingID).First(&app).Error; err != nil {
		return &PersistenceError{Op: "load", Err: err}
	}
	col := fields.DocumentColumn(&app, slot)
	if col == nil {
		return fmt.Errorf("unknown document slot %q", slot)
	}
	kept := (*col)[:0]
	for _, p := range *col {
		if p != path {
			kept = append(kept, p)
		}
	}
	*col = kept

	column, _ := fields.ColumnFor(slot)
	if err := config.DB.Model(&app).Updates(map[string]any{
		column:      *col,
		"update_at": time.Now(),
	}).Error; err != nil {
		return &PersistenceError{Op: "remove document", Err: err}
	}
	return nil
}

func notifySubmission(userID int, app *models.Application) {
	tracking := app.TrackingID
	n := models.Notification{
		UserID:            uint(userID),
		Title:             "Application submitted",
		Message:           fmt.Sprintf("Your certification application %s was received and is pending review.", tracking),
		Type:              "success",
		RelatedTrackingID: &tracking,
	}
	if err := config.DB.Create(&n).Error; err != nil {
		log.Printf("Warning: failed to create submission notification: %v", err)
	}
	sendStatusMail(userID, "Application received",
		fmt.Sprintf("<p>Your certification application <b>%s</b> was received and is pending review.</p>", tracking))
}

func notifyStatusChange(app *models.Application) {
	tracking := app.TrackingID
	n := models.Notification{
		UserID:            uint(app.UserID),
		Title:             "Application status updated",
		Message:           fmt.Sprintf("Application %s is now %s.", tracking, app.Status),
		Type:              statusNoticeType(app.Status),
		RelatedTrackingID: &tracking,
	}
	if err := config.DB.Create(&n).Error; err != nil {
		log.Printf("Warning: failed to create status notification: %v", err)
	}
	sendStatusMail(app.UserID, "Application status updated",
		fmt.Sprintf("<p>Your certification application <b>%s</b> is now <b>%s</b>.</p>", tracking, app.Status))
}

func statusNoticeType(status string) string {
	switch status {
	case models.StatusApproved:
		return "success"
	case models.StatusRejected:
		return "error"
	case models.StatusMoreInfoNeeded:
		return "warning"
	}
	return "info"
}

func sendStatusMail(userID int, subject, html string) {
	var user models.User
	if err := config.DB.Select("email").Where("user_id = ? AND delete_at IS NULL", userID).
		First(&user).Error; err != nil || user.Email == "" {
		return
	}
	if err := config.SendMail([]string{user.Email}, subject, html); err != nil {
		log.Printf("Warning: failed to send mail to %s: %v", user.Email, err)
	}
}
