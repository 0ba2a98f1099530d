package audit

import (
	"encoding/json"
	"fmt"
	"time"

	"godiya-emr-backend/internal/auth"
	"godiya-emr-backend/internal/database"
	"godiya-emr-backend/internal/models"
)

type LogOptions struct {
	Session     auth.Session
	EntityType  string
	EntityID    uint
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

// WriteLog records a mutation with its before/after state. Callers
// treat a failed write as non-fatal: the mutation itself already
// happened.
func WriteLog(opts LogOptions) error {
	// jsonb columns need the JSON null literal, not an empty string
	beforeStr := "null"
	afterStr := "null"

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	log := models.AuditLog{
		UserEmail:   opts.Session.Email,
		UserName:    opts.Session.Name,
		UserRole:    opts.Session.Role,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  beforeStr,
		AfterData:   afterStr,
		Undone:      false,
		IsUndone:    false,
	}

	if err := database.DB.Create(&log).Error; err != nil {
		return fmt.Errorf("audit log could not be written: %w", err)
	}

	return nil
}

// UndoLog reverses a logged mutation: deletes what a create made,
// restores the before-state of an update, recreates what a delete
// removed. The undo itself is logged as a new entry.
func UndoLog(logID uint, session auth.Session) error {
	var log models.AuditLog
	if err := database.DB.First(&log, "id = ?", logID).Error; err != nil {
		return fmt.Errorf("log not found: %w", err)
	}

	if log.IsUndone {
		return fmt.Errorf("this action has already been undone")
	}

	switch log.Action {
	case models.AuditActionCreate:
		if err := deleteEntity(log.EntityType, log.EntityID); err != nil {
			return fmt.Errorf("entity could not be deleted: %w", err)
		}

	case models.AuditActionUpdate:
		if err := restoreEntity(log.EntityType, log.EntityID, log.BeforeData); err != nil {
			return fmt.Errorf("entity could not be restored: %w", err)
		}

	case models.AuditActionDelete:
		if err := recreateEntity(log.EntityType, log.AfterData); err != nil {
			return fmt.Errorf("entity could not be recreated: %w", err)
		}

	default:
		return fmt.Errorf("this action type cannot be undone")
	}

	now := time.Now()
	log.IsUndone = true
	log.UndoneBy = session.Email
	log.UndoneAt = &now

	if err := database.DB.Save(&log).Error; err != nil {
		return fmt.Errorf("log could not be updated: %w", err)
	}

	undoLog := models.AuditLog{
		UserEmail:   session.Email,
		UserName:    session.Name,
		UserRole:    session.Role,
		EntityType:  log.EntityType,
		EntityID:    log.EntityID,
		Action:      models.AuditActionUndo,
		Description: fmt.Sprintf("Undone: %s", log.Description),
		BeforeData:  log.AfterData,
		AfterData:   log.BeforeData,
		Undone:      true,
		IsUndone:    false,
	}

	if err := database.DB.Create(&undoLog).Error; err != nil {
		return fmt.Errorf("undo log could not be written: %w", err)
	}

	return nil
}

func deleteEntity(entityType string, entityID uint) error {
	switch entityType {
	case "patient":
		return database.DB.Delete(&models.Patient{}, "id = ?", entityID).Error
	case "appointment":
		return database.DB.Delete(&models.Appointment{}, "id = ?", entityID).Error
	case "department":
		return database.DB.Delete(&models.Department{}, "id = ?", entityID).Error
	case "notification":
		return database.DB.Delete(&models.Notification{}, "id = ?", entityID).Error
	case "invoice":
		return database.DB.Delete(&models.Invoice{}, "id = ?", entityID).Error
	case "lab_order":
		return database.DB.Delete(&models.LabOrder{}, "id = ?", entityID).Error
	case "drug":
		return database.DB.Delete(&models.Drug{}, "id = ?", entityID).Error
	case "stock_entry":
		return database.DB.Delete(&models.StockEntry{}, "id = ?", entityID).Error
	case "vital_sign":
		return database.DB.Delete(&models.VitalSign{}, "id = ?", entityID).Error
	default:
		return fmt.Errorf("unknown entity type: %s", entityType)
	}
}

func recreateEntity(entityType string, dataJSON string) error {
	switch entityType {
	case "notification":
		var n models.Notification
		if err := json.Unmarshal([]byte(dataJSON), &n); err != nil {
			return err
		}
		n.ID = 0
		return database.DB.Create(&n).Error

	case "stock_entry":
		var e models.StockEntry
		if err := json.Unmarshal([]byte(dataJSON), &e); err != nil {
			return err
		}
		e.ID = 0
		return database.DB.Create(&e).Error

	default:
		// Only hard-deleted entity types can come back; everything
		// else is status-mutated, never deleted.
		return fmt.Errorf("entity type %s cannot be recreated", entityType)
	}
}

func restoreEntity(entityType string, entityID uint, dataJSON string) error {
	switch entityType {
	case "patient":
		var p models.Patient
		if err := json.Unmarshal([]byte(dataJSON), &p); err != nil {
			return err
		}
		return database.DB.Model(&models.Patient{}).Where("id = ?", entityID).Updates(map[string]interface{}{
			"first_name":  p.FirstName,
			"last_name":   p.LastName,
			"gender":      p.Gender,
			"phone":       p.Phone,
			"address":     p.Address,
			"blood_group": p.BloodGroup,
			"category":    p.Category,
		}).Error

	case "appointment":
		var a models.Appointment
		if err := json.Unmarshal([]byte(dataJSON), &a); err != nil {
			return err
		}
		return database.DB.Model(&models.Appointment{}).Where("id = ?", entityID).Updates(map[string]interface{}{
			"doctor_name": a.DoctorName,
			"date":        a.Date,
			"time_slot":   a.TimeSlot,
			"reason":      a.Reason,
			"status":      a.Status,
		}).Error

	case "department":
		var d models.Department
		if err := json.Unmarshal([]byte(dataJSON), &d); err != nil {
			return err
		}
		return database.DB.Model(&models.Department{}).Where("id = ?", entityID).Updates(map[string]interface{}{
			"name":         d.Name,
			"description":  d.Description,
			"head_of_unit": d.HeadOfUnit,
		}).Error

	case "lab_order":
		var o models.LabOrder
		if err := json.Unmarshal([]byte(dataJSON), &o); err != nil {
			return err
		}
		return database.DB.Model(&models.LabOrder{}).Where("id = ?", entityID).Updates(map[string]interface{}{
			"test_type":    o.TestType,
			"status":       o.Status,
			"result":       o.Result,
			"completed_at": o.CompletedAt,
		}).Error

	case "drug":
		var d models.Drug
		if err := json.Unmarshal([]byte(dataJSON), &d); err != nil {
			return err
		}
		return database.DB.Model(&models.Drug{}).Where("id = ?", entityID).Updates(map[string]interface{}{
			"name":           d.Name,
			"category":       d.Category,
			"unit":           d.Unit,
			"unit_price":     d.UnitPrice,
			"stock_quantity": d.StockQuantity,
			"reorder_level":  d.ReorderLevel,
		}).Error

	default:
		return fmt.Errorf("unknown entity type: %s", entityType)
	}
}
