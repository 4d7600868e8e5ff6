package services

import (
	"errors"

	"github.com/NicaExpressway/NicaExpressway-Backend/src/models"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/utils"
	"gorm.io/gorm"
)

var reminderFields = map[string]utils.Aliases{
	"titulo":       {"titulo", "title"},
	"descripcion":  {"descripcion", "description"},
	"fecha_limite": {"fecha_limite", "date"},
}

type ReminderService struct {
	db *gorm.DB
}

// NewReminderService creates a new instance of ReminderService
func NewReminderService(db *gorm.DB) *ReminderService {
	return &ReminderService{db: db}
}

// CreateReminder creates a reminder; title, description and due date are all required
func (s *ReminderService) CreateReminder(body utils.Body) (*models.ReminderModel, error) {
	title := utils.TrimmedOrNil(utils.FirstString(body, reminderFields["titulo"]))
	description := utils.TrimmedOrNil(utils.FirstString(body, reminderFields["descripcion"]))
	due := utils.TrimmedOrNil(utils.FirstString(body, reminderFields["fecha_limite"]))
	if title == nil || description == nil || due == nil {
		return nil, ValidationError("missing fields")
	}

	reminder := &models.ReminderModel{Titulo: *title, Descripcion: *description, FechaLimite: *due}
	if err := s.db.Create(reminder).Error; err != nil {
		return nil, StorageError("no se pudo crear el recordatorio", err)
	}
	return reminder, nil
}

// ListReminders retrieves all reminders, earliest due date first
func (s *ReminderService) ListReminders() ([]models.ReminderModel, error) {
	reminders := []models.ReminderModel{}
	if err := s.db.Order("fecha_limite ASC").Order("id ASC").Find(&reminders).Error; err != nil {
		return nil, StorageError("no se pudieron leer los recordatorios", err)
	}
	return reminders, nil
}

// GetReminderByID retrieves a Reminder record by ID
func (s *ReminderService) GetReminderByID(id int) (*models.ReminderModel, error) {
	var reminder models.ReminderModel
	if err := s.db.First(&reminder, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("No encontrado")
		}
		return nil, StorageError("no se pudo leer el recordatorio", err)
	}
	return &reminder, nil
}

// DeleteReminder deletes a Reminder record by ID
func (s *ReminderService) DeleteReminder(id int) error {
	result := s.db.Delete(&models.ReminderModel{}, id)
	if result.Error != nil {
		return StorageError("no se pudo borrar el recordatorio", result.Error)
	}
	if result.RowsAffected == 0 {
		return NotFoundError("No encontrado")
	}
	return nil
}
