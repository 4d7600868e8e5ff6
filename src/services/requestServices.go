package services

import (
	"errors"
	"strings"

	"github.com/NicaExpressway/NicaExpressway-Backend/src/models"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/utils"
	"gorm.io/gorm"
)

// Accepted body field names for customer requests, most preferred first
var requestFields = map[string]utils.Aliases{
	"nombre":      {"nombre", "nombreSolicitar", "nombre_cliente"},
	"telefono":    {"telefono", "telefonoSolicitar", "phone"},
	"agencia":     {"agencia", "plataforma", "plataformaSolicitar"},
	"descripcion": {"descripcion", "descripcionSolicitar", "description"},
	"peso_aprox":  {"peso_aprox", "peso", "pesoSolicitar"},
}

type RequestService struct {
	db *gorm.DB
}

// NewRequestService creates a new instance of RequestService
func NewRequestService(db *gorm.DB) *RequestService {
	return &RequestService{db: db}
}

// CreateRequest stores a customer request built from body
func (s *RequestService) CreateRequest(body utils.Body) (*models.RequestModel, error) {
	weight, err := nonNegative(body, requestFields["peso_aprox"])
	if err != nil {
		return nil, err
	}

	request := &models.RequestModel{
		Nombre:      utils.FirstString(body, requestFields["nombre"]),
		Telefono:    utils.FirstString(body, requestFields["telefono"]),
		Agencia:     utils.FirstString(body, requestFields["agencia"]),
		Descripcion: utils.FirstString(body, requestFields["descripcion"]),
		TipoEnvioId: utils.ParseShippingType(body),
		PesoAprox:   weight,
		CreatedAt:   utils.Clock().UTC(),
	}
	if err := s.db.Create(request).Error; err != nil {
		return nil, StorageError("no se pudo crear el pedido", err)
	}
	return request, nil
}

// ListRequests retrieves requests, newest first. A name filter takes
// precedence over a phone filter.
func (s *RequestService) ListRequests(name, phone string) ([]models.RequestModel, error) {
	requests := []models.RequestModel{}
	query := s.db.Order("id DESC")
	if name = strings.TrimSpace(name); name != "" {
		query = query.Where("LOWER(nombre) LIKE LOWER(?) ESCAPE '"+utils.LikeEscape+"'", utils.ContainsPattern(name))
	} else if phone = strings.TrimSpace(phone); phone != "" {
		query = query.Where("telefono = ?", phone)
	}
	if err := query.Find(&requests).Error; err != nil {
		return nil, StorageError("no se pudieron leer los pedidos", err)
	}
	return requests, nil
}

// GetRequestByID retrieves a Request record by ID
func (s *RequestService) GetRequestByID(id int) (*models.RequestModel, error) {
	var request models.RequestModel
	if err := s.db.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("No encontrado")
		}
		return nil, StorageError("no se pudo leer el pedido", err)
	}
	return &request, nil
}
