package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NicaExpressway/NicaExpressway-Backend/src/models"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Accepted body field names for package intake, most preferred first
var packageFields = map[string]utils.Aliases{
	"nombre_cliente":     {"nombre_cliente", "nombre", "cliente"},
	"codigo_seguimiento": {"codigo_seguimiento", "codigo", "codigoTracking"},
	"telefono":           {"telefono", "phone"},
	"peso_libras":        {"peso_libras", "peso", "peso_lb"},
	"tarifa_usd":         {"tarifa_usd", "tarifa"},
	"fecha_ingreso":      {"fecha_ingreso"},
}

// Accepted body field names for package updates
var packageUpdateFields = map[string]utils.Aliases{
	"nombre_cliente": {"nombre_cliente", "nombre"},
	"telefono":       {"telefono"},
	"peso_libras":    {"peso_libras", "peso"},
	"tarifa_usd":     {"tarifa_usd", "tarifa"},
	"estado":         {"estado"},
	"fecha_estado":   {"fecha_estado", "fecha"},
}

type PackageService struct {
	db       *gorm.DB
	log      *zap.Logger
	history  *HistoryService
	timeZone string
}

// PackageUpdateResult is returned by UpdatePackage. Historial is nil when no
// status was sent or the history write failed.
type PackageUpdateResult struct {
	Success   bool                 `json:"success"`
	Paquete   *models.PackageModel `json:"paquete"`
	Historial *models.HistoryModel `json:"historial"`
}

// NewPackageService creates a new instance of PackageService
func NewPackageService(db *gorm.DB, log *zap.Logger, history *HistoryService, timeZone string) *PackageService {
	return &PackageService{db: db, log: log, history: history, timeZone: timeZone}
}

// GenerateTrackingCode builds a code for packages received without one
func GenerateTrackingCode(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("AUTO-%d-%s", now.UnixMilli(), suffix)
}

// PackageFromBody maps an intake body onto a package, applying the defaults
// for a missing tracking code and intake date.
func (s *PackageService) PackageFromBody(body utils.Body) (*models.PackageModel, error) {
	weight, err := nonNegative(body, packageFields["peso_libras"])
	if err != nil {
		return nil, err
	}
	rate, err := nonNegative(body, packageFields["tarifa_usd"])
	if err != nil {
		return nil, err
	}

	pkg := &models.PackageModel{
		NombreCliente: utils.FirstString(body, packageFields["nombre_cliente"]),
		Telefono:      utils.FirstString(body, packageFields["telefono"]),
		TipoEnvioId:   utils.ParseShippingType(body),
		PesoLibras:    weight,
		TarifaUsd:     rate,
	}

	if code := utils.TrimmedOrNil(utils.FirstString(body, packageFields["codigo_seguimiento"])); code != nil {
		pkg.CodigoSeguimiento = *code
	} else {
		pkg.CodigoSeguimiento = GenerateTrackingCode(utils.Clock())
	}

	if date := utils.TrimmedOrNil(utils.FirstString(body, packageFields["fecha_ingreso"])); date != nil {
		pkg.FechaIngreso = *date
	} else {
		pkg.FechaIngreso = utils.TodayIn(s.timeZone)
	}
	return pkg, nil
}

// CreatePackage creates a new Package record and makes sure its history row exists
func (s *PackageService) CreatePackage(pkg *models.PackageModel) (*models.PackageModel, error) {
	if strings.TrimSpace(pkg.CodigoSeguimiento) == "" {
		pkg.CodigoSeguimiento = GenerateTrackingCode(utils.Clock())
	}
	if pkg.FechaIngreso == "" {
		pkg.FechaIngreso = utils.TodayIn(s.timeZone)
	}

	if err := s.db.Create(pkg).Error; err != nil {
		return nil, StorageError("no se pudo crear el paquete", err)
	}

	// A missing history row is created again on first read, so a failure
	// here must not fail the intake.
	if _, err := s.history.EnsureHistory(pkg.CodigoSeguimiento); err != nil {
		s.log.Error("ensureHistorialRow error",
			zap.String("codigo", pkg.CodigoSeguimiento), zap.Error(err))
	}
	return pkg, nil
}

// ListPackages retrieves all packages, or those with the given tracking code
func (s *PackageService) ListPackages(code string) ([]models.PackageModel, error) {
	packages := []models.PackageModel{}
	query := s.db.Order("id DESC")
	if code = strings.TrimSpace(code); code != "" {
		query = query.Where("codigo_seguimiento = ?", code)
	}
	if err := query.Find(&packages).Error; err != nil {
		return nil, StorageError("no se pudieron leer los paquetes", err)
	}
	return packages, nil
}

// GetPackageByID retrieves a Package record by ID
func (s *PackageService) GetPackageByID(id int) (*models.PackageModel, error) {
	var pkg models.PackageModel
	if err := s.db.First(&pkg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("No encontrado")
		}
		return nil, StorageError("no se pudo leer el paquete", err)
	}
	return &pkg, nil
}

// UpdatePackage patches the package fields present in body and, when an
// estado is sent, appends it to the package history.
func (s *PackageService) UpdatePackage(code string, body utils.Body) (*PackageUpdateResult, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ValidationError("codigo_seguimiento required")
	}

	updates := map[string]any{}
	for _, column := range []string{"nombre_cliente", "telefono"} {
		if v := utils.FirstString(body, packageUpdateFields[column]); v != nil {
			updates[column] = *v
		}
	}
	for _, column := range []string{"peso_libras", "tarifa_usd"} {
		n, err := nonNegative(body, packageUpdateFields[column])
		if err != nil {
			return nil, err
		}
		if n != nil {
			updates[column] = *n
		}
	}
	status := utils.TrimmedOrNil(utils.FirstString(body, packageUpdateFields["estado"]))
	statusDate := utils.FirstString(body, packageUpdateFields["fecha_estado"])

	if len(updates) == 0 && status == nil {
		return nil, ValidationError("No hay campos para actualizar")
	}
	if d := utils.TrimmedOrNil(statusDate); status != nil && d != nil && !utils.IsDate(*d) {
		return nil, ValidationError("fecha debe tener formato YYYY-MM-DD")
	}

	var pkg models.PackageModel
	if err := s.db.Where("codigo_seguimiento = ?", code).First(&pkg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("No se encontró paquete con ese código de seguimiento")
		}
		return nil, StorageError("no se pudo leer el paquete", err)
	}

	if len(updates) > 0 {
		if err := s.db.Model(&pkg).Updates(updates).Error; err != nil {
			return nil, StorageError("no se pudo actualizar el paquete", err)
		}
		if err := s.db.First(&pkg, pkg.Id).Error; err != nil {
			return nil, StorageError("no se pudo leer el paquete", err)
		}
	}

	result := &PackageUpdateResult{Success: true, Paquete: &pkg}
	if status != nil {
		history, err := s.history.PushStatus(code, *status, statusDate)
		if err != nil {
			s.log.Error("pushEstadoToHistorial error", zap.String("codigo", code), zap.Error(err))
		} else {
			result.Historial = history
		}
	}
	return result, nil
}

func nonNegative(body utils.Body, aliases utils.Aliases) (*float64, error) {
	n, err := utils.FirstNumber(body, aliases)
	if err != nil {
		return nil, ValidationError(err.Error())
	}
	if n != nil && *n < 0 {
		return nil, ValidationError(fmt.Sprintf("%s must not be negative", aliases[0]))
	}
	return n, nil
}
