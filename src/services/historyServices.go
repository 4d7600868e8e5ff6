package services

import (
	"errors"
	"strings"

	"github.com/NicaExpressway/NicaExpressway-Backend/src/models"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/utils"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type HistoryService struct {
	db       *gorm.DB
	log      *zap.Logger
	timeZone string
}

// NewHistoryService creates a new instance of HistoryService
func NewHistoryService(db *gorm.DB, log *zap.Logger, timeZone string) *HistoryService {
	return &HistoryService{db: db, log: log, timeZone: timeZone}
}

// EnsureHistory returns the history row of code, creating an empty one if missing
func (s *HistoryService) EnsureHistory(code string) (*models.HistoryModel, error) {
	if strings.TrimSpace(code) == "" {
		return nil, ValidationError("codigo_seguimiento requerido")
	}
	var history models.HistoryModel
	err := s.db.
		Where(models.HistoryModel{CodigoSeguimiento: code}).
		FirstOrCreate(&history).Error
	if err != nil {
		return nil, StorageError("no se pudo crear el historial", err)
	}
	return &history, nil
}

// PushStatus writes status into the next free slot of the history of code
// (slot 4 once the row is full). The row is read, then updated without a
// version check: two concurrent pushes for the same code can pick the same
// slot and the last write wins.
func (s *HistoryService) PushStatus(code, status string, date *string) (*models.HistoryModel, error) {
	status = strings.TrimSpace(status)
	if status == "" {
		return nil, ValidationError("estado requerido")
	}

	effective := utils.TodayIn(s.timeZone)
	if d := utils.TrimmedOrNil(date); d != nil {
		if !utils.IsDate(*d) {
			return nil, ValidationError("fecha debe tener formato YYYY-MM-DD")
		}
		effective = *d
	}

	history, err := s.EnsureHistory(code)
	if err != nil {
		return nil, err
	}

	slot := NextSlot(history.Slots())
	statusCol, dateCol, err := models.SlotColumns(slot)
	if err != nil {
		return nil, err
	}

	result := s.db.Model(&models.HistoryModel{}).
		Where("codigo_seguimiento = ?", code).
		Updates(map[string]any{statusCol: status, dateCol: effective})
	if result.Error != nil {
		return nil, StorageError("no se pudo actualizar el historial", result.Error)
	}

	history.SetSlot(slot, &status, &effective)
	return history, nil
}

// GetHistory returns the history of code enriched with the package intake
// date. A package without history gets an empty one created on the spot.
func (s *HistoryService) GetHistory(code string) (*models.HistoryModel, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ValidationError("codigo query required")
	}

	var (
		history      models.HistoryModel
		historyFound bool
		pkg          models.PackageModel
		pkgFound     bool
	)

	var g errgroup.Group
	g.Go(func() error {
		err := s.db.Where("codigo_seguimiento = ?", code).First(&history).Error
		switch {
		case err == nil:
			historyFound = true
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return StorageError("no se pudo leer el historial", err)
		}
		return nil
	})
	g.Go(func() error {
		err := s.db.Select("id", "fecha_ingreso").Where("codigo_seguimiento = ?", code).First(&pkg).Error
		switch {
		case err == nil:
			pkgFound = true
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			// the intake date only decorates the response
			s.log.Warn("No se pudo recuperar fecha_ingreso para historial",
				zap.String("codigo", code), zap.Error(err))
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !historyFound {
		if !pkgFound {
			return nil, NotFoundError("Historial no encontrado")
		}
		created, err := s.EnsureHistory(code)
		if err != nil {
			return nil, err
		}
		history = *created
	}

	if pkgFound && pkg.FechaIngreso != "" {
		intake := pkg.FechaIngreso
		history.FechaIngreso = &intake
		if utils.TrimmedOrNil(history.Fecha1) == nil {
			history.Fecha1 = &intake
		}
	}
	return &history, nil
}

// StatusCategory groups free-text statuses for the stats counters
type StatusCategory string

const (
	CategoryShipped      StatusCategory = "enviados"
	CategoryWarehoused   StatusCategory = "bodega"
	CategoryInTransit    StatusCategory = "camino"
	CategoryCustoms      StatusCategory = "aduana"
	CategoryUnclassified StatusCategory = ""
)

func slotFilled(s models.HistorySlot) bool {
	return s.Status != nil && strings.TrimSpace(*s.Status) != ""
}

// LatestStatus returns the trimmed status of the highest filled slot, or nil.
// Position decides, not the slot dates.
func LatestStatus(slots models.HistorySlots) *string {
	for i := len(slots) - 1; i >= 0; i-- {
		if slotFilled(slots[i]) {
			s := strings.TrimSpace(*slots[i].Status)
			return &s
		}
	}
	return nil
}

// NextSlot returns the number (1..4) of the first empty slot. A full history
// keeps overwriting slot 4.
func NextSlot(slots models.HistorySlots) int {
	for i, s := range slots {
		if !slotFilled(s) {
			return i + 1
		}
	}
	return models.HistorySlotCount
}

var separators = strings.NewReplacer(" ", "", "_", "")

// ClassifyStatus maps a status to its stats category by keyword. Keywords are
// checked in order, so "listo" wins over anything else in the same text.
func ClassifyStatus(status *string) StatusCategory {
	if status == nil {
		return CategoryUnclassified
	}
	s := utils.Fold(strings.TrimSpace(*status))
	switch {
	case s == "":
		return CategoryUnclassified
	case strings.Contains(s, "listo"):
		return CategoryShipped
	case strings.Contains(s, "recib"):
		return CategoryWarehoused
	case strings.Contains(separators.Replace(s), "transit"):
		return CategoryInTransit
	case strings.Contains(s, "aduan"):
		return CategoryCustoms
	default:
		return CategoryUnclassified
	}
}
