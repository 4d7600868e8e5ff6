package services

import (
	"math"

	"github.com/NicaExpressway/NicaExpressway-Backend/src/models"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/utils"
	"gorm.io/gorm"
)

type StatusCounts struct {
	Enviados int `json:"enviados"`
	Bodega   int `json:"bodega"`
	Camino   int `json:"camino"`
	Aduana   int `json:"aduana"`
}

type StatsResult struct {
	Counts      StatusCounts `json:"counts"`
	Ganancias   float64      `json:"ganancias"`
	TotalPounds float64      `json:"total_pounds"`
	Total       int          `json:"total"`
}

type StatsService struct {
	db *gorm.DB
}

// NewStatsService creates a new instance of StatsService
func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// ShippingFilter maps "aereo"/"maritimo" to a shipping type id; anything else means no filter
func ShippingFilter(filter string) *int {
	var id int
	switch utils.Fold(filter) {
	case "aereo":
		id = models.ShippingAir
	case "maritimo":
		id = models.ShippingMaritime
	default:
		return nil
	}
	return &id
}

// GetStats aggregates status counts and totals for the packages matching filter
func (s *StatsService) GetStats(filter string) (*StatsResult, error) {
	packages, err := filteredPackages(s.db, filter)
	if err != nil {
		return nil, err
	}
	history, err := historyForPackages(s.db, packages)
	if err != nil {
		return nil, err
	}
	result := AggregateStats(packages, history)
	return &result, nil
}

func filteredPackages(db *gorm.DB, filter string) ([]models.PackageModel, error) {
	var packages []models.PackageModel
	query := db.Model(&models.PackageModel{})
	if tipo := ShippingFilter(filter); tipo != nil {
		query = query.Where("tipo_envio_id = ?", *tipo)
	}
	if err := query.Order("id").Find(&packages).Error; err != nil {
		return nil, StorageError("no se pudieron leer los paquetes", err)
	}
	return packages, nil
}

// historyForPackages loads the history rows of packages. With no tracking
// codes at all every history row is returned, unfiltered.
func historyForPackages(db *gorm.DB, packages []models.PackageModel) ([]models.HistoryModel, error) {
	codes := make([]string, 0, len(packages))
	for _, p := range packages {
		if p.CodigoSeguimiento != "" {
			codes = append(codes, p.CodigoSeguimiento)
		}
	}

	var history []models.HistoryModel
	query := db.Model(&models.HistoryModel{})
	if len(codes) > 0 {
		query = query.Where("codigo_seguimiento IN ?", codes)
	}
	if err := query.Find(&history).Error; err != nil {
		return nil, StorageError("no se pudo leer el historial", err)
	}
	return history, nil
}

// AggregateStats counts each history row by the category of its latest
// status and sums weight and revenue over packages. Unclassified rows are
// left out of every count, including Total.
func AggregateStats(packages []models.PackageModel, history []models.HistoryModel) StatsResult {
	var result StatsResult
	for i := range history {
		switch ClassifyStatus(LatestStatus(history[i].Slots())) {
		case CategoryShipped:
			result.Counts.Enviados++
		case CategoryWarehoused:
			result.Counts.Bodega++
		case CategoryInTransit:
			result.Counts.Camino++
		case CategoryCustoms:
			result.Counts.Aduana++
		}
	}

	var pounds, revenue float64
	for _, p := range packages {
		weight := finiteOrZero(p.PesoLibras)
		rate := finiteOrZero(p.TarifaUsd)
		pounds += weight
		revenue += weight * rate
	}

	result.TotalPounds = round2(pounds)
	result.Ganancias = round2(revenue)
	result.Total = result.Counts.Enviados + result.Counts.Bodega + result.Counts.Camino + result.Counts.Aduana
	return result
}

func finiteOrZero(v *float64) float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0
	}
	return *v
}

// machine epsilon for float64
const epsilon = 2.220446049250313e-16

// round2 rounds half up to two decimals
func round2(v float64) float64 {
	return math.Floor((v+epsilon)*100+0.5) / 100
}
