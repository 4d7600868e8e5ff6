package services

import (
	"errors"

	"github.com/NicaExpressway/NicaExpressway-Backend/src/models"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const priceSheetID = 1

type PriceService struct {
	db *gorm.DB
}

// NewPriceService creates a new instance of PriceService
func NewPriceService(db *gorm.DB) *PriceService {
	return &PriceService{db: db}
}

// DefaultPrices is served while no price sheet has been saved
func DefaultPrices() models.PriceModel {
	aero, maritimo := 7.5, 3.0
	standing := models.PriceStanding
	standingSea := models.PriceStanding
	return models.PriceModel{
		Id:           priceSheetID,
		Aero:         &aero,
		TipoAereo:    &standing,
		Maritimo:     &maritimo,
		TipoMaritimo: &standingSea,
	}
}

// GetPrices retrieves the price sheet, or the defaults when none is stored
func (s *PriceService) GetPrices() (*models.PriceModel, error) {
	var price models.PriceModel
	err := s.db.Order("id").First(&price).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		defaults := DefaultPrices()
		return &defaults, nil
	}
	if err != nil {
		return nil, StorageError("no se pudieron leer los precios", err)
	}
	return &price, nil
}

// UpdatePrice sets the rate of one shipping mode. Offers (tipo 2) need an
// expiry date; standing rates clear it.
func (s *PriceService) UpdatePrice(body utils.Body) (*models.PriceModel, error) {
	mode, okMode := intIn(body["tipo_envio"], models.ShippingAir, models.ShippingMaritime)
	kind, okKind := intIn(body["tipo"], models.PriceStanding, models.PriceOffer)
	rate, okRate := utils.ToNumber(body["tarifa"])
	if !okMode || !okKind || !okRate || rate < 0 {
		return nil, ValidationError("invalid_input")
	}

	date := utils.TrimmedOrNil(utils.FirstString(body, utils.Aliases{"fecha"}))
	if kind == models.PriceOffer && date == nil {
		return nil, ValidationError("fecha_required_for_oferta")
	}
	if kind != models.PriceOffer {
		date = nil
	}

	price, err := s.GetPrices()
	if err != nil {
		return nil, err
	}
	price.Id = priceSheetID

	switch mode {
	case models.ShippingAir:
		price.Aero, price.TipoAereo, price.FechaAereo = &rate, &kind, date
	case models.ShippingMaritime:
		price.Maritimo, price.TipoMaritimo, price.FechaMaritimo = &rate, &kind, date
	}

	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(price).Error
	if err != nil {
		return nil, StorageError("no se pudieron guardar los precios", err)
	}
	return price, nil
}

// intIn converts v to an int and checks it is one of allowed
func intIn(v any, allowed ...int) (int, bool) {
	n, ok := utils.ToNumber(v)
	if !ok {
		return 0, false
	}
	for _, a := range allowed {
		if n == float64(a) {
			return a, true
		}
	}
	return 0, false
}
