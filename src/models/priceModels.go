package models

const (
	// PriceStanding is a regular rate with no expiry
	PriceStanding = 1
	// PriceOffer is a time-limited rate that carries an expiry date
	PriceOffer = 2
)

// PriceModel is the single-row price sheet (table prices)
type PriceModel struct {
	Id            int      `json:"-" gorm:"primaryKey"`
	Aero          *float64 `json:"aero" gorm:"column:aero"`
	TipoAereo     *int     `json:"tipoaereo" gorm:"column:tipoaereo"`
	FechaAereo    *string  `json:"fechaaereo" gorm:"column:fechaaereo;type:varchar(10)"`
	Maritimo      *float64 `json:"maritimo" gorm:"column:maritimo"`
	TipoMaritimo  *int     `json:"tipomaritimo" gorm:"column:tipomaritimo"`
	FechaMaritimo *string  `json:"fechamaritimo" gorm:"column:fechamaritimo;type:varchar(10)"`
}

func (PriceModel) TableName() string {
	return "prices"
}
