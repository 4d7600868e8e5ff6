package models

// PackageModel is a package received for shipping (table paquetes)
type PackageModel struct {
	Id                int      `json:"id" gorm:"primaryKey;autoIncrement"`
	NombreCliente     *string  `json:"nombre_cliente" gorm:"column:nombre_cliente;type:varchar(255)"`
	CodigoSeguimiento string   `json:"codigo_seguimiento" gorm:"column:codigo_seguimiento;type:varchar(100);uniqueIndex;not null"`
	Telefono          *string  `json:"telefono" gorm:"column:telefono;type:varchar(50);index"`
	TipoEnvioId       *int     `json:"tipo_envio_id" gorm:"column:tipo_envio_id;index"`
	PesoLibras        *float64 `json:"peso_libras" gorm:"column:peso_libras"`
	TarifaUsd         *float64 `json:"tarifa_usd" gorm:"column:tarifa_usd"`
	FechaIngreso      string   `json:"fecha_ingreso" gorm:"column:fecha_ingreso;type:varchar(10)"`
}

func (PackageModel) TableName() string {
	return "paquetes"
}

const (
	ShippingAir      = 1
	ShippingMaritime = 2
)
