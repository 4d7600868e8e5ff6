package models

import "time"

// RequestModel is a customer shipping request (table pedidos)
type RequestModel struct {
	Id          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Nombre      *string   `json:"nombre" gorm:"column:nombre;type:varchar(255)"`
	Telefono    *string   `json:"telefono" gorm:"column:telefono;type:varchar(50)"`
	Agencia     *string   `json:"agencia" gorm:"column:agencia;type:varchar(255)"`
	Descripcion *string   `json:"descripcion" gorm:"column:descripcion;type:text"`
	TipoEnvioId *int      `json:"tipo_envio_id" gorm:"column:tipo_envio_id"`
	PesoAprox   *float64  `json:"peso_aprox" gorm:"column:peso_aprox"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
}

func (RequestModel) TableName() string {
	return "pedidos"
}
