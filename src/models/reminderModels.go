package models

type ReminderModel struct {
	Id          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Titulo      string `json:"titulo" gorm:"column:titulo;type:varchar(255);not null"`
	Descripcion string `json:"descripcion" gorm:"column:descripcion;type:text;not null"`
	FechaLimite string `json:"fecha_limite" gorm:"column:fecha_limite;type:varchar(30);not null"`
}

func (ReminderModel) TableName() string {
	return "recordatorios"
}
