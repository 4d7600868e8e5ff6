package models

// PasswordModel is the single-row store of role passwords (table passwords)
type PasswordModel struct {
	Id           int    `json:"-" gorm:"primaryKey"`
	Operador     string `json:"-" gorm:"column:operador;type:varchar(100);not null"`
	Estadisticas string `json:"-" gorm:"column:estadisticas;type:varchar(100);not null"`
}

func (PasswordModel) TableName() string {
	return "passwords"
}

type PasswordCheckRequest struct {
	Type string `json:"type"`
	Pass string `json:"pass"`
}

type PasswordCheckResponse struct {
	Valid bool   `json:"valid"`
	Token string `json:"token,omitempty"`
}

const (
	RoleOperator = "operador"
	RoleStats    = "estadisticas"
)
