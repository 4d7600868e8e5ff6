package models

import "fmt"

// HistorySlotCount is the fixed number of status slots per history row
const HistorySlotCount = 4

// HistorySlot is one (status, date) pair of a history row
type HistorySlot struct {
	Status *string `json:"estado"`
	Date   *string `json:"fecha"`
}

// HistorySlots holds the slots in order, slot 1 at index 0
type HistorySlots [HistorySlotCount]HistorySlot

// HistoryModel is the status history of one tracking code (table historial)
type HistoryModel struct {
	Id                int     `json:"id" gorm:"primaryKey;autoIncrement"`
	CodigoSeguimiento string  `json:"codigo_seguimiento" gorm:"column:codigo_seguimiento;type:varchar(100);uniqueIndex;not null"`
	Estado1           *string `json:"estado1" gorm:"column:estado1;type:text"`
	Fecha1            *string `json:"fecha1" gorm:"column:fecha1;type:varchar(10)"`
	Estado2           *string `json:"estado2" gorm:"column:estado2;type:text"`
	Fecha2            *string `json:"fecha2" gorm:"column:fecha2;type:varchar(10)"`
	Estado3           *string `json:"estado3" gorm:"column:estado3;type:text"`
	Fecha3            *string `json:"fecha3" gorm:"column:fecha3;type:varchar(10)"`
	Estado4           *string `json:"estado4" gorm:"column:estado4;type:text"`
	Fecha4            *string `json:"fecha4" gorm:"column:fecha4;type:varchar(10)"`

	// Filled from paquetes when the history is read, never stored
	FechaIngreso *string `json:"fecha_ingreso,omitempty" gorm:"-"`
}

func (HistoryModel) TableName() string {
	return "historial"
}

// Slots copies the four column pairs into an indexed array
func (h *HistoryModel) Slots() HistorySlots {
	return HistorySlots{
		{Status: h.Estado1, Date: h.Fecha1},
		{Status: h.Estado2, Date: h.Fecha2},
		{Status: h.Estado3, Date: h.Fecha3},
		{Status: h.Estado4, Date: h.Fecha4},
	}
}

// SetSlot writes slot n (1..4)
func (h *HistoryModel) SetSlot(n int, status, date *string) {
	switch n {
	case 1:
		h.Estado1, h.Fecha1 = status, date
	case 2:
		h.Estado2, h.Fecha2 = status, date
	case 3:
		h.Estado3, h.Fecha3 = status, date
	case 4:
		h.Estado4, h.Fecha4 = status, date
	default:
		panic(fmt.Sprintf("history slot %d out of range", n))
	}
}

var slotColumns = [HistorySlotCount][2]string{
	{"estado1", "fecha1"},
	{"estado2", "fecha2"},
	{"estado3", "fecha3"},
	{"estado4", "fecha4"},
}

// SlotColumns returns the status and date column names of slot n (1..4)
func SlotColumns(n int) (status, date string, err error) {
	if n < 1 || n > HistorySlotCount {
		return "", "", fmt.Errorf("history slot %d out of range", n)
	}
	cols := slotColumns[n-1]
	return cols[0], cols[1], nil
}
