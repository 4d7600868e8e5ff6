package services

import (
	"fmt"
	"io"

	"github.com/NicaExpressway/NicaExpressway-Backend/src/models"
	excelize "github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const exportSheet = "Paquetes"

var exportHeader = []any{
	"Código", "Cliente", "Teléfono", "Tipo de envío", "Peso (lb)", "Tarifa (USD)", "Fecha de ingreso", "Último estado",
}

type ExportService struct {
	db *gorm.DB
}

// NewExportService creates a new instance of ExportService
func NewExportService(db *gorm.DB) *ExportService {
	return &ExportService{db: db}
}

// ExportPackages writes the packages matching filter, with their latest
// status, as an xlsx workbook.
func (s *ExportService) ExportPackages(w io.Writer, filter string) error {
	packages, err := filteredPackages(s.db, filter)
	if err != nil {
		return err
	}
	history, err := historyForPackages(s.db, packages)
	if err != nil {
		return err
	}

	latest := make(map[string]string, len(history))
	for i := range history {
		if status := LatestStatus(history[i].Slots()); status != nil {
			latest[history[i].CodigoSeguimiento] = *status
		}
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return err
	}

	for i, p := range packages {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []any{
			p.CodigoSeguimiento,
			deref(p.NombreCliente),
			deref(p.Telefono),
			shippingLabel(p.TipoEnvioId),
			numberOrBlank(p.PesoLibras),
			numberOrBlank(p.TarifaUsd),
			p.FechaIngreso,
			latest[p.CodigoSeguimiento],
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	return f.Write(w)
}

func shippingLabel(tipo *int) string {
	if tipo == nil {
		return ""
	}
	switch *tipo {
	case models.ShippingAir:
		return "Aéreo"
	case models.ShippingMaritime:
		return "Marítimo"
	default:
		return fmt.Sprint(*tipo)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func numberOrBlank(v *float64) any {
	if v == nil {
		return ""
	}
	return *v
}
