package services

import (
	"bytes"
	"testing"

	"github.com/NicaExpressway/NicaExpressway-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"
)

func TestExportPackages(t *testing.T) {
	database := newTestDB(t)
	insertPackage(t, database, models.PackageModel{
		CodigoSeguimiento: "AIR1",
		NombreCliente:     ptr("Maria"),
		TipoEnvioId:       ptr(models.ShippingAir),
		PesoLibras:        ptr(2.5),
		FechaIngreso:      "2024-05-01",
	})
	insertPackage(t, database, models.PackageModel{CodigoSeguimiento: "SEA1", TipoEnvioId: ptr(models.ShippingMaritime)})
	require.NoError(t, database.Create(&models.HistoryModel{
		CodigoSeguimiento: "AIR1", Estado1: ptr("Recibido"), Estado2: ptr("En aduana"),
	}).Error)

	var buf bytes.Buffer
	require.NoError(t, NewExportService(database).ExportPackages(&buf, "aereo"))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2, "header plus the air package")
	assert.Equal(t, "Código", rows[0][0])
	assert.Equal(t, []string{"AIR1", "Maria", "", "Aéreo", "2.5", "", "2024-05-01", "En aduana"}, rows[1])
}
