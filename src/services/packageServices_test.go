package services

import (
	"regexp"
	"testing"
	"time"

	"github.com/NicaExpressway/NicaExpressway-Backend/src/models"
	"github.com/NicaExpressway/NicaExpressway-Backend/src/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var generatedCode = regexp.MustCompile(`^AUTO-\d+-[0-9A-F]{8}$`)

func TestGenerateTrackingCode(t *testing.T) {
	now := time.UnixMilli(1714521600000)
	code := GenerateTrackingCode(now)

	assert.Regexp(t, generatedCode, code)
	assert.Contains(t, code, "1714521600000")
	assert.NotEqual(t, code, GenerateTrackingCode(now))
}

func TestCreatePackageWithoutCode(t *testing.T) {
	freezeClock(t, time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC))
	history, packages := newHistoryService(t)

	pkg, err := packages.PackageFromBody(utils.Body{"nombre": "María López", "peso": "4.5", "tipo_envio": "aereo"})
	require.NoError(t, err)
	created, err := packages.CreatePackage(pkg)
	require.NoError(t, err)

	assert.Regexp(t, generatedCode, created.CodigoSeguimiento)
	assert.Equal(t, "2024-05-01", created.FechaIngreso)
	assert.Equal(t, "María López", *created.NombreCliente)
	assert.Equal(t, 4.5, *created.PesoLibras)
	assert.Equal(t, models.ShippingAir, *created.TipoEnvioId)

	var row models.HistoryModel
	require.NoError(t, history.db.Where("codigo_seguimiento = ?", created.CodigoSeguimiento).First(&row).Error)
	assert.Equal(t, models.HistorySlots{}, row.Slots())
}

func TestPackageFromBodyRejectsBadNumbers(t *testing.T) {
	_, packages := newHistoryService(t)

	_, err := packages.PackageFromBody(utils.Body{"peso_libras": "heavy"})
	assert.True(t, IsKind(err, KindValidation))

	_, err = packages.PackageFromBody(utils.Body{"tarifa": -1})
	assert.True(t, IsKind(err, KindValidation))
}

func TestCreatePackageDuplicateCode(t *testing.T) {
	_, packages := newHistoryService(t)

	_, err := packages.CreatePackage(&models.PackageModel{CodigoSeguimiento: "DUP1"})
	require.NoError(t, err)
	_, err = packages.CreatePackage(&models.PackageModel{CodigoSeguimiento: "DUP1"})
	assert.True(t, IsKind(err, KindStorage))
}

func TestListPackages(t *testing.T) {
	_, packages := newHistoryService(t)
	insertPackage(t, packages.db, models.PackageModel{CodigoSeguimiento: "A1"})
	insertPackage(t, packages.db, models.PackageModel{CodigoSeguimiento: "B2"})

	all, err := packages.ListPackages("")
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "B2", all[0].CodigoSeguimiento, "newest first")

	one, err := packages.ListPackages(" A1 ")
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, "A1", one[0].CodigoSeguimiento)
}

func TestGetPackageByID(t *testing.T) {
	_, packages := newHistoryService(t)
	pkg := insertPackage(t, packages.db, models.PackageModel{CodigoSeguimiento: "A1"})

	found, err := packages.GetPackageByID(pkg.Id)
	require.NoError(t, err)
	assert.Equal(t, "A1", found.CodigoSeguimiento)

	_, err = packages.GetPackageByID(pkg.Id + 100)
	assert.True(t, IsKind(err, KindNotFound))
}

func TestUpdatePackageAppendsStatus(t *testing.T) {
	_, packages := newHistoryService(t)
	insertPackage(t, packages.db, models.PackageModel{CodigoSeguimiento: "A1", PesoLibras: ptr(1.0)})

	result, err := packages.UpdatePackage("A1", utils.Body{
		"peso":         3,
		"estado":       "Recibido",
		"fecha_estado": "2024-05-02",
	})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 3.0, *result.Paquete.PesoLibras)
	require.NotNil(t, result.Historial)
	assert.Equal(t, "Recibido", *result.Historial.Estado1)
	assert.Equal(t, "2024-05-02", *result.Historial.Fecha1)
}

func TestUpdatePackageErrors(t *testing.T) {
	_, packages := newHistoryService(t)
	insertPackage(t, packages.db, models.PackageModel{CodigoSeguimiento: "A1"})

	_, err := packages.UpdatePackage("A1", utils.Body{})
	assert.True(t, IsKind(err, KindValidation), "no fields")

	_, err = packages.UpdatePackage("MISSING", utils.Body{"telefono": "555"})
	assert.True(t, IsKind(err, KindNotFound))

	_, err = packages.UpdatePackage("A1", utils.Body{"peso": -2})
	assert.True(t, IsKind(err, KindValidation))

	_, err = packages.UpdatePackage("A1", utils.Body{"telefono": "555", "estado": "Recibido", "fecha": "2024-05-02 10:00"})
	assert.True(t, IsKind(err, KindValidation), "a bad status date rejects the whole update")
	pkg, err := packages.ListPackages("A1")
	require.NoError(t, err)
	assert.Nil(t, pkg[0].Telefono)
}

func TestUpdatePackageWithoutStatusLeavesHistory(t *testing.T) {
	_, packages := newHistoryService(t)
	insertPackage(t, packages.db, models.PackageModel{CodigoSeguimiento: "A1"})

	result, err := packages.UpdatePackage("A1", utils.Body{"telefono": "555"})
	require.NoError(t, err)
	assert.Equal(t, "555", *result.Paquete.Telefono)
	assert.Nil(t, result.Historial)
}
