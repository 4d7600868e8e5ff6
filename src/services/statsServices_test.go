package services

import (
	"math"
	"testing"

	"github.com/NicaExpressway/NicaExpressway-Backend/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateStatsTotals(t *testing.T) {
	packages := []models.PackageModel{
		{PesoLibras: ptr(10.0), TarifaUsd: ptr(2.0)},
		{PesoLibras: ptr(5.0), TarifaUsd: ptr(3.0)},
		{PesoLibras: nil, TarifaUsd: ptr(9.0)},
		{PesoLibras: ptr(math.NaN()), TarifaUsd: ptr(1.0)},
	}

	result := AggregateStats(packages, nil)
	assert.Equal(t, 15.00, result.TotalPounds)
	assert.Equal(t, 35.00, result.Ganancias)
	assert.Zero(t, result.Total)
}

func TestAggregateStatsCounts(t *testing.T) {
	history := []models.HistoryModel{
		{Estado1: ptr("Recibido"), Estado4: ptr("Listo para entrega")},
		{Estado1: ptr("En aduana")},
		{Estado1: ptr("Recibido en bodega")},
		{Estado1: ptr("Recibido"), Estado2: ptr("En tránsito")},
		{Estado1: ptr("Entregado")},
		{},
	}

	result := AggregateStats(nil, history)
	assert.Equal(t, StatusCounts{Enviados: 1, Bodega: 1, Camino: 1, Aduana: 1}, result.Counts)
	assert.Equal(t, 4, result.Total, "unclassified rows are not counted")
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 1.01, round2(1.005))
	assert.Equal(t, 0.13, round2(0.125))
	assert.Equal(t, 0.0, round2(0))
	assert.Equal(t, 35.0, round2(35))
}

func TestShippingFilter(t *testing.T) {
	assert.Equal(t, models.ShippingAir, *ShippingFilter("Aéreo"))
	assert.Equal(t, models.ShippingMaritime, *ShippingFilter("maritimo"))
	assert.Nil(t, ShippingFilter("general"))
	assert.Nil(t, ShippingFilter(""))
}

func TestGetStatsFiltersByShippingType(t *testing.T) {
	_, packages := newHistoryService(t)
	database := packages.db
	insertPackage(t, database, models.PackageModel{CodigoSeguimiento: "AIR1", TipoEnvioId: ptr(models.ShippingAir), PesoLibras: ptr(2.0), TarifaUsd: ptr(7.5)})
	insertPackage(t, database, models.PackageModel{CodigoSeguimiento: "SEA1", TipoEnvioId: ptr(models.ShippingMaritime), PesoLibras: ptr(10.0), TarifaUsd: ptr(3.0)})
	require.NoError(t, database.Create(&models.HistoryModel{CodigoSeguimiento: "AIR1", Estado1: ptr("En aduana")}).Error)
	require.NoError(t, database.Create(&models.HistoryModel{CodigoSeguimiento: "SEA1", Estado1: ptr("Listo")}).Error)

	stats := NewStatsService(database)

	air, err := stats.GetStats("aereo")
	require.NoError(t, err)
	assert.Equal(t, StatsResult{Counts: StatusCounts{Aduana: 1}, Ganancias: 15, TotalPounds: 2, Total: 1}, *air)

	all, err := stats.GetStats("general")
	require.NoError(t, err)
	assert.Equal(t, 45.0, all.Ganancias)
	assert.Equal(t, 12.0, all.TotalPounds)
	assert.Equal(t, 2, all.Total)
}

func TestGetStatsWithoutPackagesCountsAllHistory(t *testing.T) {
	_, packages := newHistoryService(t)
	database := packages.db
	insertPackage(t, database, models.PackageModel{CodigoSeguimiento: "AIR1", TipoEnvioId: ptr(models.ShippingAir)})
	require.NoError(t, database.Create(&models.HistoryModel{CodigoSeguimiento: "AIR1", Estado1: ptr("Recibido")}).Error)

	result, err := NewStatsService(database).GetStats("maritimo")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Counts.Bodega)
	assert.Zero(t, result.TotalPounds)
}
