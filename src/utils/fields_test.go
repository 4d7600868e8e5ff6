package utils

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) Body {
	t.Helper()
	var body Body
	require.NoError(t, json.Unmarshal([]byte(raw), &body))
	return body
}

func TestFirstStringSkipsNullAliases(t *testing.T) {
	body := decode(t, `{"nombre": null, "nombreSolicitar": "Maria", "nombre_cliente": "Ana"}`)

	got := FirstString(body, Aliases{"nombre", "nombreSolicitar", "nombre_cliente"})
	require.NotNil(t, got)
	assert.Equal(t, "Maria", *got)

	assert.Nil(t, FirstString(body, Aliases{"telefono", "phone"}))
}

func TestFirstStringKeepsEmptyValue(t *testing.T) {
	body := decode(t, `{"nombre": "", "cliente": "Ana"}`)
	got := FirstString(body, Aliases{"nombre", "cliente"})
	require.NotNil(t, got)
	assert.Equal(t, "", *got)
}

func TestFirstNumber(t *testing.T) {
	body := decode(t, `{"peso": "12.5", "tarifa": 3, "bad": "abc"}`)

	n, err := FirstNumber(body, Aliases{"peso_libras", "peso"})
	require.NoError(t, err)
	assert.Equal(t, 12.5, *n)

	n, err = FirstNumber(body, Aliases{"tarifa"})
	require.NoError(t, err)
	assert.Equal(t, 3.0, *n)

	n, err = FirstNumber(body, Aliases{"missing"})
	require.NoError(t, err)
	assert.Nil(t, n)

	_, err = FirstNumber(body, Aliases{"bad"})
	assert.Error(t, err)
}

func TestParseShippingType(t *testing.T) {
	cases := []struct {
		raw  string
		want *int
	}{
		{`{"tipo_envio_id": 2}`, intPtr(2)},
		{`{"tipoEnvioId": "1"}`, intPtr(1)},
		{`{"tipo_envio": "Aéreo"}`, intPtr(1)},
		{`{"tipoEnvioSolicitar": "por aire"}`, intPtr(1)},
		{`{"tipo": "MARÍTIMO"}`, intPtr(2)},
		{`{"tipo": "terrestre"}`, nil},
		{`{"tipo_envio_id": 1.9}`, nil},
		{`{"tipo_envio_id": 7}`, nil},
		{`{"tipo_envio_id": 0, "tipo": "maritimo"}`, intPtr(2)},
		{`{"tipo_envio_id": "2.0"}`, intPtr(2)},
		{`{}`, nil},
	}
	for _, tc := range cases {
		got := ParseShippingType(decode(t, tc.raw))
		assert.Equal(t, tc.want, got, tc.raw)
	}
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "100!% real!_name!!", EscapeLike("100% real_name!"))
	assert.Equal(t, "%MarÍa!%%", ContainsPattern("MarÍa%"))
}

func TestFold(t *testing.T) {
	assert.Equal(t, "en transito", Fold("En Tránsito"))
}

func TestTodayIn(t *testing.T) {
	orig := Clock
	t.Cleanup(func() { Clock = orig })
	Clock = func() time.Time { return time.Date(2024, 3, 10, 2, 0, 0, 0, time.UTC) }

	assert.Equal(t, "2024-03-09", TodayIn("America/New_York"))
	assert.Equal(t, "2024-03-10", TodayIn("Not/AZone"))
}

func intPtr(v int) *int { return &v }

func TestIsDate(t *testing.T) {
	assert.True(t, IsDate("2024-02-29"))
	assert.False(t, IsDate("2023-02-29"))
	assert.False(t, IsDate("2024-5-2"))
	assert.False(t, IsDate("2024-05-02T00:00:00Z"))
}
