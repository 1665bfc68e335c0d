package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpas_UTF8ConComa(t *testing.T) {
	in := "nombre,direccion,zona,horario\nLuna Spa,Calle 1,Centro,9-18\n,sin nombre,Norte,\n"
	rows, err := parseSpas(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Luna Spa", rows[0].Name)
	assert.Equal(t, "Centro", rows[0].Zone)
}

func TestParseSpas_PuntoYComaYOrdenLibre(t *testing.T) {
	in := "zona;nombre\nNorte;Sol Spa\n"
	rows, err := parseSpas(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Sol Spa", rows[0].Name)
	assert.Equal(t, "Norte", rows[0].Zone)
	assert.Empty(t, rows[0].Address)
}

func TestParseSpas_SinColumnaNombre(t *testing.T) {
	_, err := parseSpas(strings.NewReader("zona,horario\nCentro,9-18\n"))
	assert.Error(t, err)
}

func TestDecodeInput_Latin1(t *testing.T) {
	// "Peluquería" en ISO-8859-1: í = 0xED
	raw := []byte("nombre\nPeluquer\xeda\n")
	rows, err := parseSpas(decodeInput(raw))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Peluquería", rows[0].Name)
}

func TestDecodeInput_QuitaBOM(t *testing.T) {
	raw := []byte("\xef\xbb\xbfnombre\nLuna\n")
	rows, err := parseSpas(decodeInput(raw))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Luna", rows[0].Name)
}
