package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCargoType(t *testing.T) {
	require.Equal(t, CargoCoordinacion, ParseCargoType("coordinacion"))
	require.Equal(t, CargoCoordinacion, ParseCargoType(" Coordinación "))
	require.Equal(t, CargoCoordinacion, ParseCargoType("COORDINACIÓN"))
	require.Equal(t, CargoJefatura, ParseCargoType("Jefatura"))
	require.Equal(t, CargoGerencia, ParseCargoType("gerencia"))
	require.Equal(t, CargoOperativo, ParseCargoType("operativo"))
	require.Equal(t, CargoOperativo, ParseCargoType("director"))
	require.Equal(t, CargoOperativo, ParseCargoType(""))
}
