package poliza_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segupro/polizas-api/internal/domain/poliza"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Forma de pago semestral: prima repartida mitad y mitad entre I y III trimestre.
func TestCalcularCuotas_Semestral(t *testing.T) {
	cuotas := poliza.CalcularCuotas(dec("1200.00"), "Semestral")

	assert.True(t, cuotas.I.Equal(dec("600.00")), "I trimestre: %s", cuotas.I)
	assert.True(t, cuotas.II.IsZero(), "II trimestre debe ser cero")
	assert.True(t, cuotas.III.Equal(dec("600.00")), "III trimestre: %s", cuotas.III)
	assert.True(t, cuotas.IV.IsZero(), "IV trimestre debe ser cero")
	assert.True(t, cuotas.Total().Equal(dec("1200.00")), "la suma debe igualar la prima")
}

// Con prima impar la suma semestral sigue siendo exacta: el residuo lo absorbe
// el III trimestre.
func TestCalcularCuotas_SemestralPrimaImpar_SumaExacta(t *testing.T) {
	prima := dec("100.01")
	cuotas := poliza.CalcularCuotas(prima, "semestral")

	assert.True(t, cuotas.Total().Equal(prima),
		"suma %s debe igualar prima %s", cuotas.Total(), prima)
	assert.True(t, cuotas.II.IsZero())
	assert.True(t, cuotas.IV.IsZero())
}

// Anual y cualquier etiqueta no reconocida caen en el reparto trimestral uniforme.
func TestCalcularCuotas_AnualYDesconocidas_Trimestral(t *testing.T) {
	casos := []string{"Anual", "anual", "Mensual", "contado", "", "lo que sea"}

	for _, nombre := range casos {
		cuotas := poliza.CalcularCuotas(dec("1200.00"), nombre)

		assert.True(t, cuotas.I.Equal(dec("300.00")), "etiqueta %q, I: %s", nombre, cuotas.I)
		assert.True(t, cuotas.I.Equal(cuotas.II), "etiqueta %q: cuotas iguales", nombre)
		assert.True(t, cuotas.II.Equal(cuotas.III), "etiqueta %q: cuotas iguales", nombre)
		assert.True(t, cuotas.III.Equal(cuotas.IV), "etiqueta %q: cuotas iguales", nombre)
	}
}

// El match es por substring, case-insensible y sin acentos.
func TestCalcularCuotas_MatchInsensible(t *testing.T) {
	casos := []string{"SEMESTRAL", "Pago Semestral", "semestrál", "forma SEMESTRAL anticipada"}

	for _, nombre := range casos {
		cuotas := poliza.CalcularCuotas(dec("500.00"), nombre)
		assert.True(t, cuotas.I.Equal(dec("250.00")), "etiqueta %q debe ser semestral, I: %s", nombre, cuotas.I)
		assert.True(t, cuotas.II.IsZero(), "etiqueta %q debe ser semestral", nombre)
	}
}

// Prima no divisible exactamente entre cuatro: las cuotas son iguales y el
// desvío de la suma no pasa de un centavo.
func TestCalcularCuotas_TrimestralResiduoAcotado(t *testing.T) {
	primas := []string{"100.01", "0.01", "99.99", "1333.33"}

	for _, s := range primas {
		prima := dec(s)
		cuotas := poliza.CalcularCuotas(prima, "Anual")

		assert.True(t, cuotas.I.Equal(cuotas.II) && cuotas.II.Equal(cuotas.III) && cuotas.III.Equal(cuotas.IV),
			"prima %s: las cuatro cuotas deben ser iguales", s)

		desvio := cuotas.Total().Sub(prima).Abs()
		assert.True(t, desvio.LessThanOrEqual(dec("0.01")),
			"prima %s: desvío %s excede un centavo", s, desvio)
	}
}

func TestCalcularCuotas_PrimaCero(t *testing.T) {
	cuotas := poliza.CalcularCuotas(decimal.Zero, "Semestral")
	require.True(t, cuotas.Total().IsZero())
}
