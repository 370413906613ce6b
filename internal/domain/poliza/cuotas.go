// Package poliza contiene la lógica de negocio pura de pólizas: el cálculo
// de las cuotas trimestrales a partir de la prima total y la forma de pago.
package poliza

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Cuotas los cuatro montos trimestrales derivados de una prima.
type Cuotas struct {
	I, II, III, IV decimal.Decimal
}

// Total suma de las cuatro cuotas.
func (c Cuotas) Total() decimal.Decimal {
	return c.I.Add(c.II).Add(c.III).Add(c.IV)
}

// Patron reparto de la prima entre trimestres para una etiqueta de forma de pago.
// Pesos son fracciones de la prima por trimestre (deben sumar 1).
// Si SumaExacta es true, el último trimestre con peso distinto de cero absorbe
// el residuo de redondeo para que la suma iguale la prima al centavo.
type Patron struct {
	Etiqueta   string // substring a buscar en el nombre de la forma de pago
	Pesos      [4]decimal.Decimal
	SumaExacta bool
}

var (
	medio  = decimal.NewFromInt(1).Div(decimal.NewFromInt(2))
	cuarto = decimal.NewFromInt(1).Div(decimal.NewFromInt(4))
	cero   = decimal.Zero
)

// SplitTable patrones reconocidos, evaluados en orden. La tabla es configuración:
// una cadencia nueva (ej. mensual) se agrega aquí, no en la lógica de cálculo.
var SplitTable = []Patron{
	{Etiqueta: "semestral", Pesos: [4]decimal.Decimal{medio, cero, medio, cero}, SumaExacta: true},
}

// PatronDefault reparto trimestral uniforme; aplica a "anual" y a cualquier
// etiqueta no reconocida, incluida la vacía.
var PatronDefault = Patron{
	Pesos: [4]decimal.Decimal{cuarto, cuarto, cuarto, cuarto},
}

// CalcularCuotas deriva las cuatro cuotas trimestrales de la prima según el
// nombre de la forma de pago. Pura y determinista; toda la aritmética es
// decimal con dos decimales.
func CalcularCuotas(primaTotal decimal.Decimal, formaPagoNombre string) Cuotas {
	patron := buscarPatron(formaPagoNombre)

	var montos [4]decimal.Decimal
	for i, peso := range patron.Pesos {
		montos[i] = primaTotal.Mul(peso).Round(2)
	}

	if patron.SumaExacta {
		// El residuo de redondeo va al último trimestre con peso > 0.
		ultimo := -1
		suma := decimal.Zero
		for i, peso := range patron.Pesos {
			if !peso.IsZero() {
				ultimo = i
			}
			suma = suma.Add(montos[i])
		}
		if ultimo >= 0 {
			montos[ultimo] = montos[ultimo].Add(primaTotal.Sub(suma))
		}
	}

	return Cuotas{I: montos[0], II: montos[1], III: montos[2], IV: montos[3]}
}

func buscarPatron(nombre string) Patron {
	normalizado := normalizar(nombre)
	for _, p := range SplitTable {
		if strings.Contains(normalizado, p.Etiqueta) {
			return p
		}
	}
	return PatronDefault
}

// normalizar pasa a minúsculas y elimina diacríticos, para que "Semestral",
// "SEMESTRAL" o "pago semestrál" (dato sucio) caigan en el mismo patrón.
func normalizar(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}
