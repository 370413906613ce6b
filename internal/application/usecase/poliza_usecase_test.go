package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segupro/polizas-api/internal/application/dto"
	"github.com/segupro/polizas-api/internal/application/usecase"
	"github.com/segupro/polizas-api/internal/domain"
	"github.com/segupro/polizas-api/internal/domain/repository"
)

// entorno de pólizas con fakes precargados: una aseguradora, un ramo y dos
// formas de pago (anual y semestral).
type polizaEnv struct {
	uc            *usecase.PolizaUseCase
	polizas       *fakePolizaRepo
	contratantes  *fakeParteRepo
	asegurados    *fakeParteRepo
	aseguradoraID string
	ramoID        string
	anualID       string
	semestralID   string
}

func newPolizaEnv(t *testing.T) *polizaEnv {
	t.Helper()
	aseguradoras, aIDs := newFakeAseguradoraRepo("Seguros Andina")
	ramos, rIDs := newFakeRamoRepo("Automóvil")
	formasPago, fIDs := newFakeFormaPagoRepo("Pago Anual", "Pago Semestral")
	contratantes := newFakeParteRepo()
	asegurados := newFakeParteRepo()
	polizas := newFakePolizaRepo(aseguradoras, ramos, formasPago, contratantes, asegurados)
	tx := &fakeTxRunner{polizas: polizas, contratantes: contratantes, asegurados: asegurados}
	uc := usecase.NewPolizaUseCase(tx, polizas, aseguradoras, ramos, formasPago, contratantes, asegurados)
	return &polizaEnv{
		uc: uc, polizas: polizas, contratantes: contratantes, asegurados: asegurados,
		aseguradoraID: aIDs[0], ramoID: rIDs[0], anualID: fIDs[0], semestralID: fIDs[1],
	}
}

func altaValida(env *polizaEnv, numero string, prima float64, formaPagoID string) dto.CreatePolizaRequest {
	return dto.CreatePolizaRequest{
		Numero:         numero,
		FechaInicio:    "2026-01-01",
		FechaFin:       "2026-12-31",
		PrimaTotal:     decimal.NewFromFloat(prima),
		MontoAsegurado: decimal.NewFromInt(50000),
		Renovacion:     "2026-12-31",
		AseguradoraID:  env.aseguradoraID,
		RamoID:         env.ramoID,
		FormaPagoID:    formaPagoID,
		Contratante:    dto.ParteRequest{Nombre: "Carlos Pérez", Documento: "12345678"},
		Asegurado:      dto.ParteRequest{Nombre: "María Gómez", Documento: "87654321"},
	}
}

func TestPolizaCreate_CuotasAnuales(t *testing.T) {
	env := newPolizaEnv(t)

	out, err := env.uc.Create(context.Background(), altaValida(env, "POL-001", 1200, env.anualID), "user-1")
	require.NoError(t, err)

	// prima/4 en los cuatro trimestres
	assert.Equal(t, "300.00", out.ITrimestre.StringFixed(2))
	assert.Equal(t, "300.00", out.IITrimestre.StringFixed(2))
	assert.Equal(t, "300.00", out.IIITrimestre.StringFixed(2))
	assert.Equal(t, "300.00", out.IVTrimestre.StringFixed(2))

	assert.Equal(t, "Seguros Andina", out.AseguradoraNombre)
	assert.Equal(t, "Pago Anual", out.FormaPagoNombre)
	require.NotNil(t, out.Contratante)
	assert.Equal(t, "12345678", out.Contratante.Documento)
	assert.Equal(t, "user-1", out.CreadoPor)
}

func TestPolizaCreate_CuotasSemestrales(t *testing.T) {
	env := newPolizaEnv(t)

	out, err := env.uc.Create(context.Background(), altaValida(env, "POL-002", 1200, env.semestralID), "user-1")
	require.NoError(t, err)

	// mitad en I y III, cero en II y IV
	assert.Equal(t, "600.00", out.ITrimestre.StringFixed(2))
	assert.Equal(t, "0.00", out.IITrimestre.StringFixed(2))
	assert.Equal(t, "600.00", out.IIITrimestre.StringFixed(2))
	assert.Equal(t, "0.00", out.IVTrimestre.StringFixed(2))
}

func TestPolizaCreate_ReutilizaParteExistentePorDocumento(t *testing.T) {
	env := newPolizaEnv(t)

	primera, err := env.uc.Create(context.Background(), altaValida(env, "POL-001", 1200, env.anualID), "user-1")
	require.NoError(t, err)

	// misma persona con datos de contacto nuevos: se sobreescribe, no se duplica
	in := altaValida(env, "POL-002", 900, env.anualID)
	in.Contratante.Nombre = "Carlos A. Pérez"
	in.Contratante.Telefono = "555-0100"
	segunda, err := env.uc.Create(context.Background(), in, "user-1")
	require.NoError(t, err)

	assert.Equal(t, primera.Contratante.ID, segunda.Contratante.ID,
		"el mismo documento debe resolver al mismo registro")
	assert.Equal(t, "Carlos A. Pérez", segunda.Contratante.Nombre)
	assert.Equal(t, "555-0100", segunda.Contratante.Telefono)

	partes, err := env.contratantes.List(100, 0)
	require.NoError(t, err)
	assert.Len(t, partes, 1, "no debe haber contratantes duplicados")
}

func TestPolizaCreate_AseguradoraInexistente(t *testing.T) {
	env := newPolizaEnv(t)

	in := altaValida(env, "POL-001", 1200, env.anualID)
	in.AseguradoraID = "no-existe"
	_, err := env.uc.Create(context.Background(), in, "user-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPolizaCreate_ValidacionDeCampos(t *testing.T) {
	env := newPolizaEnv(t)

	in := altaValida(env, "", -1, env.anualID)
	in.FechaInicio = "01/01/2026" // formato incorrecto
	in.Contratante.Documento = ""
	_, err := env.uc.Create(context.Background(), in, "user-1")

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Fields, "numero")
	assert.Contains(t, vErr.Fields, "prima_total")
	assert.Contains(t, vErr.Fields, "fecha_inicio")
	assert.Contains(t, vErr.Fields, "contratante.documento")
}

func TestPolizaUpdate_RecalculaCuotasAlCambiarPrima(t *testing.T) {
	env := newPolizaEnv(t)

	creada, err := env.uc.Create(context.Background(), altaValida(env, "POL-001", 1200, env.anualID), "user-1")
	require.NoError(t, err)

	nueva := decimal.NewFromInt(2400)
	out, err := env.uc.Update(context.Background(), creada.ID, dto.UpdatePolizaRequest{PrimaTotal: &nueva}, "user-2")
	require.NoError(t, err)

	assert.Equal(t, "600.00", out.ITrimestre.StringFixed(2))
	assert.Equal(t, "600.00", out.IVTrimestre.StringFixed(2))
	assert.Equal(t, "user-2", out.ActualizadoPor)
}

func TestPolizaUpdate_RecalculaCuotasAlCambiarFormaPago(t *testing.T) {
	env := newPolizaEnv(t)

	creada, err := env.uc.Create(context.Background(), altaValida(env, "POL-001", 1200, env.anualID), "user-1")
	require.NoError(t, err)

	out, err := env.uc.Update(context.Background(), creada.ID, dto.UpdatePolizaRequest{FormaPagoID: &env.semestralID}, "user-1")
	require.NoError(t, err)

	assert.Equal(t, "600.00", out.ITrimestre.StringFixed(2))
	assert.Equal(t, "0.00", out.IITrimestre.StringFixed(2))
}

func TestPolizaUpdate_SinCambioDePrimaNiForma_NoRecalcula(t *testing.T) {
	env := newPolizaEnv(t)

	creada, err := env.uc.Create(context.Background(), altaValida(env, "POL-001", 1200, env.anualID), "user-1")
	require.NoError(t, err)

	vigencia := "enero a diciembre"
	out, err := env.uc.Update(context.Background(), creada.ID, dto.UpdatePolizaRequest{Vigencia: &vigencia}, "user-1")
	require.NoError(t, err)

	assert.Equal(t, creada.ITrimestre.StringFixed(2), out.ITrimestre.StringFixed(2))
	assert.Equal(t, "enero a diciembre", out.Vigencia)
}

func TestPolizaUpdate_ActualizaParteVinculadaInPlace(t *testing.T) {
	env := newPolizaEnv(t)

	creada, err := env.uc.Create(context.Background(), altaValida(env, "POL-001", 1200, env.anualID), "user-1")
	require.NoError(t, err)

	tel := "555-0200"
	out, err := env.uc.Update(context.Background(), creada.ID, dto.UpdatePolizaRequest{
		Asegurado: &dto.ParteUpdateRequest{Telefono: &tel},
	}, "user-1")
	require.NoError(t, err)

	require.NotNil(t, out.Asegurado)
	assert.Equal(t, creada.Asegurado.ID, out.Asegurado.ID)
	assert.Equal(t, "555-0200", out.Asegurado.Telefono)
}

func TestPolizaUpdate_Inexistente(t *testing.T) {
	env := newPolizaEnv(t)
	_, err := env.uc.Update(context.Background(), "no-existe", dto.UpdatePolizaRequest{}, "user-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPolizaDelete_Inexistente(t *testing.T) {
	env := newPolizaEnv(t)
	err := env.uc.Delete("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProximasRenovacion_OrdenYCorte(t *testing.T) {
	env := newPolizaEnv(t)

	fechas := map[string]string{
		"POL-PASADA":  "2026-01-15",
		"POL-CERCANA": "2026-06-01",
		"POL-LEJANA":  "2027-03-01",
	}
	for numero, renovacion := range fechas {
		in := altaValida(env, numero, 1200, env.anualID)
		in.Renovacion = renovacion
		_, err := env.uc.Create(context.Background(), in, "user-1")
		require.NoError(t, err)
	}

	out, err := env.uc.ProximasRenovacion("2026-02-01", repository.RenovacionFilter{})
	require.NoError(t, err)

	// la pasada queda fuera; el resto asc por renovación, sin cota superior
	require.Len(t, out, 2)
	assert.Equal(t, "POL-CERCANA", out[0].Numero)
	assert.Equal(t, "POL-LEJANA", out[1].Numero)
}

func TestProximasRenovacion_FechaMalformada(t *testing.T) {
	env := newPolizaEnv(t)

	_, err := env.uc.ProximasRenovacion("01-02-2026", repository.RenovacionFilter{})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestProximasRenovacion_DefaultHoy(t *testing.T) {
	env := newPolizaEnv(t)

	vencida := altaValida(env, "POL-VENCIDA", 1200, env.anualID)
	vencida.Renovacion = "2020-01-01"
	_, err := env.uc.Create(context.Background(), vencida, "user-1")
	require.NoError(t, err)

	futura := altaValida(env, "POL-FUTURA", 1200, env.anualID)
	futura.Renovacion = time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	_, err = env.uc.Create(context.Background(), futura, "user-1")
	require.NoError(t, err)

	out, err := env.uc.ProximasRenovacion("", repository.RenovacionFilter{})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "POL-FUTURA", out[0].Numero)
}

func TestOpciones_DevuelveTodasLasListas(t *testing.T) {
	env := newPolizaEnv(t)

	_, err := env.uc.Create(context.Background(), altaValida(env, "POL-001", 1200, env.anualID), "user-1")
	require.NoError(t, err)

	out, err := env.uc.Opciones()
	require.NoError(t, err)
	assert.Len(t, out.Aseguradoras, 1)
	assert.Len(t, out.Ramos, 1)
	assert.Len(t, out.FormasPago, 2)
	assert.Len(t, out.Contratantes, 1)
	assert.Len(t, out.Asegurados, 1)
}
