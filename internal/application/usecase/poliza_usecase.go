package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/segupro/polizas-api/internal/application/dto"
	"github.com/segupro/polizas-api/internal/domain"
	"github.com/segupro/polizas-api/internal/domain/entity"
	domainpoliza "github.com/segupro/polizas-api/internal/domain/poliza"
	"github.com/segupro/polizas-api/internal/domain/repository"
)

// Layout de fechas de la API (query params y cuerpos JSON).
const FechaLayout = "2006-01-02"

// TxRunner ejecuta fn con repos atados a una misma transacción.
// Lo implementa postgres.TxRunner.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		polizas repository.PolizaRepository,
		contratantes repository.ParteRepository,
		asegurados repository.ParteRepository,
	) error) error
}

// PolizaUseCase agregado de pólizas: alta con resolución de partes y cálculo
// de cuotas, actualización con recálculo y cascada parcial a las partes,
// lecturas filtradas y consulta de próximas renovaciones.
//
// Alta y actualización corren dentro de una única transacción: ningún lector
// ve una póliza con cuotas desfasadas respecto de su prima o forma de pago.
type PolizaUseCase struct {
	tx           TxRunner
	polizas      repository.PolizaRepository
	aseguradoras repository.AseguradoraRepository
	ramos        repository.RamoRepository
	formasPago   repository.FormaPagoRepository
	contratantes repository.ParteRepository
	asegurados   repository.ParteRepository
}

// NewPolizaUseCase construye el caso de uso.
func NewPolizaUseCase(
	tx TxRunner,
	polizas repository.PolizaRepository,
	aseguradoras repository.AseguradoraRepository,
	ramos repository.RamoRepository,
	formasPago repository.FormaPagoRepository,
	contratantes repository.ParteRepository,
	asegurados repository.ParteRepository,
) *PolizaUseCase {
	return &PolizaUseCase{
		tx:           tx,
		polizas:      polizas,
		aseguradoras: aseguradoras,
		ramos:        ramos,
		formasPago:   formasPago,
		contratantes: contratantes,
		asegurados:   asegurados,
	}
}

// Create da de alta una póliza: resuelve contratante y asegurado por
// documento (upsert), calcula las cuotas con la forma de pago referenciada y
// persiste todo en una sola escritura transaccional.
func (uc *PolizaUseCase) Create(ctx context.Context, in dto.CreatePolizaRequest, creadoPor string) (*dto.PolizaResponse, error) {
	fechaInicio, fechaFin, renovacion, err := validarAltaPoliza(in)
	if err != nil {
		return nil, err
	}

	if a, err := uc.aseguradoras.GetByID(in.AseguradoraID); err != nil {
		return nil, err
	} else if a == nil {
		return nil, domain.ErrNotFound
	}
	if r, err := uc.ramos.GetByID(in.RamoID); err != nil {
		return nil, err
	} else if r == nil {
		return nil, domain.ErrNotFound
	}
	formaPago, err := uc.formasPago.GetByID(in.FormaPagoID)
	if err != nil {
		return nil, err
	}
	if formaPago == nil {
		return nil, domain.ErrNotFound
	}

	cuotas := domainpoliza.CalcularCuotas(in.PrimaTotal, formaPago.Nombre)
	now := time.Now()

	p := &entity.Poliza{
		ID:             uuid.New().String(),
		Numero:         in.Numero,
		FechaInicio:    fechaInicio,
		FechaFin:       fechaFin,
		Vigencia:       in.Vigencia,
		PrimaTotal:     in.PrimaTotal,
		MontoAsegurado: in.MontoAsegurado,
		ITrimestre:     cuotas.I,
		IITrimestre:    cuotas.II,
		IIITrimestre:   cuotas.III,
		IVTrimestre:    cuotas.IV,
		Renovacion:     renovacion,
		AseguradoraID:  in.AseguradoraID,
		RamoID:         in.RamoID,
		FormaPagoID:    in.FormaPagoID,
		CreadoPor:      creadoPor,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = uc.tx.Run(ctx, func(
		polizas repository.PolizaRepository,
		contratantes repository.ParteRepository,
		asegurados repository.ParteRepository,
	) error {
		contratante, err := contratantes.Upsert(parteFromRequest(in.Contratante))
		if err != nil {
			return err
		}
		asegurado, err := asegurados.Upsert(parteFromRequest(in.Asegurado))
		if err != nil {
			return err
		}
		p.ContratanteID = contratante.ID
		p.AseguradoID = asegurado.ID
		return polizas.Create(p)
	})
	if err != nil {
		return nil, err
	}

	detalle, err := uc.polizas.GetDetalleByID(p.ID)
	if err != nil {
		return nil, err
	}
	return toPolizaResponse(detalle), nil
}

// Update aplica cambios parciales. Payloads anidados de partes actualizan
// in-place los registros YA vinculados (no es un nuevo resolve-or-create).
// Si cambia la prima o la forma de pago, las cuotas se recalculan con la
// prima nueva y la forma de pago resultante, dentro de la misma transacción.
func (uc *PolizaUseCase) Update(ctx context.Context, id string, in dto.UpdatePolizaRequest, actualizadoPor string) (*dto.PolizaResponse, error) {
	p, err := uc.polizas.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}

	primaCambio, formaCambio, err := aplicarPolizaUpdate(p, in)
	if err != nil {
		return nil, err
	}

	if primaCambio || formaCambio {
		formaPago, err := uc.formasPago.GetByID(p.FormaPagoID)
		if err != nil {
			return nil, err
		}
		if formaPago == nil {
			return nil, domain.ErrNotFound
		}
		cuotas := domainpoliza.CalcularCuotas(p.PrimaTotal, formaPago.Nombre)
		p.ITrimestre, p.IITrimestre, p.IIITrimestre, p.IVTrimestre = cuotas.I, cuotas.II, cuotas.III, cuotas.IV
	}

	p.ActualizadoPor = actualizadoPor
	p.UpdatedAt = time.Now()

	err = uc.tx.Run(ctx, func(
		polizas repository.PolizaRepository,
		contratantes repository.ParteRepository,
		asegurados repository.ParteRepository,
	) error {
		if in.Contratante != nil {
			parte, err := contratantes.GetByID(p.ContratanteID)
			if err != nil {
				return err
			}
			if parte == nil {
				return domain.ErrNotFound
			}
			aplicarParteUpdate(parte, *in.Contratante)
			if err := contratantes.Update(parte); err != nil {
				return err
			}
		}
		if in.Asegurado != nil {
			parte, err := asegurados.GetByID(p.AseguradoID)
			if err != nil {
				return err
			}
			if parte == nil {
				return domain.ErrNotFound
			}
			aplicarParteUpdate(parte, *in.Asegurado)
			if err := asegurados.Update(parte); err != nil {
				return err
			}
		}
		return polizas.Update(p)
	})
	if err != nil {
		return nil, err
	}

	detalle, err := uc.polizas.GetDetalleByID(p.ID)
	if err != nil {
		return nil, err
	}
	return toPolizaResponse(detalle), nil
}

// GetByID obtiene una póliza con relaciones resueltas.
func (uc *PolizaUseCase) GetByID(id string) (*dto.PolizaResponse, error) {
	detalle, err := uc.polizas.GetDetalleByID(id)
	if err != nil {
		return nil, err
	}
	if detalle == nil {
		return nil, domain.ErrNotFound
	}
	return toPolizaResponse(detalle), nil
}

// List lista pólizas con filtros por entidad, orden ascendente por fecha_inicio.
func (uc *PolizaUseCase) List(filter repository.PolizaFilter, limit, offset int) ([]*dto.PolizaResponse, error) {
	list, err := uc.polizas.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	return toPolizaResponses(list), nil
}

// Delete elimina una póliza.
func (uc *PolizaUseCase) Delete(id string) error {
	p, err := uc.polizas.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.polizas.Delete(id)
}

// ProximasRenovacion pólizas con renovación en o después de la fecha de
// referencia (default: hoy), orden ascendente por renovación, sin cota
// superior. Fecha malformada → error de validación, no resultado vacío.
func (uc *PolizaUseCase) ProximasRenovacion(fecha string, filter repository.RenovacionFilter) ([]*dto.PolizaResponse, error) {
	desde := hoy()
	if fecha != "" {
		parsed, err := time.Parse(FechaLayout, fecha)
		if err != nil {
			return nil, domain.NewValidationError("fecha", "formato esperado YYYY-MM-DD")
		}
		desde = parsed
	}
	filter.Desde = desde
	list, err := uc.polizas.ListProximasRenovacion(filter)
	if err != nil {
		return nil, err
	}
	return toPolizaResponses(list), nil
}

// Opciones listas de lookup para formularios del cliente.
func (uc *PolizaUseCase) Opciones() (*dto.OpcionesResponse, error) {
	// tope alto: los catálogos y partes de un backoffice caben en una página
	const tope = 1000

	aseguradoras, err := uc.aseguradoras.List(tope, 0)
	if err != nil {
		return nil, err
	}
	ramos, err := uc.ramos.List(tope, 0)
	if err != nil {
		return nil, err
	}
	formasPago, err := uc.formasPago.List(tope, 0)
	if err != nil {
		return nil, err
	}
	contratantes, err := uc.contratantes.List(tope, 0)
	if err != nil {
		return nil, err
	}
	asegurados, err := uc.asegurados.List(tope, 0)
	if err != nil {
		return nil, err
	}

	out := &dto.OpcionesResponse{
		Aseguradoras: make([]*dto.CatalogoResponse, 0, len(aseguradoras)),
		Ramos:        make([]*dto.CatalogoResponse, 0, len(ramos)),
		FormasPago:   make([]*dto.CatalogoResponse, 0, len(formasPago)),
		Contratantes: make([]*dto.ParteResponse, 0, len(contratantes)),
		Asegurados:   make([]*dto.ParteResponse, 0, len(asegurados)),
	}
	for _, a := range aseguradoras {
		out.Aseguradoras = append(out.Aseguradoras, &dto.CatalogoResponse{ID: a.ID, Nombre: a.Nombre, Descripcion: a.Descripcion})
	}
	for _, r := range ramos {
		out.Ramos = append(out.Ramos, &dto.CatalogoResponse{ID: r.ID, Nombre: r.Nombre, Descripcion: r.Descripcion})
	}
	for _, f := range formasPago {
		out.FormasPago = append(out.FormasPago, &dto.CatalogoResponse{ID: f.ID, Nombre: f.Nombre, Descripcion: f.Descripcion})
	}
	for _, c := range contratantes {
		out.Contratantes = append(out.Contratantes, toParteResponse(c))
	}
	for _, a := range asegurados {
		out.Asegurados = append(out.Asegurados, toParteResponse(a))
	}
	return out, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func hoy() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

func validarAltaPoliza(in dto.CreatePolizaRequest) (fechaInicio, fechaFin, renovacion time.Time, err error) {
	fields := map[string]string{}
	if in.Numero == "" {
		fields["numero"] = "requerido"
	}
	if in.AseguradoraID == "" {
		fields["aseguradora_id"] = "requerido"
	}
	if in.RamoID == "" {
		fields["ramo_id"] = "requerido"
	}
	if in.FormaPagoID == "" {
		fields["forma_pago_id"] = "requerido"
	}
	if in.PrimaTotal.LessThan(decimal.Zero) {
		fields["prima_total"] = "no puede ser negativa"
	}
	if in.MontoAsegurado.LessThan(decimal.Zero) {
		fields["monto_asegurado"] = "no puede ser negativo"
	}
	if fechaInicio, err = time.Parse(FechaLayout, in.FechaInicio); err != nil {
		fields["fecha_inicio"] = "formato esperado YYYY-MM-DD"
	}
	if fechaFin, err = time.Parse(FechaLayout, in.FechaFin); err != nil {
		fields["fecha_fin"] = "formato esperado YYYY-MM-DD"
	}
	if renovacion, err = time.Parse(FechaLayout, in.Renovacion); err != nil {
		fields["renovacion"] = "formato esperado YYYY-MM-DD"
	}
	if in.Contratante.Documento == "" {
		fields["contratante.documento"] = "requerido"
	}
	if in.Contratante.Nombre == "" {
		fields["contratante.nombre"] = "requerido"
	}
	if in.Asegurado.Documento == "" {
		fields["asegurado.documento"] = "requerido"
	}
	if in.Asegurado.Nombre == "" {
		fields["asegurado.nombre"] = "requerido"
	}
	if len(fields) > 0 {
		return fechaInicio, fechaFin, renovacion, &domain.ValidationError{Fields: fields}
	}
	return fechaInicio, fechaFin, renovacion, nil
}

// aplicarPolizaUpdate vuelca los cambios escalares y reporta si cambió la
// prima o la referencia a forma de pago (disparadores del recálculo).
func aplicarPolizaUpdate(p *entity.Poliza, in dto.UpdatePolizaRequest) (primaCambio, formaCambio bool, err error) {
	fields := map[string]string{}
	if in.Numero != nil {
		p.Numero = *in.Numero
	}
	if in.FechaInicio != nil {
		t, err := time.Parse(FechaLayout, *in.FechaInicio)
		if err != nil {
			fields["fecha_inicio"] = "formato esperado YYYY-MM-DD"
		} else {
			p.FechaInicio = t
		}
	}
	if in.FechaFin != nil {
		t, err := time.Parse(FechaLayout, *in.FechaFin)
		if err != nil {
			fields["fecha_fin"] = "formato esperado YYYY-MM-DD"
		} else {
			p.FechaFin = t
		}
	}
	if in.Renovacion != nil {
		t, err := time.Parse(FechaLayout, *in.Renovacion)
		if err != nil {
			fields["renovacion"] = "formato esperado YYYY-MM-DD"
		} else {
			p.Renovacion = t
		}
	}
	if in.Vigencia != nil {
		p.Vigencia = *in.Vigencia
	}
	if in.PrimaTotal != nil {
		if in.PrimaTotal.LessThan(decimal.Zero) {
			fields["prima_total"] = "no puede ser negativa"
		} else if !p.PrimaTotal.Equal(*in.PrimaTotal) {
			p.PrimaTotal = *in.PrimaTotal
			primaCambio = true
		}
	}
	if in.MontoAsegurado != nil {
		if in.MontoAsegurado.LessThan(decimal.Zero) {
			fields["monto_asegurado"] = "no puede ser negativo"
		} else {
			p.MontoAsegurado = *in.MontoAsegurado
		}
	}
	if in.AseguradoraID != nil {
		p.AseguradoraID = *in.AseguradoraID
	}
	if in.RamoID != nil {
		p.RamoID = *in.RamoID
	}
	if in.FormaPagoID != nil && *in.FormaPagoID != p.FormaPagoID {
		p.FormaPagoID = *in.FormaPagoID
		formaCambio = true
	}
	if len(fields) > 0 {
		return false, false, &domain.ValidationError{Fields: fields}
	}
	return primaCambio, formaCambio, nil
}

func parteFromRequest(in dto.ParteRequest) *entity.Parte {
	now := time.Now()
	return &entity.Parte{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Documento: in.Documento,
		Telefono:  in.Telefono,
		Email:     in.Email,
		Direccion: in.Direccion,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func toPolizaResponses(list []*entity.PolizaDetalle) []*dto.PolizaResponse {
	out := make([]*dto.PolizaResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toPolizaResponse(d))
	}
	return out
}

func toPolizaResponse(d *entity.PolizaDetalle) *dto.PolizaResponse {
	if d == nil {
		return nil
	}
	resp := &dto.PolizaResponse{
		ID:             d.ID,
		Numero:         d.Numero,
		FechaInicio:    d.FechaInicio.Format(FechaLayout),
		FechaFin:       d.FechaFin.Format(FechaLayout),
		Vigencia:       d.Vigencia,
		PrimaTotal:     d.PrimaTotal,
		MontoAsegurado: d.MontoAsegurado,
		ITrimestre:     d.ITrimestre,
		IITrimestre:    d.IITrimestre,
		IIITrimestre:   d.IIITrimestre,
		IVTrimestre:    d.IVTrimestre,
		Renovacion:     d.Renovacion.Format(FechaLayout),
		AseguradoraID:  d.AseguradoraID,
		RamoID:         d.RamoID,
		FormaPagoID:    d.FormaPagoID,
		CreadoPor:      d.CreadoPor,
		ActualizadoPor: d.ActualizadoPor,
	}
	if d.Aseguradora != nil {
		resp.AseguradoraNombre = d.Aseguradora.Nombre
	}
	if d.Ramo != nil {
		resp.RamoNombre = d.Ramo.Nombre
	}
	if d.FormaPago != nil {
		resp.FormaPagoNombre = d.FormaPago.Nombre
	}
	if d.Contratante != nil {
		resp.Contratante = toParteResponse(d.Contratante)
	}
	if d.Asegurado != nil {
		resp.Asegurado = toParteResponse(d.Asegurado)
	}
	return resp
}
