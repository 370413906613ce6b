package usecase_test

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/segupro/polizas-api/internal/domain/entity"
	"github.com/segupro/polizas-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia, compartidos por los tests
// del paquete. Implementan la misma semántica que los adaptadores de
// PostgreSQL: nil sin error cuando no existe, upsert resuelto por documento.

// ── Partes ────────────────────────────────────────────────────────────────────

type fakeParteRepo struct {
	porID map[string]*entity.Parte
}

func newFakeParteRepo() *fakeParteRepo {
	return &fakeParteRepo{porID: map[string]*entity.Parte{}}
}

func (f *fakeParteRepo) Upsert(p *entity.Parte) (*entity.Parte, error) {
	for _, existing := range f.porID {
		if existing.Documento == p.Documento {
			existing.Nombre = p.Nombre
			existing.Telefono = p.Telefono
			existing.Email = p.Email
			existing.Direccion = p.Direccion
			existing.UpdatedAt = p.UpdatedAt
			clone := *existing
			return &clone, nil
		}
	}
	clone := *p
	f.porID[p.ID] = &clone
	out := clone
	return &out, nil
}

func (f *fakeParteRepo) Create(p *entity.Parte) error {
	clone := *p
	f.porID[p.ID] = &clone
	return nil
}

func (f *fakeParteRepo) GetByID(id string) (*entity.Parte, error) {
	p, ok := f.porID[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (f *fakeParteRepo) GetByDocumento(documento string) (*entity.Parte, error) {
	for _, p := range f.porID {
		if p.Documento == documento {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeParteRepo) List(limit, offset int) ([]*entity.Parte, error) {
	out := make([]*entity.Parte, 0, len(f.porID))
	for _, p := range f.porID {
		clone := *p
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (f *fakeParteRepo) Update(p *entity.Parte) error {
	clone := *p
	f.porID[p.ID] = &clone
	return nil
}

func (f *fakeParteRepo) Delete(id string) error {
	delete(f.porID, id)
	return nil
}

// ── Catálogos ─────────────────────────────────────────────────────────────────

type fakeAseguradoraRepo struct{ porID map[string]*entity.Aseguradora }

func newFakeAseguradoraRepo(nombres ...string) (*fakeAseguradoraRepo, []string) {
	f := &fakeAseguradoraRepo{porID: map[string]*entity.Aseguradora{}}
	ids := make([]string, 0, len(nombres))
	for _, n := range nombres {
		id := uuid.New().String()
		f.porID[id] = &entity.Aseguradora{ID: id, Nombre: n}
		ids = append(ids, id)
	}
	return f, ids
}

func (f *fakeAseguradoraRepo) Create(a *entity.Aseguradora) error { f.porID[a.ID] = a; return nil }
func (f *fakeAseguradoraRepo) GetByID(id string) (*entity.Aseguradora, error) {
	return f.porID[id], nil
}
func (f *fakeAseguradoraRepo) List(limit, offset int) ([]*entity.Aseguradora, error) {
	out := make([]*entity.Aseguradora, 0, len(f.porID))
	for _, a := range f.porID {
		out = append(out, a)
	}
	return out, nil
}
func (f *fakeAseguradoraRepo) Update(a *entity.Aseguradora) error { f.porID[a.ID] = a; return nil }
func (f *fakeAseguradoraRepo) Delete(id string) error             { delete(f.porID, id); return nil }

type fakeRamoRepo struct{ porID map[string]*entity.Ramo }

func newFakeRamoRepo(nombres ...string) (*fakeRamoRepo, []string) {
	f := &fakeRamoRepo{porID: map[string]*entity.Ramo{}}
	ids := make([]string, 0, len(nombres))
	for _, n := range nombres {
		id := uuid.New().String()
		f.porID[id] = &entity.Ramo{ID: id, Nombre: n}
		ids = append(ids, id)
	}
	return f, ids
}

func (f *fakeRamoRepo) Create(r *entity.Ramo) error             { f.porID[r.ID] = r; return nil }
func (f *fakeRamoRepo) GetByID(id string) (*entity.Ramo, error) { return f.porID[id], nil }
func (f *fakeRamoRepo) List(limit, offset int) ([]*entity.Ramo, error) {
	out := make([]*entity.Ramo, 0, len(f.porID))
	for _, r := range f.porID {
		out = append(out, r)
	}
	return out, nil
}
func (f *fakeRamoRepo) Update(r *entity.Ramo) error { f.porID[r.ID] = r; return nil }
func (f *fakeRamoRepo) Delete(id string) error      { delete(f.porID, id); return nil }

type fakeFormaPagoRepo struct{ porID map[string]*entity.FormaPago }

func newFakeFormaPagoRepo(nombres ...string) (*fakeFormaPagoRepo, []string) {
	f := &fakeFormaPagoRepo{porID: map[string]*entity.FormaPago{}}
	ids := make([]string, 0, len(nombres))
	for _, n := range nombres {
		id := uuid.New().String()
		f.porID[id] = &entity.FormaPago{ID: id, Nombre: n}
		ids = append(ids, id)
	}
	return f, ids
}

func (f *fakeFormaPagoRepo) Create(fp *entity.FormaPago) error { f.porID[fp.ID] = fp; return nil }
func (f *fakeFormaPagoRepo) GetByID(id string) (*entity.FormaPago, error) {
	return f.porID[id], nil
}
func (f *fakeFormaPagoRepo) List(limit, offset int) ([]*entity.FormaPago, error) {
	out := make([]*entity.FormaPago, 0, len(f.porID))
	for _, fp := range f.porID {
		out = append(out, fp)
	}
	return out, nil
}
func (f *fakeFormaPagoRepo) Update(fp *entity.FormaPago) error { f.porID[fp.ID] = fp; return nil }
func (f *fakeFormaPagoRepo) Delete(id string) error            { delete(f.porID, id); return nil }

// ── Pólizas ───────────────────────────────────────────────────────────────────

// fakePolizaRepo resuelve las relaciones del detalle contra los otros fakes,
// igual que hacen los LEFT JOIN del adaptador real.
type fakePolizaRepo struct {
	porID        map[string]*entity.Poliza
	aseguradoras *fakeAseguradoraRepo
	ramos        *fakeRamoRepo
	formasPago   *fakeFormaPagoRepo
	contratantes *fakeParteRepo
	asegurados   *fakeParteRepo
}

func newFakePolizaRepo(
	aseguradoras *fakeAseguradoraRepo,
	ramos *fakeRamoRepo,
	formasPago *fakeFormaPagoRepo,
	contratantes, asegurados *fakeParteRepo,
) *fakePolizaRepo {
	return &fakePolizaRepo{
		porID:        map[string]*entity.Poliza{},
		aseguradoras: aseguradoras,
		ramos:        ramos,
		formasPago:   formasPago,
		contratantes: contratantes,
		asegurados:   asegurados,
	}
}

func (f *fakePolizaRepo) Create(p *entity.Poliza) error {
	clone := *p
	f.porID[p.ID] = &clone
	return nil
}

func (f *fakePolizaRepo) GetByID(id string) (*entity.Poliza, error) {
	p, ok := f.porID[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (f *fakePolizaRepo) GetDetalleByID(id string) (*entity.PolizaDetalle, error) {
	p, ok := f.porID[id]
	if !ok {
		return nil, nil
	}
	return f.detalle(p), nil
}

func (f *fakePolizaRepo) List(filter repository.PolizaFilter, limit, offset int) ([]*entity.PolizaDetalle, error) {
	var out []*entity.PolizaDetalle
	for _, p := range f.porID {
		if filter.AseguradoraID != "" && p.AseguradoraID != filter.AseguradoraID {
			continue
		}
		if filter.RamoID != "" && p.RamoID != filter.RamoID {
			continue
		}
		if filter.ContratanteID != "" && p.ContratanteID != filter.ContratanteID {
			continue
		}
		if filter.AseguradoID != "" && p.AseguradoID != filter.AseguradoID {
			continue
		}
		if filter.FechaDesde != nil && p.FechaInicio.Before(*filter.FechaDesde) {
			continue
		}
		if filter.FechaHasta != nil && p.FechaInicio.After(*filter.FechaHasta) {
			continue
		}
		out = append(out, f.detalle(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FechaInicio.Before(out[j].FechaInicio) })
	return out, nil
}

func (f *fakePolizaRepo) ListProximasRenovacion(filter repository.RenovacionFilter) ([]*entity.PolizaDetalle, error) {
	var out []*entity.PolizaDetalle
	for _, p := range f.porID {
		if p.Renovacion.Before(filter.Desde) {
			continue
		}
		if filter.AseguradoraID != "" && p.AseguradoraID != filter.AseguradoraID {
			continue
		}
		if filter.RamoID != "" && p.RamoID != filter.RamoID {
			continue
		}
		if filter.ContratanteID != "" && p.ContratanteID != filter.ContratanteID {
			continue
		}
		out = append(out, f.detalle(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Renovacion.Before(out[j].Renovacion) })
	return out, nil
}

func (f *fakePolizaRepo) Update(p *entity.Poliza) error {
	clone := *p
	f.porID[p.ID] = &clone
	return nil
}

func (f *fakePolizaRepo) Delete(id string) error {
	delete(f.porID, id)
	return nil
}

func (f *fakePolizaRepo) detalle(p *entity.Poliza) *entity.PolizaDetalle {
	d := &entity.PolizaDetalle{Poliza: *p}
	if a, _ := f.aseguradoras.GetByID(p.AseguradoraID); a != nil {
		d.Aseguradora = a
	}
	if r, _ := f.ramos.GetByID(p.RamoID); r != nil {
		d.Ramo = r
	}
	if fp, _ := f.formasPago.GetByID(p.FormaPagoID); fp != nil {
		d.FormaPago = fp
	}
	if c, _ := f.contratantes.GetByID(p.ContratanteID); c != nil {
		d.Contratante = c
	}
	if a, _ := f.asegurados.GetByID(p.AseguradoID); a != nil {
		d.Asegurado = a
	}
	return d
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

// fakeTxRunner ejecuta el callback directo contra los fakes: los tests de
// casos de uso validan semántica, no atomicidad.
type fakeTxRunner struct {
	polizas      *fakePolizaRepo
	contratantes *fakeParteRepo
	asegurados   *fakeParteRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	polizas repository.PolizaRepository,
	contratantes repository.ParteRepository,
	asegurados repository.ParteRepository,
) error) error {
	return fn(f.polizas, f.contratantes, f.asegurados)
}

// ── Reportes ──────────────────────────────────────────────────────────────────

type fakeReporteRepo struct {
	creados []*entity.ReporteGenerado
}

func (f *fakeReporteRepo) Create(r *entity.ReporteGenerado) error {
	f.creados = append(f.creados, r)
	return nil
}

func (f *fakeReporteRepo) ListByUsuario(usuarioID string, limit, offset int) ([]*entity.ReporteGenerado, error) {
	var out []*entity.ReporteGenerado
	for _, r := range f.creados {
		if r.UsuarioID == usuarioID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FechaGeneracion.After(out[j].FechaGeneracion) })
	return out, nil
}

// fakeExporter registra la última tabla renderizada.
type fakeExporter struct {
	ext         string
	titulo      string
	encabezados []string
	filas       [][]string
}

func (f *fakeExporter) Render(titulo string, encabezados []string, filas [][]string) ([]byte, error) {
	f.titulo = titulo
	f.encabezados = encabezados
	f.filas = filas
	return []byte("documento"), nil
}

func (f *fakeExporter) Extension() string   { return f.ext }
func (f *fakeExporter) ContentType() string { return "application/test" }

// ── Usuarios ──────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	porID map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{porID: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	clone := *u
	f.porID[u.ID] = &clone
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := f.porID[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	return &clone, nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range f.porID {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(filter repository.UserFilter, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range f.porID {
		if filter.Rol != "" && u.Rol != filter.Rol {
			continue
		}
		if filter.IsActive != nil && u.IsActive != *filter.IsActive {
			continue
		}
		clone := *u
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	clone := *u
	f.porID[u.ID] = &clone
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	delete(f.porID, id)
	return nil
}
