package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/segupro/polizas-api/internal/application/dto"
	"github.com/segupro/polizas-api/internal/domain"
	"github.com/segupro/polizas-api/internal/domain/entity"
	"github.com/segupro/polizas-api/internal/domain/repository"
)

// CatalogoUseCase CRUD de los catálogos de referencia: aseguradoras, ramos y
// formas de pago. El borrado queda bloqueado mientras alguna póliza los
// referencie (ErrProtected desde el repo).
type CatalogoUseCase struct {
	aseguradoras repository.AseguradoraRepository
	ramos        repository.RamoRepository
	formasPago   repository.FormaPagoRepository
}

// NewCatalogoUseCase construye el caso de uso con los tres repos.
func NewCatalogoUseCase(
	aseguradoras repository.AseguradoraRepository,
	ramos repository.RamoRepository,
	formasPago repository.FormaPagoRepository,
) *CatalogoUseCase {
	return &CatalogoUseCase{aseguradoras: aseguradoras, ramos: ramos, formasPago: formasPago}
}

func validarCatalogo(in dto.CatalogoRequest) error {
	if in.Nombre == "" {
		return domain.NewValidationError("nombre", "requerido")
	}
	return nil
}

// ── Aseguradoras ──────────────────────────────────────────────────────────────

func (uc *CatalogoUseCase) CreateAseguradora(in dto.CatalogoRequest) (*dto.CatalogoResponse, error) {
	if err := validarCatalogo(in); err != nil {
		return nil, err
	}
	now := time.Now()
	a := &entity.Aseguradora{ID: uuid.New().String(), Nombre: in.Nombre, Descripcion: in.Descripcion, CreatedAt: now, UpdatedAt: now}
	if err := uc.aseguradoras.Create(a); err != nil {
		return nil, err
	}
	return &dto.CatalogoResponse{ID: a.ID, Nombre: a.Nombre, Descripcion: a.Descripcion}, nil
}

func (uc *CatalogoUseCase) GetAseguradora(id string) (*dto.CatalogoResponse, error) {
	a, err := uc.aseguradoras.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.CatalogoResponse{ID: a.ID, Nombre: a.Nombre, Descripcion: a.Descripcion}, nil
}

func (uc *CatalogoUseCase) ListAseguradoras(limit, offset int) ([]*dto.CatalogoResponse, error) {
	list, err := uc.aseguradoras.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CatalogoResponse, 0, len(list))
	for _, a := range list {
		out = append(out, &dto.CatalogoResponse{ID: a.ID, Nombre: a.Nombre, Descripcion: a.Descripcion})
	}
	return out, nil
}

func (uc *CatalogoUseCase) UpdateAseguradora(id string, in dto.CatalogoRequest) (*dto.CatalogoResponse, error) {
	if err := validarCatalogo(in); err != nil {
		return nil, err
	}
	a, err := uc.aseguradoras.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	a.Nombre = in.Nombre
	a.Descripcion = in.Descripcion
	a.UpdatedAt = time.Now()
	if err := uc.aseguradoras.Update(a); err != nil {
		return nil, err
	}
	return &dto.CatalogoResponse{ID: a.ID, Nombre: a.Nombre, Descripcion: a.Descripcion}, nil
}

func (uc *CatalogoUseCase) DeleteAseguradora(id string) error {
	a, err := uc.aseguradoras.GetByID(id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	return uc.aseguradoras.Delete(id)
}

// ── Ramos ─────────────────────────────────────────────────────────────────────

func (uc *CatalogoUseCase) CreateRamo(in dto.CatalogoRequest) (*dto.CatalogoResponse, error) {
	if err := validarCatalogo(in); err != nil {
		return nil, err
	}
	now := time.Now()
	r := &entity.Ramo{ID: uuid.New().String(), Nombre: in.Nombre, Descripcion: in.Descripcion, CreatedAt: now, UpdatedAt: now}
	if err := uc.ramos.Create(r); err != nil {
		return nil, err
	}
	return &dto.CatalogoResponse{ID: r.ID, Nombre: r.Nombre, Descripcion: r.Descripcion}, nil
}

func (uc *CatalogoUseCase) GetRamo(id string) (*dto.CatalogoResponse, error) {
	r, err := uc.ramos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.CatalogoResponse{ID: r.ID, Nombre: r.Nombre, Descripcion: r.Descripcion}, nil
}

func (uc *CatalogoUseCase) ListRamos(limit, offset int) ([]*dto.CatalogoResponse, error) {
	list, err := uc.ramos.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CatalogoResponse, 0, len(list))
	for _, r := range list {
		out = append(out, &dto.CatalogoResponse{ID: r.ID, Nombre: r.Nombre, Descripcion: r.Descripcion})
	}
	return out, nil
}

func (uc *CatalogoUseCase) UpdateRamo(id string, in dto.CatalogoRequest) (*dto.CatalogoResponse, error) {
	if err := validarCatalogo(in); err != nil {
		return nil, err
	}
	r, err := uc.ramos.GetByID(id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, domain.ErrNotFound
	}
	r.Nombre = in.Nombre
	r.Descripcion = in.Descripcion
	r.UpdatedAt = time.Now()
	if err := uc.ramos.Update(r); err != nil {
		return nil, err
	}
	return &dto.CatalogoResponse{ID: r.ID, Nombre: r.Nombre, Descripcion: r.Descripcion}, nil
}

func (uc *CatalogoUseCase) DeleteRamo(id string) error {
	r, err := uc.ramos.GetByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return domain.ErrNotFound
	}
	return uc.ramos.Delete(id)
}

// ── Formas de pago ────────────────────────────────────────────────────────────

func (uc *CatalogoUseCase) CreateFormaPago(in dto.CatalogoRequest) (*dto.CatalogoResponse, error) {
	if err := validarCatalogo(in); err != nil {
		return nil, err
	}
	now := time.Now()
	f := &entity.FormaPago{ID: uuid.New().String(), Nombre: in.Nombre, Descripcion: in.Descripcion, CreatedAt: now, UpdatedAt: now}
	if err := uc.formasPago.Create(f); err != nil {
		return nil, err
	}
	return &dto.CatalogoResponse{ID: f.ID, Nombre: f.Nombre, Descripcion: f.Descripcion}, nil
}

func (uc *CatalogoUseCase) GetFormaPago(id string) (*dto.CatalogoResponse, error) {
	f, err := uc.formasPago.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	return &dto.CatalogoResponse{ID: f.ID, Nombre: f.Nombre, Descripcion: f.Descripcion}, nil
}

func (uc *CatalogoUseCase) ListFormasPago(limit, offset int) ([]*dto.CatalogoResponse, error) {
	list, err := uc.formasPago.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CatalogoResponse, 0, len(list))
	for _, f := range list {
		out = append(out, &dto.CatalogoResponse{ID: f.ID, Nombre: f.Nombre, Descripcion: f.Descripcion})
	}
	return out, nil
}

func (uc *CatalogoUseCase) UpdateFormaPago(id string, in dto.CatalogoRequest) (*dto.CatalogoResponse, error) {
	if err := validarCatalogo(in); err != nil {
		return nil, err
	}
	f, err := uc.formasPago.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, domain.ErrNotFound
	}
	f.Nombre = in.Nombre
	f.Descripcion = in.Descripcion
	f.UpdatedAt = time.Now()
	if err := uc.formasPago.Update(f); err != nil {
		return nil, err
	}
	return &dto.CatalogoResponse{ID: f.ID, Nombre: f.Nombre, Descripcion: f.Descripcion}, nil
}

func (uc *CatalogoUseCase) DeleteFormaPago(id string) error {
	f, err := uc.formasPago.GetByID(id)
	if err != nil {
		return err
	}
	if f == nil {
		return domain.ErrNotFound
	}
	return uc.formasPago.Delete(id)
}
