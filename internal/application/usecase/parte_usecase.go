package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/segupro/polizas-api/internal/application/dto"
	"github.com/segupro/polizas-api/internal/domain"
	"github.com/segupro/polizas-api/internal/domain/entity"
	"github.com/segupro/polizas-api/internal/domain/repository"
)

// ParteUseCase CRUD directo de una variante de parte (contratantes o
// asegurados). Se instancia una vez por variante, con el repo de su tabla.
// El resolve-or-create que usa el agregado de pólizas vive en PolizaUseCase,
// no aquí: el CRUD directo rechaza documentos duplicados en lugar de
// fusionarlos.
type ParteUseCase struct {
	repo repository.ParteRepository
}

// NewParteUseCase construye el caso de uso para una variante.
func NewParteUseCase(repo repository.ParteRepository) *ParteUseCase {
	return &ParteUseCase{repo: repo}
}

// Create da de alta una parte. Documento duplicado → ErrDuplicate.
func (uc *ParteUseCase) Create(in dto.ParteRequest) (*dto.ParteResponse, error) {
	if err := validarParte(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByDocumento(in.Documento)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	p := &entity.Parte{
		ID:        uuid.New().String(),
		Nombre:    in.Nombre,
		Documento: in.Documento,
		Telefono:  in.Telefono,
		Email:     in.Email,
		Direccion: in.Direccion,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return toParteResponse(p), nil
}

// GetByID obtiene una parte.
func (uc *ParteUseCase) GetByID(id string) (*dto.ParteResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toParteResponse(p), nil
}

// List lista partes con paginación.
func (uc *ParteUseCase) List(limit, offset int) ([]*dto.ParteResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ParteResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toParteResponse(p))
	}
	return out, nil
}

// Update aplica cambios parciales a una parte existente.
func (uc *ParteUseCase) Update(id string, in dto.ParteUpdateRequest) (*dto.ParteResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	aplicarParteUpdate(p, in)
	if err := uc.repo.Update(p); err != nil {
		return nil, err
	}
	return toParteResponse(p), nil
}

// Delete elimina una parte. Bloqueado si tiene pólizas (ErrProtected).
func (uc *ParteUseCase) Delete(id string) error {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func validarParte(in dto.ParteRequest) error {
	fields := map[string]string{}
	if in.Documento == "" {
		fields["documento"] = "requerido"
	}
	if in.Nombre == "" {
		fields["nombre"] = "requerido"
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func aplicarParteUpdate(p *entity.Parte, in dto.ParteUpdateRequest) {
	if in.Nombre != nil {
		p.Nombre = *in.Nombre
	}
	if in.Documento != nil {
		p.Documento = *in.Documento
	}
	if in.Telefono != nil {
		p.Telefono = *in.Telefono
	}
	if in.Email != nil {
		p.Email = *in.Email
	}
	if in.Direccion != nil {
		p.Direccion = *in.Direccion
	}
	p.UpdatedAt = time.Now()
}

func toParteResponse(p *entity.Parte) *dto.ParteResponse {
	return &dto.ParteResponse{
		ID:        p.ID,
		Nombre:    p.Nombre,
		Documento: p.Documento,
		Telefono:  p.Telefono,
		Email:     p.Email,
		Direccion: p.Direccion,
	}
}
