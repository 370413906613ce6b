package usecase

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/segupro/polizas-api/internal/application/dto"
	"github.com/segupro/polizas-api/internal/domain"
	"github.com/segupro/polizas-api/internal/domain/entity"
	"github.com/segupro/polizas-api/internal/domain/repository"
)

// UserUseCase gestión de usuarios del backoffice (solo admin, salvo el
// perfil propio).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create da de alta un usuario con password bcrypt.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := validarAltaUsuario(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByUsername(in.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     in.Username,
		PasswordHash: string(hash),
		Email:        in.Email,
		Rol:          in.Rol,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Telefono:     in.Telefono,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// GetByID obtiene un usuario.
func (uc *UserUseCase) GetByID(id string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// List lista usuarios con filtros opcionales por rol y estado.
func (uc *UserUseCase) List(filter repository.UserFilter, limit, offset int) ([]*dto.UserResponse, error) {
	if filter.Rol != "" && !rolValido(filter.Rol) {
		return nil, domain.NewValidationError("rol", "rol desconocido: "+filter.Rol)
	}
	list, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(list))
	for _, u := range list {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

// Update aplica cambios parciales. El password, si viene, se rehashea.
func (uc *UserUseCase) Update(id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if in.Rol != nil {
		if !rolValido(*in.Rol) {
			return nil, domain.NewValidationError("rol", "rol desconocido: "+*in.Rol)
		}
		user.Rol = *in.Rol
	}
	if in.Password != nil {
		if len(*in.Password) < 8 {
			return nil, domain.NewValidationError("password", "debe tener al menos 8 caracteres")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.Telefono != nil {
		user.Telefono = *in.Telefono
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina un usuario.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(id)
}

func validarAltaUsuario(in dto.CreateUserRequest) error {
	fields := map[string]string{}
	if in.Username == "" {
		fields["username"] = "requerido"
	}
	if len(in.Password) < 8 {
		fields["password"] = "debe tener al menos 8 caracteres"
	}
	if in.FirstName == "" {
		fields["first_name"] = "requerido"
	}
	if !rolValido(in.Rol) {
		fields["rol"] = "debe ser admin o analista"
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func rolValido(rol string) bool {
	return rol == entity.RolAdmin || rol == entity.RolAnalista
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Rol:       u.Rol,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Telefono:  u.Telefono,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
