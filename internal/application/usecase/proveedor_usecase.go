package usecase

import (
	"fmt"

	"github.com/tu-usuario/gestion-boletas/internal/application/dto"
	"github.com/tu-usuario/gestion-boletas/internal/domain"
	"github.com/tu-usuario/gestion-boletas/internal/domain/entity"
	"github.com/tu-usuario/gestion-boletas/internal/domain/repository"
)

// ProveedorUseCase casos de uso CRUD para proveedores. El borrado es lógico.
type ProveedorUseCase struct {
	repo repository.ProveedorRepository
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(repo repository.ProveedorRepository) *ProveedorUseCase {
	return &ProveedorUseCase{repo: repo}
}

// Listar devuelve proveedores ordenados por nombre comercial, con filtro
// opcional por estado.
func (uc *ProveedorUseCase) Listar(estado string) ([]dto.ProveedorResponse, error) {
	list, err := uc.repo.Listar(estado)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProveedorResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProveedorResponse(&p))
	}
	return items, nil
}

// ObtenerPorID devuelve un proveedor o nil si no existe.
func (uc *ProveedorUseCase) ObtenerPorID(id int64) (*dto.ProveedorResponse, error) {
	p, err := uc.repo.ObtenerPorID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	out := toProveedorResponse(p)
	return &out, nil
}

// Crear valida los campos obligatorios e inserta el proveedor.
func (uc *ProveedorUseCase) Crear(in dto.ProveedorRequest) (*dto.ProveedorResponse, error) {
	if in.RUC == "" || in.NombreComercial == "" {
		return nil, fmt.Errorf("%w: ruc y nombre_comercial son obligatorios", domain.ErrInvalidInput)
	}
	if in.Estado == "" {
		in.Estado = entity.EstadoActivo
	}
	creado, err := uc.repo.Crear(toProveedorEntity(0, in))
	if err != nil {
		return nil, err
	}
	out := toProveedorResponse(creado)
	return &out, nil
}

// Actualizar reemplaza la fila completa. Devuelve nil si el id no existe.
func (uc *ProveedorUseCase) Actualizar(id int64, in dto.ProveedorRequest) (*dto.ProveedorResponse, error) {
	actualizado, err := uc.repo.Actualizar(toProveedorEntity(id, in))
	if err != nil {
		return nil, err
	}
	if actualizado == nil {
		return nil, nil
	}
	out := toProveedorResponse(actualizado)
	return &out, nil
}

// Eliminar desactiva el proveedor (borrado lógico). Los documentos históricos
// siguen pudiendo referenciarlo.
func (uc *ProveedorUseCase) Eliminar(id int64) error {
	return uc.repo.Desactivar(id)
}

func toProveedorEntity(id int64, in dto.ProveedorRequest) *entity.Proveedor {
	return &entity.Proveedor{
		IDProveedor:     id,
		RUC:             in.RUC,
		RazonSocial:     in.RazonSocial,
		NombreComercial: in.NombreComercial,
		Direccion:       in.Direccion,
		Estado:          in.Estado,
	}
}

func toProveedorResponse(p *entity.Proveedor) dto.ProveedorResponse {
	return dto.ProveedorResponse{
		IDProveedor:     p.IDProveedor,
		RUC:             p.RUC,
		RazonSocial:     p.RazonSocial,
		NombreComercial: p.NombreComercial,
		Direccion:       p.Direccion,
		Estado:          p.Estado,
	}
}
