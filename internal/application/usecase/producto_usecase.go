package usecase

import (
	"fmt"

	"github.com/tu-usuario/gestion-boletas/internal/application/dto"
	"github.com/tu-usuario/gestion-boletas/internal/domain"
	"github.com/tu-usuario/gestion-boletas/internal/domain/entity"
	"github.com/tu-usuario/gestion-boletas/internal/domain/repository"
)

// ProductoUseCase casos de uso CRUD para productos. El borrado es lógico:
// los productos INACTIVO salen de las listas de selección pero siguen siendo
// resolubles por id desde líneas históricas.
type ProductoUseCase struct {
	repo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(repo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{repo: repo}
}

// Listar devuelve productos ordenados por nombre, con filtro opcional por estado.
func (uc *ProductoUseCase) Listar(estado string) ([]dto.ProductoResponse, error) {
	list, err := uc.repo.Listar(estado)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(list))
	for _, p := range list {
		items = append(items, toProductoResponse(&p))
	}
	return items, nil
}

// ObtenerPorID devuelve un producto o nil si no existe.
func (uc *ProductoUseCase) ObtenerPorID(id int64) (*dto.ProductoResponse, error) {
	p, err := uc.repo.ObtenerPorID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	out := toProductoResponse(p)
	return &out, nil
}

// Crear valida los campos obligatorios e inserta el producto.
func (uc *ProductoUseCase) Crear(in dto.ProductoRequest) (*dto.ProductoResponse, error) {
	if in.SKUProducto == "" || in.NombreProducto == "" || in.UnidadMedida == "" {
		return nil, fmt.Errorf("%w: sku_producto, nombre_producto y unidad_medida son obligatorios", domain.ErrInvalidInput)
	}
	if in.Estado == "" {
		in.Estado = entity.EstadoActivo
	}
	creado, err := uc.repo.Crear(toProductoEntity(0, in))
	if err != nil {
		return nil, err
	}
	out := toProductoResponse(creado)
	return &out, nil
}

// Actualizar reemplaza la fila completa. Devuelve nil si el id no existe.
func (uc *ProductoUseCase) Actualizar(id int64, in dto.ProductoRequest) (*dto.ProductoResponse, error) {
	actualizado, err := uc.repo.Actualizar(toProductoEntity(id, in))
	if err != nil {
		return nil, err
	}
	if actualizado == nil {
		return nil, nil
	}
	out := toProductoResponse(actualizado)
	return &out, nil
}

// Eliminar desactiva el producto (borrado lógico).
func (uc *ProductoUseCase) Eliminar(id int64) error {
	return uc.repo.Desactivar(id)
}

func toProductoEntity(id int64, in dto.ProductoRequest) *entity.Producto {
	return &entity.Producto{
		IDProducto:     id,
		SKUProducto:    in.SKUProducto,
		NombreProducto: in.NombreProducto,
		Categoria:      in.Categoria,
		UnidadMedida:   in.UnidadMedida,
		Estado:         in.Estado,
	}
}

func toProductoResponse(p *entity.Producto) dto.ProductoResponse {
	return dto.ProductoResponse{
		IDProducto:     p.IDProducto,
		SKUProducto:    p.SKUProducto,
		NombreProducto: p.NombreProducto,
		Categoria:      p.Categoria,
		UnidadMedida:   p.UnidadMedida,
		Estado:         p.Estado,
	}
}
