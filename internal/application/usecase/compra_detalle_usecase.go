package usecase

import (
	"fmt"

	"github.com/tu-usuario/gestion-boletas/internal/application/dto"
	"github.com/tu-usuario/gestion-boletas/internal/domain"
	"github.com/tu-usuario/gestion-boletas/internal/domain/entity"
	"github.com/tu-usuario/gestion-boletas/internal/domain/repository"
)

// CompraDetalleUseCase casos de uso para líneas de compra. El total de línea
// viene calculado por el llamador y no se verifica contra cantidad × precio.
type CompraDetalleUseCase struct {
	repo repository.CompraDetalleRepository
}

// NewCompraDetalleUseCase construye el caso de uso.
func NewCompraDetalleUseCase(repo repository.CompraDetalleRepository) *CompraDetalleUseCase {
	return &CompraDetalleUseCase{repo: repo}
}

// Listar devuelve líneas de compra con compra y producto anidados,
// opcionalmente filtradas por id_compra.
func (uc *CompraDetalleUseCase) Listar(idCompra *int64) ([]dto.CompraDetalleListadoResponse, error) {
	list, err := uc.repo.Listar(idCompra)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompraDetalleListadoResponse, 0, len(list))
	for i := range list {
		d := &list[i]
		item := dto.CompraDetalleListadoResponse{
			CompraDetalleResponse: toCompraDetalleResponse(&d.CompraDetalle),
		}
		if d.Compra != nil {
			item.Compra = &dto.CompraResumenResponse{
				NumeroDocumento: d.Compra.NumeroDocumento,
				TipoDocumento:   d.Compra.TipoDocumento,
				FechaCompra:     d.Compra.FechaCompra,
			}
		}
		if d.Producto != nil {
			item.Producto = &dto.ProductoResumenResponse{
				NombreProducto: d.Producto.NombreProducto,
				SKUProducto:    d.Producto.SKUProducto,
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// ObtenerPorID devuelve una línea o nil si no existe.
func (uc *CompraDetalleUseCase) ObtenerPorID(id int64) (*dto.CompraDetalleResponse, error) {
	d, err := uc.repo.ObtenerPorID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	out := toCompraDetalleResponse(d)
	return &out, nil
}

// Crear valida los campos obligatorios e inserta la línea.
func (uc *CompraDetalleUseCase) Crear(in dto.CompraDetalleRequest) (*dto.CompraDetalleResponse, error) {
	if in.IDCompra == 0 || in.IDProducto == 0 || in.Cantidad.IsZero() || in.PrecioUnitario.IsZero() {
		return nil, fmt.Errorf("%w: id_compra, id_producto, cantidad y precio_unitario son obligatorios", domain.ErrInvalidInput)
	}
	creado, err := uc.repo.Crear(toCompraDetalleEntity(0, in))
	if err != nil {
		return nil, err
	}
	out := toCompraDetalleResponse(creado)
	return &out, nil
}

// Actualizar reemplaza la fila completa. Devuelve nil si el id no existe.
func (uc *CompraDetalleUseCase) Actualizar(id int64, in dto.CompraDetalleRequest) (*dto.CompraDetalleResponse, error) {
	actualizado, err := uc.repo.Actualizar(toCompraDetalleEntity(id, in))
	if err != nil {
		return nil, err
	}
	if actualizado == nil {
		return nil, nil
	}
	out := toCompraDetalleResponse(actualizado)
	return &out, nil
}

// Eliminar borra la línea directamente (borrado físico).
func (uc *CompraDetalleUseCase) Eliminar(id int64) error {
	return uc.repo.Eliminar(id)
}

func toCompraDetalleEntity(id int64, in dto.CompraDetalleRequest) *entity.CompraDetalle {
	return &entity.CompraDetalle{
		IDDetalle:      id,
		IDCompra:       in.IDCompra,
		NumeroLinea:    in.NumeroLinea,
		IDProducto:     in.IDProducto,
		Cantidad:       in.Cantidad,
		PrecioUnitario: in.PrecioUnitario,
		TotalLinea:     in.TotalLinea,
	}
}

func toCompraDetalleResponse(d *entity.CompraDetalle) dto.CompraDetalleResponse {
	return dto.CompraDetalleResponse{
		IDDetalle:      d.IDDetalle,
		IDCompra:       d.IDCompra,
		NumeroLinea:    d.NumeroLinea,
		IDProducto:     d.IDProducto,
		Cantidad:       d.Cantidad,
		PrecioUnitario: d.PrecioUnitario,
		TotalLinea:     d.TotalLinea,
	}
}
