package usecase

import (
	"fmt"

	"github.com/tu-usuario/gestion-boletas/internal/application/dto"
	"github.com/tu-usuario/gestion-boletas/internal/domain"
	"github.com/tu-usuario/gestion-boletas/internal/domain/entity"
	"github.com/tu-usuario/gestion-boletas/internal/domain/repository"
)

// VentaDetalleUseCase casos de uso para líneas de venta. A diferencia de las
// líneas de compra, aquí total_linea también es obligatorio en el alta.
type VentaDetalleUseCase struct {
	repo repository.VentaDetalleRepository
}

// NewVentaDetalleUseCase construye el caso de uso.
func NewVentaDetalleUseCase(repo repository.VentaDetalleRepository) *VentaDetalleUseCase {
	return &VentaDetalleUseCase{repo: repo}
}

// Listar devuelve líneas de venta con venta y producto anidados,
// opcionalmente filtradas por id_venta.
func (uc *VentaDetalleUseCase) Listar(idVenta *int64) ([]dto.VentaDetalleListadoResponse, error) {
	list, err := uc.repo.Listar(idVenta)
	if err != nil {
		return nil, err
	}
	items := make([]dto.VentaDetalleListadoResponse, 0, len(list))
	for i := range list {
		d := &list[i]
		item := dto.VentaDetalleListadoResponse{
			VentaDetalleResponse: toVentaDetalleResponse(&d.VentaDetalle),
		}
		if d.Venta != nil {
			item.Venta = &dto.VentaResumenResponse{
				NumeroDocumento: d.Venta.NumeroDocumento,
				TipoDocumento:   d.Venta.TipoDocumento,
				FechaVenta:      d.Venta.FechaVenta,
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
func (uc *VentaDetalleUseCase) ObtenerPorID(id int64) (*dto.VentaDetalleResponse, error) {
	d, err := uc.repo.ObtenerPorID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	out := toVentaDetalleResponse(d)
	return &out, nil
}

// Crear valida los campos obligatorios e inserta la línea.
func (uc *VentaDetalleUseCase) Crear(in dto.VentaDetalleRequest) (*dto.VentaDetalleResponse, error) {
	if in.IDVenta == 0 || in.IDProducto == 0 || in.Cantidad.IsZero() || in.PrecioUnitario.IsZero() || in.TotalLinea.IsZero() {
		return nil, fmt.Errorf("%w: id_venta, id_producto, cantidad, precio_unitario y total_linea son obligatorios", domain.ErrInvalidInput)
	}
	creado, err := uc.repo.Crear(toVentaDetalleEntity(0, in))
	if err != nil {
		return nil, err
	}
	out := toVentaDetalleResponse(creado)
	return &out, nil
}

// Actualizar reemplaza la fila completa. Devuelve nil si el id no existe.
func (uc *VentaDetalleUseCase) Actualizar(id int64, in dto.VentaDetalleRequest) (*dto.VentaDetalleResponse, error) {
	actualizado, err := uc.repo.Actualizar(toVentaDetalleEntity(id, in))
	if err != nil {
		return nil, err
	}
	if actualizado == nil {
		return nil, nil
	}
	out := toVentaDetalleResponse(actualizado)
	return &out, nil
}

// Eliminar borra la línea directamente (borrado físico).
func (uc *VentaDetalleUseCase) Eliminar(id int64) error {
	return uc.repo.Eliminar(id)
}

func toVentaDetalleEntity(id int64, in dto.VentaDetalleRequest) *entity.VentaDetalle {
	return &entity.VentaDetalle{
		IDDetalle:      id,
		IDVenta:        in.IDVenta,
		NumeroLinea:    in.NumeroLinea,
		IDProducto:     in.IDProducto,
		Cantidad:       in.Cantidad,
		PrecioUnitario: in.PrecioUnitario,
		TotalLinea:     in.TotalLinea,
	}
}

func toVentaDetalleResponse(d *entity.VentaDetalle) dto.VentaDetalleResponse {
	return dto.VentaDetalleResponse{
		IDDetalle:      d.IDDetalle,
		IDVenta:        d.IDVenta,
		NumeroLinea:    d.NumeroLinea,
		IDProducto:     d.IDProducto,
		Cantidad:       d.Cantidad,
		PrecioUnitario: d.PrecioUnitario,
		TotalLinea:     d.TotalLinea,
	}
}
