package usecase

import (
	"fmt"

	"github.com/tu-usuario/gestion-boletas/internal/application/dto"
	"github.com/tu-usuario/gestion-boletas/internal/domain"
	"github.com/tu-usuario/gestion-boletas/internal/domain/entity"
	"github.com/tu-usuario/gestion-boletas/internal/domain/repository"
)

// VentaUseCase casos de uso para ventas. A diferencia de las compras, el
// numero_documento sí tiene constraint UNIQUE: un duplicado produce
// domain.ErrDuplicate (HTTP 409).
type VentaUseCase struct {
	repo repository.VentaRepository
}

// NewVentaUseCase construye el caso de uso.
func NewVentaUseCase(repo repository.VentaRepository) *VentaUseCase {
	return &VentaUseCase{repo: repo}
}

// Listar devuelve las ventas sin anidar, ordenadas por id descendente.
func (uc *VentaUseCase) Listar() ([]dto.VentaResponse, error) {
	list, err := uc.repo.Listar()
	if err != nil {
		return nil, err
	}
	items := make([]dto.VentaResponse, 0, len(list))
	for i := range list {
		items = append(items, toVentaResponse(&list[i]))
	}
	return items, nil
}

// ObtenerPorID devuelve una venta con sus líneas anidadas, o nil si no existe.
func (uc *VentaUseCase) ObtenerPorID(id int64) (*dto.VentaConDetallesResponse, error) {
	v, err := uc.repo.ObtenerConDetalles(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	out := dto.VentaConDetallesResponse{
		VentaResponse: toVentaResponse(&v.Venta),
		Detalles:      make([]dto.VentaDetalleAnidadoResponse, 0, len(v.Detalles)),
	}
	for i := range v.Detalles {
		d := &v.Detalles[i]
		anidado := dto.VentaDetalleAnidadoResponse{
			VentaDetalleResponse: toVentaDetalleResponse(&d.VentaDetalle),
		}
		if d.Producto != nil {
			anidado.Producto = &dto.ProductoResumenResponse{
				NombreProducto: d.Producto.NombreProducto,
				SKUProducto:    d.Producto.SKUProducto,
			}
		}
		out.Detalles = append(out.Detalles, anidado)
	}
	return &out, nil
}

// Crear valida los campos obligatorios e inserta la venta.
func (uc *VentaUseCase) Crear(in dto.VentaRequest) (*dto.VentaResponse, error) {
	if in.NumeroDocumento == "" || in.TipoDocumento == "" || in.FechaVenta == "" || in.Total.IsZero() {
		return nil, fmt.Errorf("%w: numero_documento, tipo_documento, fecha_venta y total son obligatorios", domain.ErrInvalidInput)
	}
	creada, err := uc.repo.Crear(toVentaEntity(0, in))
	if err != nil {
		return nil, err
	}
	out := toVentaResponse(creada)
	return &out, nil
}

// Actualizar reemplaza la fila completa. Devuelve nil si el id no existe.
func (uc *VentaUseCase) Actualizar(id int64, in dto.VentaRequest) (*dto.VentaResponse, error) {
	actualizada, err := uc.repo.Actualizar(toVentaEntity(id, in))
	if err != nil {
		return nil, err
	}
	if actualizada == nil {
		return nil, nil
	}
	out := toVentaResponse(actualizada)
	return &out, nil
}

// Eliminar borra la venta y sus líneas (líneas primero, luego la cabecera).
func (uc *VentaUseCase) Eliminar(id int64) error {
	return uc.repo.EliminarConDetalles(id)
}

// CheckDocumento indica si un número de documento ya está en uso y por qué venta.
func (uc *VentaUseCase) CheckDocumento(numero string) (dto.CheckDocumentoVentaResponse, error) {
	id, existe, err := uc.repo.BuscarPorNumeroDocumento(numero)
	if err != nil {
		return dto.CheckDocumentoVentaResponse{}, err
	}
	out := dto.CheckDocumentoVentaResponse{Exists: existe}
	if existe {
		out.IDVenta = &id
	}
	return out, nil
}

func toVentaEntity(id int64, in dto.VentaRequest) *entity.Venta {
	return &entity.Venta{
		IDVenta:          id,
		NumeroDocumento:  in.NumeroDocumento,
		TipoDocumento:    in.TipoDocumento,
		FechaVenta:       in.FechaVenta,
		ClienteNombre:    in.ClienteNombre,
		ClienteDocumento: in.ClienteDocumento,
		Total:            in.Total,
		Observaciones:    in.Observaciones,
	}
}

func toVentaResponse(v *entity.Venta) dto.VentaResponse {
	return dto.VentaResponse{
		IDVenta:          v.IDVenta,
		NumeroDocumento:  v.NumeroDocumento,
		TipoDocumento:    v.TipoDocumento,
		FechaVenta:       v.FechaVenta,
		ClienteNombre:    v.ClienteNombre,
		ClienteDocumento: v.ClienteDocumento,
		Total:            v.Total,
		Observaciones:    v.Observaciones,
	}
}
