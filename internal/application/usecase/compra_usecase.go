package usecase

import (
	"fmt"

	"github.com/tu-usuario/gestion-boletas/internal/application/dto"
	"github.com/tu-usuario/gestion-boletas/internal/domain"
	"github.com/tu-usuario/gestion-boletas/internal/domain/entity"
	"github.com/tu-usuario/gestion-boletas/internal/domain/repository"
)

// CompraUseCase casos de uso para compras. El número de documento de compra
// no tiene constraint de unicidad: solo existe la verificación previa
// best-effort del endpoint check-documento.
type CompraUseCase struct {
	repo repository.CompraRepository
}

// NewCompraUseCase construye el caso de uso.
func NewCompraUseCase(repo repository.CompraRepository) *CompraUseCase {
	return &CompraUseCase{repo: repo}
}

// Listar devuelve las compras con proveedor y líneas anidadas, ordenadas por
// fecha descendente.
func (uc *CompraUseCase) Listar() ([]dto.CompraConDetallesResponse, error) {
	list, err := uc.repo.ListarConDetalles()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompraConDetallesResponse, 0, len(list))
	for i := range list {
		items = append(items, toCompraConDetallesResponse(&list[i]))
	}
	return items, nil
}

// ObtenerPorID devuelve una compra con sus anidados, o nil si no existe.
func (uc *CompraUseCase) ObtenerPorID(id int64) (*dto.CompraConDetallesResponse, error) {
	c, err := uc.repo.ObtenerConDetalles(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	out := toCompraConDetallesResponse(c)
	return &out, nil
}

// Crear valida los campos obligatorios e inserta la compra. Un total en
// cero cuenta como faltante.
func (uc *CompraUseCase) Crear(in dto.CompraRequest) (*dto.CompraResponse, error) {
	if in.NumeroDocumento == "" || in.IDProveedor == 0 || in.Total.IsZero() {
		return nil, fmt.Errorf("%w: numero_documento, id_proveedor y total son obligatorios", domain.ErrInvalidInput)
	}
	creada, err := uc.repo.Crear(toCompraEntity(0, in))
	if err != nil {
		return nil, err
	}
	out := toCompraResponse(creada)
	return &out, nil
}

// Actualizar reemplaza la fila completa. Devuelve nil si el id no existe.
func (uc *CompraUseCase) Actualizar(id int64, in dto.CompraRequest) (*dto.CompraResponse, error) {
	actualizada, err := uc.repo.Actualizar(toCompraEntity(id, in))
	if err != nil {
		return nil, err
	}
	if actualizada == nil {
		return nil, nil
	}
	out := toCompraResponse(actualizada)
	return &out, nil
}

// Eliminar borra la compra y sus líneas (líneas primero, luego la cabecera).
func (uc *CompraUseCase) Eliminar(id int64) error {
	return uc.repo.EliminarConDetalles(id)
}

// CheckDocumento indica si un número de documento ya está en uso y por qué compra.
func (uc *CompraUseCase) CheckDocumento(numero string) (dto.CheckDocumentoCompraResponse, error) {
	id, existe, err := uc.repo.BuscarPorNumeroDocumento(numero)
	if err != nil {
		return dto.CheckDocumentoCompraResponse{}, err
	}
	out := dto.CheckDocumentoCompraResponse{Exists: existe}
	if existe {
		out.IDCompra = &id
	}
	return out, nil
}

func toCompraEntity(id int64, in dto.CompraRequest) *entity.Compra {
	return &entity.Compra{
		IDCompra:        id,
		NumeroDocumento: in.NumeroDocumento,
		TipoDocumento:   in.TipoDocumento,
		FechaCompra:     in.FechaCompra,
		IDProveedor:     in.IDProveedor,
		Total:           in.Total,
		Observaciones:   in.Observaciones,
	}
}

func toCompraResponse(c *entity.Compra) dto.CompraResponse {
	return dto.CompraResponse{
		IDCompra:        c.IDCompra,
		NumeroDocumento: c.NumeroDocumento,
		TipoDocumento:   c.TipoDocumento,
		FechaCompra:     c.FechaCompra,
		IDProveedor:     c.IDProveedor,
		Total:           c.Total,
		Observaciones:   c.Observaciones,
	}
}

func toCompraConDetallesResponse(c *repository.CompraConDetalles) dto.CompraConDetallesResponse {
	out := dto.CompraConDetallesResponse{
		CompraResponse: toCompraResponse(&c.Compra),
		Detalles:       make([]dto.CompraDetalleAnidadoResponse, 0, len(c.Detalles)),
	}
	if c.Proveedor != nil {
		out.Proveedor = &dto.ProveedorResumenResponse{
			NombreComercial: c.Proveedor.NombreComercial,
			RUC:             c.Proveedor.RUC,
		}
	}
	for i := range c.Detalles {
		d := &c.Detalles[i]
		anidado := dto.CompraDetalleAnidadoResponse{
			CompraDetalleResponse: toCompraDetalleResponse(&d.CompraDetalle),
		}
		if d.Producto != nil {
			anidado.Producto = &dto.ProductoResumenResponse{
				NombreProducto: d.Producto.NombreProducto,
				SKUProducto:    d.Producto.SKUProducto,
			}
		}
		out.Detalles = append(out.Detalles, anidado)
	}
	return out
}
