// Package almacen mantiene en memoria las colecciones que la aplicación de
// terminal consulta con frecuencia. Cada colección se refresca por separado
// contra la API; los accesores devuelven lo último cargado.
package almacen

import (
	"context"
	"sync"

	"github.com/tu-usuario/gestion-boletas/internal/application/dto"
	"github.com/tu-usuario/gestion-boletas/internal/domain/entity"
	"github.com/tu-usuario/gestion-boletas/pkg/client"
)

// Almacen es el caché local de proveedores, productos, compras y ventas.
type Almacen struct {
	api *client.Client

	mu          sync.RWMutex
	proveedores []dto.ProveedorResponse
	productos   []dto.ProductoResponse
	compras     []dto.CompraConDetallesResponse
	ventas      []dto.VentaResponse
}

// New construye el almacén vacío sobre el cliente de la API.
func New(api *client.Client) *Almacen {
	return &Almacen{api: api}
}

// RefrescarProveedores recarga la colección de proveedores.
func (a *Almacen) RefrescarProveedores(ctx context.Context) error {
	out, err := a.api.ListarProveedores(ctx)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.proveedores = out
	a.mu.Unlock()
	return nil
}

// RefrescarProductos recarga la colección de productos.
func (a *Almacen) RefrescarProductos(ctx context.Context) error {
	out, err := a.api.ListarProductos(ctx)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.productos = out
	a.mu.Unlock()
	return nil
}

// RefrescarCompras recarga las compras con sus detalles anidados.
func (a *Almacen) RefrescarCompras(ctx context.Context) error {
	out, err := a.api.ListarCompras(ctx)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.compras = out
	a.mu.Unlock()
	return nil
}

// RefrescarVentas recarga las ventas (sin detalles anidados).
func (a *Almacen) RefrescarVentas(ctx context.Context) error {
	out, err := a.api.ListarVentas(ctx)
	if err != nil {
		return err
	}
	a.mu.Lock()
	a.ventas = out
	a.mu.Unlock()
	return nil
}

// RefrescarTodo recarga las cuatro colecciones en secuencia; devuelve el
// primer error encontrado.
func (a *Almacen) RefrescarTodo(ctx context.Context) error {
	if err := a.RefrescarProveedores(ctx); err != nil {
		return err
	}
	if err := a.RefrescarProductos(ctx); err != nil {
		return err
	}
	if err := a.RefrescarCompras(ctx); err != nil {
		return err
	}
	return a.RefrescarVentas(ctx)
}

// Proveedores devuelve los proveedores cargados.
func (a *Almacen) Proveedores() []dto.ProveedorResponse {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.proveedores
}

// Productos devuelve los productos cargados.
func (a *Almacen) Productos() []dto.ProductoResponse {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.productos
}

// Compras devuelve las compras cargadas.
func (a *Almacen) Compras() []dto.CompraConDetallesResponse {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.compras
}

// Ventas devuelve las ventas cargadas.
func (a *Almacen) Ventas() []dto.VentaResponse {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.ventas
}

// ProductosEntidad convierte los productos cargados a entidades de dominio,
// la forma que consume el buscador de autocompletado.
func (a *Almacen) ProductosEntidad() []entity.Producto {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := make([]entity.Producto, 0, len(a.productos))
	for _, p := range a.productos {
		out = append(out, entity.Producto{
			IDProducto:     p.IDProducto,
			SKUProducto:    p.SKUProducto,
			NombreProducto: p.NombreProducto,
			Categoria:      p.Categoria,
			UnidadMedida:   p.UnidadMedida,
			Estado:         p.Estado,
		})
	}
	return out
}
