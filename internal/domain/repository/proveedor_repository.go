package repository

import "github.com/tu-usuario/gestion-boletas/internal/domain/entity"

// ProveedorRepository define el puerto de persistencia para Proveedor (DIP).
// Los métodos de lectura devuelven nil (sin error) cuando no existe la fila.
type ProveedorRepository interface {
	// Listar devuelve proveedores ordenados por nombre_comercial.
	// estado vacío = sin filtro.
	Listar(estado string) ([]entity.Proveedor, error)
	ObtenerPorID(id int64) (*entity.Proveedor, error)
	// Crear inserta y devuelve la fila con el id generado.
	Crear(p *entity.Proveedor) (*entity.Proveedor, error)
	// Actualizar reemplaza la fila completa; nil si el id no existe.
	Actualizar(p *entity.Proveedor) (*entity.Proveedor, error)
	// Desactivar es el borrado lógico: cambia estado a INACTIVO.
	Desactivar(id int64) error
}
