package repository

import "github.com/tu-usuario/gestion-boletas/internal/domain/entity"

// ProductoRepository define el puerto de persistencia para Producto (DIP).
type ProductoRepository interface {
	// Listar devuelve productos ordenados por nombre_producto.
	// estado vacío = sin filtro.
	Listar(estado string) ([]entity.Producto, error)
	ObtenerPorID(id int64) (*entity.Producto, error)
	Crear(p *entity.Producto) (*entity.Producto, error)
	Actualizar(p *entity.Producto) (*entity.Producto, error)
	// Desactivar es el borrado lógico: cambia estado a INACTIVO.
	Desactivar(id int64) error
}
