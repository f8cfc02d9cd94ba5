// Package busqueda resuelve el texto del autocompletado a un producto
// concreto. El usuario escribe libre; las sugerencias son cadenas canónicas
// "SKU - nombre (unidad)" y solo una de esas cadenas selecciona producto.
package busqueda

import (
	"github.com/tu-usuario/gestion-boletas/internal/domain/busqueda"
	"github.com/tu-usuario/gestion-boletas/internal/domain/entity"
)

// Resolver mapea la cadena canónica de cada producto activo a su id.
type Resolver struct {
	productos []entity.Producto
	porTexto  map[string]int64
}

// NewResolver construye el resolvedor sobre el catálogo dado.
func NewResolver(productos []entity.Producto) *Resolver {
	r := &Resolver{
		productos: productos,
		porTexto:  make(map[string]int64, len(productos)),
	}
	for _, p := range productos {
		if p.Estado != entity.EstadoActivo {
			continue
		}
		r.porTexto[busqueda.Display(p)] = p.IDProducto
	}
	return r
}

// Sugerencias devuelve las cadenas canónicas de los productos que coinciden
// con la consulta, en el orden del catálogo.
func (r *Resolver) Sugerencias(consulta string) []string {
	matches := busqueda.Buscar(r.productos, consulta)
	out := make([]string, 0, len(matches))
	for _, p := range matches {
		out = append(out, busqueda.Display(p))
	}
	return out
}

// Resolver devuelve el id del producto cuya cadena canónica coincide
// exactamente con texto. Cualquier otro texto no selecciona producto.
func (r *Resolver) Resolver(texto string) (int64, bool) {
	id, ok := r.porTexto[texto]
	return id, ok
}
