// Package busqueda implementa la resolución de texto libre a productos:
// normalización insensible a tildes y mayúsculas, coincidencia por tokens
// y sugerencia de SKU desde las iniciales del nombre.
package busqueda

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/tu-usuario/gestion-boletas/internal/domain/entity"
)

// MaxResultados limita las sugerencias mostradas al usuario.
const MaxResultados = 10

// quitarDiacriticos descompone a NFD y elimina las marcas combinantes (Mn),
// de modo que "Café" y "Cafe" comparen igual.
var quitarDiacriticos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Normalizar devuelve la forma canónica de comparación de un texto:
// sin tildes, en minúsculas, sin espacios sobrantes y con el espacio
// interno colapsado.
func Normalizar(s string) string {
	limpio, _, err := transform.String(quitarDiacriticos, s)
	if err != nil {
		limpio = s
	}
	return strings.Join(strings.Fields(strings.ToLower(limpio)), " ")
}

// Buscar filtra productos por una consulta de texto libre. La consulta se
// divide en tokens por espacios; un producto coincide si todos los tokens son
// substring del texto normalizado "sku + nombre". Solo participan productos
// ACTIVO. El orden es el de la colección (sin ranking) y el resultado se
// corta en MaxResultados.
func Buscar(productos []entity.Producto, consulta string) []entity.Producto {
	q := Normalizar(consulta)
	if q == "" {
		return nil
	}
	tokens := strings.Fields(q)

	var matches []entity.Producto
	for _, p := range productos {
		if p.Estado != entity.EstadoActivo {
			continue
		}
		texto := Normalizar(p.SKUProducto + " " + p.NombreProducto)
		if contieneTodos(texto, tokens) {
			matches = append(matches, p)
			if len(matches) == MaxResultados {
				break
			}
		}
	}
	return matches
}

func contieneTodos(texto string, tokens []string) bool {
	for _, t := range tokens {
		if !strings.Contains(texto, t) {
			return false
		}
	}
	return true
}

// SugerirSKU genera un SKU desde las iniciales del nombre del producto:
// sin tildes, en mayúsculas, los caracteres no alfanuméricos separan palabras,
// máximo 10 caracteres. Devuelve cadena vacía si el nombre no aporta nada.
func SugerirSKU(nombre string) string {
	limpio, _, err := transform.String(quitarDiacriticos, nombre)
	if err != nil {
		limpio = nombre
	}
	limpio = strings.ToUpper(limpio)
	limpio = strings.Map(func(r rune) rune {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return ' '
	}, limpio)

	var b strings.Builder
	for _, palabra := range strings.Fields(limpio) {
		b.WriteByte(palabra[0])
		if b.Len() == 10 {
			break
		}
	}
	return b.String()
}

// Display arma la cadena canónica de presentación de un producto:
// "SKU - nombre (unidad)". Si no hay unidad de medida se usa "UN".
func Display(p entity.Producto) string {
	unidad := p.UnidadMedida
	if unidad == "" {
		unidad = "UN"
	}
	return p.SKUProducto + " - " + p.NombreProducto + " (" + unidad + ")"
}
