package busqueda_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-boletas/internal/domain/busqueda"
	"github.com/tu-usuario/gestion-boletas/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Normalizar
// ──────────────────────────────────────────────────────────────────────────────

func TestNormalizar_TildesYMayusculas(t *testing.T) {
	// "Café Ñandú" y "cafe nandu" deben producir la misma forma de comparación.
	assert.Equal(t, busqueda.Normalizar("Café Ñandú"), busqueda.Normalizar("cafe nandu"))
	assert.Equal(t, "cafe nandu", busqueda.Normalizar("  Café   Ñandú  "))
}

func TestNormalizar_ColapsaEspacios(t *testing.T) {
	assert.Equal(t, "azucar rubia", busqueda.Normalizar("AZÚCAR \t Rubia"))
	assert.Equal(t, "", busqueda.Normalizar("   "))
}

// ──────────────────────────────────────────────────────────────────────────────
// Buscar
// ──────────────────────────────────────────────────────────────────────────────

func catalogoDePrueba() []entity.Producto {
	return []entity.Producto{
		{IDProducto: 1, SKUProducto: "CN", NombreProducto: "Café Ñandú", UnidadMedida: "UN", Estado: entity.EstadoActivo},
		{IDProducto: 2, SKUProducto: "AR", NombreProducto: "Azúcar Rubia", UnidadMedida: "KG", Estado: entity.EstadoActivo},
		{IDProducto: 3, SKUProducto: "CT", NombreProducto: "Café Torrado", UnidadMedida: "UN", Estado: entity.EstadoInactivo},
	}
}

func TestBuscar_TokensEnCualquierOrden(t *testing.T) {
	// "ñan caf" debe coincidir con "Café Ñandú" aunque los tokens vengan invertidos.
	matches := busqueda.Buscar(catalogoDePrueba(), "ñan caf")
	require.Len(t, matches, 1)
	assert.Equal(t, int64(1), matches[0].IDProducto)
}

func TestBuscar_BuscaPorSKU(t *testing.T) {
	matches := busqueda.Buscar(catalogoDePrueba(), "ar")
	require.Len(t, matches, 1)
	assert.Equal(t, "Azúcar Rubia", matches[0].NombreProducto)
}

func TestBuscar_ExcluyeInactivos(t *testing.T) {
	// "Café Torrado" está INACTIVO: no debe aparecer en sugerencias.
	matches := busqueda.Buscar(catalogoDePrueba(), "café")
	require.Len(t, matches, 1)
	assert.Equal(t, int64(1), matches[0].IDProducto)
}

func TestBuscar_ConsultaVacia(t *testing.T) {
	assert.Nil(t, busqueda.Buscar(catalogoDePrueba(), ""))
	assert.Nil(t, busqueda.Buscar(catalogoDePrueba(), "   "))
}

func TestBuscar_SinCoincidencias(t *testing.T) {
	assert.Empty(t, busqueda.Buscar(catalogoDePrueba(), "fideos"))
	// Todos los tokens deben coincidir, no basta uno.
	assert.Empty(t, busqueda.Buscar(catalogoDePrueba(), "café fideos"))
}

func TestBuscar_CorteEnDiezResultados(t *testing.T) {
	var productos []entity.Producto
	for i := 1; i <= 25; i++ {
		productos = append(productos, entity.Producto{
			IDProducto:     int64(i),
			SKUProducto:    "HAR",
			NombreProducto: "Harina",
			Estado:         entity.EstadoActivo,
		})
	}
	matches := busqueda.Buscar(productos, "harina")
	require.Len(t, matches, busqueda.MaxResultados)
	// Se respeta el orden de la colección: los primeros diez.
	assert.Equal(t, int64(1), matches[0].IDProducto)
	assert.Equal(t, int64(10), matches[9].IDProducto)
}

// ──────────────────────────────────────────────────────────────────────────────
// SugerirSKU / Display
// ──────────────────────────────────────────────────────────────────────────────

func TestSugerirSKU(t *testing.T) {
	casos := []struct {
		nombre string
		sku    string
	}{
		{"Café Ñandú", "CN"},
		{"azúcar rubia 1 kg", "AR1K"},
		{"  Harina   sin preparar ", "HSP"},
		{"!!!", ""},
		{"", ""},
		{"a b c d e f g h i j k l", "ABCDEFGHIJ"}, // corta en 10
	}
	for _, c := range casos {
		assert.Equal(t, c.sku, busqueda.SugerirSKU(c.nombre), "nombre: %q", c.nombre)
	}
}

func TestDisplay(t *testing.T) {
	p := entity.Producto{SKUProducto: "CN", NombreProducto: "Café Ñandú", UnidadMedida: "UN"}
	assert.Equal(t, "CN - Café Ñandú (UN)", busqueda.Display(p))

	// Sin unidad de medida se usa UN por defecto.
	p.UnidadMedida = ""
	assert.Equal(t, "CN - Café Ñandú (UN)", busqueda.Display(p))
}
