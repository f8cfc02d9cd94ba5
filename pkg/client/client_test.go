package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/gestion-boletas/internal/application/dto"
	"github.com/tu-usuario/gestion-boletas/pkg/client"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// servidorFalso levanta un httptest.Server con las rutas mínimas que usan
// los casos de prueba.
func servidorFalso(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/proveedores", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]dto.ProveedorResponse{
			{IDProveedor: 1, RUC: "20100100100", NombreComercial: "Distribuidora Lima", Estado: "ACTIVO"},
			{IDProveedor: 2, RUC: "20200200200", NombreComercial: "Mayorista Sur", Estado: "ACTIVO"},
		})
	})

	mux.HandleFunc("GET /api/productos/99", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Producto no encontrado"})
	})

	mux.HandleFunc("POST /api/ventas", func(w http.ResponseWriter, r *http.Request) {
		var in dto.VentaRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if in.NumeroDocumento == "B001-00000001" {
			w.WriteHeader(http.StatusConflict)
			_ = json.NewEncoder(w).Encode(dto.ErrorResponse{
				Code:    "DUPLICATE",
				Message: "El número de documento ya existe. Debe ser único.",
			})
			return
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(dto.VentaResponse{IDVenta: 7, NumeroDocumento: in.NumeroDocumento})
	})

	mux.HandleFunc("GET /api/ventas/check-documento/", func(w http.ResponseWriter, r *http.Request) {
		existe := r.URL.Path == "/api/ventas/check-documento/B001-00000001"
		out := dto.CheckDocumentoVentaResponse{Exists: existe}
		if existe {
			id := int64(7)
			out.IDVenta = &id
		}
		_ = json.NewEncoder(w).Encode(out)
	})

	mux.HandleFunc("DELETE /api/compras/3", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestListarProveedores(t *testing.T) {
	srv := servidorFalso(t)
	c := client.New(srv.URL)

	proveedores, err := c.ListarProveedores(context.Background())
	require.NoError(t, err)
	require.Len(t, proveedores, 2)
	assert.Equal(t, "Distribuidora Lima", proveedores[0].NombreComercial)
}

func TestObtenerProducto_NoEncontrado(t *testing.T) {
	srv := servidorFalso(t)
	c := client.New(srv.URL)

	_, err := c.ObtenerProducto(context.Background(), 99)
	require.Error(t, err)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.EsNoEncontrado())
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
}

func TestCrearVenta_DocumentoDuplicado(t *testing.T) {
	srv := servidorFalso(t)
	c := client.New(srv.URL)

	_, err := c.CrearVenta(context.Background(), dto.VentaRequest{NumeroDocumento: "B001-00000001"})
	require.Error(t, err)

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.EsConflicto())
	assert.Equal(t, "DUPLICATE", apiErr.Code)
}

func TestCrearVenta_OK(t *testing.T) {
	srv := servidorFalso(t)
	c := client.New(srv.URL)

	venta, err := c.CrearVenta(context.Background(), dto.VentaRequest{NumeroDocumento: "B001-00000099"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), venta.IDVenta)
}

func TestCheckDocumentoVenta(t *testing.T) {
	srv := servidorFalso(t)
	c := client.New(srv.URL)

	out, err := c.CheckDocumentoVenta(context.Background(), "B001-00000001")
	require.NoError(t, err)
	assert.True(t, out.Exists)
	require.NotNil(t, out.IDVenta)
	assert.Equal(t, int64(7), *out.IDVenta)

	out, err = c.CheckDocumentoVenta(context.Background(), "B001-99999999")
	require.NoError(t, err)
	assert.False(t, out.Exists)
	assert.Nil(t, out.IDVenta)
}

func TestEliminarCompra_SinCuerpo(t *testing.T) {
	srv := servidorFalso(t)
	c := client.New(srv.URL)

	require.NoError(t, c.EliminarCompra(context.Background(), 3))
}
