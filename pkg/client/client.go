// Package client expone un cliente HTTP tipado para la API de gestión de
// boletas. Lo usan la aplicación de terminal y los paquetes de flujo de
// trabajo (almacen, borrador).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tu-usuario/gestion-boletas/internal/application/dto"
)

// APIError es un error devuelto por la API con cuerpo JSON estructurado.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s: %s", e.Status, e.Code, e.Message)
}

// EsConflicto indica si el error es un 409 (número de documento duplicado).
func (e *APIError) EsConflicto() bool { return e.Status == http.StatusConflict }

// EsNoEncontrado indica si el error es un 404.
func (e *APIError) EsNoEncontrado() bool { return e.Status == http.StatusNotFound }

// Client es el cliente REST de la API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New construye el cliente apuntando a baseURL (ej: "http://localhost:3000")
// con un timeout de red de 30 s.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewWithHTTPClient construye el cliente con un *http.Client propio,
// útil en tests.
func NewWithHTTPClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: baseURL, httpClient: hc}
}

// do ejecuta la petición y decodifica la respuesta en out (si out != nil).
// Un estado fuera de 2xx se devuelve como *APIError.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("crear petición: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr dto.ErrorResponse
		raw, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(raw, &apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = string(raw)
		}
		return &APIError{Status: resp.StatusCode, Code: apiErr.Code, Message: apiErr.Message}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decodificar respuesta: %w", err)
	}
	return nil
}

// Health consulta el estado del servicio.
func (c *Client) Health(ctx context.Context) (*dto.HealthResponse, error) {
	var out dto.HealthResponse
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Proveedores ───────────────────────────────────────────────────────────────

func (c *Client) ListarProveedores(ctx context.Context) ([]dto.ProveedorResponse, error) {
	var out []dto.ProveedorResponse
	if err := c.do(ctx, http.MethodGet, "/api/proveedores", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ObtenerProveedor(ctx context.Context, id int64) (*dto.ProveedorResponse, error) {
	var out dto.ProveedorResponse
	if err := c.do(ctx, http.MethodGet, "/api/proveedores/"+formatID(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CrearProveedor(ctx context.Context, in dto.ProveedorRequest) (*dto.ProveedorResponse, error) {
	var out dto.ProveedorResponse
	if err := c.do(ctx, http.MethodPost, "/api/proveedores", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ActualizarProveedor(ctx context.Context, id int64, in dto.ProveedorRequest) (*dto.ProveedorResponse, error) {
	var out dto.ProveedorResponse
	if err := c.do(ctx, http.MethodPut, "/api/proveedores/"+formatID(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EliminarProveedor desactiva el proveedor (borrado lógico).
func (c *Client) EliminarProveedor(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/proveedores/"+formatID(id), nil, nil)
}

// ── Productos ─────────────────────────────────────────────────────────────────

func (c *Client) ListarProductos(ctx context.Context) ([]dto.ProductoResponse, error) {
	var out []dto.ProductoResponse
	if err := c.do(ctx, http.MethodGet, "/api/productos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ObtenerProducto(ctx context.Context, id int64) (*dto.ProductoResponse, error) {
	var out dto.ProductoResponse
	if err := c.do(ctx, http.MethodGet, "/api/productos/"+formatID(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CrearProducto(ctx context.Context, in dto.ProductoRequest) (*dto.ProductoResponse, error) {
	var out dto.ProductoResponse
	if err := c.do(ctx, http.MethodPost, "/api/productos", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ActualizarProducto(ctx context.Context, id int64, in dto.ProductoRequest) (*dto.ProductoResponse, error) {
	var out dto.ProductoResponse
	if err := c.do(ctx, http.MethodPut, "/api/productos/"+formatID(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EliminarProducto desactiva el producto (borrado lógico).
func (c *Client) EliminarProducto(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/productos/"+formatID(id), nil, nil)
}

// ── Compras ───────────────────────────────────────────────────────────────────

func (c *Client) ListarCompras(ctx context.Context) ([]dto.CompraConDetallesResponse, error) {
	var out []dto.CompraConDetallesResponse
	if err := c.do(ctx, http.MethodGet, "/api/compras", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ObtenerCompra(ctx context.Context, id int64) (*dto.CompraConDetallesResponse, error) {
	var out dto.CompraConDetallesResponse
	if err := c.do(ctx, http.MethodGet, "/api/compras/"+formatID(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CrearCompra(ctx context.Context, in dto.CompraRequest) (*dto.CompraResponse, error) {
	var out dto.CompraResponse
	if err := c.do(ctx, http.MethodPost, "/api/compras", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ActualizarCompra(ctx context.Context, id int64, in dto.CompraRequest) (*dto.CompraResponse, error) {
	var out dto.CompraResponse
	if err := c.do(ctx, http.MethodPut, "/api/compras/"+formatID(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EliminarCompra borra la compra junto con sus detalles.
func (c *Client) EliminarCompra(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/compras/"+formatID(id), nil, nil)
}

// CheckDocumentoCompra verifica si un número de documento de compra ya existe.
func (c *Client) CheckDocumentoCompra(ctx context.Context, numero string) (*dto.CheckDocumentoCompraResponse, error) {
	var out dto.CheckDocumentoCompraResponse
	path := "/api/compras/check-documento/" + url.PathEscape(numero)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Detalles de compra ────────────────────────────────────────────────────────

// ListarComprasDetalles lista las líneas de compra; idCompra nil lista todas.
func (c *Client) ListarComprasDetalles(ctx context.Context, idCompra *int64) ([]dto.CompraDetalleListadoResponse, error) {
	path := "/api/compras-detalles"
	if idCompra != nil {
		path += "?id_compra=" + formatID(*idCompra)
	}
	var out []dto.CompraDetalleListadoResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ObtenerCompraDetalle(ctx context.Context, id int64) (*dto.CompraDetalleResponse, error) {
	var out dto.CompraDetalleResponse
	if err := c.do(ctx, http.MethodGet, "/api/compras-detalles/"+formatID(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CrearCompraDetalle(ctx context.Context, in dto.CompraDetalleRequest) (*dto.CompraDetalleResponse, error) {
	var out dto.CompraDetalleResponse
	if err := c.do(ctx, http.MethodPost, "/api/compras-detalles", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ActualizarCompraDetalle(ctx context.Context, id int64, in dto.CompraDetalleRequest) (*dto.CompraDetalleResponse, error) {
	var out dto.CompraDetalleResponse
	if err := c.do(ctx, http.MethodPut, "/api/compras-detalles/"+formatID(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) EliminarCompraDetalle(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/compras-detalles/"+formatID(id), nil, nil)
}

// ── Ventas ────────────────────────────────────────────────────────────────────

func (c *Client) ListarVentas(ctx context.Context) ([]dto.VentaResponse, error) {
	var out []dto.VentaResponse
	if err := c.do(ctx, http.MethodGet, "/api/ventas", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ObtenerVenta(ctx context.Context, id int64) (*dto.VentaConDetallesResponse, error) {
	var out dto.VentaConDetallesResponse
	if err := c.do(ctx, http.MethodGet, "/api/ventas/"+formatID(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CrearVenta da de alta una venta. Un número de documento repetido produce
// un *APIError con EsConflicto() == true.
func (c *Client) CrearVenta(ctx context.Context, in dto.VentaRequest) (*dto.VentaResponse, error) {
	var out dto.VentaResponse
	if err := c.do(ctx, http.MethodPost, "/api/ventas", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ActualizarVenta(ctx context.Context, id int64, in dto.VentaRequest) (*dto.VentaResponse, error) {
	var out dto.VentaResponse
	if err := c.do(ctx, http.MethodPut, "/api/ventas/"+formatID(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EliminarVenta borra la venta junto con sus detalles.
func (c *Client) EliminarVenta(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/ventas/"+formatID(id), nil, nil)
}

// CheckDocumentoVenta verifica si un número de documento de venta ya existe.
func (c *Client) CheckDocumentoVenta(ctx context.Context, numero string) (*dto.CheckDocumentoVentaResponse, error) {
	var out dto.CheckDocumentoVentaResponse
	path := "/api/ventas/check-documento/" + url.PathEscape(numero)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ── Detalles de venta ─────────────────────────────────────────────────────────

// ListarVentasDetalles lista las líneas de venta; idVenta nil lista todas.
func (c *Client) ListarVentasDetalles(ctx context.Context, idVenta *int64) ([]dto.VentaDetalleListadoResponse, error) {
	path := "/api/ventas-detalles"
	if idVenta != nil {
		path += "?id_venta=" + formatID(*idVenta)
	}
	var out []dto.VentaDetalleListadoResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ObtenerVentaDetalle(ctx context.Context, id int64) (*dto.VentaDetalleResponse, error) {
	var out dto.VentaDetalleResponse
	if err := c.do(ctx, http.MethodGet, "/api/ventas-detalles/"+formatID(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CrearVentaDetalle(ctx context.Context, in dto.VentaDetalleRequest) (*dto.VentaDetalleResponse, error) {
	var out dto.VentaDetalleResponse
	if err := c.do(ctx, http.MethodPost, "/api/ventas-detalles", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ActualizarVentaDetalle(ctx context.Context, id int64, in dto.VentaDetalleRequest) (*dto.VentaDetalleResponse, error) {
	var out dto.VentaDetalleResponse
	if err := c.do(ctx, http.MethodPut, "/api/ventas-detalles/"+formatID(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) EliminarVentaDetalle(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/ventas-detalles/"+formatID(id), nil, nil)
}

func formatID(id int64) string { return strconv.FormatInt(id, 10) }
