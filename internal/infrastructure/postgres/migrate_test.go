package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigracionEmbebida(t *testing.T) {
	up, err := migrationsFS.ReadFile("migrations/000001_esquema_oltp.up.sql")
	require.NoError(t, err)
	esquema := string(up)

	// El número de documento de venta es único a nivel de base; el de compra no.
	assert.Contains(t, esquema, "numero_documento  TEXT NOT NULL UNIQUE")
	assert.Contains(t, esquema, "numero_documento TEXT NOT NULL,",
		"numero_documento de compra no lleva constraint de unicidad")

	for _, tabla := range []string{
		"oltp_proveedores", "oltp_productos", "oltp_compras",
		"oltp_compras_detalle", "oltp_ventas", "oltp_ventas_detalle",
	} {
		assert.Contains(t, esquema, "CREATE TABLE IF NOT EXISTS "+tabla, tabla)
	}

	down, err := migrationsFS.ReadFile("migrations/000001_esquema_oltp.down.sql")
	require.NoError(t, err)
	assert.Contains(t, string(down), "DROP TABLE")
}
