//go:build unit

package cartstore

import (
	"testing"

	"jersey-storefront/internal/domain/cart"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeLines(t *testing.T) {
	t.Run("unknown sizes are dropped and counted", func(t *testing.T) {
		data := []byte(`{"version":1,"lines":[
			{"id":"a","kind":"stock","product_id":1,"size":"m","unit_price":"10","quantity":1},
			{"id":"b","kind":"stock","product_id":2,"size":"XXXXL","unit_price":"10","quantity":1},
			{"id":"c","kind":"stock","product_id":3,"size":"","unit_price":"10","quantity":1}
		]}`)

		lines, dropped, err := decodeLines(data)

		require.NoError(t, err)
		assert.Equal(t, 2, dropped)
		require.Len(t, lines, 1)
		assert.Equal(t, cart.SizeM, lines[0].Size)
	})

	t.Run("numeric unit prices are accepted", func(t *testing.T) {
		data := []byte(`{"version":1,"lines":[{"id":"a","kind":"stock","product_id":1,"size":"L","unit_price":12.5,"quantity":2}]}`)

		lines, _, err := decodeLines(data)

		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, "12.5", lines[0].UnitPrice.String())
	})

	t.Run("garbage is an error", func(t *testing.T) {
		_, _, err := decodeLines([]byte("not json"))
		assert.Error(t, err)
	})
}
