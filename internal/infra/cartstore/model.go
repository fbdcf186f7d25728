package cartstore

import (
	"encoding/json"

	"jersey-storefront/internal/domain/cart"

	"github.com/shopspring/decimal"
)

const modelVersion = 1

type cartModel struct {
	Version int         `json:"version"`
	Lines   []lineModel `json:"lines"`
}

type lineModel struct {
	ID        string                 `json:"id"`
	Kind      string                 `json:"kind"`
	ProductID int64                  `json:"product_id,omitempty"`
	Custom    *cart.CustomDescriptor `json:"custom,omitempty"`
	Size      string                 `json:"size"`
	UnitPrice decimal.Decimal        `json:"unit_price"`
	Quantity  int                    `json:"quantity"`
}

func encodeLines(lines []cart.Line) ([]byte, error) {
	m := cartModel{Version: modelVersion, Lines: make([]lineModel, 0, len(lines))}
	for _, l := range lines {
		m.Lines = append(m.Lines, lineModel{
			ID:        l.ID,
			Kind:      string(l.Kind),
			ProductID: l.ProductID,
			Custom:    l.Custom,
			Size:      l.Size.String(),
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		})
	}
	return json.Marshal(m)
}

// decodeLines returns the stored lines and the number of entries it had to drop.
func decodeLines(data []byte) ([]cart.Line, int, error) {
	var m cartModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, 0, err
	}

	lines := make([]cart.Line, 0, len(m.Lines))
	dropped := 0
	for _, lm := range m.Lines {
		size, err := cart.ParseSize(lm.Size)
		if err != nil {
			dropped++
			continue
		}
		lines = append(lines, cart.Line{
			ID:        lm.ID,
			Kind:      cart.Kind(lm.Kind),
			ProductID: lm.ProductID,
			Custom:    lm.Custom,
			Size:      size,
			UnitPrice: lm.UnitPrice,
			Quantity:  lm.Quantity,
		})
	}
	return lines, dropped, nil
}
