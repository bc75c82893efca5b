package label

import (
	"encoding/json"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/allseasons/tiredepot/internal/custody"
)

const defaultSize = 256

// QRRenderer turns the lookup payload into a scannable PNG. The payload is
// embedded as JSON so a plain phone camera resolves all fields without a
// round-trip to the service.
type QRRenderer struct {
	size int
}

func NewQRRenderer() *QRRenderer {
	return &QRRenderer{size: defaultSize}
}

func (r *QRRenderer) Render(payload custody.LabelPayload) ([]byte, error) {
	content, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal label payload: %w", err)
	}
	png, err := qrcode.Encode(string(content), qrcode.Medium, r.size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}
	return png, nil
}
