package label

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allseasons/tiredepot/internal/custody"
)

func TestQRRenderer_Render(t *testing.T) {
	renderer := NewQRRenderer()

	png, err := renderer.Render(custody.LabelPayload{
		Code:       "TD-X-YYYYYY",
		CustomerID: "cust-1",
		VehicleID:  "veh-1",
		Location:   "A-R1-S1",
		Date:       time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
