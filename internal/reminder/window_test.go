package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/allseasons/tiredepot/internal/repository"
)

func TestWindowContains(t *testing.T) {
	day := func(month, d int) time.Time {
		return time.Date(2026, time.Month(month), d, 12, 0, 0, 0, time.UTC)
	}

	t.Run("plain window", func(t *testing.T) {
		assert.True(t, windowContains("03-01", "04-30", day(3, 15)))
		assert.True(t, windowContains("03-01", "04-30", day(3, 1)))
		assert.True(t, windowContains("03-01", "04-30", day(4, 30)))
		assert.False(t, windowContains("03-01", "04-30", day(5, 1)))
		assert.False(t, windowContains("03-01", "04-30", day(2, 28)))
	})

	t.Run("window wrapping the year end", func(t *testing.T) {
		assert.True(t, windowContains("10-01", "01-31", day(11, 15)))
		assert.True(t, windowContains("10-01", "01-31", day(1, 10)))
		assert.False(t, windowContains("10-01", "01-31", day(6, 1)))
	})

	t.Run("missing bounds never match", func(t *testing.T) {
		assert.False(t, windowContains("", "04-30", day(3, 15)))
		assert.False(t, windowContains("03-01", "", day(3, 15)))
	})
}

func TestRenderMessage(t *testing.T) {
	rec := &repository.CustodyRecord{
		CustomerID: "cust-1",
		Season:     "winter",
		Location:   "A-R2-S3",
		Code:       "TD-X-YYYYYY",
		ExpiryDate: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	}

	msg := renderMessage("Hi {customer}, your {season} tires ({code}) wait at {location} until {expiry}.", rec)
	assert.Equal(t, "Hi cust-1, your winter tires (TD-X-YYYYYY) wait at A-R2-S3 until 2026-10-01.", msg)
}
