package sms

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allseasons/tiredepot/internal/apperrors"
)

func TestStaticDirectory(t *testing.T) {
	t.Run("known customer", func(t *testing.T) {
		d := NewStaticDirectory(map[string]string{"cust-1": "+4791000001"})

		phone, err := d.Phone(context.Background(), "cust-1")
		require.NoError(t, err)
		assert.Equal(t, "+4791000001", phone)
	})

	t.Run("unknown customer", func(t *testing.T) {
		d := NewStaticDirectory(nil)

		_, err := d.Phone(context.Background(), "cust-9")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("set phone", func(t *testing.T) {
		d := NewStaticDirectory(nil)
		d.SetPhone("cust-1", "+4791000002")

		phone, err := d.Phone(context.Background(), "cust-1")
		require.NoError(t, err)
		assert.Equal(t, "+4791000002", phone)
	})
}

func TestConsoleSender(t *testing.T) {
	t.Run("accepts without delivery receipt", func(t *testing.T) {
		s := NewConsoleSender()

		externalID, delivered, err := s.Send(context.Background(), "+4791000001", "hello")
		require.NoError(t, err)
		assert.False(t, delivered)
		assert.Contains(t, externalID, "console-")
	})

	t.Run("honors cancellation", func(t *testing.T) {
		s := NewConsoleSender()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := s.Send(ctx, "+4791000001", "hello")
		assert.ErrorIs(t, err, context.Canceled)
	})
}
