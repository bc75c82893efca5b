package sms

import (
	"context"
	"sync"

	"github.com/allseasons/tiredepot/internal/apperrors"
)

// StaticDirectory is an in-process customer phone table. Real deployments put
// a CRM client behind the same interface; the core only ever asks for a phone
// number.
type StaticDirectory struct {
	mu     sync.RWMutex
	phones map[string]string
}

func NewStaticDirectory(phones map[string]string) *StaticDirectory {
	if phones == nil {
		phones = make(map[string]string)
	}
	return &StaticDirectory{phones: phones}
}

func (d *StaticDirectory) Phone(ctx context.Context, customerID string) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	phone, ok := d.phones[customerID]
	if !ok {
		return "", apperrors.NotFoundf("no phone number on file for customer %s", customerID)
	}
	return phone, nil
}

func (d *StaticDirectory) SetPhone(customerID, phone string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.phones[customerID] = phone
}
