package sms

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

// ConsoleSender is the development stand-in for a real SMS gateway. It only
// confirms acceptance, never delivery, so sweeps record the "sent" outcome.
type ConsoleSender struct{}

func NewConsoleSender() *ConsoleSender {
	log.Println("Initialized Console SMS Sender (Placeholder)")
	return &ConsoleSender{}
}

func (s *ConsoleSender) Send(ctx context.Context, phone, message string) (string, bool, error) {
	select {
	case <-time.After(50 * time.Millisecond):
		fmt.Printf("\n--- SMS (CONSOLE) ---\n")
		fmt.Printf("To:      %s\n", phone)
		fmt.Printf("Message: %s\n", message)
		fmt.Printf("--- END SMS ---\n")
		return "console-" + uuid.NewString(), false, nil
	case <-ctx.Done():
		log.Printf("SMS (CANCELLED): To=[%s]", phone)
		return "", false, ctx.Err()
	}
}
