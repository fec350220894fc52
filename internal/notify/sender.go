package notify

import (
	"context"
	"fmt"
	"log"

	"github.com/Domenick1991/dentaltrip/internal/kafka"
)

// Sender reports new consultation requests to the clinic through the log.
type Sender struct {
	logf func(format string, args ...any)
}

func NewSender() *Sender {
	return &Sender{logf: log.Printf}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	if event.Type != kafka.EventBookingCreated {
		return nil
	}
	s.logf("[notify] %s", Message(event))
	return nil
}

// Message is the human-readable notification text.
func Message(event kafka.BookingEvent) string {
	msg := fmt.Sprintf("New consultation request #%d: %s (%s) for %s on %s", event.BookingID, event.Name, event.Phone, event.Service, event.Date)
	if event.Time != "" {
		msg += " at " + event.Time
	}
	if event.Dentist != "" {
		msg += " with " + event.Dentist
	}
	if event.Country != "" {
		msg += ", from " + event.Country
	}
	return msg
}
