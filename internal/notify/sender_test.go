package notify

import (
	"context"
	"fmt"
	"testing"

	"github.com/Domenick1991/dentaltrip/internal/kafka"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSender_Send(t *testing.T) {
	var lines []string
	s := &Sender{logf: func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}}
	ctx := context.Background()

	require.NoError(t, s.Send(ctx, kafka.BookingEvent{
		Type:      kafka.EventBookingCreated,
		BookingID: 7,
		Name:      "Sara",
		Phone:     "+20100",
		Service:   "Dental Implants",
		Date:      "2025-03-02",
		Time:      "10:00",
		Country:   "Egypt",
	}))
	require.NoError(t, s.Send(ctx, kafka.BookingEvent{Type: kafka.EventBookingDeleted, BookingID: 7}))

	require.Len(t, lines, 1)
	assert.Equal(t, "[notify] New consultation request #7: Sara (+20100) for Dental Implants on 2025-03-02 at 10:00, from Egypt", lines[0])
}
