package service

import (
	"testing"

	"github.com/drivehub/rental-service/rental/internal/model"
	"github.com/stretchr/testify/require"
)

func TestValidTransition(t *testing.T) {
	t.Parallel()
	allowed := []struct{ from, to model.BookingStatus }{
		{model.StatusPending, model.StatusConfirmed},
		{model.StatusPending, model.StatusCancelled},
		{model.StatusConfirmed, model.StatusOngoing},
		{model.StatusConfirmed, model.StatusCancelled},
		{model.StatusOngoing, model.StatusCompleted},
	}
	for _, tr := range allowed {
		require.True(t, ValidTransition(tr.from, tr.to), "%s -> %s", tr.from, tr.to)
	}

	denied := []struct{ from, to model.BookingStatus }{
		{model.StatusPending, model.StatusOngoing},
		{model.StatusPending, model.StatusCompleted},
		{model.StatusConfirmed, model.StatusCompleted},
		{model.StatusOngoing, model.StatusCancelled},
		{model.StatusCompleted, model.StatusOngoing},
		{model.StatusCancelled, model.StatusConfirmed},
		{model.StatusConfirmed, model.StatusConfirmed},
	}
	for _, tr := range denied {
		require.False(t, ValidTransition(tr.from, tr.to), "%s -> %s", tr.from, tr.to)
	}
}
