package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/espacio-evento/espacio-ui/internal/adapters/memory"
	"github.com/espacio-evento/espacio-ui/internal/domain/model"
	backendmocks "github.com/espacio-evento/espacio-ui/internal/mocks/backend"
)

func TestPaymentWatcher_SweepDropsConfirmed(t *testing.T) {
	sessions := memory.NewSessionStore()
	sess := testSession(2, "asistente")
	require.NoError(t, sessions.Save(context.Background(), *sess))

	inscripciones := &backendmocks.MockInscripcionesAPI{Inscripciones: []model.Inscripcion{
		{IDInscripcion: 1, IDUsuario: 2, IDEvento: 1, EstadoPago: model.PagoPagado},
	}}

	w := NewPaymentWatcher(PaymentWatcherOptions{Inscripciones: inscripciones, Sessions: sessions})
	w.Watch(sess.ID, 1)
	require.Equal(t, 1, w.Pending())

	w.Sweep(context.Background())

	assert.Equal(t, 0, w.Pending())
}

func TestPaymentWatcher_SweepKeepsPending(t *testing.T) {
	sessions := memory.NewSessionStore()
	sess := testSession(2, "asistente")
	require.NoError(t, sessions.Save(context.Background(), *sess))

	inscripciones := &backendmocks.MockInscripcionesAPI{Inscripciones: []model.Inscripcion{
		{IDInscripcion: 1, IDUsuario: 2, IDEvento: 1, EstadoPago: model.PagoPendiente},
	}}

	w := NewPaymentWatcher(PaymentWatcherOptions{Inscripciones: inscripciones, Sessions: sessions})
	w.Watch(sess.ID, 1)

	w.Sweep(context.Background())

	assert.Equal(t, 1, w.Pending(), "unpaid inscription stays watched")
}

func TestPaymentWatcher_SweepDropsWhenSessionGone(t *testing.T) {
	w := NewPaymentWatcher(PaymentWatcherOptions{
		Inscripciones: &backendmocks.MockInscripcionesAPI{},
		Sessions:      memory.NewSessionStore(),
	})
	w.Watch("expired-session", 1)

	w.Sweep(context.Background())

	assert.Equal(t, 0, w.Pending())
}

func TestPaymentWatcher_SweepDropsAgedOut(t *testing.T) {
	sessions := memory.NewSessionStore()
	sess := testSession(2, "asistente")
	require.NoError(t, sessions.Save(context.Background(), *sess))

	w := NewPaymentWatcher(PaymentWatcherOptions{
		Inscripciones: &backendmocks.MockInscripcionesAPI{},
		Sessions:      sessions,
		MaxAge:        time.Millisecond,
	})
	w.Watch(sess.ID, 1)
	time.Sleep(5 * time.Millisecond)

	w.Sweep(context.Background())

	assert.Equal(t, 0, w.Pending())
}

func TestPaymentWatcher_RunStopsOnCancel(t *testing.T) {
	w := NewPaymentWatcher(PaymentWatcherOptions{
		Inscripciones: &backendmocks.MockInscripcionesAPI{},
		Sessions:      memory.NewSessionStore(),
		Interval:      time.Millisecond,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err, "cancellation is a clean stop")
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop on cancel")
	}
}
