package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/espacio-evento/espacio-ui/internal/ports"
)

// PaymentWatcherOptions groups dependencies for PaymentWatcher.
type PaymentWatcherOptions struct {
	Inscripciones ports.InscripcionesAPI
	Sessions      ports.SessionStore
	// Interval between sweeps. Zero means the default.
	Interval time.Duration
	// MaxAge drops a watch that never confirmed. Zero means the default.
	MaxAge time.Duration
	Logger *slog.Logger
}

const (
	defaultWatchInterval = 15 * time.Second
	defaultWatchMaxAge   = 30 * time.Minute
)

// PaymentWatcher re-checks pending payments against the backend in the
// background. When a user is sent to an external checkout, the outcome
// arrives out of band; rather than assuming success after a fixed
// delay, the watcher polls the authoritative registration state until
// the backend reports it paid or the watch ages out.
type PaymentWatcher struct {
	inscripciones ports.InscripcionesAPI
	sessions      ports.SessionStore
	interval      time.Duration
	maxAge        time.Duration
	logger        *slog.Logger

	mu      sync.Mutex
	watches map[int]watchEntry
}

type watchEntry struct {
	sessionID string
	addedAt   time.Time
}

// NewPaymentWatcher constructs a new PaymentWatcher.
func NewPaymentWatcher(opts PaymentWatcherOptions) *PaymentWatcher {
	interval := opts.Interval
	if interval <= 0 {
		interval = defaultWatchInterval
	}
	maxAge := opts.MaxAge
	if maxAge <= 0 {
		maxAge = defaultWatchMaxAge
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &PaymentWatcher{
		inscripciones: opts.Inscripciones,
		sessions:      opts.Sessions,
		interval:      interval,
		maxAge:        maxAge,
		logger:        logger,
		watches:       make(map[int]watchEntry),
	}
}

// Watch starts tracking an inscription whose payer was just sent to
// checkout. The session ID is kept instead of the token so an expired
// session naturally ends the watch.
func (w *PaymentWatcher) Watch(sessionID string, idInscripcion int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.watches[idInscripcion] = watchEntry{sessionID: sessionID, addedAt: time.Now()}
}

// Pending reports the number of live watches. Test helper.
func (w *PaymentWatcher) Pending() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.watches)
}

// Run sweeps pending watches until the context is cancelled.
func (w *PaymentWatcher) Run(ctx context.Context) error {
	w.logger.InfoContext(ctx, "starting payment watcher", "interval", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.InfoContext(ctx, "payment watcher stopping", "reason", ctx.Err())
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep checks every watched inscription once, dropping the confirmed
// and the aged-out ones. Exported so tests can drive it directly.
func (w *PaymentWatcher) Sweep(ctx context.Context) {
	w.mu.Lock()
	pending := make(map[int]watchEntry, len(w.watches))
	for id, entry := range w.watches {
		pending[id] = entry
	}
	w.mu.Unlock()

	for id, entry := range pending {
		if time.Since(entry.addedAt) > w.maxAge {
			w.drop(id)
			w.logger.WarnContext(ctx, "payment never confirmed", "inscripcion", id)
			continue
		}

		sess, err := w.sessions.Get(ctx, entry.sessionID)
		if err != nil {
			// Session gone; nobody is waiting for this payment anymore.
			w.drop(id)
			continue
		}

		mias, err := w.inscripciones.ListByUsuario(ctx, sess.User.IDUsuario, sess.Token)
		if err != nil {
			w.logger.ErrorContext(ctx, "payment watch check failed", "inscripcion", id, "error", err)
			continue
		}
		for _, insc := range mias {
			if insc.IDInscripcion == id {
				if insc.Pagada() {
					w.drop(id)
					w.logger.InfoContext(ctx, "payment confirmed", "inscripcion", id)
				}
				break
			}
		}
	}
}

func (w *PaymentWatcher) drop(idInscripcion int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.watches, idInscripcion)
}
