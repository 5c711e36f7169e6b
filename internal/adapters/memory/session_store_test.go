package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	redisstore "github.com/espacio-evento/espacio-ui/internal/adapters/redis"
	domainauth "github.com/espacio-evento/espacio-ui/internal/domain/auth"
	"github.com/espacio-evento/espacio-ui/internal/domain/model"
)

func testMemSession(id string, expiresAt time.Time) domainauth.Session {
	return domainauth.Session{
		ID:        id,
		Token:     "tok-1",
		User:      model.Usuario{IDUsuario: 1, Nombre: "Ana", Roles: []string{"asistente"}},
		CreatedAt: time.Now(),
		ExpiresAt: expiresAt,
	}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()
	sess := testMemSession("s-1", time.Now().Add(time.Hour))

	require.NoError(t, store.Save(ctx, sess))
	require.Equal(t, 1, store.Len())

	got, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, sess.Token, got.Token)
	assert.Equal(t, sess.User.IDUsuario, got.User.IDUsuario)
}

func TestSessionStore_GetMissing(t *testing.T) {
	store := NewSessionStore()

	_, err := store.Get(context.Background(), "nope")

	assert.ErrorIs(t, err, redisstore.ErrNotFound)
}

func TestSessionStore_SaveRejectsInvalid(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	require.Error(t, store.Save(ctx, testMemSession("", time.Now().Add(time.Hour))))

	incomplete := testMemSession("s-2", time.Now().Add(time.Hour))
	incomplete.Token = ""
	require.Error(t, store.Save(ctx, incomplete))

	require.Error(t, store.Save(ctx, testMemSession("s-3", time.Now().Add(-time.Minute))))
	assert.Equal(t, 0, store.Len())
}

func TestSessionStore_ExpiredRecordCleared(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	sess := testMemSession("s-4", time.Now().Add(30*time.Millisecond))
	require.NoError(t, store.Save(ctx, sess))

	time.Sleep(50 * time.Millisecond)

	_, err := store.Get(ctx, "s-4")
	assert.ErrorIs(t, err, redisstore.ErrNotFound)
	assert.Equal(t, 0, store.Len(), "expired record is dropped on read")
}

func TestSessionStore_Delete(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testMemSession("s-5", time.Now().Add(time.Hour))))
	require.NoError(t, store.Delete(ctx, "s-5"))
	assert.Equal(t, 0, store.Len())

	// Deleting twice is a no-op.
	require.NoError(t, store.Delete(ctx, "s-5"))
}
