package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/iskina-storefront/internal/usecase/availability"
)

type stubAvailability struct {
	err error
}

func (s *stubAvailability) Gate(ctx context.Context) error {
	return s.err
}

func TestBegin_CreatesSessionWithRoomNumber(t *testing.T) {
	svc := NewService(NewStore(), &stubAvailability{})

	sess, err := svc.Begin(context.Background(), "101")
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)
	require.Equal(t, "101", sess.RoomNumber)
	require.NotNil(t, sess.Cart)
	require.Nil(t, sess.Checkout)
}

func TestBegin_RefusedWhileStoreClosed(t *testing.T) {
	svc := NewService(NewStore(), &stubAvailability{err: availability.ErrTemporarilyClosed})

	_, err := svc.Begin(context.Background(), "101")
	require.ErrorIs(t, err, availability.ErrTemporarilyClosed)
}

func TestBegin_RequiresRoomNumber(t *testing.T) {
	svc := NewService(NewStore(), &stubAvailability{})

	_, err := svc.Begin(context.Background(), "   ")
	require.ErrorIs(t, err, ErrRoomRequired)
}

func TestStore_GetAndDelete(t *testing.T) {
	store := NewStore()
	sess, err := store.Create("202")
	require.NoError(t, err)

	got, err := store.Get(sess.ID)
	require.NoError(t, err)
	require.Same(t, sess, got)

	store.Delete(sess.ID)
	_, err = store.Get(sess.ID)
	require.ErrorIs(t, err, ErrSessionNotFound)
}
