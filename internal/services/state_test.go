package services

import (
	"testing"

	"github.com/dmitrijs2005/gophdash/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcaster_KeepsOnlyLatest(t *testing.T) {
	b := newBroadcaster()
	ch, cancel := b.subscribe()
	defer cancel()

	b.publish(State{IsLoading: true})
	b.publish(State{User: &models.User{Email: "a@b.c"}})

	st := <-ch
	require.True(t, st.IsAuthenticated())
	assert.False(t, st.IsLoading)

	select {
	case <-ch:
		t.Fatal("stale state left in buffer")
	default:
	}
}

func TestBroadcaster_FansOut(t *testing.T) {
	b := newBroadcaster()
	ch1, cancel1 := b.subscribe()
	ch2, cancel2 := b.subscribe()
	defer cancel2()

	cancel1()
	b.publish(State{IsLoading: true})

	_, open := <-ch1
	assert.False(t, open)
	assert.True(t, (<-ch2).IsLoading)
}

func TestState_IsAuthenticated(t *testing.T) {
	assert.False(t, State{}.IsAuthenticated())
	assert.True(t, State{User: &models.User{}}.IsAuthenticated())
}
