package data

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keynes-cross/internal/model"
	"keynes-cross/internal/simulation"
)

func TestResultStoreExpiry(t *testing.T) {
	res, err := simulation.New().Run(model.LumpSumParameters(50, 0.5, 20, 50, 20, 50), model.DefaultGrid())
	require.NoError(t, err)

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := NewResultStore(time.Minute)
	s.now = func() time.Time { return now }

	id := s.Put(res)
	assert.NotEmpty(t, id)

	got, ok := s.Get(id)
	require.True(t, ok)
	assert.Same(t, res, got)

	_, ok = s.Get("missing")
	assert.False(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = s.Get(id)
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())

	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 0, s.Len())
}

func TestResultStoreUniqueIDs(t *testing.T) {
	s := NewResultStore(0)
	a := s.Put(&simulation.Result{})
	b := s.Put(&simulation.Result{})
	assert.NotEqual(t, a, b)
	assert.Equal(t, time.Hour, s.ttl)
}
