package favorites

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-city-explorer/internal/types"
)

func place(id, name string) types.PlaceCandidate {
	return types.PlaceCandidate{PlaceID: id, Name: name}
}

func TestFavorites(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("AddAndListKeepInsertionOrder", func(t *testing.T) {
		service := NewService(logger)

		require.NoError(t, service.Add(ctx, "session-a", place("p1", "first")))
		require.NoError(t, service.Add(ctx, "session-a", place("p2", "second")))

		saved := service.List(ctx, "session-a")
		require.Len(t, saved, 2)
		assert.Equal(t, "first", saved[0].Name)
		assert.Equal(t, "second", saved[1].Name)
	})

	t.Run("DuplicateAddIsRejected", func(t *testing.T) {
		service := NewService(logger)

		require.NoError(t, service.Add(ctx, "session-a", place("p1", "first")))
		err := service.Add(ctx, "session-a", place("p1", "first"))

		assert.Error(t, err)
		assert.Len(t, service.List(ctx, "session-a"), 1)
	})

	t.Run("SessionsAreIsolated", func(t *testing.T) {
		service := NewService(logger)

		require.NoError(t, service.Add(ctx, "session-a", place("p1", "mine")))

		assert.Len(t, service.List(ctx, "session-a"), 1)
		assert.Empty(t, service.List(ctx, "session-b"))
	})

	t.Run("RemoveDeletesOnlyTheNamedPlace", func(t *testing.T) {
		service := NewService(logger)

		require.NoError(t, service.Add(ctx, "session-a", place("p1", "first")))
		require.NoError(t, service.Add(ctx, "session-a", place("p2", "second")))

		require.NoError(t, service.Remove(ctx, "session-a", "p1"))

		saved := service.List(ctx, "session-a")
		require.Len(t, saved, 1)
		assert.Equal(t, "p2", saved[0].PlaceID)
	})

	t.Run("RemoveUnknownPlaceIsAnError", func(t *testing.T) {
		service := NewService(logger)

		assert.Error(t, service.Remove(ctx, "session-a", "missing"))
	})

	t.Run("ListReturnsACopy", func(t *testing.T) {
		service := NewService(logger)

		require.NoError(t, service.Add(ctx, "session-a", place("p1", "first")))

		saved := service.List(ctx, "session-a")
		saved[0].Name = "mutated"

		assert.Equal(t, "first", service.List(ctx, "session-a")[0].Name)
	})
}
