package members_test

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/firstweek/internal/server/models"
	"github.com/dmitrijs2005/firstweek/internal/server/repositories/members"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runRepositoryContract checks the behaviour every adapter must share.
// newRepo must return an empty repository.
func runRepositoryContract(t *testing.T, newRepo func(t *testing.T) members.Repository) {
	t.Helper()

	t.Run("save assigns id and find returns it", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		saved, err := repo.Save(ctx, &models.Member{Name: "Alice", Email: "a@x.com"})
		require.NoError(t, err)
		require.NotZero(t, saved.ID)

		got, ok, err := repo.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, models.Member{ID: saved.ID, Name: "Alice", Email: "a@x.com"}, *got)
	})

	t.Run("empty strings are accepted", func(t *testing.T) {
		repo := newRepo(t)

		saved, err := repo.Save(context.Background(), &models.Member{})
		require.NoError(t, err)
		assert.NotZero(t, saved.ID)
	})

	t.Run("find unknown id is absent without error", func(t *testing.T) {
		repo := newRepo(t)

		got, ok, err := repo.FindByID(context.Background(), 12345)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("find all on empty store", func(t *testing.T) {
		repo := newRepo(t)

		all, err := repo.FindAll(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})

	t.Run("resave updates in place without duplicating", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		saved, err := repo.Save(ctx, &models.Member{Name: "Alice", Email: "a@x.com"})
		require.NoError(t, err)
		id := saved.ID

		_, err = repo.Save(ctx, &models.Member{ID: id, Name: "Alice B", Email: "ab@x.com"})
		require.NoError(t, err)
		again, err := repo.Save(ctx, &models.Member{ID: id, Name: "Alice B", Email: "ab@x.com"})
		require.NoError(t, err)
		assert.Equal(t, id, again.ID)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, models.Member{ID: id, Name: "Alice B", Email: "ab@x.com"}, all[0])
	})

	t.Run("save with unknown id inserts a fresh row", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		first, err := repo.Save(ctx, &models.Member{Name: "Alice", Email: "a@x.com"})
		require.NoError(t, err)

		ghost, err := repo.Save(ctx, &models.Member{ID: first.ID + 1000, Name: "Ghost", Email: "g@x.com"})
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, ghost.ID)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("delete removes only the target", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		alice, err := repo.Save(ctx, &models.Member{Name: "Alice", Email: "a@x.com"})
		require.NoError(t, err)
		bob, err := repo.Save(ctx, &models.Member{Name: "Bob", Email: "b@x.com"})
		require.NoError(t, err)

		require.NoError(t, repo.DeleteByID(ctx, alice.ID))

		_, ok, err := repo.FindByID(ctx, alice.ID)
		require.NoError(t, err)
		assert.False(t, ok)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, bob.ID, all[0].ID)
	})

	t.Run("delete unknown id is a no-op", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		bob, err := repo.Save(ctx, &models.Member{Name: "Bob", Email: "b@x.com"})
		require.NoError(t, err)

		require.NoError(t, repo.DeleteByID(ctx, bob.ID+1000))

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("alice and bob scenario", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		alice, err := repo.Save(ctx, &models.Member{Name: "Alice", Email: "a@x.com"})
		require.NoError(t, err)
		bob, err := repo.Save(ctx, &models.Member{Name: "Bob", Email: "b@x.com"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), alice.ID)
		assert.Equal(t, int64(2), bob.ID)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []models.Member{*alice, *bob}, all)

		got, ok, err := repo.FindByID(ctx, 1)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "Alice", got.Name)

		require.NoError(t, repo.DeleteByID(ctx, 1))

		all, err = repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []models.Member{{ID: 2, Name: "Bob", Email: "b@x.com"}}, all)
	})
}
