package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mortgage-registry/domain"
)

func seed(t *testing.T, ids ...int) *ClientRepositoryMemory {
	t.Helper()
	repo := NewClientRepositoryMemory()
	for _, id := range ids {
		require.NoError(t, repo.Save(domain.Client{ID: id}))
	}
	return repo
}

func ids(clients []domain.Client) []int {
	out := make([]int, 0, len(clients))
	for _, c := range clients {
		out = append(out, c.ID)
	}
	return out
}

func TestClientRepositoryMemory_SaveKeepsOrder(t *testing.T) {
	repo := seed(t, 1, 2, 3)

	assert.Equal(t, []int{1, 2, 3}, ids(repo.List()))
}

func TestClientRepositoryMemory_SaveDuplicate(t *testing.T) {
	repo := seed(t, 1)

	err := repo.Save(domain.Client{ID: 1})
	assert.Error(t, err)
	assert.Len(t, repo.List(), 1)
}

func TestClientRepositoryMemory_ReplaceInPlace(t *testing.T) {
	repo := seed(t, 1, 2, 3)

	updated := domain.Client{ID: 2, MortgageInput: domain.MortgageInput{TotalCost: 500}}
	require.NoError(t, repo.Replace(updated))

	list := repo.List()
	assert.Equal(t, []int{1, 2, 3}, ids(list))
	assert.Equal(t, 500.0, list[1].TotalCost)
}

func TestClientRepositoryMemory_ReplaceMissing(t *testing.T) {
	repo := seed(t, 1)

	err := repo.Replace(domain.Client{ID: 7})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClientRepositoryMemory_Delete(t *testing.T) {
	repo := seed(t, 1, 2, 3)

	require.NoError(t, repo.Delete(2))
	assert.Equal(t, []int{1, 3}, ids(repo.List()))

	_, err := repo.FindByID(2)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = repo.Delete(2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, repo.List(), 2)
}

func TestClientRepositoryMemory_ListIsCopy(t *testing.T) {
	repo := seed(t, 1, 2)

	list := repo.List()
	list[0].ID = 99

	assert.Equal(t, []int{1, 2}, ids(repo.List()))
}

func TestClientRepositoryMemory_ReplaceAll(t *testing.T) {
	repo := seed(t, 1, 2, 3)

	require.NoError(t, repo.ReplaceAll([]domain.Client{{ID: 3}, {ID: 1}, {ID: 2}}))
	assert.Equal(t, []int{3, 1, 2}, ids(repo.List()))
}

func TestClientRepositoryMemory_ReplaceAllRejectsForeignSet(t *testing.T) {
	repo := seed(t, 1, 2)

	assert.Error(t, repo.ReplaceAll([]domain.Client{{ID: 1}}))
	assert.ErrorIs(t, repo.ReplaceAll([]domain.Client{{ID: 1}, {ID: 5}}), domain.ErrNotFound)
	assert.Equal(t, []int{1, 2}, ids(repo.List()))
}
