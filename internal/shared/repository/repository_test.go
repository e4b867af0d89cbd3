package repository

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   int64
	Tags []string
}

func (i item) Key() int64 { return i.ID }

func (i item) Clone() item {
	return item{ID: i.ID, Tags: slices.Clone(i.Tags)}
}

type named struct {
	Code string
}

func (n named) Key() string  { return n.Code }
func (n named) Clone() named { return n }

func TestMemory_SaveKeepsNumericOrder(t *testing.T) {
	repo := NewMemory[item, int64]()

	for _, id := range []int64{42, 7, 100, 0} {
		repo.Save(item{ID: id})
	}

	all := repo.FindAll()
	ids := make([]int64, len(all))
	for i, it := range all {
		ids[i] = it.ID
	}
	assert.Equal(t, []int64{0, 7, 42, 100}, ids)
	assert.Equal(t, 4, repo.Len())
}

func TestMemory_SaveKeepsLexicographicOrder(t *testing.T) {
	repo := NewMemory[named, string]()

	repo.Save(named{Code: "900.000.000-2"})
	repo.Save(named{Code: "100.000.000-9"})
	repo.Save(named{Code: "500.000.000-1"})

	all := repo.FindAll()
	require.Len(t, all, 3)
	assert.Equal(t, "100.000.000-9", all[0].Code)
	assert.Equal(t, "500.000.000-1", all[1].Code)
	assert.Equal(t, "900.000.000-2", all[2].Code)
}

func TestMemory_FindByID(t *testing.T) {
	repo := NewMemory[item, int64]()
	repo.Save(item{ID: 1, Tags: []string{"a"}})

	found, ok := repo.FindByID(1)
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, found.Tags)

	_, ok = repo.FindByID(2)
	assert.False(t, ok)
}

func TestMemory_Update(t *testing.T) {
	repo := NewMemory[item, int64]()
	repo.Save(item{ID: 1})
	repo.Save(item{ID: 2})

	updated, ok := repo.Update(item{ID: 2, Tags: []string{"x"}})
	require.True(t, ok)
	assert.Equal(t, []string{"x"}, updated.Tags)

	found, _ := repo.FindByID(2)
	assert.Equal(t, []string{"x"}, found.Tags)
	assert.Equal(t, 2, repo.Len())
}

func TestMemory_UpdateMissingIsNoOp(t *testing.T) {
	repo := NewMemory[item, int64]()
	repo.Save(item{ID: 1})

	_, ok := repo.Update(item{ID: 99, Tags: []string{"x"}})

	assert.False(t, ok)
	assert.Equal(t, []item{{ID: 1}}, repo.FindAll())
}

func TestMemory_DefensiveCopies(t *testing.T) {
	repo := NewMemory[item, int64]()

	input := item{ID: 1, Tags: []string{"original"}}
	returned := repo.Save(input)

	input.Tags[0] = "mutated-input"
	returned.Tags[0] = "mutated-return"

	found, _ := repo.FindByID(1)
	found.Tags[0] = "mutated-find"

	all := repo.FindAll()
	all[0].Tags[0] = "mutated-all"
	all[0] = item{ID: 500}

	again := repo.FindAll()
	require.Len(t, again, 1)
	assert.Equal(t, item{ID: 1, Tags: []string{"original"}}, again[0])
}

func TestMemory_FindAllEmpty(t *testing.T) {
	repo := NewMemory[item, int64]()

	all := repo.FindAll()
	assert.NotNil(t, all)
	assert.Empty(t, all)
}
