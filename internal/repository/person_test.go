package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersonRepository_Exists(t *testing.T) {
	repo := NewPersonRepository([]int{1, 2, 3, 4, 5})
	ctx := context.Background()

	for id := 1; id <= 5; id++ {
		assert.True(t, repo.Exists(ctx, id), id)
	}
	for _, id := range []int{0, -1, 6, 99} {
		assert.False(t, repo.Exists(ctx, id), id)
	}
}

func TestPersonRepository_IDs(t *testing.T) {
	repo := NewPersonRepository([]int{5, 3, 3, 1})

	assert.Equal(t, []int{1, 3, 5}, repo.IDs())
}

func TestPersonRepository_ConcurrentReads(t *testing.T) {
	repo := NewPersonRepository([]int{1, 2, 3})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			assert.Equal(t, id%4 != 0, repo.Exists(ctx, id%4))
		}(i)
	}
	wg.Wait()
}
