package bloom_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/refscrape/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	t.Parallel()

	t.Run("added URLs test positive", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)
		f.Add("https://site/anime/5114/title")

		assert.True(t, f.Test("https://site/anime/5114/title"))
	})

	t.Run("unseen URLs test negative", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)
		f.Add("https://site/anime/5114/title")

		assert.False(t, f.Test("https://site/manga/25/title"))
	})

	t.Run("TestAndAdd reports duplicates", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(1000, 0.01)

		assert.False(t, f.TestAndAdd("https://site/anime/1"))
		assert.True(t, f.TestAndAdd("https://site/anime/1"))
	})

	t.Run("is safe for concurrent use", func(t *testing.T) {
		t.Parallel()

		f := bloom.NewFilter(10000, 0.01)

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					f.TestAndAdd(fmt.Sprintf("https://site/anime/%d-%d", i, j))
				}
			}(i)
		}
		wg.Wait()

		assert.Greater(t, f.EstimatedCount(), uint(0))
	})
}
