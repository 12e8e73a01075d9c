package refscrape_test

import (
	"testing"

	"github.com/fwojciec/refscrape"
	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	t.Parallel()

	t.Run("drops bracketed source attribution lines", func(t *testing.T) {
		t.Parallel()

		got := refscrape.Clean("[Source: Example]\nReal content")

		assert.Equal(t, "Real content", got)
	})

	t.Run("drops parenthesized written-by lines case-insensitively", func(t *testing.T) {
		t.Parallel()

		got := refscrape.Clean("Story text.\n(written BY Staff)")

		assert.Equal(t, "Story text.", got)
	})

	t.Run("keeps attribution embedded mid-line", func(t *testing.T) {
		t.Parallel()

		got := refscrape.Clean("Adapted from the novel [Source: Example] in 2009.")

		assert.Equal(t, "Adapted from the novel [Source: Example] in 2009.", got)
	})

	t.Run("preserves surviving line order", func(t *testing.T) {
		t.Parallel()

		got := refscrape.Clean("one\n[Written by MAL Rewrite]\ntwo\n(Source: ANN)\nthree")

		assert.Equal(t, "one\ntwo\nthree", got)
	})

	t.Run("removes carriage returns and trims whitespace", func(t *testing.T) {
		t.Parallel()

		got := refscrape.Clean("  line one\r\nline two\r\n")

		assert.Equal(t, "line one\nline two", got)
	})

	t.Run("returns empty string when only attribution remains", func(t *testing.T) {
		t.Parallel()

		got := refscrape.Clean("[Written by MAL Rewrite]")

		assert.Equal(t, "", got)
	})
}

func TestIsPlaceholder(t *testing.T) {
	t.Parallel()

	t.Run("matches no-data boilerplate", func(t *testing.T) {
		t.Parallel()

		assert.True(t, refscrape.IsPlaceholder("No synopsis has been added for this series yet."))
		assert.True(t, refscrape.IsPlaceholder("No background information has been added to this title."))
		assert.True(t, refscrape.IsPlaceholder("No biography written."))
	})

	t.Run("does not match real or short values", func(t *testing.T) {
		t.Parallel()

		assert.False(t, refscrape.IsPlaceholder("A story about nothing."))
		assert.False(t, refscrape.IsPlaceholder("No."))
		assert.False(t, refscrape.IsPlaceholder(""))
	})
}
