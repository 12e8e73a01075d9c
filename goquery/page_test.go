package goquery_test

import (
	"testing"

	"github.com/fwojciec/refscrape"
	refgoquery "github.com/fwojciec/refscrape/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageHTML = `<!DOCTYPE html>
<html>
<body>
<div id="content">
  <div class="sidebar">
    <h2>Information</h2>
    <div>Episodes: 64</div>
    <h2>Related</h2>
    <a href="https://site/manga/25/title">the manga</a>
    <script>track();</script>
  </div>
  <div class="main">
    <h2>Synopsis</h2>
    <span>Two brothers search for a way back.</span>
  </div>
</div>
</body>
</html>`

func TestPage_Container(t *testing.T) {
	t.Parallel()

	t.Run("returns the first matching element", func(t *testing.T) {
		t.Parallel()

		page, err := refgoquery.NewPage(pageHTML)
		require.NoError(t, err)

		sel, err := page.Container("#content .sidebar")
		require.NoError(t, err)
		assert.Equal(t, 1, sel.Length())
	})

	t.Run("returns ENOTFOUND for a missing container", func(t *testing.T) {
		t.Parallel()

		page, err := refgoquery.NewPage(pageHTML)
		require.NoError(t, err)

		_, err = page.Container("#content .missing")
		require.Error(t, err)
		assert.Equal(t, refscrape.ENOTFOUND, refscrape.ErrorCode(err))
	})
}

func TestPage_Sections(t *testing.T) {
	t.Parallel()

	t.Run("parses a container's children into sections", func(t *testing.T) {
		t.Parallel()

		page, err := refgoquery.NewPage(pageHTML)
		require.NoError(t, err)

		sections := page.Sections("#content .sidebar", refscrape.NewSectionParser())

		assert.True(t, sections.Has("Information"))
		assert.True(t, sections.Has("Related"))
		assert.Equal(t, "Episodes: 64", refgoquery.Text(sections.Get("Information")))
	})

	t.Run("strips noise from section content", func(t *testing.T) {
		t.Parallel()

		page, err := refgoquery.NewPage(pageHTML)
		require.NoError(t, err)

		sections := page.Sections("#content .sidebar", refscrape.NewSectionParser())

		assert.NotContains(t, refgoquery.Text(sections.Get("Related")), "track()")
	})

	t.Run("missing container yields an empty map", func(t *testing.T) {
		t.Parallel()

		page, err := refgoquery.NewPage(pageHTML)
		require.NoError(t, err)

		sections := page.Sections("#content .missing", refscrape.NewSectionParser())

		assert.Equal(t, 0, sections.Len())
	})
}

func TestLinks(t *testing.T) {
	t.Parallel()

	page, err := refgoquery.NewPage(pageHTML)
	require.NoError(t, err)

	sections := page.Sections("#content .sidebar", refscrape.NewSectionParser())

	links := refgoquery.Links(sections.Get("Related"))
	assert.Equal(t, []string{"https://site/manga/25/title"}, links)
}
