package refscrape_test

import (
	"context"
	"testing"

	"github.com/fwojciec/refscrape"
	"github.com/fwojciec/refscrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReference(t *testing.T) {
	t.Parallel()

	t.Run("parses type and numeric id", func(t *testing.T) {
		t.Parallel()

		ref, err := refscrape.ParseReference("users:42")

		require.NoError(t, err)
		assert.Equal(t, refscrape.Reference{Type: "users", ID: 42}, ref)
	})

	t.Run("fails without delimiter", func(t *testing.T) {
		t.Parallel()

		_, err := refscrape.ParseReference("malformed")

		require.Error(t, err)
		assert.Equal(t, refscrape.EINVALID, refscrape.ErrorCode(err))
	})

	t.Run("coerces non-numeric id to zero", func(t *testing.T) {
		t.Parallel()

		ref, err := refscrape.ParseReference("anime:unknown")

		require.NoError(t, err)
		assert.Equal(t, refscrape.Reference{Type: "anime", ID: 0}, ref)
	})

	t.Run("splits on the first delimiter only", func(t *testing.T) {
		t.Parallel()

		ref, err := refscrape.ParseReference("a:1:2")

		require.NoError(t, err)
		assert.Equal(t, "a", ref.Type)
		assert.Equal(t, int64(0), ref.ID)
	})
}

func TestParseCanonicalID(t *testing.T) {
	t.Parallel()

	t.Run("extracts id for the expected segment", func(t *testing.T) {
		t.Parallel()

		id, err := refscrape.ParseCanonicalID("https://site/anime/5114/title", "anime")

		require.NoError(t, err)
		assert.Equal(t, "5114", id)
	})

	t.Run("matches ids at the end of the path", func(t *testing.T) {
		t.Parallel()

		id, err := refscrape.ParseCanonicalID("https://site/manga/25", "manga")

		require.NoError(t, err)
		assert.Equal(t, "25", id)
	})

	t.Run("fails for a mismatched segment", func(t *testing.T) {
		t.Parallel()

		_, err := refscrape.ParseCanonicalID("https://site/anime/5114/title", "manga")

		require.Error(t, err)
		assert.Equal(t, refscrape.EINVALID, refscrape.ErrorCode(err))
	})
}

func TestParseCanonicalLink(t *testing.T) {
	t.Parallel()

	t.Run("returns segment and id", func(t *testing.T) {
		t.Parallel()

		segment, id, err := refscrape.ParseCanonicalLink("https://site/anime/5114/title")

		require.NoError(t, err)
		assert.Equal(t, "anime", segment)
		assert.Equal(t, "5114", id)
	})

	t.Run("fails for non-canonical paths", func(t *testing.T) {
		t.Parallel()

		_, _, err := refscrape.ParseCanonicalLink("https://site/about")

		require.Error(t, err)
		assert.Equal(t, refscrape.EINVALID, refscrape.ErrorCode(err))
	})
}

func TestKind_PathSegment(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "anime", refscrape.KindAnime.PathSegment())
	assert.Equal(t, "people", refscrape.KindPerson.PathSegment())
	assert.Equal(t, "", refscrape.KindUnknown.PathSegment())
}

func TestResolver(t *testing.T) {
	t.Parallel()

	record := &refscrape.ExternalRecord{
		ID:           "internal-1",
		CompositeKey: "mal/anime",
		ExternalID:   5114,
		Name:         "Fullmetal Alchemist: Brotherhood",
	}

	t.Run("resolves a mapped canonical URL", func(t *testing.T) {
		t.Parallel()

		identity := &mock.IdentityService{
			LookupFn: func(_ context.Context, compositeKey string, externalID int64) (*refscrape.ExternalRecord, error) {
				assert.Equal(t, "mal/anime", compositeKey)
				assert.Equal(t, int64(5114), externalID)
				return record, nil
			},
		}
		resolver := refscrape.NewResolver("mal", identity, nil)

		got, err := resolver.ResolveURL(context.Background(), "https://site/anime/5114/title")

		require.NoError(t, err)
		assert.Equal(t, record, got)
	})

	t.Run("returns nil for an unmapped entity", func(t *testing.T) {
		t.Parallel()

		identity := &mock.IdentityService{
			LookupFn: func(context.Context, string, int64) (*refscrape.ExternalRecord, error) {
				return nil, nil
			},
		}
		resolver := refscrape.NewResolver("mal", identity, nil)

		got, err := resolver.ResolveURL(context.Background(), "https://site/anime/99999/title")

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("returns nil for an unregistered segment", func(t *testing.T) {
		t.Parallel()

		identity := &mock.IdentityService{
			LookupFn: func(context.Context, string, int64) (*refscrape.ExternalRecord, error) {
				t.Fatal("lookup should not be called for an unregistered segment")
				return nil, nil
			},
		}
		resolver := refscrape.NewResolver("mal", identity, nil)

		got, err := resolver.ResolveURL(context.Background(), "https://site/studio/11/bones")

		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("fails for a non-canonical URL", func(t *testing.T) {
		t.Parallel()

		resolver := refscrape.NewResolver("mal", &mock.IdentityService{}, nil)

		_, err := resolver.ResolveURL(context.Background(), "https://site/about")

		require.Error(t, err)
		assert.Equal(t, refscrape.EINVALID, refscrape.ErrorCode(err))
	})

	t.Run("resolves a node via its href attribute", func(t *testing.T) {
		t.Parallel()

		identity := &mock.IdentityService{
			LookupFn: func(context.Context, string, int64) (*refscrape.ExternalRecord, error) {
				return record, nil
			},
		}
		resolver := refscrape.NewResolver("mal", identity, nil)

		nodes := parseNodes(t, `<a href="https://site/anime/5114/title">FMA:B</a>`)
		require.Len(t, nodes, 1)

		got, err := resolver.ResolveNode(context.Background(), nodes[0])

		require.NoError(t, err)
		assert.Equal(t, record, got)
	})

	t.Run("fails for a node without href", func(t *testing.T) {
		t.Parallel()

		resolver := refscrape.NewResolver("mal", &mock.IdentityService{}, nil)

		nodes := parseNodes(t, `<span>no link</span>`)
		require.Len(t, nodes, 1)

		_, err := resolver.ResolveNode(context.Background(), nodes[0])

		require.Error(t, err)
		assert.Equal(t, refscrape.EINVALID, refscrape.ErrorCode(err))
	})
}

func TestCompositeKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "mal/anime", refscrape.CompositeKey("mal", refscrape.KindAnime))
}
