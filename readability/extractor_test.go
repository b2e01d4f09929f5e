package readability_test

import (
	"testing"

	"github.com/fwojciec/entaudit"
	"github.com/fwojciec/entaudit/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Emergency Plumbing</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav>
<article>
<p>Our emergency plumbers cover every borough of London around the clock.</p>
<p>From burst pipes to broken boilers, a certified engineer reaches you within the hour.</p>
<p>Call-outs are charged at a flat rate with no hidden fees for nights or weekends.</p>
</article>
<footer>Copyright notice that should not survive extraction.</footer>
</body>
</html>`

func TestExtractor_Text(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := readability.NewExtractor().Text("", nil)

		require.Error(t, err)
		assert.Equal(t, entaudit.EINVALID, entaudit.ErrorCode(err))
	})

	t.Run("keeps article text and drops navigation", func(t *testing.T) {
		t.Parallel()

		text, err := readability.NewExtractor().Text(articleHTML, nil)

		require.NoError(t, err)
		assert.Contains(t, text, "emergency plumbers cover every borough")
		assert.NotContains(t, text, "Home Nav Link")
	})

	t.Run("removes excluded subtrees before extraction", func(t *testing.T) {
		t.Parallel()

		text, err := readability.NewExtractor().Text(articleHTML, []string{"article p:first-child"})

		require.NoError(t, err)
		assert.NotContains(t, text, "every borough of London")
		assert.Contains(t, text, "burst pipes")
	})

	t.Run("skips invalid selectors", func(t *testing.T) {
		t.Parallel()

		text, err := readability.NewExtractor().Text(articleHTML, []string{"[[["})

		require.NoError(t, err)
		assert.Contains(t, text, "emergency plumbers")
	})
}
