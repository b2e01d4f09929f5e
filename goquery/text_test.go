package goquery_test

import (
	"testing"

	"github.com/fwojciec/entaudit/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextExtractor_Text(t *testing.T) {
	t.Parallel()

	t.Run("serializes visible text line by line", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<h1>Emergency Plumbers</h1>
			<p>Fast local service in <strong>London</strong>.</p>
			<p>Call us today.</p>
		</body></html>`

		text, err := goquery.NewTextExtractor().Text(html, nil)

		require.NoError(t, err)
		assert.Equal(t, "Emergency Plumbers\nFast local service in London.\nCall us today.", text)
	})

	t.Run("drops script and style content", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><style>.x{color:red}</style></head><body>
			<script>var tracking = true;</script>
			<p>Real content</p>
		</body></html>`

		text, err := goquery.NewTextExtractor().Text(html, nil)

		require.NoError(t, err)
		assert.Equal(t, "Real content", text)
	})

	t.Run("removes excluded subtrees before serialization", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<nav>Home About Contact</nav>
			<div class="cookie-banner">We use cookies</div>
			<p>Boiler repair specialists</p>
		</body></html>`

		text, err := goquery.NewTextExtractor().Text(html, []string{"nav", ".cookie-banner"})

		require.NoError(t, err)
		assert.Equal(t, "Boiler repair specialists", text)
	})

	t.Run("skips invalid selector and applies the rest", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<div id="ads">Buy now</div>
			<p>Useful text</p>
		</body></html>`

		text, err := goquery.NewTextExtractor().Text(html, []string{"[[[", "#ads"})

		require.NoError(t, err)
		assert.Equal(t, "Useful text", text)
	})

	t.Run("ignores blank selectors", func(t *testing.T) {
		t.Parallel()

		text, err := goquery.NewTextExtractor().Text("<p>content</p>", []string{"", "  "})

		require.NoError(t, err)
		assert.Equal(t, "content", text)
	})

	t.Run("br forces a line break", func(t *testing.T) {
		t.Parallel()

		text, err := goquery.NewTextExtractor().Text("<p>line one<br>line two</p>", nil)

		require.NoError(t, err)
		assert.Equal(t, "line one\nline two", text)
	})

	t.Run("collapses runs of whitespace", func(t *testing.T) {
		t.Parallel()

		text, err := goquery.NewTextExtractor().Text("<p>  spaced   \n\t out  </p>", nil)

		require.NoError(t, err)
		assert.Equal(t, "spaced out", text)
	})

	t.Run("list items each get a line", func(t *testing.T) {
		t.Parallel()

		text, err := goquery.NewTextExtractor().Text("<ul><li>one</li><li>two</li></ul>", nil)

		require.NoError(t, err)
		assert.Equal(t, "one\ntwo", text)
	})

	t.Run("empty document yields empty text", func(t *testing.T) {
		t.Parallel()

		text, err := goquery.NewTextExtractor().Text("", nil)

		require.NoError(t, err)
		assert.Empty(t, text)
	})
}
