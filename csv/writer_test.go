package csv_test

import (
	"bytes"
	stdcsv "encoding/csv"
	"testing"

	"github.com/fwojciec/entaudit"
	entauditcsv "github.com/fwojciec/entaudit/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_WriteAll(t *testing.T) {
	t.Parallel()

	t.Run("writes header and rows in record order", func(t *testing.T) {
		t.Parallel()

		records := []*entaudit.ResultRecord{
			{
				Label:          "https://example.com/plumbers",
				URL:            "https://example.com/plumbers",
				TargetFocus:    "plumbing services",
				MainEntity:     "Plumbers (0.35)",
				SubEntities:    "London (0.20), Boilers (0.10)",
				Status:         entaudit.StatusPass,
				Reasoning:      "on topic",
				Recommendation: "None",
				TextLength:     1420,
			},
			{
				Label:          "broken item",
				Status:         entaudit.StatusError,
				Reasoning:      "fetch failed",
				Recommendation: "Check URL",
			},
		}

		var buf bytes.Buffer
		err := entauditcsv.NewWriter().WriteAll(&buf, records)
		require.NoError(t, err)

		rows, err := stdcsv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3)

		assert.Equal(t, entauditcsv.Header, rows[0])
		assert.Equal(t, []string{
			"https://example.com/plumbers",
			"https://example.com/plumbers",
			"plumbing services",
			"Plumbers (0.35)",
			"London (0.20), Boilers (0.10)",
			"Pass",
			"on topic",
			"None",
			"1420",
		}, rows[1])
		assert.Equal(t, "broken item", rows[2][0])
		assert.Equal(t, "Error", rows[2][5])
		assert.Equal(t, "Check URL", rows[2][7])
	})

	t.Run("quotes fields containing commas", func(t *testing.T) {
		t.Parallel()

		records := []*entaudit.ResultRecord{
			{
				Label:     "item",
				Status:    entaudit.StatusReview,
				Reasoning: "covers plumbing, heating, and drainage",
			},
		}

		var buf bytes.Buffer
		err := entauditcsv.NewWriter().WriteAll(&buf, records)
		require.NoError(t, err)

		rows, err := stdcsv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		assert.Equal(t, "covers plumbing, heating, and drainage", rows[1][6])
	})

	t.Run("empty record list yields header only", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		err := entauditcsv.NewWriter().WriteAll(&buf, nil)
		require.NoError(t, err)

		rows, err := stdcsv.NewReader(&buf).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, entauditcsv.Header, rows[0])
	})
}
