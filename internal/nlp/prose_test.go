package nlp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukas/bewerberprofil/internal/types"
)

func TestProseClientSummarizeAlwaysFails(t *testing.T) {
	client := NewProseClient()

	_, err := client.Summarize(context.Background(), "Text", 150, 40)

	assert.ErrorIs(t, err, ErrNoSummarizer)
}

func TestProseClientRecognizeEmptyText(t *testing.T) {
	client := NewProseClient()

	entities, err := client.Recognize(context.Background(), "")

	require.NoError(t, err)
	assert.Empty(t, entities)
}

func TestProseClientSupplementsContactEntities(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping model-backed recognition in short mode")
	}

	client := NewProseClient()

	entities, err := client.Recognize(context.Background(),
		"Max Mustermann\nKontakt: max@firma.de, +49 176 1234567")
	require.NoError(t, err)

	var emails, phones []string
	for _, e := range entities {
		if e.Category != types.CategoryMisc {
			continue
		}
		if e.Text == "max@firma.de" {
			emails = append(emails, e.Text)
		}
		if e.Text == "+49 176 1234567" {
			phones = append(phones, e.Text)
		}
	}
	assert.NotEmpty(t, emails, "email-shaped span must be supplemented as MISC")
	assert.NotEmpty(t, phones, "phone-shaped span must be supplemented as MISC")
}

func TestProseLabelCategory(t *testing.T) {
	assert.Equal(t, types.CategoryPerson, proseLabelCategory("PERSON"))
	assert.Equal(t, types.CategoryLocation, proseLabelCategory("GPE"))
	assert.Equal(t, types.CategoryMisc, proseLabelCategory("FACILITY"))
}
