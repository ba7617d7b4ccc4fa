package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchSkills(t *testing.T) {
	t.Run("matches across all three categories", func(t *testing.T) {
		text := "Ich nutze SAP und Python bei Projektmanagement"

		skills := MatchSkills(text)

		assert.Equal(t, []string{"SAP", "Python"}, skills.IT)
		assert.Equal(t, []string{"Projektmanagement"}, skills.Technical)
		assert.Empty(t, skills.Languages)
	})

	t.Run("repeated mentions appear once", func(t *testing.T) {
		text := "SAP, SAP und nochmals SAP"

		skills := MatchSkills(text)

		assert.Equal(t, []string{"SAP"}, skills.IT)
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		text := "kenntnisse in python, sql und deutsch"

		skills := MatchSkills(text)

		assert.Equal(t, []string{"Python", "SQL"}, skills.IT)
		assert.Equal(t, []string{"Deutsch"}, skills.Languages)
	})

	t.Run("vocabulary order is preserved", func(t *testing.T) {
		text := "Python vor SAP vor MS-Excel genannt"

		skills := MatchSkills(text)

		assert.Equal(t, []string{"MS-Excel", "SAP", "Python"}, skills.IT)
	})

	t.Run("substring containment matches inside longer words", func(t *testing.T) {
		// Known imprecision, preserved deliberately.
		text := "Konferenzbesuch: SAPPHIRE 2023"

		skills := MatchSkills(text)

		assert.Equal(t, []string{"SAP"}, skills.IT)
	})

	t.Run("empty text matches nothing", func(t *testing.T) {
		skills := MatchSkills("")

		assert.Empty(t, skills.IT)
		assert.Empty(t, skills.Technical)
		assert.Empty(t, skills.Languages)
	})
}

func TestMatcherWordBoundaries(t *testing.T) {
	m := Matcher{WordBoundaries: true}

	t.Run("no match inside longer words", func(t *testing.T) {
		skills := m.Match("Konferenzbesuch: SAPPHIRE 2023")

		assert.Empty(t, skills.IT)
	})

	t.Run("standalone term still matches", func(t *testing.T) {
		skills := m.Match("Erfahrung mit SAP und Java.")

		assert.Equal(t, []string{"SAP", "Java"}, skills.IT)
	})

	t.Run("term at text boundary matches", func(t *testing.T) {
		skills := m.Match("SAP")

		assert.Equal(t, []string{"SAP"}, skills.IT)
	})
}
