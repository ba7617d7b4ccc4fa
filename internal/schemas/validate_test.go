package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEntities(t *testing.T) {
	tests := []struct {
		name     string
		document string
		wantErr  bool
	}{
		{
			name:     "valid entity list",
			document: `[{"text":"Max Mustermann","category":"PER"},{"text":"max@firma.de","category":"MISC"}]`,
			wantErr:  false,
		},
		{
			name:     "empty list is valid",
			document: `[]`,
			wantErr:  false,
		},
		{
			name:     "missing category",
			document: `[{"text":"Max Mustermann"}]`,
			wantErr:  true,
		},
		{
			name:     "empty text",
			document: `[{"text":"","category":"PER"}]`,
			wantErr:  true,
		},
		{
			name:     "unexpected field",
			document: `[{"text":"Max","category":"PER","score":0.9}]`,
			wantErr:  true,
		},
		{
			name:     "object instead of array",
			document: `{"text":"Max","category":"PER"}`,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntities(tt.document)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEntitiesReportsFieldPaths(t *testing.T) {
	err := ValidateEntities(`[{"category":"PER"}]`)

	require.Error(t, err)
	ve, ok := err.(*ValidationError)
	require.True(t, ok, "expected a *ValidationError")
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, err.Error(), "text")
}
