package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"articlegen/internal/types"
)

func TestValidateOutline_Valid(t *testing.T) {
	outline := &types.Outline{
		Title: "A Title",
		Sections: []types.OutlineSection{
			{ID: "s1", Heading: "Intro", Points: []string{"p1"}},
			{ID: "s2", Heading: "Wrap up"},
		},
	}

	assert.NoError(t, ValidateOutline(outline))
}

func TestValidateOutline_SingleSectionValid(t *testing.T) {
	outline := &types.Outline{
		Title:    "A Title",
		Sections: []types.OutlineSection{{Heading: "Only section"}},
	}

	assert.NoError(t, ValidateOutline(outline))
}

func TestValidateOutline_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		outline *types.Outline
	}{
		{
			name:    "no sections",
			outline: &types.Outline{Title: "T", Sections: []types.OutlineSection{}},
		},
		{
			name:    "nil sections",
			outline: &types.Outline{Title: "T"},
		},
		{
			name:    "empty title",
			outline: &types.Outline{Sections: []types.OutlineSection{{Heading: "H"}}},
		},
		{
			name:    "empty heading",
			outline: &types.Outline{Title: "T", Sections: []types.OutlineSection{{Heading: ""}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutline(tt.outline)
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.NotEmpty(t, validationErr.Errors)
			assert.NotEmpty(t, err.Error())
		})
	}
}
