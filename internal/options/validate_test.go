package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/asynctools/aserrors"
)

func TestValidateSingleInputSource(t *testing.T) {
	tests := []struct {
		name    string
		sources []bool
		wantErr string
	}{
		{"no sources", []bool{false, false}, "none"},
		{"one source", []bool{false, true}, ""},
		{"two sources", []bool{true, true}, "many"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSingleInputSource("input", "none", "many", tt.sources...)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, aserrors.ErrConfig)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
