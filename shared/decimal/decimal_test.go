package decimal_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentacar/shared/decimal"
)

func TestUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    float64
		wantErr bool
	}{
		{name: "number", in: `52.5`, want: 52.5},
		{name: "numeric string", in: `"52.50"`, want: 52.5},
		{name: "integer string", in: `"1200"`, want: 1200},
		{name: "null", in: `null`, want: 0},
		{name: "empty string", in: `""`, want: 0},
		{name: "garbage string", in: `"abc"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d decimal.Decimal
			err := json.Unmarshal([]byte(tt.in), &d)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Float64())
		})
	}
}

func TestMarshal(t *testing.T) {
	out, err := json.Marshal(decimal.Decimal(150))
	require.NoError(t, err)
	assert.Equal(t, "150", string(out))

	out, err = json.Marshal(decimal.Decimal(52.5))
	require.NoError(t, err)
	assert.Equal(t, "52.5", string(out))
}
