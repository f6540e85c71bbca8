package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Go4ItSports/go4it/config"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "v3.14", want: 3},
		{in: "4.0", want: 4},
		{in: "5", want: 5},
		{in: "1.2.3", want: 1},
		{in: " v2.0.0 ", want: 2},
		{in: "", wantErr: true},
		{in: "v", wantErr: true},
		{in: "abc.1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVersion(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCodeVersionCoversRegisteredMigrations(t *testing.T) {
	code, err := ParseVersion(config.VERSION)
	require.NoError(t, err)
	for _, m := range DefaultRegistry.GetMigrations() {
		assert.LessOrEqual(t, m.GetMajorVersion(), code)
	}
}
