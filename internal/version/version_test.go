package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "1.2.3", want: "1.2.3"},
		{in: "v0.4.0", want: "0.4.0"},
		{in: "1.0.0-rc.1", want: "1.0.0-rc.1"},
		{in: "0.0.0-dev", want: "0.0.0-dev"},
		{in: "not-a-version", want: "0.0.0-dev"},
		{in: "", want: "0.0.0-dev"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize(tt.in))
		})
	}
}

func TestGetVersionAndUserAgent(t *testing.T) {
	assert.NotEmpty(t, GetVersion())
	assert.Equal(t, "countrylist/"+GetVersion(), UserAgent())
}
