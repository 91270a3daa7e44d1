package impl

import (
	"testing"

	"examhub/config"

	"github.com/stretchr/testify/assert"
)

func TestMailDispatcher_Link(t *testing.T) {
	tests := []struct {
		name     string
		frontend config.FrontendConfig
		path     string
		want     string
	}{
		{
			name:     "trailing slash on base",
			frontend: config.FrontendConfig{BaseURL: "https://app.example.com/"},
			path:     "/redefine-senha",
			want:     "https://app.example.com/redefine-senha/tok",
		},
		{
			name:     "relative path",
			frontend: config.FrontendConfig{BaseURL: "https://app.example.com"},
			path:     "activate/",
			want:     "https://app.example.com/activate/tok",
		},
		{
			name:     "no path",
			frontend: config.FrontendConfig{BaseURL: "http://localhost:5173"},
			want:     "http://localhost:5173/tok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newMailDispatcher(nil, nil, nil, tt.frontend)
			assert.Equal(t, tt.want, d.link(tt.path, "tok"))
		})
	}
}
