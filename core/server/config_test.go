package server_test

import (
	"testing"

	"product-alternatives/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_BodyLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"Default", 0, 20 * 1024 * 1024},
		{"Negative", -5, 20 * 1024 * 1024},
		{"Custom", 2, 2 * 1024 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{UploadLimitMB: tt.limit}
			assert.Equal(t, tt.want, c.BodyLimit())
		})
	}
}

func TestConfig_HasTemplate(t *testing.T) {
	assert.False(t, server.Config{}.HasTemplate())
	assert.True(t, server.Config{TemplateURL: "https://example.com/plantilla.xlsx"}.HasTemplate())
	assert.True(t, server.Config{TemplateObject: "plantilla.xlsx"}.HasTemplate())
}
