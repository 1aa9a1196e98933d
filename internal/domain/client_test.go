package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain digits pass through", "998912223344", "998912223344"},
		{"plus prefix stripped", "+998912223344", "998912223344"},
		{"formatted number collapses", "+998 (91) 222-33-44", "998912223344"},
		{"dashes stripped", "998-91-222-33-44", "998912223344"},
		{"letters kept as-is", "abc", "abc"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.input))
		})
	}
}
