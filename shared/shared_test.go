package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"todosvc/shared"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{name: "no parts", parts: nil, expected: ""},
		{name: "single part", parts: []string{"limiter"}, expected: "limiter"},
		{name: "multiple parts", parts: []string{"limiter", "127.0.0.1", "curl"}, expected: "limiter:127.0.0.1:curl"},
		{name: "empty parts skipped", parts: []string{"limiter", "", "curl"}, expected: "limiter:curl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.BuildCacheKey(tt.parts...))
		})
	}
}
