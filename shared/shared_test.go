package shared_test

import (
	"testing"

	"majlis/shared"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{
			name:     "prefix only",
			prefix:   "sheet:snapshot",
			parts:    nil,
			expected: "sheet:snapshot",
		},
		{
			name:     "single part",
			prefix:   "limiter",
			parts:    []string{"10.0.0.1"},
			expected: "limiter:10.0.0.1",
		},
		{
			name:     "multiple parts",
			prefix:   "limiter",
			parts:    []string{"10.0.0.1", "curl"},
			expected: "limiter:10.0.0.1:curl",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := shared.BuildCacheKey(tt.prefix, tt.parts...); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
