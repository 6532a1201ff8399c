package timezone_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"todosvc/shared/constant"
	"todosvc/shared/timezone"
)

func TestNow(t *testing.T) {
	now := timezone.Now()

	assert.False(t, now.IsZero())
	assert.Equal(t, timezone.GetLocation(), now.Location())
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty falls back to UTC", input: "", expected: "UTC"},
		{name: "unknown falls back to UTC", input: "Mars/Olympus_Mons", expected: "UTC"},
		{name: "UTC", input: "UTC", expected: "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, timezone.Load(tt.input).String())
		})
	}
}

func TestFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	formatted := timezone.Format(testTime, constant.DateFormat)

	parsed, err := time.Parse(constant.DateFormat, formatted)
	assert.NoError(t, err)
	assert.True(t, testTime.Equal(parsed))
}
