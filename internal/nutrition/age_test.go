package nutrition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAgeAt(t *testing.T) {
	cases := []struct {
		name  string
		birth time.Time
		now   time.Time
		want  int
	}{
		{"birthday passed this year", day(2000, time.March, 10), day(2024, time.June, 15), 24},
		{"birthday today", day(2000, time.June, 15), day(2024, time.June, 15), 24},
		{"birthday tomorrow", day(2000, time.June, 16), day(2024, time.June, 15), 23},
		{"birthday next month", day(2000, time.July, 1), day(2024, time.June, 15), 23},
		{"born this year", day(2024, time.January, 2), day(2024, time.June, 15), 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AgeAt(tc.birth, tc.now))
		})
	}
}

func TestCalculateAge_Fallback(t *testing.T) {
	assert.Equal(t, 32, CalculateAge("", 32))
	assert.Equal(t, 32, CalculateAge("not-a-date", 32))
	assert.Equal(t, -1, CalculateAge("", -1))
}

func TestCalculateAge_ParsesISODate(t *testing.T) {
	got := CalculateAge("1990-01-01", 0)
	want := AgeAt(day(1990, time.January, 1), time.Now())
	assert.Equal(t, want, got)
}
