package timeformat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToClock(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		hours   int
		minutes int
		seconds int
	}{
		{name: "zero", total: 0, hours: 0, minutes: 0, seconds: 0},
		{name: "one of each", total: 3661, hours: 1, minutes: 1, seconds: 1},
		{name: "mixed", total: 7325, hours: 2, minutes: 2, seconds: 5},
		{name: "under a minute", total: 59, hours: 0, minutes: 0, seconds: 59},
		{name: "whole hour", total: 3600, hours: 1, minutes: 0, seconds: 0},
		{name: "past 24h hours keep growing", total: 90000, hours: 25, minutes: 0, seconds: 0},
		{name: "negative treated as zero", total: -5, hours: 0, minutes: 0, seconds: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours, minutes, seconds := ToClock(tt.total)
			assert.Equal(t, tt.hours, hours)
			assert.Equal(t, tt.minutes, minutes)
			assert.Equal(t, tt.seconds, seconds)
		})
	}
}

func TestToClockReconstructs(t *testing.T) {
	for _, total := range []int{0, 1, 59, 60, 61, 3599, 3600, 3661, 7325, 86399, 86400, 123456} {
		hours, minutes, seconds := ToClock(total)
		assert.Equal(t, total, hours*3600+minutes*60+seconds, "total %d", total)
		assert.GreaterOrEqual(t, minutes, 0)
		assert.Less(t, minutes, 60)
		assert.GreaterOrEqual(t, seconds, 0)
		assert.Less(t, seconds, 60)
	}
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "1:01", LabelHM(3661))
	assert.Equal(t, "0:00", LabelHM(59))
	assert.Equal(t, "25:00", LabelHM(90000))

	assert.Equal(t, "01:01:01", LabelHMS(3661))
	assert.Equal(t, "00:00:00", LabelHMS(0))

	assert.Equal(t, "01h 00m 00", SessionLabel(3600))
	assert.Equal(t, "00h 00m 30", SessionLabel(30))
}
