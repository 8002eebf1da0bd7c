package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelInfoFor(t *testing.T) {
	tests := []struct {
		name          string
		lifetime      int
		wantLevel     int
		wantName      string
		wantNext      int
		wantToNext    int
		wantThreshold int
	}{
		{"zero points", 0, 1, "Welcome", 2, 100, 100},
		{"just below seeker", 99, 1, "Welcome", 2, 1, 100},
		{"exactly seeker", 100, 2, "Seeker", 3, 200, 300},
		{"just below explorer", 299, 2, "Seeker", 3, 1, 300},
		{"exactly explorer", 300, 3, "Explorer", 4, 300, 600},
		{"exactly oracle", 600, 4, "Oracle", 5, 400, 1000},
		{"exactly master", 1000, 5, "Master", 6, 1000, 2000},
		{"exactly sage", 2000, 6, "Sage", 7, 1000, 3000},
		{"exactly enlightened", 3000, 7, "Enlightened", 7, 0, 3000},
		{"beyond the last tier", 10000, 7, "Enlightened", 7, 0, 3000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := LevelInfoFor(tt.lifetime)
			assert.Equal(t, tt.wantLevel, info.CurrentLevel)
			assert.Equal(t, tt.wantName, info.CurrentLevelName)
			assert.Equal(t, tt.wantNext, info.NextLevel)
			assert.Equal(t, tt.wantToNext, info.PointsToNextLevel)
			assert.Equal(t, tt.wantThreshold, info.NextLevelThreshold)
		})
	}
}

func TestLevelInfoForMonotone(t *testing.T) {
	// More lifetime points never mean a lower level.
	prev := 0
	for lifetime := 0; lifetime <= 3500; lifetime += 50 {
		level := LevelInfoFor(lifetime).CurrentLevel
		assert.GreaterOrEqual(t, level, prev, "level dropped at %d lifetime points", lifetime)
		prev = level
	}
}

func TestLevelThresholdsAscending(t *testing.T) {
	for i := 1; i < len(LevelThresholds); i++ {
		assert.Greater(t, LevelThresholds[i].Points, LevelThresholds[i-1].Points)
	}
}
