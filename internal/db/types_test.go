package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadinessRank(t *testing.T) {
	assert.Equal(t, 0, ReadinessRank(ReadinessIdea))
	assert.Equal(t, 1, ReadinessRank(ReadinessPrototype))
	assert.Equal(t, 2, ReadinessRank(ReadinessPiloted))
	assert.Equal(t, 3, ReadinessRank(ReadinessScalable))
	assert.Equal(t, -1, ReadinessRank("Shipping"))
	assert.Equal(t, -1, ReadinessRank(""))
}

func TestReadinessLevelsOrdered(t *testing.T) {
	for i := 1; i < len(ReadinessLevels); i++ {
		assert.Less(t, ReadinessRank(ReadinessLevels[i-1]), ReadinessRank(ReadinessLevels[i]))
	}
}
