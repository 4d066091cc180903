package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDealStage(t *testing.T) {
	for _, stage := range DealStages {
		assert.True(t, IsValidDealStage(stage), stage)
	}
	assert.True(t, IsValidDealStage(DealStageClosedLost))

	assert.False(t, IsValidDealStage(""))
	assert.False(t, IsValidDealStage("won"))
	assert.False(t, IsValidDealStage("Prospecting"))
}

func TestDealStagesOrder(t *testing.T) {
	assert.Equal(t, DealStageProspecting, DealStages[0])
	assert.Equal(t, DealStageClosedWon, DealStages[len(DealStages)-1])
	assert.NotContains(t, DealStages, DealStageClosedLost)
}
