package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCampaignStateStopped(t *testing.T) {
	for _, s := range []CampaignState{StateInactive, StateStopped, StateArchived, StateFinished} {
		assert.True(t, s.Stopped(), s)
		assert.False(t, s.Active(), s)
	}
	for _, s := range []CampaignState{StateRunning, StatePlanned, StateModerationDraft, StateUnknown} {
		assert.False(t, s.Stopped(), s)
	}
}
