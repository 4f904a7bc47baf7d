package rl

import (
	"testing"

	"mtgsim/internal/action"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	legal := []action.Action{
		{Kind: action.KindPassPriority},
		{Kind: action.KindEndTurn},
	}

	mask := Mask(legal)

	assert.True(t, mask[0])
	assert.True(t, mask[1])
	for i := 2; i < action.MaxActions; i++ {
		assert.False(t, mask[i])
	}
}

func TestMask_Empty(t *testing.T) {
	mask := Mask(nil)
	for _, v := range mask {
		assert.False(t, v)
	}
}
