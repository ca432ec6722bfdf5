package player

import (
	"math"

	"github.com/gopxl/beep/v2/speaker"
)

// silentGain is the lowest gain handed to effects.Volume; 2^-10 is inaudible.
const silentGain = -10.0

// SetVolume stores level clamped to [0, 1] and applies it to the running
// track, if any. New tracks pick up the stored level.
func (p *Player) SetVolume(level float64) {
	p.volumeLevel = clampLevel(level)
	if p.volume == nil {
		return
	}
	speaker.Lock()
	p.volume.Volume = gain(p.volumeLevel)
	speaker.Unlock()
}

// Volume returns the stored level.
func (p *Player) Volume() float64 { return p.volumeLevel }

func clampLevel(level float64) float64 {
	return min(max(level, 0), 1)
}

// gain converts a linear level to the exponent used with Base 2, so that
// halving the level lowers the output by one step.
func gain(level float64) float64 {
	switch {
	case level <= 0:
		return silentGain
	case level >= 1:
		return 0
	default:
		return max(math.Log2(level), silentGain)
	}
}
