package pipeline

// CorrectOverlaps inspects each adjacent pair of finalized groups and,
// where the earlier group's end time exactly equals the later group's
// start time, advances the later group's first word by one frame
// interval. Subtitle renderers treat touching timecodes as simultaneous
// and may flicker; near-equality is deliberately left alone.
func CorrectOverlaps(groups []Group, frameInterval float64) {
	for i := 0; i < len(groups)-1; i++ {
		if groups[i].End() == groups[i+1].Start() {
			groups[i+1][0].Start += frameInterval
		}
	}
}
