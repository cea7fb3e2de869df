package porkbelly

// debugLogInterval is how many frames pass between debug stat lines.
const debugLogInterval = 60

// frameStats holds per-frame counters. Only logged when Config.Debug is true.
type frameStats struct {
	frame         uint64
	timersFired   int
	timersPending int
	tweens        int
	zonesTested   int
	zonesFired    int
	effects       int
}

// debugLog writes the frame stats at debug level every debugLogInterval
// frames, and on any frame where a zone fired.
func (w *World) debugLog() {
	s := w.stats
	if s.frame%debugLogInterval != 0 && s.zonesFired == 0 {
		return
	}
	w.log.Debug("frame stats",
		"frame", s.frame,
		"timers_fired", s.timersFired,
		"timers_pending", s.timersPending,
		"tweens", s.tweens,
		"zones_tested", s.zonesTested,
		"zones_fired", s.zonesFired,
		"effects", s.effects,
		"guests", w.actors.GuestCount())
}
