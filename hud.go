package porkbelly

import (
	"fmt"
	"time"

	"github.com/tanema/gween/ease"
)

// Typewriter and fade timings for HUD text.
const (
	letterDelay     = 100 * time.Millisecond
	stageHold       = 3 * time.Second
	stageFade       = 2 * time.Second
	mainHold        = 2 * time.Second
	mainFade        = 1 * time.Second
	creditsDelay    = 5 * time.Second
	creditsFadeTime = 2 * time.Second
)

// Label is a text display with mutable content, position and opacity. World
// labels (name tags, bubbles, signs) use world coordinates; HUD labels are
// laid out by the host.
type Label struct {
	Text    string
	Pos     Vec2
	Alpha   float64
	Visible bool
}

// NewLabel returns a visible, opaque label.
func NewLabel(text string, pos Vec2) *Label {
	return &Label{Text: text, Pos: pos, Alpha: 1, Visible: true}
}

// HUD holds the screen-fixed text: score, stage banner, main banner and
// credits.
type HUD struct {
	Score   *Label
	Stage   *Label
	Main    *Label
	Credits *Label

	timers *Timers
	tweens *Tweens
}

func newHUD(timers *Timers, tweens *Tweens, credits string) *HUD {
	h := &HUD{
		Score:   NewLabel(scoreText(0), Vec2{}),
		Stage:   NewLabel("", Vec2{}),
		Main:    NewLabel("", Vec2{}),
		Credits: NewLabel(credits, Vec2{}),
		timers:  timers,
		tweens:  tweens,
	}
	h.Main.Alpha = 0
	h.Credits.Alpha = 0
	return h
}

func scoreText(score int) string {
	return fmt.Sprintf("SCORE:  %d", score)
}

// SetScore updates the score readout.
func (h *HUD) SetScore(score int) {
	h.Score.Text = scoreText(score)
}

// SetStage types text into the stage banner one letter per 100ms, holds it
// for three seconds, fades it out over two and then clears it.
func (h *HUD) SetStage(text string) {
	n := h.typewrite(h.Stage, text)
	h.timers.After(time.Duration(n)*letterDelay+stageHold, func() {
		h.tweens.Fade(&h.Stage.Alpha, 0, stageFade, ease.Linear, func() {
			h.Stage.Text = ""
			h.Stage.Alpha = 1
		})
	})
}

// SetMain shows the large center banner with the same typewriter reveal.
func (h *HUD) SetMain(text string) {
	h.Main.Alpha = 1
	n := h.typewrite(h.Main, text)
	h.timers.After(time.Duration(n)*letterDelay+mainHold, func() {
		h.tweens.Fade(&h.Main.Alpha, 0, mainFade, ease.Linear, func() {
			h.Main.Text = ""
		})
	})
}

// ShowCredits fades the credits in after a delay.
func (h *HUD) ShowCredits() {
	h.timers.After(creditsDelay, func() {
		h.tweens.Fade(&h.Credits.Alpha, 1, creditsFadeTime, ease.Linear, nil)
	})
}

// typewrite schedules one reveal per letter and returns the letter count.
// Earlier messages still in flight are not cancelled.
func (h *HUD) typewrite(l *Label, text string) int {
	letters := []rune(text)
	for i := range letters {
		shown := string(letters[:i+1])
		h.timers.After(time.Duration(i)*letterDelay, func() {
			l.Text = shown
		})
	}
	return len(letters)
}
