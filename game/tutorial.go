package game

import (
	"github.com/lixenwraith/netrunner/engine"
	"github.com/lixenwraith/netrunner/locale"
)

// Region names a screen area a tutorial step points at
// The renderer resolves regions to coordinates
type Region int

const (
	RegionNone Region = iota
	RegionSecurityLayers
	RegionCommandList
	RegionPower
	RegionTrace
	RegionFirstCommand
)

var regionNames = [...]string{"none", "security-layers", "command-list", "power", "trace", "first-command"}

func (r Region) String() string {
	if int(r) < len(regionNames) {
		return regionNames[r]
	}
	return "unknown"
}

// TutorialStep is one overlay message
// A step with a Complete predicate advances itself once the predicate holds
// and cannot be dismissed manually
type TutorialStep struct {
	Key      string
	Region   Region
	Complete func(*engine.Session) bool
}

// Message returns the localized step text
func (s TutorialStep) Message() string {
	return locale.Get(s.Key)
}

// NeedsAction reports whether the step waits on the player rather than a dismissal
func (s TutorialStep) NeedsAction() bool {
	return s.Complete != nil
}

func firstLayerBreached(s *engine.Session) bool {
	l, ok := s.Layer(0)
	return ok && l.Breached
}

// TutorialSteps is the overlay sequence shown on the tutorial path
var TutorialSteps = []TutorialStep{
	{Key: locale.TutorialWelcome},
	{Key: locale.TutorialLayers, Region: RegionSecurityLayers},
	{Key: locale.TutorialCommands, Region: RegionCommandList},
	{Key: locale.TutorialPower, Region: RegionPower},
	{Key: locale.TutorialTrace, Region: RegionTrace},
	{Key: locale.TutorialFirstAttack, Region: RegionFirstCommand, Complete: firstLayerBreached},
	{Key: locale.TutorialCooldown, Region: RegionFirstCommand},
	{Key: locale.TutorialFarewell},
}

// Tutorial is the overlay cursor
type Tutorial struct {
	steps   []TutorialStep
	index   int
	visible bool
	// completed is set once the sequence was finished or skipped, enabling re-show
	completed bool
}

func NewTutorial(steps []TutorialStep) *Tutorial {
	return &Tutorial{steps: steps}
}

// Start shows the first step
func (t *Tutorial) Start() {
	t.index = 0
	t.visible = len(t.steps) > 0
}

// Current returns the visible step
func (t *Tutorial) Current() (TutorialStep, bool) {
	if !t.visible || t.index >= len(t.steps) {
		return TutorialStep{}, false
	}
	return t.steps[t.index], true
}

func (t *Tutorial) Index() int      { return t.index }
func (t *Tutorial) Len() int        { return len(t.steps) }
func (t *Tutorial) Visible() bool   { return t.visible }
func (t *Tutorial) Completed() bool { return t.completed }

// Advance dismisses the current step; returns whether the cursor moved
func (t *Tutorial) Advance() bool {
	step, ok := t.Current()
	if !ok || step.NeedsAction() {
		return false
	}
	t.next()
	return true
}

// Check advances past an action step whose predicate now holds
func (t *Tutorial) Check(s *engine.Session) bool {
	step, ok := t.Current()
	if !ok || !step.NeedsAction() || s == nil || !step.Complete(s) {
		return false
	}
	t.next()
	return true
}

// Skip hides the overlay and marks the sequence done
func (t *Tutorial) Skip() {
	t.visible = false
	t.completed = true
}

// Hide closes the overlay without marking it done
func (t *Tutorial) Hide() {
	t.visible = false
}

func (t *Tutorial) next() {
	t.index++
	if t.index >= len(t.steps) {
		t.index = len(t.steps) - 1
		t.Skip()
	}
}
