// Package form holds the state of the bill form and the rules for changing it.
//
// A Controller owns three values: the raw bill text, the tip slider fraction
// and the split count. The presentation layer forwards user events into the
// named operations and reads derived values back. Controllers are not safe
// for concurrent use; the event loop that owns one serializes all calls.
package form

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/mmynk/tipsplit/internal/calculator"
)

// ErrInvalidRange is returned when a split range could let the count reach zero
// or has its bounds reversed.
var ErrInvalidRange = errors.New("invalid split range")

// Range bounds the split count, both ends inclusive.
type Range struct {
	Min int
	Max int
}

// DefaultRange is the split range used when none is configured.
var DefaultRange = Range{Min: 1, Max: 10}

// Validate checks that the range keeps the split count at one or above.
func (r Range) Validate() error {
	if r.Min < 1 {
		return fmt.Errorf("%w: minimum %d is below 1", ErrInvalidRange, r.Min)
	}
	if r.Max < r.Min {
		return fmt.Errorf("%w: maximum %d is below minimum %d", ErrInvalidRange, r.Max, r.Min)
	}
	return nil
}

// State is a snapshot of the form.
type State struct {
	BillText    string
	TipFraction float64
	SplitCount  int
}

// Valid reports whether the bill text holds anything besides whitespace.
func (s State) Valid() bool {
	return strings.TrimSpace(s.BillText) != ""
}

// TipPercentage is the slider fraction as a whole percentage.
func (s State) TipPercentage() int {
	return calculator.TipPercentage(s.TipFraction)
}

// Summary holds the values derived from a State.
type Summary struct {
	Bill           float64
	TipPercentage  int
	SplitBy        int
	TotalTip       float64
	TotalPerPerson float64
}

// Summarize parses the bill text and computes the tip and per-person total.
// A bill that does not parse returns calculator.ErrInvalidBill together with
// a zero-amount summary that still carries the tip and split.
func (s State) Summarize() (Summary, error) {
	sum := Summary{
		TipPercentage: s.TipPercentage(),
		SplitBy:       s.SplitCount,
	}
	bill, err := calculator.ParseBill(s.BillText)
	if err != nil {
		return sum, err
	}
	sum.Bill = bill
	sum.TotalTip = calculator.CalculateTotalTip(bill, sum.TipPercentage)
	sum.TotalPerPerson = calculator.CalculateTotalPerPerson(bill, s.SplitCount, sum.TipPercentage)
	return sum, nil
}

// Option configures a Controller.
type Option func(*Controller)

// WithOnCommit sets the callback that receives the trimmed bill text when the
// user confirms a valid bill.
func WithOnCommit(fn func(billText string)) Option {
	return func(c *Controller) {
		c.onCommit = fn
	}
}

// WithOnDismiss sets the hook asked to dismiss the input (hide the keyboard,
// blur the field) after a successful confirm.
func WithOnDismiss(fn func()) Option {
	return func(c *Controller) {
		c.onDismiss = fn
	}
}

// Controller mutates form state through the named operations only.
type Controller struct {
	state     State
	rng       Range
	onCommit  func(string)
	onDismiss func()
	observers []*observerEntry
}

// New creates a controller with an empty bill, a zero tip and the split count
// at the range minimum.
func New(rng Range, opts ...Option) (*Controller, error) {
	if err := rng.Validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		state: State{SplitCount: rng.Min},
		rng:   rng,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Range returns the configured split range.
func (c *Controller) Range() Range { return c.rng }

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State { return c.state }

// Valid reports whether the form can be confirmed.
func (c *Controller) Valid() bool { return c.state.Valid() }

// Summary computes the totals for the current state.
func (c *Controller) Summary() (Summary, error) { return c.state.Summarize() }

// SetBillText replaces the bill text. No validation happens here.
func (c *Controller) SetBillText(s string) {
	if s == c.state.BillText {
		return
	}
	c.state.BillText = s
	c.emit(EventBillChanged)
}

// SetTipFraction replaces the slider fraction, clamped to [0, 1].
// NaN is treated as 0.
func (c *Controller) SetTipFraction(f float64) {
	switch {
	case math.IsNaN(f), f < 0:
		f = 0
	case f > 1:
		f = 1
	}
	if f == c.state.TipFraction {
		return
	}
	c.state.TipFraction = f
	c.emit(EventTipChanged)
}

// IncrementSplit adds one person unless the range maximum is reached.
// It reports whether the count changed.
func (c *Controller) IncrementSplit() bool {
	if c.state.SplitCount >= c.rng.Max {
		return false
	}
	c.state.SplitCount++
	c.emit(EventSplitChanged)
	return true
}

// DecrementSplit removes one person unless the range minimum is reached.
// It reports whether the count changed.
func (c *Controller) DecrementSplit() bool {
	if c.state.SplitCount <= c.rng.Min {
		return false
	}
	c.state.SplitCount--
	c.emit(EventSplitChanged)
	return true
}

// ConfirmBill forwards the trimmed bill text to the commit callback and asks
// the presentation layer to dismiss the input. Blank bills are ignored.
func (c *Controller) ConfirmBill() bool {
	if !c.state.Valid() {
		return false
	}
	if c.onCommit != nil {
		c.onCommit(strings.TrimSpace(c.state.BillText))
	}
	if c.onDismiss != nil {
		c.onDismiss()
	}
	c.emit(EventConfirmed)
	return true
}

// Reset returns the form to its initial state.
func (c *Controller) Reset() {
	initial := State{SplitCount: c.rng.Min}
	if c.state == initial {
		return
	}
	c.state = initial
	c.emit(EventReset)
}
