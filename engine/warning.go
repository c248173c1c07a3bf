package engine

import (
	"fmt"

	"github.com/hupe1980/statvec/model"
)

// Warning is a non-fatal condition raised by one invocation.
type Warning struct {
	Op   Op
	Cond model.Cond
}

// String formats the warning as "In <op>: <message>".
func (w Warning) String() string {
	return fmt.Sprintf("In %s: %s", w.Op.Symbol(), w.Cond.Message())
}

// Reporter receives warnings.
type Reporter interface {
	Warn(w Warning)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(w Warning)

// Warn calls f.
func (f ReporterFunc) Warn(w Warning) { f(w) }

// WarningCollector records warnings in order.
type WarningCollector struct {
	Warnings []Warning
}

// Warn records w.
func (c *WarningCollector) Warn(w Warning) { c.Warnings = append(c.Warnings, w) }

// Conds returns the union of all recorded conditions.
func (c *WarningCollector) Conds() model.Cond {
	var out model.Cond
	for _, w := range c.Warnings {
		out |= w.Cond
	}
	return out
}

// Reset drops recorded warnings.
func (c *WarningCollector) Reset() { c.Warnings = c.Warnings[:0] }

type noopReporter struct{}

func (noopReporter) Warn(Warning) {}

// latch accumulates conditions during one invocation.
type latch struct {
	cond model.Cond
}

func (l *latch) raise(c model.Cond) { l.cond |= c }

// flush reports each latched condition once.
func (l *latch) flush(r Reporter, op Op) {
	l.cond.Each(func(c model.Cond) {
		r.Warn(Warning{Op: op, Cond: c})
	})
	l.cond = 0
}
