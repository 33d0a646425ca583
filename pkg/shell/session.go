// Package shell connects user intents to the transformation engine and a
// render target.
package shell

import (
	"github.com/akeil/affinetool"
	"github.com/akeil/affinetool/internal/logging"
)

// Target is something that displays a single polygon.
type Target interface {
	// ClearAndAdd removes whatever shape is displayed and adds p.
	ClearAndAdd(p affinetool.Polygon) error
	// Flush redraws the target.
	Flush() error
}

// Session holds the state of one interactive session.
//
// The canonical polygon and its homogeneous form are fixed when the
// session is created. Every intent is applied to them, not to the
// currently displayed polygon.
type Session struct {
	canonical affinetool.Polygon
	hm        affinetool.Homogeneous
	target    Target
	last      affinetool.Intent
	current   affinetool.Polygon
}

// NewSession creates a session for the given polygon and renders it once.
//
// A nil polygon selects the canonical polygon.
func NewSession(p affinetool.Polygon, t Target) (*Session, error) {
	if p == nil {
		p = affinetool.Canonical()
	}
	err := p.Validate()
	if err != nil {
		return nil, err
	}

	s := &Session{
		canonical: p.Copy(),
		hm:        affinetool.Homogenize(p),
		target:    t,
	}

	err = s.Handle(affinetool.Reset)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// Handle applies the intent and replaces the displayed polygon.
func (s *Session) Handle(i affinetool.Intent) error {
	var p affinetool.Polygon
	if i == affinetool.Reset {
		p = s.canonical.Copy()
	} else {
		p = i.Apply(s.hm)
	}
	logging.Debug("Intent %v -> %v", i, p)

	err := s.target.ClearAndAdd(p)
	if err != nil {
		return affinetool.Wrap(err, "failed to display %v", i)
	}
	err = s.target.Flush()
	if err != nil {
		return affinetool.Wrap(err, "failed to redraw after %v", i)
	}

	s.last = i
	s.current = p
	return nil
}

// HandleName parses the intent name and handles it.
func (s *Session) HandleName(name string) (affinetool.Intent, error) {
	i, err := affinetool.ParseIntent(name)
	if err != nil {
		return i, err
	}
	return i, s.Handle(i)
}

// Current returns a copy of the displayed polygon.
func (s *Session) Current() affinetool.Polygon {
	return s.current.Copy()
}

// Last returns the most recently handled intent.
func (s *Session) Last() affinetool.Intent {
	return s.last
}

// Canonical returns a copy of the polygon the session started with.
func (s *Session) Canonical() affinetool.Polygon {
	return s.canonical.Copy()
}
