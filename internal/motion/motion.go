// Package motion describes the home page entrance animations.
//
// Each Step is rendered as CSS custom properties on the element it animates;
// static/site.css turns them into a keyframe animation. The browser does the
// animating, the schedule lives here.
package motion

import (
	"fmt"
	"html/template"
	"strings"
	"time"
)

// Ease uses GSAP easing names.
type Ease string

const (
	Power3Out Ease = "power3.out"
	Power4Out Ease = "power4.out"
)

var curves = map[Ease]string{
	Power3Out: "cubic-bezier(0.215, 0.61, 0.355, 1)",
	Power4Out: "cubic-bezier(0.165, 0.84, 0.44, 1)",
}

// CSS returns the timing function for e, or ease-out for unknown names.
func (e Ease) CSS() string {
	if c, ok := curves[e]; ok {
		return c
	}
	return "ease-out"
}

// Step is one "from" tween: the target starts OffsetY pixels lower and
// transparent, and settles into place over Duration. Target is a class
// selector.
type Step struct {
	Target   string
	Duration time.Duration
	OffsetY  int
	Delay    time.Duration
	Stagger  time.Duration
	Ease     Ease
}

// DelayAt returns the start delay of the i-th element matched by the step.
func (s Step) DelayAt(i int) time.Duration {
	if i < 0 {
		i = 0
	}
	return s.Delay + time.Duration(i)*s.Stagger
}

// Class is the class name the target selector matches.
func (s Step) Class() string {
	return strings.TrimPrefix(s.Target, ".")
}

// Style renders the inline CSS variables for the i-th element.
func (s Step) Style(i int) template.CSS {
	return template.CSS(fmt.Sprintf(
		"--enter-duration:%s;--enter-delay:%s;--enter-y:%dpx;--enter-ease:%s",
		seconds(s.Duration), seconds(s.DelayAt(i)), s.OffsetY, s.Ease.CSS(),
	))
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%gs", d.Seconds())
}

var (
	HeroTitle = Step{
		Target:   ".hero-title",
		Duration: 1200 * time.Millisecond,
		OffsetY:  100,
		Ease:     Power4Out,
	}
	HeroSubtitle = Step{
		Target:   ".hero-subtitle",
		Duration: time.Second,
		OffsetY:  50,
		Delay:    300 * time.Millisecond,
		Ease:     Power3Out,
	}
	HeroDescription = Step{
		Target:   ".hero-description",
		Duration: time.Second,
		OffsetY:  30,
		Delay:    500 * time.Millisecond,
		Ease:     Power3Out,
	}
	Card = Step{
		Target:   ".bento-card",
		Duration: 800 * time.Millisecond,
		OffsetY:  100,
		Stagger:  150 * time.Millisecond,
		Ease:     Power3Out,
	}
)

// Schedule is the set of entrance steps handed to the home template.
type Schedule struct {
	Skip        bool
	Title       Step
	Subtitle    Step
	Description Step
	Card        Step
}

// Home returns the home page schedule. skip is set when the visitor came
// back from a detail page and has already seen the entrance.
func Home(skip bool) Schedule {
	return Schedule{
		Skip:        skip,
		Title:       HeroTitle,
		Subtitle:    HeroSubtitle,
		Description: HeroDescription,
		Card:        Card,
	}
}

// CardStyle is the style for the i-th card, or empty when skipped.
func (s Schedule) CardStyle(i int) template.CSS {
	if s.Skip {
		return ""
	}
	return s.Card.Style(i)
}
