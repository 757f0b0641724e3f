package forms

import (
	"time"

	"github.com/coursemind/landing-forms/internal/validation"
	apperrors "github.com/coursemind/landing-forms/pkg/errors"
	"github.com/coursemind/landing-forms/pkg/logger"
	"github.com/coursemind/landing-forms/pkg/metrics"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// State is what the user currently sees next to the form
type State int

const (
	// StateIdle means no feedback is shown for the current interaction
	StateIdle State = iota
	// StateFeedbackShown means a hint, and maybe the result panel, is visible
	StateFeedbackShown
)

func (s State) String() string {
	if s == StateFeedbackShown {
		return "feedback-shown"
	}
	return "idle"
}

// Outcome reports what one Submit did
type Outcome struct {
	SubmissionID string
	Accepted     bool
	Hint         string
	HintKind     HintKind
	// Rejection is set when validation stopped the submission
	Rejection *ValidationError
}

// Option customises a controller
type Option func(*controller)

// WithClock replaces time.Now as the source of createdAt
func WithClock(now func() time.Time) Option {
	return func(c *controller) {
		c.now = now
	}
}

// WithIDGenerator replaces the submission id generator used for log correlation
func WithIDGenerator(newID func() string) Option {
	return func(c *controller) {
		c.newID = newID
	}
}

// controller is the part shared by both forms: element lookup, hints, state and bookkeeping
type controller struct {
	name   string
	form   Form
	hint   Hint
	result Result
	now    func() time.Time
	newID  func() string
	state  State
}

func newController(name string, doc Document, sel Selectors, opts []Option) (*controller, error) {
	if doc == nil {
		return nil, apperrors.MissingElementError("document")
	}

	c := &controller{
		name:  name,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}

	var ok bool
	if c.form, ok = doc.Form(sel.Form); !ok {
		return nil, apperrors.MissingElementError(sel.Form)
	}
	if c.hint, ok = doc.Hint(sel.Hint); !ok {
		return nil, apperrors.MissingElementError(sel.Hint)
	}
	if c.result, ok = doc.Result(sel.Result); !ok {
		return nil, apperrors.MissingElementError(sel.Result)
	}
	return c, nil
}

// State returns the current feedback state
func (c *controller) State() State {
	return c.state
}

// Touch marks the start of a new interaction cycle
func (c *controller) Touch() {
	c.state = StateIdle
}

func (c *controller) setHint(text string, kind HintKind) {
	c.hint.SetHint(text, kind)
	c.state = StateFeedbackShown
}

func (c *controller) reject(id string, verr *ValidationError) *Outcome {
	if verr.Kind == KindConstraint {
		c.form.ReportValidity(verr.Issues)
	}
	c.setHint(verr.Hint, HintError)

	metrics.FormSubmissions.WithLabelValues(c.name, "invalid").Inc()
	logger.LogSubmission(c.name, id, "invalid",
		zap.String("kind", string(verr.Kind)),
		zap.Strings("fields", issueFields(verr.Issues)),
	)

	return &Outcome{SubmissionID: id, Hint: verr.Hint, HintKind: HintError, Rejection: verr}
}

func (c *controller) failSave(id string, err error) (*Outcome, error) {
	c.setHint(hintSaveFailed, HintError)

	metrics.FormSubmissions.WithLabelValues(c.name, "error").Inc()
	logger.LogSubmission(c.name, id, "error", zap.Error(err))

	return &Outcome{SubmissionID: id, Hint: hintSaveFailed, HintKind: HintError}, err
}

func (c *controller) accept(id, markup, hint string) *Outcome {
	c.result.Show(markup)
	c.setHint(hint, HintOK)
	c.form.Reset()

	metrics.FormSubmissions.WithLabelValues(c.name, "ok").Inc()
	logger.LogSubmission(c.name, id, "ok")

	return &Outcome{SubmissionID: id, Accepted: true, Hint: hint, HintKind: HintOK}
}

func issueFields(issues []validation.FieldIssue) []string {
	fields := make([]string, 0, len(issues))
	for _, issue := range issues {
		fields = append(fields, issue.Field)
	}
	return fields
}
