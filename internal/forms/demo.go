package forms

import (
	"context"
	"fmt"

	"github.com/coursemind/landing-forms/internal/models"
	"github.com/coursemind/landing-forms/internal/render"
	"github.com/coursemind/landing-forms/internal/repository"
	"github.com/coursemind/landing-forms/internal/validation"
)

// DemoController drives the demo request form
type DemoController struct {
	*controller
	repo repository.DemoSlot
}

// NewDemoController binds the demo form on doc.
// A saved request only produces a hint; it is not rendered until the next submit.
func NewDemoController(ctx context.Context, doc Document, repo repository.DemoSlot, opts ...Option) (*DemoController, error) {
	base, err := newController("demo", doc, DemoSelectors, opts)
	if err != nil {
		return nil, err
	}
	c := &DemoController{controller: base, repo: repo}

	saved, err := repo.LastDemo(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to restore demo request: %w", err)
	}
	if saved != nil {
		c.setHint(hintDemoRestored, HintInfo)
	}
	return c, nil
}

// Fields reads the current raw values off the form
func (c *DemoController) Fields() models.DemoFields {
	return models.DemoFields{
		Name:    c.form.Value(FieldName),
		Email:   validation.SanitizeEmailInput(c.form.Value(FieldEmail)),
		Status:  c.form.Value(FieldStatus),
		Message: c.form.Value(FieldMessage),
	}
}

// Submit validates, saves and shows the demo request
func (c *DemoController) Submit(ctx context.Context) (*Outcome, error) {
	id := c.newID()

	req, verr := HandleDemo(c.Fields(), c.now())
	if verr != nil {
		return c.reject(id, verr), nil
	}

	if err := c.repo.SaveDemo(ctx, req); err != nil {
		return c.failSave(id, err)
	}

	return c.accept(id, render.Demo(req), hintDemoAccepted), nil
}
