package forms

import (
	"context"
	"fmt"

	"github.com/coursemind/landing-forms/internal/models"
	"github.com/coursemind/landing-forms/internal/render"
	"github.com/coursemind/landing-forms/internal/repository"
	"github.com/coursemind/landing-forms/pkg/logger"
	"go.uber.org/zap"
)

// ConsultController drives the consultation booking form
type ConsultController struct {
	*controller
	repo repository.ConsultationSlot
}

// NewConsultController binds the consultation form on doc and restores the last booking.
// A saved booking is rendered straight away.
func NewConsultController(ctx context.Context, doc Document, repo repository.ConsultationSlot, opts ...Option) (*ConsultController, error) {
	base, err := newController("consult", doc, ConsultSelectors, opts)
	if err != nil {
		return nil, err
	}
	c := &ConsultController{controller: base, repo: repo}

	saved, err := repo.LastConsultation(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to restore consultation: %w", err)
	}
	if saved != nil {
		logger.Debug("Restored saved consultation", zap.String("created_at", saved.CreatedAt))
		c.setHint(hintConsultRestored, HintInfo)
		c.result.Show(render.Consultation(saved))
	}
	return c, nil
}

// OnChange follows the channel selector with a matching contact placeholder
func (c *ConsultController) OnChange() {
	c.Touch()
	channel := models.Channel(c.form.Value(FieldChannel))
	if placeholder, ok := channel.Placeholder(); ok {
		c.form.SetPlaceholder(FieldContact, placeholder)
	}
}

// Fields reads the current raw values off the form
func (c *ConsultController) Fields() models.ConsultationFields {
	return models.ConsultationFields{
		Role:    c.form.Value(FieldRole),
		Channel: c.form.Value(FieldChannel),
		Contact: c.form.Value(FieldContact),
		Time:    c.form.Value(FieldTime),
		Comment: c.form.Value(FieldComment),
	}
}

// Submit validates, saves and shows the booking.
// Rejections come back in the Outcome; the error is only for failed saves.
func (c *ConsultController) Submit(ctx context.Context) (*Outcome, error) {
	id := c.newID()

	req, verr := HandleConsultation(c.Fields(), c.now())
	if verr != nil {
		return c.reject(id, verr), nil
	}

	if err := c.repo.SaveConsultation(ctx, req); err != nil {
		return c.failSave(id, err)
	}

	return c.accept(id, render.Consultation(req), hintConsultAccepted), nil
}
