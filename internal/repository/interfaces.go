package repository

import (
	"context"

	"github.com/coursemind/landing-forms/internal/models"
)

// Well-known slots, one per form. Each holds only the latest payload.
const (
	ConsultationKey = "coursemind_consult_request_last"
	DemoKey         = "coursemind_demo_request_last"
)

// ConsultationSlot is the consultation form's view of the repository
type ConsultationSlot interface {
	SaveConsultation(ctx context.Context, req *models.ConsultationRequest) error
	LastConsultation(ctx context.Context) (*models.ConsultationRequest, error)
}

// DemoSlot is the demo form's view of the repository
type DemoSlot interface {
	SaveDemo(ctx context.Context, req *models.DemoRequest) error
	LastDemo(ctx context.Context) (*models.DemoRequest, error)
}

var _ ConsultationSlot = (*SubmissionRepository)(nil)
var _ DemoSlot = (*SubmissionRepository)(nil)
