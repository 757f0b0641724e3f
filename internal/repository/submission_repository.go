package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/coursemind/landing-forms/internal/models"
	"github.com/coursemind/landing-forms/internal/storage"
	"github.com/coursemind/landing-forms/pkg/logger"
	"go.uber.org/zap"
)

// SubmissionRepository keeps the last submission of each form as JSON text
type SubmissionRepository struct {
	store storage.Store
}

// NewSubmissionRepository creates a repository over store
func NewSubmissionRepository(store storage.Store) *SubmissionRepository {
	return &SubmissionRepository{store: store}
}

// Save serialises payload and overwrites whatever is stored at key
func (r *SubmissionRepository) Save(ctx context.Context, key string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := r.store.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// Load decodes the value at key into out.
// It reports false when nothing is stored or the stored text does not parse;
// only store failures are returned as errors.
func (r *SubmissionRepository) Load(ctx context.Context, key string, out any) (bool, error) {
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", key, err)
	}

	trimmed := bytes.TrimSpace([]byte(raw))
	if !ok || len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return false, nil
	}

	if err := json.Unmarshal(trimmed, out); err != nil {
		logger.Debug("Ignoring unreadable saved payload", zap.String("key", key), zap.Error(err))
		return false, nil
	}
	return true, nil
}

func (r *SubmissionRepository) SaveConsultation(ctx context.Context, req *models.ConsultationRequest) error {
	return r.Save(ctx, ConsultationKey, req)
}

// LastConsultation returns nil when no consultation was saved
func (r *SubmissionRepository) LastConsultation(ctx context.Context) (*models.ConsultationRequest, error) {
	var req models.ConsultationRequest
	found, err := r.Load(ctx, ConsultationKey, &req)
	if err != nil || !found {
		return nil, err
	}
	return &req, nil
}

func (r *SubmissionRepository) SaveDemo(ctx context.Context, req *models.DemoRequest) error {
	return r.Save(ctx, DemoKey, req)
}

// LastDemo returns nil when no demo request was saved
func (r *SubmissionRepository) LastDemo(ctx context.Context) (*models.DemoRequest, error) {
	var req models.DemoRequest
	found, err := r.Load(ctx, DemoKey, &req)
	if err != nil || !found {
		return nil, err
	}
	return &req, nil
}
