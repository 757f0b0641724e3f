package forms

import (
	"strings"
	"time"

	"github.com/coursemind/landing-forms/internal/models"
	"github.com/coursemind/landing-forms/internal/validation"
	apperrors "github.com/coursemind/landing-forms/pkg/errors"
)

// User-facing hint texts
const (
	hintCheckFields     = "Проверь поля формы — есть незаполненные или некорректные."
	hintTelegramContact = "Для Telegram укажи username: @username (латиница/цифры/_, 5–32 символа)."
	hintEmailContact    = "Для Email укажи корректный адрес вида name@example.com."
	hintConsultAccepted = "Запись принята (имитация). Данные сохранены локально."
	hintDemoAccepted    = "Заявка отправлена (имитация). Данные сохранены локально."
	hintConsultRestored = "Есть сохранённая последняя запись на консультацию."
	hintDemoRestored    = "Есть сохранённая последняя заявка на демо."
	hintSaveFailed      = "Не удалось сохранить данные. Попробуй ещё раз."
)

// ValidationKind tells which validation stage rejected a submission
type ValidationKind string

const (
	// KindConstraint is an input-level failure: a missing or malformed field
	KindConstraint ValidationKind = "constraint"
	// KindStructure is a contact that does not fit the selected channel
	KindStructure ValidationKind = "structure"
)

// ValidationError describes a rejected submission. It is shown to the user, never fatal.
type ValidationError struct {
	Kind   ValidationKind
	Hint   string
	Issues []validation.FieldIssue
}

func (e *ValidationError) Error() string {
	return string(e.Kind) + ": " + e.Hint
}

// Unwrap lets callers match a rejection with errors.Is(err, apperrors.ErrInvalidInput)
func (e *ValidationError) Unwrap() error {
	return apperrors.ErrInvalidInput
}

// HandleConsultation validates raw consultation fields and builds the payload
func HandleConsultation(fields models.ConsultationFields, now time.Time) (*models.ConsultationRequest, *ValidationError) {
	if issues := validation.CheckValidity(fields); len(issues) > 0 {
		return nil, &ValidationError{Kind: KindConstraint, Hint: hintCheckFields, Issues: issues}
	}

	channel := models.Channel(fields.Channel)
	contact := strings.TrimSpace(fields.Contact)

	switch channel {
	case models.ChannelTelegram:
		if !validation.IsTelegramUsername(contact) {
			return nil, &ValidationError{Kind: KindStructure, Hint: hintTelegramContact}
		}
	case models.ChannelEmail:
		if !validation.IsEmail(contact) {
			return nil, &ValidationError{Kind: KindStructure, Hint: hintEmailContact}
		}
	}

	return &models.ConsultationRequest{
		Role:      models.Role(fields.Role),
		Channel:   channel,
		Contact:   contact,
		Time:      fields.Time,
		Comment:   strings.TrimSpace(fields.Comment),
		CreatedAt: stamp(now),
	}, nil
}

// HandleDemo validates raw demo fields and builds the payload.
// The email gets only the input-level check, on the value an email input would hold.
func HandleDemo(fields models.DemoFields, now time.Time) (*models.DemoRequest, *ValidationError) {
	fields.Email = validation.SanitizeEmailInput(fields.Email)
	if issues := validation.CheckValidity(fields); len(issues) > 0 {
		return nil, &ValidationError{Kind: KindConstraint, Hint: hintCheckFields, Issues: issues}
	}

	return &models.DemoRequest{
		Name:      strings.TrimSpace(fields.Name),
		Email:     fields.Email,
		Status:    models.Role(fields.Status),
		Message:   strings.TrimSpace(fields.Message),
		CreatedAt: stamp(now),
	}, nil
}

func stamp(now time.Time) string {
	return models.Timestamp(now)
}
