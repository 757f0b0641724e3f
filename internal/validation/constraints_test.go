package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/coursemind/landing-forms/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConsultation() models.ConsultationFields {
	return models.ConsultationFields{
		Role:    "student",
		Channel: "telegram",
		Contact: "@joe_99",
		Time:    "10:00",
	}
}

func TestCheckValidity_ConsultationValid(t *testing.T) {
	assert.Empty(t, CheckValidity(validConsultation()))
}

func TestCheckValidity_ConsultationIssues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *models.ConsultationFields)
		field   string
		message string
	}{
		{"missing role", func(f *models.ConsultationFields) { f.Role = "" }, "role", "Заполните это поле."},
		{"unknown role", func(f *models.ConsultationFields) { f.Role = "parent" }, "role", "Выберите один из вариантов."},
		{"unknown channel", func(f *models.ConsultationFields) { f.Channel = "phone" }, "channel", "Выберите один из вариантов."},
		{"missing contact", func(f *models.ConsultationFields) { f.Contact = "" }, "contact", "Заполните это поле."},
		{"bad time", func(f *models.ConsultationFields) { f.Time = "25:00" }, "time", "Укажите время в формате ЧЧ:ММ."},
		{"time without minutes", func(f *models.ConsultationFields) { f.Time = "10" }, "time", "Укажите время в формате ЧЧ:ММ."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validConsultation()
			tt.mutate(&fields)

			issues := CheckValidity(fields)
			require.Len(t, issues, 1)
			assert.Equal(t, tt.field, issues[0].Field)
			assert.Equal(t, tt.message, issues[0].Message)
		})
	}
}

func TestCheckValidity_CommentIsOptional(t *testing.T) {
	fields := validConsultation()
	fields.Comment = ""
	assert.Empty(t, CheckValidity(fields))
}

func TestCheckValidity_Demo(t *testing.T) {
	valid := models.DemoFields{
		Name:    "Анна",
		Email:   "anna@example.com",
		Status:  "teacher",
		Message: "Хотим демо",
	}
	assert.Empty(t, CheckValidity(valid))

	invalid := valid
	invalid.Email = "anna"
	invalid.Message = ""
	issues := CheckValidity(invalid)
	require.Len(t, issues, 2)
	assert.Equal(t, FieldIssue{Field: "email", Message: "Введите адрес электронной почты."}, issues[0])
	assert.Equal(t, FieldIssue{Field: "message", Message: "Заполните это поле."}, issues[1])
}

func TestCheckValidity_NoLengthCaps(t *testing.T) {
	fields := validConsultation()
	fields.Comment = strings.Repeat("к", 2001)
	fields.Contact = "@" + strings.Repeat("a", 300)
	assert.Empty(t, CheckValidity(fields))
}

func TestCheckValidity_DemoDotlessDomain(t *testing.T) {
	assert.Empty(t, CheckValidity(models.DemoFields{
		Name:    "Анна",
		Email:   "a@localhost",
		Status:  "admin",
		Message: "Хотим демо",
	}))
}

func TestParseValidationErrors_NonValidatorError(t *testing.T) {
	issues := ParseValidationErrors(errors.New("boom"))
	require.Len(t, issues, 1)
	assert.Equal(t, "boom", issues[0].Message)
	assert.Empty(t, ParseValidationErrors(nil))
}
