package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleLabel(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{"teacher", "Преподаватель"},
		{"student", "Студент"},
		{"admin", "Администратор"},
		{"other", "—"},
		{"", "—"},
		{"Student", "—"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoleLabel(tt.code))
			assert.Equal(t, tt.expected, StatusLabel(tt.code))
		})
	}
}

func TestChannelLabel(t *testing.T) {
	assert.Equal(t, "Telegram", ChannelLabel("telegram"))
	assert.Equal(t, "Email", ChannelLabel("email"))
	assert.Equal(t, LabelFallback, ChannelLabel("phone"))
	assert.Equal(t, LabelFallback, ChannelLabel(""))
}

func TestChannel_Placeholder(t *testing.T) {
	p, ok := ChannelTelegram.Placeholder()
	assert.True(t, ok)
	assert.Equal(t, "@username", p)

	p, ok = ChannelEmail.Placeholder()
	assert.True(t, ok)
	assert.Equal(t, "name@example.com", p)

	_, ok = Channel("fax").Placeholder()
	assert.False(t, ok)
}

func TestVocabulariesHaveLabels(t *testing.T) {
	for _, r := range Roles {
		assert.NotEqual(t, LabelFallback, r.Label(), string(r))
	}
	for _, c := range Channels {
		assert.NotEqual(t, LabelFallback, c.Label(), string(c))
	}
}
