package models

// LabelFallback is shown for any code outside the known vocabulary
const LabelFallback = "—"

// Role is who is booking: the audience vocabulary shared by both forms
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Roles lists the vocabulary in display order
var Roles = []Role{RoleTeacher, RoleStudent, RoleAdmin}

// Label returns the display string, or LabelFallback for unknown roles
func (r Role) Label() string {
	switch r {
	case RoleTeacher:
		return "Преподаватель"
	case RoleStudent:
		return "Студент"
	case RoleAdmin:
		return "Администратор"
	default:
		return LabelFallback
	}
}

// Channel is how the consultation contact should be reached
type Channel string

const (
	ChannelTelegram Channel = "telegram"
	ChannelEmail    Channel = "email"
)

// Channels lists the vocabulary in display order
var Channels = []Channel{ChannelTelegram, ChannelEmail}

// Label returns the display string, or LabelFallback for unknown channels
func (c Channel) Label() string {
	switch c {
	case ChannelTelegram:
		return "Telegram"
	case ChannelEmail:
		return "Email"
	default:
		return LabelFallback
	}
}

// Placeholder is the contact hint for the channel; ok is false for unknown channels
func (c Channel) Placeholder() (string, bool) {
	switch c {
	case ChannelTelegram:
		return "@username", true
	case ChannelEmail:
		return "name@example.com", true
	default:
		return "", false
	}
}

// RoleLabel resolves a raw role code
func RoleLabel(code string) string {
	return Role(code).Label()
}

// ChannelLabel resolves a raw channel code
func ChannelLabel(code string) string {
	return Channel(code).Label()
}

// StatusLabel resolves a demo request status; statuses reuse the role vocabulary
func StatusLabel(code string) string {
	return Role(code).Label()
}
