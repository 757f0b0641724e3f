package models

import "time"

// TimestampLayout is the createdAt format: ISO 8601 in UTC with exactly three fractional digits
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp formats t as a createdAt value
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ConsultationFields are the raw values of the consultation form, as the page reports them.
// The validate tags play the part of the input-level constraints.
type ConsultationFields struct {
	Role    string `form:"role" validate:"required,oneof=teacher student admin"`
	Channel string `form:"channel" validate:"required,oneof=telegram email"`
	Contact string `form:"contact" validate:"required"`
	Time    string `form:"time" validate:"required,hhmm"`
	Comment string `form:"comment"`
}

// ConsultationRequest is the persisted consultation booking
type ConsultationRequest struct {
	Role      Role    `json:"role"`
	Channel   Channel `json:"channel"`
	Contact   string  `json:"contact"`
	Time      string  `json:"time"`
	Comment   string  `json:"comment"`
	CreatedAt string  `json:"createdAt"`
}
