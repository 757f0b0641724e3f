package forms

import "github.com/coursemind/landing-forms/internal/validation"

// HintKind controls how a hint is presented
type HintKind string

const (
	HintInfo  HintKind = "info"
	HintOK    HintKind = "ok"
	HintError HintKind = "error"
)

// Field names the controllers read from their forms
const (
	FieldRole    = "role"
	FieldChannel = "channel"
	FieldContact = "contact"
	FieldTime    = "time"
	FieldComment = "comment"

	FieldName    = "name"
	FieldEmail   = "email"
	FieldStatus  = "status"
	FieldMessage = "message"
)

// Selectors locate one form's elements on the page
type Selectors struct {
	Form   string
	Hint   string
	Result string
}

var (
	ConsultSelectors = Selectors{Form: "#consultForm", Hint: "#consultHint", Result: "#consultResult"}
	DemoSelectors    = Selectors{Form: "#demoForm", Hint: "#demoHint", Result: "#demoResult"}
)

// Form is the input surface of one form
type Form interface {
	// Value returns the current raw value of the named field, "" if unset
	Value(name string) string
	SetPlaceholder(name, text string)
	// ReportValidity shows the page's own per-field validation messages
	ReportValidity(issues []validation.FieldIssue)
	// Reset puts every field back to its default
	Reset()
}

// Hint is the one-line feedback element next to a form
type Hint interface {
	SetHint(text string, kind HintKind)
}

// Result is the panel that shows the accepted submission
type Result interface {
	// Show replaces the panel content with markup and reveals the panel
	Show(markup string)
}

// Document finds page elements by selector; ok is false when the element is absent
type Document interface {
	Form(selector string) (Form, bool)
	Hint(selector string) (Hint, bool)
	Result(selector string) (Result, bool)
}
