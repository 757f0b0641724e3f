// Package terminal renders the landing page forms as interactive terminal prompts.
package terminal

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/coursemind/landing-forms/internal/forms"
	"github.com/coursemind/landing-forms/internal/models"
	"github.com/coursemind/landing-forms/internal/render"
	"github.com/coursemind/landing-forms/internal/validation"
)

// FieldKind selects the prompt used for a field
type FieldKind int

const (
	KindInput FieldKind = iota
	KindSelect
	KindTextArea
)

// Choice is one option of a select field
type Choice struct {
	Value string
	Label string
}

// FieldSpec describes one form field
type FieldSpec struct {
	Name    string
	Label   string
	Kind    FieldKind
	Choices []Choice
}

func roleChoices() []Choice {
	choices := make([]Choice, 0, len(models.Roles))
	for _, r := range models.Roles {
		choices = append(choices, Choice{Value: string(r), Label: r.Label()})
	}
	return choices
}

func channelChoices() []Choice {
	choices := make([]Choice, 0, len(models.Channels))
	for _, c := range models.Channels {
		choices = append(choices, Choice{Value: string(c), Label: c.Label()})
	}
	return choices
}

// ConsultFields is the consultation form layout
func ConsultFields() []FieldSpec {
	return []FieldSpec{
		{Name: forms.FieldRole, Label: "Кто вы?", Kind: KindSelect, Choices: roleChoices()},
		{Name: forms.FieldChannel, Label: "Как с вами связаться?", Kind: KindSelect, Choices: channelChoices()},
		{Name: forms.FieldContact, Label: "Контакт", Kind: KindInput},
		{Name: forms.FieldTime, Label: "Удобное время (ЧЧ:ММ)", Kind: KindInput},
		{Name: forms.FieldComment, Label: "Комментарий", Kind: KindTextArea},
	}
}

// DemoFields is the demo request form layout
func DemoFields() []FieldSpec {
	return []FieldSpec{
		{Name: forms.FieldName, Label: "Имя", Kind: KindInput},
		{Name: forms.FieldEmail, Label: "Email", Kind: KindInput},
		{Name: forms.FieldStatus, Label: "Статус", Kind: KindSelect, Choices: roleChoices()},
		{Name: forms.FieldMessage, Label: "Сообщение", Kind: KindTextArea},
	}
}

// Form is a terminal form: field values plus the prompts that fill them
type Form struct {
	fields       []FieldSpec
	values       map[string]string
	placeholders map[string]string
	out          io.Writer
	onChange     func()
}

// NewForm creates an empty form writing its messages to out
func NewForm(fields []FieldSpec, out io.Writer) *Form {
	return &Form{
		fields:       fields,
		values:       map[string]string{},
		placeholders: map[string]string{},
		out:          out,
	}
}

// OnChange registers the listener called after any select field changes
func (f *Form) OnChange(fn func()) {
	f.onChange = fn
}

func (f *Form) Value(name string) string {
	return f.values[name]
}

// Set assigns a field value without prompting
func (f *Form) Set(name, value string) {
	f.values[name] = value
}

func (f *Form) Placeholder(name string) string {
	return f.placeholders[name]
}

func (f *Form) SetPlaceholder(name, text string) {
	f.placeholders[name] = text
}

func (f *Form) ReportValidity(issues []validation.FieldIssue) {
	for _, issue := range issues {
		fmt.Fprintf(f.out, "  • %s: %s\n", f.label(issue.Field), issue.Message)
	}
}

func (f *Form) Reset() {
	f.values = map[string]string{}
}

// Has reports whether the form declares a field called name
func (f *Form) Has(name string) bool {
	for _, spec := range f.fields {
		if spec.Name == name {
			return true
		}
	}
	return false
}

func (f *Form) label(name string) string {
	for _, spec := range f.fields {
		if spec.Name == name {
			return spec.Label
		}
	}
	return name
}

// Fill prompts for every field. Current values are offered as defaults,
// so a rejected form comes back populated for correction.
func (f *Form) Fill(ctx context.Context, p Prompter) error {
	for _, spec := range f.fields {
		value, err := f.ask(ctx, p, spec)
		if err != nil {
			return err
		}
		changed := value != f.values[spec.Name]
		f.values[spec.Name] = value
		if spec.Kind == KindSelect && changed && f.onChange != nil {
			f.onChange()
		}
	}
	return nil
}

func (f *Form) ask(ctx context.Context, p Prompter, spec FieldSpec) (string, error) {
	current := f.values[spec.Name]
	switch spec.Kind {
	case KindSelect:
		labels := make([]string, len(spec.Choices))
		defaultIndex := -1
		for i, choice := range spec.Choices {
			labels[i] = choice.Label
			if choice.Value == current {
				defaultIndex = i
			}
		}
		idx, err := p.Select(ctx, SelectConfig{Message: spec.Label, Options: labels, DefaultIndex: defaultIndex})
		if err != nil {
			return "", err
		}
		if idx < 0 || idx >= len(spec.Choices) {
			return "", nil
		}
		return spec.Choices[idx].Value, nil
	case KindTextArea:
		return p.TextArea(ctx, TextAreaConfig{Message: spec.Label, Default: current})
	default:
		message := spec.Label
		placeholder := f.placeholders[spec.Name]
		if placeholder != "" {
			message += " (" + placeholder + ")"
		}
		return p.Input(ctx, InputConfig{Message: message, Default: current, Help: placeholder})
	}
}

// Hint prints feedback lines
type Hint struct {
	out  io.Writer
	text string
	kind forms.HintKind
}

func (h *Hint) SetHint(text string, kind forms.HintKind) {
	h.text = text
	h.kind = kind

	marker := "i"
	switch kind {
	case forms.HintOK:
		marker = "✓"
	case forms.HintError:
		marker = "✗"
	}
	fmt.Fprintf(h.out, "[%s] %s\n", marker, text)
}

// Text returns the last hint shown
func (h *Hint) Text() (string, forms.HintKind) {
	return h.text, h.kind
}

// Result prints the result panel as plain text
type Result struct {
	out    io.Writer
	markup string
	shown  bool
}

func (r *Result) Show(markup string) {
	r.markup = markup
	r.shown = true

	text := render.PlainText(markup)
	rule := strings.Repeat("─", 40)
	fmt.Fprintf(r.out, "%s\n%s\n%s\n", rule, text, rule)
}

// Markup returns the last markup shown and whether the panel is visible
func (r *Result) Markup() (string, bool) {
	return r.markup, r.shown
}

// Page holds both forms with their hint and result elements
type Page struct {
	forms   map[string]*Form
	hints   map[string]*Hint
	results map[string]*Result
}

// NewPage lays out the consultation and demo forms, writing to out
func NewPage(out io.Writer) *Page {
	p := &Page{
		forms:   map[string]*Form{},
		hints:   map[string]*Hint{},
		results: map[string]*Result{},
	}
	p.add(forms.ConsultSelectors, ConsultFields(), out)
	p.add(forms.DemoSelectors, DemoFields(), out)
	return p
}

func (p *Page) add(sel forms.Selectors, fields []FieldSpec, out io.Writer) {
	p.forms[sel.Form] = NewForm(fields, out)
	p.hints[sel.Hint] = &Hint{out: out}
	p.results[sel.Result] = &Result{out: out}
}

// FormAt returns the concrete form for selector, nil if absent
func (p *Page) FormAt(selector string) *Form {
	return p.forms[selector]
}

func (p *Page) Form(selector string) (forms.Form, bool) {
	f, ok := p.forms[selector]
	if !ok {
		return nil, false
	}
	return f, true
}

func (p *Page) Hint(selector string) (forms.Hint, bool) {
	h, ok := p.hints[selector]
	if !ok {
		return nil, false
	}
	return h, true
}

func (p *Page) Result(selector string) (forms.Result, bool) {
	r, ok := p.results[selector]
	if !ok {
		return nil, false
	}
	return r, true
}

var _ forms.Document = (*Page)(nil)
