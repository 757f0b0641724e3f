package forms

import (
	"github.com/coursemind/landing-forms/internal/validation"
)

// fakeForm is an in-memory stand-in for a page form
type fakeForm struct {
	values       map[string]string
	placeholders map[string]string
	reported     [][]validation.FieldIssue
	resets       int
}

func newFakeForm(values map[string]string) *fakeForm {
	return &fakeForm{values: values, placeholders: map[string]string{}}
}

func (f *fakeForm) Value(name string) string { return f.values[name] }

func (f *fakeForm) SetPlaceholder(name, text string) { f.placeholders[name] = text }

func (f *fakeForm) ReportValidity(issues []validation.FieldIssue) {
	f.reported = append(f.reported, issues)
}

func (f *fakeForm) Reset() {
	f.resets++
	f.values = map[string]string{}
}

type fakeHint struct {
	text string
	kind HintKind
}

func (h *fakeHint) SetHint(text string, kind HintKind) {
	h.text = text
	h.kind = kind
}

type fakeResult struct {
	markup string
	hidden bool
	shows  int
}

func (r *fakeResult) Show(markup string) {
	r.markup = markup
	r.hidden = false
	r.shows++
}

// fakePage holds the elements for one form under the given selectors
type fakePage struct {
	sel    Selectors
	form   *fakeForm
	hint   *fakeHint
	result *fakeResult
	// missing selectors resolve to nothing
	missing map[string]bool
}

func newFakePage(sel Selectors, values map[string]string) *fakePage {
	return &fakePage{
		sel:     sel,
		form:    newFakeForm(values),
		hint:    &fakeHint{},
		result:  &fakeResult{hidden: true},
		missing: map[string]bool{},
	}
}

func (p *fakePage) Form(selector string) (Form, bool) {
	if selector != p.sel.Form || p.missing[selector] {
		return nil, false
	}
	return p.form, true
}

func (p *fakePage) Hint(selector string) (Hint, bool) {
	if selector != p.sel.Hint || p.missing[selector] {
		return nil, false
	}
	return p.hint, true
}

func (p *fakePage) Result(selector string) (Result, bool) {
	if selector != p.sel.Result || p.missing[selector] {
		return nil, false
	}
	return p.result, true
}
