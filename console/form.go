package console

import (
	"strings"

	"mvdan.cc/xurls/v2"

	"github.com/aetherrootr/sub-cache/client"
	"github.com/aetherrootr/sub-cache/model"
)

// FormMode tells whether the dialog creates a new source or edits an
// existing one.
type FormMode string

const (
	FormModeAdd  FormMode = "add"
	FormModeEdit FormMode = "edit"
)

// ValidationError reports a save precondition failure. No network call
// happens when validation fails and the dialog stays open.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func newValidationError(msg string) *ValidationError {
	return &ValidationError{msg: msg}
}

// Form is the transient add/edit dialog state. A draft lives from dialog
// open to dialog close and is re-seeded on every open.
type Form struct {
	mode    FormMode
	editing *model.SubscriptionSource
	open    bool

	Name    string
	Type    model.SubType
	URL     string
	Content string
}

func NewForm() *Form {
	return &Form{}
}

func (f *Form) OpenAdd() {
	f.mode = FormModeAdd
	f.editing = nil
	f.Name = ""
	f.Type = model.SubTypeRemote
	f.URL = ""
	f.Content = ""
	f.open = true
}

// OpenEdit seeds the draft from src. Name is display-only in edit mode
// and content always starts empty: the list payload never carries it.
func (f *Form) OpenEdit(src model.SubscriptionSource) {
	f.mode = FormModeEdit
	f.editing = &src
	f.Name = src.Name
	f.Type = src.Type
	f.URL = src.URL
	f.Content = ""
	f.open = true
}

// Close discards the draft. Save, cancel and outside-dismiss all end up
// here.
func (f *Form) Close() {
	f.open = false
	f.editing = nil
}

func (f *Form) IsOpen() bool {
	return f.open
}

func (f *Form) Mode() FormMode {
	return f.mode
}

func (f *Form) Editing() *model.SubscriptionSource {
	return f.editing
}

// SeedURLFromText pulls the first strict https:// URL out of pasted text
// into the URL field. Reports whether a URL was found.
func (f *Form) SeedURLFromText(text string) bool {
	httpsURLRe, err := xurls.StrictMatchingScheme("https://")
	if err != nil {
		return false
	}

	u := strings.TrimSpace(httpsURLRe.FindString(text))
	if u == "" {
		return false
	}

	f.URL = u

	return true
}

// Validate applies the save preconditions in order; the first failure
// wins and aborts submission.
func (f *Form) Validate() error {
	if f.mode == FormModeAdd && strings.TrimSpace(f.Name) == "" {
		return newValidationError("Name is required")
	}

	if f.mode == FormModeEdit && f.editing == nil {
		return newValidationError("No editing item")
	}

	if !f.Type.Valid() {
		return newValidationError("Invalid subscription type")
	}

	if f.Type == model.SubTypeRemote && strings.TrimSpace(f.URL) == "" {
		return newValidationError("URL is required")
	}

	if f.Type == model.SubTypeLocal && strings.TrimSpace(f.Content) == "" {
		return newValidationError("Content is required")
	}

	return nil
}

// AddPayload builds the create request. Local content goes out raw:
// YAML whitespace is meaningful.
func (f *Form) AddPayload() client.AddRequest {
	req := client.AddRequest{
		Name: strings.TrimSpace(f.Name),
		Type: f.Type,
	}

	if f.Type == model.SubTypeRemote {
		req.URL = strings.TrimSpace(f.URL)
	} else {
		req.Content = f.Content
	}

	return req
}

// UpdatePayload builds the update request for the editing target. The
// name is immutable and never resent. Whichever field matches the
// currently selected type is sent, even when the type was switched
// during the edit. Fails when the draft has no editing target.
func (f *Form) UpdatePayload() (int64, client.UpdateRequest, error) {
	if f.editing == nil {
		return 0, client.UpdateRequest{}, newValidationError("No editing item")
	}

	req := client.UpdateRequest{Type: f.Type}

	if f.Type == model.SubTypeRemote {
		req.URL = strings.TrimSpace(f.URL)
	} else {
		req.Content = f.Content
	}

	return f.editing.ID, req, nil
}
