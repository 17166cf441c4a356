package formclient

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/bijalsangnaach/academy-backend/internal/validation"
	"github.com/bijalsangnaach/academy-backend/types"
)

// Contact form field names.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldWhatsApp = "whatsapp"
	FieldMessage  = "message"
)

const contactFallbackError = "Failed to send. Try again."

// ContactForm owns the state of one contact form instance: a field map, the
// submission status and the most recent error message. All methods are safe
// for concurrent use; Submit is non-reentrant per instance.
type ContactForm struct {
	mu     sync.Mutex
	fields map[string]string
	status Status
	errMsg string
	client *Client
}

// NewContactForm creates a contact form bound to the given backend client.
func NewContactForm(client *Client) *ContactForm {
	return &ContactForm{
		fields: emptyContactFields(),
		status: StatusIdle,
		client: client,
	}
}

func emptyContactFields() map[string]string {
	return map[string]string{
		FieldName:     "",
		FieldEmail:    "",
		FieldWhatsApp: "",
		FieldMessage:  "",
	}
}

// Set replaces a field's value. No validation happens here; validation is
// deferred to submit time.
func (f *ContactForm) Set(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields[field] = value
}

// Field returns a field's current value.
func (f *ContactForm) Field(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields[field]
}

// Status returns the current submission status.
func (f *ContactForm) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// ErrorMessage returns the message shown in the form's inline error area.
func (f *ContactForm) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

// Validate returns the first failing rule's message, or "" when the form is
// valid. The rule order determines which single message is shown when
// several fields are invalid.
func (f *ContactForm) Validate() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateLocked()
}

func (f *ContactForm) validateLocked() string {
	if !validation.Required(f.fields[FieldName]) {
		return "Please enter your name."
	}
	if !validation.Required(f.fields[FieldEmail]) {
		return "Please enter your email."
	}
	if !validation.IsEmail(f.fields[FieldEmail]) {
		return "Please enter a valid email."
	}
	if !validation.Required(f.fields[FieldMessage]) {
		return "Please enter your message."
	}
	return ""
}

// Submit validates the form and issues exactly one request. Validation
// failures never reach the network. On success all fields reset to their
// initial empty state; on failure the fields are kept so the user can
// resubmit without retyping. A second Submit while one is in flight returns
// ErrSubmissionInFlight without issuing a request.
func (f *ContactForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.status == StatusSubmitting {
		f.mu.Unlock()
		return ErrSubmissionInFlight
	}

	f.errMsg = ""
	if msg := f.validateLocked(); msg != "" {
		f.status = StatusError
		f.errMsg = msg
		f.mu.Unlock()
		return errors.New(msg)
	}

	payload := types.ContactInquiry{
		Name:     strings.TrimSpace(f.fields[FieldName]),
		Email:    strings.TrimSpace(f.fields[FieldEmail]),
		WhatsApp: strings.TrimSpace(f.fields[FieldWhatsApp]),
		Message:  strings.TrimSpace(f.fields[FieldMessage]),
	}
	f.status = StatusSubmitting
	f.mu.Unlock()

	err := f.client.postJSON(ctx, "/api/inquiry/contact", payload, contactFallbackError)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.status = StatusError
		f.errMsg = err.Error()
		if f.errMsg == "" {
			f.errMsg = "Something went wrong."
		}
		return err
	}

	f.fields = emptyContactFields()
	f.status = StatusSuccess
	return nil
}
