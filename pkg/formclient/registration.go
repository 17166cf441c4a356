package formclient

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/bijalsangnaach/academy-backend/internal/validation"
	"github.com/bijalsangnaach/academy-backend/types"
)

// Registration form field names, in addition to the contact field names
// shared with ContactForm.
const (
	FieldAge         = "age"
	FieldDOB         = "dob"
	FieldGender      = "gender"
	FieldGenderOther = "genderOther"
	FieldLevel       = "level"
	FieldBatch       = "batch"
	FieldCountry     = "country"
	FieldGoals       = "goals"
	FieldBackground  = "background"
	FieldHeardOther  = "heardOther"
)

const registrationFallbackError = "Failed to submit. Try again."

// RegistrationForm owns the state of one class-registration form instance:
// a field map, the order-preserving heard-from set, the submission status
// and the most recent error message. Submit is non-reentrant per instance.
type RegistrationForm struct {
	mu     sync.Mutex
	fields map[string]string
	heard  []string
	status Status
	errMsg string
	client *Client
}

// NewRegistrationForm creates a registration form bound to the given backend
// client, with the website's initial enum selections.
func NewRegistrationForm(client *Client) *RegistrationForm {
	return &RegistrationForm{
		fields: initialRegistrationFields(),
		status: StatusIdle,
		client: client,
	}
}

func initialRegistrationFields() map[string]string {
	return map[string]string{
		FieldName:        "",
		FieldAge:         "",
		FieldDOB:         "",
		FieldGender:      types.GenderMale,
		FieldGenderOther: "",
		FieldWhatsApp:    "",
		FieldEmail:       "",
		FieldLevel:       types.LevelBeginner,
		FieldBatch:       types.BatchMonTue,
		FieldCountry:     types.CountryUSA,
		FieldGoals:       "",
		FieldBackground:  "",
		FieldHeardOther:  "",
	}
}

// Set replaces a field's value. Validation is deferred to submit time.
func (f *RegistrationForm) Set(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fields[field] = value
}

// Field returns a field's current value.
func (f *RegistrationForm) Field(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields[field]
}

// ToggleHeardFrom adds item to the heard-from set when absent, removes it
// when present. Insertion order of the remaining items is preserved.
func (f *RegistrationForm) ToggleHeardFrom(item string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i, existing := range f.heard {
		if existing == item {
			f.heard = append(f.heard[:i], f.heard[i+1:]...)
			return
		}
	}
	f.heard = append(f.heard, item)
}

// HeardFrom returns a copy of the current heard-from selection.
func (f *RegistrationForm) HeardFrom() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.heard...)
}

// Status returns the current submission status.
func (f *RegistrationForm) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// ErrorMessage returns the message shown in the form's inline error area.
func (f *RegistrationForm) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

// Validate returns the first failing rule's message, or "" when the form is
// valid.
func (f *RegistrationForm) Validate() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateLocked()
}

func (f *RegistrationForm) validateLocked() string {
	if !validation.Required(f.fields[FieldName]) {
		return "Please enter your name."
	}
	if !validation.Required(f.fields[FieldAge]) {
		return "Please enter your age."
	}
	if !validation.IsDigits(f.fields[FieldAge]) {
		return "Age should be a number."
	}
	if !validation.Required(f.fields[FieldWhatsApp]) {
		return "Please enter your WhatsApp number."
	}
	if !validation.Required(f.fields[FieldEmail]) {
		return "Please enter your email."
	}
	if !validation.IsEmail(f.fields[FieldEmail]) {
		return "Please enter a valid email."
	}
	if f.fields[FieldGender] == types.GenderOther && !validation.Required(f.fields[FieldGenderOther]) {
		return "Please specify gender."
	}
	if f.heardIncludesLocked(types.HeardFromOtherTag) && !validation.Required(f.fields[FieldHeardOther]) {
		return "Please specify how you heard about us."
	}
	return ""
}

func (f *RegistrationForm) heardIncludesLocked(item string) bool {
	for _, existing := range f.heard {
		if existing == item {
			return true
		}
	}
	return false
}

// Submit validates the form and issues exactly one request. On success all
// fields reset to the initial state; on failure the fields are kept so the
// user can resubmit without retyping. A second Submit while one is in
// flight returns ErrSubmissionInFlight without issuing a request.
func (f *RegistrationForm) Submit(ctx context.Context) error {
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

	payload := f.payloadLocked()
	f.status = StatusSubmitting
	f.mu.Unlock()

	err := f.client.postJSON(ctx, "/api/inquiry", payload, registrationFallbackError)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.status = StatusError
		f.errMsg = err.Error()
		if f.errMsg == "" {
			f.errMsg = "Something went wrong. Please try again."
		}
		return err
	}

	f.fields = initialRegistrationFields()
	f.heard = nil
	f.status = StatusSuccess
	return nil
}

// payloadLocked serializes the current state into the canonical wire
// payload: fields trimmed, empty optionals omitted, conditional "other"
// fields only carried when their enum selection is "Other".
func (f *RegistrationForm) payloadLocked() types.ClassRegistrationInquiry {
	payload := types.ClassRegistrationInquiry{
		Name:            strings.TrimSpace(f.fields[FieldName]),
		Age:             strings.TrimSpace(f.fields[FieldAge]),
		DOB:             strings.TrimSpace(f.fields[FieldDOB]),
		Gender:          f.fields[FieldGender],
		WhatsApp:        strings.TrimSpace(f.fields[FieldWhatsApp]),
		Email:           strings.TrimSpace(f.fields[FieldEmail]),
		Level:           f.fields[FieldLevel],
		Batch:           f.fields[FieldBatch],
		Country:         f.fields[FieldCountry],
		Goals:           strings.TrimSpace(f.fields[FieldGoals]),
		DanceBackground: strings.TrimSpace(f.fields[FieldBackground]),
		HeardFrom:       append([]string(nil), f.heard...),
	}
	if payload.Gender == types.GenderOther {
		payload.GenderOther = strings.TrimSpace(f.fields[FieldGenderOther])
	}
	if f.heardIncludesLocked(types.HeardFromOtherTag) {
		payload.HeardFromOther = strings.TrimSpace(f.fields[FieldHeardOther])
	}
	return payload
}
