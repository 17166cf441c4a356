package types

import (
	"fmt"
	"strings"
)

// Enum values accepted by the registration form. The server does not reject
// unknown values beyond presence checks; these drive form defaults and the
// front end's option lists.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOther  = "Other"

	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvance      = "Advance"

	BatchMonTue = "Mon-Tue"
	BatchWedThu = "Wed-Thu"
	BatchSatSun = "Sat-Sun"

	CountryUSA    = "USA"
	CountryUK     = "UK"
	CountryCanada = "CANADA"
	CountryIndia  = "INDIA"

	HeardFromOtherTag = "Other"
)

// NotProvided is the placeholder rendered for absent optional fields in
// outbound emails. Optional fields are never omitted silently.
const (
	NotProvided = "Not provided"
	Dash        = "—" // em dash
)

// ContactInquiry is the payload of the general contact form. It lives only
// for the duration of one request.
type ContactInquiry struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	WhatsApp string `json:"whatsapp,omitempty"`
	Message  string `json:"message"`
}

// ClassRegistrationInquiry is the payload of the class-registration form.
//
// The legacy web client serialized the heard-from set and free-text fields
// under different keys than the server read (heard vs heardFrom, background
// vs danceBackground, heardOther vs heardFromOther). Both generations are
// accepted; Canonicalize folds the legacy keys into the canonical fields.
type ClassRegistrationInquiry struct {
	Name        string `json:"name"`
	Age         string `json:"age"`
	DOB         string `json:"dob,omitempty"`
	Gender      string `json:"gender"`
	GenderOther string `json:"genderOther,omitempty"`

	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`

	Level   string `json:"level"`
	Batch   string `json:"batch"`
	Country string `json:"country"`

	Goals           string   `json:"goals,omitempty"`
	DanceBackground string   `json:"danceBackground,omitempty"`
	HeardFrom       []string `json:"heardFrom,omitempty"`
	HeardFromOther  string   `json:"heardFromOther,omitempty"`

	// Legacy client keys, folded into the canonical fields by Canonicalize.
	Background string   `json:"background,omitempty"`
	Heard      []string `json:"heard,omitempty"`
	HeardOther string   `json:"heardOther,omitempty"`
}

// Canonicalize folds legacy payload keys into their canonical fields.
// Canonical keys win when both are present.
func (r *ClassRegistrationInquiry) Canonicalize() {
	if r.DanceBackground == "" {
		r.DanceBackground = r.Background
	}
	if len(r.HeardFrom) == 0 {
		r.HeardFrom = r.Heard
	}
	if r.HeardFromOther == "" {
		r.HeardFromOther = r.HeardOther
	}
	r.Background = ""
	r.Heard = nil
	r.HeardOther = ""
}

// GenderLine renders the gender for the notification email. A gender of
// "Other" carries the free-text specification, or "Not specified" when the
// submitter left it blank.
func (r *ClassRegistrationInquiry) GenderLine() string {
	if r.Gender != GenderOther {
		return r.Gender
	}
	other := strings.TrimSpace(r.GenderOther)
	if other == "" {
		other = "Not specified"
	}
	return fmt.Sprintf("Other (%s)", other)
}

// HeardFromLine renders the referral-source set for the notification email.
// An empty set renders as "Not provided". Named sources keep their insertion
// order; when "Other" was selected it is appended last, with its free-text
// specification when one was given.
func (r *ClassRegistrationInquiry) HeardFromLine() string {
	if len(r.HeardFrom) == 0 {
		return NotProvided
	}

	hasOther := false
	named := make([]string, 0, len(r.HeardFrom))
	for _, src := range r.HeardFrom {
		if src == HeardFromOtherTag {
			hasOther = true
			continue
		}
		named = append(named, src)
	}

	if !hasOther {
		return strings.Join(r.HeardFrom, ", ")
	}

	line := strings.Join(named, ", ")
	other := HeardFromOtherTag
	if detail := strings.TrimSpace(r.HeardFromOther); detail != "" {
		other = fmt.Sprintf("Other: %s", detail)
	}
	if line == "" {
		return other
	}
	return line + ", " + other
}

// OrDash returns s, or the em-dash placeholder when s is blank.
func OrDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return Dash
	}
	return s
}

// OrNotProvided returns s, or "Not provided" when s is blank.
func OrNotProvided(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotProvided
	}
	return s
}
