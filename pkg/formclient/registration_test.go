package formclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/bijalsangnaach/academy-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillValidRegistration(f *RegistrationForm) {
	f.Set(FieldName, "Priya Sharma")
	f.Set(FieldAge, "14")
	f.Set(FieldWhatsApp, "+1 555 0100")
	f.Set(FieldEmail, "priya@example.com")
}

func TestRegistrationFormDefaults(t *testing.T) {
	f := NewRegistrationForm(NewClient("http://unused"))

	assert.Equal(t, StatusIdle, f.Status())
	assert.Equal(t, types.GenderMale, f.Field(FieldGender))
	assert.Equal(t, types.LevelBeginner, f.Field(FieldLevel))
	assert.Equal(t, types.BatchMonTue, f.Field(FieldBatch))
	assert.Equal(t, types.CountryUSA, f.Field(FieldCountry))
	assert.Empty(t, f.HeardFrom())
}

func TestRegistrationFormValidationOrder(t *testing.T) {
	tests := []struct {
		name     string
		fill     func(*RegistrationForm)
		expected string
	}{
		{"empty form asks for name first", func(f *RegistrationForm) {}, "Please enter your name."},
		{"missing age", func(f *RegistrationForm) {
			f.Set(FieldName, "Priya")
		}, "Please enter your age."},
		{"non-numeric age", func(f *RegistrationForm) {
			f.Set(FieldName, "Priya")
			f.Set(FieldAge, "fourteen")
		}, "Age should be a number."},
		{"missing whatsapp", func(f *RegistrationForm) {
			f.Set(FieldName, "Priya")
			f.Set(FieldAge, "14")
		}, "Please enter your WhatsApp number."},
		{"missing email", func(f *RegistrationForm) {
			f.Set(FieldName, "Priya")
			f.Set(FieldAge, "14")
			f.Set(FieldWhatsApp, "+1 555 0100")
		}, "Please enter your email."},
		{"invalid email", func(f *RegistrationForm) {
			f.Set(FieldName, "Priya")
			f.Set(FieldAge, "14")
			f.Set(FieldWhatsApp, "+1 555 0100")
			f.Set(FieldEmail, "nope")
		}, "Please enter a valid email."},
		{"gender other without specification", func(f *RegistrationForm) {
			fillValidRegistration(f)
			f.Set(FieldGender, types.GenderOther)
		}, "Please specify gender."},
		{"heard other without specification", func(f *RegistrationForm) {
			fillValidRegistration(f)
			f.ToggleHeardFrom(types.HeardFromOtherTag)
		}, "Please specify how you heard about us."},
		{"valid form", fillValidRegistration, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewRegistrationForm(NewClient("http://unused"))
			tt.fill(f)
			assert.Equal(t, tt.expected, f.Validate())
		})
	}
}

func TestToggleHeardFrom(t *testing.T) {
	f := NewRegistrationForm(NewClient("http://unused"))

	f.ToggleHeardFrom("Instagram")
	f.ToggleHeardFrom("Facebook")
	f.ToggleHeardFrom("Other")
	assert.Equal(t, []string{"Instagram", "Facebook", "Other"}, f.HeardFrom())

	// Removing keeps the remaining order intact.
	f.ToggleHeardFrom("Facebook")
	assert.Equal(t, []string{"Instagram", "Other"}, f.HeardFrom())

	f.ToggleHeardFrom("Facebook")
	assert.Equal(t, []string{"Instagram", "Other", "Facebook"}, f.HeardFrom())
}

func TestRegistrationFormSubmitPayload(t *testing.T) {
	var received types.ClassRegistrationInquiry
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/inquiry", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	f := NewRegistrationForm(NewClient(srv.URL))
	fillValidRegistration(f)
	f.Set(FieldAge, " 14 ")
	f.Set(FieldGoals, "Perform on stage")
	f.Set(FieldGenderOther, "should not be sent") // gender is still Male
	f.ToggleHeardFrom("Instagram")

	err := f.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Priya Sharma", received.Name)
	assert.Equal(t, "14", received.Age)
	assert.Equal(t, types.GenderMale, received.Gender)
	assert.Empty(t, received.GenderOther)
	assert.Equal(t, types.LevelBeginner, received.Level)
	assert.Equal(t, types.BatchMonTue, received.Batch)
	assert.Equal(t, types.CountryUSA, received.Country)
	assert.Equal(t, "Perform on stage", received.Goals)
	assert.Equal(t, []string{"Instagram"}, received.HeardFrom)
	assert.Empty(t, received.HeardFromOther)
}

func TestRegistrationFormSubmitCarriesOtherFields(t *testing.T) {
	var received types.ClassRegistrationInquiry
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	f := NewRegistrationForm(NewClient(srv.URL))
	fillValidRegistration(f)
	f.Set(FieldGender, types.GenderOther)
	f.Set(FieldGenderOther, "Nonbinary")
	f.ToggleHeardFrom("Instagram")
	f.ToggleHeardFrom(types.HeardFromOtherTag)
	f.Set(FieldHeardOther, "Friend told me")

	err := f.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Nonbinary", received.GenderOther)
	assert.Equal(t, []string{"Instagram", "Other"}, received.HeardFrom)
	assert.Equal(t, "Friend told me", received.HeardFromOther)
}

func TestRegistrationFormSuccessResetsToDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	f := NewRegistrationForm(NewClient(srv.URL))
	fillValidRegistration(f)
	f.Set(FieldLevel, types.LevelAdvance)
	f.Set(FieldCountry, types.CountryIndia)
	f.ToggleHeardFrom("Instagram")

	require.NoError(t, f.Submit(context.Background()))

	assert.Equal(t, StatusSuccess, f.Status())
	assert.Empty(t, f.Field(FieldName))
	assert.Equal(t, types.GenderMale, f.Field(FieldGender))
	assert.Equal(t, types.LevelBeginner, f.Field(FieldLevel))
	assert.Equal(t, types.BatchMonTue, f.Field(FieldBatch))
	assert.Equal(t, types.CountryUSA, f.Field(FieldCountry))
	assert.Empty(t, f.HeardFrom())
}

func TestRegistrationFormServerRejectionKeepsFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok":false,"message":"Missing: whatsapp"}`))
	}))
	defer srv.Close()

	f := NewRegistrationForm(NewClient(srv.URL))
	fillValidRegistration(f)

	err := f.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Missing: whatsapp", err.Error())
	assert.Equal(t, StatusError, f.Status())
	assert.Equal(t, "Missing: whatsapp", f.ErrorMessage())
	assert.Equal(t, "Priya Sharma", f.Field(FieldName))
}

func TestRegistrationFormFallbackErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	f := NewRegistrationForm(NewClient(srv.URL))
	fillValidRegistration(f)

	err := f.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Failed to submit. Try again.", err.Error())
}

func TestRegistrationFormDoubleSubmitGuard(t *testing.T) {
	var requests atomic.Int32
	release := make(chan struct{})
	arrived := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		close(arrived)
		<-release
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	f := NewRegistrationForm(NewClient(srv.URL))
	fillValidRegistration(f)

	done := make(chan error, 1)
	go func() {
		done <- f.Submit(context.Background())
	}()

	<-arrived
	err := f.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), requests.Load())
}

func TestBeginnerFee(t *testing.T) {
	fee, note := BeginnerFee(types.CountryIndia)
	assert.Equal(t, "₹1500 / month", fee)
	assert.Contains(t, note, "India")

	for _, country := range []string{types.CountryUSA, types.CountryUK, types.CountryCanada} {
		fee, _ := BeginnerFee(country)
		assert.Equal(t, "$160 / month", fee)
	}
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("15550100", "Hi! I want to join the beginner batch")
	assert.Equal(t, "https://wa.me/15550100?text=Hi%21+I+want+to+join+the+beginner+batch", link)
}
