package formclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/bijalsangnaach/academy-backend/logger"
	"github.com/bijalsangnaach/academy-backend/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.IsTest = true
}

func fillValidContact(f *ContactForm) {
	f.Set(FieldName, "Priya Sharma")
	f.Set(FieldEmail, "priya@example.com")
	f.Set(FieldWhatsApp, "+1 555 0100")
	f.Set(FieldMessage, "Do you run weekend batches?")
}

func TestContactFormValidationOrder(t *testing.T) {
	tests := []struct {
		name     string
		fill     func(*ContactForm)
		expected string
	}{
		{"empty form asks for name first", func(f *ContactForm) {}, "Please enter your name."},
		{"missing email", func(f *ContactForm) {
			f.Set(FieldName, "Priya")
		}, "Please enter your email."},
		{"invalid email", func(f *ContactForm) {
			f.Set(FieldName, "Priya")
			f.Set(FieldEmail, "not-an-email")
		}, "Please enter a valid email."},
		{"missing message", func(f *ContactForm) {
			f.Set(FieldName, "Priya")
			f.Set(FieldEmail, "priya@example.com")
		}, "Please enter your message."},
		{"valid form", fillValidContact, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewContactForm(NewClient("http://unused"))
			tt.fill(f)
			assert.Equal(t, tt.expected, f.Validate())
		})
	}
}

func TestContactFormValidationFailureNeverReachesNetwork(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
	}))
	defer srv.Close()

	f := NewContactForm(NewClient(srv.URL))
	f.Set(FieldName, "Priya")

	err := f.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Please enter your email.", err.Error())
	assert.Equal(t, StatusError, f.Status())
	assert.Equal(t, "Please enter your email.", f.ErrorMessage())
	assert.Equal(t, int32(0), requests.Load())
}

func TestContactFormSubmitSuccessResetsFields(t *testing.T) {
	var received types.ContactInquiry
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/inquiry/contact", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	f := NewContactForm(NewClient(srv.URL))
	fillValidContact(f)
	f.Set(FieldName, "  Priya Sharma  ")

	err := f.Submit(context.Background())
	require.NoError(t, err)

	// Payload is trimmed on the way out.
	assert.Equal(t, "Priya Sharma", received.Name)
	assert.Equal(t, "priya@example.com", received.Email)

	assert.Equal(t, StatusSuccess, f.Status())
	assert.Empty(t, f.ErrorMessage())
	assert.Empty(t, f.Field(FieldName))
	assert.Empty(t, f.Field(FieldEmail))
	assert.Empty(t, f.Field(FieldMessage))
}

func TestContactFormSubmitFailureKeepsFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Email environment variables are missing."}`))
	}))
	defer srv.Close()

	f := NewContactForm(NewClient(srv.URL))
	fillValidContact(f)

	err := f.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Email environment variables are missing.", err.Error())
	assert.Equal(t, StatusError, f.Status())
	assert.Equal(t, "Email environment variables are missing.", f.ErrorMessage())

	// Fields survive so the user can resubmit without retyping.
	assert.Equal(t, "Priya Sharma", f.Field(FieldName))
	assert.Equal(t, "Do you run weekend batches?", f.Field(FieldMessage))
}

func TestContactFormFallbackErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	f := NewContactForm(NewClient(srv.URL))
	fillValidContact(f)

	err := f.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Failed to send. Try again.", err.Error())
}

func TestContactFormDoubleSubmitGuard(t *testing.T) {
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

	f := NewContactForm(NewClient(srv.URL))
	fillValidContact(f)

	done := make(chan error, 1)
	go func() {
		done <- f.Submit(context.Background())
	}()

	<-arrived
	assert.Equal(t, StatusSubmitting, f.Status())

	err := f.Submit(context.Background())
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	close(release)
	require.NoError(t, <-done)

	// Exactly one request made it to the wire.
	assert.Equal(t, int32(1), requests.Load())
	assert.Equal(t, StatusSuccess, f.Status())
}
