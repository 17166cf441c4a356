package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/bijalsangnaach/academy-backend/config"
	apperrors "github.com/bijalsangnaach/academy-backend/errors"
	"github.com/bijalsangnaach/academy-backend/internal/validation"
	"github.com/bijalsangnaach/academy-backend/logger"
	"github.com/bijalsangnaach/academy-backend/types"
	"github.com/gin-gonic/gin"
)

// Error message constants of the public HTTP contract. The web front end
// matches on these strings, so they must not change.
const (
	msgMissingRequiredFields = "Missing required fields."
)

// InquiryHandler handles the contact and class-registration submission
// endpoints. It is stateless: each request is validated, composed into one
// plain-text notification and handed to the mail transport exactly once.
type InquiryHandler struct {
	emailService types.EmailSender
	emailConfig  *config.EmailConfig
}

// NewInquiryHandler creates a new InquiryHandler.
func NewInquiryHandler(emailService types.EmailSender, emailConfig *config.EmailConfig) *InquiryHandler {
	return &InquiryHandler{
		emailService: emailService,
		emailConfig:  emailConfig,
	}
}

// SubmitContact godoc
// @Summary      Submit a contact enquiry
// @Description  Validates a contact form payload and relays it to the academy inbox
// @Tags         inquiry
// @Accept       json
// @Produce      json
// @Param        body  body      types.ContactInquiry  true  "Contact payload"
// @Success      200   {object}  types.AckResponse
// @Failure      400   {object}  types.ContactErrorResponse
// @Failure      500   {object}  types.ContactErrorResponse
// @Router       /api/inquiry/contact [post]
func (h *InquiryHandler) SubmitContact(c *gin.Context) {
	log := logger.GetLogger()

	var req types.ContactInquiry
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperrors.MalformedRequest(err)
		log.Warnw("Contact submission body unparseable", "error", err, "client_ip", c.ClientIP())
		c.JSON(appErr.GetHTTPStatus(), types.ContactErrorResponse{Error: appErr.Detail})
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.WhatsApp = strings.TrimSpace(req.WhatsApp)
	req.Message = strings.TrimSpace(req.Message)

	if validation.FirstMissing(
		validation.Field{Name: "name", Value: req.Name},
		validation.Field{Name: "email", Value: req.Email},
		validation.Field{Name: "message", Value: req.Message},
	) != "" {
		appErr := apperrors.ValidationFailed(msgMissingRequiredFields, "name, email and message are required")
		c.JSON(appErr.GetHTTPStatus(), types.ContactErrorResponse{Error: appErr.Message})
		return
	}

	if !h.emailConfig.IsComplete() {
		appErr := apperrors.ConfigurationMissing()
		log.Errorw("Contact submission rejected: email configuration incomplete")
		c.JSON(appErr.GetHTTPStatus(), types.ContactErrorResponse{Error: appErr.Message})
		return
	}

	msg := types.EmailMessage{
		FromName:    h.emailConfig.FromName,
		FromAddress: h.emailConfig.FromAddress,
		To:          h.emailConfig.ReceiverAddress,
		ReplyTo:     req.Email,
		Subject:     fmt.Sprintf("New Contact Enquiry — %s", req.Name),
		Text:        composeContactBody(&req),
	}

	if err := h.emailService.Send(c.Request.Context(), msg); err != nil {
		appErr := apperrors.DeliveryFailed(err)
		log.Errorw("Contact enquiry delivery failed",
			"error", err,
			"from", logger.MaskEmail(req.Email))
		c.JSON(appErr.GetHTTPStatus(), types.ContactErrorResponse{Error: appErr.Message})
		return
	}

	log.Infow("Contact enquiry relayed", "from", logger.MaskEmail(req.Email))
	c.JSON(http.StatusOK, types.AckResponse{OK: true})
}

// SubmitRegistration godoc
// @Summary      Submit a class registration inquiry
// @Description  Validates a registration payload and relays it to the academy inbox
// @Tags         inquiry
// @Accept       json
// @Produce      json
// @Param        body  body      types.ClassRegistrationInquiry  true  "Registration payload"
// @Success      200   {object}  types.InquiryResponse
// @Failure      400   {object}  types.InquiryResponse
// @Failure      500   {object}  types.InquiryResponse
// @Router       /api/inquiry [post]
func (h *InquiryHandler) SubmitRegistration(c *gin.Context) {
	log := logger.GetLogger()

	var req types.ClassRegistrationInquiry
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperrors.MalformedRequest(err)
		log.Warnw("Registration submission body unparseable", "error", err, "client_ip", c.ClientIP())
		c.JSON(appErr.GetHTTPStatus(), types.InquiryResponse{OK: false, Message: appErr.Detail})
		return
	}

	req.Canonicalize()

	// First missing field short-circuits; the order here is the contract.
	missing := validation.FirstMissing(
		validation.Field{Name: "name", Value: req.Name},
		validation.Field{Name: "age", Value: req.Age},
		validation.Field{Name: "gender", Value: req.Gender},
		validation.Field{Name: "whatsapp", Value: req.WhatsApp},
		validation.Field{Name: "email", Value: req.Email},
		validation.Field{Name: "level", Value: req.Level},
		validation.Field{Name: "batch", Value: req.Batch},
		validation.Field{Name: "country", Value: req.Country},
	)
	if missing != "" {
		appErr := apperrors.MissingField(missing)
		c.JSON(appErr.GetHTTPStatus(), types.InquiryResponse{OK: false, Message: appErr.Message})
		return
	}

	if !h.emailConfig.IsComplete() {
		appErr := apperrors.ConfigurationMissing()
		log.Errorw("Registration submission rejected: email configuration incomplete")
		c.JSON(appErr.GetHTTPStatus(), types.InquiryResponse{OK: false, Message: appErr.Message})
		return
	}

	msg := types.EmailMessage{
		FromName:    h.emailConfig.FromName,
		FromAddress: h.emailConfig.FromAddress,
		To:          h.emailConfig.ReceiverAddress,
		ReplyTo:     req.Email,
		Subject:     fmt.Sprintf("New Class Inquiry — %s (%s)", req.Name, req.Level),
		Text:        composeRegistrationBody(&req),
	}

	if err := h.emailService.Send(c.Request.Context(), msg); err != nil {
		appErr := apperrors.DeliveryFailed(err)
		log.Errorw("Registration inquiry delivery failed",
			"error", err,
			"from", logger.MaskEmail(req.Email))
		c.JSON(appErr.GetHTTPStatus(), types.InquiryResponse{OK: false, Message: appErr.Message})
		return
	}

	log.Infow("Registration inquiry relayed",
		"from", logger.MaskEmail(req.Email),
		"level", req.Level,
		"batch", req.Batch)
	c.JSON(http.StatusOK, types.InquiryResponse{OK: true})
}

// composeContactBody renders the plain-text notification for a contact
// enquiry. Absent optional fields render as an explicit placeholder.
func composeContactBody(req *types.ContactInquiry) string {
	return strings.TrimSpace(fmt.Sprintf(`
New enquiry received:

Name: %s
Email: %s
WhatsApp: %s

Message:
%s
`,
		req.Name,
		req.Email,
		types.OrNotProvided(req.WhatsApp),
		req.Message,
	))
}

// composeRegistrationBody renders the plain-text notification for a class
// registration inquiry in the fixed layout the academy inbox expects.
func composeRegistrationBody(req *types.ClassRegistrationInquiry) string {
	return strings.TrimSpace(fmt.Sprintf(`
New Inquiry Received

Name: %s
Age: %s
DOB: %s
Gender: %s

WhatsApp: %s
Email: %s

Level: %s
Batch: %s
Country: %s

Goals: %s
Previous dance background: %s
Heard from: %s

(Submitted from website Register/Enquire page)
`,
		req.Name,
		req.Age,
		types.OrDash(req.DOB),
		req.GenderLine(),
		req.WhatsApp,
		req.Email,
		req.Level,
		req.Batch,
		req.Country,
		types.OrDash(req.Goals),
		types.OrDash(req.DanceBackground),
		req.HeardFromLine(),
	))
}
