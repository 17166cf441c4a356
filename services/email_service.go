package services

import (
	"context"
	"fmt"
	"time"

	"github.com/bijalsangnaach/academy-backend/config"
	"github.com/bijalsangnaach/academy-backend/logger"
	"github.com/bijalsangnaach/academy-backend/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/resend/resend-go/v2"
)

type EmailMetrics struct {
	sendLatency prometheus.Histogram
	errorCount  prometheus.Counter
	sentCount   prometheus.Counter
}

// EmailService relays composed notifications through the Resend API.
// One synchronous delivery attempt per call; no internal retry.
type EmailService struct {
	config  *config.EmailConfig
	client  *resend.Client
	metrics *EmailMetrics
}

func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return NewEmailServiceWithRegistry(cfg, prometheus.DefaultRegisterer)
}

func NewEmailServiceWithRegistry(cfg *config.EmailConfig, reg prometheus.Registerer) *EmailService {
	logger.GetLogger().Infow("Initializing email service",
		"from", logger.MaskEmail(cfg.FromAddress),
		"receiver", logger.MaskEmail(cfg.ReceiverAddress),
		"apikey", logger.MaskSensitiveString(cfg.ResendAPIKey, 4, 2))
	client := resend.NewClient(cfg.ResendAPIKey)
	metrics := &EmailMetrics{
		sendLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "bijalsangnaach_email_send_duration_seconds",
			Help:    "Time taken to send inquiry emails",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10},
		}),
		errorCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bijalsangnaach_email_errors_total",
			Help: "Total number of email sending errors",
		}),
		sentCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bijalsangnaach_emails_sent_total",
			Help: "Total number of emails sent",
		}),
	}

	reg.MustRegister(metrics.sendLatency)
	reg.MustRegister(metrics.errorCount)
	reg.MustRegister(metrics.sentCount)

	return &EmailService{
		config:  cfg,
		client:  client,
		metrics: metrics,
	}
}

// Send delivers one composed message. The caller awaits completion before
// responding; a returned error carries the transport's own message text.
func (s *EmailService) Send(ctx context.Context, msg types.EmailMessage) error {
	startTime := time.Now()
	log := logger.GetLogger()
	defer func() {
		s.metrics.sendLatency.Observe(time.Since(startTime).Seconds())
	}()

	if msg.To == "" || msg.FromAddress == "" {
		s.metrics.errorCount.Inc()
		err := fmt.Errorf("email message missing sender or recipient address")
		log.Errorw("Invalid email message", "error", err)
		return err
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", msg.FromName, msg.FromAddress),
		To:      []string{msg.To},
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Text:    msg.Text,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		s.metrics.errorCount.Inc()
		log.Errorw("Failed to send email",
			"error", err,
			"to", logger.MaskEmail(msg.To),
			"subject", msg.Subject)
		// The transport's message is returned as-is; the submission
		// endpoints surface it verbatim to the caller.
		return err
	}

	s.metrics.sentCount.Inc()
	log.Infow("Email sent successfully",
		"to", logger.MaskEmail(msg.To),
		"reply_to", logger.MaskEmail(msg.ReplyTo),
		"subject", msg.Subject)

	return nil
}
