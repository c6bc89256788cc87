package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/queue"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/structs"
	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
)

var (
	client     *resend.Client
	clientOnce = sync.Once{}
)

// EmailService builds and delivers transactional email. Messages are
// published to the mail queue when it is available and sent directly
// otherwise.
type EmailService struct {
	logger   *gecho.Logger
	cfg      *structs.Config
	client   *resend.Client
	producer *queue.Producer
}

func NewEmailService(logger *gecho.Logger, cfg *structs.Config, producer *queue.Producer) *EmailService {
	return &EmailService{
		logger:   logger,
		cfg:      cfg,
		client:   getEmailClient(cfg.Email.ApiKey),
		producer: producer,
	}
}

func getEmailClient(apiKey string) *resend.Client {
	clientOnce.Do(func() {
		client = resend.NewClient(apiKey)
	})
	return client
}

func (es *EmailService) SendEmail(to []string, subject string, body string) error {
	params := &resend.SendEmailRequest{
		From:    es.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := client.Emails.Send(params)
	if err != nil {
		es.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// dispatch publishes the job to the mail queue, falling back to an async
// direct send when the queue is unavailable. Delivery is best-effort either
// way; the calling operation must not fail because mail did not go out.
func (es *EmailService) dispatch(ctx context.Context, job queue.MailJob) {
	if es.producer != nil {
		if err := es.producer.Enqueue(ctx, job); err == nil {
			return
		} else {
			es.logger.Warn("Mail queue unavailable, sending directly",
				gecho.Field("kind", job.Kind),
				gecho.Field("error", err))
		}
	}

	go func() {
		if err := es.Deliver(context.Background(), job); err != nil {
			es.logger.Error("Failed to send email directly",
				gecho.Field("kind", job.Kind),
				gecho.Field("error", err))
		}
	}()
}

// Deliver rebuilds the message for a mail job and sends it. Also invoked by
// the queue worker for consumed jobs.
func (es *EmailService) Deliver(_ context.Context, job queue.MailJob) error {
	switch job.Kind {
	case queue.JobVerificationEmail:
		return es.SendEmail(job.To, "Verify your email", es.verificationBody(job.Payload["name"], job.Payload["link"]))
	case queue.JobLoginCodeEmail:
		return es.SendEmail(job.To, "Your login code", es.loginCodeBody(job.Payload["name"], job.Payload["code"]))
	case queue.JobContactNotify:
		subject := fmt.Sprintf("New contact message from %s", job.Payload["name"])
		return es.SendEmail(job.To, subject, es.contactBody(job.Payload["name"], job.Payload["email"], job.Payload["phone"], job.Payload["message"]))
	case queue.JobAnnouncementEmail:
		return es.SendEmail(job.To, job.Payload["subject"], es.announcementBody(job.Payload["subject"], job.Payload["body"], job.Payload["unsubscribe_link"]))
	case queue.JobResumeEmail:
		return es.SendEmail(job.To, "Resume download link", es.resumeBody(job.Payload["name"], job.Payload["link"]))
	case queue.JobWelcomeEmail:
		return es.SendEmail(job.To, "Welcome!", es.welcomeBody(job.Payload["name"]))
	case queue.JobSubscriptionNotice:
		return es.SendEmail(job.To, "You're subscribed", es.subscriptionBody(job.Payload["name"], job.Payload["unsubscribe_link"]))
	default:
		return fmt.Errorf("unknown mail job kind: %s", job.Kind)
	}
}

// SendVerificationEmail emails the verification link for a stored token
func (es *EmailService) SendVerificationEmail(ctx context.Context, user *tables.User, verification *tables.EmailVerification) {
	link := fmt.Sprintf("%s/auth/verify-email/%s", es.cfg.Server.ServerURL, verification.Token.String())

	es.dispatch(ctx, queue.MailJob{
		Kind: queue.JobVerificationEmail,
		To:   []string{user.Email},
		Payload: map[string]string{
			"name": user.FirstName,
			"link": link,
		},
	})
}

// SendLoginCodeEmail emails the one-time login code
func (es *EmailService) SendLoginCodeEmail(ctx context.Context, user *tables.User, code string) {
	es.dispatch(ctx, queue.MailJob{
		Kind: queue.JobLoginCodeEmail,
		To:   []string{user.Email},
		Payload: map[string]string{
			"name": user.FirstName,
			"code": code,
		},
	})
}

// SendContactNotification forwards a contact form submission to the site admin
func (es *EmailService) SendContactNotification(ctx context.Context, contact *tables.Contact) {
	es.dispatch(ctx, queue.MailJob{
		Kind: queue.JobContactNotify,
		To:   []string{es.cfg.Email.AdminEmail},
		Payload: map[string]string{
			"name":    contact.Name,
			"email":   contact.Email,
			"phone":   contact.Phone,
			"message": contact.Message,
		},
	})
}

// SendAnnouncement emails one subscriber a copy of an announcement with their
// personal unsubscribe link
func (es *EmailService) SendAnnouncement(ctx context.Context, subscriber *tables.EmailSubscriber, subject, body string) {
	unsubscribeLink := fmt.Sprintf("%s/newsletter/unsubscribe/%s", es.cfg.Server.ServerURL, subscriber.UnsubscribeToken)

	es.dispatch(ctx, queue.MailJob{
		Kind: queue.JobAnnouncementEmail,
		To:   []string{subscriber.Email},
		Payload: map[string]string{
			"subject":          subject,
			"body":             body,
			"unsubscribe_link": unsubscribeLink,
		},
	})
}

// SendSubscriptionNotice confirms a newsletter subscription
func (es *EmailService) SendSubscriptionNotice(ctx context.Context, subscriber *tables.EmailSubscriber) {
	unsubscribeLink := fmt.Sprintf("%s/newsletter/unsubscribe/%s", es.cfg.Server.ServerURL, subscriber.UnsubscribeToken)

	es.dispatch(ctx, queue.MailJob{
		Kind: queue.JobSubscriptionNotice,
		To:   []string{subscriber.Email},
		Payload: map[string]string{
			"name":             subscriber.Name,
			"unsubscribe_link": unsubscribeLink,
		},
	})
}

// SendResumeEmail emails a verified user the resume download link
func (es *EmailService) SendResumeEmail(ctx context.Context, user *tables.User) {
	link := fmt.Sprintf("%s/resume", es.cfg.Server.ServerURL)

	es.dispatch(ctx, queue.MailJob{
		Kind: queue.JobResumeEmail,
		To:   []string{user.Email},
		Payload: map[string]string{
			"name": user.FirstName,
			"link": link,
		},
	})
}

// SendWelcomeEmail greets a user after their email is verified
func (es *EmailService) SendWelcomeEmail(ctx context.Context, user *tables.User) {
	es.dispatch(ctx, queue.MailJob{
		Kind: queue.JobWelcomeEmail,
		To:   []string{user.Email},
		Payload: map[string]string{
			"name": user.FirstName,
		},
	})
}

const emailStyle = `
	body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
	.container { max-width: 600px; margin: 0 auto; padding: 20px; }
	.header { background-color: #2c3e50; color: white; padding: 20px; text-align: center; }
	.content { padding: 20px; background-color: #f9f9f9; }
	.button { display: inline-block; padding: 15px 30px; background-color: #2c3e50; color: white; text-decoration: none; border-radius: 5px; margin: 20px 0; }
	.code { font-size: 32px; letter-spacing: 8px; font-weight: bold; text-align: center; padding: 15px; background-color: #fff; border: 1px solid #ddd; border-radius: 5px; }
	.footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
`

func emailShell(header, content string) string {
	return fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<head>
			<meta charset="UTF-8">
			<style>%s</style>
		</head>
		<body>
			<div class="container">
				<div class="header">
					<h1>%s</h1>
				</div>
				<div class="content">
					%s
				</div>
				<div class="footer">
					<p>Bethuel Thipe | Portfolio</p>
				</div>
			</div>
		</body>
		</html>
	`, emailStyle, header, content)
}

func (es *EmailService) verificationBody(name, link string) string {
	content := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Please verify your email address by clicking the following link:</p>
		<p style="text-align: center;">
			<a href="%s" class="button">Verify Email</a>
		</p>
		<p>Link not working? Copy and paste the following URL into your browser:</p>
		<p style="word-break: break-all;">%s</p>
		<p>If you did not create an account, please ignore this email.</p>
	`, name, link, link)

	return emailShell("Verify your email address", content)
}

func (es *EmailService) loginCodeBody(name, code string) string {
	content := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Use this code to finish logging in:</p>
		<p class="code">%s</p>
		<p>The code expires in 10 minutes and can only be used once.</p>
		<p>If you did not try to log in, change your password immediately.</p>
	`, name, code)

	return emailShell("Your login code", content)
}

func (es *EmailService) contactBody(name, email, phone, message string) string {
	content := fmt.Sprintf(`
		<p><strong>From:</strong> %s &lt;%s&gt;</p>
		<p><strong>Phone:</strong> %s</p>
		<hr>
		<p style="white-space: pre-wrap;">%s</p>
	`, name, email, phone, message)

	return emailShell("New contact message", content)
}

func (es *EmailService) announcementBody(subject, body, unsubscribeLink string) string {
	content := fmt.Sprintf(`
		<p style="white-space: pre-wrap;">%s</p>
		<hr>
		<p style="font-size: 12px; color: #666;">
			You are receiving this because you subscribed to updates.
			<a href="%s">Unsubscribe</a>
		</p>
	`, body, unsubscribeLink)

	return emailShell(subject, content)
}

func (es *EmailService) resumeBody(name, link string) string {
	content := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>You can download the resume using the link below while logged in:</p>
		<p style="text-align: center;">
			<a href="%s" class="button">Download Resume</a>
		</p>
	`, name, link)

	return emailShell("Resume download", content)
}

func (es *EmailService) subscriptionBody(name, unsubscribeLink string) string {
	greeting := "Hi,"
	if name != "" {
		greeting = fmt.Sprintf("Hi %s,", name)
	}

	content := fmt.Sprintf(`
		<p>%s</p>
		<p>You are now subscribed to updates from this site.</p>
		<p style="font-size: 12px; color: #666;">
			Changed your mind? <a href="%s">Unsubscribe</a>
		</p>
	`, greeting, unsubscribeLink)

	return emailShell("Subscription confirmed", content)
}

func (es *EmailService) welcomeBody(name string) string {
	content := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your email address has been verified. You now have full access,
		including the resume download.</p>
	`, name)

	return emailShell("Welcome!", content)
}
