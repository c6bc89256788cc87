package queue

import "time"

// Mail job kinds understood by the worker
const (
	JobVerificationEmail  = "verification_email"
	JobLoginCodeEmail     = "login_code_email"
	JobContactNotify      = "contact_notification"
	JobAnnouncementEmail  = "announcement_email"
	JobResumeEmail        = "resume_email"
	JobWelcomeEmail       = "welcome_email"
	JobSubscriptionNotice = "subscription_notice"
)

// MailJob is a single queued email delivery. The payload carries
// kind-specific fields so the worker can rebuild the message.
type MailJob struct {
	ID         string            `json:"id"`
	Kind       string            `json:"kind"`
	To         []string          `json:"to"`
	Payload    map[string]string `json:"payload,omitempty"`
	EnqueuedAt time.Time         `json:"enqueued_at"`
}
