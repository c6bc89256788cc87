package tables

import (
	"time"

	"github.com/google/uuid"
)

// EmailSubscriber is a newsletter membership. Unsubscribing deactivates the
// row instead of deleting it, so one row exists per email address forever.
type EmailSubscriber struct {
	tableName        struct{}  `bun:"table:email_subscribers,alias:es"`
	Id               uuid.UUID `json:"id" bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Email            string    `json:"email" bun:"email,unique,notnull"`
	Name             string    `json:"name" bun:"name"`
	Active           bool      `json:"active" bun:"active,notnull,default:true"`
	UnsubscribeToken string    `json:"-" bun:"unsubscribe_token,unique,notnull"`
	CreatedAt        time.Time `json:"created_at" bun:"created_at,notnull,default:current_timestamp"`
}
