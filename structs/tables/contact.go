package tables

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a contact-form submission. Rows are immutable once written.
type Contact struct {
	tableName   struct{}  `bun:"table:contacts,alias:c"`
	Id          uuid.UUID `json:"id" bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Name        string    `json:"name" bun:"name,notnull"`
	Email       string    `json:"email" bun:"email,notnull"`
	Phone       string    `json:"phone" bun:"phone,notnull"`
	Message     string    `json:"message" bun:"message,notnull"`
	SubmittedAt time.Time `json:"submitted_at" bun:"submitted_at,notnull,default:current_timestamp"`
}
