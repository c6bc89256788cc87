package tables

import (
	"time"

	"github.com/google/uuid"
)

// ResumeAccess records a successful gated resume download or email-resume
// request. Written fire-and-forget, never part of the authorization decision.
type ResumeAccess struct {
	tableName  struct{}  `bun:"table:resume_accesses,alias:ra"`
	Id         uuid.UUID `json:"id" bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	UserId     uuid.UUID `json:"user_id" bun:"user_id,notnull,type:uuid"`
	ClientIP   string    `json:"client_ip" bun:"client_ip"`
	AccessedAt time.Time `json:"accessed_at" bun:"accessed_at,notnull,default:current_timestamp"`
	User       *User     `json:"-" bun:"rel:belongs-to,join:user_id=id,on_delete:cascade"`
}
