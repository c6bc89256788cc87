package tables

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	tableName struct{}  `bun:"table:posts,alias:p"`
	Id        uuid.UUID `json:"id" bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Title     string    `json:"title" bun:"title,notnull"`
	Slug      string    `json:"slug" bun:"slug,unique,notnull"`
	Body      string    `json:"body" bun:"body,notnull"`
	Published bool      `json:"published" bun:"published,notnull,default:false"`
	CreatedAt time.Time `json:"created_at" bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time `json:"updated_at" bun:"updated_at,notnull,default:current_timestamp"`
}
