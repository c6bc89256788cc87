package tables_test

import (
	"testing"
	"time"

	"github.com/BETHUELTHIPE/bethuelportfoliowebsite/structs/tables"

	"github.com/stretchr/testify/assert"
)

func TestLoginCodeExpiredAt(t *testing.T) {
	created := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	code := &tables.LoginCode{CreatedAt: created}

	tests := []struct {
		name    string
		now     time.Time
		expired bool
	}{
		{"just created", created, false},
		{"one second before window", created.Add(tables.LoginCodeWindow - time.Second), false},
		{"exactly at window", created.Add(tables.LoginCodeWindow), true},
		{"well past window", created.Add(time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expired, code.ExpiredAt(tt.now))
		})
	}
}
