package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverdue(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	tests := []struct {
		name     string
		status   Status
		deadline time.Time
		want     bool
	}{
		{"todo past deadline", StatusTodo, past, true},
		{"doing past deadline", StatusDoing, past, true},
		{"done past deadline is never overdue", StatusDone, past, false},
		{"todo future deadline", StatusTodo, future, false},
		{"deadline exactly now", StatusDoing, now, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tk := &Task{Status: tt.status, Deadline: tt.deadline}
			assert.Equal(t, tt.want, tk.Overdue(now))
		})
	}
}
