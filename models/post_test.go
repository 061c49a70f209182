package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPostSlug(t *testing.T) {
	p := Post{Title: "All About Llamas"}
	assert.Equal(t, "all-about-llamas", p.Slug())
}

func TestPostTimestamp(t *testing.T) {
	tests := []struct {
		name string
		date string
		want time.Time
		ok   bool
	}{
		{"remote layout", "Sep 24, 2023 01:30PM", time.Date(2023, 9, 24, 13, 30, 0, 0, time.UTC), true},
		{"iso layout", "2023-09-24", time.Date(2023, 9, 24, 0, 0, 0, 0, time.UTC), true},
		{"surrounding spaces", " 2023-09-24 ", time.Date(2023, 9, 24, 0, 0, 0, 0, time.UTC), true},
		{"empty", "", time.Time{}, false},
		{"garbage", "yesterday", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Post{Date: tt.date}.Timestamp()
			assert.Equal(t, tt.ok, ok)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestContactOutcome(t *testing.T) {
	assert.False(t, ContactInvalid.Submitted())
	assert.True(t, ContactDelivered.Submitted())
	assert.True(t, ContactDeliveryFailed.Submitted())
	assert.Equal(t, "delivery_failed", ContactDeliveryFailed.String())
}
