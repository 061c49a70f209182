package mailer

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siris-blog/models"
)

func sampleSubmission() models.ContactSubmission {
	return models.ContactSubmission{Name: "Ann", Email: "ann@example.com", Phone: "555-0101", Message: "Hello there"}
}

func TestComposeBody(t *testing.T) {
	body := ComposeBody(sampleSubmission())
	assert.Equal(t, "Name: Ann\nEmail: ann@example.com\nPhone: 555-0101\nMessage: Hello there", body)
}

func TestNewMessageRejectsPlaceholderSender(t *testing.T) {
	d := NewDispatcher(Config{
		Host: "127.0.0.1",
		Port: 587,
		From: "Custom Message / Email does not exist",
		To:   "owner@example.com",
	}, nil)

	err := d.Send(context.Background(), sampleSubmission())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "set sender")
}

func closedPort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())
	return port
}

func TestSendFailsWhenRelayUnreachable(t *testing.T) {
	d := NewDispatcher(Config{
		Host:     "127.0.0.1",
		Port:     closedPort(t),
		Username: "sender@example.com",
		Password: "secret",
		To:       "owner@example.com",
		Timeout:  time.Second,
	}, nil)

	err := d.Send(context.Background(), sampleSubmission())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "send via 127.0.0.1")
}

func TestSendStopsAtDailyQuota(t *testing.T) {
	q := NewSendQuota(0, 1)
	require.NoError(t, q.Reserve(context.Background()))

	d := NewDispatcher(Config{
		Host:     "127.0.0.1",
		Port:     closedPort(t),
		Username: "sender@example.com",
		To:       "owner@example.com",
	}, q)

	err := d.Send(context.Background(), sampleSubmission())
	assert.ErrorIs(t, err, ErrQuotaExceeded)
}

func TestFailedSendReturnsDailySlot(t *testing.T) {
	q := NewSendQuota(0, 1)
	d := NewDispatcher(Config{
		Host:     "127.0.0.1",
		Port:     closedPort(t),
		Username: "sender@example.com",
		To:       "owner@example.com",
		Timeout:  time.Second,
	}, q)

	for i := 0; i < 2; i++ {
		err := d.Send(context.Background(), sampleSubmission())
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrQuotaExceeded, "attempt %d", i+1)
		assert.Contains(t, err.Error(), "send via 127.0.0.1")
	}

	require.NoError(t, q.Reserve(context.Background()))
	assert.ErrorIs(t, q.Reserve(context.Background()), ErrQuotaExceeded)
}

func TestSendQuotaRelease(t *testing.T) {
	var disabled *SendQuota
	disabled.Release()

	q := NewSendQuota(0, 1)
	now := time.Date(2026, 10, 16, 23, 59, 0, 0, time.UTC)
	q.now = func() time.Time { return now }

	q.Release()
	require.NoError(t, q.Reserve(context.Background()))
	assert.ErrorIs(t, q.Reserve(context.Background()), ErrQuotaExceeded)

	q.Release()
	require.NoError(t, q.Reserve(context.Background()))

	// A slot from yesterday is not credited to today.
	now = now.Add(2 * time.Minute)
	require.NoError(t, q.Reserve(context.Background()))
	now = now.Add(-2 * time.Minute)
	q.Release()
	now = now.Add(2 * time.Minute)
	assert.ErrorIs(t, q.Reserve(context.Background()), ErrQuotaExceeded)
}

func TestNewSendQuotaDisabled(t *testing.T) {
	assert.Nil(t, NewSendQuota(0, 0))
	assert.Nil(t, NewSendQuota(-1, -5))

	var q *SendQuota
	assert.NoError(t, q.Reserve(context.Background()))
}

func TestSendQuotaDailyReset(t *testing.T) {
	q := NewSendQuota(0, 2)
	now := time.Date(2026, 10, 16, 23, 59, 0, 0, time.UTC)
	q.now = func() time.Time { return now }

	require.NoError(t, q.Reserve(context.Background()))
	require.NoError(t, q.Reserve(context.Background()))
	assert.ErrorIs(t, q.Reserve(context.Background()), ErrQuotaExceeded)

	now = now.Add(2 * time.Minute)
	assert.NoError(t, q.Reserve(context.Background()))
}

func TestSendQuotaPacingHonoursContext(t *testing.T) {
	q := NewSendQuota(1, 0)
	require.NoError(t, q.Reserve(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := q.Reserve(ctx)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}
