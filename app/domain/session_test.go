package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"access-service/app/domain"
)

func TestSessionKeyFor(t *testing.T) {
	subject := "CN=DOE.JANE.1,OU=ORG"

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t,
			domain.SessionKeyFor(subject, "10.0.0.1"),
			domain.SessionKeyFor(subject, "10.0.0.1"))
	})

	t.Run("distinct per client origin", func(t *testing.T) {
		assert.NotEqual(t,
			domain.SessionKeyFor(subject, "10.0.0.1"),
			domain.SessionKeyFor(subject, "10.0.0.2"))
	})

	t.Run("distinct per subject", func(t *testing.T) {
		assert.NotEqual(t,
			domain.SessionKeyFor(subject, "10.0.0.1"),
			domain.SessionKeyFor("CN=SMITH.JOHN.Q.123,OU=ORG", "10.0.0.1"))
	})
}

func TestSessionRecord_Refresh(t *testing.T) {
	record := &domain.SessionRecord{
		LoginTime:    time.Now().Add(-time.Hour),
		LastActivity: time.Now().Add(-time.Hour),
		ExpiresAt:    time.Now().Add(time.Minute),
	}

	record.Refresh(8 * time.Hour)

	assert.False(t, record.IsExpired())
	assert.WithinDuration(t, time.Now(), record.LastActivity, time.Second)
	assert.WithinDuration(t, time.Now().Add(8*time.Hour), record.ExpiresAt, time.Second)
}

func TestSessionRecord_IsExpired(t *testing.T) {
	expired := &domain.SessionRecord{ExpiresAt: time.Now().Add(-time.Second)}
	assert.True(t, expired.IsExpired())

	live := &domain.SessionRecord{ExpiresAt: time.Now().Add(time.Second)}
	assert.False(t, live.IsExpired())
}
