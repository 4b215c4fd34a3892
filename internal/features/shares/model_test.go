package shares

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_ExpiredAt_WhenNoExpiry_NeverExpires(t *testing.T) {
	share := &Share{}

	assert.False(t, share.ExpiredAt(time.Now().Add(100*365*24*time.Hour)))
}

func Test_ExpiredAt_BeforeExpiry_NotExpired(t *testing.T) {
	expiry := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	share := &Share{ExpiresAt: &expiry}

	assert.False(t, share.ExpiredAt(expiry.Add(-time.Second)))
}

func Test_ExpiredAt_ExactlyAtExpiry_Expired(t *testing.T) {
	expiry := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	share := &Share{ExpiresAt: &expiry}

	assert.True(t, share.ExpiredAt(expiry))
}

func Test_ExpiredAt_AfterExpiry_Expired(t *testing.T) {
	expiry := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	share := &Share{ExpiresAt: &expiry}

	assert.True(t, share.ExpiredAt(expiry.Add(time.Second)))
}
