package line

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
)

// sign 以 channel secret 計算請求體簽章
func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

func TestValidateSignature(t *testing.T) {
	secret := "test-channel-secret"
	body := []byte(`{"events":[]}`)

	assert.True(t, ValidateSignature(secret, body, sign(secret, body)))

	// 錯的密鑰
	assert.False(t, ValidateSignature("wrong-secret", body, sign(secret, body)))

	// 被竄改的請求體
	assert.False(t, ValidateSignature(secret, []byte(`{"events":[{}]}`), sign(secret, body)))

	// 非 base64 簽章
	assert.False(t, ValidateSignature(secret, body, "not-base64!!!"))

	// 空簽章
	assert.False(t, ValidateSignature(secret, body, ""))
}
