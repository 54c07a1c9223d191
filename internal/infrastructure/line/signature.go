package line

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// SignatureHeader Webhook 簽章標頭名
const SignatureHeader = "X-Line-Signature"

// ValidateSignature 驗證 webhook 簽章
// 簽章 = base64(HMAC-SHA256(channel secret, 原始請求體))
// 驗證失敗的請求必須在進入指令處理前被拒絕
func ValidateSignature(channelSecret string, body []byte, signature string) bool {
	decoded, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(channelSecret))
	mac.Write(body)
	return hmac.Equal(decoded, mac.Sum(nil))
}
