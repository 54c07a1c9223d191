package line

// AlertPusher 重生通報推播器
// 有設定群組 ID 時只推指定群組，否則 broadcast 給所有好友
type AlertPusher struct {
	client  *Client
	groupID string
}

// NewAlertPusher 建立通報推播器
func NewAlertPusher(client *Client, groupID string) *AlertPusher {
	return &AlertPusher{client: client, groupID: groupID}
}

// Push 送出通報文字
func (p *AlertPusher) Push(text string) error {
	if p.groupID != "" {
		return p.client.Push(p.groupID, text)
	}
	return p.client.Broadcast(text)
}
