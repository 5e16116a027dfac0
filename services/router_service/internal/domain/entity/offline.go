package entity

import "encoding/json"

// OfflineRecord 接收终端离线时留存的一条消息，等待网关在用户上线后补发
type OfflineRecord struct {
	Sender   UserRef         `json:"sender"`
	Receiver UserRef         `json:"receiver"`
	Payload  json.RawMessage `json:"payload,omitempty"`
	// CreatedAt unix 秒
	CreatedAt int64 `json:"created_at"`
}
