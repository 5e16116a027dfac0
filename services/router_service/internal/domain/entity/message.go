package entity

// UserRef 一个用户在某个终端上的连接位
type UserRef struct {
	UserID   int64    `json:"user_id"`
	Terminal Terminal `json:"terminal"`
}

// PrivateMessage 私聊消息
type PrivateMessage struct {
	Sender        UserRef    `json:"sender"`
	RecvID        int64      `json:"recv_id"`
	RecvTerminals []Terminal `json:"recv_terminals"`
	Payload       any        `json:"payload"`
	// SendResult 为 true 时，接收方离线会产生 NOT_ONLINE 回执
	SendResult bool `json:"send_result"`
	// SendToSelf 为 true 时，同步给发送者的其他终端
	SendToSelf bool `json:"send_to_self"`
}

// GroupMessage 群聊消息，总是同步给发送者的其他终端
type GroupMessage struct {
	Sender        UserRef    `json:"sender"`
	RecvIDs       []int64    `json:"recv_ids"`
	RecvTerminals []Terminal `json:"recv_terminals"`
	Payload       any        `json:"payload"`
	SendResult    bool       `json:"send_result"`
}

// CommandKind 投递指令类型
type CommandKind int

const (
	CmdPrivateMessage CommandKind = 3
	CmdGroupMessage   CommandKind = 4
)

func (c CommandKind) String() string {
	switch c {
	case CmdPrivateMessage:
		return "private"
	case CmdGroupMessage:
		return "group"
	default:
		return "unknown"
	}
}

// DeliveryEnvelope 投递到某台网关服务器队列的消息载体，
// Receivers 是同一条消息在该服务器上的全部接收者
type DeliveryEnvelope struct {
	Cmd         CommandKind `json:"cmd"`
	Sender      UserRef     `json:"sender"`
	Receivers   []UserRef   `json:"receivers"`
	SendResult  bool        `json:"send_result"`
	Payload     any         `json:"payload"`
	Destination string      `json:"-"`
}
