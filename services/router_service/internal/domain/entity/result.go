package entity

// SendCode 发送结果码
type SendCode int

const (
	SendCodeOK              SendCode = 0
	SendCodeNotOnline       SendCode = 1
	SendCodeNotFoundChannel SendCode = 2
	SendCodeUnknownError    SendCode = 9999
)

func (c SendCode) String() string {
	switch c {
	case SendCodeOK:
		return "ok"
	case SendCodeNotOnline:
		return "not_online"
	case SendCodeNotFoundChannel:
		return "not_found_channel"
	default:
		return "unknown_error"
	}
}

// SendResult 单个接收终端的发送结果。
// 由分发器为离线接收者生成，或由网关投递后经结果队列回传；
// 回传时 Payload 是未定型的 json.RawMessage / map，交给监听器前按其声明类型转换
type SendResult struct {
	Sender   UserRef  `json:"sender"`
	Receiver UserRef  `json:"receiver"`
	Code     SendCode `json:"code"`
	Payload  any      `json:"payload"`
}

// ListenerType 监听器关心的结果类别
type ListenerType int

const (
	ListenerAll ListenerType = iota
	ListenerPrivate
	ListenerGroup
)

// Accepts 监听 ALL 或类别完全一致时接收
func (l ListenerType) Accepts(category ListenerType) bool {
	return l == ListenerAll || l == category
}

func (l ListenerType) String() string {
	switch l {
	case ListenerAll:
		return "all"
	case ListenerPrivate:
		return "private"
	case ListenerGroup:
		return "group"
	default:
		return "unknown"
	}
}
