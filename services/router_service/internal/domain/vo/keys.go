package vo

import (
	"strconv"
	"strings"

	"github.com/EthanQC/im-router/services/router_service/internal/domain/entity"
)

const (
	// PresenceNamespace 网关写入的在线状态 key 前缀，值为连接所在的服务器ID
	PresenceNamespace = "im:user:server_id"
	// PrivateQueueNamespace 私聊投递队列前缀
	PrivateQueueNamespace = "im:message:private"
	// GroupQueueNamespace 群聊投递队列前缀
	GroupQueueNamespace = "im:message:group"

	keySep = ":"
)

// PresenceKey 在线状态 key: im:user:server_id:<userId>:<terminalCode>
func PresenceKey(userID int64, terminal entity.Terminal) string {
	return strings.Join([]string{
		PresenceNamespace,
		strconv.FormatInt(userID, 10),
		strconv.Itoa(terminal.Code()),
	}, keySep)
}

// PresencePattern 匹配某用户全部终端的通配 key
func PresencePattern(userID int64) string {
	return strings.Join([]string{PresenceNamespace, strconv.FormatInt(userID, 10), "*"}, keySep)
}

// ParsePresenceKey 从在线状态 key 中解析出用户和终端
func ParsePresenceKey(key string) (entity.UserRef, bool) {
	rest, ok := strings.CutPrefix(key, PresenceNamespace+keySep)
	if !ok {
		return entity.UserRef{}, false
	}
	userPart, termPart, ok := strings.Cut(rest, keySep)
	if !ok {
		return entity.UserRef{}, false
	}
	userID, err := strconv.ParseInt(userPart, 10, 64)
	if err != nil {
		return entity.UserRef{}, false
	}
	code, err := strconv.Atoi(termPart)
	if err != nil {
		return entity.UserRef{}, false
	}
	terminal, err := entity.TerminalByCode(code)
	if err != nil {
		return entity.UserRef{}, false
	}
	return entity.UserRef{UserID: userID, Terminal: terminal}, true
}

// QueueDestination 投递队列名: <namespace>:<serverId>
func QueueDestination(cmd entity.CommandKind, serverID string) string {
	ns := PrivateQueueNamespace
	if cmd == entity.CmdGroupMessage {
		ns = GroupQueueNamespace
	}
	return ns + keySep + serverID
}
