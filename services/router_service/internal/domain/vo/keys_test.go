package vo

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/EthanQC/im-router/services/router_service/internal/domain/entity"
)

func TestPresenceKey(t *testing.T) {
	req := require.New(t)

	req.Equal("im:user:server_id:42:2", PresenceKey(42, entity.TerminalDesktop))
	req.Equal(PresenceKey(42, entity.TerminalDesktop), PresenceKey(42, entity.TerminalDesktop))
	req.Equal("im:user:server_id:42:*", PresencePattern(42))
}

func TestParsePresenceKey(t *testing.T) {
	req := require.New(t)

	ref, ok := ParsePresenceKey(PresenceKey(7, entity.TerminalMobile))
	req.True(ok)
	req.Equal(entity.UserRef{UserID: 7, Terminal: entity.TerminalMobile}, ref)

	for _, bad := range []string{
		"im:user:server_id:7",
		"im:user:server_id:x:1",
		"im:user:server_id:7:99",
		"other:7:1",
	} {
		_, ok := ParsePresenceKey(bad)
		req.False(ok, bad)
	}
}

func TestQueueDestination(t *testing.T) {
	req := require.New(t)

	req.Equal("im:message:private:s7", QueueDestination(entity.CmdPrivateMessage, "s7"))
	req.Equal("im:message:group:s1", QueueDestination(entity.CmdGroupMessage, "s1"))
}
