package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/EthanQC/im-router/services/router_service/internal/domain/entity"
	"github.com/EthanQC/im-router/services/router_service/internal/ports/in"
)

func TestRouterClient_SharesResolver(t *testing.T) {
	req := require.New(t)
	f := newDispatchFixture(newMemStore().online(userB, entity.TerminalWeb, "s1"))
	var client in.RouterClient = NewRouterClient(f.dispatcher, f.dispatcher.resolver)
	ctx := context.Background()

	online, err := client.IsOnline(ctx, userB)
	req.NoError(err)
	req.True(online)

	users, err := client.OnlineUsers(ctx, []int64{userA, userB})
	req.NoError(err)
	req.Equal([]int64{userB}, users)

	req.NoError(client.SendPrivateMessage(ctx, &entity.PrivateMessage{
		Sender:        entity.UserRef{UserID: userA, Terminal: entity.TerminalWeb},
		RecvID:        userB,
		RecvTerminals: []entity.Terminal{entity.TerminalWeb},
	}))
	req.Len(f.publisher.envelopes, 1)
	req.Equal("im:message:private:s1", f.publisher.envelopes[0].Destination)
}
