package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/EthanQC/im-router/services/router_service/internal/domain/entity"
	"github.com/EthanQC/im-router/services/router_service/internal/mocks"
)

const (
	userA int64 = 100
	userB int64 = 200
	userC int64 = 300
)

func TestSendPrivateMessage_RoutesAndSyncsSender(t *testing.T) {
	req := require.New(t)
	store := newMemStore().
		online(userB, entity.TerminalDesktop, "s7").
		online(userA, entity.TerminalMobile, "s3")
	f := newDispatchFixture(store)

	msg := &entity.PrivateMessage{
		Sender:        entity.UserRef{UserID: userA, Terminal: entity.TerminalWeb},
		RecvID:        userB,
		RecvTerminals: []entity.Terminal{entity.TerminalDesktop},
		Payload:       "hi",
		SendResult:    true,
		SendToSelf:    true,
	}
	req.NoError(f.dispatcher.SendPrivateMessage(context.Background(), msg))

	req.Len(f.publisher.envelopes, 2)
	got := f.publisher.byDestination()

	toB := got["im:message:private:s7"]
	req.NotNil(toB)
	req.Equal(entity.CmdPrivateMessage, toB.Cmd)
	req.Equal([]entity.UserRef{{UserID: userB, Terminal: entity.TerminalDesktop}}, toB.Receivers)
	req.True(toB.SendResult)
	req.Equal("hi", toB.Payload)

	toSelf := got["im:message:private:s3"]
	req.NotNil(toSelf)
	req.Equal([]entity.UserRef{{UserID: userA, Terminal: entity.TerminalMobile}}, toSelf.Receivers)
	req.False(toSelf.SendResult)

	// A 的 desktop 不在线，静默跳过
	req.Empty(f.multicaster.results)
}

func TestSendPrivateMessage_OfflineResults(t *testing.T) {
	ctx := context.Background()
	sender := entity.UserRef{UserID: userA, Terminal: entity.TerminalWeb}
	terminals := []entity.Terminal{entity.TerminalWeb, entity.TerminalMobile, entity.TerminalDesktop}

	t.Run("with ack", func(t *testing.T) {
		req := require.New(t)
		f := newDispatchFixture(newMemStore().online(userB, entity.TerminalMobile, "s1"))

		req.NoError(f.dispatcher.SendPrivateMessage(ctx, &entity.PrivateMessage{
			Sender: sender, RecvID: userB, RecvTerminals: terminals, SendResult: true,
		}))

		req.Len(f.publisher.envelopes, 1)
		req.Len(f.multicaster.results, 2)
		for _, r := range f.multicaster.results {
			req.Equal(entity.ListenerPrivate, r.category)
			req.Equal(entity.SendCodeNotOnline, r.result.Code)
			req.Equal(userB, r.result.Receiver.UserID)
			req.Equal(sender, r.result.Sender)
		}
	})

	t.Run("without ack", func(t *testing.T) {
		req := require.New(t)
		f := newDispatchFixture(newMemStore().online(userB, entity.TerminalMobile, "s1"))

		req.NoError(f.dispatcher.SendPrivateMessage(ctx, &entity.PrivateMessage{
			Sender: sender, RecvID: userB, RecvTerminals: terminals, SendResult: false,
		}))

		req.Len(f.publisher.envelopes, 1)
		req.Empty(f.multicaster.results)
	})
}

func TestSendPrivateMessage_NoTerminalsIsNoop(t *testing.T) {
	req := require.New(t)
	f := newDispatchFixture(newMemStore())
	ctx := context.Background()

	req.NoError(f.dispatcher.SendPrivateMessage(ctx, nil))
	req.NoError(f.dispatcher.SendPrivateMessage(ctx, &entity.PrivateMessage{RecvID: userB, SendToSelf: true}))
	req.NoError(f.dispatcher.SendPrivateMessage(ctx, &entity.PrivateMessage{
		RecvID: userB, RecvTerminals: []entity.Terminal{entity.Terminal(42)}, SendResult: true,
	}))

	req.Zero(f.store.calls())
	req.Empty(f.publisher.envelopes)
	req.Empty(f.multicaster.results)
}

func TestSendGroupMessage_PartitionsByServer(t *testing.T) {
	req := require.New(t)
	store := newMemStore().online(userB, entity.TerminalMobile, "s1")
	f := newDispatchFixture(store)

	msg := &entity.GroupMessage{
		Sender:        entity.UserRef{UserID: userA, Terminal: entity.TerminalDesktop},
		RecvIDs:       []int64{userB, userC},
		RecvTerminals: []entity.Terminal{entity.TerminalMobile},
		Payload:       map[string]any{"text": "hello"},
		SendResult:    true,
	}
	req.NoError(f.dispatcher.SendGroupMessage(context.Background(), msg))

	req.Len(f.publisher.envelopes, 1)
	env := f.publisher.envelopes[0]
	req.Equal("im:message:group:s1", env.Destination)
	req.Equal(entity.CmdGroupMessage, env.Cmd)
	req.Equal([]entity.UserRef{{UserID: userB, Terminal: entity.TerminalMobile}}, env.Receivers)

	req.Len(f.multicaster.results, 1)
	res := f.multicaster.results[0]
	req.Equal(entity.ListenerGroup, res.category)
	req.Equal(entity.SendCodeNotOnline, res.result.Code)
	req.Equal(entity.UserRef{UserID: userC, Terminal: entity.TerminalMobile}, res.result.Receiver)

	// 一次批量解析接收者，一次批量解析发送者的其他终端
	req.Equal(2, store.multiGet)
	req.Zero(store.gets)
}

func TestSendGroupMessage_OneEnvelopePerDestination(t *testing.T) {
	req := require.New(t)
	store := newMemStore().
		online(1, entity.TerminalWeb, "s1").
		online(1, entity.TerminalMobile, "s2").
		online(2, entity.TerminalWeb, "s2").
		online(3, entity.TerminalMobile, "s1").
		online(4, entity.TerminalWeb, "s3")
	f := newDispatchFixture(store)

	req.NoError(f.dispatcher.SendGroupMessage(context.Background(), &entity.GroupMessage{
		Sender:        entity.UserRef{UserID: userA, Terminal: entity.TerminalWeb},
		RecvIDs:       []int64{1, 2, 3, 4, 5},
		RecvTerminals: []entity.Terminal{entity.TerminalWeb, entity.TerminalMobile},
		SendResult:    false,
	}))

	req.Len(f.publisher.envelopes, 3)
	req.Equal(
		[]string{"im:message:group:s1", "im:message:group:s2", "im:message:group:s3"},
		[]string{f.publisher.envelopes[0].Destination, f.publisher.envelopes[1].Destination, f.publisher.envelopes[2].Destination},
	)

	got := f.publisher.byDestination()
	req.ElementsMatch([]entity.UserRef{
		{UserID: 1, Terminal: entity.TerminalWeb},
		{UserID: 3, Terminal: entity.TerminalMobile},
	}, got["im:message:group:s1"].Receivers)
	req.ElementsMatch([]entity.UserRef{
		{UserID: 1, Terminal: entity.TerminalMobile},
		{UserID: 2, Terminal: entity.TerminalWeb},
	}, got["im:message:group:s2"].Receivers)
	req.Equal([]entity.UserRef{{UserID: 4, Terminal: entity.TerminalWeb}}, got["im:message:group:s3"].Receivers)

	// 不要回执，离线直接丢弃
	req.Empty(f.multicaster.results)
}

func TestSendGroupMessage_SyncsSenderOtherTerminals(t *testing.T) {
	req := require.New(t)
	store := newMemStore().
		online(userA, entity.TerminalWeb, "s1").
		online(userA, entity.TerminalMobile, "s4").
		online(userA, entity.TerminalDesktop, "s5")
	f := newDispatchFixture(store)

	req.NoError(f.dispatcher.SendGroupMessage(context.Background(), &entity.GroupMessage{
		Sender:        entity.UserRef{UserID: userA, Terminal: entity.TerminalDesktop},
		RecvIDs:       []int64{userB},
		RecvTerminals: []entity.Terminal{entity.TerminalWeb},
		SendResult:    true,
	}))

	// 发送终端本身不同步
	got := f.publisher.byDestination()
	req.Len(got, 2)
	req.Contains(got, "im:message:group:s1")
	req.Contains(got, "im:message:group:s4")
	req.NotContains(got, "im:message:group:s5")
	for _, env := range got {
		req.False(env.SendResult)
		req.Equal(userA, env.Receivers[0].UserID)
	}

	// 只有接收者 B 的离线回执，自同步从不产生回执
	req.Len(f.multicaster.results, 1)
	req.Equal(userB, f.multicaster.results[0].result.Receiver.UserID)
}

func TestSendGroupMessage_EmptyRecipientsIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockPresenceStore(ctrl)
	publisher := mocks.NewMockEnvelopePublisher(ctrl)
	multicaster := mocks.NewMockResultMulticaster(ctrl)

	store.EXPECT().Get(gomock.Any(), gomock.Any()).Times(0)
	store.EXPECT().MultiGet(gomock.Any(), gomock.Any()).Times(0)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)
	multicaster.EXPECT().Multicast(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	d := NewMessageDispatcher(NewPresenceResolver(store), publisher, multicaster)
	ctx := context.Background()

	require.NoError(t, d.SendGroupMessage(ctx, nil))
	require.NoError(t, d.SendGroupMessage(ctx, &entity.GroupMessage{
		RecvTerminals: entity.AllTerminals(), SendResult: true,
	}))
	require.NoError(t, d.SendGroupMessage(ctx, &entity.GroupMessage{
		RecvIDs: []int64{userB}, SendResult: true,
	}))
}

func TestSendGroupMessage_DuplicateRecipientsResolvedOnce(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	store := mocks.NewMockPresenceStore(ctrl)
	publisher := mocks.NewMockEnvelopePublisher(ctrl)

	gomock.InOrder(
		store.EXPECT().MultiGet(gomock.Any(), gomock.Len(2)).Return([]string{"s1", "s1"}, nil),
		store.EXPECT().MultiGet(gomock.Any(), gomock.Len(2)).Return([]string{"", ""}, nil),
	)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, env *entity.DeliveryEnvelope) error {
			req.Len(env.Receivers, 2)
			return nil
		},
	).Times(1)

	d := NewMessageDispatcher(NewPresenceResolver(store), publisher, &recordingMulticaster{})
	req.NoError(d.SendGroupMessage(context.Background(), &entity.GroupMessage{
		Sender:        entity.UserRef{UserID: userA, Terminal: entity.TerminalWeb},
		RecvIDs:       []int64{userB, userC, userB},
		RecvTerminals: []entity.Terminal{entity.TerminalMobile, entity.TerminalMobile},
	}))
}

func TestSendPrivateMessage_PublishErrorPropagates(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	boom := errors.New("broker unavailable")

	publisher := mocks.NewMockEnvelopePublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(boom).Times(1)

	store := newMemStore().
		online(userB, entity.TerminalWeb, "s1").
		online(userB, entity.TerminalMobile, "s2")
	d := NewMessageDispatcher(NewPresenceResolver(store), publisher, &recordingMulticaster{})

	err := d.SendPrivateMessage(context.Background(), &entity.PrivateMessage{
		Sender:        entity.UserRef{UserID: userA, Terminal: entity.TerminalWeb},
		RecvID:        userB,
		RecvTerminals: []entity.Terminal{entity.TerminalWeb, entity.TerminalMobile},
		SendToSelf:    true,
	})
	req.ErrorIs(err, boom)
	req.Contains(err.Error(), "im:message:private:s1")
}

func TestSendGroupMessage_StoreErrorPropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	boom := errors.New("redis timeout")

	store := mocks.NewMockPresenceStore(ctrl)
	store.EXPECT().MultiGet(gomock.Any(), gomock.Any()).Return(nil, boom)
	publisher := mocks.NewMockEnvelopePublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	d := NewMessageDispatcher(NewPresenceResolver(store), publisher, &recordingMulticaster{})
	err := d.SendGroupMessage(context.Background(), &entity.GroupMessage{
		RecvIDs:       []int64{userB},
		RecvTerminals: []entity.Terminal{entity.TerminalWeb},
	})
	require.ErrorIs(t, err, boom)
}

func TestSendPrivateMessage_OnlineProducesNoResult(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	multicaster := mocks.NewMockResultMulticaster(ctrl)
	multicaster.EXPECT().Multicast(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	store := newMemStore().online(userB, entity.TerminalWeb, "s1")
	publisher := &recordingPublisher{}
	d := NewMessageDispatcher(NewPresenceResolver(store), publisher, multicaster)

	req.NoError(d.SendPrivateMessage(context.Background(), &entity.PrivateMessage{
		RecvID:        userB,
		RecvTerminals: []entity.Terminal{entity.TerminalWeb},
		SendResult:    true,
	}))
	req.Len(publisher.envelopes, 1)
}
