package application

import (
	"context"
	"path"
	"sync"

	"go.uber.org/zap"

	"github.com/EthanQC/im-router/services/router_service/internal/domain/entity"
	"github.com/EthanQC/im-router/services/router_service/internal/domain/vo"
)

// memStore 内存版在线状态存储，记录每种调用的次数
type memStore struct {
	mu       sync.Mutex
	data     map[string]string
	gets     int
	multiGet int
	scans    int
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]string)}
}

func (s *memStore) online(userID int64, terminal entity.Terminal, serverID string) *memStore {
	s.data[vo.PresenceKey(userID, terminal)] = serverID
	return s
}

func (s *memStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gets++
	return s.data[key], nil
}

func (s *memStore) MultiGet(_ context.Context, keys []string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.multiGet++
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = s.data[k]
	}
	return out, nil
}

func (s *memStore) ScanKeys(_ context.Context, pattern string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scans++
	var out []string
	for k := range s.data {
		if ok, _ := path.Match(pattern, k); ok {
			out = append(out, k)
		}
	}
	return out, nil
}

func (s *memStore) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gets + s.multiGet + s.scans
}

// recordingPublisher 记录发布的载体
type recordingPublisher struct {
	mu        sync.Mutex
	envelopes []*entity.DeliveryEnvelope
}

func (p *recordingPublisher) Publish(_ context.Context, envelope *entity.DeliveryEnvelope) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.envelopes = append(p.envelopes, envelope)
	return nil
}

func (p *recordingPublisher) byDestination() map[string]*entity.DeliveryEnvelope {
	out := make(map[string]*entity.DeliveryEnvelope, len(p.envelopes))
	for _, e := range p.envelopes {
		out[e.Destination] = e
	}
	return out
}

type recordedResult struct {
	category entity.ListenerType
	result   *entity.SendResult
}

// recordingMulticaster 记录广播的结果
type recordingMulticaster struct {
	mu      sync.Mutex
	results []recordedResult
}

func (m *recordingMulticaster) Multicast(_ context.Context, category entity.ListenerType, result *entity.SendResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, recordedResult{category: category, result: result})
}

type dispatchFixture struct {
	store       *memStore
	publisher   *recordingPublisher
	multicaster *recordingMulticaster
	dispatcher  *MessageDispatcher
}

func newDispatchFixture(store *memStore) *dispatchFixture {
	f := &dispatchFixture{
		store:       store,
		publisher:   &recordingPublisher{},
		multicaster: &recordingMulticaster{},
	}
	f.dispatcher = NewMessageDispatcher(NewPresenceResolver(store), f.publisher, f.multicaster)
	return f
}

func init() {
	zap.ReplaceGlobals(zap.NewNop())
}
