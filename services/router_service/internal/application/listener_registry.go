package application

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sync"

	"github.com/go-viper/mapstructure/v2"

	"github.com/EthanQC/im-router/services/router_service/internal/domain/entity"
)

// TypedResult 交给监听器的发送结果，Payload 已转换为监听器声明的类型
type TypedResult[T any] struct {
	Sender   entity.UserRef
	Receiver entity.UserRef
	Code     entity.SendCode
	Payload  T
}

// ListenerFunc 结果监听器
type ListenerFunc[T any] func(ctx context.Context, result *TypedResult[T]) error

// Coercer 把未定型的载荷转换成监听器声明的类型
type Coercer[T any] func(payload any) (T, error)

// listenerEntry 注册后的监听器，类型信息已被 prepare 闭包擦除
type listenerEntry struct {
	name     string
	category entity.ListenerType
	// prepare 先做载荷转换，成功后返回真正的调用
	prepare func(result *entity.SendResult) (func(ctx context.Context) error, error)
}

// ListenerRegistry 监听器注册表，启动时填充，构建 ResultMulticaster 时封存
type ListenerRegistry struct {
	mu        sync.Mutex
	sealed    bool
	names     map[string]struct{}
	listeners []listenerEntry
}

// NewListenerRegistry 创建空的注册表
func NewListenerRegistry() *ListenerRegistry {
	return &ListenerRegistry{names: make(map[string]struct{})}
}

// Listen 注册监听器，使用默认的载荷转换
func Listen[T any](r *ListenerRegistry, name string, category entity.ListenerType, fn ListenerFunc[T]) error {
	return ListenWith(r, name, category, CoercePayload[T], fn)
}

// ListenWith 注册监听器并指定载荷转换函数
func ListenWith[T any](r *ListenerRegistry, name string, category entity.ListenerType, coerce Coercer[T], fn ListenerFunc[T]) error {
	entry := listenerEntry{
		name:     name,
		category: category,
		prepare: func(result *entity.SendResult) (func(ctx context.Context) error, error) {
			payload, err := coerce(result.Payload)
			if err != nil {
				return nil, err
			}
			typed := &TypedResult[T]{
				Sender:   result.Sender,
				Receiver: result.Receiver,
				Code:     result.Code,
				Payload:  payload,
			}
			return func(ctx context.Context) error { return fn(ctx, typed) }, nil
		},
	}
	return r.add(entry)
}

// MustListen 启动期注册，失败即 panic
func MustListen[T any](r *ListenerRegistry, name string, category entity.ListenerType, fn ListenerFunc[T]) {
	if err := Listen(r, name, category, fn); err != nil {
		panic(err)
	}
}

func (r *ListenerRegistry) add(entry listenerEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return fmt.Errorf("register listener %q: %w", entry.name, entity.ErrRegistrySealed)
	}
	if _, ok := r.names[entry.name]; ok {
		return fmt.Errorf("register listener %q: %w", entry.name, entity.ErrDuplicateListener)
	}
	r.names[entry.name] = struct{}{}
	r.listeners = append(r.listeners, entry)
	return nil
}

// Len 已注册的监听器数量
func (r *ListenerRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.listeners)
}

// seal 封存注册表并返回监听器快照
func (r *ListenerRegistry) seal() []listenerEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sealed = true
	snapshot := make([]listenerEntry, len(r.listeners))
	copy(snapshot, r.listeners)
	return snapshot
}

// CoercePayload 默认转换，只处理未定型的载荷：
// 已是目标类型直接返回；目标是原始 JSON 时原样编码；
// json.RawMessage / []byte / string 按 JSON 解码；map 按 json tag 解码。
// 其他具体类型与目标不符即返回 ErrPayloadCoercion
func CoercePayload[T any](payload any) (T, error) {
	var out T

	switch v := payload.(type) {
	case T:
		return v, nil
	case nil:
		return out, nil
	}

	switch any(out).(type) {
	case json.RawMessage, []byte:
		return rawPayload[T](payload)
	}

	switch v := payload.(type) {
	case json.RawMessage:
		return decodeJSON[T](v)
	case []byte:
		return decodeJSON[T](v)
	case string:
		return decodeJSON[T]([]byte(v))
	case map[string]any:
		if decodesByTag[T]() {
			if err := decodeMap(v, &out); err == nil {
				return out, nil
			}
		}
		return roundTripJSON[T](v)
	}
	return out, fmt.Errorf("%w: cannot use %T as %T", entity.ErrPayloadCoercion, payload, out)
}

// rawPayload 目标为原始 JSON：字节载荷须是合法 JSON，其余载荷原样编码
func rawPayload[T any](payload any) (T, error) {
	var (
		out  T
		data []byte
	)
	switch v := payload.(type) {
	case json.RawMessage:
		data = v
	case []byte:
		if !json.Valid(v) {
			return out, fmt.Errorf("%w: payload bytes are not valid json", entity.ErrPayloadCoercion)
		}
		data = v
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return out, fmt.Errorf("%w: %w", entity.ErrPayloadCoercion, err)
		}
		data = encoded
	}

	switch p := any(&out).(type) {
	case *json.RawMessage:
		*p = data
	case *[]byte:
		*p = data
	}
	return out, nil
}

// decodesByTag 结构体、map 及其指针才走 mapstructure
func decodesByTag[T any]() bool {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct || t.Kind() == reflect.Map
}

func decodeJSON[T any](data []byte) (T, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("%w: %w", entity.ErrPayloadCoercion, err)
	}
	return out, nil
}

func roundTripJSON[T any](v any) (T, error) {
	data, err := json.Marshal(v)
	if err != nil {
		var out T
		return out, fmt.Errorf("%w: %w", entity.ErrPayloadCoercion, err)
	}
	return decodeJSON[T](data)
}

func decodeMap(input map[string]any, result any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           result,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}
