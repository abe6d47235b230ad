package eventcenter

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/jackyeh168/common_wallet/src/internal/domain/shared"
)

// ErrNilEvent Notify 收到 nil 事件
var ErrNilEvent = errors.New("eventcenter: nil event")

// DeliveryError 一次廣播中單一觀察者的失敗（錯誤或 panic）
type DeliveryError struct {
	Kind     shared.EventKind
	EventID  string
	Observer shared.Observer
	Panicked bool
	Err      error
}

func (e *DeliveryError) Error() string {
	if e.Panicked {
		return fmt.Sprintf("observer %T panicked handling %s (%s): %v", e.Observer, e.Kind, e.EventID, e.Err)
	}
	return fmt.Sprintf("observer %T failed handling %s (%s): %v", e.Observer, e.Kind, e.EventID, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// kindSet 事件種類過濾器；kinds 為 nil 表示接受所有種類
type kindSet struct {
	kinds map[shared.EventKind]struct{}
}

func newKindSet(kinds []shared.EventKind) *kindSet {
	if len(kinds) == 0 {
		return &kindSet{}
	}
	set := make(map[shared.EventKind]struct{}, len(kinds))
	for _, k := range kinds {
		set[k] = struct{}{}
	}
	return &kindSet{kinds: set}
}

func (s *kindSet) accepts(kind shared.EventKind) bool {
	if s.kinds == nil {
		return true
	}
	_, ok := s.kinds[kind]
	return ok
}

func (s *kindSet) merge(kinds []shared.EventKind) *kindSet {
	if s.kinds == nil || len(kinds) == 0 {
		return &kindSet{}
	}
	merged := make(map[shared.EventKind]struct{}, len(s.kinds)+len(kinds))
	for k := range s.kinds {
		merged[k] = struct{}{}
	}
	for _, k := range kinds {
		merged[k] = struct{}{}
	}
	return &kindSet{kinds: merged}
}

// delivery 快照中的一筆註冊；kinds 在取快照時固定，廣播中合併的新種類不影響本次投遞
type delivery struct {
	reg   *registration
	kinds *kindSet
}

type registration struct {
	observer   shared.Observer
	comparable bool
	kinds      atomic.Pointer[kindSet]
	active     atomic.Bool
}

// EventCenter 行程內同步事件中心（實作 shared.EventCenter）
//
// 並發策略：copy-on-write
// - 註冊列表的每次變更都換上新的 slice，Notify 在進入時取快照，投遞期間不持鎖
// - 因此觀察者在 Handle 中重入 Notify / AddObserver / RemoveObserver 不會死鎖
// - 廣播開始後才註冊的觀察者不會收到本次事件；重複註冊合併的新種類也只從下一次廣播生效
// - 廣播進行中被移除、且尚未輪到的觀察者會被跳過（registration.active）
type EventCenter struct {
	mu            sync.RWMutex
	registrations []*registration
	logger        zerolog.Logger
}

// New 創建 EventCenter，觀察者失敗時以 warn 等級記錄
func New(logger zerolog.Logger) *EventCenter {
	return &EventCenter{
		logger: logger.With().Str("component", "eventcenter").Logger(),
	}
}

// AddObserver 註冊觀察者；kinds 為空表示訂閱所有種類
//
// 重複註冊同一觀察者時合併 kinds 並保留原本的投遞順序，不會重複投遞。
func (c *EventCenter) AddObserver(observer shared.Observer, kinds ...shared.EventKind) shared.Subscription {
	if observer == nil {
		return subscription{}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if reg := c.findLocked(observer); reg != nil {
		reg.kinds.Store(reg.kinds.Load().merge(kinds))
		return subscription{center: c, reg: reg}
	}

	reg := &registration{
		observer:   observer,
		comparable: reflect.TypeOf(observer).Comparable(),
	}
	reg.kinds.Store(newKindSet(kinds))
	reg.active.Store(true)

	next := make([]*registration, len(c.registrations), len(c.registrations)+1)
	copy(next, c.registrations)
	c.registrations = append(next, reg)

	return subscription{center: c, reg: reg}
}

// RemoveObserver 移除觀察者
//
// 動態類型不可比較的觀察者（例如未取址的 ObserverFunc）無法以此方式找到，
// 需改用 AddObserver 返回的 Subscription。
func (c *EventCenter) RemoveObserver(observer shared.Observer) {
	if observer == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if reg := c.findLocked(observer); reg != nil {
		c.removeLocked(reg)
	}
}

// ObserverCount 返回目前註冊的觀察者數量
func (c *EventCenter) ObserverCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.registrations)
}

// Notify 同步投遞事件
//
// 依註冊順序投遞給所有訂閱該種類的觀察者。單一觀察者返回錯誤或 panic
// 不會中斷對其他觀察者的投遞；所有失敗在廣播結束後以 errors.Join 一併返回。
func (c *EventCenter) Notify(event shared.DomainEvent) error {
	if event == nil {
		return ErrNilEvent
	}

	snapshot := c.snapshot()
	kind := event.EventType()

	var errs []error
	delivered := 0
	for _, d := range snapshot {
		if !d.reg.active.Load() || !d.kinds.accepts(kind) {
			continue
		}
		delivered++
		if err := c.deliver(d.reg, event); err != nil {
			c.logger.Warn().
				Err(err).
				Str("event_kind", string(kind)).
				Str("event_id", event.EventID()).
				Msg("observer failed")
			errs = append(errs, err)
		}
	}

	c.logger.Debug().
		Str("event_kind", string(kind)).
		Str("event_id", event.EventID()).
		Int("delivered", delivered).
		Int("failed", len(errs)).
		Msg("event broadcast")

	return errors.Join(errs...)
}

// Publish 實現 shared.EventPublisher
func (c *EventCenter) Publish(event shared.DomainEvent) error {
	return c.Notify(event)
}

// PublishBatch 依序投遞所有事件，遇到失敗繼續投遞下一個
func (c *EventCenter) PublishBatch(events []shared.DomainEvent) error {
	var errs []error
	for _, event := range events {
		if err := c.Notify(event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *EventCenter) deliver(reg *registration, event shared.DomainEvent) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &DeliveryError{
				Kind:     event.EventType(),
				EventID:  event.EventID(),
				Observer: reg.observer,
				Panicked: true,
				Err:      fmt.Errorf("%v", r),
			}
		}
	}()

	if handleErr := reg.observer.Handle(event); handleErr != nil {
		return &DeliveryError{
			Kind:     event.EventType(),
			EventID:  event.EventID(),
			Observer: reg.observer,
			Err:      handleErr,
		}
	}
	return nil
}

// snapshot 在讀鎖下同時取出註冊列表與各自的 kinds；合併 kinds 需要寫鎖，因此兩者一致
func (c *EventCenter) snapshot() []delivery {
	c.mu.RLock()
	defer c.mu.RUnlock()
	deliveries := make([]delivery, len(c.registrations))
	for i, reg := range c.registrations {
		deliveries[i] = delivery{reg: reg, kinds: reg.kinds.Load()}
	}
	return deliveries
}

func (c *EventCenter) findLocked(observer shared.Observer) *registration {
	if !reflect.TypeOf(observer).Comparable() {
		return nil
	}
	for _, reg := range c.registrations {
		if reg.comparable && reg.observer == observer {
			return reg
		}
	}
	return nil
}

func (c *EventCenter) removeLocked(target *registration) {
	for i, reg := range c.registrations {
		if reg != target {
			continue
		}
		reg.active.Store(false)
		next := make([]*registration, 0, len(c.registrations)-1)
		next = append(next, c.registrations[:i]...)
		next = append(next, c.registrations[i+1:]...)
		c.registrations = next
		return
	}
}

// subscription 釋放單一註冊；Cancel 可重複呼叫
type subscription struct {
	center *EventCenter
	reg    *registration
}

func (s subscription) Cancel() {
	if s.center == nil {
		return
	}
	s.center.mu.Lock()
	defer s.center.mu.Unlock()
	s.center.removeLocked(s.reg)
}
