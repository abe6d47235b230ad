package shared

import "time"

// EventKind 事件種類
//
// 每個 bounded context 宣告自己的封閉常數集合（例如 wallet.EventKindAccountUpdated），
// Event Center 以 EventKind 為鍵分派事件。
type EventKind string

// DomainEvent 領域事件基礎介面
type DomainEvent interface {
	EventID() string       // 事件唯一標識
	EventType() EventKind  // 事件種類
	OccurredAt() time.Time // 發生時間
	AggregateID() string   // 聚合根 ID（無聚合的通知事件為空字串）
}

// EventPublisher 事件發布器介面
// 設計原則：介面定義在 Domain Layer（使用者），由 Infrastructure 實作
type EventPublisher interface {
	Publish(event DomainEvent) error
	PublishBatch(events []DomainEvent) error
}

// Observer 事件觀察者
//
// Handle 在 Notify 的呼叫者 goroutine 上同步執行。
// 返回的錯誤（或 panic）只影響自己，不會中斷對其他觀察者的投遞。
type Observer interface {
	Handle(event DomainEvent) error
}

// ObserverFunc 將函數包裝為 Observer
//
// 函數值不可比較，因此用 NewObserver 取得指標後再註冊，
// 才能以 RemoveObserver 移除。
type ObserverFunc func(event DomainEvent) error

// Handle 實現 Observer 介面
func (f ObserverFunc) Handle(event DomainEvent) error {
	return f(event)
}

// NewObserver 以函數建立可比較（指標）的 Observer
func NewObserver(fn func(event DomainEvent) error) Observer {
	f := ObserverFunc(fn)
	return &f
}

// Subscription 觀察者註冊的釋放句柄
//
// 持有者在生命週期結束時呼叫 Cancel；重複呼叫無副作用。
type Subscription interface {
	Cancel()
}

// EventCenter 行程內發布/訂閱中心
//
// 顯式注入到需要它的元件（透過 Resolver），不使用全域單例。
type EventCenter interface {
	EventPublisher

	// Notify 同步投遞事件給所有訂閱該種類的觀察者（依註冊順序）
	Notify(event DomainEvent) error

	// AddObserver 註冊觀察者；kinds 為空表示訂閱所有種類
	AddObserver(observer Observer, kinds ...EventKind) Subscription

	// RemoveObserver 移除觀察者的註冊
	RemoveObserver(observer Observer)
}
