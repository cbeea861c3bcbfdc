// Package event 目录变更事件
//
// 图书/分类写入成功后发布，routing key为 catalog.<resource>.<action>，
// 例如 catalog.book.created、catalog.category.deleted。
package event

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/pkg/logger"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/mq"
)

// 资源类型
const (
	ResourceBook     = "book"
	ResourceCategory = "category"
)

// 动作
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event 目录变更事件（消息体）
type Event struct {
	Type       string    `json:"type"` // 同routing key
	Resource   string    `json:"resource"`
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Actor      string    `json:"actor,omitempty"` // 操作人用户ID
	OccurredAt time.Time `json:"occurredAt"`
}

// New 创建事件
func New(resource, action, id, title, actor string) Event {
	return Event{
		Type:       RoutingKey(resource, action),
		Resource:   resource,
		ID:         id,
		Title:      title,
		Actor:      actor,
		OccurredAt: time.Now().UTC(),
	}
}

// RoutingKey catalog.<resource>.<action>
func RoutingKey(resource, action string) string {
	return "catalog." + resource + "." + action
}

// Publisher 事件发布（尽力而为）
// 发布失败只记日志和指标，不影响已经提交的写操作
type Publisher struct {
	pub      mq.EventPublisher
	exchange string
}

// NewPublisher 创建事件发布者
func NewPublisher(pub mq.EventPublisher, cfg *config.Config) *Publisher {
	return &Publisher{pub: pub, exchange: cfg.MQ.Exchange}
}

// Publish 发布事件，p为nil时什么都不做
func (p *Publisher) Publish(ctx context.Context, e Event) {
	if p == nil || p.pub == nil {
		return
	}

	err := p.pub.Publish(ctx, e.Type, e)
	metrics.ObservePublish(p.exchange, e.Type, err)
	if err != nil {
		logger.L().Warn("publish catalog event failed",
			zap.String("type", e.Type),
			zap.String("id", e.ID),
			zap.Error(err),
		)
	}
}
