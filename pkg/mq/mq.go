// Package mq 基于RabbitMQ的消息发布
//
// 目录服务在图书/分类写入成功后发布变更事件（catalog.book.created 等），
// 供搜索索引、推荐等下游订阅。发布是尽力而为的：失败只记日志，不影响接口响应。
//
// Exchange使用topic类型，下游可按 catalog.book.* 或 catalog.# 订阅。
package mq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/xiebiao/bookcatalog/pkg/logger"
)

// EventPublisher 事件发布接口
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
	Close() error
}

// Publisher RabbitMQ消息发布者
// amqp.Channel不支持并发发布，用互斥锁串行化
type Publisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

// NewPublisher 连接RabbitMQ并声明持久化Exchange
func NewPublisher(url, exchange, exchangeType string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("连接RabbitMQ失败: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("创建Channel失败: %w", err)
	}

	err = channel.ExchangeDeclare(
		exchange,     // Exchange名称
		exchangeType, // Exchange类型
		true,         // Durable（持久化）
		false,        // AutoDelete
		false,        // Internal
		false,        // NoWait
		nil,          // Arguments
	)
	if err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("声明Exchange失败: %w", err)
	}

	logger.L().Info("mq publisher ready",
		zap.String("exchange", exchange),
		zap.String("type", exchangeType),
	)

	return &Publisher{
		conn:     conn,
		channel:  channel,
		exchange: exchange,
	}, nil
}

// Exchange 发布目标Exchange
func (p *Publisher) Exchange() string {
	return p.exchange
}

// Publish 以JSON发布持久化消息
func (p *Publisher) Publish(ctx context.Context, routingKey string, message interface{}) error {
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("消息序列化失败: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		routingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("发布消息失败: %w", err)
	}

	logger.L().Debug("mq message published",
		zap.String("routing_key", routingKey),
		zap.Int("bytes", len(body)),
	)
	return nil
}

// Close 关闭Channel和连接
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

// NopPublisher 未启用消息队列时使用，丢弃所有消息
type NopPublisher struct{}

// Publish 什么都不做
func (NopPublisher) Publish(context.Context, string, interface{}) error { return nil }

// Close 什么都不做
func (NopPublisher) Close() error { return nil }
