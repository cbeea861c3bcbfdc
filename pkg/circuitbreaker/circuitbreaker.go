// Package circuitbreaker 熔断器
//
// 三种状态：
//   - CLOSED：请求正常通过，统计失败次数，达到阈值转为OPEN
//   - OPEN：请求快速失败（ErrOpenState），Timeout后转为HALF_OPEN
//   - HALF_OPEN：放行最多MaxRequests个探测请求，成功转CLOSED，失败转回OPEN
//
// 目录服务用它保护Redis分类缓存：Redis故障时缓存读写快速失败，
// 调用方直接回源数据库，不在每个请求上等待Redis超时。
package circuitbreaker

import (
	"errors"
	"sync"
	"time"
)

// State 熔断器状态
type State int

const (
	StateClosed State = iota
	StateOpen
	StateHalfOpen
)

// String 状态转字符串（便于日志）
func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// Config 熔断器配置
type Config struct {
	// MaxRequests 半开状态下允许的最大探测请求数
	MaxRequests uint32

	// Interval CLOSED状态的统计窗口，过期后计数清零
	Interval time.Duration

	// Timeout OPEN状态持续时间，之后转为HALF_OPEN
	Timeout time.Duration

	// ReadyToTrip 根据当前统计判断是否熔断
	// 常见策略：counts.ConsecutiveFailures >= 5 或 counts.FailureRate() > 0.5
	ReadyToTrip func(counts Counts) bool
}

// DefaultConfig 缓存类依赖的默认配置：连续失败5次熔断，30秒后探测
func DefaultConfig() Config {
	return Config{
		MaxRequests: 1,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	}
}

// Counts 统计数据
type Counts struct {
	Requests             uint32 // 总请求数
	TotalSuccesses       uint32 // 总成功数
	TotalFailures        uint32 // 总失败数
	ConsecutiveSuccesses uint32 // 连续成功数
	ConsecutiveFailures  uint32 // 连续失败数
}

// FailureRate 计算失败率
func (c *Counts) FailureRate() float64 {
	if c.Requests == 0 {
		return 0
	}
	return float64(c.TotalFailures) / float64(c.Requests)
}

// Reset 重置统计
func (c *Counts) Reset() {
	*c = Counts{}
}

// Requests在beforeRequest中递增
func (c *Counts) onSuccess() {
	c.TotalSuccesses++
	c.ConsecutiveSuccesses++
	c.ConsecutiveFailures = 0
}

func (c *Counts) onFailure() {
	c.TotalFailures++
	c.ConsecutiveFailures++
	c.ConsecutiveSuccesses = 0
}

// CircuitBreaker 熔断器
type CircuitBreaker struct {
	name        string
	maxRequests uint32
	interval    time.Duration
	timeout     time.Duration
	readyToTrip func(counts Counts) bool

	mu            sync.Mutex
	state         State
	generation    uint64 // 每次状态切换递增，丢弃过期请求的结果
	counts        Counts
	expiry        time.Time
	onStateChange func(name string, from State, to State)
	onResult      func(name string, result string)
}

// ErrOpenState 熔断器打开错误
var ErrOpenState = errors.New("circuit breaker is open")

// 请求结果，传给SetResultCallback注册的回调
const (
	ResultSuccess  = "success"
	ResultFailure  = "failure"
	ResultRejected = "rejected"
)

// NewCircuitBreaker 创建熔断器
//
//	cb := NewCircuitBreaker("category-cache", Config{
//	    MaxRequests: 1,
//	    Interval:    10 * time.Second,
//	    Timeout:     30 * time.Second,
//	    ReadyToTrip: func(counts Counts) bool {
//	        return counts.ConsecutiveFailures >= 5
//	    },
//	})
func NewCircuitBreaker(name string, config Config) *CircuitBreaker {
	if config.MaxRequests == 0 {
		config.MaxRequests = 1
	}
	if config.ReadyToTrip == nil {
		config.ReadyToTrip = DefaultConfig().ReadyToTrip
	}
	cb := &CircuitBreaker{
		name:        name,
		maxRequests: config.MaxRequests,
		interval:    config.Interval,
		timeout:     config.Timeout,
		readyToTrip: config.ReadyToTrip,
		state:       StateClosed,
	}
	cb.expiry = cb.windowExpiry(time.Now())
	return cb
}

// windowExpiry Interval<=0表示CLOSED状态下计数不清零
func (cb *CircuitBreaker) windowExpiry(now time.Time) time.Time {
	if cb.interval <= 0 {
		return time.Time{}
	}
	return now.Add(cb.interval)
}

// Name 熔断器名称
func (cb *CircuitBreaker) Name() string {
	return cb.name
}

// SetStateChangeCallback 设置状态变化回调（日志、监控指标）
func (cb *CircuitBreaker) SetStateChangeCallback(fn func(name string, from State, to State)) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.onStateChange = fn
}

// SetResultCallback 设置请求结果回调（success/failure/rejected）
func (cb *CircuitBreaker) SetResultCallback(fn func(name string, result string)) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.onResult = fn
}

// Execute 执行请求
// 熔断器打开时不调用req，直接返回ErrOpenState
//
//	err := cb.Execute(func() error {
//	    return client.Get(ctx, key).Err()
//	})
func (cb *CircuitBreaker) Execute(req func() error) error {
	generation, err := cb.beforeRequest()
	if err != nil {
		cb.report(ResultRejected)
		return err
	}

	err = req()

	cb.afterRequest(generation, err == nil)
	if err != nil {
		cb.report(ResultFailure)
	} else {
		cb.report(ResultSuccess)
	}
	return err
}

func (cb *CircuitBreaker) report(result string) {
	cb.mu.Lock()
	fn := cb.onResult
	cb.mu.Unlock()
	if fn != nil {
		fn(cb.name, result)
	}
}

func (cb *CircuitBreaker) beforeRequest() (uint64, error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	state, generation := cb.currentState(time.Now())

	if state == StateOpen {
		return generation, ErrOpenState
	}
	if state == StateHalfOpen && cb.counts.Requests >= cb.maxRequests {
		return generation, ErrOpenState
	}

	cb.counts.Requests++
	return generation, nil
}

func (cb *CircuitBreaker) afterRequest(before uint64, success bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	now := time.Now()
	state, generation := cb.currentState(now)
	if generation != before {
		return
	}

	if success {
		cb.counts.onSuccess()
		if state == StateHalfOpen {
			cb.setState(StateClosed, now)
		}
		return
	}

	cb.counts.onFailure()
	switch state {
	case StateClosed:
		if cb.readyToTrip(cb.counts) {
			cb.setState(StateOpen, now)
		}
	case StateHalfOpen:
		cb.setState(StateOpen, now)
	}
}

// currentState CLOSED窗口过期时清零计数；OPEN超时后转HALF_OPEN
func (cb *CircuitBreaker) currentState(now time.Time) (State, uint64) {
	switch cb.state {
	case StateClosed:
		if !cb.expiry.IsZero() && cb.expiry.Before(now) {
			cb.counts.Reset()
			cb.expiry = cb.windowExpiry(now)
		}
	case StateOpen:
		if cb.expiry.Before(now) {
			cb.setState(StateHalfOpen, now)
		}
	}
	return cb.state, cb.generation
}

func (cb *CircuitBreaker) setState(state State, now time.Time) {
	if cb.state == state {
		return
	}

	prev := cb.state
	cb.state = state
	cb.generation++
	cb.counts.Reset()

	switch state {
	case StateClosed:
		cb.expiry = cb.windowExpiry(now)
	case StateOpen:
		cb.expiry = now.Add(cb.timeout)
	case StateHalfOpen:
		cb.expiry = time.Time{}
	}

	if cb.onStateChange != nil {
		cb.onStateChange(cb.name, prev, state)
	}
}

// State 获取当前状态
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	state, _ := cb.currentState(time.Now())
	return state
}

// Counts 获取当前统计数据
func (cb *CircuitBreaker) Counts() Counts {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	return cb.counts
}
