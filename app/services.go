package app

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IDSource hands out request identifiers.
type IDSource interface {
	NextID() string
}

type uuidSource struct{}

// NewIDSource returns an IDSource backed by random (v4) UUIDs.
func NewIDSource() IDSource { return uuidSource{} }

func (uuidSource) NextID() string { return uuid.NewString() }

// Counter is a process-wide monotonically increasing counter.
type Counter interface {
	Incr() int64
	Value() int64
}

type atomicCounter struct {
	n atomic.Int64
}

func NewCounter() Counter { return &atomicCounter{} }

func (c *atomicCounter) Incr() int64  { return c.n.Add(1) }
func (c *atomicCounter) Value() int64 { return c.n.Load() }

// ── Greeter ───────────────────────────────────────────────────────────────────

// Greeting is the payload returned by GET /greet/{name}.
type Greeting struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

// Greeter is bound transient: every resolution gets a fresh Greeter, while
// its IDSource and Counter are shared singletons.
type Greeter struct {
	app     string
	ids     IDSource
	counter Counter
}

func NewGreeter(appName string, ids IDSource, counter Counter) *Greeter {
	return &Greeter{app: appName, ids: ids, counter: counter}
}

func (g *Greeter) Greet(name string) Greeting {
	return Greeting{
		ID:      g.ids.NextID(),
		Message: fmt.Sprintf("Hello, %s! Welcome to %s.", name, g.app),
		Count:   g.counter.Incr(),
	}
}

// ── Notifiers ─────────────────────────────────────────────────────────────────

// Notifier is registered several times; GET /notify fans out to every binding.
type Notifier interface {
	Name() string
	Notify(message string) error
}

// LogNotifier writes notifications to the application log.
type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Name() string { return "log" }

func (n *LogNotifier) Notify(message string) error {
	n.logger.Info("notification", zap.String("message", message))
	return nil
}

// MemoryNotifier keeps every notification it receives.
type MemoryNotifier struct {
	mu       sync.Mutex
	messages []string
}

func NewMemoryNotifier() *MemoryNotifier { return &MemoryNotifier{} }

func (n *MemoryNotifier) Name() string { return "memory" }

func (n *MemoryNotifier) Notify(message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
	return nil
}

// Messages returns a copy of the received notifications, oldest first.
func (n *MemoryNotifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}
