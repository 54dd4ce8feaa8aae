package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	interf "github.com/webdev-zad/laundry-system-be/internal/interfaces"
	models "github.com/webdev-zad/laundry-system-be/internal/models"
	"go.uber.org/zap"
)

// Рассылка событий после записи в хранилище.
// Ошибки получателей логируются и не влияют на запрос.
type Dispatcher struct {
	logger  *zap.Logger
	timeout time.Duration
	sinks   []interf.EventSink
	wg      sync.WaitGroup
}

func NewDispatcher(logger *zap.Logger, timeout time.Duration, sinks ...interf.EventSink) *Dispatcher {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Dispatcher{logger: logger, timeout: timeout, sinks: sinks}
}

func (d *Dispatcher) Emit(name string, payload any) {
	event := models.NewEvent(name, payload)
	for _, sink := range d.sinks {
		d.wg.Add(1)
		go d.publish(sink, event)
	}
}

func (d *Dispatcher) publish(sink interf.EventSink, event models.Event) {
	defer d.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			d.fail(sink, event, fmt.Errorf("panic: %v", r))
		}
	}()
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	err := sink.Publish(ctx, event)
	if err != nil {
		d.fail(sink, event, err)
	}
}

func (d *Dispatcher) fail(sink interf.EventSink, event models.Event, err error) {
	notificationsFailedTotal.WithLabelValues(sink.Name()).Inc()
	d.logger.Warn("Notification failed",
		zap.String("sink", sink.Name()),
		zap.String("event", event.Name),
		zap.Error(err),
	)
}

// Ожидание отправки уже запущенных событий
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
