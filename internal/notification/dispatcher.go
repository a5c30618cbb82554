package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/luksdev/travels-corp/internal/domain"
	"github.com/luksdev/travels-corp/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const defaultBuffer = 64

// Dispatcher consumes status-change events off a buffered channel and fans
// them out to the persisted notification log, email, and telegram. Delivery
// is best effort: a failed channel is logged and never unwinds the already
// committed status change.
type Dispatcher struct {
	repo     ports.NotificationRepo
	mailer   Mailer
	telegram *TelegramNotifier
	logger   logger.Logger
	events   chan domain.StatusChangeEvent
}

func NewDispatcher(
	repo ports.NotificationRepo,
	mailer Mailer,
	telegram *TelegramNotifier,
	logger logger.Logger,
	buffer int,
) *Dispatcher {
	if buffer <= 0 {
		buffer = defaultBuffer
	}

	return &Dispatcher{
		repo:     repo,
		mailer:   mailer,
		telegram: telegram,
		logger:   logger,
		events:   make(chan domain.StatusChangeEvent, buffer),
	}
}

// Publish enqueues an event without blocking the caller. If the buffer is
// full the event is dropped with a log line rather than stalling a request.
func (d *Dispatcher) Publish(event domain.StatusChangeEvent) {
	select {
	case d.events <- event:
	default:
		d.logger.Error("notification dropped, buffer full",
			logger.String("travel_request_id", event.TravelRequestID),
			logger.String("user_id", event.Recipient.UserID),
		)
	}
}

func (d *Dispatcher) Run(ctx context.Context) {
	d.logger.Info("notification dispatcher started")

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("notification dispatcher stopped")
			return
		case event := <-d.events:
			d.deliver(ctx, event)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, event domain.StatusChangeEvent) {
	n := &domain.Notification{
		ID:              uuid.New().String(),
		UserID:          event.Recipient.UserID,
		TravelRequestID: event.TravelRequestID,
		Destination:     event.Destination,
		OldStatus:       event.OldStatus,
		NewStatus:       event.NewStatus,
		DepartureDate:   event.DepartureDate,
		ReturnDate:      event.ReturnDate,
		Message:         Message(event),
	}
	if err := d.repo.Create(ctx, n); err != nil {
		d.logger.Error("failed to persist notification",
			logger.String("travel_request_id", event.TravelRequestID),
			logger.String("error", err.Error()),
		)
	}

	if err := d.mailer.Send(ctx, event.Recipient.Email, EmailSubject(event), EmailBody(event)); err != nil {
		d.logger.Error("failed to send notification email",
			logger.String("travel_request_id", event.TravelRequestID),
			logger.String("error", err.Error()),
		)
	}

	if d.telegram != nil {
		d.telegram.Send(ctx, event.Recipient.TelegramChatID, Message(event))
	}
}
