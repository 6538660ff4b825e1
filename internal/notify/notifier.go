// Package notify pushes roster events to a Telegram chat: shifts offered on
// the swap market, claimed offers, and coverage gaps found after a write.
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"shiftmaster/internal/events"
)

// Payloads carried by the events the notifier understands.
type (
	ShiftEvent struct {
		ShiftID       string `json:"shift_id"`
		EmployeeName  string `json:"employee_name"`
		Date          string `json:"date"`
		ConfirmedType string `json:"confirmed_type"`
		StartTime     string `json:"start_time"`
		EndTime       string `json:"end_time"`
	}

	CoverageEvent struct {
		Date string `json:"date"`
	}
)

// Notifier sends event messages to one Telegram chat, rate limited so a
// burst of roster edits cannot flood the channel.
type Notifier struct {
	bot     *tgbotapi.BotAPI
	chatID  int64
	limiter *rate.Limiter
	queue   chan string
	logger  zerolog.Logger
}

// New creates a notifier for the given bot token and chat.
func New(token string, chatID int64, logger zerolog.Logger) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &Notifier{
		bot:     bot,
		chatID:  chatID,
		limiter: rate.NewLimiter(rate.Limit(1), 5), // 1 msg/s, burst of 5
		queue:   make(chan string, 64),
		logger:  logger.With().Str("component", "notify").Logger(),
	}, nil
}

// Attach subscribes the notifier to the event bus. Handlers only enqueue;
// sending happens on the goroutine owned by Run.
func (n *Notifier) Attach(bus *events.EventBus) {
	bus.Subscribe(events.TypeShiftOffered, func(e events.Event) {
		var p ShiftEvent
		if err := json.Unmarshal(e.Payload, &p); err != nil {
			n.logger.Error().Err(err).Str("event", e.Type).Msg("decode event payload")
			return
		}
		n.enqueue(fmt.Sprintf("🔄 Směna na burze: %s %s %s–%s (%s)",
			p.Date, p.ConfirmedType, p.StartTime, p.EndTime, p.EmployeeName))
	})

	bus.Subscribe(events.TypeShiftClaimed, func(e events.Event) {
		var p ShiftEvent
		if err := json.Unmarshal(e.Payload, &p); err != nil {
			n.logger.Error().Err(err).Str("event", e.Type).Msg("decode event payload")
			return
		}
		n.enqueue(fmt.Sprintf("✅ Směna %s %s převzata: %s", p.Date, p.ConfirmedType, p.EmployeeName))
	})

	bus.Subscribe(events.TypeCoverageGap, func(e events.Event) {
		var p CoverageEvent
		if err := json.Unmarshal(e.Payload, &p); err != nil {
			n.logger.Error().Err(err).Str("event", e.Type).Msg("decode event payload")
			return
		}
		n.enqueue(fmt.Sprintf("⚠️ Prodejna není pokrytá: %s", p.Date))
	})
}

// Run delivers queued messages until the context ends.
func (n *Notifier) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case text := <-n.queue:
			if err := n.limiter.Wait(ctx); err != nil {
				return
			}
			msg := tgbotapi.NewMessage(n.chatID, text)
			if _, err := n.bot.Send(msg); err != nil {
				n.logger.Error().Err(err).Msg("send notification")
			}
		}
	}
}

func (n *Notifier) enqueue(text string) {
	select {
	case n.queue <- text:
	default:
		n.logger.Warn().Msg("notification queue full, dropping message")
	}
}
