package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/MoisesNEY/hotel-management-system-sub001/internal/domain"
)

// TelegramNotifier delivers booking and billing notices over Telegram. Every
// send is best effort: failures are logged and swallowed so they can never
// undo a committed booking transaction.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

const dateLayout = "02 Jan 2006"

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, customer *domain.Customer, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking received*\n\nReference: %s\nCheck-in: %s\nCheck-out: %s\nGuests: %d",
		booking.Code,
		booking.CheckIn.Format(dateLayout),
		booking.CheckOut.Format(dateLayout),
		booking.Guests,
	)
	n.send(ctx, customer.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyBookingStatusChanged(ctx context.Context, customer *domain.Customer, booking *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking %s updated*\n\nStatus: %s",
		booking.Code, booking.Status,
	)
	n.send(ctx, customer.TelegramChatID, text)
}

func (n *TelegramNotifier) NotifyInvoiceIssued(ctx context.Context, customer *domain.Customer, invoice *domain.Invoice) {
	text := fmt.Sprintf(
		"*Invoice %s issued*\n\nTotal: %d.%02d %s\nTax: %d.%02d %s",
		invoice.Code,
		invoice.TotalCents/100, invoice.TotalCents%100, invoice.Currency,
		invoice.TaxCents/100, invoice.TaxCents%100, invoice.Currency,
	)
	n.send(ctx, customer.TelegramChatID, text)
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
