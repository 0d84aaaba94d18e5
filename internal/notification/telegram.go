package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/ewhettey/church-attendance/internal/domain"
)

// TelegramNotifier posts to the admin chat. A missing token or chat id
// turns it into a no-op.
type TelegramNotifier struct {
	bot         *tgbotapi.BotAPI
	adminChatID int64
	logger      logger.Logger
}

func NewTelegramNotifier(token string, adminChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, adminChatID: adminChatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, adminChatID: adminChatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyVisitorCheckedIn(ctx context.Context, event *domain.Event, a *domain.Attendance) {
	n.send(ctx, visitorText(event, a))
}

func (n *TelegramNotifier) NotifySyncCompleted(ctx context.Context, result domain.SyncResult) {
	n.send(ctx, syncText(result))
}

func visitorText(event *domain.Event, a *domain.Attendance) string {
	howHeard := "not stated"
	if a.HowHeard != nil {
		howHeard = *a.HowHeard
	}

	return fmt.Sprintf(
		"*New visitor*\n\n"+"Event: %s (%s)\n"+"Name: %s\n"+"Phone: %s\n"+"Church: %s\n"+"Heard through: %s",
		escape(event.Name), event.Schedule.EventDate.String(),
		escape(a.Name), escape(a.Phone), escape(a.Church), escape(howHeard),
	)
}

func syncText(r domain.SyncResult) string {
	return fmt.Sprintf(
		"*Offline attendance synced*\n\n"+"Synced: %d\n"+"Still pending: %d\n"+"Rejected: %d",
		r.Synced, r.Failed, r.Rejected,
	)
}

func escape(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdown, s)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.adminChatID == 0 {
		n.logger.Debug("notification skipped (no admin chat)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.adminChatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.adminChatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.adminChatID),
			logger.String("error", err.Error()),
		)
	}
}
