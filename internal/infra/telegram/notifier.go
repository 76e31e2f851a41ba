package telegram

import (
	"github.com/sirupsen/logrus"

	domaintg "gym_schedule_bot/internal/domain/telegram"
)

// Notifier delivers run results to the one preconfigured recipient chat.
// Delivery failures are logged and swallowed: notification must never
// fail an automation run.
type Notifier struct {
	client domaintg.Client
	chatID int64
	log    *logrus.Entry
}

func NewNotifier(client domaintg.Client, chatID int64, log *logrus.Entry) *Notifier {
	return &Notifier{client: client, chatID: chatID, log: log.WithField("component", "notifier")}
}

func (n *Notifier) Notify(text string) {
	if err := n.client.SendMessage(n.chatID, text, nil); err != nil {
		n.log.WithError(err).Warn("notification delivery failed")
	}
}

// LogNotifier is the degraded notifier used when no Telegram credentials
// are configured.
type LogNotifier struct {
	Log *logrus.Entry
}

func (n LogNotifier) Notify(text string) {
	n.Log.WithField("notification", text).Info("telegram not configured, logging instead")
}
