package services

import (
	"net/http"
	"strings"
	"time"

	tele "gopkg.in/telebot.v4"
)

// TelegramSender posts notifications to a fixed chat. This is the primary
// operator channel.
type TelegramSender struct {
	bot  *tele.Bot
	chat tele.ChatID
}

// NewTelegramSender connects to the Bot API. telebot verifies the token on
// construction, so a missing or malformed BOT_TOKEN fails here, at startup,
// not on the first booking.
func NewTelegramSender(token string, chatID int64) (*TelegramSender, error) {
	bot, err := tele.NewBot(tele.Settings{
		Token:  strings.TrimSpace(token),
		Client: &http.Client{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, err
	}
	return &TelegramSender{bot: bot, chat: tele.ChatID(chatID)}, nil
}

func (s *TelegramSender) Send(text string) error {
	_, err := s.bot.Send(s.chat, text, tele.ModeHTML)
	return err
}
