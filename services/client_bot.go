package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	tele "gopkg.in/telebot.v4"
)

// ClientBot is the visitor-facing Telegram bot. It greets new chats, collects
// shared phone numbers so booking notifications can reach the client
// directly, and relays anything a client writes to the operator channel
// through the same dispatcher the booking flow uses.
type ClientBot struct {
	bot        *tele.Bot
	dispatcher *Dispatcher
	log        zerolog.Logger
}

// NewClientBot connects to the Bot API. As with the operator sender, a bad
// token fails here, at startup.
func NewClientBot(token string, dispatcher *Dispatcher, log zerolog.Logger) (*ClientBot, error) {
	bot, err := tele.NewBot(tele.Settings{
		Token:  strings.TrimSpace(token),
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return nil, err
	}
	return &ClientBot{
		bot:        bot,
		dispatcher: dispatcher,
		log:        log.With().Str("component", "client_bot").Logger(),
	}, nil
}

// Start registers the handlers and begins long polling in the background.
// The bot runs until Stop.
func (cb *ClientBot) Start() {
	shareMenu := &tele.ReplyMarkup{ResizeKeyboard: true, OneTimeKeyboard: true}
	shareMenu.Reply(shareMenu.Row(shareMenu.Contact("📱 Share phone number for notifications")))

	cb.bot.Handle("/start", func(c tele.Context) error {
		cb.dispatcher.Send(startNotice(c.Sender()))
		return c.Send(
			"Hi! 👋\nI am the VR ZONE bot.\nTo get booking notifications in private messages,\nshare your phone number:",
			shareMenu,
		)
	})

	cb.bot.Handle(tele.OnContact, func(c tele.Context) error {
		contact := c.Message().Contact
		if contact == nil || contact.PhoneNumber == "" {
			return c.Send("Could not read the contact. Please try again.")
		}
		cb.dispatcher.Send(contactNotice(c.Sender(), contact))

		name := c.Sender().FirstName
		if name == "" {
			name = "there"
		}
		return c.Send(
			fmt.Sprintf("Thanks, %s! ✅\nYour number %s is saved.\nBooking notifications will arrive here.",
				name, strings.TrimSpace(contact.PhoneNumber)),
			&tele.ReplyMarkup{RemoveKeyboard: true},
		)
	})

	// Anything else written in a private chat is relayed to the operator.
	cb.bot.Handle(tele.OnText, func(c tele.Context) error {
		if c.Chat() == nil || c.Chat().Type != tele.ChatPrivate {
			return nil
		}
		cb.dispatcher.Send(forwardNotice(c.Sender(), c.Text()))
		return nil
	})

	go cb.bot.Start()
	cb.log.Info().Msg("client bot started")
}

func (cb *ClientBot) Stop() {
	cb.bot.Stop()
}

func startNotice(u *tele.User) string {
	return fmt.Sprintf(
		"🆕 New client started a chat\n👤 %s\n🔗 %s\n🆔 %d",
		fullName(u), username(u), u.ID,
	)
}

func contactNotice(u *tele.User, c *tele.Contact) string {
	return fmt.Sprintf(
		"📱 New client shared a phone number\n👤 %s\n📞 %s\n🔗 %s\n🆔 %d",
		fullName(u), strings.TrimSpace(c.PhoneNumber), username(u), u.ID,
	)
}

func forwardNotice(u *tele.User, text string) string {
	return fmt.Sprintf(
		"💬 Message from client %s (ID: %d)\n%s",
		username(u), u.ID, text,
	)
}

func fullName(u *tele.User) string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return "Client"
	}
	return name
}

func username(u *tele.User) string {
	if u.Username == "" {
		return "no username"
	}
	return "@" + u.Username
}
