package notify

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"go-jobradar/internal/config"
	"go-jobradar/internal/source"
)

type TelegramReporter struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

func NewTelegramReporter(cfg *config.Config) (*TelegramReporter, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}

	return &TelegramReporter{
		bot:    bot,
		chatID: cfg.TelegramChatID,
	}, nil
}

func (t *TelegramReporter) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = "HTML" //use HTML for bold/italic
	_, err := t.bot.Send(msg)
	return err
}

func (t *TelegramReporter) SendListing(l source.Listing) error {
	text := fmt.Sprintf(
		"🔥 <b>%s</b>\n"+
			"🏢 %s\n"+
			"📍 %s\n"+
			"🔑 %s\n"+
			"🔖 %s\n"+
			"🔗 <a href=\"%s\">Apply Now</a>",
		l.Title,
		l.Company,
		l.Location,
		l.MatchedKeyword,
		l.Source,
		l.URL,
	)
	return t.SendMessage(text)
}

func (t *TelegramReporter) SendStatus(message string) error {
	return t.SendMessage("ℹ️ " + message)
}

func (t *TelegramReporter) SendError(errReq error) error {
	return t.SendMessage(fmt.Sprintf("⚠️ <b>JobRadar Error</b>:\n%v", errReq))
}
