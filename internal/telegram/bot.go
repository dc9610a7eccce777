package telegram

import (
	"context"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"unityplan-bot/internal/goals"
)

// asker answers a free-text question, always returning some reply text.
type asker interface {
	Ask(ctx context.Context, userID int64, prompt string) string
}

type Bot struct {
	api       *tgbotapi.BotAPI
	s         sender
	goals     goals.Repository
	assistant asker
}

func New(botToken string, repo goals.Repository, assistant asker) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}
	return &Bot{
		api:       api,
		s:         botAPISender{api: api},
		goals:     repo,
		assistant: assistant,
	}, nil
}

// Start receives updates until the update channel closes. Each message is
// handled in its own goroutine; handlers share nothing but the goal store.
func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	u.AllowedUpdates = []string{"message"}

	log.Printf("🚀 UnityPlan bot started as @%s", b.api.Self.UserName)

	updates := b.api.GetUpdatesChan(u)
	for update := range updates {
		if update.Message == nil {
			continue
		}
		go b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) menuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(buttonAskAI),
			tgbotapi.NewKeyboardButton(buttonMyGoals),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(buttonChallenge),
			tgbotapi.NewKeyboardButton(buttonDailyPlan),
		),
	)
	kb.ResizeKeyboard = true
	return kb
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.s.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}

func (b *Bot) sendMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := b.s.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}

func (b *Bot) sendWithMenu(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = b.menuKeyboard()
	if _, err := b.s.Send(msg); err != nil {
		log.Printf("failed to send message: %v", err)
	}
}
