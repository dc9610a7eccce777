package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	startText = "👋 Привіт, я UnityPlan Bot з AI!\n" +
		"Команди:\n" +
		"• /ask твоє_питання — запит до AI\n" +
		"• /addgoal Текст цілі — додати\n" +
		"• /goals — список цілей\n" +
		"• /done ID — позначити виконаною\n" +
		"• /del ID — видалити\n"

	askUsageText     = "Напиши так: `/ask Допоможи скласти план на день`"
	askButtonText    = "Напиши команду у форматі: `/ask Твоє запитання`"
	thinkingText     = "🧠 Думаю над відповіддю…"
	addGoalUsageText = "Введи так: `/addgoal Купити BMW S1000RR`"
	noGoalsText      = "Поки що немає цілей. Додай через `/addgoal ...`"
	doneUsageText    = "Введи так: `/done 12` (де 12 — ID цілі)"
	delUsageText     = "Введи так: `/del 12` (де 12 — ID цілі)"
	notFoundText     = "❗️Не знайшов таку ціль."
	storageErrText   = "⚠️ Сталася помилка збереження, спробуй ще раз."
	challengeText    = "(Тут пізніше зробимо майстер створення челенджу)"
	dailyPlanText    = "(Тут пізніше підключимо план на день)"
	chooseActionText = "Вибери дію з меню 👇"
)

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}
	log.Printf("incoming message from %d (@%s): %q", msg.From.ID, msg.From.UserName, msg.Text)

	cmd := decodeCommand(msg)
	switch cmd.kind {
	case cmdStart:
		b.sendWithMenu(msg.Chat.ID, startText)
	case cmdAsk:
		b.handleAsk(ctx, msg.Chat.ID, msg.From.ID, cmd.arg)
	case cmdAddGoal:
		b.handleAddGoal(msg.Chat.ID, msg.From.ID, cmd.arg)
	case cmdListGoals:
		b.handleListGoals(msg.Chat.ID, msg.From.ID)
	case cmdDone:
		b.handleDone(msg.Chat.ID, msg.From.ID, cmd.arg)
	case cmdDelete:
		b.handleDelete(msg.Chat.ID, msg.From.ID, cmd.arg)
	case cmdAskHint:
		b.sendMarkdown(msg.Chat.ID, askButtonText)
	case cmdChallenge:
		b.sendMessage(msg.Chat.ID, challengeText)
	case cmdDailyPlan:
		b.sendMessage(msg.Chat.ID, dailyPlanText)
	default:
		b.sendWithMenu(msg.Chat.ID, chooseActionText)
	}
}

func (b *Bot) handleAsk(ctx context.Context, chatID, userID int64, question string) {
	if question == "" {
		b.sendMarkdown(chatID, askUsageText)
		return
	}
	b.sendMessage(chatID, thinkingText)
	answer := b.assistant.Ask(ctx, userID, question)
	b.sendMessage(chatID, answer)
}

func (b *Bot) handleAddGoal(chatID, userID int64, text string) {
	if text == "" {
		b.sendMarkdown(chatID, addGoalUsageText)
		return
	}
	id, err := b.goals.Create(userID, text)
	if err != nil {
		log.Printf("failed to create goal for user %d: %v", userID, err)
		b.sendMessage(chatID, storageErrText)
		return
	}
	b.sendMessage(chatID, fmt.Sprintf("✅ Ціль додано (ID: %d)", id))
}

func (b *Bot) handleListGoals(chatID, userID int64) {
	list, err := b.goals.ByOwner(userID)
	if err != nil {
		log.Printf("failed to list goals for user %d: %v", userID, err)
		b.sendMessage(chatID, storageErrText)
		return
	}
	if len(list) == 0 {
		b.sendMarkdown(chatID, noGoalsText)
		return
	}
	lines := make([]string, 0, len(list))
	for _, g := range list {
		status := "⏳"
		if g.IsDone {
			status = "✅"
		}
		lines = append(lines, fmt.Sprintf("%s *%d*. %s", status, g.ID, g.Text))
	}
	b.sendMarkdown(chatID, strings.Join(lines, "\n"))
}

func (b *Bot) handleDone(chatID, userID int64, arg string) {
	id, ok := parseGoalID(arg)
	if !ok {
		b.sendMarkdown(chatID, doneUsageText)
		return
	}
	affected, err := b.goals.MarkDone(userID, id)
	if err != nil {
		log.Printf("failed to mark goal %d done for user %d: %v", id, userID, err)
		b.sendMessage(chatID, storageErrText)
		return
	}
	if affected == 0 {
		b.sendMessage(chatID, notFoundText)
		return
	}
	b.sendMessage(chatID, "✅ Готово!")
}

func (b *Bot) handleDelete(chatID, userID int64, arg string) {
	id, ok := parseGoalID(arg)
	if !ok {
		b.sendMarkdown(chatID, delUsageText)
		return
	}
	affected, err := b.goals.Delete(userID, id)
	if err != nil {
		log.Printf("failed to delete goal %d for user %d: %v", id, userID, err)
		b.sendMessage(chatID, storageErrText)
		return
	}
	if affected == 0 {
		b.sendMessage(chatID, notFoundText)
		return
	}
	b.sendMessage(chatID, "🗑 Видалено.")
}
