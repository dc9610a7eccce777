package telegram

import (
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type commandKind int

const (
	cmdUnknown commandKind = iota
	cmdStart
	cmdAsk
	cmdAddGoal
	cmdListGoals
	cmdDone
	cmdDelete
	cmdAskHint   // "Запитати AI" menu button
	cmdChallenge // "Новий челендж" menu button, placeholder
	cmdDailyPlan // "План на сьогодні" menu button, placeholder
)

// Fixed reply-keyboard labels. Typing one is equivalent to the mapped
// command.
const (
	buttonAskAI     = "🧠 Запитати AI"
	buttonMyGoals   = "🎯 Мої цілі"
	buttonChallenge = "🚀 Новий челендж"
	buttonDailyPlan = "📅 План на сьогодні"
)

type command struct {
	kind commandKind
	arg  string
}

// decodeCommand classifies an inbound message exactly once; handlers then
// match on the kind exhaustively. Surrounding whitespace is trimmed, so an
// all-whitespace argument comes out empty.
func decodeCommand(msg *tgbotapi.Message) command {
	if msg.IsCommand() {
		arg := strings.TrimSpace(msg.CommandArguments())
		switch msg.Command() {
		case "start":
			return command{kind: cmdStart}
		case "ask":
			return command{kind: cmdAsk, arg: arg}
		case "addgoal":
			return command{kind: cmdAddGoal, arg: arg}
		case "goals":
			return command{kind: cmdListGoals}
		case "done":
			return command{kind: cmdDone, arg: arg}
		case "del":
			return command{kind: cmdDelete, arg: arg}
		default:
			return command{kind: cmdUnknown}
		}
	}

	switch msg.Text {
	case buttonAskAI:
		return command{kind: cmdAskHint}
	case buttonMyGoals:
		return command{kind: cmdListGoals}
	case buttonChallenge:
		return command{kind: cmdChallenge}
	case buttonDailyPlan:
		return command{kind: cmdDailyPlan}
	}
	return command{kind: cmdUnknown}
}

// parseGoalID accepts strictly digit-only positive ids. Anything else,
// including a leading minus, is invalid input rather than "not found".
func parseGoalID(arg string) (int64, bool) {
	if arg == "" {
		return 0, false
	}
	for i := 0; i < len(arg); i++ {
		if arg[i] < '0' || arg[i] > '9' {
			return 0, false
		}
	}
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
