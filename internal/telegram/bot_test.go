package telegram

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"unityplan-bot/internal/db"
	"unityplan-bot/internal/goals"
)

type fakeSender struct{ sent []string }

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	sw := c.(tgbotapi.MessageConfig)
	f.sent = append(f.sent, sw.Text)
	return tgbotapi.Message{}, nil
}

type fakeAsker struct {
	answer string
	calls  int
}

func (f *fakeAsker) Ask(ctx context.Context, userID int64, prompt string) string {
	f.calls++
	return f.answer
}

func newTestBot(t *testing.T) (*Bot, *fakeSender, *fakeAsker) {
	t.Helper()
	conn, err := sqlx.Connect("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	if err := db.RunMigrations(conn.DB); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	fs := &fakeSender{}
	fa := &fakeAsker{answer: "відповідь AI"}
	b := &Bot{s: fs, goals: goals.NewRepository(conn), assistant: fa}
	return b, fs, fa
}

func message(userID, chatID int64, text string) *tgbotapi.Message {
	msg := commandMessage(text)
	msg.From.ID = userID
	msg.Chat.ID = chatID
	return msg
}

func TestStartSendsHelp(t *testing.T) {
	b, fs, _ := newTestBot(t)
	b.handleMessage(context.Background(), message(1, 1, "/start"))
	if len(fs.sent) != 1 || !strings.Contains(fs.sent[0], "/addgoal") {
		t.Fatalf("help not sent: %+v", fs.sent)
	}
}

func TestAskEmptyArgument_NoRemoteCall(t *testing.T) {
	b, fs, fa := newTestBot(t)
	b.handleMessage(context.Background(), message(1, 1, "/ask   "))
	if fa.calls != 0 {
		t.Fatalf("remote call made on empty argument")
	}
	if len(fs.sent) != 1 || !strings.Contains(fs.sent[0], "/ask") {
		t.Fatalf("usage hint not sent: %+v", fs.sent)
	}
}

func TestAskSendsThinkingThenAnswer(t *testing.T) {
	b, fs, fa := newTestBot(t)
	b.handleMessage(context.Background(), message(1, 1, "/ask як спланувати день"))
	if fa.calls != 1 {
		t.Fatalf("expected 1 remote call, got %d", fa.calls)
	}
	if len(fs.sent) != 2 {
		t.Fatalf("expected thinking notice + answer, got %+v", fs.sent)
	}
	if fs.sent[0] != thinkingText || fs.sent[1] != "відповідь AI" {
		t.Fatalf("unexpected replies: %+v", fs.sent)
	}
}

func TestDoneNonNumeric_NoStoreMutation(t *testing.T) {
	b, fs, _ := newTestBot(t)
	id, err := b.goals.Create(1, "ціль")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	b.handleMessage(context.Background(), message(1, 1, "/done abc"))
	if len(fs.sent) != 1 || !strings.Contains(fs.sent[0], "/done 12") {
		t.Fatalf("usage hint not sent: %+v", fs.sent)
	}

	list, err := b.goals.ByOwner(1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != id || list[0].IsDone {
		t.Fatalf("store mutated by invalid input: %+v", list)
	}
}

func TestUnknownTextSendsMenu(t *testing.T) {
	b, fs, _ := newTestBot(t)
	b.handleMessage(context.Background(), message(1, 1, "щось незрозуміле"))
	if len(fs.sent) != 1 || fs.sent[0] != chooseActionText {
		t.Fatalf("default reply not sent: %+v", fs.sent)
	}
}

func TestMyGoalsButtonDelegatesToList(t *testing.T) {
	b, fs, _ := newTestBot(t)
	if _, err := b.goals.Create(5, "бігати вранці"); err != nil {
		t.Fatalf("create: %v", err)
	}
	b.handleMessage(context.Background(), message(5, 5, buttonMyGoals))
	if len(fs.sent) != 1 || !strings.Contains(fs.sent[0], "бігати вранці") {
		t.Fatalf("goal list not sent: %+v", fs.sent)
	}
}

func TestGoalLifecycleScenario(t *testing.T) {
	b, fs, _ := newTestBot(t)
	ctx := context.Background()
	const userID, chatID = int64(10), int64(10)

	// add
	b.handleMessage(ctx, message(userID, chatID, "/addgoal Buy milk"))
	if len(fs.sent) != 1 || !strings.Contains(fs.sent[0], "✅ Ціль додано") {
		t.Fatalf("add confirmation missing: %+v", fs.sent)
	}
	list, err := b.goals.ByOwner(userID)
	if err != nil || len(list) != 1 {
		t.Fatalf("goal not stored: %v %+v", err, list)
	}
	id := list[0].ID
	if !strings.Contains(fs.sent[0], fmt.Sprintf("ID: %d", id)) {
		t.Fatalf("new id not in reply: %q", fs.sent[0])
	}

	// list shows pending
	fs.sent = nil
	b.handleMessage(ctx, message(userID, chatID, "/goals"))
	if len(fs.sent) != 1 || !strings.Contains(fs.sent[0], fmt.Sprintf("⏳ *%d*. Buy milk", id)) {
		t.Fatalf("pending line missing: %+v", fs.sent)
	}

	// done
	fs.sent = nil
	b.handleMessage(ctx, message(userID, chatID, fmt.Sprintf("/done %d", id)))
	if len(fs.sent) != 1 || fs.sent[0] != "✅ Готово!" {
		t.Fatalf("done confirmation missing: %+v", fs.sent)
	}

	// list shows done
	fs.sent = nil
	b.handleMessage(ctx, message(userID, chatID, "/goals"))
	if len(fs.sent) != 1 || !strings.Contains(fs.sent[0], fmt.Sprintf("✅ *%d*. Buy milk", id)) {
		t.Fatalf("done line missing: %+v", fs.sent)
	}

	// delete
	fs.sent = nil
	b.handleMessage(ctx, message(userID, chatID, fmt.Sprintf("/del %d", id)))
	if len(fs.sent) != 1 || fs.sent[0] != "🗑 Видалено." {
		t.Fatalf("delete confirmation missing: %+v", fs.sent)
	}

	fs.sent = nil
	b.handleMessage(ctx, message(userID, chatID, "/goals"))
	if len(fs.sent) != 1 || fs.sent[0] != noGoalsText {
		t.Fatalf("goal still listed after delete: %+v", fs.sent)
	}
}

func TestDoneForeignGoalReportsNotFound(t *testing.T) {
	b, fs, _ := newTestBot(t)
	id, err := b.goals.Create(1, "чужа ціль")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	b.handleMessage(context.Background(), message(2, 2, fmt.Sprintf("/done %d", id)))
	if len(fs.sent) != 1 || fs.sent[0] != notFoundText {
		t.Fatalf("expected neutral not-found reply: %+v", fs.sent)
	}
}
