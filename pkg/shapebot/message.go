package shapebot

import (
	"fmt"
	"log"
	"sync/atomic"

	"github.com/ArminGh02/coordset/pkg/util"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
)

func (bot *Bot) handleMessage(message *tgbotapi.Message) {
	if message.From == nil {
		return
	}

	if message.IsCommand() {
		bot.handleCommand(message, message.Command(), message.CommandArguments())
		return
	}

	switch message.Text {
	case showButtonText:
		bot.handleCommand(message, "show", "")
	case idsButtonText:
		bot.handleCommand(message, "ids", "")
	case undoButtonText:
		bot.handleCommand(message, "undo", "")
	case clearButtonText:
		bot.handleCommand(message, "clear", "")
	case helpButtonText:
		bot.handleCommand(message, "help", "")
	default:
		bot.send(tgbotapi.NewMessage(message.Chat.ID, "Send /help to see what I can do."))
	}
}

func (bot *Bot) handleCommand(message *tgbotapi.Message, name, args string) {
	chatID := message.Chat.ID
	user := message.From

	cmd, err := parseCommand(name, args)
	if err != nil {
		bot.send(tgbotapi.NewMessage(chatID, err.Error()))
		return
	}

	switch cmd.kind {
	case startCommand:
		bot.handleStartCommand(message)
	case helpCommand:
		msg := tgbotapi.NewMessage(chatID, helpMsg)
		msg.ReplyMarkup = buildMainKeyboard()
		bot.send(msg)
	case statsCommand:
		msgText := fmt.Sprintf("🟦 Shapes drawn today: %d\n"+
			"🟩 Users joined today: %d\n"+
			"🟥 All users: %d",
			atomic.LoadUint64(&bot.shapesDrawnToday),
			atomic.LoadUint64(&bot.usersJoinedToday),
			bot.selections.usersCount(),
		)
		bot.send(tgbotapi.NewMessage(chatID, msgText))
	case showCommand:
		bot.sendSelectionGIF(chatID, user.ID)
	default:
		text, err := bot.execute(user, cmd)
		if err != nil {
			text = err.Error()
		}
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ReplyMarkup = buildSelectionKeyboard()
		bot.send(msg)
	}
}

// execute runs the commands that only touch the user's selection and returns
// the reply text.
func (bot *Bot) execute(user *tgbotapi.User, cmd command) (string, error) {
	switch cmd.kind {
	case editCommand:
		bot.join(user)
		sel, err := bot.selections.update(user.ID, cmd.apply)
		if err != nil {
			return "", err
		}
		atomic.AddUint64(&bot.shapesDrawnToday, 1)
		return fmt.Sprintf("%s %s\n%s", verbOf(cmd.action), cmd.label, describe(sel)), nil
	case idsCommand:
		sel, _ := bot.selections.current(user.ID)
		return listIDs(sel, maxListedIDs), nil
	case undoCommand:
		sel, ok := bot.selections.undo(user.ID)
		if !ok {
			return "Nothing to undo.", nil
		}
		return "Undone.\n" + describe(sel), nil
	case clearCommand:
		bot.join(user)
		return describe(bot.selections.clear(user.ID)), nil
	default:
		return "", errors.Errorf("command %d has no text reply", cmd.kind)
	}
}

func (bot *Bot) handleStartCommand(message *tgbotapi.Message) {
	user := message.From
	bot.join(user)

	msgText := fmt.Sprintf("Hi %s!\n"+
		"I am Shape Bot.\n"+
		"Draw rectangles and circles on an endless grid and combine them.\n\n%s",
		util.FirstNameElseLastName(user), helpMsg)
	msg := tgbotapi.NewMessage(message.Chat.ID, msgText)
	msg.ReplyMarkup = buildMainKeyboard()
	bot.send(msg)

	log.Printf("Bot started by %s (%d).\n", util.FullNameOf(user), user.ID)
}

func (bot *Bot) join(user *tgbotapi.User) {
	if bot.selections.register(user.ID) {
		atomic.AddUint64(&bot.usersJoinedToday, 1)
	}
}

func (bot *Bot) sendSelectionGIF(chatID, userID int64) {
	sel, _ := bot.selections.current(userID)

	gifBytes, err := renderGIF(sel)
	if err != nil {
		bot.send(tgbotapi.NewMessage(chatID, err.Error()))
		return
	}

	animation := tgbotapi.NewAnimation(chatID, tgbotapi.FileBytes{Name: gifFilename, Bytes: gifBytes})
	animation.Caption = describe(sel)
	bot.send(animation)
}

func verbOf(a action) string {
	switch a {
	case union:
		return "Added"
	case difference:
		return "Removed"
	default:
		return "Selected"
	}
}
