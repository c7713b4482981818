package shapebot

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (bot *Bot) handleCallbackQuery(query *tgbotapi.CallbackQuery) {
	user := query.From

	switch query.Data {
	case showCallback:
		bot.sendSelectionGIF(user.ID, user.ID)
		bot.request(tgbotapi.NewCallback(query.ID, ""))
	case idsCallback, undoCallback, clearCallback:
		cmd, err := parseCommand(query.Data, "")
		if err != nil {
			bot.request(tgbotapi.NewCallbackWithAlert(query.ID, err.Error()))
			return
		}
		text, err := bot.execute(user, cmd)
		if err != nil {
			bot.request(tgbotapi.NewCallbackWithAlert(query.ID, err.Error()))
			return
		}
		if query.Data == idsCallback {
			bot.send(tgbotapi.NewMessage(user.ID, text))
			bot.request(tgbotapi.NewCallback(query.ID, ""))
			return
		}
		bot.request(tgbotapi.NewCallback(query.ID, text))
	default:
		bot.request(tgbotapi.NewCallbackWithAlert(query.ID, "This button is too old!"))
	}
}
