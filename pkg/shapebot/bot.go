package shapebot

import (
	"log"
	"sync/atomic"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	cron "github.com/robfig/cron/v3"
)

type Config struct {
	Token string
	// Location is where the daily stats roll over.
	Location *time.Location
	Debug    bool
}

// sender is the part of *tgbotapi.BotAPI the handlers use.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Bot struct {
	config     Config
	api        sender
	selections *selections

	shapesDrawnToday uint64
	usersJoinedToday uint64
}

func New(config Config) *Bot {
	if config.Location == nil {
		config.Location = time.UTC
	}
	return &Bot{
		config:     config,
		selections: newSelections(),
	}
}

func (bot *Bot) Run() error {
	api, err := tgbotapi.NewBotAPI(bot.config.Token)
	if err != nil {
		return err
	}
	api.Debug = bot.config.Debug
	bot.api = api

	log.Printf("Authorized on account %s.\n", api.Self.UserName)

	c := cron.New(cron.WithLocation(bot.config.Location))
	if _, err := c.AddFunc("@daily", bot.resetDailyStats); err != nil {
		return err
	}
	c.Start()
	defer c.Stop()

	log.Println("Bot started.")

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := api.GetUpdatesChan(updateConfig)

	for update := range updates {
		go bot.handleUpdate(update)
	}
	return nil
}

func (bot *Bot) resetDailyStats() {
	atomic.SwapUint64(&bot.shapesDrawnToday, 0)
	atomic.SwapUint64(&bot.usersJoinedToday, 0)
}

func (bot *Bot) handleUpdate(update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Recovered while handling update %d: %v\n", update.UpdateID, r)
		}
	}()

	switch {
	case update.Message != nil:
		bot.handleMessage(update.Message)
	case update.CallbackQuery != nil:
		bot.handleCallbackQuery(update.CallbackQuery)
	case update.InlineQuery != nil:
		bot.handleInlineQuery(update.InlineQuery)
	}
}

func (bot *Bot) send(c tgbotapi.Chattable) {
	if _, err := bot.api.Send(c); err != nil {
		log.Printf("Sending failed: %v\n", err)
	}
}

func (bot *Bot) request(c tgbotapi.Chattable) {
	if _, err := bot.api.Request(c); err != nil {
		log.Printf("Request failed: %v\n", err)
	}
}
