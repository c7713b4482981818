package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/ArminGh02/coordset/pkg/logging"
	"github.com/ArminGh02/coordset/pkg/shapebot"
)

func main() {
	token := os.Getenv("SHAPEBOT_TOKEN")
	if token == "" {
		log.Fatalln("SHAPEBOT_TOKEN environment variable is not set.")
	}

	timezone := os.Getenv("SHAPEBOT_TIMEZONE")
	if timezone == "" {
		timezone = "UTC"
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		log.Fatalln(err)
	}

	debug := false
	if s := os.Getenv("SHAPEBOT_DEBUG"); s != "" {
		debug, err = strconv.ParseBool(s)
		if err != nil {
			log.Fatalf("SHAPEBOT_DEBUG: %v\n", err)
		}
	}

	logging.Install(logging.New(loc, os.Stdout))

	bot := shapebot.New(shapebot.Config{
		Token:    token,
		Location: loc,
		Debug:    debug,
	})
	if err := bot.Run(); err != nil {
		log.Fatalln(err)
	}
}
