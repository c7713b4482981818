package shapebot

import (
	"strings"

	"github.com/ArminGh02/coordset/pkg/util"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
)

// maxInlineTextLength stays under Telegram's limit for a message text.
const maxInlineTextLength = 4000

func (bot *Bot) handleInlineQuery(inlineQuery *tgbotapi.InlineQuery) {
	results := []interface{}{}
	if article, ok := inlineArticle(inlineQuery.Query); ok {
		results = append(results, article)
	}

	bot.request(tgbotapi.InlineConfig{
		InlineQueryID: inlineQuery.ID,
		Results:       results,
		CacheTime:     0,
		IsPersonal:    true,
	})
}

// inlineArticle answers queries like "circle 0 0 3" with the identifiers of
// the shape. Only plain shape names are accepted.
func inlineArticle(query string) (tgbotapi.InlineQueryResultArticle, bool) {
	name, args, _ := strings.Cut(strings.TrimSpace(query), " ")
	if _, ok := shapes[name]; !ok {
		return tgbotapi.InlineQueryResultArticle{}, false
	}

	cmd, err := parseCommand(name, args)
	if err != nil {
		return tgbotapi.InlineQueryResultArticle{}, false
	}
	sel, err := cmd.apply(nil)
	if err != nil {
		return tgbotapi.InlineQueryResultArticle{}, false
	}

	article := tgbotapi.NewInlineQueryResultArticle(
		uuid.NewString(),
		strings.ToUpper(cmd.label[:1])+cmd.label[1:],
		util.Truncate(listIDs(sel, maxListedIDs), maxInlineTextLength),
	)
	article.Description = describe(sel)
	return article, true
}
