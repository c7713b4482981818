package shapebot

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ArminGh02/coordset/pkg/collection"
	"github.com/ArminGh02/coordset/pkg/gifmaker"
	"github.com/ArminGh02/coordset/pkg/util/coord"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func describe(c *collection.Collection) string {
	lo, hi, ok := c.Bounds()
	if !ok {
		return "Selection is empty."
	}
	return fmt.Sprintf("Selection: %d cell(s) within %s..%s.", c.Len(), lo.ID(), hi.ID())
}

// listIDs joins at most limit identifiers of c, noting how many were left out.
func listIDs(c *collection.Collection, limit int) string {
	ids := c.CoordinateIDs()
	if len(ids) == 0 {
		return "Selection is empty."
	}

	n := len(ids)
	if n > limit {
		ids = ids[:limit]
	}

	var sb strings.Builder
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(string(id))
	}
	if n > limit {
		fmt.Fprintf(&sb, "\n… and %d more", n-limit)
	}
	return sb.String()
}

func renderGIF(frames ...*collection.Collection) ([]byte, error) {
	origin := coord.New(0, 0)
	var buf bytes.Buffer
	err := gifmaker.Make(&buf, frames, gifmaker.Options{Margin: 1, Origin: &origin})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildMainKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(showButtonText),
			tgbotapi.NewKeyboardButton(idsButtonText),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(undoButtonText),
			tgbotapi.NewKeyboardButton(clearButtonText),
			tgbotapi.NewKeyboardButton(helpButtonText),
		),
	)
}

func buildSelectionKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(showButtonText, showCallback),
			tgbotapi.NewInlineKeyboardButtonData(idsButtonText, idsCallback),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(undoButtonText, undoCallback),
			tgbotapi.NewInlineKeyboardButtonData(clearButtonText, clearCallback),
		),
	)
}
