package shapebot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ArminGh02/coordset/pkg/collection"
	"github.com/ArminGh02/coordset/pkg/util/coord"
	"github.com/pkg/errors"
)

// maxOffset caps shape sizes requested through the bot.
const maxOffset = 100

var (
	errUnknownCommand = errors.New("unknown command")
	errBadArguments   = errors.New("bad arguments")
)

type commandKind int

const (
	editCommand commandKind = iota
	showCommand
	idsCommand
	undoCommand
	clearCommand
	statsCommand
	startCommand
	helpCommand
)

type action int

const (
	replace action = iota
	union
	difference
)

type command struct {
	kind   commandKind
	action action
	src    collection.Source
	// describes src in replies
	label string
}

type shape struct {
	name  string
	arity int
	usage string
	build func(origin coord.Coord, args []int) *collection.Collection
}

var shapes = map[string]shape{
	"rect": {
		name:  "rectangle",
		arity: 4,
		usage: "x y offsetX offsetY",
		build: func(origin coord.Coord, args []int) *collection.Collection {
			return collection.Rectangle(origin, args[0], args[1])
		},
	},
	"circle": {
		name:  "circle",
		arity: 3,
		usage: "x y radius",
		build: func(origin coord.Coord, args []int) *collection.Collection {
			return collection.Circle(origin, args[0])
		},
	},
	"disc": {
		name:  "disc",
		arity: 3,
		usage: "x y radius",
		build: func(origin coord.Coord, args []int) *collection.Collection {
			return collection.Disc(origin, args[0])
		},
	},
}

// parseCommand turns a command name (without the slash) and its argument
// string into a command.
func parseCommand(name, args string) (command, error) {
	fields := strings.Fields(args)

	switch name {
	case "start":
		return command{kind: startCommand}, nil
	case "help":
		return command{kind: helpCommand}, nil
	case "show":
		return command{kind: showCommand}, nil
	case "ids":
		return command{kind: idsCommand}, nil
	case "undo":
		return command{kind: undoCommand}, nil
	case "clear":
		return command{kind: clearCommand}, nil
	case "stats":
		return command{kind: statsCommand}, nil
	case "add", "minus":
		if len(fields) == 0 {
			return command{}, errors.Wrapf(errBadArguments, "usage: /%s x:y ...", name)
		}
		src, err := collection.New(collection.Strings(fields))
		if err != nil {
			return command{}, err
		}
		return command{
			kind:   editCommand,
			action: actionOf(name),
			src:    src,
			label:  fmt.Sprintf("%d cell(s)", src.Len()),
		}, nil
	}

	prefix := ""
	for _, p := range []string{"add", "minus"} {
		if strings.HasPrefix(name, p) {
			prefix = p
			break
		}
	}
	s, ok := shapes[strings.TrimPrefix(name, prefix)]
	if !ok {
		return command{}, errors.Wrapf(errUnknownCommand, "/%s", name)
	}

	origin, ints, err := parseShapeArgs(fields, s.arity)
	if err != nil {
		return command{}, errors.Wrapf(err, "usage: /%s %s", name, s.usage)
	}
	return command{
		kind:   editCommand,
		action: actionOf(prefix),
		src:    s.build(origin, ints),
		label:  fmt.Sprintf("%s at %s", s.name, origin.ID()),
	}, nil
}

func actionOf(name string) action {
	switch name {
	case "add":
		return union
	case "minus":
		return difference
	default:
		return replace
	}
}

func parseShapeArgs(fields []string, arity int) (coord.Coord, []int, error) {
	if len(fields) != arity {
		return coord.Coord{}, nil, errors.Wrapf(errBadArguments, "want %d numbers, got %d", arity, len(fields))
	}

	ints := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return coord.Coord{}, nil, errors.Wrapf(errBadArguments, "%q is not an integer", f)
		}
		ints[i] = n
	}
	for _, n := range ints[2:] {
		if n > maxOffset || n < -maxOffset {
			return coord.Coord{}, nil, errors.Wrapf(errBadArguments, "size %d is larger than %d", n, maxOffset)
		}
	}
	return coord.New(ints[0], ints[1]), ints[2:], nil
}

// apply runs an edit command on the user's selection.
func (cmd command) apply(cur *collection.Collection) (*collection.Collection, error) {
	switch cmd.action {
	case union:
		return cur.Add(cmd.src)
	case difference:
		return cur.Minus(cmd.src)
	default:
		return collection.New(cmd.src)
	}
}
