// Package parser turns raw command text into commands.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pablasso/watodo/internal/command"
	"github.com/pablasso/watodo/internal/task"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidFormat  = errors.New("invalid command format")
)

// Command words
const (
	WordAdd    = "add"
	WordDelete = "delete"
	WordEdit   = "edit"
	WordDone   = "done"
	WordUndone = "undone"
	WordClear  = "clear"
	WordList   = "list"
	WordFind   = "find"
	WordHelp   = "help"
	WordUndo   = "undo"
)

var usages = map[string]string{
	WordAdd:    "add <description> [from <time> to <time> | by <time>] [#tag ...]",
	WordDelete: "delete <index>",
	WordEdit:   "edit <index> [<description>] [from <time> to <time> | by <time> | floating] [#tag ...] [-#tag ...]",
	WordDone:   "done <index>",
	WordUndone: "undone <index>",
	WordList:   "list [all|done|undone]",
	WordFind:   "find <keyword ...>",
}

// Parser parses command text. Times without a zone are read in Location.
type Parser struct {
	Location *time.Location
	Now      func() time.Time
}

// New returns a parser using local time.
func New() *Parser {
	return &Parser{Location: time.Local, Now: time.Now}
}

// Parse returns the command described by input. Failures are *command.Error
// values wrapping ErrUnknownCommand or ErrInvalidFormat.
func (p *Parser) Parse(input string) (command.Command, error) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return nil, command.NewError("Enter a command. Type 'help' to see them all.", ErrInvalidFormat)
	}
	word := strings.ToLower(fields[0])
	args := fields[1:]

	switch word {
	case WordAdd:
		return p.parseAdd(args)
	case WordDelete:
		index, err := parseSingleIndex(word, args)
		if err != nil {
			return nil, err
		}
		return command.NewDelete(index), nil
	case WordEdit:
		return p.parseEdit(args)
	case WordDone, WordUndone:
		index, err := parseSingleIndex(word, args)
		if err != nil {
			return nil, err
		}
		return command.NewMark(index, word == WordDone), nil
	case WordClear:
		return command.NewClear(), nil
	case WordList:
		return parseList(args)
	case WordFind:
		if len(args) == 0 {
			return nil, invalidFormat(word)
		}
		return command.NewFind(args), nil
	case WordHelp:
		return command.Help{}, nil
	case WordUndo:
		return &command.Undo{}, nil
	default:
		return nil, command.NewError(
			fmt.Sprintf("Unknown command %q. Type 'help' to see them all.", fields[0]),
			fmt.Errorf("%w: %s", ErrUnknownCommand, fields[0]),
		)
	}
}

func (p *Parser) parseAdd(args []string) (command.Command, error) {
	words, tags, removed := splitTags(args)
	if len(removed) > 0 {
		return nil, invalidFormat(WordAdd)
	}
	desc, bounds, err := p.splitBounds(words)
	if err != nil {
		return nil, err
	}
	if len(desc) == 0 {
		return nil, invalidFormat(WordAdd)
	}

	var start, end *time.Time
	if bounds != nil {
		start, end = bounds.Start, bounds.End
	}
	t, err := task.New(strings.Join(desc, " "), start, end, tags)
	if err != nil {
		return nil, command.NewError(err.Error(), err)
	}
	return command.NewAdd(t), nil
}

func (p *Parser) parseEdit(args []string) (command.Command, error) {
	if len(args) < 2 {
		return nil, invalidFormat(WordEdit)
	}
	index, err := parseIndex(WordEdit, args[0])
	if err != nil {
		return nil, err
	}

	words, tags, removed := splitTags(args[1:])
	var changes command.EditDescriptor
	if n := len(words); n > 0 && strings.EqualFold(words[n-1], "floating") {
		changes.Bounds = &command.Bounds{}
		words = words[:n-1]
	} else {
		var bounds *command.Bounds
		words, bounds, err = p.splitBounds(words)
		if err != nil {
			return nil, err
		}
		changes.Bounds = bounds
	}
	if len(words) > 0 {
		desc := strings.Join(words, " ")
		changes.Description = &desc
	}
	changes.AddTags = tags
	changes.RemoveTags = removed

	if changes.IsEmpty() {
		return nil, invalidFormat(WordEdit)
	}
	return command.NewEdit(index, changes), nil
}

func parseList(args []string) (command.Command, error) {
	if len(args) == 0 {
		return command.NewList(command.ScopeAll), nil
	}
	if len(args) > 1 {
		return nil, invalidFormat(WordList)
	}
	scope := command.Scope(strings.ToLower(args[0]))
	switch scope {
	case command.ScopeAll, command.ScopeDone, command.ScopeUndone:
		return command.NewList(scope), nil
	default:
		return nil, invalidFormat(WordList)
	}
}

// splitTags separates "#tag" and "-#tag" tokens from the other words.
func splitTags(args []string) (words, add, remove []string) {
	for _, a := range args {
		switch {
		case strings.HasPrefix(a, "-#") && len(a) > 2:
			remove = append(remove, a[2:])
		case strings.HasPrefix(a, "#") && len(a) > 1:
			add = append(add, a[1:])
		default:
			words = append(words, a)
		}
	}
	return words, add, remove
}

// splitBounds strips a trailing "from <time> to <time>" or "by <time>"
// clause. Words that do not form a complete clause stay in the description.
func (p *Parser) splitBounds(words []string) ([]string, *command.Bounds, error) {
	for i := len(words) - 1; i >= 0; i-- {
		switch strings.ToLower(words[i]) {
		case "by":
			end, ok := p.parseTime(words[i+1:])
			if !ok {
				continue
			}
			return words[:i], &command.Bounds{End: &end}, nil
		case "to":
			end, ok := p.parseTime(words[i+1:])
			if !ok {
				continue
			}
			for j := i - 1; j >= 0; j-- {
				if !strings.EqualFold(words[j], "from") {
					continue
				}
				start, ok := p.parseTime(words[j+1 : i])
				if !ok {
					continue
				}
				if start.After(end) {
					return nil, nil, command.NewError("The start time must not be after the end time.", task.ErrInvalidTask)
				}
				return words[:j], &command.Bounds{Start: &start, End: &end}, nil
			}
		}
	}
	return words, nil, nil
}

var timeLayouts = []string{"2006-01-02 15:04", "2006-01-02T15:04", "2006-01-02"}

// parseTime reads the whole token slice as one point in time.
func (p *Parser) parseTime(tokens []string) (time.Time, bool) {
	if len(tokens) == 0 || len(tokens) > 2 {
		return time.Time{}, false
	}
	loc := p.Location
	if loc == nil {
		loc = time.Local
	}

	var day time.Time
	switch strings.ToLower(tokens[0]) {
	case "today", "tomorrow":
		now := time.Now
		if p.Now != nil {
			now = p.Now
		}
		n := now().In(loc)
		day = time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, loc)
		if strings.EqualFold(tokens[0], "tomorrow") {
			day = day.AddDate(0, 0, 1)
		}
		if len(tokens) == 1 {
			return day, true
		}
		clock, err := time.ParseInLocation("15:04", tokens[1], loc)
		if err != nil {
			return time.Time{}, false
		}
		return day.Add(time.Duration(clock.Hour())*time.Hour + time.Duration(clock.Minute())*time.Minute), true
	}

	text := strings.Join(tokens, " ")
	for _, layout := range timeLayouts {
		if t, err := time.ParseInLocation(layout, text, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseSingleIndex(word string, args []string) (int, error) {
	if len(args) != 1 {
		return 0, invalidFormat(word)
	}
	return parseIndex(word, args[0])
}

func parseIndex(word, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, invalidFormat(word)
	}
	return n, nil
}

func invalidFormat(word string) error {
	return command.NewError(
		fmt.Sprintf("Invalid command format! Usage: %s", usages[word]),
		fmt.Errorf("%w: %s", ErrInvalidFormat, word),
	)
}
