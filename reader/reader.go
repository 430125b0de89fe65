package reader

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/dball/cons/list"
	"github.com/dball/cons/types"
)

var tokenRegexp = regexp.MustCompile(`[\s,]*([()]|"(?:\\.|[^\\"])*"?|;.*|[^\s(),;"]*)`)

var integerRegexp = regexp.MustCompile(`^-?\d+$`)

// Reader reads tokens
type Reader struct {
	tokens []string
	offset int
}

// Error is a reader error
type Error struct {
	Message string
	Err     error
}

func (err Error) Unwrap() error { return err.Err }

func (err Error) String() string {
	if err.Err == nil {
		return fmt.Sprintf("reader error: %v", err.Message)
	}
	return fmt.Sprintf("reader error: %v: %v", err.Message, err.Err)
}

func (err Error) Error() string {
	return err.String()
}

func (reader *Reader) peek() *string {
	if reader.offset == len(reader.tokens) {
		return nil
	}
	return &reader.tokens[reader.offset]
}

func (reader *Reader) next() *string {
	token := reader.peek()
	if token != nil {
		reader.offset++
	}
	return token
}

func (reader *Reader) skipComments() {
	for token := reader.peek(); token != nil && (*token)[0] == ';'; token = reader.peek() {
		reader.next()
	}
}

func tokenize(s string) []string {
	matches := tokenRegexp.FindAllStringSubmatch(s, -1)
	tokens := make([]string, 0, len(matches))
	for _, match := range matches {
		if match[1] != "" {
			tokens = append(tokens, match[1])
		}
	}
	return tokens
}

// ReadStr reads the first form of a string
func ReadStr(s string) (types.Value, error) {
	return readForm(&Reader{tokens: tokenize(s)})
}

// ReadAll reads every form of a string
func ReadAll(s string) ([]types.Value, error) {
	reader := &Reader{tokens: tokenize(s)}
	var forms []types.Value
	for {
		reader.skipComments()
		if reader.peek() == nil {
			return forms, nil
		}
		form, err := readForm(reader)
		if err != nil {
			return forms, err
		}
		forms = append(forms, form)
	}
}

func readForm(reader *Reader) (types.Value, error) {
	reader.skipComments()
	token := reader.peek()
	if token == nil {
		return nil, Error{"Unexpected end of input reading form", nil}
	}
	switch *token {
	case "(":
		reader.next()
		return readList(reader)
	case ")":
		return nil, Error{"Unexpected )", nil}
	default:
		return readAtom(reader)
	}
}

func readList(reader *Reader) (types.Value, error) {
	var items []types.Value
	for {
		reader.skipComments()
		token := reader.peek()
		if token == nil {
			return nil, Error{"Unexpected end of input reading list", nil}
		}
		if *token == ")" {
			reader.next()
			return list.Of(items...), nil
		}
		value, err := readForm(reader)
		if err != nil {
			return nil, Error{"Error reading list", err}
		}
		items = append(items, value)
	}
}

func readAtom(reader *Reader) (types.Value, error) {
	token := *reader.next()
	if integerRegexp.MatchString(token) {
		value, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return nil, Error{"Unparseable integer", err}
		}
		return types.Integer(value), nil
	}
	runes := []rune(token)
	switch runes[0] {
	case '"':
		return parseString(runes)
	default:
		switch token {
		case "true":
			return types.Boolean(true), nil
		case "false":
			return types.Boolean(false), nil
		default:
			return types.NewSymbol(token), nil
		}
	}
}

func parseString(runes []rune) (types.Value, error) {
	last := len(runes) - 1
	if last == 0 || runes[last] != '"' {
		return nil, Error{"String quotes are unbalanced", nil}
	}
	var result []rune
	var escaping bool
	for _, r := range runes[1:last] {
		if !escaping {
			if r == '\\' {
				escaping = true
			} else {
				result = append(result, r)
			}
		} else {
			switch r {
			case '\\':
				result = append(result, r)
			case '"':
				result = append(result, r)
			case 'n':
				result = append(result, '\n')
			default:
				return nil, Error{"String escape sequence is invalid", nil}
			}
			escaping = false
		}
	}
	if escaping {
		return nil, Error{"String slashes are unbalanced", nil}
	}
	return types.String(string(result)), nil
}
