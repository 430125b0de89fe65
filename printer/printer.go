package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/benbjohnson/immutable"
	"github.com/dball/cons/list"
	"github.com/dball/cons/types"
)

// Config controls printing behavior
type Config struct {
	Readably bool
	// MaxSeqLength caps the items printed per list; 0 prints all of them
	MaxSeqLength int
}

// PrintStr prints values
func PrintStr(config Config, value types.Value) string {
	switch v := value.(type) {
	case types.Integer:
		return strconv.FormatInt(int64(v), 10)
	case types.Symbol:
		return v.Name
	case list.List[types.Value]:
		return printSeq(config, v)
	case *immutable.List:
		seq, err := list.FromImmutable[types.Value](v)
		if err != nil {
			return PrintStr(config, err)
		}
		return printSeq(config, seq)
	case types.String:
		return printString(config, v)
	case string:
		return printString(config, types.String(v))
	case types.Function:
		return "#FN:" + v.Name
	case types.Boolean:
		if v {
			return "true"
		}
		return "false"
	case nil:
		return "nil"
	case error:
		return printString(config, types.String(v.Error()))
	default:
		return fmt.Sprintf("%v", value)
	}
}

// PrintList prints a list of any element type
func PrintList[T any](config Config, l list.List[T]) string {
	return printSeq(config, list.Map(func(x T) types.Value { return x }, l))
}

func printSeq(config Config, seq list.List[types.Value]) string {
	var sb strings.Builder
	sb.WriteRune('(')
	i := 0
	for {
		empty, head, tail := seq.Next()
		if empty {
			break
		}
		if config.MaxSeqLength > 0 && i == config.MaxSeqLength {
			sb.WriteString(" ...")
			break
		}
		if i > 0 {
			sb.WriteRune(' ')
		}
		i++
		sb.WriteString(PrintStr(config, head))
		seq = tail
	}
	sb.WriteRune(')')
	return sb.String()
}

// When Readably is true, doublequotes, newlines, and backslashes are translated into their printed representations (the reverse of the reader)
func printString(config Config, s types.String) string {
	if !config.Readably {
		return string(s)
	}
	var sb strings.Builder
	sb.WriteRune('"')
	for _, r := range string(s) {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteRune('"')
	return sb.String()
}
