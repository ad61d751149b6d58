package shell

import (
	"strings"

	"github.com/coderoom-dev/coderoom/schema"
)

// Command is one parsed terminal input line.
type Command struct {
	Name string
	Args []string
}

// Parse splits an input line on whitespace. Command names are
// case-sensitive.
func Parse(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, schema.ErrEmptyCommand
	}
	return Command{Name: fields[0], Args: fields[1:]}, nil
}

// arg returns the first argument or an empty string.
func (c Command) arg() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[0]
}
