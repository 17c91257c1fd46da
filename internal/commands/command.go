package commands

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/scheduleai/internal/router"
)

type Type string

const (
	TypeGo       Type = "go"
	TypeTheme    Type = "theme"
	TypeGenerate Type = "generate"
	TypeUpload   Type = "upload"
	TypeRetry    Type = "retry"
	TypeDismiss  Type = "dismiss"
	TypeCancel   Type = "cancel"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type GoArgs struct {
	Path string
}

type GenerateArgs struct {
	Prompt string
}

type Command struct {
	Type     Type
	Raw      string
	Go       *GoArgs
	Generate *GenerateArgs
}

var aliases = map[string]Type{
	"nav":    TypeGo,
	"open":   TypeGo,
	"toggle": TypeTheme,
	"gen":    TypeGenerate,
	"ack":    TypeDismiss,
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]
	kind := Type(head)
	if alias, ok := aliases[head]; ok {
		kind = alias
	}

	switch kind {
	case TypeGo:
		return parseGo(input, args)
	case TypeGenerate:
		return parseGenerate(input, raw, parts[0])
	case TypeTheme, TypeUpload, TypeRetry, TypeDismiss, TypeCancel:
		if len(args) > 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s takes no arguments", kind)}
		}
		return Command{Type: kind, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseGo(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "go requires exactly one path"}
	}
	target := args[0]
	if strings.EqualFold(target, "home") {
		target = router.PathHome
	}
	return Command{Type: TypeGo, Raw: raw, Go: &GoArgs{Path: router.Normalize(target)}}, nil
}

// parseGenerate keeps the prompt's inner whitespace; only the command word
// is removed.
func parseGenerate(raw, body, head string) (Command, error) {
	prompt := strings.TrimSpace(strings.TrimPrefix(body, head))
	if prompt == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "generate requires a prompt"}
	}
	return Command{Type: TypeGenerate, Raw: raw, Generate: &GenerateArgs{Prompt: prompt}}, nil
}
