package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Go       func(GoArgs) (Result, error)
	Theme    func() (Result, error)
	Generate func(GenerateArgs) (Result, error)
	Upload   func() (Result, error)
	Retry    func() (Result, error)
	Dismiss  func() (Result, error)
	Cancel   func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeGo:
		if handlers.Go == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Go(*cmd.Go)
	case TypeGenerate:
		if handlers.Generate == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Generate(*cmd.Generate)
	case TypeTheme:
		return call(cmd.Type, handlers.Theme)
	case TypeUpload:
		return call(cmd.Type, handlers.Upload)
	case TypeRetry:
		return call(cmd.Type, handlers.Retry)
	case TypeDismiss:
		return call(cmd.Type, handlers.Dismiss)
	case TypeCancel:
		return call(cmd.Type, handlers.Cancel)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func call(t Type, fn func() (Result, error)) (Result, error) {
	if fn == nil {
		return Result{}, missing(t)
	}
	return fn()
}

func missing(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}
