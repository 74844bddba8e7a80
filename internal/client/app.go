package client

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/go-user-keeper/internal/adapter"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/models"
)

type App struct {
	api adapter.UserAPI
	out io.Writer

	logger *logger.Logger
}

func NewApp(api adapter.UserAPI, out io.Writer, logger *logger.Logger) *App {
	return &App{api: api, out: out, logger: logger}
}

// Run executes one command. On [ErrUnknownCommand] and [ErrWrongArguments]
// the usage text is printed as well.
func (a *App) Run(ctx context.Context, args []string) error {
	err := a.run(ctx, args)
	if err != nil {
		a.logger.Debug().Err(err).Strs("args", args).Msg("command failed")
	}
	return err
}

func (a *App) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.println(renderUsage())
		return ErrUnknownCommand
	}

	command, operands := args[0], args[1:]

	switch command {
	case "list":
		return a.list(ctx, operands)
	case "get":
		return a.get(ctx, operands)
	case "create":
		return a.create(ctx, operands)
	case "update":
		return a.update(ctx, operands)
	case "delete":
		return a.delete(ctx, operands)
	case "version":
		return a.version(ctx, operands)
	default:
		a.println(renderUsage())
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func (a *App) list(ctx context.Context, operands []string) error {
	if len(operands) > 2 {
		return a.wrongArguments("list")
	}

	numbers := make([]int, 2)
	for i, operand := range operands {
		n, err := strconv.Atoi(operand)
		if err != nil {
			return a.wrongArguments("list")
		}
		numbers[i] = n
	}

	page, err := a.api.ListUsers(ctx, numbers[0], numbers[1])
	if err != nil {
		return err
	}

	a.println(renderUsers(page))
	return nil
}

func (a *App) get(ctx context.Context, operands []string) error {
	id, err := a.idOperand("get", operands, 1)
	if err != nil {
		return err
	}

	user, err := a.api.GetUser(ctx, id)
	if err != nil {
		return err
	}

	a.println(renderUser(user))
	return nil
}

func (a *App) create(ctx context.Context, operands []string) error {
	if len(operands) != 2 {
		return a.wrongArguments("create")
	}

	user, err := a.api.CreateUser(ctx, models.User{Name: operands[0], Email: operands[1]})
	if err != nil {
		return err
	}

	a.println(renderUser(user))
	return nil
}

func (a *App) update(ctx context.Context, operands []string) error {
	id, err := a.idOperand("update", operands, 3)
	if err != nil {
		return err
	}

	user, err := a.api.UpdateUser(ctx, id, models.User{Name: operands[1], Email: operands[2]})
	if err != nil {
		return err
	}

	a.println(renderUser(user))
	return nil
}

func (a *App) delete(ctx context.Context, operands []string) error {
	id, err := a.idOperand("delete", operands, 1)
	if err != nil {
		return err
	}

	message, err := a.api.DeleteUser(ctx, id)
	if err != nil {
		return err
	}

	a.println(message)
	return nil
}

func (a *App) version(ctx context.Context, operands []string) error {
	if len(operands) != 0 {
		return a.wrongArguments("version")
	}

	version, err := a.api.GetServerVersion(ctx)
	if err != nil {
		return err
	}

	a.println("Server version: " + version)
	return nil
}

// idOperand checks that operands has exactly want elements and parses the
// first one as a user id. The range of the id is left to the server.
func (a *App) idOperand(command string, operands []string, want int) (int64, error) {
	if len(operands) != want {
		return 0, a.wrongArguments(command)
	}

	id, err := strconv.ParseInt(operands[0], 10, 64)
	if err != nil {
		return 0, a.wrongArguments(command)
	}

	return id, nil
}

func (a *App) wrongArguments(command string) error {
	a.println(renderUsage())
	return fmt.Errorf("%w for %q", ErrWrongArguments, command)
}

func (a *App) println(s string) {
	_, _ = fmt.Fprintln(a.out, s)
}
