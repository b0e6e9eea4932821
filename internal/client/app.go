package client

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/account-service/internal/adapter"
	"github.com/MKhiriev/account-service/internal/app"
	"github.com/MKhiriev/account-service/internal/logger"
	"github.com/MKhiriev/account-service/models"
)

// Usage lists the supported commands.
const Usage = `usage: account-client [-addr host:port] [-timeout 10s] <command> [args]

commands:
  list                                   list all accounts
  get <id>                               show one account
  create -name N -email E -address A -phone P [-date YYYY-MM-DD]
  update <id> -name N -email E -address A -phone P [-date YYYY-MM-DD]
  delete <id>                            delete an account
  health                                 check service liveness
`

type App struct {
	accounts adapter.AccountsAdapter
	out      io.Writer

	logger *logger.Logger
}

func NewApp(accounts adapter.AccountsAdapter, out io.Writer, logger *logger.Logger) *App {
	return &App{accounts: accounts, out: out, logger: logger}
}

// Run dispatches args[0] as the command name.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrNoCommand
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("command", command).Strs("args", rest).Msg("running client command")

	switch command {
	case "list":
		return a.list(ctx)
	case "get":
		return a.get(ctx, rest)
	case "create":
		return a.create(ctx, rest)
	case "update":
		return a.update(ctx, rest)
	case "delete":
		return a.delete(ctx, rest)
	case "health":
		return a.health(ctx)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

func (a *App) list(ctx context.Context) error {
	accounts, err := a.accounts.List(ctx)
	if err != nil {
		return err
	}
	return a.print(accounts)
}

func (a *App) get(ctx context.Context, args []string) error {
	id, _, err := parseID(args)
	if err != nil {
		return err
	}

	acc, err := a.accounts.Get(ctx, id)
	if err != nil {
		return err
	}
	return a.print(acc)
}

func (a *App) create(ctx context.Context, args []string) error {
	acc, err := parseAccountFlags("create", args)
	if err != nil {
		return err
	}

	created, location, err := a.accounts.Create(ctx, acc)
	if err != nil {
		return err
	}

	a.logger.Info().Str("location", location).Msg("account created")
	return a.print(created)
}

func (a *App) update(ctx context.Context, args []string) error {
	id, rest, err := parseID(args)
	if err != nil {
		return err
	}

	acc, err := parseAccountFlags("update", rest)
	if err != nil {
		return err
	}

	updated, err := a.accounts.Update(ctx, id, acc)
	if err != nil {
		return err
	}
	return a.print(updated)
}

func (a *App) delete(ctx context.Context, args []string) error {
	id, _, err := parseID(args)
	if err != nil {
		return err
	}

	if err = a.accounts.Delete(ctx, id); err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, app.MsgAccountDeleted)
	return err
}

func (a *App) health(ctx context.Context) error {
	status, err := a.accounts.Health(ctx)
	if err != nil {
		return err
	}
	return a.print(models.HealthResponse{Status: status})
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func parseID(args []string) (int64, []string, error) {
	if len(args) == 0 {
		return 0, nil, ErrMissingID
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, nil, fmt.Errorf("%w: %q", ErrInvalidID, args[0])
	}
	return id, args[1:], nil
}

func parseAccountFlags(command string, args []string) (models.Account, error) {
	var (
		acc  models.Account
		date string
	)

	fs := flag.NewFlagSet(command, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&acc.Name, "name", "", "account holder name")
	fs.StringVar(&acc.Email, "email", "", "contact email")
	fs.StringVar(&acc.Address, "address", "", "postal address")
	fs.StringVar(&acc.PhoneNumber, "phone", "", "phone number")
	fs.StringVar(&date, "date", "", "date joined (YYYY-MM-DD), defaults to today on the server")
	if err := fs.Parse(args); err != nil {
		return models.Account{}, err
	}

	if date != "" {
		parsed, err := models.ParseDate(date)
		if err != nil {
			return models.Account{}, err
		}
		acc.DateJoined = parsed
	}

	return acc, nil
}
