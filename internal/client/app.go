package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/go-user-keeper/internal/adapter"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/utils"
	"github.com/MKhiriev/go-user-keeper/models"
)

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

type App struct {
	adapter   adapter.ServerAdapter
	buildInfo models.AppBuildInfo
	out       io.Writer

	commands map[string]command

	logger *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, out io.Writer, logger *logger.Logger) *App {
	a := &App{
		adapter:   serverAdapter,
		buildInfo: buildInfo,
		out:       out,
		logger:    logger,
	}
	a.commands = map[string]command{
		"register": {"register -name NAME -email EMAIL -password PASS [-confirm PASS]", a.register},
		"login":    {"login -email EMAIL -password PASS", a.login},
		"list":     {"list [-page N] [-size N] [-sort field:order] [-search TEXT]", a.list},
		"get":      {"get ID", a.get},
		"update":   {"update -name NAME -email EMAIL [-id ID]", a.update},
		"delete":   {"delete [-id ID]", a.delete},
		"passwd":   {"passwd -old PASS -new PASS [-confirm PASS] [-id ID]", a.passwd},
		"version":  {"version", a.version},
	}
	return a
}

// Run executes args[0] with the remaining arguments.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return fmt.Errorf("%w: command", ErrMissingArgument)
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	a.logger.Debug().Str("command", args[0]).Msg("running command")
	return cmd.run(ctx, args[1:])
}

func (a *App) printUsage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "usage: user-client COMMAND [flags]")
	for _, name := range names {
		fmt.Fprintln(a.out, "  "+a.commands[name].usage)
	}
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.out)
	return fs
}

func (a *App) register(ctx context.Context, args []string) error {
	var req models.RegisterRequest
	fs := a.flagSet("register")
	fs.StringVar(&req.Name, "name", "", "display name")
	fs.StringVar(&req.Email, "email", "", "email")
	fs.StringVar(&req.Password, "password", "", "password")
	fs.StringVar(&req.PasswordConfirm, "confirm", "", "password confirmation (defaults to -password)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if req.PasswordConfirm == "" {
		req.PasswordConfirm = req.Password
	}

	resp, err := a.adapter.Register(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, renderOK("%s (id %s)", resp.Message, resp.ID))
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	var req models.LoginRequest
	fs := a.flagSet("login")
	fs.StringVar(&req.Email, "email", "", "email")
	fs.StringVar(&req.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	user, err := a.adapter.Login(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, renderOK("logged in as %s", user.Email))
	fmt.Fprintf(a.out, "export CLIENT_TOKEN=%s\n", a.adapter.Token())
	return nil
}

func (a *App) list(ctx context.Context, args []string) error {
	var (
		query    models.ListQuery
		sortSpec string
	)
	fs := a.flagSet("list")
	fs.IntVar(&query.Page, "page", 0, "page number, from 1")
	fs.IntVar(&query.PageSize, "size", 0, "users per page")
	fs.StringVar(&sortSpec, "sort", "", "sort as field:order, e.g. created_at:desc")
	fs.StringVar(&query.Search, "search", "", "substring of name or email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if sortSpec != "" {
		query.SortBy, query.SortOrder, _ = strings.Cut(sortSpec, ":")
	}

	page, err := a.adapter.ListUsers(ctx, query)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, renderUserPage(page))
	return nil
}

func (a *App) get(ctx context.Context, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return fmt.Errorf("%w: user id", ErrMissingArgument)
	}

	user, err := a.adapter.GetUser(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, renderUser(user))
	return nil
}

func (a *App) update(ctx context.Context, args []string) error {
	var req models.UpdateUserRequest
	fs := a.flagSet("update")
	fs.StringVar(&req.UserID, "id", "", "user id (defaults to the logged-in user)")
	fs.StringVar(&req.Name, "name", "", "new display name")
	fs.StringVar(&req.Email, "email", "", "new email")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := a.resolveUserID(req.UserID)
	if err != nil {
		return err
	}
	req.UserID = id

	updated, err := a.adapter.UpdateUser(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, renderOK("user %s updated", updated))
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	var id string
	fs := a.flagSet("delete")
	fs.StringVar(&id, "id", "", "user id (defaults to the logged-in user)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	id, err := a.resolveUserID(id)
	if err != nil {
		return err
	}

	deleted, err := a.adapter.DeleteUser(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, renderOK("user %s deleted", deleted))
	return nil
}

func (a *App) passwd(ctx context.Context, args []string) error {
	var req models.ChangePasswordRequest
	fs := a.flagSet("passwd")
	fs.StringVar(&req.UserID, "id", "", "user id (defaults to the logged-in user)")
	fs.StringVar(&req.OldPassword, "old", "", "current password")
	fs.StringVar(&req.NewPassword, "new", "", "new password")
	fs.StringVar(&req.NewPasswordConfirm, "confirm", "", "new password confirmation (defaults to -new)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if req.NewPasswordConfirm == "" {
		req.NewPasswordConfirm = req.NewPassword
	}

	id, err := a.resolveUserID(req.UserID)
	if err != nil {
		return err
	}
	req.UserID = id

	changed, err := a.adapter.ChangePassword(ctx, req)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, renderOK("password of user %s changed", changed))
	return nil
}

func (a *App) version(ctx context.Context, _ []string) error {
	fmt.Fprintf(a.out, "client: %s\n", a.buildInfo)

	serverVersion, err := a.adapter.ServerVersion(ctx)
	if err != nil {
		var apiErr *adapter.APIError
		if errors.As(err, &apiErr) {
			return err
		}
		// transport failure: still print the client version
		a.logger.Warn().Err(err).Msg("server version request failed")
		serverVersion = "unreachable"
	}

	fmt.Fprintf(a.out, "server: %s\n", serverVersion)
	return nil
}

// resolveUserID returns explicit when set, otherwise the subject of the
// stored token.
func (a *App) resolveUserID(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}

	token := a.adapter.Token()
	if token == "" {
		return "", ErrNotLoggedIn
	}

	id, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return "", fmt.Errorf("read user id from token: %w", err)
	}
	return id, nil
}
