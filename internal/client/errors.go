package client

import "errors"

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
	ErrNotLoggedIn     = errors.New("not logged in: run login first or set CLIENT_TOKEN")
)
