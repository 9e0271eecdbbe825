package main

import "github.com/urfave/cli"

var (
	username string
	password string
	term     string
)

var authFlags = []cli.Flag{
	cli.StringFlag{
		Name:        "username, u",
		Usage:       "campus account",
		EnvVar:      "CCZU_USERNAME",
		Destination: &username,
	},
	cli.StringFlag{
		Name:        "password, p",
		Usage:       "campus password",
		EnvVar:      "CCZU_PASSWORD",
		Destination: &password,
	},
}

var scheduleFlags = append([]cli.Flag{
	cli.StringFlag{
		Name:        "term, t",
		Usage:       "academic term, e.g. 2025-2026-1 (default: most recent)",
		Destination: &term,
	},
}, authFlags...)
