package main

import (
	"fmt"

	"github.com/urfave/cli"
)

type buildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

func execute(args []string, bArgs buildArgs) error {
	app := cli.App{
		Name:      "cczu",
		HelpName:  "cczu",
		Usage:     "Campus portal client for grades, timetables, exams and the training plan.",
		Version:   fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType),
		UsageText: "cczu <command> [arguments...]",
		Commands: []cli.Command{
			{
				Name:   "login",
				Usage:  "verify the credential against the SSO portal",
				Action: login,
				Flags:  authFlags,
			},
			{
				Name:    "grades",
				Aliases: []string{"g"},
				Usage:   "list all graded course records",
				Action:  grades,
				Flags:   authFlags,
			},
			{
				Name:   "rank",
				Usage:  "show the grade-point summary and class ranking",
				Action: rank,
				Flags:  authFlags,
			},
			{
				Name:   "terms",
				Usage:  "list the known academic terms",
				Action: terms,
				Flags:  authFlags,
			},
			{
				Name:    "schedule",
				Aliases: []string{"s"},
				Usage:   "show the weekly timetable",
				Action:  scheduleCmd,
				Flags:   scheduleFlags,
			},
			{
				Name:   "exams",
				Usage:  "list scheduled exams",
				Action: exams,
				Flags:  authFlags,
			},
			{
				Name:   "plan",
				Usage:  "show the training plan with credit totals",
				Action: plan,
				Flags:  authFlags,
			},
			{
				Name:    "version",
				Aliases: []string{"v"},
				Usage:   "print the installed version",
				Action: func(*cli.Context) error {
					fmt.Printf("cczu %s-%s (%s, %s)\n", bArgs.Version, bArgs.BuildType, bArgs.Commit, bArgs.Date)
					return nil
				},
			},
		},
	}
	return app.Run(args)
}
