package main

import (
	"fmt"
	"os"
)

var (
	version   string
	commit    string
	date      string
	buildType string = "unclassified"
)

func main() {
	err := execute(os.Args, buildArgs{
		Version:   version,
		Commit:    commit,
		Date:      date,
		BuildType: buildType,
	})
	if err != nil {
		fmt.Printf("cczu: %s\n", err.Error())
		os.Exit(1)
	}
}
