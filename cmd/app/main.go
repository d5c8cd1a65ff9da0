package main

import (
	"os"

	"github.com/ryobiguy/timesheet/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
