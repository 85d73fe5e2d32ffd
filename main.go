package main

import (
	"os"

	"github.com/armdeck/armdeck/cmd"
	"github.com/armdeck/armdeck/pkg/logger"
)

func main() {
	err := cmd.Execute()
	logger.CloseFileWriter()
	if err != nil {
		os.Exit(1)
	}
}
