package main

import (
	"github.com/lite-lake/boardkit/internal/infrastructure/logger"
	"github.com/lite-lake/boardkit/internal/interfaces/cli"
)

func main() {
	logger.Init(logger.ConfigFromEnv("BOARDKIT"))

	cli.Execute()
}
