package main

import (
	"os"

	"contests_printer/common"
	"contests_printer/common/config"
	"contests_printer/contests"
	"contests_printer/lib/logger"
)

func main() {
	cfg, err := config.ReadConfig(config.DefaultPath)
	if err != nil {
		logger.Error("Can not load config: %v", err)
		os.Exit(1)
	}

	if err = logger.InitLogger(cfg.Logger); err != nil {
		logger.Error("Can not set up logger: %v", err)
		os.Exit(1)
	}

	printer := common.InitPrinter(cfg)
	if err = contests.SetupContests(printer); err != nil {
		os.Exit(1)
	}

	if err = printer.Run(); err != nil {
		os.Exit(1)
	}
}
