package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/passaudit/passaudit/pkg/defaults"
	"github.com/passaudit/passaudit/pkg/interactive"
	"github.com/passaudit/passaudit/pkg/ui"
)

func runStore() {
	flags := flag.NewFlagSet("store", flag.ExitOnError)

	dataFile := flags.String("data", defaults.InventoryFile, "Inventory database file")
	usersFile := flags.String("users", defaults.HistoryFile, "Purchase history database file")
	adminUser := flags.String("admin-user", defaults.ManagerUser, "Manager username")
	adminPass := flags.String("admin-pass", defaults.ManagerPass, "Manager password")
	silent := flags.Bool("silent", false, "Suppress the banner")
	noColor := flags.Bool("no-color", false, "Disable colored output")

	flags.Parse(os.Args[2:])

	ui.SetSilent(*silent)
	ui.SetNoColor(*noColor)

	if !*silent {
		ui.PrintMiniBanner()
		ui.PrintConfigBanner(map[string]string{
			"Data File":  *dataFile,
			"Users File": *usersFile,
		})
	}

	session, err := interactive.NewSession(interactive.Config{
		DataFile:  *dataFile,
		UsersFile: *usersFile,
		AdminUser: *adminUser,
		AdminPass: *adminPass,
	}, os.Stdin, os.Stdout)
	if err != nil {
		ui.PrintError(err.Error())
		os.Exit(defaults.ExitIOError)
	}
	// Hide the manager password when attached to a terminal.
	session.ReadPassword = ui.PromptPassword

	if err := session.Run(); err != nil {
		ui.PrintError(err.Error())
		os.Exit(defaults.ExitInternalError)
	}
	fmt.Println("Bye.")
	os.Exit(defaults.ExitSuccess)
}
