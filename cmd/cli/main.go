package main

import (
	"fmt"
	"os"

	"github.com/passaudit/passaudit/pkg/defaults"
	"github.com/passaudit/passaudit/pkg/ui"
)

func main() {
	// Check for subcommands
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(defaults.ExitUserError)
	}

	switch os.Args[1] {
	case "audit", "check":
		runAudit()
	case "store", "shop":
		runStore()
	case "-h", "--help", "help":
		printUsage()
		os.Exit(defaults.ExitSuccess)
	case "-v", "--version", "version":
		ui.PrintMiniBanner()
		os.Exit(defaults.ExitSuccess)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(defaults.ExitUserError)
	}
}

func printUsage() {
	ui.PrintMiniBanner()

	fmt.Println(ui.SectionStyle.Render("USAGE"))
	fmt.Println()
	fmt.Println("  passaudit <command> [flags]")
	fmt.Println()
	fmt.Println(ui.SectionStyle.Render("COMMANDS"))
	fmt.Println()
	fmt.Printf("    %s  Score a password against the policy checks\n", ui.ConfigValueStyle.Render("audit"))
	fmt.Printf("    %s  Run the interactive store (manager and customer portals)\n", ui.ConfigValueStyle.Render("store"))
	fmt.Println()
	fmt.Println(ui.SectionStyle.Render("EXAMPLES"))
	fmt.Println()
	fmt.Println("    passaudit audit -u alice")
	fmt.Println("    passaudit audit -u alice -p 'Tr!cky-Horse7' -format json -o report.json")
	fmt.Println("    passaudit audit -l creds.txt -format markdown")
	fmt.Println("    passaudit store -data store_data.json -users users.json")
	fmt.Println()
	fmt.Println(ui.HelpStyle.Render("  run 'passaudit <command> -h' for command flags"))
}
