package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/passaudit/passaudit/pkg/defaults"
	"github.com/passaudit/passaudit/pkg/output"
	"github.com/passaudit/passaudit/pkg/output/writers"
	"github.com/passaudit/passaudit/pkg/policy"
	"github.com/passaudit/passaudit/pkg/ui"
)

// credential is one username/password pair queued for evaluation.
type credential struct {
	username string
	password string
}

func runAudit() {
	flags := flag.NewFlagSet("audit", flag.ExitOnError)

	var username, password string
	flags.StringVar(&username, "u", "", "Username to audit")
	flags.StringVar(&username, "user", "", "Username to audit (long form)")
	flags.StringVar(&password, "p", "", "Password (omit to be prompted without echo)")
	flags.StringVar(&password, "pass", "", "Password (long form)")

	listFile := flags.String("l", "", "Batch file with one user:pass pair per line")
	denylistFile := flags.String("denylist", "", "YAML file with extra denied passwords")
	outputFile := flags.String("o", "", "Write the report to a file instead of stdout")
	format := flags.String("format", "console", "Output format: console, "+strings.Join(writers.Formats(), ", "))
	templateFile := flags.String("template", "", "Custom template file (format=template)")
	silent := flags.Bool("silent", false, "Suppress banner and progress output")
	noColor := flags.Bool("no-color", false, "Disable colored output")

	flags.Parse(os.Args[2:])

	ui.SetSilent(*silent)
	ui.SetNoColor(*noColor)

	evaluator := policy.New()
	if *denylistFile != "" {
		n, err := evaluator.LoadDenylist(*denylistFile)
		if err != nil {
			ui.PrintError(fmt.Sprintf("load denylist: %v", err))
			os.Exit(defaults.ExitIOError)
		}
		ui.PrintInfo(fmt.Sprintf("Loaded %d denylist entries from %s", n, *denylistFile))
	}

	creds, err := collectCredentials(username, password, *listFile)
	if err != nil {
		ui.PrintError(err.Error())
		os.Exit(defaults.ExitUserError)
	}

	if !*silent && *format == "console" {
		ui.PrintMiniBanner()
		ui.PrintConfigBanner(map[string]string{
			"Username": username,
			"Input":    *listFile,
			"Denylist": *denylistFile,
			"Output":   *outputFile,
			"Format":   *format,
		})
	}

	report := output.NewReport()
	results := make([]policy.Result, 0, len(creds))
	for _, c := range creds {
		result := evaluator.Evaluate(c.username, c.password)
		results = append(results, result)
		report.Add(c.username, result)
	}

	if *format == "console" {
		printConsole(creds, results)
	} else {
		if err := writeReport(report, *format, *templateFile, *outputFile); err != nil {
			ui.PrintError(err.Error())
			os.Exit(defaults.ExitIOError)
		}
		if *outputFile != "" {
			ui.PrintSuccess(fmt.Sprintf("Report written to %s", *outputFile))
		}
	}

	if report.HasWeak() {
		os.Exit(defaults.ExitWeakPassword)
	}
	os.Exit(defaults.ExitSuccess)
}

// collectCredentials assembles the evaluation queue from flags, a batch
// file, or interactive prompts.
func collectCredentials(username, password, listFile string) ([]credential, error) {
	if listFile != "" {
		return readCredentialFile(listFile)
	}

	reader := bufio.NewReader(os.Stdin)
	if username == "" {
		u, err := ui.PromptLine(reader, "Username: ")
		if err != nil {
			return nil, fmt.Errorf("read username: %w", err)
		}
		username = u
	}
	if password == "" {
		p, err := ui.PromptPassword(reader, "Password: ")
		if err != nil {
			return nil, fmt.Errorf("read password: %w", err)
		}
		password = p
	}
	return []credential{{username: username, password: password}}, nil
}

// readCredentialFile parses a batch file with one user:pass pair per
// line. Blank lines and #-comments are skipped; the password may
// contain colons, only the first one splits.
func readCredentialFile(path string) ([]credential, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open batch file: %w", err)
	}
	defer f.Close()

	var creds []credential
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		user, pass, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("%s:%d: expected user:pass", path, lineNo)
		}
		creds = append(creds, credential{username: user, password: pass})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}
	if len(creds) == 0 {
		return nil, fmt.Errorf("%s: no credentials found", path)
	}
	return creds, nil
}

// printConsole shows the full breakdown for a single pair and compact
// one-liners for a batch.
func printConsole(creds []credential, results []policy.Result) {
	if len(creds) == 1 {
		ui.PrintAuditResult(results[0])
		return
	}
	for i, c := range creds {
		fmt.Println(ui.FormatAuditLine(c.username, results[i]))
	}
}

// writeReport renders the report with the selected writer, to a file
// when path is set and stdout otherwise.
func writeReport(report *output.Report, format, templateFile, path string) error {
	writer, err := writers.ForFormat(format, templateFile)
	if err != nil {
		return err
	}

	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create report file: %w", err)
		}
		defer f.Close()
		out = f
	}
	return writer.Write(report, out)
}
