package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/Dicklesworthstone/restricted_input/pkg/caret"
	"github.com/Dicklesworthstone/restricted_input/pkg/config"
	"github.com/Dicklesworthstone/restricted_input/pkg/model"
	"github.com/Dicklesworthstone/restricted_input/pkg/ui"
	"github.com/Dicklesworthstone/restricted_input/pkg/version"
	"github.com/Dicklesworthstone/restricted_input/pkg/watcher"
)

const usageMarkdown = `# rinput

A terminal form whose fields only accept the keys you allow.

## Usage

    rinput [options]

Without ` + "`-config`" + `, the form is read from ` + "`.rinput/form.yaml`" + ` in the
current directory, falling back to a built-in demo form.

## Form file

` + "```yaml" + `
title: Payment
fields:
  - name: card
    label: Card number
    allowed_keys: ["0-9", " "]
    caret: right      # or left
    char_limit: 19
` + "```" + `

Tab, Return, Delete, Backspace, Meta, Control, Alt and F5 are always allowed.
`

func main() {
	os.Exit(realMain())
}

// realMain returns the exit code so that deferred cleanup runs before exit.
func realMain() int {
	configPath := flag.String("config", "", "Path to form YAML (default .rinput/form.yaml)")
	watch := flag.Bool("watch", false, "Reload the form when the config file changes")
	copyOut := flag.Bool("copy", false, "Copy submitted values to the clipboard")
	jsonOut := flag.Bool("json", false, "Print submitted values as JSON")
	debug := flag.Bool("debug", false, "Write a debug log to debug.log")
	help := flag.Bool("help", false, "Show help")
	showVersion := flag.Bool("version", false, "Show version")
	flag.Parse()

	if *help {
		printHelp()
		return 0
	}

	if *showVersion {
		fmt.Println("rinput version " + version.Version)
		return 0
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: rinput needs an interactive terminal on stdin")
		return 1
	}

	if *debug {
		f, err := tea.LogToFile("debug.log", "rinput")
		if err != nil {
			fmt.Printf("Error opening debug log: %v\n", err)
			return 1
		}
		defer f.Close()
	}

	// Load warnings still reach stderr here; the screen is not taken yet.
	form, path, err := loadForm(*configPath)
	if err != nil {
		fmt.Printf("Error loading form: %v\n", err)
		return 1
	}

	if !*debug {
		// Anything logged while the alt screen is up would be drawn over it.
		// Reload failures reach the form through ConfigReloadedMsg instead.
		quietLog()
	}

	m := ui.NewFormModel(form, ui.DefaultTheme(nil), ui.WithOnChange(logChange))
	final, err := run(m, path, *watch)
	if err != nil {
		fmt.Printf("Error running rinput: %v\n", err)
		return 1
	}

	result, ok := final.(ui.FormModel)
	if !ok || !result.IsSubmitted() {
		return 130
	}

	out, err := formatValues(fieldNames(result), result.Values(), *jsonOut)
	if err != nil {
		fmt.Printf("Error formatting values: %v\n", err)
		return 1
	}
	fmt.Print(out)

	if *copyOut {
		if err := clipboard.WriteAll(strings.TrimRight(out, "\n")); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not copy to clipboard: %v\n", err)
		}
	}
	return 0
}

// quietLog discards the standard logger's output.
func quietLog() {
	log.SetOutput(io.Discard)
}

// loadForm resolves the form definition. path is empty when the built-in
// form is used and there is nothing to watch.
func loadForm(configPath string) (model.Form, string, error) {
	if configPath != "" {
		form, err := config.LoadFile(configPath)
		return form, configPath, err
	}

	dir, err := os.Getwd()
	if err != nil {
		return model.Form{}, "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	path := config.Path(dir)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default(), "", nil
	}
	form, err := config.LoadFile(path)
	return form, path, err
}

// run drives the program and, when asked, the config watcher until the
// program exits.
func run(m ui.FormModel, path string, watch bool) (tea.Model, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if watch && path != "" {
		w, err := watcher.New(path, func(f model.Form, err error) {
			if err != nil {
				log.Printf("Warning: reload of %s failed: %v", path, err)
			}
			p.Send(ui.ConfigReloadedMsg{Form: f, Err: err})
		})
		if err != nil {
			return nil, err
		}
		g.Go(func() error {
			return w.Start(ctx)
		})
	}

	var final tea.Model
	g.Go(func() error {
		var err error
		final, err = p.Run()
		cancel()
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return final, nil
}

func logChange(ev caret.Event) {
	name := ""
	if ce, ok := ev.(ui.ChangeEvent); ok {
		name = ce.Name
	}
	log.Printf("change %s=%q", name, ev.Target().Value())
}

func fieldNames(m ui.FormModel) []string {
	fields := m.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name()
	}
	return names
}

// formatValues renders values in the given field order.
func formatValues(names []string, values map[string]string, asJSON bool) (string, error) {
	if asJSON {
		data, err := json.MarshalIndent(values, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	}

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%s=%s\n", name, values[name])
	}
	return b.String(), nil
}

func printHelp() {
	out := usageMarkdown
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(80))
	if err == nil {
		if rendered, err := r.Render(usageMarkdown); err == nil {
			out = rendered
		}
	}
	fmt.Print(out)
	fmt.Println("Options:")
	flag.PrintDefaults()
}
