package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "charm.land/bubbletea/v2"
	editor "github.com/ionut-t/panes/adapter-bubbletea"
	"github.com/ionut-t/panes/core"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	tabwidth := flag.Int("tabwidth", 8, "Tab width (1-8)")
	theme := flag.String("theme", "catppuccin-mocha", "Chroma style used for highlighting")
	layout := flag.String("layout", "h", "Window layout: h (stacked) or v (side by side)")
	logfile := flag.String("log", "", "Path to log file")
	verbosity := flag.Int("v", 1, "Log verbosity")
	flag.Parse()

	// the terminal belongs to the UI, so logs only go to a file
	if *logfile != "" {
		commonlog.Configure(*verbosity, logfile)
	} else {
		commonlog.Configure(-1, nil)
	}

	cfg := editor.DefaultConfig()
	cfg.TabWidth = *tabwidth
	cfg.ChromaTheme = *theme
	if *layout == "v" {
		cfg.Layout = core.LayoutVertical
	}

	m, err := editor.New(cfg)
	if err != nil {
		log.Fatalf("Error creating editor: %v", err)
	}
	defer m.Free()

	var files []string
	for _, arg := range flag.Args() {
		if arg == "-" {
			if err := m.OpenReader(os.Stdin); err != nil {
				fmt.Fprintf(os.Stderr, "stdin: %v\n", err)
			}
			continue
		}
		files = append(files, arg)
	}
	if len(files) > 0 || len(m.Editor().Windows()) == 0 {
		if err := m.Open(files...); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	if len(m.Editor().Windows()) == 0 {
		log.Fatal("no window could be opened")
	}

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running Bubble Tea program: %v", err)
	}
}
