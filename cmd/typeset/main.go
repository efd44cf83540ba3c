// Command typeset is a terminal host for the editing engine: it maps the
// terminal cell grid onto the engine's pixel space (one pixel per cell) and
// drives ticks from the Bubble Tea frame loop.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/unkn0wn-root/typeset/internal/config"
	"github.com/unkn0wn-root/typeset/internal/editor"
	"github.com/unkn0wn-root/typeset/internal/metrics"
)

func main() {
	var (
		filePath = flag.String("file", "", "load initial text from a file")
		oneLine  = flag.Bool("oneline", false, "single-line field: enter finishes editing")
		justify  = flag.Bool("justify", false, "justified alignment")
		whole    = flag.Bool("whole-words", true, "wrap at word boundaries")
		maxChars = flag.Int("max-chars", 0, "buffer capacity in characters, 0 = unlimited")
	)
	flag.Parse()

	settings, _, err := config.LoadSettings()
	if err != nil {
		log.Printf("settings load error: %v", err)
		settings = config.DefaultSettings()
	}

	cfg := editor.DefaultConfig()
	cfg.Editable = true
	cfg.Scrollable = true
	cfg.Width = 72
	cfg.Height = 20
	cfg.OneLine = *oneLine
	cfg.WholeWords = *whole || settings.Editor.WholeWords
	cfg.MaxChars = *maxChars
	switch settings.Editor.Align {
	case "center":
		cfg.Align = editor.AlignCenter
	case "right":
		cfg.Align = editor.AlignRight
	case "justify":
		cfg.Align = editor.AlignJustify
	}
	cfg.UndoLevels = settings.Editor.UndoLevels
	cfg.BlinkShow = settings.Timing.BlinkShow
	cfg.BlinkHide = settings.Timing.BlinkHide
	cfg.RepeatDelay = settings.Timing.RepeatDelay
	cfg.RepeatSpan = settings.Timing.RepeatSpan
	if *justify {
		cfg.Align = editor.AlignJustify
	}

	text := "Type here. Drag to select, ctrl+z undoes, ctrl+d duplicates the line."
	if *filePath != "" {
		data, err := os.ReadFile(*filePath)
		if err != nil {
			log.Fatalf("read file: %v", err)
		}
		text = string(data)
	}

	// One pixel per terminal cell keeps the engine's layout arithmetic and
	// the renderer's column math identical.
	measurer := metrics.NewCellMeasurer(1, 1)

	ent, err := editor.New(measurer, cfg)
	if err != nil {
		log.Fatalf("editor init: %v", err)
	}
	ent.SetText(text)

	m := newModel(ent)
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "typeset: %v\n", err)
		os.Exit(1)
	}
}
