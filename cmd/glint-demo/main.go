package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/glintui/glint/anim"
	"github.com/glintui/glint/core"
	"github.com/glintui/glint/widgets"
)

var logPath = flag.String("log", "glint-demo.log", "debug log file")

func main() {
	flag.Parse()

	// The terminal is owned by the UI; logs go to a file.
	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		panic(err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.Println("glint-demo starting")

	if err := run(); err != nil {
		log.Printf("glint-demo: %v", err)
		fmt.Fprintf(os.Stderr, "glint-demo: %v\n", err)
		os.Exit(1)
	}
	log.Println("glint-demo stopped cleanly")
}

func run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	ui := core.NewUIManager()
	w, h := screen.Size()
	ui.Resize(w, h)

	clicks := 0
	status := widgets.NewCheckbox(2, 12, "clicked yet?")

	ok := widgets.NewButton(2, 2, "OK", func() {
		clicks++
		log.Printf("OK clicked (%d)", clicks)
		status.Checked = true
	})
	flash := widgets.NewAnimatedButton(10, 2, "Flash", func() {
		log.Println("Flash clicked")
	})
	mode := widgets.NewToggle(2, 10, "plain", "fancy")
	mode.OnChange = func(i int) { log.Printf("mode -> %d", i) }

	ui.AddWidget(widgets.NewPane(0, 0, w, h, tcell.StyleDefault))
	ui.AddWidget(ok)
	ui.AddWidget(flash)
	ui.AddWidget(mode)
	ui.AddWidget(status)
	ui.Focus(ok)

	refresh := make(chan bool, 1)
	ui.SetRefreshNotifier(refresh)

	clock := anim.NewClock(anim.DefaultInterval)
	go clock.Run(ui.OnFrame)
	defer clock.Stop()

	quit := make(chan struct{})
	events := make(chan tcell.Event, 16)
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	blit(screen, ui)
	for {
		select {
		case <-refresh:
			blit(screen, ui)
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				cols, rows := ev.Size()
				ui.Resize(cols, rows)
				screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				ui.HandleKey(ev)
				clock.Wake()
			case *tcell.EventMouse:
				ui.HandleMouse(ev)
				clock.Wake()
			}
		}
	}
}

func blit(screen tcell.Screen, ui *core.UIManager) {
	buf := ui.Render()
	for y, row := range buf {
		for x, cell := range row {
			screen.SetContent(x, y, cell.Ch, nil, cell.Style)
		}
	}
	screen.Show()
}
