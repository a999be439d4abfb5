package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	ohmylogo "github.com/AkaakuHub/oh-my-logo"
)

// displayCanvas shows the rendered canvas centered on an interactive
// terminal screen until the user presses Escape, Ctrl-C, or q.
func displayCanvas(canvas ohmylogo.Canvas, colors [][]ohmylogo.RGB) error {
	scr, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("error creating screen: %v", err)
	}
	if err := scr.Init(); err != nil {
		return fmt.Errorf("error initializing screen: %v", err)
	}
	defer scr.Fini()

	drawCanvas(scr, canvas, colors)
	for {
		scr.Show()

		ev := scr.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			drawCanvas(scr, canvas, colors)
			scr.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
				return nil
			}
		}
	}
}

func drawCanvas(scr tcell.Screen, canvas ohmylogo.Canvas, colors [][]ohmylogo.RGB) {
	scr.Clear()

	width := 0
	for _, row := range canvas {
		if w := runewidth.StringWidth(row); w > width {
			width = w
		}
	}
	scrWidth, scrHeight := scr.Size()
	originX := (scrWidth - width) / 2
	if originX < 0 {
		originX = 0
	}
	originY := (scrHeight - len(canvas)) / 2
	if originY < 0 {
		originY = 0
	}

	for y, row := range canvas {
		x := originX
		i := 0
		for _, r := range row {
			dw := runewidth.RuneWidth(r)
			if dw < 1 {
				dw = 1
			}
			if r != ' ' {
				style := tcell.StyleDefault
				if y < len(colors) && i < len(colors[y]) {
					c := colors[y][i]
					style = style.Foreground(tcell.NewHexColor(int32(c.Uint32())))
				}
				scr.SetContent(x, originY+y, r, nil, style)
			}
			x += dw
			i++
		}
	}
}
