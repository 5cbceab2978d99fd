package commands

import (
	"errors"
	"fmt"

	"github.com/battlesnakeio/snake/rules"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault
	snakeColor   = termbox.ColorGreen
	foodColor    = termbox.ColorRed
	left         = 2
	top          = 2
)

func render(game *rules.Game, frame *rules.Frame) error {
	if frame == nil {
		return errors.New("received nil frame")
	}
	err := termbox.Clear(defaultColor, defaultColor)
	if err != nil {
		return err
	}

	bottom := top + game.Height + 1

	renderTitle(left, top, frame)
	renderBoard(game, top, bottom, left)
	renderFood(left, top, frame.Food)
	renderSnake(left, top, frame.Snake)
	if frame.GameOver {
		tbprint(left, bottom+1, foodColor, defaultColor, "Game Over!")
	}

	return termbox.Flush()
}

func renderSnake(left, top int, body []rules.Point) {
	for _, b := range body {
		termbox.SetCell(left+b.X, top+b.Y+1, ' ', snakeColor, snakeColor)
	}
}

func renderFood(left, top int, food rules.Point) {
	termbox.SetCell(left+food.X, top+food.Y+1, '●', foodColor, bgColor)
}

func renderBoard(game *rules.Game, top, bottom, left int) {
	for i := top + 1; i < bottom; i++ {
		termbox.SetCell(left-1, i, '│', defaultColor, bgColor)
		termbox.SetCell(left+game.Width, i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(left-1, top, '┌', defaultColor, bgColor)
	termbox.SetCell(left-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(left+game.Width, top, '┐', defaultColor, bgColor)
	termbox.SetCell(left+game.Width, bottom, '┘', defaultColor, bgColor)

	fill(left, top, game.Width, 1, termbox.Cell{Ch: '─'})
	fill(left, bottom, game.Width, 1, termbox.Cell{Ch: '─'})
}

func renderTitle(left, top int, frame *rules.Frame) {
	tbprint(left-1, top-1, defaultColor, defaultColor, fmt.Sprintf("Snake! - Score: %d", frame.Score))
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
