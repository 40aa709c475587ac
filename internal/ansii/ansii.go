package ansii

import (
	"fmt"
	"math"
	"os"
	"strings"

	"golang.org/x/term"
)

type ANSI string

const (
	reset        ANSI = "\033[0m"
	plain        ANSI = ""
	bold         ANSI = "\033[1m"
	underline    ANSI = "\033[4m"
	black        ANSI = "\033[30m"
	red          ANSI = "\033[31m"
	green        ANSI = "\033[32m"
	yellow       ANSI = "\033[33m"
	blue         ANSI = "\033[34m"
	purple       ANSI = "\033[35m"
	cyan         ANSI = "\033[36m"
	white        ANSI = "\033[37m"
	clearScreen  ANSI = "\033[2J"
	hideCursor   ANSI = "\033[?25l"
	showCursor   ANSI = "\033[?25h"
	focusOn      ANSI = "\033[?1004h"
	focusOff     ANSI = "\033[?1004l"
	altScreenOn  ANSI = "\033[?1049h"
	altScreenOff ANSI = "\033[?1049l"
)

// Focus reports sent by the terminal once focus reporting is enabled.
const (
	FocusIn  = "\033[I"
	FocusOut = "\033[O"
)

// Offset is a position relative to the canvas, 0 to 1 on each axis.
type Offset struct {
	X float64
	Y float64
}

type style struct {
	Reset     ANSI
	Plain     ANSI
	Bold      ANSI
	Underline ANSI
}

type color struct {
	Black  ANSI
	Red    ANSI
	Green  ANSI
	Yellow ANSI
	Blue   ANSI
	Purple ANSI
	Cyan   ANSI
	White  ANSI
}

type screen struct {
	ClearScreen  ANSI
	HideCursor   ANSI
	ShowCursor   ANSI
	FocusOn      ANSI
	FocusOff     ANSI
	AltScreenOn  ANSI
	AltScreenOff ANSI
}

type ascii struct {
	Block string
}

var (
	Styles = style{Bold: bold, Underline: underline, Reset: reset, Plain: plain}
	Colors = color{Black: black, Red: red, Green: green, Yellow: yellow, Blue: blue, Purple: purple, Cyan: cyan, White: white}
	Screen = screen{
		ClearScreen:  clearScreen,
		HideCursor:   hideCursor,
		ShowCursor:   showCursor,
		FocusOn:      focusOn,
		FocusOff:     focusOff,
		AltScreenOn:  altScreenOn,
		AltScreenOff: altScreenOff,
	}
	Blocks = ascii{Block: "█"}
)

func GetTermSize() (width int, height int, err error) {
	width, height, err = term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("get terminal size: %w", err)
	}
	return width, height, nil
}

func MakeTermRaw() (*term.State, error) {
	return term.MakeRaw(int(os.Stdin.Fd()))
}

func RestoreTerm(prev *term.State) error {
	return term.Restore(int(os.Stdin.Fd()), prev)
}

// PlaceCursor moves to column X, row Y, both 1-based.
func (s screen) PlaceCursor(X, Y int) ANSI {
	return ANSI(fmt.Sprintf("\033[%d;%dH", Y, X))
}

// Canvas maps relative offsets onto a terminal of Width x Height cells.
type Canvas struct {
	Width  int
	Height int
}

// Cell returns the 0-based cell under offset.
func (c Canvas) Cell(offset Offset) (x, y int) {
	x = int(math.Floor(offset.X * float64(c.Width)))
	y = int(math.Floor(offset.Y * float64(c.Height)))
	return x, y
}

// Span returns how many cells a relative width and height cover, at least one each.
func (c Canvas) Span(w, h float64) (cols, rows int) {
	cols = max(1, int(math.Round(w*float64(c.Width))))
	rows = max(1, int(math.Round(h*float64(c.Height))))
	return cols, rows
}

// Draws a box of dimensions `height` and `width` at `offset`.
// The `offset` is the top left cell of the square.
// Blocks that would be placed off screen are clipped.
func (c Canvas) DrawBox(builder *strings.Builder, offset Offset, height int, width int, style ANSI) {
	x, y := c.Cell(offset)
	builder.WriteString(string(style))
	for hIdx := range height {
		if hIdx == 0 || hIdx == height-1 {
			for wIdx := range width {
				c.drawPixel(builder, x+wIdx, y+hIdx)
			}
		} else {
			c.drawPixel(builder, x, y+hIdx)
			c.drawPixel(builder, x+width-1, y+hIdx)
		}
	}
	builder.WriteString(string(Styles.Reset))
}

// FillBox is DrawBox with the inside filled.
func (c Canvas) FillBox(builder *strings.Builder, offset Offset, height int, width int, style ANSI) {
	x, y := c.Cell(offset)
	builder.WriteString(string(style))
	for hIdx := range height {
		for wIdx := range width {
			c.drawPixel(builder, x+wIdx, y+hIdx)
		}
	}
	builder.WriteString(string(Styles.Reset))
}

// DrawText writes text starting at cell (x, y). Text running off the right
// edge is cut.
func (c Canvas) DrawText(builder *strings.Builder, x, y int, text string, style ANSI) {
	if y < 0 || y >= c.Height || x >= c.Width {
		return
	}
	runes := []rune(text)
	if x < 0 {
		if -x >= len(runes) {
			return
		}
		runes = runes[-x:]
		x = 0
	}
	if len(runes) > c.Width-x {
		runes = runes[:c.Width-x]
	}
	builder.WriteString(string(style))
	builder.WriteString(string(Screen.PlaceCursor(x+1, y+1)))
	builder.WriteString(string(runes))
	builder.WriteString(string(Styles.Reset))
}

func (c Canvas) drawPixel(builder *strings.Builder, x, y int) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	builder.WriteString(string(Screen.PlaceCursor(x+1, y+1) + ANSI(Blocks.Block)))
}

func (c Canvas) DrawPixelStyle(builder *strings.Builder, offset Offset, style ANSI) {
	x, y := c.Cell(offset)
	builder.WriteString(string(style))
	c.drawPixel(builder, x, y)
	builder.WriteString(string(Styles.Reset))
}
