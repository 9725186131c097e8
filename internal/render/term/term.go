// Package term is a terminal backend for the render interfaces. The logical
// screen reported by the game's Layout is squeezed onto the terminal grid,
// one cell per block of logical pixels.
package term

import (
	"image"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/raycaster/internal/render"
)

const (
	blockRune = '█'
	dotRune   = '●'
)

// TermRenderer implements the Renderer interface on a tcell screen.
type TermRenderer struct{}

// NewRenderer creates a new terminal renderer.
func NewRenderer() render.Renderer {
	return &TermRenderer{}
}

// TermImage is the terminal screen seen through the game's logical size.
type TermImage struct {
	screen        tcell.Screen
	width, height int // logical pixels
	cols, rows    int // terminal cells
	background    tcell.Color
}

// NewImage maps a width x height logical surface onto the whole screen.
func NewImage(screen tcell.Screen, width, height int) *TermImage {
	cols, rows := screen.Size()
	return &TermImage{
		screen:     screen,
		width:      max(width, 1),
		height:     max(height, 1),
		cols:       cols,
		rows:       rows,
		background: tcell.ColorBlack,
	}
}

// Bounds returns the logical bounds of the image.
func (i *TermImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.width, i.height)
}

// Size returns the logical width and height of the image.
func (i *TermImage) Size() (width, height int) {
	return i.width, i.height
}

// Fill paints every cell with the given color.
func (i *TermImage) Fill(clr color.Color) {
	i.background = toTcellColor(clr)
	style := tcell.StyleDefault.Background(i.background)
	for y := 0; y < i.rows; y++ {
		for x := 0; x < i.cols; x++ {
			i.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// Clear blanks the screen.
func (i *TermImage) Clear() {
	i.background = tcell.ColorBlack
	i.screen.Clear()
}

// toCell converts a logical point to the cell containing it.
func (i *TermImage) toCell(x, y float32) (int, int) {
	cx := int(math.Floor(float64(x) * float64(i.cols) / float64(i.width)))
	cy := int(math.Floor(float64(y) * float64(i.rows) / float64(i.height)))
	return cx, cy
}

func (i *TermImage) inside(cx, cy int) bool {
	return cx >= 0 && cx < i.cols && cy >= 0 && cy < i.rows
}

// set draws r in fg, keeping whatever background the cell already has.
func (i *TermImage) set(cx, cy int, r rune, fg tcell.Color) {
	if !i.inside(cx, cy) {
		return
	}
	_, _, style, _ := i.screen.GetContent(cx, cy)
	i.screen.SetContent(cx, cy, r, nil, style.Foreground(fg))
}

// FillRect paints the background of every cell whose top-left corner lies in
// the rectangle. A rectangle smaller than a cell still paints the cell
// holding its corner.
func (r *TermRenderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	img := dst.(*TermImage)
	style := tcell.StyleDefault.Background(toTcellColor(clr))

	x0, y0 := img.toCell(x, y)
	x1, y1 := img.toCell(x+width, y+height)
	x1, y1 = max(x1, x0+1), max(y1, y0+1)
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			if img.inside(cx, cy) {
				img.screen.SetContent(cx, cy, ' ', nil, style)
			}
		}
	}
}

// StrokeRect outlines the rectangle with its four edges.
func (r *TermRenderer) StrokeRect(dst render.Image, x, y, width, height, strokeWidth float32, clr color.Color) {
	r.StrokeLine(dst, x, y, x+width, y, strokeWidth, clr)
	r.StrokeLine(dst, x+width, y, x+width, y+height, strokeWidth, clr)
	r.StrokeLine(dst, x+width, y+height, x, y+height, strokeWidth, clr)
	r.StrokeLine(dst, x, y+height, x, y, strokeWidth, clr)
}

// StrokeLine rasterises the segment over the cells it crosses. The stroke
// width is always one cell.
func (r *TermRenderer) StrokeLine(dst render.Image, x0, y0, x1, y1, strokeWidth float32, clr color.Color) {
	img := dst.(*TermImage)
	fg := toTcellColor(clr)
	cx0, cy0 := img.toCell(x0, y0)
	cx1, cy1 := img.toCell(x1, y1)
	drawLine(cx0, cy0, cx1, cy1, func(cx, cy int) {
		img.set(cx, cy, blockRune, fg)
	})
}

// FillCircle marks the cell holding the centre, plus every cell whose centre
// lies inside the circle.
func (r *TermRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	img := dst.(*TermImage)
	fg := toTcellColor(clr)

	cellW := float32(img.width) / float32(max(img.cols, 1))
	cellH := float32(img.height) / float32(max(img.rows, 1))
	x0, y0 := img.toCell(x-radius, y-radius)
	x1, y1 := img.toCell(x+radius, y+radius)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			dx := (float32(cx)+0.5)*cellW - x
			dy := (float32(cy)+0.5)*cellH - y
			if dx*dx+dy*dy <= radius*radius {
				img.set(cx, cy, dotRune, fg)
			}
		}
	}
	cx, cy := img.toCell(x, y)
	img.set(cx, cy, dotRune, fg)
}

// DrawText writes the text starting at the cell holding (x, y). Newlines
// move to the next row.
func (r *TermRenderer) DrawText(dst render.Image, str string, x, y int, clr color.Color) {
	img := dst.(*TermImage)
	style := tcell.StyleDefault.Foreground(toTcellColor(clr)).Background(img.background)

	startX, cy := img.toCell(float32(x), float32(y))
	cx := startX
	for _, ch := range str {
		if ch == '\n' {
			cx = startX
			cy++
			continue
		}
		if img.inside(cx, cy) {
			img.screen.SetContent(cx, cy, ch, nil, style)
		}
		cx++
	}
}

// drawLine walks the cells of a Bresenham line from (x0, y0) to (x1, y1)
// inclusive.
func drawLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// toTcellColor converts any color.Color to a 24-bit tcell color.
func toTcellColor(clr color.Color) tcell.Color {
	if clr == nil {
		return tcell.ColorDefault
	}
	r, g, b, _ := clr.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
