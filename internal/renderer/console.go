package renderer

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const clearScreen = "\033[H\033[2J"

var (
	crossColor  = lipgloss.AdaptiveColor{Light: "#007e50", Dark: "#6afd76"}
	circleColor = lipgloss.AdaptiveColor{Light: "#0003ad", Dark: "#5f61fc"}
	gridColor   = lipgloss.AdaptiveColor{Light: "#414141", Dark: "#8f8f8f"}
)

// Console draws the view as a grid of bordered boxes.
type Console struct {
	out      io.Writer
	view     View
	clear    bool
	square   lipgloss.Style
	cross    lipgloss.Style
	circle   lipgloss.Style
	label    lipgloss.Style
	rowLabel lipgloss.Style
}

// NewConsole returns a renderer whose squares are cellWidth by cellHeight
// characters, not counting the border.
func NewConsole(out io.Writer, cellWidth, cellHeight int, clearFirst bool) *Console {
	r := lipgloss.NewRenderer(out)

	return &Console{
		out:   out,
		clear: clearFirst,
		square: r.NewStyle().
			Width(cellWidth).
			Height(cellHeight).
			Align(lipgloss.Center, lipgloss.Center).
			Border(lipgloss.NormalBorder()).
			BorderForeground(gridColor),
		cross:    r.NewStyle().Bold(true).Foreground(crossColor),
		circle:   r.NewStyle().Bold(true).Foreground(circleColor),
		label:    r.NewStyle().Width(cellWidth + 2).Align(lipgloss.Center),
		rowLabel: r.NewStyle().Width(3).Height(cellHeight + 2).Align(lipgloss.Center, lipgloss.Center),
	}
}

func (that *Console) AddMove(row, col int, player entity.Cell, committed bool) {
	that.view.Apply(row, col, player, committed)
}

// View returns a copy of the view model.
func (that *Console) View() View {
	return that.view
}

func (that *Console) Render() {
	if that.clear {
		fmt.Fprint(that.out, clearScreen)
	}

	fmt.Fprintln(that.out, that.String())
}

func (that *Console) String() string {
	labels := make([]string, 0, entity.BoardSize+1)
	labels = append(labels, that.rowLabel.Height(1).Render(""))
	for col := range entity.BoardSize {
		labels = append(labels, that.label.Render(strconv.Itoa(col)))
	}

	rows := make([]string, 0, entity.BoardSize+1)
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, labels...))

	for row := range entity.BoardSize {
		squares := make([]string, 0, entity.BoardSize+1)
		squares = append(squares, that.rowLabel.Render(strconv.Itoa(row)))

		for col := range entity.BoardSize {
			squares = append(squares, that.square.Render(that.mark(that.view.Squares[row][col])))
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Center, squares...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (that *Console) mark(square Square) string {
	var style lipgloss.Style

	switch square.Mark {
	case entity.Cross:
		style = that.cross
	case entity.Circle:
		style = that.circle
	default:
		return ""
	}

	if !square.Committed {
		style = style.Faint(true)
	}

	return style.Render(square.Mark.Mark())
}
