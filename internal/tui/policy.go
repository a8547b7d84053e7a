package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/blackjackrl/internal/qlearn"
	"github.com/lox/blackjackrl/internal/results"
)

// UpcardLabel renders a dealer upcard column heading; 11 is the Ace.
func UpcardLabel(upcard int) string {
	if upcard == 11 {
		return "A"
	}
	return strconv.Itoa(upcard)
}

// PolicyCell renders one grid cell: H or S, or a dot for unvisited states.
func PolicyCell(c results.Cell) string {
	if !c.Visited {
		return "."
	}
	if c.Action == qlearn.Hit {
		return "H"
	}
	return "S"
}

// RenderPolicy draws the hard and soft greedy policy grids side by side.
func RenderPolicy(p *results.Policy) string {
	hard := policyTable(p, false, results.MinHardTotal)
	soft := policyTable(p, true, results.MinSoftTotal)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, HeaderStyle.Render("Hard totals"), hard),
		"  ",
		lipgloss.JoinVertical(lipgloss.Left, HeaderStyle.Render("Soft totals"), soft),
	) + "\n" + InfoStyle.Render("H hit • S stand • . unvisited")
}

func policyTable(p *results.Policy, soft bool, minTotal int) string {
	headers := []string{""}
	for u := results.MinUpcard; u <= results.MaxUpcard; u++ {
		headers = append(headers, UpcardLabel(u))
	}

	var rows [][]string
	for total := minTotal; total <= results.MaxTotal; total++ {
		row := []string{strconv.Itoa(total)}
		for u := results.MinUpcard; u <= results.MaxUpcard; u++ {
			row = append(row, PolicyCell(p.At(total, u, soft)))
		}
		rows = append(rows, row)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(InfoStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow || col == 0 {
				return base.Inherit(LabelStyle)
			}
			switch strings.TrimSpace(rows[row][col]) {
			case "H":
				return base.Inherit(HitStyle)
			case "S":
				return base.Inherit(StandStyle)
			default:
				return base.Inherit(InfoStyle)
			}
		})
	return t.Render()
}
