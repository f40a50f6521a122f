// SPDX-License-Identifier: MIT
// Package matrix: human-readable rendering.
//
// Format draws a matrix inside a light box, one text column per matrix
// column, decimal points vertically aligned. The layout is meant for logs
// and error reports, not for parsing.

package matrix

import (
	"math"
	"strconv"
	"strings"
)

// Glyphs used by the box layout.
const (
	boxTopLeft     = "┌"
	boxTopRight    = "┐"
	boxBottomLeft  = "└"
	boxBottomRight = "┘"
	boxVertical    = "│"
	columnGap      = "  "
	nanGlyph       = "NaN"
	posInfGlyph    = "∞"
	negInfGlyph    = "-∞"
)

// Format renders m as a box-drawing table.
// Implementation:
//   - Stage 1: per column, render every finite value with the shortest 'f'
//     representation that round-trips, then pad fractions with zeros so the
//     whole column shares the widest fraction length (at least one digit).
//   - Stage 2: right-align cells to the column width, join with two-space
//     gaps, wrap rows in │ … │ and add the ┌┐/└┘ borders.
//
// Special values render as NaN, ∞ and -∞. A nil matrix renders as an empty
// box. Every line, the bottom border included, ends with a newline.
func Format(m Matrix) string {
	if m == nil {
		return boxTopLeft + boxTopRight + "\n" + boxBottomLeft + boxBottomRight + "\n"
	}
	rows, cols := m.Rows(), m.Cols()
	cells := make([][]string, cols)

	for col := 0; col < cols; col++ {
		cells[col] = make([]string, rows)
		fracDigits := 1
		for row := 0; row < rows; row++ {
			v, _ := m.At(row, col)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if n := fractionDigits(strconv.FormatFloat(v, 'f', -1, 64)); n > fracDigits {
				fracDigits = n
			}
		}
		width := 0
		for row := 0; row < rows; row++ {
			v, _ := m.At(row, col)
			var s string
			switch {
			case math.IsNaN(v):
				s = nanGlyph
			case math.IsInf(v, +1):
				s = posInfGlyph
			case math.IsInf(v, -1):
				s = negInfGlyph
			default:
				s = padFraction(strconv.FormatFloat(v, 'f', -1, 64), fracDigits)
			}
			cells[col][row] = s
			if n := len([]rune(s)); n > width {
				width = n
			}
		}
		for row := 0; row < rows; row++ {
			if pad := width - len([]rune(cells[col][row])); pad > 0 {
				cells[col][row] = strings.Repeat(" ", pad) + cells[col][row]
			}
		}
	}

	var sb strings.Builder
	line := make([]string, cols)
	innerWidth := 2 // the spaces inside "│ " and " │"
	for col := 0; col < cols; col++ {
		if rows > 0 {
			innerWidth += len([]rune(cells[col][0]))
		}
		if col > 0 {
			innerWidth += len(columnGap)
		}
	}
	sb.WriteString(boxTopLeft)
	sb.WriteString(strings.Repeat(" ", innerWidth))
	sb.WriteString(boxTopRight)
	sb.WriteByte('\n')
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			line[col] = cells[col][row]
		}
		sb.WriteString(boxVertical)
		sb.WriteByte(' ')
		sb.WriteString(strings.Join(line, columnGap))
		sb.WriteByte(' ')
		sb.WriteString(boxVertical)
		sb.WriteByte('\n')
	}
	sb.WriteString(boxBottomLeft)
	sb.WriteString(strings.Repeat(" ", innerWidth))
	sb.WriteString(boxBottomRight)
	sb.WriteByte('\n')

	return sb.String()
}

// fractionDigits returns the number of digits after the decimal point of a
// plain 'f' formatted number, zero when there is no point.
func fractionDigits(s string) int {
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		return len(s) - dot - 1
	}

	return 0
}

// padFraction appends a decimal point if missing and pads the fraction with
// trailing zeros up to want digits.
func padFraction(s string, want int) string {
	have := fractionDigits(s)
	if have == 0 && !strings.ContainsRune(s, '.') {
		s += "."
	}
	if want > have {
		s += strings.Repeat("0", want-have)
	}

	return s
}
