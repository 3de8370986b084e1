// Package render draws a board of glyphs as text.
package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	apperrors "skirmish/internal/errors"
)

const border = '*'

// Board writes glyphs (row-major, space for an empty cell) as a bordered grid
// of the given width.
func Board(w io.Writer, glyphs []rune, width int) error {
	if width <= 0 || len(glyphs)%width != 0 {
		return apperrors.New(apperrors.CodeIllegalArgument,
			fmt.Sprintf("render: %d glyphs do not fill rows of width %d", len(glyphs), width))
	}
	bw := bufio.NewWriter(w)
	edge := strings.Repeat(string(border), width+2)
	fmt.Fprintln(bw, edge)
	for start := 0; start < len(glyphs); start += width {
		bw.WriteRune(border)
		for _, g := range glyphs[start : start+width] {
			bw.WriteRune(g)
		}
		bw.WriteRune(border)
		bw.WriteByte('\n')
	}
	fmt.Fprintln(bw, edge)
	return bw.Flush()
}

// String is Board into a string.
func String(glyphs []rune, width int) (string, error) {
	var sb strings.Builder
	if err := Board(&sb, glyphs, width); err != nil {
		return "", err
	}
	return sb.String(), nil
}
