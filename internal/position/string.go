package position

import (
	"fmt"
	"strings"

	"github.com/shuuro/shuuro-engine/internal/boardx"
)

// String renders the position for the protocol loop's post-command
// board print (spec.md §6.1), ranks high-to-low like the teacher's own
// Position.String, but showing plinths ('*') alongside pieces since
// this variant's terrain has no equivalent in standard chess.
func (p Position) String() string {
	g := p.Geometry
	var b strings.Builder
	b.WriteString("\n")
	for rank := g.Size - 1; rank >= 0; rank-- {
		fmt.Fprintf(&b, "%2d  ", rank+1)
		for file := 0; file < g.Size; file++ {
			sq := g.SquareAt(file, rank)
			switch {
			case p.plinth.IsSet(sq):
				b.WriteString("* ")
			case p.PieceAt(sq).IsNone():
				b.WriteString(". ")
			default:
				b.WriteString(pieceGlyph(p.PieceAt(sq)) + " ")
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString("\n    ")
	for file := 0; file < g.Size; file++ {
		b.WriteByte(fileLetter(file))
		b.WriteByte(' ')
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "\nSide to move: %s\n", sideName(p.SideToMove))
	return b.String()
}

func pieceGlyph(pc boardx.Piece) string {
	letter := pieceLetters[pc.Type]
	if pc.Color == boardx.White {
		letter = byte(strings.ToUpper(string(letter))[0])
	}
	return string(letter)
}

func fileLetter(file int) byte {
	return byte('a' + file)
}

func sideName(c boardx.Color) string {
	if c == boardx.White {
		return "white"
	}
	return "black"
}
