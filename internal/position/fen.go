package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shuuro/shuuro-engine/internal/boardx"
)

// pieceLetters maps the piece types this oracle knows about to their
// SFEN letters. The extended Shuuro set needs letters the standard
// chess alphabet doesn't carry: C for Chancellor, A for ArchBishop, G
// for Giraffe. '*' marks a plinth square rather than a piece.
var pieceLetters = map[boardx.PieceType]byte{
	boardx.King:       'k',
	boardx.Queen:      'q',
	boardx.Rook:       'r',
	boardx.Bishop:     'b',
	boardx.Knight:     'n',
	boardx.Pawn:       'p',
	boardx.Chancellor: 'c',
	boardx.ArchBishop: 'a',
	boardx.Giraffe:    'g',
}

var letterToPieceType map[byte]boardx.PieceType

func init() {
	letterToPieceType = make(map[byte]boardx.PieceType, len(pieceLetters))
	for pt, letter := range pieceLetters {
		letterToPieceType[letter] = pt
	}
}

// SFEN renders the position as "<rows> <side>", ranks high-to-low,
// files low-to-high, matching the row order SetSFEN expects back.
func (p Position) SFEN() string {
	g := p.Geometry
	var rows []string
	for rank := g.Size - 1; rank >= 0; rank-- {
		var row strings.Builder
		empty := 0
		for file := 0; file < g.Size; file++ {
			sq := g.SquareAt(file, rank)
			if p.plinth.IsSet(sq) {
				if empty > 0 {
					row.WriteString(strconv.Itoa(empty))
					empty = 0
				}
				row.WriteByte('*')
				continue
			}
			pc := p.PieceAt(sq)
			if pc.IsNone() {
				empty++
				continue
			}
			if empty > 0 {
				row.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			letter := pieceLetters[pc.Type]
			if pc.Color == boardx.White {
				letter = byte(strings.ToUpper(string(letter))[0])
			}
			row.WriteByte(letter)
		}
		if empty > 0 {
			row.WriteString(strconv.Itoa(empty))
		}
		rows = append(rows, row.String())
	}
	side := "w"
	if p.SideToMove == boardx.Black {
		side = "b"
	}
	return strings.Join(rows, "/") + " " + side
}

// SetSFEN builds a new Position on geometry g from s, a "<rows> <side>"
// string in the format SFEN produces.
func SetSFEN(g boardx.Geometry, s string) (Position, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Position{}, fmt.Errorf("position: malformed sfen %q", s)
	}
	p := New(g)
	rows := strings.Split(fields[0], "/")
	if len(rows) != g.Size {
		return Position{}, fmt.Errorf("position: sfen %q has %d rows, want %d", s, len(rows), g.Size)
	}
	for i, row := range rows {
		rank := g.Size - 1 - i
		file := 0
		chars := []byte(row)
		for idx := 0; idx < len(chars); idx++ {
			ch := chars[idx]
			if file >= g.Size {
				return Position{}, fmt.Errorf("position: sfen %q row %d overflows board width", s, i)
			}
			switch {
			case ch >= '0' && ch <= '9':
				run := 0
				for idx < len(chars) && chars[idx] >= '0' && chars[idx] <= '9' {
					run = run*10 + int(chars[idx]-'0')
					idx++
				}
				idx--
				file += run
			case ch == '*':
				p.setPlinth(g.SquareAt(file, rank))
				file++
			default:
				lower := ch
				color := boardx.Black
				if ch >= 'A' && ch <= 'Z' {
					lower = ch - 'A' + 'a'
					color = boardx.White
				}
				pt, ok := letterToPieceType[lower]
				if !ok {
					return Position{}, fmt.Errorf("position: sfen %q has unknown piece letter %q", s, string(ch))
				}
				p.place(g.SquareAt(file, rank), pt, color)
				file++
			}
		}
	}
	switch fields[1] {
	case "w":
		p.SideToMove = boardx.White
	case "b":
		p.SideToMove = boardx.Black
	default:
		return Position{}, fmt.Errorf("position: sfen %q has unknown side to move %q", s, fields[1])
	}
	return p, nil
}
