package dotmatrix

import (
	"io"
)

// Braille represents an 8 dot braille pattern in x,y coordinates space. Eg:
//
//	+----------+
//	|(0,0)(1,0)|
//	|(0,1)(1,1)|
//	|(0,2)(1,2)|
//	|(0,3)(1,3)|
//	+----------+
type Braille [2][4]int

// Rune maps each point in braille to a dot identifier and
// calculates the corresponding unicode symbol.
//
//	+------+
//	|(1)(4)|
//	|(2)(5)|
//	|(3)(6)|
//	|(7)(8)|
//	+------+
//
// See https://en.wikipedia.org/wiki/Braille_Patterns#Identifying.2C_naming_and_ordering)
func (b Braille) Rune() rune {
	lowEndian := [8]int{b[0][0], b[0][1], b[0][2], b[1][0], b[1][1], b[1][2], b[0][3], b[1][3]}
	var v int
	for i, x := range lowEndian {
		v += x << uint(i)
	}
	return rune(v) + '\u2800'
}

func (b Braille) String() string {
	return string(b.Rune())
}

// EncodeBraille writes m to w as lines of braille symbols, one symbol per 2x4
// block of pixels. Filled pixels become raised dots. It is a quick way to
// eyeball a mask in a terminal.
func EncodeBraille(w io.Writer, m *Mask) error {
	for py := 0; py < m.Height; py += 4 {
		var line []byte
		for px := 0; px < m.Width; px += 2 {
			var b Braille
			// Draw left-right, top-bottom. Blocks hanging off the right or
			// bottom edge read as unfilled.
			for y := 0; y < 4; y++ {
				for x := 0; x < 2; x++ {
					if m.At(px+x, py+y) {
						b[x][y] = 1
					}
				}
			}
			line = append(line, b.String()...)
		}
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}
