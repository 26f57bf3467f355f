package core

import (
	"strings"
	"testing"
)

func runeAt(s *Screen, x, y int) rune {
	return s.GetCell(x, y).Rune
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	want := strings.Repeat("      \n", 2) + "      "
	if got := s.String(); got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestSetColoredClipsOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 4}} {
		s.SetColored(p[0], p[1], 'X', ColorRed)
	}
	if strings.ContainsRune(s.String(), 'X') {
		t.Error("out-of-bounds writes should be dropped")
	}
	if got := s.GetCell(10, 10); got != blankCell {
		t.Errorf("GetCell outside = %+v, expected blank", got)
	}

	s.SetColored(1, 2, 'X', ColorRed)
	if got := s.GetCell(1, 2); got.Rune != 'X' || got.Color != ColorRed {
		t.Errorf("GetCell(1, 2) = %+v", got)
	}
}

func TestFillAndClear(t *testing.T) {
	s := NewScreen(3, 2)
	s.Fill(' ', ColorBlue)
	if got := s.GetCell(2, 1); got.Color != ColorBlue {
		t.Errorf("Fill color = %v, expected blue", got.Color)
	}
	s.Clear()
	if got := s.GetCell(2, 1); got != blankCell {
		t.Errorf("after Clear = %+v, expected blank", got)
	}
}

func TestResize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want string
	}{
		{"grow keeps content", 4, 3, "ab  \ncd  \n    "},
		{"shrink crops", 1, 1, "a"},
		{"same size", 2, 2, "ab\ncd"},
		{"negative becomes empty", -3, 2, "\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(2, 2)
			s.DrawTextColored(0, 0, "ab", ColorDefault)
			s.DrawTextColored(0, 1, "cd", ColorDefault)
			s.Resize(tc.w, tc.h)
			if got := s.String(); got != tc.want {
				t.Errorf("String() = %q, expected %q", got, tc.want)
			}
		})
	}
}

func TestDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(7, 0, "Hello", ColorGreen)
	if got := strings.Split(s.String(), "\n")[0]; got != "       Hel" {
		t.Errorf("clipped row = %q", got)
	}

	s.DrawTextCentered(2, "Hi", ColorGreen)
	if runeAt(s, 4, 2) != 'H' || runeAt(s, 5, 2) != 'i' {
		t.Errorf("centered row = %q", strings.Split(s.String(), "\n")[2])
	}

	// Centering counts runes, not bytes
	s.DrawTextCentered(1, "▲▲", ColorGreen)
	if runeAt(s, 4, 1) != '▲' || runeAt(s, 5, 1) != '▲' {
		t.Errorf("centered multibyte row = %q", strings.Split(s.String(), "\n")[1])
	}
}

func TestDrawShapes(t *testing.T) {
	s := NewScreen(8, 6)
	s.DrawRect(NewRect(1, 1, 3, 2), '#', ColorGreen)
	s.DrawHLine(5, 0, 10, '-', ColorRed)
	s.DrawBox(NewRect(4, 2, 4, 4), ColorWhite)

	want := strings.Join([]string{
		"     ---",
		" ###    ",
		" ###┌──┐",
		"    │  │",
		"    │  │",
		"    └──┘",
	}, "\n")
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nexpected\n%s", got, want)
	}
	if got := s.GetCell(2, 1).Color; got != ColorGreen {
		t.Errorf("rect color = %v, expected green", got)
	}
}
