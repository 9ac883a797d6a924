package entity

import "fmt"

// PaletteSize is the number of distinct reel symbols
const PaletteSize = 10

// Symbol is an index into the fixed symbol palette
type Symbol int

const (
	SymbolApple Symbol = iota
	SymbolBanana
	SymbolCherry
	SymbolGrape
	SymbolLemon
	SymbolOrange
	SymbolPear
	SymbolPineapple
	SymbolStrawberry
	SymbolWatermelon
)

var symbolNames = [PaletteSize]string{
	"apple",
	"banana",
	"cherry",
	"grape",
	"lemon",
	"orange",
	"pear",
	"pineapple",
	"strawberry",
	"watermelon",
}

// Valid reports whether the symbol indexes the palette
func (s Symbol) Valid() bool {
	return s >= 0 && int(s) < PaletteSize
}

// String returns the palette name of the symbol
func (s Symbol) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Symbol(%d)", int(s))
	}
	return symbolNames[s]
}

// SymbolSource produces reel symbols
type SymbolSource interface {
	Next() Symbol
}
