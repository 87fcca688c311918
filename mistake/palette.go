package mistake

// Palette is the set of characters eligible for insertion and replacement.
type Palette []rune

// Character sets shipped with the package.
const (
	// KazakhCyrillic is the full Kazakh Cyrillic alphabet, both cases.
	KazakhCyrillic = "АӘБВГҒДЕЁЖЗИЙКҚЛМНҢОӨПРСТУҰҮФХҺЦЧШЩЫІЭЮЯ" +
		"абвгғдеёжзийкқлмнңоөпрстуұүфхһцчшщыіэюя"

	// ASCIILetters is a-z followed by A-Z.
	ASCIILetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NewPalette builds a Palette from the characters of s. Duplicates are kept,
// so a character listed twice is drawn twice as often.
func NewPalette(s string) Palette {
	return Palette([]rune(s))
}

// pick draws one character uniformly. The palette must be non-empty.
func (p Palette) pick(r Rand) string {
	return string(p[r.IntN(len(p))])
}

// String returns the palette characters in order.
func (p Palette) String() string {
	return string(p)
}
