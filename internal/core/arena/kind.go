package arena

import "fmt"

// Kind is the sign an agent currently carries.
type Kind uint8

const (
	Rock Kind = iota
	Paper
	Scissors
)

// Kinds lists every kind in spawn order.
var Kinds = [...]Kind{Rock, Paper, Scissors}

var kindNames = [...]string{
	Rock:     "ROCK",
	Paper:    "PAPER",
	Scissors: "SCISSORS",
}

var kindGlyphs = [...]string{
	Rock:     "🪨",
	Paper:    "📜",
	Scissors: "✂️",
}

var kindRunes = [...]rune{
	Rock:     'R',
	Paper:    'P',
	Scissors: 'S',
}

// winners[a][b] is the kind both agents take after a meets b.
var winners = [3][3]Kind{
	Rock:     {Rock: Rock, Paper: Paper, Scissors: Rock},
	Paper:    {Rock: Paper, Paper: Paper, Scissors: Scissors},
	Scissors: {Rock: Rock, Paper: Scissors, Scissors: Scissors},
}

// Winner returns the kind that wins when a meets b. The table is symmetric.
func Winner(a, b Kind) Kind {
	return winners[a][b]
}

func (k Kind) Valid() bool { return k <= Scissors }

func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// Glyph is the emoji used by graphical renderers.
func (k Kind) Glyph() string { return kindGlyphs[k] }

// Rune is a single-cell fallback for terminals without emoji support.
func (k Kind) Rune() rune { return kindRunes[k] }

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid kind %d", uint8(k))
	}
	return []byte(kindNames[k]), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind accepts the upper-case kind names.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if kindNames[k] == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown kind %q", s)
}
