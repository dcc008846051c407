package canvas

// Crossing glyphs.
const (
	CrossRune         = '┼'
	DiagonalCrossRune = '╳'
)

// CharacterMerger decides what a cell shows when a glyph is drawn over
// another one.
type CharacterMerger struct {
	mergeMap map[mergePair]rune
}

type mergePair struct {
	existing rune
	new      rune
}

// NewCharacterMerger creates a merger with the crossing rules for edge
// glyphs.
func NewCharacterMerger() *CharacterMerger {
	m := &CharacterMerger{
		mergeMap: make(map[mergePair]rune),
	}
	m.initializeMergeRules()
	return m
}

// Merge combines two characters. Nodes always win over lines, lines win
// over dots, and crossing lines become a crossing glyph. Anything else
// takes the newer character.
func (m *CharacterMerger) Merge(existing, new rune) rune {
	if existing == ' ' || existing == '\x00' || existing == new {
		return new
	}

	if existing == NodeRune || new == NodeRune {
		return NodeRune
	}

	if new == DotRune {
		return existing
	}

	if merged, ok := m.mergeMap[mergePair{existing, new}]; ok {
		return merged
	}
	if merged, ok := m.mergeMap[mergePair{new, existing}]; ok {
		return merged
	}

	return new
}

func (m *CharacterMerger) initializeMergeRules() {
	m.mergeMap[mergePair{HorizontalRune, VerticalRune}] = CrossRune
	m.mergeMap[mergePair{FallingRune, RisingRune}] = DiagonalCrossRune

	// A crossing stays a crossing.
	for _, r := range []rune{HorizontalRune, VerticalRune} {
		m.mergeMap[mergePair{CrossRune, r}] = CrossRune
	}
	for _, r := range []rune{FallingRune, RisingRune} {
		m.mergeMap[mergePair{DiagonalCrossRune, r}] = DiagonalCrossRune
	}
}
