// Package morse converts text to and from International Morse Code and
// schedules Morse strings as timed tone events.
package morse

const (
	Dot           = '.'
	Dash          = '-'
	LetterGap     = ' '
	WordSeparator = '/'
)

// Entry is a single character/code pair of the code table.
type Entry struct {
	Char rune
	Code string
}

var canonical = []Entry{
	{'A', ".-"}, {'B', "-..."}, {'C', "-.-."}, {'D', "-.."}, {'E', "."},
	{'F', "..-."}, {'G', "--."}, {'H', "...."}, {'I', ".."}, {'J', ".---"},
	{'K', "-.-"}, {'L', ".-.."}, {'M', "--"}, {'N', "-."}, {'O', "---"},
	{'P', ".--."}, {'Q', "--.-"}, {'R', ".-."}, {'S', "..."}, {'T', "-"},
	{'U', "..-"}, {'V', "...-"}, {'W', ".--"}, {'X', "-..-"}, {'Y', "-.--"},
	{'Z', "--.."},
	{'0', "-----"}, {'1', ".----"}, {'2', "..---"}, {'3', "...--"}, {'4', "....-"},
	{'5', "....."}, {'6', "-...."}, {'7', "--..."}, {'8', "---.."}, {'9', "----."},
	{'.', ".-.-.-"}, {',', "--..--"}, {'?', "..--.."}, {'\'', ".----."},
	{'!', "-.-.--"}, {'/', "-..-."}, {'(', "-.--."}, {')', "-.--.-"},
	{'&', ".-..."}, {':', "---..."}, {';', "-.-.-."}, {'=', "-...-"},
	{'+', ".-.-."}, {'-', "-....-"}, {'_', "..--.-"}, {'"', ".-..-."},
	{'$', "...-..-"}, {'@', ".--.-."},
	{' ', "/"},
}

// CodeTable is an immutable bidirectional mapping between upper case
// characters and their Morse codes.
type CodeTable struct {
	entries   []Entry
	toMorse   map[rune]string
	fromMorse map[string]rune
}

var defaultTable = newCodeTable(canonical)

// Table returns the shared code table.
func Table() *CodeTable {
	return defaultTable
}

func newCodeTable(entries []Entry) *CodeTable {
	t := &CodeTable{
		entries:   entries,
		toMorse:   make(map[rune]string, len(entries)),
		fromMorse: make(map[string]rune, len(entries)),
	}
	for _, e := range entries {
		if _, dup := t.toMorse[e.Char]; dup {
			panic("morse: duplicate character " + string(e.Char))
		}
		if _, dup := t.fromMorse[e.Code]; dup {
			panic("morse: duplicate code " + e.Code)
		}
		t.toMorse[e.Char] = e.Code
		t.fromMorse[e.Code] = e.Char
	}
	return t
}

// EncodeOf returns the code for an upper case character.
func (t *CodeTable) EncodeOf(r rune) (string, bool) {
	code, ok := t.toMorse[r]
	return code, ok
}

// DecodeOf returns the character for a code. The word separator "/" maps to
// the space character.
func (t *CodeTable) DecodeOf(code string) (rune, bool) {
	r, ok := t.fromMorse[code]
	return r, ok
}

// Entries returns a copy of the table in canonical order.
func (t *CodeTable) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

func (t *CodeTable) Len() int {
	return len(t.entries)
}
