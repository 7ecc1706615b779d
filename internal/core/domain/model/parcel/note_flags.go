package parcel

import "strings"

// NoteFlag is a normalized handling instruction detected in free-text notes.
type NoteFlag string

const (
	FlagFragile        NoteFlag = "fragile"
	FlagMornings       NoteFlag = "mornings"
	FlagReceptionDesk  NoteFlag = "reception_desk"
	FlagUrgent         NoteFlag = "urgent"
	FlagNoCall         NoteFlag = "no_call"
	FlagCashOnDelivery NoteFlag = "cash_on_delivery"
	FlagSaturday       NoteFlag = "saturday"
	FlagSunday         NoteFlag = "sunday"
)

// noteFlagPatterns maps each flag to the substrings that trigger it.
// Notes are written by warehouse staff in Spanish, with and without
// accents, so both spellings are matched.
var noteFlagPatterns = []struct {
	flag     NoteFlag
	keywords []string
}{
	{FlagFragile, []string{"fragil", "frágil"}},
	{FlagMornings, []string{"manana", "mañana", "mañanas"}},
	{FlagReceptionDesk, []string{"porteria", "portería"}},
	{FlagUrgent, []string{"urgente"}},
	{FlagNoCall, []string{"no llamar"}},
	{FlagCashOnDelivery, []string{"contraentrega", "contra entrega"}},
	{FlagSaturday, []string{"sabado", "sábado"}},
	{FlagSunday, []string{"domingo"}},
}

// NoteFlags scans the package's notes for known handling patterns and
// returns the normalized flags, in declaration order. Matching is
// case-insensitive substring search; an empty notes field yields nil.
func (p *Package) NoteFlags() []NoteFlag {
	return DetectNoteFlags(p.notes)
}

// DetectNoteFlags is the standalone form of NoteFlags, usable on raw note
// text before a package exists (e.g. import previews).
func DetectNoteFlags(notes string) []NoteFlag {
	if notes == "" {
		return nil
	}

	text := strings.ToLower(notes)
	var flags []NoteFlag
	for _, p := range noteFlagPatterns {
		for _, keyword := range p.keywords {
			if strings.Contains(text, keyword) {
				flags = append(flags, p.flag)
				break
			}
		}
	}
	return flags
}
