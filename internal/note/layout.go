package note

import "fmt"

// BlockKind tags one element of the note layout.
type BlockKind int

const (
	BlockHeading BlockKind = iota
	BlockParagraph
	BlockLabel
	BlockText
	BlockList
)

// Block is one element of the note layout. Text blocks hold free text that
// may be empty or span several lines; list blocks hold Items.
type Block struct {
	Kind  BlockKind
	Text  string
	Items []string
}

// Document is the structured note layout shared by every output format.
type Document struct {
	Title  string
	Blocks []Block
}

// EmptyList is rendered in place of an empty list section.
const EmptyList = "–"

const nbsp = "\u00a0"

// blank reports whether free text gets the empty placeholder. Whitespace is
// user text and renders as typed.
func blank(text string) bool {
	return text == ""
}

// Layout places the record into the canonical section order: heading,
// attendance, client update, themes, interventions, observations, plan and
// the next session line.
func Layout(rec Record) Document {
	label := func(s string) Block { return Block{Kind: BlockLabel, Text: s} }
	text := func(s string) Block { return Block{Kind: BlockText, Text: s} }
	list := func(items []string) Block {
		return Block{Kind: BlockList, Items: append([]string(nil), items...)}
	}
	return Document{
		Title: "Notes",
		Blocks: []Block{
			{Kind: BlockHeading, Text: "Notes"},
			{Kind: BlockParagraph, Text: attendance(rec)},
			label("The client provided an update on the events since last session:"),
			text(rec.ClientUpdate),
			label("Significant themes within the session focused on:"),
			text(rec.Themes),
			label("Interventions included:"),
			list(rec.Interventions),
			label("Observations/Client Response:"),
			list(rec.Observations),
			label("Plan:"),
			text(rec.Plan),
			label("The next session was booked for:"),
			{Kind: BlockParagraph, Text: "Date of next session - " + rec.NextSession},
		},
	}
}

func attendance(rec Record) string {
	return fmt.Sprintf("The client attended the scheduled session on by %s. The session lasted approximately %d minutes.",
		rec.Mode, rec.Duration)
}
