package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Warn
	Info
	Progress
	Palette
	Contrast
	File
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "💥",
		nerd:    "",
		plain:   "✗",
		kaomoji: "(╯°□°）╯︵ ┻━┻",
		squares: "🟥",
	},
	Warn: {
		emoji:   "⚠️",
		nerd:    "",
		plain:   "!",
		kaomoji: "(・_・;)",
		squares: "🟨",
	},
	Info: {
		emoji:   "💡",
		nerd:    "",
		plain:   "i",
		kaomoji: "(・ω・)",
		squares: "🟦",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "~",
		kaomoji: "(・_・ヾ",
		squares: "🟪",
	},
	Palette: {
		emoji:   "🎨",
		nerd:    "",
		plain:   "#",
		kaomoji: "(ﾉ◕ヮ◕)ﾉ*:･ﾟ✧",
		squares: "🟧",
	},
	Contrast: {
		emoji:   "🌗",
		nerd:    "",
		plain:   "%",
		kaomoji: "(◐‿◑)",
		squares: "⬛",
	},
	File: {
		emoji:   "📄",
		nerd:    "",
		plain:   ">",
		kaomoji: "φ(．．)",
		squares: "⬜",
	},
}
