package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Fail Icon = iota
	Success
	Progress
	Favorite
	Trailer
	Search
	Offline
	Score
)

var icons = map[Icon]*iconDef{
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "X",
		kaomoji: "(╥﹏╥)",
		squares: "🟥",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "OK",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Progress: {
		emoji:   "👾",
		nerd:    "",
		plain:   "...",
		kaomoji: "┌(ㆆ㉨ㆆ)ʃ",
		squares: "🟦",
	},
	Favorite: {
		emoji:   "⭐",
		nerd:    "",
		plain:   "*",
		kaomoji: "(♡ω♡)",
		squares: "🟨",
	},
	Trailer: {
		emoji:   "🎬",
		nerd:    "",
		plain:   ">",
		kaomoji: "(⌐■_■)",
		squares: "🟪",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "?",
		kaomoji: "(・_・ヾ",
		squares: "🟫",
	},
	Offline: {
		emoji:   "📴",
		nerd:    "",
		plain:   "offline",
		kaomoji: "(×_×)",
		squares: "⬛",
	},
	Score: {
		emoji:   "📈",
		nerd:    "",
		plain:   "#",
		kaomoji: "(•̀ᴗ•́)",
		squares: "🟧",
	},
}
