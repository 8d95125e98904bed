package constants

// Discord constants
const (
	// DiscordMaxMessageLength is the maximum character limit for Discord messages
	DiscordMaxMessageLength = 2000
)

// External info links
const (
	// InfoURLTemplate links a monster to its PuzzleDragonX page by NA number
	InfoURLTemplate = "http://www.puzzledragonx.com/en/monster.asp?n=%d"

	// PortraitURLTemplate is the CDN location of monster portrait icons
	PortraitURLTemplate = "https://f002.backblazeb2.com/file/dadguide-data/media/icons/%05d.png"
)
