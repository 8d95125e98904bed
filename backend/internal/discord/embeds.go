package discord

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"monsterdex/backend/internal/constants"
	"monsterdex/backend/internal/dex"
	"monsterdex/backend/pkg/errors"
)

const defaultEmbedColor = 0x5865F2

// attributeColors maps a primary attribute to its embed accent color
var attributeColors = map[string]int{
	"fire":  0xD0342C,
	"water": 0x2E86C1,
	"wood":  0x28B463,
	"light": 0xF1C40F,
	"dark":  0x8E44AD,
}

// monsterHeader renders the standard one-line heading for an entity
func monsterHeader(e *dex.Entity) string {
	header := fmt.Sprintf("No. %d %s", e.NaID, e.NameNA)
	if !e.OnNA {
		header += " (JP only)"
	}
	return header
}

func embedColor(e *dex.Entity) int {
	if len(e.Attributes) > 0 {
		if color, ok := attributeColors[strings.ToLower(e.Attributes[0])]; ok {
			return color
		}
	}
	return defaultEmbedColor
}

// infoEmbed builds the full catalog card for an entity
func infoEmbed(e *dex.Entity) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Attribute",
			Value:  strings.Join(e.Attributes, "/"),
			Inline: true,
		},
		{
			Name:   "Type",
			Value:  strings.Join(e.Types, "/"),
			Inline: true,
		},
		{
			Name:   "Rarity / Cost / Max Lv",
			Value:  fmt.Sprintf("%d / %d / %d", e.Rarity, e.Cost, e.MaxLevel),
			Inline: true,
		},
		{
			Name:   "Stats (HP / ATK / RCV)",
			Value:  fmt.Sprintf("%d / %d / %d (weighted %d)", e.HP, e.Atk, e.Rcv, e.Weighted),
			Inline: false,
		},
	}

	if len(e.Awakenings) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Awakenings",
			Value:  strings.Join(e.Awakenings, ", "),
			Inline: false,
		})
	}
	if e.ActiveSkill != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Active Skill: " + e.ActiveSkill,
			Value:  skillText(e.ActiveSkillDesc),
			Inline: false,
		})
	}
	if e.LeaderSkill != "" {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Leader Skill: " + e.LeaderSkill,
			Value:  skillText(e.LeaderSkillDesc),
			Inline: false,
		})
	}

	return &discordgo.MessageEmbed{
		Title:  monsterHeader(e),
		URL:    fmt.Sprintf(constants.InfoURLTemplate, e.NaID),
		Color:  embedColor(e),
		Fields: fields,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: fmt.Sprintf(constants.PortraitURLTemplate, e.ID),
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: footerText(e),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// evosEmbed lists every member of the entity's evolution family
func evosEmbed(e *dex.Entity, family []*dex.Entity) *discordgo.MessageEmbed {
	lines := make([]string, 0, len(family))
	for _, member := range family {
		line := monsterHeader(member)
		if member.ID == e.ID {
			line = "**" + line + "**"
		}
		lines = append(lines, line)
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Evolution family of %s", e.NameNA),
		URL:         fmt.Sprintf(constants.InfoURLTemplate, e.NaID),
		Color:       embedColor(e),
		Description: strings.Join(lines, "\n"),
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d members", len(family)),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// debugEmbed exposes the resolution internals for an entity
func debugEmbed(e *dex.Entity, trail []string) *discordgo.MessageEmbed {
	prefixes := make([]string, len(e.Prefixes))
	copy(prefixes, e.Prefixes)
	sort.Strings(prefixes)

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Canonical nickname",
			Value:  orNone(e.CanonicalNickname),
			Inline: true,
		},
		{
			Name:   "Raw nickname",
			Value:  orNone(e.RawNickname),
			Inline: true,
		},
		{
			Name:   "Prefixes",
			Value:  orNone(strings.Join(prefixes, ", ")),
			Inline: true,
		},
		{
			Name:   "Tier",
			Value:  e.Tier.String(),
			Inline: true,
		},
		{
			Name:   "Family size",
			Value:  fmt.Sprintf("%d", e.FamilySize),
			Inline: true,
		},
	}
	if len(trail) > 0 {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Resolution trail",
			Value:  strings.Join(trail, "\n"),
			Inline: false,
		})
	}

	return &discordgo.MessageEmbed{
		Title:     monsterHeader(e),
		Color:     embedColor(e),
		Fields:    fields,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

func footerText(e *dex.Entity) string {
	if e.CanonicalNickname == "" {
		return fmt.Sprintf("tier %s", e.Tier)
	}
	return fmt.Sprintf("nickname %s, tier %s", e.CanonicalNickname, e.Tier)
}

func skillText(desc string) string {
	if desc == "" {
		return "No description"
	}
	return desc
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}

// lookupErrorText picks the user-facing text for a failed lookup. Query
// failures get the full failure message; anything else means the index is
// not serving yet.
func lookupErrorText(err error, prefix string) string {
	if errors.IsResolveFailure(err) {
		return failureMessage(err, prefix)
	}
	return "Monster index is not ready yet, try again in a moment."
}

// failureMessage explains a failed lookup and points at the help command
func failureMessage(err error, prefix string) string {
	return fmt.Sprintf("Lookup failed: %s.\nTry one of `<id>`, `<name>`, or `[argbld]/[rgbld] <name>`. Unexpected results? Use %shelpid for more info.", err, prefix)
}

// helpMessage renders the command reference and query syntax guide
func helpMessage(prefix string) string {
	var b strings.Builder
	b.WriteString("**Monster lookup commands**\n")
	fmt.Fprintf(&b, "`%shelpid` - shows this message\n", prefix)
	fmt.Fprintf(&b, "`%sid <query>` - full catalog card for the best match\n", prefix)
	fmt.Fprintf(&b, "`%sidna <query>` - same, restricted to monsters released in NA\n", prefix)
	fmt.Fprintf(&b, "`%slookup <query>` - alias for id\n", prefix)
	fmt.Fprintf(&b, "`%sjpname <query>` - show the Japanese name\n", prefix)
	fmt.Fprintf(&b, "`%sevos <query>` - list the full evolution family\n", prefix)
	fmt.Fprintf(&b, "`%sdebugid <query>` - show how the query resolved\n", prefix)
	b.WriteString("\n**Options for <query>**\n")
	fmt.Fprintf(&b, "`<id>` : find a monster by number\n  `%sid 1234`\n", prefix)
	fmt.Fprintf(&b, "`<name>` : take the best guess for a monster, most recent first\n  `%sid kali`\n", prefix)
	b.WriteString("`[argbld]/[rgbld] <name>` : limit by attribute letters (r/b/g/l/d) or awoken form\n")
	fmt.Fprintf(&b, "  `%sid aares` or `%sid a ares` - explicitly the awoken form\n", prefix, prefix)
	fmt.Fprintf(&b, "  `%sid rd ares` or `%sid r/d ares` - the fire/dark evo\n", prefix, prefix)
	fmt.Fprintf(&b, "  `%sid revo lilith` - the reincarnated form, `chibi` for the mini form\n", prefix)
	return b.String()
}
