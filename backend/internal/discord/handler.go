package discord

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"monsterdex/backend/internal/constants"
	"monsterdex/backend/internal/dex"
)

// Resolver is the slice of the resolution service the bot needs
type Resolver interface {
	Resolve(query string, region dex.Region) (*dex.Entity, []string, error)
	Current() (*dex.Snapshot, error)
	Refresh(ctx context.Context) (string, error)
}

// Handler routes prefix commands to catalog lookups
type Handler struct {
	resolver Resolver
	prefix   string
	logger   *zap.Logger
}

// NewHandler creates a new Discord command handler
func NewHandler(resolver Resolver, prefix string, logger *zap.Logger) *Handler {
	return &Handler{
		resolver: resolver,
		prefix:   prefix,
		logger:   logger,
	}
}

// HandleMessage processes a Discord message
func (h *Handler) HandleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore messages from the bot itself
	if m.Author.ID == s.State.User.ID {
		return
	}
	if m.Author.Bot {
		return
	}

	command, args, ok := parseCommand(m.Content, h.prefix)
	if !ok {
		return
	}

	h.logger.Info("Processing lookup command",
		zap.String("command", command),
		zap.String("args", args),
		zap.String("user_id", m.Author.ID),
		zap.String("channel_id", m.ChannelID),
	)

	switch command {
	case "id", "lookup":
		h.handleLookup(s, m.ChannelID, args, dex.RegionAll)
	case "idna":
		h.handleLookup(s, m.ChannelID, args, dex.RegionNA)
	case "jpname":
		h.handleJPName(s, m.ChannelID, args)
	case "evos":
		h.handleEvos(s, m.ChannelID, args)
	case "debugid":
		h.handleDebug(s, m.ChannelID, args)
	case "helpid":
		h.sendText(s, m.ChannelID, helpMessage(h.prefix))
	}
}

// parseCommand splits a raw message into command and argument text. Returns
// ok=false for messages that are not commands for this bot.
func parseCommand(content, prefix string) (string, string, bool) {
	content = strings.TrimSpace(content)
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", "", false
	}

	fields := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(fields) == 0 {
		return "", "", false
	}
	return strings.ToLower(fields[0]), strings.Join(fields[1:], " "), true
}

func (h *Handler) handleLookup(s *discordgo.Session, channelID, query string, region dex.Region) {
	e, _, err := h.resolver.Resolve(query, region)
	if err != nil {
		h.sendText(s, channelID, lookupErrorText(err, h.prefix))
		return
	}
	h.sendEmbed(s, channelID, infoEmbed(e))
}

func (h *Handler) handleJPName(s *discordgo.Session, channelID, query string) {
	e, _, err := h.resolver.Resolve(query, dex.RegionAll)
	if err != nil {
		h.sendText(s, channelID, lookupErrorText(err, h.prefix))
		return
	}
	h.sendText(s, channelID, monsterHeader(e)+"\n"+e.NameJP)
}

func (h *Handler) handleEvos(s *discordgo.Session, channelID, query string) {
	e, _, err := h.resolver.Resolve(query, dex.RegionAll)
	if err != nil {
		h.sendText(s, channelID, lookupErrorText(err, h.prefix))
		return
	}

	snap, err := h.resolver.Current()
	if err != nil {
		h.sendText(s, channelID, lookupErrorText(err, h.prefix))
		return
	}
	h.sendEmbed(s, channelID, evosEmbed(e, snap.FamilyOf(e.ID)))
}

func (h *Handler) handleDebug(s *discordgo.Session, channelID, query string) {
	e, trail, err := h.resolver.Resolve(query, dex.RegionAll)
	if err != nil {
		h.sendText(s, channelID, lookupErrorText(err, h.prefix))
		return
	}
	h.sendEmbed(s, channelID, debugEmbed(e, trail))
}

func (h *Handler) sendText(s *discordgo.Session, channelID, text string) {
	if len(text) > constants.DiscordMaxMessageLength {
		text = text[:constants.DiscordMaxMessageLength]
	}
	if _, err := s.ChannelMessageSend(channelID, text); err != nil {
		h.logger.Error("Failed to send Discord message",
			zap.String("channel_id", channelID),
			zap.Error(err),
		)
	}
}

func (h *Handler) sendEmbed(s *discordgo.Session, channelID string, embed *discordgo.MessageEmbed) {
	if _, err := s.ChannelMessageSendEmbed(channelID, embed); err != nil {
		h.logger.Error("Failed to send Discord embed",
			zap.String("channel_id", channelID),
			zap.Error(err),
		)
	}
}
