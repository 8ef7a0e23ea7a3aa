// Package discord runs the bot on Discord: slash commands are built
// from the command registry, registered against a single guild, and
// answered with ephemeral replies unless the caller asks for a public
// one. All command logic stays in the registry; this package is glue.
package discord

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/boffinbot/boffin/internal/command"
	"github.com/boffinbot/boffin/internal/config"
)

var (
	// ErrNoToken indicates a missing BOFFIN_TOKEN.
	ErrNoToken = errors.New("discord: bot token is not set")

	// ErrNoGuild indicates a missing BOFFIN_GUILD_ID.
	ErrNoGuild = errors.New("discord: guild id is not set")
)

type Bot struct {
	session    *discordgo.Session
	reg        *command.Registry
	cfg        *config.Config
	registered []*discordgo.ApplicationCommand
}

func New(cfg *config.Config, reg *command.Registry) (*Bot, error) {
	if cfg.Token == "" {
		return nil, ErrNoToken
	}
	if cfg.GuildID == "" {
		return nil, ErrNoGuild
	}
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("discord: %w", err)
	}
	return &Bot{session: session, reg: reg, cfg: cfg}, nil
}

// Start opens the gateway connection and syncs slash commands to the
// configured guild. It returns once the bot is serving.
func (b *Bot) Start(ctx context.Context) error {
	b.session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("logged in as %s (%s)", r.User.String(), r.User.ID)
		if err := s.UpdateGameStatus(0, b.cfg.Presence); err != nil {
			log.Printf("set presence: %v", err)
		}
	})
	b.session.AddHandler(b.handleInteraction)

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("discord: open gateway: %w", err)
	}

	for _, cmd := range b.commandDefinitions() {
		created, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.cfg.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("discord: register /%s: %w", cmd.Name, err)
		}
		b.registered = append(b.registered, created)
	}
	log.Printf("synced %d commands to guild %s", len(b.registered), b.cfg.GuildID)
	return nil
}

// Stop removes the guild commands and closes the connection.
func (b *Bot) Stop() error {
	for _, cmd := range b.registered {
		if err := b.session.ApplicationCommandDelete(b.session.State.User.ID, b.cfg.GuildID, cmd.ID); err != nil {
			log.Printf("delete /%s: %v", cmd.Name, err)
		}
	}
	return b.session.Close()
}

func (b *Bot) commandDefinitions() []*discordgo.ApplicationCommand {
	var defs []*discordgo.ApplicationCommand
	for _, c := range b.reg.Commands() {
		defs = append(defs, &discordgo.ApplicationCommand{
			Name:        c.Name,
			Description: c.Summary,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "input",
					Description: c.Usage,
					Required:    c.MinArgs > 0,
				},
				{
					Type:        discordgo.ApplicationCommandOptionBoolean,
					Name:        "public",
					Description: "post the reply publicly instead of privately",
				},
			},
		})
	}
	return defs
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	data := i.ApplicationCommandData()

	var input string
	public := false
	for _, opt := range data.Options {
		switch opt.Name {
		case "input":
			input = opt.StringValue()
		case "public":
			public = opt.BoolValue()
		}
	}

	resp, err := b.reg.Dispatch(context.Background(), data.Name, input)
	if err != nil {
		// Failures stay private regardless of the public flag.
		b.reply(s, i, errorEmbed(data.Name, err), false)
		return
	}
	b.reply(s, i, responseEmbed(data.Name, resp), public)
}

func (b *Bot) reply(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, public bool) {
	var flags discordgo.MessageFlags
	if !public {
		flags = discordgo.MessageFlagsEphemeral
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  flags,
		},
	})
	if err != nil {
		log.Printf("respond to /%s: %v", i.ApplicationCommandData().Name, err)
	}
}

func responseEmbed(name string, resp *command.Response) *discordgo.MessageEmbed {
	description := resp.Text
	if resp.Code {
		description = "```\n" + resp.Text + "\n```"
	} else if description != "" {
		description = "`" + description + "`"
	}
	embed := &discordgo.MessageEmbed{
		Title:       name,
		Description: description,
	}
	for _, f := range resp.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   f.Name,
			Value:  f.Value,
			Inline: true,
		})
	}
	return embed
}

func errorEmbed(name string, err error) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       name,
		Description: "Could not compute — " + err.Error(),
	}
}
