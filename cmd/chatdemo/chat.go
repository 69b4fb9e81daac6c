package main

import (
	"github.com/garaekz/tuigfx/agent"
	"github.com/garaekz/tuigfx/glyph"
	"github.com/garaekz/tuigfx/logx"
	"github.com/garaekz/tuigfx/ui"
)

// chatGame wires together a scrollback Textbox and a TextInput prompt: the
// root region splits into a star-sized scrollback on top and a one-row
// prompt on the bottom.
type chatGame struct {
	scrollback []glyph.Text
	input      *ui.TextInput
	idleHandle *agent.WaitHandle
	woken      bool
	log        *logx.Logger
}

func newChatGame(idleHandle *agent.WaitHandle) *chatGame {
	return &chatGame{
		input:      ui.NewTextInput("> ", 50),
		idleHandle: idleHandle,
		log:        logx.GetLogger(),
	}
}

func (g *chatGame) Attach(region ui.Region, replies *agent.Replies[chatMsg]) bool {
	if region.Input().Kind == ui.ActionClosed {
		return true
	}

	layout, err := region.Split(ui.NewRows("", []ui.Segment{ui.Star, ui.Fixed(1)}, nil))
	if err != nil {
		// Not enough room for even a one-row prompt: just show scrollback.
		region.Text(g.scrollback)
		return false
	}
	scrollRegion, promptRegion := layout[0], layout[1]

	ui.NewTextbox(g.scrollback).ScrollFromBottom(true).Render(scrollRegion.View())

	result := g.input.Input(promptRegion.Input())
	switch result.Kind {
	case ui.TIResultSubmit:
		if result.Submitted != "" {
			g.input.Store(result.Submitted)
			replies.Emit(chatMsg{speaker: "you", body: result.Submitted, fmt: glyph.Format{Fg: glyph.BrightWhite}})
			if !g.woken && g.idleHandle != nil {
				g.idleHandle.Wake()
				g.woken = true
			}
		}
	case ui.TIResultAutocomplete:
		g.input.SetAutocomplete("")
	}
	g.input.Render(promptRegion.View())

	return false
}

func (g *chatGame) Message(msg chatMsg) {
	if msg.isTick {
		return
	}
	g.log.Debug("chat: %s: %s", msg.speaker, msg.body)
	g.scrollback = append(g.scrollback,
		glyph.Text{Str: msg.speaker + ": ", Fmt: glyph.Format{Fg: msg.fmt.Fg, Bold: true}},
		glyph.Text{Str: msg.body + "\n", Fmt: glyph.None},
	)
}
