package handler

import (
	"testing"

	"menubot/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestPanelRenderingIsIdempotent(t *testing.T) {
	panels := []domain.Panel{domain.PanelMain, domain.PanelSettings, domain.PanelCommands}

	for _, p := range panels {
		t.Run(string(p), func(t *testing.T) {
			// Identical panels must render byte-identical output no
			// matter how often they are built
			assert.Equal(t, panelCaption(p), panelCaption(p))
			assert.Equal(t, panelMarkup(p), panelMarkup(p))
		})
	}
}

func TestPanelsAreDistinct(t *testing.T) {
	assert.NotEqual(t, panelCaption(domain.PanelMain), panelCaption(domain.PanelSettings))
	assert.NotEqual(t, panelCaption(domain.PanelSettings), panelCaption(domain.PanelCommands))
	assert.NotEqual(t, panelMarkup(domain.PanelMain), panelMarkup(domain.PanelCommands))
}

func TestMainMarkupButtons(t *testing.T) {
	markup := panelMarkup(domain.PanelMain)

	var payloads []string
	for _, row := range markup.InlineKeyboard {
		for _, btn := range row {
			payloads = append(payloads, btn.Data)
		}
	}

	assert.Equal(t, []string{
		"menu:premium_settings",
		"menu:premium_commands",
	}, payloads)
}

func TestSettingsMarkupButtons(t *testing.T) {
	markup := panelMarkup(domain.PanelSettings)

	var payloads []string
	for _, row := range markup.InlineKeyboard {
		for _, btn := range row {
			payloads = append(payloads, btn.Data)
		}
	}

	assert.Equal(t, []string{
		"ps:font_color", "ps:font_style",
		"ps:file_name", "ps:video_thumb",
		"ps:pdf_thumb", "ps:auto_topic",
		"ps:add_credit", "ps:pdf_watermark",
		"ps:video_watermark", "ps:video_quality",
		"ps:pdf_hyperlinks", "ps:set_token",
		"menu:main",
	}, payloads)
}

func TestCommandsMarkupButtons(t *testing.T) {
	markup := panelMarkup(domain.PanelCommands)

	var payloads []string
	for _, row := range markup.InlineKeyboard {
		for _, btn := range row {
			payloads = append(payloads, btn.Data)
		}
	}

	assert.Equal(t, []string{
		"pc:t2t", "pc:edit_txt",
		"pc:split_txt", "pc:replace_word",
		"pc:html_formatter",
		"pc:keyword_filter", "pc:title_clean",
		"pc:pw_sh_to_txt", "pc:youtube_extract",
		"menu:main",
	}, payloads)
}

func TestEveryButtonPayloadDecodes(t *testing.T) {
	for _, p := range []domain.Panel{domain.PanelMain, domain.PanelSettings, domain.PanelCommands} {
		for _, row := range panelMarkup(p).InlineKeyboard {
			for _, btn := range row {
				event := domain.DecodeEvent(btn.Data)
				assert.NotEqual(t, domain.EventUnknown, event.Kind,
					"payload %q must decode to a known event", btn.Data)
			}
		}
	}
}
