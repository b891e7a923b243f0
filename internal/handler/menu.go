package handler

import (
	"menubot/internal/domain"

	tele "gopkg.in/telebot.v3"
)

// Panel captions (legacy Markdown)
const (
	mainCaption = "🧰 *Menu*\n\n" +
		"Choose a panel:"

	settingsCaption = "💎 *Premium Settings Panel* 💎\n\n" +
		"✨ _Customize your experience &_\n" +
		"_un/lock full potential!_\n\n" +
		"🎛️ *Fonts • Thumbnails • Watermarks*\n" +
		"🚀 _Supercharge your uploads with pro tools_"

	commandsCaption = "💎 *Premium Command Panel* 💎\n\n" +
		"✨ _Smart tools to manage & process_\n" +
		"_your uploads_\n\n" +
		"✍️ *Convert • Edit • Split • Clean*\n" +
		"⚡ _Extract with ease_"
)

// panelCaption returns the caption displayed for a panel
func panelCaption(p domain.Panel) string {
	switch p {
	case domain.PanelSettings:
		return settingsCaption
	case domain.PanelCommands:
		return commandsCaption
	default:
		return mainCaption
	}
}

// panelMarkup returns the inline keyboard for a panel. Buttons carry
// raw namespaced payloads (menu:/ps:/pc:) so the same layout always
// produces identical wire data.
func panelMarkup(p domain.Panel) *tele.ReplyMarkup {
	switch p {
	case domain.PanelSettings:
		return settingsMarkup()
	case domain.PanelCommands:
		return commandsMarkup()
	default:
		return mainMarkup()
	}
}

func mainMarkup() *tele.ReplyMarkup {
	return &tele.ReplyMarkup{InlineKeyboard: [][]tele.InlineButton{
		{navButton("💎 Premium Settings Panel", domain.PanelSettings)},
		{navButton("💎 Premium Command Panel", domain.PanelCommands)},
	}}
}

func settingsMarkup() *tele.ReplyMarkup {
	return &tele.ReplyMarkup{InlineKeyboard: [][]tele.InlineButton{
		{
			settingButton("🎨 Font Color", domain.KeyFontColor),
			settingButton("🅰️ Font Style", domain.KeyFontStyle),
		},
		{
			settingButton("✏️ File Name", domain.KeyFileName),
			settingButton("🎞️ Video Thumb", domain.KeyVideoThumb),
		},
		{
			settingButton("🖼️ PDF Thumb", domain.KeyPDFThumb),
			settingButton("🧵 Auto Topic", domain.KeyAutoTopic),
		},
		{
			settingButton("✍️ Add Credit", domain.KeyAddCredit),
			settingButton("💧 PDF Watermark", domain.KeyPDFWatermark),
		},
		{
			settingButton("💦 Video Watermark", domain.KeyVideoWatermark),
			settingButton("🎚️ Video Quality", domain.KeyVideoQuality),
		},
		{
			settingButton("🔗 PDF Hyperlinks", domain.KeyPDFHyperlinks),
			settingButton("🔑 Set Token", domain.KeySetToken),
		},
		{navButton("⬅️ Back to Main Menu", domain.PanelMain)},
	}}
}

func commandsMarkup() *tele.ReplyMarkup {
	return &tele.ReplyMarkup{InlineKeyboard: [][]tele.InlineButton{
		{
			commandButton("✍️ Text ➜ .txt", "t2t"),
			commandButton("📝 Edit .txt", "edit_txt"),
		},
		{
			commandButton("📂 Split .txt", "split_txt"),
			commandButton("🧹 Replace Word", "replace_word"),
		},
		{
			commandButton("🧾 HTML Formatter", "html_formatter"),
		},
		{
			commandButton("⚪ Keyword Filter", "keyword_filter"),
			commandButton("🧽 Title Clean", "title_clean"),
		},
		{
			commandButton("🧾 PW (.sh ➜ .txt)", "pw_sh_to_txt"),
			commandButton("🎬 YouTube Extract", "youtube_extract"),
		},
		{navButton("⬅️ Back to Menu", domain.PanelMain)},
	}}
}

func navButton(text string, p domain.Panel) tele.InlineButton {
	return tele.InlineButton{Text: text, Data: domain.NavigatePayload(p)}
}

func settingButton(text string, k domain.SettingKey) tele.InlineButton {
	return tele.InlineButton{Text: text, Data: domain.SettingPayload(k)}
}

func commandButton(text, cmd string) tele.InlineButton {
	return tele.InlineButton{Text: text, Data: domain.CommandPayload(cmd)}
}
