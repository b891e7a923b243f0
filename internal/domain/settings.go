package domain

import "strconv"

// SettingKey names a single user preference
type SettingKey string

const (
	KeyFontColor      SettingKey = "font_color"
	KeyFontStyle      SettingKey = "font_style"
	KeyFileName       SettingKey = "file_name"
	KeyVideoThumb     SettingKey = "video_thumb"
	KeyPDFThumb       SettingKey = "pdf_thumb"
	KeyAutoTopic      SettingKey = "auto_topic"
	KeyAddCredit      SettingKey = "add_credit"
	KeyPDFWatermark   SettingKey = "pdf_watermark"
	KeyVideoWatermark SettingKey = "video_watermark"
	KeyVideoQuality   SettingKey = "video_quality"
	KeyPDFHyperlinks  SettingKey = "pdf_hyperlinks"
	KeySetToken       SettingKey = "set_token"

	// KeyToken is where the set_token action stores its value
	KeyToken SettingKey = "token"
)

// KeyKind classifies how a setting is collected from the user
type KeyKind int

const (
	KindUnknown KeyKind = iota
	KindText            // collected via a text prompt
	KindToggle          // flipped on/off in place
	KindMedia           // requires a media upload, handled elsewhere
)

// Kind reports how the key's value is collected
func (k SettingKey) Kind() KeyKind {
	switch k {
	case KeyFontColor, KeyFontStyle, KeyFileName, KeyAddCredit,
		KeyPDFWatermark, KeyVideoWatermark, KeyVideoQuality,
		KeyAutoTopic, KeySetToken:
		return KindText
	case KeyPDFHyperlinks:
		return KindToggle
	case KeyPDFThumb, KeyVideoThumb:
		return KindMedia
	}
	return KindUnknown
}

// StorageKey returns the key the collected value is persisted under.
// The set_token action writes to "token"; every other key stores
// under its own name.
func (k SettingKey) StorageKey() SettingKey {
	if k == KeySetToken {
		return KeyToken
	}
	return k
}

// Settings is a per-(user, scope) snapshot of preference values.
// Toggle values are stored in strconv.FormatBool form.
type Settings map[string]string

// Bool reads a toggle value, defaulting absent or malformed to false
func (s Settings) Bool(key SettingKey) bool {
	v, ok := s[string(key)]
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return b
}

// FormatBool renders a toggle value for storage
func FormatBool(b bool) string {
	return strconv.FormatBool(b)
}
