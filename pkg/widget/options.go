package widget

// Style variants recognized by the widget host.
const (
	StylePill    = "pill"
	StyleIcon    = "icon"
	StyleMinimal = "minimal"
)

// DefaultLikeColor is the fill color used when the host supplies none.
const DefaultLikeColor = "#e2264d"

// Options are the display options the widget recognizes. Unknown attributes
// and unknown values fall back to the defaults.
type Options struct {
	StyleVariant string
	LikeColor    string
	ShowCount    bool
}

// DefaultOptions returns the options used when the host configures nothing.
func DefaultOptions() Options {
	return Options{
		StyleVariant: StylePill,
		LikeColor:    DefaultLikeColor,
		ShowCount:    true,
	}
}

// ParseOptions reads the recognized attributes from the host-supplied
// attribute map: style-variant (pill|icon|minimal), like-color, and
// show-count (boolean-as-string).
func ParseOptions(attrs map[string]string) Options {
	opts := DefaultOptions()

	switch attrs["style-variant"] {
	case StyleIcon:
		opts.StyleVariant = StyleIcon
	case StyleMinimal:
		opts.StyleVariant = StyleMinimal
	case StylePill:
		opts.StyleVariant = StylePill
	}

	if color := attrs["like-color"]; color != "" {
		opts.LikeColor = color
	}

	if v, ok := attrs["show-count"]; ok {
		opts.ShowCount = v != "false"
	}

	return opts
}
