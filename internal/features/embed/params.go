package embed

import (
	"fmt"
	"net/url"
	"strconv"
)

type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// fragmentAllSentinel normalizes "no fragment filter" so that omitting the
// index and passing the sentinel hash identically.
const fragmentAllSentinel = "all"

// Params is the value object describing one embedded frame. It is never
// persisted; its only derived product is the embed id used to correlate
// resize messages between a frame and its host page.
type Params struct {
	ShareID         string
	ShowTitle       bool
	ShowDescription bool
	ShowFileHeaders bool
	ShowPoweredBy   bool
	Theme           Theme
	FragmentIndex   *int
}

// ParamsFromQuery builds Params from the embed view's query string.
// showFileHeaders and showPoweredBy default to true, the other flags to
// false; an unrecognized theme falls back to system.
func ParamsFromQuery(shareID string, query url.Values) (Params, error) {
	params := Params{
		ShareID:         shareID,
		ShowTitle:       query.Get("showTitle") == "true",
		ShowDescription: query.Get("showDescription") == "true",
		ShowFileHeaders: query.Get("showFileHeaders") != "false",
		ShowPoweredBy:   query.Get("showPoweredBy") != "false",
		Theme:           ThemeSystem,
	}

	switch Theme(query.Get("theme")) {
	case ThemeLight:
		params.Theme = ThemeLight
	case ThemeDark:
		params.Theme = ThemeDark
	}

	if raw := query.Get("fragmentIndex"); raw != "" {
		index, err := strconv.Atoi(raw)
		if err != nil {
			return params, fmt.Errorf("invalid fragment index %q", raw)
		}
		params.FragmentIndex = &index
	}

	return params, nil
}

// ID derives the stable identifier for this parameter tuple. Two embeds
// with identical parameters share an id. The hash is order sensitive,
// process independent and non-cryptographic: a collision only misroutes
// cosmetic height updates, it is not a security boundary.
func (p Params) ID() string {
	fragment := fragmentAllSentinel
	if p.FragmentIndex != nil {
		fragment = strconv.Itoa(*p.FragmentIndex)
	}

	key := fmt.Sprintf("%s-%t-%t-%t-%t-%s-%s",
		p.ShareID,
		p.ShowTitle,
		p.ShowDescription,
		p.ShowFileHeaders,
		p.ShowPoweredBy,
		p.Theme,
		fragment,
	)

	// 31x rolling hash in wrapping int32 arithmetic, matching the hash the
	// embed frames compute on their side of the channel.
	var hash int32
	for i := 0; i < len(key); i++ {
		hash = hash*31 + int32(key[i])
	}

	magnitude := int64(hash)
	if magnitude < 0 {
		magnitude = -magnitude
	}

	return fmt.Sprintf("%016x", magnitude)
}
