// Package palette provides the built-in avoid palettes and the HCL
// avoid-file loader used to seed the search.
package palette

import "github.com/jsvensson/colorgap/internal/color"

// DiscordLight holds the Discord light-mode background and text colors.
var DiscordLight = mustHex(
	"000000", // text
	"FFFFFF", // chat area
	"F2F3F5", // user bar
)

// DiscordDark holds the Discord dark-mode background and text colors.
var DiscordDark = mustHex(
	"DCDDDE", // text
	"36393F", // chat area
	"2F3136", // user bar
)

// DiscordRoles holds the default Discord role colors.
var DiscordRoles = mustHex(
	"99AAB5", // default role
	"00C09A", // light blueish green
	"008369", // dark blueish green
	"00D166", // light green
	"008E44", // dark green
	"0099E1", // light blue
	"006798", // dark blue
	"A652BB", // light purple
	"7A2F8F", // dark purple
	"FD0061", // light pink
	"BC0057", // dark pink
	"F8C300", // light yellow
	"CC7900", // dark yellow
	"F93A2F", // light red
	"A62019", // dark red
	"91A6A6", // light blueish gray
	"969C9F", // gray
	"597E8D", // medium blueish gray
	"4E6F7B", // dark blueish gray
)

func mustHex(hexes ...string) []color.Color {
	colors := make([]color.Color, len(hexes))
	for i, h := range hexes {
		c, err := color.ParseHex(h)
		if err != nil {
			panic(err)
		}
		colors[i] = c
	}
	return colors
}
