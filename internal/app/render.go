package app

import (
	"fmt"
	"strings"

	"go.trai.ch/cloister/internal/core/domain"
)

// RenderGreetdConfig renders the greeter configuration: the session user is
// logged in automatically on boot, and ending that session falls back to an
// interactive greeter instead of relooping into the game.
func RenderGreetdConfig(settings domain.Settings) string {
	return fmt.Sprintf(`[terminal]
vt = "next"
[default_session]
command = "tuigreet --user-menu --cmd startx"
user = "greeter"
[initial_session]
user = %q
command = "startx"
`, settings.User)
}

// RenderXinitrc renders the session user's X init script.
func RenderXinitrc() string {
	return "#!/bin/sh\nexec openbox-session\n"
}

// RenderKeybindings renders the openbox configuration for the session user.
// The window manager surface is kept minimal: close, exit, a handful of
// maintenance terminals, and a screenshot key.
func RenderKeybindings(settings domain.Settings) string {
	var b strings.Builder
	b.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	b.WriteString("<openbox_config>\n")
	b.WriteString("  <focus>\n    <focusNew>yes</focusNew>\n  </focus>\n")
	b.WriteString("  <keyboard>\n")
	b.WriteString("    <keybind key=\"A-F4\">\n      <action name=\"Close\"/>\n    </keybind>\n")
	b.WriteString("    <keybind key=\"C-A-Delete\">\n      <action name=\"Execute\">\n        <command>openbox --exit</command>\n      </action>\n    </keybind>\n")
	writeExecBinding(&b, "A-F7", settings.Terminal)
	writeExecBinding(&b, "A-F8", settings.Terminal+" -e nmtui")
	writeExecBinding(&b, "A-F9", settings.Terminal+" -e wiremix")
	writeExecBinding(&b, "A-F10", "arandr")
	writeExecBinding(&b, "A-F11", settings.Terminal+" -e htop")
	writeExecBinding(&b, "A-F12", "scrot '"+settings.ScreenshotsDir+"/%Y-%m-%d-%H%M%S.png'")
	b.WriteString("  </keyboard>\n")
	b.WriteString("  <applications>\n")
	fmt.Fprintf(&b, "    <application name=%q>\n      <maximized>yes</maximized>\n    </application>\n", settings.Terminal)
	b.WriteString("  </applications>\n")
	b.WriteString("</openbox_config>\n")
	return b.String()
}

func writeExecBinding(b *strings.Builder, key, command string) {
	fmt.Fprintf(b, "    <keybind key=%q>\n      <action name=\"Execute\">\n        <command>%s</command>\n      </action>\n    </keybind>\n", key, command)
}
