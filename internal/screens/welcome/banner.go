package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ksa/internal/ui/theme"
)

const bannerArt = `
 ██╗  ██╗███████╗ █████╗
 ██║ ██╔╝██╔════╝██╔══██╗
 █████╔╝ ███████╗███████║
 ██╔═██╗ ╚════██║██╔══██║
 ██║  ██╗███████║██║  ██║
 ╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝`

const bannerCompact = "K · S · A"

// RenderBanner returns the KSA banner in the primary color, falling back to
// a compact form below 30 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 30 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
