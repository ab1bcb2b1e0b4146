package report

import (
	"fmt"
	"strings"

	"github.com/structcalc/beamcheck/internal/model"
)

// ASCIISection draws the designed cross-section with its stress block,
// neutral axis, and reinforcement, next to the strain distribution.
// epsilonCU and beta1 come from the code profile the section was
// designed against.
func ASCIISection(geom model.SectionGeometry, flex *model.FlexureResult, epsilonCU, beta1 float64) string {
	var sb strings.Builder

	const widthChars = 30
	const heightChars = 20

	a := flex.NeutralAxisDepth * beta1
	naLine := int(flex.NeutralAxisDepth / geom.Depth * heightChars)
	aLine := int(a / geom.Depth * heightChars)
	steelLine := int(geom.EffectiveDepth / geom.Depth * heightChars)
	compLine := int(geom.Cover / geom.Depth * heightChars)

	sb.WriteString("\n")
	sb.WriteString("  BEAM SECTION                    STRAIN\n")
	sb.WriteString("  ────────────                    ──────\n")

	for i := 0; i <= heightChars; i++ {
		switch i {
		case 0:
			sb.WriteString(fmt.Sprintf("  ┌%s┐", strings.Repeat("─", widthChars)))
		case heightChars:
			sb.WriteString(fmt.Sprintf("  └%s┘", strings.Repeat("─", widthChars)))
		default:
			fill := []rune(strings.Repeat(" ", widthChars))
			if i <= aLine {
				fill = []rune(strings.Repeat("░", widthChars))
			}
			mid := widthChars / 2
			if flex.DoublyReinforced && i == compLine {
				copy(fill[mid-2:], []rune("●──●"))
			}
			if i == steelLine {
				copy(fill[mid-3:], []rune("●────●"))
			}
			sb.WriteString(fmt.Sprintf("  │%s│", string(fill)))
		}

		switch i {
		case 0:
			sb.WriteString(fmt.Sprintf("    ├── εcu = %.4f", epsilonCU))
		case naLine:
			sb.WriteString("    ├── ε = 0  ◄─ N.A.")
		case steelLine:
			sb.WriteString(fmt.Sprintf("    ├── εt = %.4f", flex.TensileStrain))
		default:
			if i < heightChars {
				sb.WriteString("    │")
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  ░░░ stress block a = %.1f mm, N.A. at c = %.1f mm from top\n", a, flex.NeutralAxisDepth))
	sb.WriteString(fmt.Sprintf("  ●●● tension steel As = %.0f mm²", flex.AsRequired))
	if flex.DoublyReinforced {
		sb.WriteString(fmt.Sprintf(", compression steel A's = %.0f mm²", flex.AsCompression))
	}
	sb.WriteString("\n")

	return sb.String()
}

// SummaryBox frames a titled list of lines in a box, for CLI output.
func SummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len(title)
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
