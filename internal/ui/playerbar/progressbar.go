package playerbar

import (
	"time"

	"github.com/llehouerou/simplicity/internal/ui"
	"github.com/llehouerou/simplicity/internal/ui/render"
	"github.com/llehouerou/simplicity/internal/ui/styles"
)

const (
	filledCell = "━"
	emptyCell  = "─"
)

// renderProgress renders "1:23  ━━━━━━──────  3:58" across width cells.
func renderProgress(position, duration time.Duration, width int) string {
	posStr := render.Duration(position)
	durStr := render.Duration(duration)

	barWidth := width - len(posStr) - len(durStr) - 4
	if barWidth < ui.MinProgressBarWidth {
		return render.Fit(posStr+" / "+durStr, width)
	}

	var ratio float64
	if duration > 0 {
		ratio = min(float64(position)/float64(duration), 1)
	}
	filled := int(float64(barWidth) * ratio)

	return progressTimeStyle().Render(posStr) + "  " +
		styles.GradientBar(filled, barWidth, filledCell, emptyCell) + "  " +
		progressTimeStyle().Render(durStr)
}
