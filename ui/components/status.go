package components

import (
	"github.com/mtarnawa/keyack/ui/styles"
)

func RenderStatus(status string, width int) string {
	return styles.StatusStyle(width).Render(status)
}
