package main

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

var barTheme = progressbar.Theme{Saucer: "=", SaucerHead: ">", SaucerPadding: " ", BarStart: "[", BarEnd: "]"}

func newBar(total int, desc string, w io.Writer) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetTheme(barTheme),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

// nil *Bars — прогресс выключен, все методы безопасны
type Bars struct {
	GPX *progressbar.ProgressBar
}

// один тик на запись архива
func NewBars(entries int, w io.Writer) *Bars {
	return &Bars{GPX: newBar(entries, "[GPX] разбор архива", w)}
}

func (b *Bars) IncGPX() {
	if b == nil { return }
	_ = b.GPX.Add(1)
}

func (b *Bars) Done() {
	if b == nil { return }
	_ = b.GPX.Finish()
}
