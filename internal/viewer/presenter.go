package viewer

import (
	"strconv"

	"github.com/ytget/xkcd-viewer/internal/model"
)

// Presenter maps a comic onto a View
type Presenter struct {
	view View
}

// NewPresenter creates a presenter for view
func NewPresenter(view View) *Presenter {
	return &Presenter{view: view}
}

// Render shows comic. The number field is left alone when the comic has no number.
func (p *Presenter) Render(comic model.Comic) {
	p.view.SetTitle(comic.DisplayTitle())
	p.view.SetDescription(comic.DisplayDescription())

	if comic.HasImage() {
		p.view.ShowImage(comic.ImageURL)
	} else {
		p.view.ClearImage()
	}

	if comic.Number != 0 {
		p.view.SetNumber(strconv.Itoa(comic.Number))
	}

	if details, ok := p.view.(DetailView); ok {
		details.ShowDetails(comic)
	}
}
