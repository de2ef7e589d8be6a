package viewer

import "github.com/ytget/xkcd-viewer/internal/model"

// View is the display surface a comic is rendered onto
type View interface {
	SetTitle(title string)
	SetDescription(description string)
	ShowImage(url string)
	ClearImage()
	SetNumber(number string)

	// SetBusy toggles the in-flight indicator
	SetBusy(busy bool)
}

// DetailView is implemented by views that show supplemental comic fields
type DetailView interface {
	ShowDetails(comic model.Comic)
}

// NoticeKind classifies user-facing messages
type NoticeKind int

const (
	NoticeEmptyInput NoticeKind = iota
	NoticeInvalidNumber
	NoticeBusy
	NoticeFetchFailed
	NoticeSaveFailed
	NoticeRestoreFailed
)

func (k NoticeKind) String() string {
	switch k {
	case NoticeEmptyInput:
		return "EmptyInput"
	case NoticeInvalidNumber:
		return "InvalidNumber"
	case NoticeBusy:
		return "Busy"
	case NoticeFetchFailed:
		return "FetchFailed"
	case NoticeSaveFailed:
		return "SaveFailed"
	case NoticeRestoreFailed:
		return "RestoreFailed"
	default:
		return "Unknown"
	}
}

// Notice is a message for the user. Detail carries the underlying error text.
type Notice struct {
	Kind   NoticeKind
	Detail string
}

// Notifier reports notices to the user
type Notifier interface {
	Notify(notice Notice)
}

// Dispatcher runs fn on the goroutine allowed to touch the display
type Dispatcher func(fn func())

// Immediate runs fn on the calling goroutine
func Immediate(fn func()) {
	fn()
}
