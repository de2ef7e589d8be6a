package viewer

import "sync"

// fakeView records what was rendered
type fakeView struct {
	mu          sync.Mutex
	title       string
	description string
	image       string
	imageShown  bool
	number      string
	busy        bool
	busyChanges int
	calls       []string
}

func (v *fakeView) SetTitle(title string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.title = title
	v.calls = append(v.calls, "SetTitle")
}

func (v *fakeView) SetDescription(description string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.description = description
	v.calls = append(v.calls, "SetDescription")
}

func (v *fakeView) ShowImage(url string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.image = url
	v.imageShown = true
	v.calls = append(v.calls, "ShowImage")
}

func (v *fakeView) ClearImage() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.image = ""
	v.imageShown = false
	v.calls = append(v.calls, "ClearImage")
}

func (v *fakeView) SetNumber(number string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.number = number
	v.calls = append(v.calls, "SetNumber")
}

func (v *fakeView) SetBusy(busy bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.busy = busy
	v.busyChanges++
}

// fakeNotifier records notices
type fakeNotifier struct {
	mu      sync.Mutex
	notices []Notice
}

func (n *fakeNotifier) Notify(notice Notice) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice)
}

func (n *fakeNotifier) kinds() []NoticeKind {
	n.mu.Lock()
	defer n.mu.Unlock()
	kinds := make([]NoticeKind, 0, len(n.notices))
	for _, notice := range n.notices {
		kinds = append(kinds, notice.Kind)
	}
	return kinds
}

func (n *fakeNotifier) last() (Notice, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.notices) == 0 {
		return Notice{}, false
	}
	return n.notices[len(n.notices)-1], true
}
