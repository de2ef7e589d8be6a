package ui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"go.uber.org/mock/gomock"

	"github.com/ytget/xkcd-viewer/internal/config"
	"github.com/ytget/xkcd-viewer/internal/fetch"
	"github.com/ytget/xkcd-viewer/internal/mocks"
	"github.com/ytget/xkcd-viewer/internal/model"
	"github.com/ytget/xkcd-viewer/internal/store"
)

var woodpecker = model.Comic{
	Number:      614,
	Title:       "Woodpecker",
	Description: "If you don't have an extension cord I can get that too.",
	ImageURL:    "https://imgs.xkcd.com/comics/woodpecker.png",
	Year:        "2009",
	Month:       "7",
	Day:         "24",
}

var woodpeckerImage = fyne.NewStaticResource("woodpecker.png", []byte("png"))

type screenFixture struct {
	app      fyne.App
	settings *config.Settings
	store    *store.PreferencesStore
	fetcher  *mocks.MockFetcher
	screen   *ComicScreen
}

// newScreenFixture builds a screen over a fresh test app; saved is put in the
// slot before the screen restores it.
func newScreenFixture(t *testing.T, saved *model.Comic) *screenFixture {
	t.Helper()
	return newScreenFixtureWith(t, func(f *screenFixture) {
		if saved == nil {
			return
		}
		if err := f.store.Save(*saved); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	})
}

// newScreenFixtureWith runs prepare against the app and store before the
// screen is built.
func newScreenFixtureWith(t *testing.T, prepare func(f *screenFixture)) *screenFixture {
	t.Helper()

	app := test.NewApp()
	t.Cleanup(app.Quit)

	f := &screenFixture{
		app:      app,
		settings: config.NewSettings(app),
		store:    store.NewPreferencesStore(app.Preferences()),
		fetcher:  mocks.NewMockFetcher(gomock.NewController(t)),
	}
	prepare(f)

	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	f.screen = NewComicScreen(window, app, f.settings, f.store, f.fetcher)
	f.screen.autoHide = 0
	f.screen.SetImageLoader(func(url string) (fyne.Resource, error) {
		if url == woodpecker.ImageURL {
			return woodpeckerImage, nil
		}
		return nil, errors.New("not found")
	})
	return f
}

// settle waits for pending fetches and image loads
func (f *screenFixture) settle() {
	f.screen.Controller().Wait()
	f.screen.imageLoads.Wait()
}

func TestComicScreen_SubmitShowsComic(t *testing.T) {
	f := newScreenFixture(t, nil)
	f.fetcher.EXPECT().Fetch(gomock.Any(), 614).Return(woodpecker, nil).Times(1)

	f.screen.numberEntry.SetText("614")
	test.Tap(f.screen.showBtn)
	f.settle()

	if f.screen.titleLabel.Text != "Woodpecker" {
		t.Errorf("Expected title 'Woodpecker', got '%s'", f.screen.titleLabel.Text)
	}
	if f.screen.descriptionLabel.Text != woodpecker.Description {
		t.Errorf("Unexpected description '%s'", f.screen.descriptionLabel.Text)
	}
	if f.screen.dateLabel.Text != "2009-07-24" {
		t.Errorf("Expected date '2009-07-24', got '%s'", f.screen.dateLabel.Text)
	}
	if f.screen.image.Resource != woodpeckerImage {
		t.Errorf("Expected comic image to be shown, got %v", f.screen.image.Resource)
	}
	if f.screen.notificationContainer.Visible() {
		t.Errorf("Expected loading notification to be hidden, got '%s'", f.screen.notificationLabel.Text)
	}

	saved, err := f.store.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if saved.Number != 614 || saved.Title != "Woodpecker" {
		t.Errorf("Expected saved comic 614, got %+v", saved)
	}
}

func TestComicScreen_RestoresSavedComic(t *testing.T) {
	saved := model.Comic{Number: 353, Title: "Python"}
	f := newScreenFixture(t, &saved)

	if f.screen.titleLabel.Text != "Python" {
		t.Errorf("Expected restored title 'Python', got '%s'", f.screen.titleLabel.Text)
	}
	if f.screen.descriptionLabel.Text != model.DefaultDescription {
		t.Errorf("Expected default description, got '%s'", f.screen.descriptionLabel.Text)
	}
	if f.screen.numberEntry.Text != "353" {
		t.Errorf("Expected number '353', got '%s'", f.screen.numberEntry.Text)
	}
	if f.screen.image.Resource != nil {
		t.Error("Expected no image for a comic without image reference")
	}
}

func TestComicScreen_InvalidInput(t *testing.T) {
	f := newScreenFixture(t, nil)

	tests := []struct {
		input    string
		expected string
	}{
		{"", "Please enter a comic number."},
		{"abc", "Please enter a valid positive number."},
		{"-3", "Please enter a valid positive number."},
	}

	for _, test := range tests {
		f.screen.numberEntry.SetText(test.input)
		f.screen.onShowClick()

		if f.screen.notificationLabel.Text != test.expected {
			t.Errorf("Input '%s': expected notice '%s', got '%s'", test.input, test.expected, f.screen.notificationLabel.Text)
		}
		if !f.screen.notificationContainer.Visible() {
			t.Errorf("Input '%s': expected notification to be visible", test.input)
		}
	}
}

func TestComicScreen_FetchErrorKeepsNotice(t *testing.T) {
	saved := model.Comic{Number: 353, Title: "Python"}
	f := newScreenFixture(t, &saved)

	f.fetcher.EXPECT().Fetch(gomock.Any(), 999999).
		Return(model.Comic{}, &fetch.Error{URL: "https://xkcd.com/999999/info.0.json", StatusCode: 404}).
		Times(1)

	f.screen.numberEntry.SetText("999999")
	f.screen.onShowClick()
	f.settle()

	if !strings.HasPrefix(f.screen.notificationLabel.Text, "Error loading comic: ") {
		t.Errorf("Expected fetch error notice, got '%s'", f.screen.notificationLabel.Text)
	}
	if !f.screen.notificationContainer.Visible() {
		t.Error("Expected error notice to stay visible after the fetch finished")
	}
	if f.screen.titleLabel.Text != "Python" {
		t.Errorf("Expected previous comic to stay visible, got '%s'", f.screen.titleLabel.Text)
	}
}

func TestComicScreen_SwipeNavigates(t *testing.T) {
	saved := model.Comic{Number: 614, Title: "Woodpecker"}
	f := newScreenFixture(t, &saved)

	next := model.Comic{Number: 615, Title: "Avoidance"}
	f.fetcher.EXPECT().Fetch(gomock.Any(), 615).Return(next, nil).Times(1)

	f.screen.onGesture(GestureSwipeLeft)
	f.settle()

	if f.screen.numberEntry.Text != "615" {
		t.Errorf("Expected number '615', got '%s'", f.screen.numberEntry.Text)
	}
	if f.screen.titleLabel.Text != "Avoidance" {
		t.Errorf("Expected title 'Avoidance', got '%s'", f.screen.titleLabel.Text)
	}
}

func TestComicScreen_ImageLoadFailureClearsImage(t *testing.T) {
	f := newScreenFixture(t, nil)

	f.screen.ShowImage(woodpecker.ImageURL)
	f.settle()
	if f.screen.image.Resource != woodpeckerImage {
		t.Fatal("Expected image to be shown")
	}

	f.screen.ShowImage("https://imgs.xkcd.com/comics/missing.png")
	f.settle()
	if f.screen.image.Resource != nil {
		t.Error("Expected failed image load to clear the image")
	}
}

func TestComicScreen_StaleImageDropped(t *testing.T) {
	f := newScreenFixture(t, nil)

	release := make(chan struct{})
	f.screen.SetImageLoader(func(url string) (fyne.Resource, error) {
		<-release
		return woodpeckerImage, nil
	})

	f.screen.ShowImage(woodpecker.ImageURL)
	f.screen.ClearImage()
	close(release)
	f.settle()

	if f.screen.image.Resource != nil {
		t.Error("Expected image from a superseded load to be dropped")
	}
}

func TestComicScreen_ApplySettingsSwitchesStore(t *testing.T) {
	f := newScreenFixture(t, nil)

	f.settings.SetStorageBackend(config.StorageFile)
	f.settings.SetRestorePolicy(config.RestoreNotify)
	f.screen.applySettings()

	if f.screen.backend != config.StorageFile {
		t.Errorf("Expected backend %s, got %s", config.StorageFile, f.screen.backend)
	}
	if _, ok := f.screen.store.(*store.FileStore); !ok {
		t.Errorf("Expected *store.FileStore, got %T", f.screen.store)
	}
}

func TestComicScreen_ComicPageURL(t *testing.T) {
	f := newScreenFixture(t, nil)

	u, err := f.screen.comicPageURL(614)
	if err != nil {
		t.Fatalf("comicPageURL() error = %v", err)
	}
	if u.String() != "https://xkcd.com/614/" {
		t.Errorf("Expected 'https://xkcd.com/614/', got '%s'", u.String())
	}
}

func TestComicScreen_CorruptSlotStartsEmpty(t *testing.T) {
	f := newScreenFixtureWith(t, func(f *screenFixture) {
		f.app.Preferences().SetString(store.SlotKey, "{not json")
	})

	if f.screen.titleLabel.Text != "" {
		t.Errorf("Expected empty title, got '%s'", f.screen.titleLabel.Text)
	}
	if f.screen.numberEntry.Text != "" {
		t.Errorf("Expected empty number, got '%s'", f.screen.numberEntry.Text)
	}
	if f.screen.image.Resource != nil {
		t.Error("Expected no image")
	}
	if _, ok := f.screen.Controller().Current(); ok {
		t.Error("Expected no current comic after a corrupt slot")
	}
	if state := f.screen.Controller().State(); state != model.StateIdle {
		t.Errorf("Expected state %v, got %v", model.StateIdle, state)
	}
	if f.screen.notificationContainer.Visible() {
		t.Errorf("Expected silent restore, got notice '%s'", f.screen.notificationLabel.Text)
	}

	// The screen stays usable
	f.fetcher.EXPECT().Fetch(gomock.Any(), 614).Return(woodpecker, nil).Times(1)
	f.screen.numberEntry.SetText("614")
	f.screen.onShowClick()
	f.settle()

	if f.screen.titleLabel.Text != "Woodpecker" {
		t.Errorf("Expected title 'Woodpecker', got '%s'", f.screen.titleLabel.Text)
	}
}

func TestComicScreen_CorruptSlotNotifies(t *testing.T) {
	f := newScreenFixtureWith(t, func(f *screenFixture) {
		f.settings.SetRestorePolicy(config.RestoreNotify)
		f.app.Preferences().SetString(store.SlotKey, "{not json")
	})

	if !strings.HasPrefix(f.screen.notificationLabel.Text, "Could not restore the last comic") {
		t.Errorf("Expected restore notice, got '%s'", f.screen.notificationLabel.Text)
	}
	if f.screen.titleLabel.Text != "" {
		t.Errorf("Expected empty title, got '%s'", f.screen.titleLabel.Text)
	}
}

func TestComicScreen_CloseCancelsFetch(t *testing.T) {
	f := newScreenFixture(t, nil)
	started := make(chan struct{})
	f.fetcher.EXPECT().Fetch(gomock.Any(), 614).DoAndReturn(func(ctx context.Context, number int) (model.Comic, error) {
		close(started)
		<-ctx.Done()
		return model.Comic{}, ctx.Err()
	}).Times(1)

	f.screen.numberEntry.SetText("614")
	f.screen.onShowClick()
	<-started

	done := make(chan struct{})
	go func() {
		f.screen.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close() did not return while a fetch was hanging")
	}
}

func TestComicScreen_WindowTitle(t *testing.T) {
	f := newScreenFixture(t, nil)

	if got := f.screen.window.Title(); got != "xkcd Viewer" {
		t.Errorf("Expected title 'xkcd Viewer', got '%s'", got)
	}

	f.screen.SetVersion("1.2.3")
	if got := f.screen.window.Title(); got != "xkcd Viewer v1.2.3" {
		t.Errorf("Expected title 'xkcd Viewer v1.2.3', got '%s'", got)
	}

	// Switching language keeps the version
	f.screen.onLanguageChange("pt")
	if got := f.screen.window.Title(); got != "Visualizador xkcd v1.2.3" {
		t.Errorf("Expected title 'Visualizador xkcd v1.2.3', got '%s'", got)
	}
}

func TestComicScreen_InfoMenuItem(t *testing.T) {
	f := newScreenFixture(t, nil)

	menu := f.screen.window.MainMenu()
	if menu == nil || len(menu.Items) == 0 {
		t.Fatal("Expected a main menu")
	}

	expected := IconInfo + " Comic Info"
	for _, item := range menu.Items[0].Items {
		if item.Label == expected {
			return
		}
	}
	t.Errorf("Expected File menu item '%s'", expected)
}
