package ui

import (
	"context"
	"io"
	"log"
	"net/url"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/xkcd-viewer/internal/config"
	"github.com/ytget/xkcd-viewer/internal/fetch"
	"github.com/ytget/xkcd-viewer/internal/model"
	"github.com/ytget/xkcd-viewer/internal/store"
	"github.com/ytget/xkcd-viewer/internal/viewer"
)

// ImageLoader downloads the resource behind an image URL
type ImageLoader func(url string) (fyne.Resource, error)

// ComicScreen is the single screen of the app. It implements viewer.View and
// viewer.Notifier; every method runs on the Fyne goroutine.
type ComicScreen struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	controller   *viewer.Controller
	cancel       context.CancelFunc
	version      string

	store   store.Store
	backend config.StorageBackend

	loadImage  ImageLoader
	imageGen   atomic.Uint64
	imageLoads sync.WaitGroup
	noticeGen  atomic.Uint64
	autoHide   time.Duration
	loadingMsg string

	numberEntry      *NumberEntry
	showBtn          *widget.Button
	prevBtn          *widget.Button
	nextBtn          *widget.Button
	latestBtn        *widget.Button
	titleLabel       *widget.Label
	dateLabel        *widget.Label
	descriptionLabel *widget.Label
	image            *canvas.Image

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewComicScreen builds the screen into window and restores the last saved comic
func NewComicScreen(window fyne.Window, app fyne.App, settings *config.Settings, st store.Store, fetcher fetch.Fetcher) *ComicScreen {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	s := &ComicScreen{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		store:        st,
		backend:      settings.GetStorageBackend(),
		loadImage:    LoadImageResource,
		autoHide:     NotificationAutoHide,
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.controller = viewer.NewController(viewer.Options{
		Context:       ctx,
		Fetcher:       fetcher,
		Store:         st,
		View:          s,
		Notifier:      s,
		Dispatch:      fyne.Do,
		RestorePolicy: settings.GetRestorePolicy(),
	})

	s.setupUI()
	s.refreshTitle()

	if err := s.controller.Restore(); err != nil {
		log.Printf("Startup restore failed: %v", err)
	}

	return s
}

// Controller returns the screen controller
func (s *ComicScreen) Controller() *viewer.Controller {
	return s.controller
}

// SetImageLoader replaces the function used to download comic images
func (s *ComicScreen) SetImageLoader(loader ImageLoader) {
	s.loadImage = loader
}

// SetVersion appends the build version to the window title
func (s *ComicScreen) SetVersion(version string) {
	s.version = version
	s.refreshTitle()
}

func (s *ComicScreen) refreshTitle() {
	title := s.localization.GetText(KeyAppTitle)
	if s.version != "" {
		title += " v" + s.version
	}
	s.window.SetTitle(title)
}

// Close cancels in-flight fetches, waits for them and for image loads,
// and releases the store
func (s *ComicScreen) Close() {
	s.cancel()
	s.controller.Wait()
	s.imageLoads.Wait()
	closeStore(s.store)
}

// setupUI creates and arranges all UI components
func (s *ComicScreen) setupUI() {
	s.createMenu()

	s.numberEntry = s.mobile.CreateNumberEntry(s.localization.GetText(KeyEnterNumber))
	s.numberEntry.OnSubmitted = func(string) {
		s.onShowClick()
	}

	s.showBtn = widget.NewButton(s.localization.GetText(KeyShow), s.onShowClick)
	s.showBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, s.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	var left fyne.CanvasObject = settingsBtn
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(LogoSize, LogoSize))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, settingsBtn)
	}
	topPanel := container.NewBorder(nil, nil, left, s.showBtn, s.numberEntry)

	// Notification panel under the number input (hidden by default)
	s.notificationLabel = widget.NewLabel("")
	s.notificationLabel.Alignment = fyne.TextAlignLeading
	s.notificationLabel.Wrapping = fyne.TextWrapWord
	s.notificationSpinner = widget.NewProgressBarInfinite()
	s.notificationSpinner.Hide()
	s.notificationContainer = container.NewBorder(nil, nil, s.notificationSpinner, nil, s.notificationLabel)
	s.notificationContainer.Hide()

	s.prevBtn = s.mobile.CreateMobileButton(IconPrevious+" "+s.localization.GetText(KeyPrevious), s.onPrevious)
	s.latestBtn = s.mobile.CreateMobileButton(s.localization.GetText(KeyLatest)+" "+IconLatest, s.onLatest)
	s.nextBtn = s.mobile.CreateMobileButton(s.localization.GetText(KeyNext)+" "+IconNext, s.onNext)
	navRow := s.mobile.CreateAdaptiveContainer(3, s.prevBtn, s.latestBtn, s.nextBtn)

	s.titleLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	s.titleLabel.Wrapping = fyne.TextWrapWord
	s.dateLabel = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})
	s.descriptionLabel = widget.NewLabel("")
	s.descriptionLabel.Wrapping = fyne.TextWrapWord

	s.image = canvas.NewImageFromResource(nil)
	s.image.FillMode = canvas.ImageFillContain
	s.image.SetMinSize(fyne.NewSize(ImageMinWidth, ImageMinHeight))

	comicView := container.NewVScroll(container.NewVBox(
		s.titleLabel,
		s.dateLabel,
		s.image,
		s.descriptionLabel,
	))

	top := container.NewVBox(topPanel, s.notificationContainer, navRow)
	content := container.NewBorder(top, nil, nil, nil, NewSwipeArea(comicView, s.onGesture))

	s.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (s *ComicScreen) createMenu() {
	settingsItem := fyne.NewMenuItem(s.localization.GetText(KeySettings), s.onShowSettings)
	openItem := fyne.NewMenuItem(s.localization.GetText(KeyOpenOnXKCD), s.onOpenOnXKCD)
	infoItem := fyne.NewMenuItem(IconInfo+" "+s.localization.GetText(KeyComicInfo), s.onShowInfo)

	comicMenu := fyne.NewMenu(s.localization.GetText(KeyComic),
		fyne.NewMenuItem(s.localization.GetText(KeyPrevious), s.onPrevious),
		fyne.NewMenuItem(s.localization.GetText(KeyNext), s.onNext),
		fyne.NewMenuItem(s.localization.GetText(KeyLatest), s.onLatest),
	)

	languageMenu := fyne.NewMenu(s.localization.GetText(KeyLanguage))
	for code, name := range s.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			s.onLanguageChange(langCode)
		})
		if s.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(s.localization.GetText(KeyFile), settingsItem, openItem, infoItem),
		comicMenu,
		languageMenu,
	)

	s.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (s *ComicScreen) onLanguageChange(langCode string) {
	s.localization.SetLanguage(langCode)
	s.settings.SetLanguage(langCode)
	s.refreshUITexts()
	s.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (s *ComicScreen) refreshUITexts() {
	s.refreshTitle()
	s.numberEntry.SetPlaceHolder(s.localization.GetText(KeyEnterNumber))
	s.showBtn.SetText(s.localization.GetText(KeyShow))
	s.prevBtn.SetText(IconPrevious + " " + s.localization.GetText(KeyPrevious))
	s.latestBtn.SetText(s.localization.GetText(KeyLatest) + " " + IconLatest)
	s.nextBtn.SetText(s.localization.GetText(KeyNext) + " " + IconNext)
}

func (s *ComicScreen) onShowClick() {
	if err := s.controller.Submit(s.numberEntry.Text); err != nil {
		log.Printf("Submit rejected: %v", err)
	}
}

func (s *ComicScreen) onPrevious() {
	if err := s.controller.ShowPrevious(); err != nil {
		log.Printf("Previous rejected: %v", err)
	}
}

func (s *ComicScreen) onNext() {
	if err := s.controller.ShowNext(); err != nil {
		log.Printf("Next rejected: %v", err)
	}
}

func (s *ComicScreen) onLatest() {
	if err := s.controller.ShowLatest(); err != nil {
		log.Printf("Latest rejected: %v", err)
	}
}

// onGesture maps swipes over the comic to navigation
func (s *ComicScreen) onGesture(gesture GestureType) {
	switch gesture {
	case GestureSwipeLeft:
		s.onNext()
	case GestureSwipeRight:
		s.onPrevious()
	}
}

// onShowSettings shows the settings dialog
func (s *ComicScreen) onShowSettings() {
	ShowSettingsDialog(s.window, s.settings, s.localization, s.applySettings)
}

// applySettings pushes saved settings into the running screen
func (s *ComicScreen) applySettings() {
	s.controller.SetFetcher(fetch.NewService(s.settings.GetEndpointURL(), s.settings.GetRequestTimeout()))
	s.controller.SetRestorePolicy(s.settings.GetRestorePolicy())

	if backend := s.settings.GetStorageBackend(); backend != s.backend {
		st, err := store.Open(backend, s.app)
		if err != nil {
			log.Printf("Failed to open %s storage: %v", backend, err)
			s.showNotification(s.localization.GetText(KeyStorageFailed)+": "+err.Error(), false)
		} else {
			log.Printf("Switched storage backend from %s to %s", s.backend, backend)
			closeStore(s.store)
			s.store = st
			s.backend = backend
			s.controller.SetStore(st)
		}
	}

	if s.localization.GetCurrentLanguage() != s.settings.GetLanguage() {
		s.localization.SetLanguage(s.settings.GetLanguage())
		s.refreshUITexts()
		s.createMenu()
	}
}

// comicPageURL returns the xkcd page of a comic
func (s *ComicScreen) comicPageURL(number int) (*url.URL, error) {
	return url.Parse(s.settings.GetEndpointURL() + "/" + strconv.Itoa(number) + "/")
}

// onOpenOnXKCD opens the current comic's page in the browser
func (s *ComicScreen) onOpenOnXKCD() {
	comic, ok := s.controller.Current()
	if !ok || !comic.HasNumber() {
		s.showNotification(s.localization.GetText(KeyNoComic), false)
		return
	}

	pageURL, err := s.comicPageURL(comic.Number)
	if err != nil {
		log.Printf("Invalid comic page URL: %v", err)
		return
	}
	if err := s.app.OpenURL(pageURL); err != nil {
		log.Printf("Failed to open %s: %v", pageURL, err)
	}
}

// onShowInfo shows the publication date and transcript of the current comic
func (s *ComicScreen) onShowInfo() {
	comic, ok := s.controller.Current()
	if !ok {
		s.showNotification(s.localization.GetText(KeyNoComic), false)
		return
	}

	info := container.NewVBox(widget.NewLabelWithStyle(comic.DisplayTitle(), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	if published, ok := comic.Published(); ok {
		info.Add(widget.NewLabel(s.localization.GetText(KeyPublished) + ": " + published.Format(PublishedDateFormat)))
	}
	if comic.Transcript != "" {
		transcript := widget.NewLabel(comic.Transcript)
		transcript.Wrapping = fyne.TextWrapWord
		info.Add(widget.NewLabel(s.localization.GetText(KeyTranscript) + ":"))
		info.Add(transcript)
	}

	scroll := container.NewVScroll(info)
	scroll.SetMinSize(fyne.NewSize(ImageMinWidth, ImageMinHeight))
	dialog.ShowCustom(s.localization.GetText(KeyComicInfo), s.localization.GetText(KeyClose), scroll, s.window)
}

// SetTitle implements viewer.View
func (s *ComicScreen) SetTitle(title string) {
	s.titleLabel.SetText(title)
}

// SetDescription implements viewer.View
func (s *ComicScreen) SetDescription(description string) {
	s.descriptionLabel.SetText(description)
}

// SetNumber implements viewer.View
func (s *ComicScreen) SetNumber(number string) {
	s.numberEntry.SetText(number)
}

// ShowDetails implements viewer.DetailView
func (s *ComicScreen) ShowDetails(comic model.Comic) {
	if published, ok := comic.Published(); ok {
		s.dateLabel.SetText(published.Format(PublishedDateFormat))
		return
	}
	s.dateLabel.SetText("")
}

// ShowImage implements viewer.View. The image downloads in the background;
// a result that arrives after a newer ShowImage or ClearImage is dropped.
func (s *ComicScreen) ShowImage(imageURL string) {
	gen := s.imageGen.Add(1)
	loader := s.loadImage

	s.imageLoads.Add(1)
	go func() {
		defer s.imageLoads.Done()
		res, err := loader(imageURL)
		fyne.Do(func() {
			if s.imageGen.Load() != gen {
				return
			}
			if err != nil {
				log.Printf("Failed to load image %s: %v", imageURL, err)
				s.setImage(nil)
				return
			}
			s.setImage(res)
		})
	}()
}

// ClearImage implements viewer.View
func (s *ComicScreen) ClearImage() {
	s.imageGen.Add(1)
	s.setImage(nil)
}

func (s *ComicScreen) setImage(res fyne.Resource) {
	s.image.File = ""
	s.image.Resource = res
	s.image.Refresh()
}

// SetBusy implements viewer.View
func (s *ComicScreen) SetBusy(busy bool) {
	if busy {
		s.loadingMsg = s.localization.GetText(KeyLoadingComic)
		s.showNotification(s.loadingMsg, true)
		return
	}

	// Keep any notice raised while the fetch completed
	if s.notificationLabel.Text == s.loadingMsg {
		s.hideNotification()
	}
}

// Notify implements viewer.Notifier
func (s *ComicScreen) Notify(notice viewer.Notice) {
	s.showNotification(s.localization.NoticeText(notice), false)
}

// showNotification displays a message in the notification panel under the number input.
// When spinning is true, a spinner is shown and the panel stays until hidden.
func (s *ComicScreen) showNotification(message string, spinning bool) {
	gen := s.noticeGen.Add(1)

	s.notificationLabel.SetText(message)
	if spinning {
		s.notificationSpinner.Show()
	} else {
		s.notificationSpinner.Hide()
	}
	s.notificationContainer.Show()
	s.notificationContainer.Refresh()

	if spinning || s.autoHide <= 0 {
		return
	}
	go func() {
		time.Sleep(s.autoHide)
		fyne.Do(func() {
			if s.noticeGen.Load() == gen {
				s.hideNotification()
			}
		})
	}()
}

// hideNotification hides the notification panel
func (s *ComicScreen) hideNotification() {
	s.noticeGen.Add(1)
	s.notificationSpinner.Hide()
	s.notificationContainer.Hide()
}

// closeStore releases stores that hold resources
func closeStore(st store.Store) {
	closer, ok := st.(io.Closer)
	if !ok {
		return
	}
	if err := closer.Close(); err != nil {
		log.Printf("Failed to close store: %v", err)
	}
}
