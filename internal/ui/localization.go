package ui

import (
	"fmt"

	"github.com/ytget/xkcd-viewer/internal/viewer"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyShow              = "show"
	KeyPrevious          = "previous"
	KeyNext              = "next"
	KeyLatest            = "latest"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyComic             = "comic"
	KeyLanguage          = "language"
	KeyEnterNumber       = "enter_number"
	KeyPleaseEnterNumber = "please_enter_number"
	KeyInvalidNumber     = "invalid_number"
	KeyLoadingComic      = "loading_comic"
	KeyAlreadyLoading    = "already_loading"
	KeyErrorLoadingComic = "error_loading_comic"
	KeySaveFailed        = "save_failed"
	KeyRestoreFailed     = "restore_failed"
	KeyOpenOnXKCD        = "open_on_xkcd"
	KeyComicInfo         = "comic_info"
	KeyNoComic           = "no_comic"
	KeyPublished         = "published"
	KeyTranscript        = "transcript"
	KeyStorageBackend    = "storage_backend"
	KeyRestorePolicy     = "restore_policy"
	KeyEndpointURL       = "endpoint_url"
	KeyRequestTimeout    = "request_timeout"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyClose             = "close"
	KeySettingsSaved     = "settings_saved"
	KeyStorageFailed     = "storage_failed"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// NoticeText returns the localized message for a controller notice
func (l *Localization) NoticeText(notice viewer.Notice) string {
	var key string
	switch notice.Kind {
	case viewer.NoticeEmptyInput:
		key = KeyPleaseEnterNumber
	case viewer.NoticeInvalidNumber:
		key = KeyInvalidNumber
	case viewer.NoticeBusy:
		key = KeyAlreadyLoading
	case viewer.NoticeFetchFailed:
		key = KeyErrorLoadingComic
	case viewer.NoticeSaveFailed:
		key = KeySaveFailed
	case viewer.NoticeRestoreFailed:
		key = KeyRestoreFailed
	default:
		return notice.Detail
	}

	if notice.Detail == "" {
		return l.GetText(key)
	}
	return fmt.Sprintf("%s: %s", l.GetText(key), notice.Detail)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "xkcd Viewer",
		KeyShow:              "Show",
		KeyPrevious:          "Previous",
		KeyNext:              "Next",
		KeyLatest:            "Latest",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyComic:             "Comic",
		KeyLanguage:          "Language",
		KeyEnterNumber:       "Comic number",
		KeyPleaseEnterNumber: "Please enter a comic number.",
		KeyInvalidNumber:     "Please enter a valid positive number.",
		KeyLoadingComic:      "Loading comic...",
		KeyAlreadyLoading:    "A comic is already loading",
		KeyErrorLoadingComic: "Error loading comic",
		KeySaveFailed:        "Could not save comic",
		KeyRestoreFailed:     "Could not restore the last comic",
		KeyOpenOnXKCD:        "Open on xkcd.com",
		KeyComicInfo:         "Comic Info",
		KeyNoComic:           "No comic loaded",
		KeyPublished:         "Published",
		KeyTranscript:        "Transcript",
		KeyStorageBackend:    "Storage",
		KeyRestorePolicy:     "Restore Failures",
		KeyEndpointURL:       "Endpoint URL",
		KeyRequestTimeout:    "Request Timeout (seconds)",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyClose:             "Close",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyStorageFailed:     "Could not open storage",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Просмотр xkcd",
		KeyShow:              "Показать",
		KeyPrevious:          "Назад",
		KeyNext:              "Вперёд",
		KeyLatest:            "Последний",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyComic:             "Комикс",
		KeyLanguage:          "Язык",
		KeyEnterNumber:       "Номер комикса",
		KeyPleaseEnterNumber: "Пожалуйста, введите номер комикса.",
		KeyInvalidNumber:     "Пожалуйста, введите положительное число.",
		KeyLoadingComic:      "Загрузка комикса...",
		KeyAlreadyLoading:    "Комикс уже загружается",
		KeyErrorLoadingComic: "Ошибка загрузки комикса",
		KeySaveFailed:        "Не удалось сохранить комикс",
		KeyRestoreFailed:     "Не удалось восстановить последний комикс",
		KeyOpenOnXKCD:        "Открыть на xkcd.com",
		KeyComicInfo:         "О комиксе",
		KeyNoComic:           "Комикс не загружен",
		KeyPublished:         "Опубликован",
		KeyTranscript:        "Расшифровка",
		KeyStorageBackend:    "Хранилище",
		KeyRestorePolicy:     "Ошибки восстановления",
		KeyEndpointURL:       "Адрес сервера",
		KeyRequestTimeout:    "Таймаут запроса (секунды)",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeyClose:             "Закрыть",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyStorageFailed:     "Не удалось открыть хранилище",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "Visualizador xkcd",
		KeyShow:              "Mostrar",
		KeyPrevious:          "Anterior",
		KeyNext:              "Próximo",
		KeyLatest:            "Mais recente",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyComic:             "Quadrinho",
		KeyLanguage:          "Idioma",
		KeyEnterNumber:       "Número do quadrinho",
		KeyPleaseEnterNumber: "Por favor, digite o número do quadrinho.",
		KeyInvalidNumber:     "Por favor, digite um número positivo válido.",
		KeyLoadingComic:      "Carregando quadrinho...",
		KeyAlreadyLoading:    "Um quadrinho já está carregando",
		KeyErrorLoadingComic: "Erro ao carregar quadrinho",
		KeySaveFailed:        "Não foi possível salvar o quadrinho",
		KeyRestoreFailed:     "Não foi possível restaurar o último quadrinho",
		KeyOpenOnXKCD:        "Abrir no xkcd.com",
		KeyComicInfo:         "Informações",
		KeyNoComic:           "Nenhum quadrinho carregado",
		KeyPublished:         "Publicado",
		KeyTranscript:        "Transcrição",
		KeyStorageBackend:    "Armazenamento",
		KeyRestorePolicy:     "Falhas de Restauração",
		KeyEndpointURL:       "URL do Servidor",
		KeyRequestTimeout:    "Tempo Limite (segundos)",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeyClose:             "Fechar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyStorageFailed:     "Não foi possível abrir o armazenamento",
	}
}
