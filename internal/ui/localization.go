package ui

import (
	"github.com/ytget/tracker-launcher/internal/form"
	"github.com/ytget/tracker-launcher/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization. Dialog messages use the form.Msg* keys.
const (
	KeyAppTitle        = "app_title"
	KeyFile            = "file"
	KeyPreferences     = "preferences"
	KeyLanguage        = "language"
	KeyAppearance      = "appearance"
	KeyChooseFile      = "choose_file"
	KeyChooseFolder    = "choose_folder"
	KeyRunTracker      = "run_tracker"
	KeyCancelRun       = "cancel_run"
	KeyOpenResults     = "open_results"
	KeyRevealResults   = "reveal_results"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeyOK              = "ok"
	KeyStatusReady     = "status_ready"
	KeyStatusRunning   = "status_running"
	KeyStatusStopping  = "status_stopping"
	KeyStatusSucceeded = "status_succeeded"
	KeyStatusFailed    = "status_failed"
	KeyStatusCancelled = "status_cancelled"
	KeyOpenFailed      = "open_failed"
	KeyAppearanceDark  = "appearance_dark"
	KeyAppearanceLight = "appearance_light"
	KeySystemDefault   = "system_default"
)

// FieldLabelKey returns the localization key of a field label
func FieldLabelKey(f model.Field) string {
	return "label_" + f.Key()
}

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
		// No locale detection, system means English
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

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "Tracker GUI",
		KeyFile:            "File",
		KeyPreferences:     "Preferences",
		KeyLanguage:        "Language",
		KeyAppearance:      "Appearance",
		KeyChooseFile:      "Choose File",
		KeyChooseFolder:    "Choose Folder",
		KeyRunTracker:      "Run Tracker",
		KeyCancelRun:       "Cancel",
		KeyOpenResults:     "Open Results",
		KeyRevealResults:   "Open results directory after a successful run",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeyOK:              "OK",
		KeyStatusReady:     "Ready",
		KeyStatusRunning:   "Running… %s",
		KeyStatusStopping:  "Stopping…",
		KeyStatusSucceeded: "Finished in %s",
		KeyStatusFailed:    "Failed after %s",
		KeyStatusCancelled: "Cancelled after %s",
		KeyOpenFailed:      "Failed to open results directory: %v",
		KeyAppearanceDark:  "Dark",
		KeyAppearanceLight: "Light",
		KeySystemDefault:   "System Default",

		FieldLabelKey(model.FieldBitsThreshold):  "Bits Threshold:",
		FieldLabelKey(model.FieldModelPath):      "Model Path:",
		FieldLabelKey(model.FieldSequencesDir):   "Sequences Directory:",
		FieldLabelKey(model.FieldAnnotationsDir): "Annotations Directory:",
		FieldLabelKey(model.FieldResultsDir):     "Results Directory:",
		FieldLabelKey(model.FieldFPSFile):        "FPS File:",

		form.MsgTitleError:        "Error",
		form.MsgTitleSuccess:      "Success",
		form.MsgTitleCancelled:    "Cancelled",
		form.MsgFillAllFields:     "Please fill out all fields",
		form.MsgExecutableMissing: "Tracker executable not found",
		form.MsgRunSucceeded:      "Tracker executed successfully",
		form.MsgRunFailed:         "Tracker execution failed: %s",
		form.MsgLaunchFailed:      "Failed to run tracker: %v",
		form.MsgRunCancelled:      "Tracker run cancelled",
		form.MsgRunInProgress:     "Tracker is already running",
		form.MsgSaveFailed:        "Failed to save settings: %v",
		form.MsgLoadFailed:        "Failed to load settings: %v",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:        "Трекер",
		KeyFile:            "Файл",
		KeyPreferences:     "Параметры",
		KeyLanguage:        "Язык",
		KeyAppearance:      "Оформление",
		KeyChooseFile:      "Выбрать файл",
		KeyChooseFolder:    "Выбрать папку",
		KeyRunTracker:      "Запустить трекер",
		KeyCancelRun:       "Отмена",
		KeyOpenResults:     "Открыть результаты",
		KeyRevealResults:   "Открывать папку результатов после успешного запуска",
		KeySave:            "Сохранить",
		KeyCancel:          "Отмена",
		KeyOK:              "ОК",
		KeyStatusReady:     "Готово",
		KeyStatusRunning:   "Выполняется… %s",
		KeyStatusStopping:  "Остановка…",
		KeyStatusSucceeded: "Завершено за %s",
		KeyStatusFailed:    "Ошибка через %s",
		KeyStatusCancelled: "Отменено через %s",
		KeyOpenFailed:      "Не удалось открыть папку результатов: %v",
		KeyAppearanceDark:  "Тёмное",
		KeyAppearanceLight: "Светлое",
		KeySystemDefault:   "Системное",

		FieldLabelKey(model.FieldBitsThreshold):  "Порог бит:",
		FieldLabelKey(model.FieldModelPath):      "Путь к модели:",
		FieldLabelKey(model.FieldSequencesDir):   "Папка последовательностей:",
		FieldLabelKey(model.FieldAnnotationsDir): "Папка аннотаций:",
		FieldLabelKey(model.FieldResultsDir):     "Папка результатов:",
		FieldLabelKey(model.FieldFPSFile):        "Файл FPS:",

		form.MsgTitleError:        "Ошибка",
		form.MsgTitleSuccess:      "Успех",
		form.MsgTitleCancelled:    "Отменено",
		form.MsgFillAllFields:     "Пожалуйста, заполните все поля",
		form.MsgExecutableMissing: "Исполняемый файл трекера не найден",
		form.MsgRunSucceeded:      "Трекер успешно выполнен",
		form.MsgRunFailed:         "Ошибка выполнения трекера: %s",
		form.MsgLaunchFailed:      "Не удалось запустить трекер: %v",
		form.MsgRunCancelled:      "Запуск трекера отменён",
		form.MsgRunInProgress:     "Трекер уже запущен",
		form.MsgSaveFailed:        "Не удалось сохранить настройки: %v",
		form.MsgLoadFailed:        "Не удалось загрузить настройки: %v",
	}
}
