package useragent

import (
	ua "github.com/mileusna/useragent"
)

// ClientInfo - распознанные семейства клиента из строки User-Agent
// (nil в поле означает, что семейство распознать не удалось)
type ClientInfo struct {
	Browser *string // семейство браузера (Chrome, Safari, Firefox и т.д.)
	Device  *string // семейство устройства (iPhone, Desktop, Mobile и т.д.)
	OS      *string // семейство операционной системы (Windows, iOS, Android и т.д.)
}

// Parse разбирает строку User-Agent по принципу "лучшее из возможного":
// пустая или нераспознанная строка даёт пустые поля, ошибок не бывает
func Parse(userAgent string) ClientInfo {

	var info ClientInfo

	if userAgent == "" {
		return info
	}

	parsed := ua.Parse(userAgent)

	if parsed.Name != "" {
		info.Browser = &parsed.Name
	}

	if parsed.OS != "" {
		info.OS = &parsed.OS
	}

	// если конкретное устройство не определено, подставляем категорию
	device := parsed.Device
	if device == "" {
		switch {
		case parsed.Bot:
			device = "Bot"
		case parsed.Mobile:
			device = "Mobile"
		case parsed.Tablet:
			device = "Tablet"
		case parsed.Desktop:
			device = "Desktop"
		}
	}
	if device != "" {
		info.Device = &device
	}

	return info
}
