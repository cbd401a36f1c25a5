package handlers

import "net/http"

// Коды уведомлений в параметре ?msg= после редиректа
const (
	NoticeCreated = "created"
	NoticeUpdated = "updated"
	NoticeDeleted = "deleted"
)

var notices = map[string]string{
	NoticeCreated: "Pomyślnie dodano nowe auto!",
	NoticeUpdated: "Pomyślnie zaktualizowano auto!",
	NoticeDeleted: "Samochód został pomyślnie usunięty.",
}

// NoticeFromRequest текст уведомления из ?msg=, пустая строка для неизвестного кода
func NoticeFromRequest(r *http.Request) string {
	return notices[r.URL.Query().Get("msg")]
}

// WithNotice добавляет код уведомления к адресу
func WithNotice(target, notice string) string {
	return target + "?msg=" + notice
}
