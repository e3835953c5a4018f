package entity

// Story — одна запись листинга: заголовок, ссылка и очки.
// Создаётся экстрактором, дальше по конвейеру не мутирует.
type Story struct {
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
	Score int    `json:"score"`
}
