package cancellation

// Request тело запроса на отмену: только непрозрачный токен резервации.
// Токен выдаёт внешняя система, здесь он не генерируется и не разбирается.
type Request struct {
	Token string `json:"token"`
}

// Result ответ сервиса отмены. В нормальном случае приходит message,
// при отказе error; вызывающая сторона показывает первое непустое поле.
type Result struct {
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Text возвращает первое непустое из message/error
func (r *Result) Text() string {
	if r.Message != "" {
		return r.Message
	}
	return r.Error
}
