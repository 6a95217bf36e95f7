package submit_checkout

// RedirectResponse HTTP response model успешной отправки:
// клиент выполняет полный переход по этому адресу
type RedirectResponse struct {
	URL string `json:"url"`
}
