package select_service

// SelectServiceRequest HTTP request model
type SelectServiceRequest struct {
	ServiceID string `json:"serviceId"`
}
