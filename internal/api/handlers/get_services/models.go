package get_services

import "github.com/apexshine/APX-ConfiguratorService/internal/domain"

// ServiceResponse HTTP-представление услуги каталога
type ServiceResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Price       int    `json:"price"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// ServiceListResponse HTTP response model
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainServices конвертирует каталожные записи в HTTP response
func FromDomainServices(services []domain.Service) *ServiceListResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, svc := range services {
		out = append(out, ServiceResponse{
			ID:          svc.ID,
			Title:       svc.Title,
			Price:       svc.Price,
			Duration:    svc.DurationLabel,
			Description: svc.Description,
		})
	}
	return &ServiceListResponse{Services: out}
}
