package enter_details

import "github.com/apexshine/APX-ConfiguratorService/internal/service/configurator/models"

// ContactDetailsRequest HTTP request model.
// Поля хранятся как свободный текст; непустые name и email проверяет гвард отправки,
// а не этот шаг.
type ContactDetailsRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *ContactDetailsRequest) ToServiceRequest() *models.ContactRequest {
	return &models.ContactRequest{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
	}
}
