package dto

type PaymentIntentRequest struct {
	UpdatedPrice float64 `json:"updatedPrice"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type CompletePaymentRequest struct {
	TransactionID string  `json:"transactionId"`
	Amount        float64 `json:"amount"`
	UserEmail     string  `json:"userEmail"`
}

type UpsertUserRequest struct {
	Name  string `json:"name"`
	Photo string `json:"photo"`
}

type UpdateQuantityRequest struct {
	Quantity int32 `json:"quantity"`
}

type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}
