package response

const QuoteSentMessage = "Quote sent successfully."

// SendQuoteEmailResponse is the success body of POST /sendQuoteEmail.
type SendQuoteEmailResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Quote sent successfully."`
}

// AckResponse is the success body of POST /quoteViewed.
type AckResponse struct {
	Success bool `json:"success" example:"true"`
}

func QuoteSent() SendQuoteEmailResponse {
	return SendQuoteEmailResponse{Success: true, Message: QuoteSentMessage}
}

func Ack() AckResponse {
	return AckResponse{Success: true}
}
