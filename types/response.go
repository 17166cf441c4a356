package types

// AckResponse acknowledges a successfully relayed contact submission.
type AckResponse struct {
	OK bool `json:"ok"`
}

// ContactErrorResponse is the error shape of the contact endpoint.
type ContactErrorResponse struct {
	Error string `json:"error"`
}

// InquiryResponse is the response shape of the registration endpoint, for
// both success ({ok:true}) and failure ({ok:false, message}).
type InquiryResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}
