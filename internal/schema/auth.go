package schema

type OTPRequestParams struct {
	CountryCode string `json:"countryCode"`
	Contact     string `json:"contact"`
}

type OTPChallengeResponse struct {
	Contact string `json:"contact"`
	// ResendAfter in seconds
	ResendAfter int `json:"resendAfter"`
}

type OTPVerifyParams struct {
	Contact string `json:"contact" binding:"required"`
	// Code as typed or pasted, used when Digits are missing
	Code   string   `json:"code"`
	Digits []string `json:"digits"`
}

type OTPVerifyResponse struct {
	Verified bool     `json:"verified"`
	Next     string   `json:"next,omitempty"`
	Message  string   `json:"message,omitempty"`
	Digits   []string `json:"digits"`
	Focus    int      `json:"focus"`
}
