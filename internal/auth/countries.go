package auth

type Country struct {
	Label string `json:"label"`
	Code  string `json:"code"`
}

var Countries = []Country{
	{Label: "India (+91)", Code: "+91"},
	{Label: "USA (+1)", Code: "+1"},
	{Label: "UK (+44)", Code: "+44"},
	{Label: "Australia (+61)", Code: "+61"},
	{Label: "Singapore (+65)", Code: "+65"},
}

func DefaultCountry() Country {
	return Countries[0]
}

// FindCountry looks up a dialing code. An empty code selects the default country.
func FindCountry(code string) (Country, bool) {
	if code == "" {
		return DefaultCountry(), true
	}

	for _, country := range Countries {
		if country.Code == code {
			return country, true
		}
	}

	return Country{}, false
}
