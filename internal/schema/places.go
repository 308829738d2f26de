package schema

type PlaceSearchParams struct {
	Query string `form:"query"`
}

type ReverseGeocodeParams struct {
	Latitude  *float64 `form:"latitude" binding:"required"`
	Longitude *float64 `form:"longitude" binding:"required"`
}

type Suggestion struct {
	Label          string `json:"label"`
	SecondaryLabel string `json:"secondaryLabel"`
	PlaceID        string `json:"placeId"`
}

type PlaceSearchResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
}

type PlaceDetailsResponse struct {
	PlaceID    string     `json:"placeId"`
	Coordinate Coordinate `json:"coordinate"`
}

type ReverseGeocodeResponse struct {
	Label string `json:"label"`
}
