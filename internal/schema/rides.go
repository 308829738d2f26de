package schema

type RidesParams struct {
	Status string `form:"status"`
}
