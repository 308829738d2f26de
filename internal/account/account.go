package account

type Profile struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	AvatarURL string `json:"avatarUrl"`
	CO2Saved  string `json:"co2Saved"`
	Verified  bool   `json:"verified"`
}

// Stats are the dashboard counters of the home screen.
type Stats struct {
	CO2Saved string  `json:"co2Saved"`
	EVRides  int     `json:"evRides"`
	Rating   float64 `json:"rating"`
}

type Account struct {
	Profile Profile `json:"profile"`
	Stats   Stats   `json:"stats"`
}

type Store struct {
	account Account
}

func NewStaticStore() *Store {
	return &Store{
		account: Account{
			Profile: Profile{
				Name:      "Alex Johnson",
				Email:     "alex.j@example.com",
				Phone:     "+1 (555) 012-3456",
				AvatarURL: "https://i.pravatar.cc/200?img=12",
				CO2Saved:  "45kg",
				Verified:  true,
			},
			Stats: Stats{
				CO2Saved: "12.6kg",
				EVRides:  4,
				Rating:   4.8,
			},
		},
	}
}

// Current returns the signed in rider. There is a single rider until
// accounts are backed by a user service.
func (s *Store) Current() Account {
	return s.account
}
