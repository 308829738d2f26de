package rides

import (
	"errors"

	"bitbucket.org/malama/ride-booking/internal/tools/converting"
)

type Status string

const (
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusUpcoming  Status = "upcoming"
)

func (s Status) Valid() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusUpcoming
}

var ErrorUnknownStatus = errors.New("unknown ride status")

type Route struct {
	PickupName     string `json:"pickupName"`
	PickupAddress  string `json:"pickupAddress"`
	DropoffName    string `json:"dropoffName"`
	DropoffAddress string `json:"dropoffAddress"`
}

type Ride struct {
	ID       string   `json:"id"`
	Period   string   `json:"period"`
	Date     string   `json:"date"`
	Time     string   `json:"time"`
	Status   Status   `json:"status"`
	Route    Route    `json:"route"`
	Fare     int64    `json:"fare"`
	Currency string   `json:"currency"`
	CO2Saved string   `json:"co2Saved,omitempty"`
	Rating   *float64 `json:"rating,omitempty"`
}

type Section struct {
	Title string `json:"title"`
	Rides []Ride `json:"rides"`
}

// Store serves the ride history. Bookings are not persisted, so the history
// is a fixed list.
type Store struct {
	rides []Ride
}

func NewStaticStore() *Store {
	return &Store{
		rides: []Ride{
			{
				ID:     "1",
				Period: "This Month",
				Date:   "12 Feb",
				Time:   "06:30 AM",
				Status: StatusCompleted,
				Route: Route{
					PickupName:     "Whitefield",
					PickupAddress:  "ITPL Main Rd, Whitefield, Bengaluru 560066",
					DropoffName:    "Kempegowda Airport",
					DropoffAddress: "KIAL Rd, Devanahalli, Bengaluru 560300",
				},
				Fare:     1250,
				Currency: "INR",
				CO2Saved: "2.4kg",
				Rating:   converting.PointerToValue(4.8),
			},
			{
				ID:     "2",
				Period: "This Month",
				Date:   "8 Feb",
				Time:   "11:15 PM",
				Status: StatusCompleted,
				Route: Route{
					PickupName:     "Kempegowda Airport",
					PickupAddress:  "Terminal 1, KIAL Rd, Devanahalli, Bengaluru 560300",
					DropoffName:    "Mahavir Ranches",
					DropoffAddress: "Jigani – Bommasandra Link Rd, Anekal, Bengaluru 562106",
				},
				Fare:     1450,
				Currency: "INR",
				CO2Saved: "3.1kg",
			},
			{
				ID:     "3",
				Period: "Last Month",
				Date:   "25 Jan",
				Time:   "04:45 AM",
				Status: StatusCancelled,
				Route: Route{
					PickupName:     "Marathahalli",
					PickupAddress:  "Marathahalli Bridge, Bengaluru 560037",
					DropoffName:    "Kempegowda Airport",
					DropoffAddress: "KIAL Rd, Devanahalli, Bengaluru 560300",
				},
				Fare:     1100,
				Currency: "INR",
			},
			{
				ID:     "4",
				Period: "Last Month",
				Date:   "18 Jan",
				Time:   "09:00 PM",
				Status: StatusCompleted,
				Route: Route{
					PickupName:     "Kempegowda Airport",
					PickupAddress:  "Terminal 2, KIAL Rd, Devanahalli, Bengaluru 560300",
					DropoffName:    "Bellandur",
					DropoffAddress: "Outer Ring Rd, Bellandur, Bengaluru 560103",
				},
				Fare:     1350,
				Currency: "INR",
				CO2Saved: "2.8kg",
				Rating:   converting.PointerToValue(4.5),
			},
		},
	}
}

// History lists rides with the given status, every ride for an empty one.
func (s *Store) History(status Status) ([]Ride, error) {
	if status != "" && !status.Valid() {
		return nil, ErrorUnknownStatus
	}

	rides := []Ride{}
	for _, ride := range s.rides {
		if status == "" || ride.Status == status {
			rides = append(rides, ride)
		}
	}

	return rides, nil
}

// Sections groups rides by period keeping the order they were listed in.
func Sections(rides []Ride) []Section {
	sections := []Section{}
	index := map[string]int{}

	for _, ride := range rides {
		i, ok := index[ride.Period]
		if !ok {
			i = len(sections)
			index[ride.Period] = i
			sections = append(sections, Section{Title: ride.Period, Rides: []Ride{}})
		}

		sections[i].Rides = append(sections[i].Rides, ride)
	}

	return sections
}
