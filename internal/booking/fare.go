package booking

type TollOption string

const (
	TollWithout TollOption = "without"
	TollWith    TollOption = "with"
)

func (t TollOption) Label() string {
	if t == TollWith {
		return "With Toll"
	}

	return "Without Toll"
}

const Currency = "INR"

type FareOption struct {
	ServiceType ServiceType
	Toll        TollOption
	Amount      int64
}

func (f FareOption) Label() string {
	return f.Toll.Label()
}

// Amounts are whole rupees.
var fareTable = []FareOption{
	{ServiceType: ServiceTypeDrop, Toll: TollWithout, Amount: 899},
	{ServiceType: ServiceTypeDrop, Toll: TollWith, Amount: 999},
	{ServiceType: ServiceTypePickup, Toll: TollWithout, Amount: 999},
	{ServiceType: ServiceTypePickup, Toll: TollWith, Amount: 1099},
}

// FaresFor lists the fare options of a service type. Anything but pickup is
// priced as a drop.
func FaresFor(serviceType ServiceType) []FareOption {
	if serviceType != ServiceTypePickup {
		serviceType = ServiceTypeDrop
	}

	options := []FareOption{}
	for _, option := range fareTable {
		if option.ServiceType == serviceType {
			options = append(options, option)
		}
	}

	return options
}

// SelectFare never fails: an unmatched toll option falls back to the first
// option of the service type.
func SelectFare(serviceType ServiceType, toll TollOption) FareOption {
	options := FaresFor(serviceType)

	for _, option := range options {
		if option.Toll == toll {
			return option
		}
	}

	return options[0]
}

func ResolveFare(serviceType ServiceType, toll TollOption) int64 {
	return SelectFare(serviceType, toll).Amount
}

type FareQuote struct {
	ServiceType  ServiceType
	Toll         TollOption
	ServiceLabel string
	TollLabel    string
	Amount       int64
	Currency     string
}

func (q FareQuote) Description() string {
	return q.ServiceLabel + " — " + q.TollLabel
}

func Quote(serviceType ServiceType, toll TollOption) FareQuote {
	option := SelectFare(serviceType, toll)

	return FareQuote{
		ServiceType:  option.ServiceType,
		Toll:         option.Toll,
		ServiceLabel: option.ServiceType.Label(),
		TollLabel:    option.Label(),
		Amount:       option.Amount,
		Currency:     Currency,
	}
}
