package synth

// Reference data used to fill fields the user did not provide. The
// company/office table is the source of truth for valid pairs: a synthesized
// claim never carries an office outside its company's list.

var adjusterNames = []string{
	"Ryan Cooper", "Olivia Harris", "Daniel Brooks", "Chloe Bennett",
	"Ethan Carter", "Mia Foster", "Noah Evans", "Ava Green",
	"Liam Jenkins", "Isabella King",
}

var holderNames = []string{
	"James Patterson", "Maria Alvarez", "Robert Chen", "Linda Okafor",
	"Michael Novak", "Sarah Whitfield", "David Lindgren", "Emily Tran",
	"Thomas Berger", "Anna Kowalski",
}

var statuses = []string{"Submitted", "Approved", "Rejected", "Repair in Progress"}

// companyNames keeps a stable ordering for seeded random selection; Go map
// iteration order would break reproducibility.
var companyNames = []string{
	"Alpha Insurance", "Beta Insurance", "Delta Insurance", "Gamma Insurance",
}

var companyOffices = map[string][]string{
	"Alpha Insurance": {"Chicago Office", "Los Angeles Office", "New York Office"},
	"Beta Insurance":  {"Houston Office", "Miami Office", "Phoenix Office"},
	"Delta Insurance": {"Atlanta Office", "Dallas Office", "San Francisco Office"},
	"Gamma Insurance": {"Boston Office", "Denver Office", "Seattle Office"},
}

type vehicle struct {
	make_ string
	model string
	year  int
}

var defaultVehicles = []vehicle{
	{"Toyota", "Camry", 2020},
	{"Honda", "Civic", 2021},
	{"Ford", "F-150", 2019},
	{"Chevrolet", "Malibu", 2022},
	{"Nissan", "Altima", 2018},
	{"BMW", "3 Series", 2020},
	{"Mercedes-Benz", "C-Class", 2021},
	{"Tesla", "Model 3", 2023},
	{"Subaru", "Outback", 2019},
}

type incidentImpact struct {
	description string
	impact      string
}

// incidentImpacts pairs canonical incident phrasings with the matching point
// of impact, so jointly generated fields stay mutually consistent.
var incidentImpacts = []incidentImpact{
	{"Rear-ended at a traffic signal", "Rear bumper"},
	{"Hit a parked car while reversing", "Rear bumper"},
	{"Backed into a pole", "Rear bumper"},
	{"Minor collision in parking lot, front impact", "Front bumper"},
	{"Hit a deer crossing the road", "Front bumper"},
	{"Collision with debris on highway", "Front bumper/Underbody"},
	{"Side-swiped driver side while parked", "Driver side"},
	{"T-boned on the driver side at intersection", "Driver side"},
	{"Another car merged into driver side lane", "Driver side"},
	{"Side-swiped passenger side", "Passenger side"},
	{"Scraped passenger side against wall", "Passenger side"},
	{"Object fell on roof", "Roof"},
	{"Hail damage", "Roof/Hood/Trunk"},
	{"Windshield cracked by rock from truck", "Windshield"},
	{"Hit a pothole causing tire/wheel damage", "Wheel/Suspension"},
	{"Skidded on ice and hit guardrail", "Front/Side"},
	{"Hydroplaned into a ditch", "Underbody/Side"},
	{"Vandalism - keyed along the side", "Driver side/Passenger side"},
	{"Attempted theft, broken window", "Driver side window/Passenger side window"},
	{"Fender bender in slow traffic", "Front bumper/Rear bumper"},
}

// defaultImpacts is the deduplicated set of impact values from the table,
// in first-seen order.
var defaultImpacts = func() []string {
	seen := make(map[string]bool)
	var out []string
	for _, ii := range incidentImpacts {
		if !seen[ii.impact] {
			seen[ii.impact] = true
			out = append(out, ii.impact)
		}
	}
	return out
}()
