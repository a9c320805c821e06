// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package namebank

// localeData holds the word banks for one locale.
type localeData struct {
	firstNamesMale   []string
	firstNamesFemale []string
	surnames         []string
	placeStems       []string
	placeEndings     []string
	regions          []string
	occupations      []string
	streetWords      []string
	streetSuffixes   []string
	phonePatterns    []string
	postcodePatterns []string
	emailDomains     []string
}

// locales maps locale codes to their banks. Unlisted locales fall back to
// en_US.
var locales = map[string]*localeData{
	"en_US": {
		firstNamesMale: []string{
			"James", "Michael", "Robert", "David", "William", "Thomas",
			"Daniel", "Matthew", "Christopher", "Andrew", "Joshua", "Ethan",
			"Ryan", "Tyler", "Brandon", "Kevin", "Eric", "Jacob", "Nathan", "Carl",
		},
		firstNamesFemale: []string{
			"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Susan",
			"Jessica", "Sarah", "Karen", "Lisa", "Nancy", "Emily",
			"Ashley", "Megan", "Rachel", "Laura", "Amanda", "Hannah", "Grace", "Olivia",
		},
		surnames: []string{
			"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia",
			"Miller", "Davis", "Rodriguez", "Martinez", "Anderson", "Taylor",
			"Thomas", "Moore", "Jackson", "Martin", "Lee", "Thompson", "White", "Harris",
		},
		placeStems: []string{
			"River", "Spring", "Fair", "Mill", "Oak", "Lake",
			"Clear", "Green", "Pleasant", "Cedar", "Maple", "Frank",
		},
		placeEndings: []string{"ville", "field", "town", "burg", "dale", "wood", " Falls", " Creek"},
		regions: []string{
			"California", "Texas", "New York", "Ohio", "Georgia", "Oregon",
			"Michigan", "Virginia", "Colorado", "Montana", "Vermont", "Iowa",
		},
		occupations: []string{
			"Teacher", "Nurse", "Electrician", "Accountant", "Software Developer",
			"Sales Manager", "Chef", "Mechanic", "Librarian", "Plumber",
			"Graphic Designer", "Pharmacist", "Carpenter", "Paralegal",
			"Dental Hygienist", "Truck Driver", "Social Worker", "Surveyor",
		},
		streetWords:      []string{"Oak", "Main", "Washington", "Cedar", "Elm", "Lincoln", "Sunset", "Prospect"},
		streetSuffixes:   []string{"Street", "Avenue", "Drive", "Lane", "Road", "Court"},
		phonePatterns:    []string{"(###) ###-####", "###-###-####"},
		postcodePatterns: []string{"#####"},
		emailDomains:     []string{"example.com", "mailbox.org", "fastmail.com", "inbox.net"},
	},
	"en_GB": {
		firstNamesMale: []string{
			"Oliver", "George", "Harry", "Jack", "Charlie", "Alfred",
			"Arthur", "Henry", "Edward", "Frederick", "Albert", "Stanley",
			"Graham", "Nigel", "Colin", "Derek", "Trevor", "Malcolm", "Ian", "Clive",
		},
		firstNamesFemale: []string{
			"Olivia", "Amelia", "Isla", "Emily", "Poppy", "Florence",
			"Margaret", "Dorothy", "Beryl", "Joan", "Audrey", "Vera",
			"Gillian", "Wendy", "Pamela", "Janet", "Sheila", "Carol", "Fiona", "Hazel",
		},
		surnames: []string{
			"Smith", "Jones", "Taylor", "Brown", "Williams", "Wilson",
			"Johnson", "Davies", "Robinson", "Wright", "Thompson", "Evans",
			"Walker", "White", "Roberts", "Green", "Hall", "Wood", "Clarke", "Hughes",
		},
		placeStems: []string{
			"Ashby", "Nether", "Long", "Great", "Little", "Upper",
			"Market", "Chipping", "Stoke", "Norton", "Sutton", "Melton",
		},
		placeEndings: []string{" Magna", " Parva", "ton", "ham", "worth", "bury", "field", " on the Wold"},
		regions: []string{
			"Kent", "Yorkshire", "Devon", "Norfolk", "Cumbria", "Somerset",
			"Suffolk", "Dorset", "Shropshire", "Wiltshire", "Lancashire", "Surrey",
		},
		occupations: []string{
			"Teacher", "Nurse", "Electrician", "Accountant", "Solicitor",
			"Shopkeeper", "Publican", "Postman", "Builder", "Gardener",
			"Estate Agent", "Butcher", "Vicar", "Bus Driver",
			"Veterinary Surgeon", "Physiotherapist", "Surveyor", "Greengrocer",
		},
		streetWords:      []string{"Church", "Mill", "Station", "Victoria", "Albert", "High", "Chapel", "Kings"},
		streetSuffixes:   []string{"Street", "Road", "Lane", "Close", "Crescent", "Way"},
		phonePatterns:    []string{"01### ######", "07### ######"},
		postcodePatterns: []string{"??# #??", "??## #??"},
		emailDomains:     []string{"example.co.uk", "mailbox.org", "postbox.uk", "inbox.net"},
	},
	"en_CA": {
		firstNamesMale: []string{
			"Liam", "Noah", "William", "Lucas", "Benjamin", "Logan",
			"James", "Owen", "Alexander", "Jacob", "Gordon", "Wayne",
		},
		firstNamesFemale: []string{
			"Emma", "Olivia", "Charlotte", "Sophie", "Chloe", "Abigail",
			"Ella", "Claire", "Madison", "Hannah", "Heather", "Dawn",
		},
		surnames: []string{
			"Smith", "Brown", "Tremblay", "Martin", "Roy", "Wilson",
			"MacDonald", "Gagnon", "Johnston", "Taylor", "Campbell", "Anderson",
		},
		placeStems: []string{
			"Moose", "Red", "Thunder", "Clear", "North", "Port",
			"Grand", "Swift", "Medicine", "Prince",
		},
		placeEndings: []string{" Bay", " Creek", " Falls", "ville", "ton", " River"},
		regions: []string{
			"Ontario", "Quebec", "British Columbia", "Alberta", "Manitoba",
			"Saskatchewan", "Nova Scotia", "New Brunswick",
		},
		occupations: []string{
			"Teacher", "Nurse", "Electrician", "Accountant", "Forester",
			"Fisheries Officer", "Miner", "Software Developer", "Chef", "Mechanic",
		},
		streetWords:      []string{"Maple", "King", "Queen", "Main", "Lakeshore", "Birch"},
		streetSuffixes:   []string{"Street", "Avenue", "Road", "Drive", "Crescent"},
		phonePatterns:    []string{"(###) ###-####"},
		postcodePatterns: []string{"?#? #?#"},
		emailDomains:     []string{"example.ca", "mailbox.org", "inbox.net"},
	},
}
