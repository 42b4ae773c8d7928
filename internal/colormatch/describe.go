package colormatch

var styleDescriptions = map[string][]string{
	OccasionFormal:   {"Professional elegance", "Sophisticated charm", "Executive style", "Polished look"},
	OccasionCasual:   {"Effortless chic", "Relaxed comfort", "Everyday elegance", "Casual sophistication"},
	OccasionParty:    {"Glamorous night out", "Party ready", "Evening elegance", "Festive style"},
	OccasionBusiness: {"Business professional", "Office appropriate", "Corporate chic", "Work ready"},
	OccasionWorkout:  {"Athletic performance", "Gym ready", "Active lifestyle", "Sport chic"},
}

func (c *Composer) describe(occasion string) string {
	list, ok := styleDescriptions[occasion]
	if !ok {
		list = styleDescriptions[OccasionCasual]
	}
	return list[c.rnd.Intn(len(list))]
}
