package record

// Dataset is every record the dashboard renders.
type Dataset struct {
	Profile   Profile    `json:"profile" yaml:"profile"`
	Events    []Event    `json:"events" yaml:"events"`
	Tasks     []Task     `json:"tasks" yaml:"tasks"`
	Cases     []Case     `json:"cases" yaml:"cases"`
	Messages  []Message  `json:"messages" yaml:"messages"`
	Metrics   []Metric   `json:"metrics" yaml:"metrics"`
	CaseTypes []CaseType `json:"caseTypes" yaml:"caseTypes"`
	Countries []Country  `json:"countries" yaml:"countries"`
	Nav       []NavEntry `json:"nav" yaml:"nav"`
	Recent    []Person   `json:"recentMessages" yaml:"recentMessages"`
}

// DefaultProfile is the user shown when no configuration overrides it.
func DefaultProfile() Profile {
	return Profile{
		Name:         "Peter Malby",
		Role:         "DELL LAWYER",
		AvatarSeed:   "peter_malby",
		GreetingName: "Peter",
	}
}

// Sample returns a fresh copy of the static dataset. Callers may modify the
// result freely; every call builds new slices.
func Sample() *Dataset {
	return &Dataset{
		Profile:   DefaultProfile(),
		Events:    sampleEvents(),
		Tasks:     sampleTasks(),
		Cases:     sampleCases(),
		Messages:  sampleMessages(),
		Metrics:   sampleMetrics(),
		CaseTypes: sampleCaseTypes(),
		Countries: sampleCountries(),
		Nav:       sampleNav(),
		Recent:    sampleRecent(),
	}
}

func sampleEvents() []Event {
	return []Event{
		{ID: "event1", DayGroup: "MON 16", Time: "7:00", Title: "Meeting for case 1", Duration: "7:00 - 8:30", Color: ColorGreen},
		{ID: "event2", DayGroup: "MON 16", Time: "11:00", Title: "Meeting for case 2", Duration: "11:00 - 12:30", Color: ColorBlue},
		{ID: "event3", DayGroup: "TUE 17", Time: "14:00", Title: "Meeting for case 3", Duration: "14:00 - 18:30", Color: ColorPrimary},
		{ID: "event4", DayGroup: "WED 18", Time: "10:00", Title: "Team Sync", Duration: "10:00 - 10:30", Color: ColorPurple},
	}
}

func sampleTasks() []Task {
	return []Task{
		{ID: "task1", Name: "Lorem ipsum dolor sit amet consectetur.", DueShort: "Ma", Color: ColorPrimary, Owner: OwnerMine},
		{ID: "task2", Name: "Lorem ipsum dolor sit.", DueShort: "Ma", Color: ColorBlue, Owner: OwnerMine},
		{ID: "task3", Name: "Lorem ipsum dolor sit amet.", DueShort: "Ma", Color: ColorGreen, Owner: OwnerMine},
		{ID: "task4", Name: "Lorem ipsum dolor sit amet, consectetur.", DueShort: "Ma", Color: ColorPrimary, Owner: OwnerOthers},
		{ID: "task5", Name: "Lorem ipsum dolor.", DueShort: "Ma", Color: ColorPurple, Owner: OwnerOthers},
	}
}

func sampleCases() []Case {
	return []Case{
		{
			ID:         "case1",
			Name:       "Lorem ipsum dolor sit amet, consectetur adipiscing elit",
			Dates:      "May 18, 2024 - May 25, 2024",
			Priority:   PriorityLow,
			Attachment: &Attachment{Name: "Requirements.doc"},
			Selected:   true,
		},
		{
			ID:         "case2",
			Name:       "Lorem ipsum dolor sit amet, consectetur",
			Dates:      "May 18, 2024 - May 25, 2024",
			Priority:   PriorityMedium,
			Attachment: &Attachment{Name: "New case.doc"},
			Assignee:   &Person{Name: "Lana Aris", Initials: "LA", AvatarURL: "https://avatar.vercel.sh/lana.png"},
		},
		{
			ID:         "case3",
			Name:       "Lorem ipsum dolor sit amet",
			Dates:      "May 19, 2024 - May 26, 2024",
			Priority:   PriorityLow,
			Attachment: &Attachment{Name: "Nike fraud.doc"},
			Assignee:   &Person{Name: "John Doe", Initials: "JD", AvatarURL: "https://avatar.vercel.sh/john.png"},
		},
	}
}

func sampleMessages() []Message {
	const lorem = "Lorem ipsum dolor sit amet consectetur. Ut turpis lectus adipiscing leo leo in non tristique. Nulla orci..."
	return []Message{
		{
			ID:        "msg1",
			Sender:    Person{Name: "Mark Wahlberg", Initials: "MW", AvatarURL: "https://avatar.vercel.sh/mark.png"},
			Snippet:   lorem,
			Timestamp: "2 days ago",
			IsNew:     true,
		},
		{
			ID:        "msg2",
			Sender:    Person{Name: "Leonardo DiCaprio", Initials: "LD", AvatarURL: "https://avatar.vercel.sh/leo.png"},
			Snippet:   lorem,
			Timestamp: "5 days ago",
		},
		{
			ID:        "msg3",
			Sender:    Person{Name: "Erik Gunsel", Initials: "EG", AvatarURL: "https://avatar.vercel.sh/erik.png"},
			Snippet:   "Can we discuss the new proposal for Project X? I have some ideas.",
			Timestamp: "1 hour ago",
			IsNew:     true,
		},
	}
}

func sampleMetrics() []Metric {
	const period = "Trends last month"
	return []Metric{
		{
			ID:    "new-cases",
			Title: "NEW CASES",
			Value: 104,
			Trend: Trend{Direction: Positive, Percent: 14.88, Period: period},
			Series: []Point{
				{Label: "W1", Value: 60},
				{Label: "W2", Value: 75},
				{Label: "W3", Value: 50},
				{Label: "W4", Value: 90},
				{Label: "W5", Value: 104},
			},
		},
		{
			ID:    "new-tasks",
			Title: "NEW TASKS",
			Value: 34,
			Trend: Trend{Direction: Negative, Percent: 5.67, Period: period},
			Series: []Point{
				{Label: "W1", Value: 40},
				{Label: "W2", Value: 30},
				{Label: "W3", Value: 50},
				{Label: "W4", Value: 38},
				{Label: "W5", Value: 34},
			},
		},
	}
}

func sampleCaseTypes() []CaseType {
	return []CaseType{
		{Name: "Product", Value: 76, Color: string(ColorPrimary)},
		{Name: "Trademark", Value: 48, Color: "hsl(221, 83%, 53%)"},
		{Name: "Patent", Value: 16, Color: "hsl(262, 83%, 58%)"},
		{Name: "Copyright", Value: 5, Color: string(ColorDestructive)},
		{Name: "Gray market", Value: 2, Color: "hsl(142, 71%, 45%)"},
	}
}

func sampleCountries() []Country {
	return []Country{
		{Country: "Sweden", Active: 76, Trend: Trend{Direction: Positive, Percent: 16.7}},
		{Country: "USA", Active: 45, Trend: Trend{Direction: Positive, Percent: 3.23}},
		{Country: "Germany", Active: 18, Trend: Trend{Direction: Negative, Percent: 5.44}},
		{Country: "UK", Active: 33, Trend: Trend{Direction: Positive, Percent: 8.1}},
		{Country: "Canada", Active: 25, Trend: Trend{Direction: Negative, Percent: 2.5}},
	}
}

func sampleNav() []NavEntry {
	dashboard, err := NewExpandable("dashboard", "Dashboard", "dashboard",
		Leaf("activity", "Activity", "#activity"),
		Leaf("statistic", "Statistic", "#statistic"),
		Leaf("performance-cases", "Performance Cases", "#performance-cases", WithActive()),
	)
	if err != nil {
		// Static children are leaves.
		panic(err)
	}
	return []NavEntry{
		dashboard,
		Leaf("tasks", "Tasks", "#tasks", WithIcon("tasks"), WithBadge("5")),
		Leaf("libraries", "Libraries", "#libraries", WithIcon("libraries")),
		Leaf("saved", "Saved", "#saved", WithIcon("saved")),
	}
}

func sampleRecent() []Person {
	return []Person{
		{Name: "Erik Gunsel", Initials: "EG", AvatarURL: "https://avatar.vercel.sh/erik.png"},
		{Name: "Arthur Adelk", Initials: "AA", AvatarURL: "https://avatar.vercel.sh/arthur.png"},
		{Name: "Emily Smith", Initials: "ES", AvatarURL: "https://avatar.vercel.sh/emily.png"},
	}
}
