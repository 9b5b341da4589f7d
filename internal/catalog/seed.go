package catalog

// Seed data for the Estonian sign language catalogue. IDs are stable and
// referenced from persisted learner state; never renumber existing entries.

func init() {
	c = buildCatalogue(seedCategories(), seedSigns())
}

func seedCategories() []Category {
	return []Category{
		{ID: 1, Title: "Numbers", Icon: "calculator-outline", Color: "#f4511e"},
		{ID: 2, Title: "Family & Relationships", Icon: "people-outline", Color: "#7cb342"},
		{ID: 3, Title: "Colors", Icon: "color-palette-outline", Color: "#8e24aa"},
		{ID: 4, Title: "Food & Drinks", Icon: "restaurant-outline", Color: "#ff9800"},
		{ID: 5, Title: "Time & Calendar", Icon: "time-outline", Color: "#0097a7"},
		{ID: 6, Title: "Greetings & Common phrases", Icon: "hand-left-outline", Color: "#e91e63"},
		{ID: 7, Title: "Weather", Icon: "partly-sunny-outline", Color: "#00bcd4"},
		{ID: 8, Title: "Emotions & Feelings", Icon: "happy-outline", Color: "#ffca28"},
		{ID: 9, Title: "Travel & Places", Icon: "location-outline", Color: "#5c6bc0"},
	}
}

func seedSigns() []Sign {
	return []Sign{
		// Numbers
		{ID: 1, CategoryID: 1, Word: "One", Description: "Index finger extended upward, palm facing forward.", VideoURL: video("one"), Keywords: []string{"number", "count", "1"}},
		{ID: 2, CategoryID: 1, Word: "Two", Description: "Index and middle fingers extended, palm forward.", VideoURL: video("two"), Keywords: []string{"number", "count", "2"}},
		{ID: 3, CategoryID: 1, Word: "Three", Description: "Thumb, index and middle fingers extended.", VideoURL: video("three"), Keywords: []string{"number", "count", "3"}},
		{ID: 4, CategoryID: 1, Word: "Four", Description: "Four fingers extended, thumb folded across the palm.", VideoURL: video("four"), Keywords: []string{"number", "count", "4"}},
		{ID: 5, CategoryID: 1, Word: "Five", Description: "Open hand, all five fingers spread.", VideoURL: video("five"), Keywords: []string{"number", "count", "5"}},
		{ID: 6, CategoryID: 1, Word: "Ten", Description: "Fist with thumb up, shaken slightly.", VideoURL: video("ten"), Keywords: []string{"number", "count", "10"}},
		{ID: 7, CategoryID: 1, Word: "Hundred", Description: "The sign for one followed by a C handshape.", VideoURL: video("hundred"), Keywords: []string{"number", "count", "100"}},

		// Family & Relationships
		{ID: 10, CategoryID: 2, Word: "Mother", Description: "Open hand, thumb touches the chin.", VideoURL: video("mother"), Keywords: []string{"family", "parent", "mom"}},
		{ID: 11, CategoryID: 2, Word: "Father", Description: "Open hand, thumb touches the forehead.", VideoURL: video("father"), Keywords: []string{"family", "parent", "dad"}},
		{ID: 12, CategoryID: 2, Word: "Sister", Description: "L handshape traces the jaw, then index fingers meet.", VideoURL: video("sister"), Keywords: []string{"family", "sibling"}},
		{ID: 13, CategoryID: 2, Word: "Brother", Description: "L handshape at the forehead, then index fingers meet.", VideoURL: video("brother"), Keywords: []string{"family", "sibling"}},
		{ID: 14, CategoryID: 2, Word: "Grandmother", Description: "Thumb at the chin arcs forward in two small hops.", VideoURL: video("grandmother"), Keywords: []string{"family", "grandma"}},
		{ID: 15, CategoryID: 2, Word: "Friend", Description: "Hooked index fingers interlock, then reverse.", VideoURL: video("friend"), Keywords: []string{"relationship", "mate"}},
		{ID: 16, CategoryID: 2, Word: "Baby", Description: "Arms cradle and rock an imaginary infant.", VideoURL: video("baby"), Keywords: []string{"family", "child", "infant"}},

		// Colors
		{ID: 20, CategoryID: 3, Word: "Red", Description: "Index finger brushes down the lips.", VideoURL: video("red"), Keywords: []string{"color"}},
		{ID: 21, CategoryID: 3, Word: "Blue", Description: "B handshape twists at the wrist.", VideoURL: video("blue"), Keywords: []string{"color"}},
		{ID: 22, CategoryID: 3, Word: "Green", Description: "G handshape twists at the wrist.", VideoURL: video("green"), Keywords: []string{"color"}},
		{ID: 23, CategoryID: 3, Word: "Yellow", Description: "Y handshape twists at the wrist.", VideoURL: video("yellow"), Keywords: []string{"color"}},
		{ID: 24, CategoryID: 3, Word: "Black", Description: "Index finger draws across the forehead.", VideoURL: video("black"), Keywords: []string{"color", "dark"}},
		{ID: 25, CategoryID: 3, Word: "White", Description: "Open hand on the chest pulls away, closing to a flat O.", VideoURL: video("white"), Keywords: []string{"color", "light"}},

		// Food & Drinks
		{ID: 30, CategoryID: 4, Word: "Bread", Description: "Knife hand slices across the back of the other hand.", VideoURL: video("bread"), Keywords: []string{"food", "bakery"}},
		{ID: 31, CategoryID: 4, Word: "Milk", Description: "Fist squeezes twice, as if milking.", VideoURL: video("milk"), Keywords: []string{"drink", "dairy"}},
		{ID: 32, CategoryID: 4, Word: "Water", Description: "W handshape taps the chin.", VideoURL: video("water"), Keywords: []string{"drink"}},
		{ID: 33, CategoryID: 4, Word: "Coffee", Description: "One fist grinds in a circle on top of the other.", VideoURL: video("coffee"), Keywords: []string{"drink", "hot"}},
		{ID: 34, CategoryID: 4, Word: "Apple", Description: "Knuckle of the index finger twists at the cheek.", VideoURL: video("apple"), Keywords: []string{"food", "fruit"}},
		{ID: 35, CategoryID: 4, Word: "Fish", Description: "Flat hand swims forward, wiggling side to side.", VideoURL: video("fish"), Keywords: []string{"food", "seafood"}},
		{ID: 36, CategoryID: 4, Word: "Eat", Description: "Flat O handshape taps the mouth.", VideoURL: video("eat"), Keywords: []string{"food", "meal", "dine"}},

		// Time & Calendar
		{ID: 40, CategoryID: 5, Word: "Today", Description: "Both Y hands drop slightly, twice.", VideoURL: video("today"), Keywords: []string{"time", "day", "now"}},
		{ID: 41, CategoryID: 5, Word: "Tomorrow", Description: "Thumb at the cheek arcs forward.", VideoURL: video("tomorrow"), Keywords: []string{"time", "day", "future"}},
		{ID: 42, CategoryID: 5, Word: "Yesterday", Description: "Thumb at the cheek arcs backward.", VideoURL: video("yesterday"), Keywords: []string{"time", "day", "past"}},
		{ID: 43, CategoryID: 5, Word: "Week", Description: "Index hand slides across the opposite palm.", VideoURL: video("week"), Keywords: []string{"time", "calendar"}},
		{ID: 44, CategoryID: 5, Word: "Month", Description: "Index finger slides down the other index finger.", VideoURL: video("month"), Keywords: []string{"time", "calendar"}},
		{ID: 45, CategoryID: 5, Word: "Year", Description: "One fist orbits the other and lands on top.", VideoURL: video("year"), Keywords: []string{"time", "calendar"}},

		// Greetings & Common phrases
		{ID: 50, CategoryID: 6, Word: "Hello", Description: "Flat hand at the temple moves outward, like a salute.", VideoURL: video("hello"), Keywords: []string{"greeting", "hi", "tere"}},
		{ID: 51, CategoryID: 6, Word: "Thank you", Description: "Flat hand at the chin moves forward and down.", VideoURL: video("thank-you"), Keywords: []string{"greeting", "thanks", "aitäh"}},
		{ID: 52, CategoryID: 6, Word: "Please", Description: "Flat hand circles on the chest.", VideoURL: video("please"), Keywords: []string{"greeting", "polite", "palun"}},
		{ID: 53, CategoryID: 6, Word: "Sorry", Description: "Fist circles on the chest.", VideoURL: video("sorry"), Keywords: []string{"apology", "vabandust"}},
		{ID: 54, CategoryID: 6, Word: "Goodbye", Description: "Open hand waves side to side.", VideoURL: video("goodbye"), Keywords: []string{"greeting", "farewell", "bye"}},
		{ID: 55, CategoryID: 6, Word: "Yes", Description: "Fist nods at the wrist, like a head nodding.", VideoURL: video("yes"), Keywords: []string{"answer", "jah"}},
		{ID: 56, CategoryID: 6, Word: "No", Description: "Index and middle fingers snap against the thumb.", VideoURL: video("no"), Keywords: []string{"answer", "ei"}},

		// Weather
		{ID: 60, CategoryID: 7, Word: "Sun", Description: "Index finger draws a circle, then the hand opens toward the face.", VideoURL: video("sun"), Keywords: []string{"weather", "sunny"}},
		{ID: 61, CategoryID: 7, Word: "Rain", Description: "Both claw hands drop twice.", VideoURL: video("rain"), Keywords: []string{"weather", "wet"}},
		{ID: 62, CategoryID: 7, Word: "Snow", Description: "Open hands flutter downward, fingers wiggling.", VideoURL: video("snow"), Keywords: []string{"weather", "winter", "lumi"}},
		{ID: 63, CategoryID: 7, Word: "Wind", Description: "Open hands sway together side to side.", VideoURL: video("wind"), Keywords: []string{"weather", "breeze"}},
		{ID: 64, CategoryID: 7, Word: "Cold", Description: "Both fists shake close to the body, shoulders hunched.", VideoURL: video("cold"), Keywords: []string{"weather", "freezing", "külm"}},

		// Emotions & Feelings
		{ID: 70, CategoryID: 8, Word: "Happy", Description: "Flat hands brush upward on the chest, twice.", VideoURL: video("happy"), Keywords: []string{"emotion", "glad", "rõõmus"}},
		{ID: 71, CategoryID: 8, Word: "Sad", Description: "Open hands slide down in front of the face.", VideoURL: video("sad"), Keywords: []string{"emotion", "unhappy", "kurb"}},
		{ID: 72, CategoryID: 8, Word: "Angry", Description: "Claw hand pulls up from the stomach.", VideoURL: video("angry"), Keywords: []string{"emotion", "mad", "vihane"}},
		{ID: 73, CategoryID: 8, Word: "Tired", Description: "Bent hands on the chest rotate downward.", VideoURL: video("tired"), Keywords: []string{"feeling", "sleepy", "väsinud"}},
		{ID: 74, CategoryID: 8, Word: "Love", Description: "Crossed fists press against the chest.", VideoURL: video("love"), Keywords: []string{"emotion", "heart", "armastus"}},

		// Travel & Places
		{ID: 80, CategoryID: 9, Word: "Home", Description: "Flat O handshape touches the cheek, then the temple.", VideoURL: video("home"), Keywords: []string{"place", "house", "kodu"}},
		{ID: 81, CategoryID: 9, Word: "School", Description: "Hands clap twice, one on top of the other.", VideoURL: video("school"), Keywords: []string{"place", "education", "kool"}},
		{ID: 82, CategoryID: 9, Word: "Shop", Description: "Flat O hands flick forward twice from the body.", VideoURL: video("shop"), Keywords: []string{"place", "store", "pood"}},
		{ID: 83, CategoryID: 9, Word: "Bus", Description: "Fists steer an imaginary large wheel.", VideoURL: video("bus"), Keywords: []string{"travel", "transport"}},
		{ID: 84, CategoryID: 9, Word: "Train", Description: "Two fingers rub along two fingers of the other hand.", VideoURL: video("train"), Keywords: []string{"travel", "transport", "rong"}},
		{ID: 85, CategoryID: 9, Word: "City", Description: "Fingertips of both hands form a roof, repeated sideways.", VideoURL: video("city"), Keywords: []string{"place", "town", "linn"}},
	}
}

func video(slug string) string {
	return "https://cdn.viipekeel.ee/videos/" + slug + ".mp4"
}
