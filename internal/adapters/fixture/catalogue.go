package fixture

import "github.com/jpp0ca/linkport/internal/domain"

type cataloguePlaylist struct {
	title         string
	description   string
	totalDuration int
	tracks        []domain.Track
}

var catalogue = map[domain.Platform]cataloguePlaylist{
	domain.PlatformSpotify: {
		title:         "Today's Top Hits",
		description:   "The most played songs right now",
		totalDuration: 2100,
		tracks: []domain.Track{
			{Title: "As It Was", Artist: "Harry Styles", Album: "Harry's House"},
			{Title: "Anti-Hero", Artist: "Taylor Swift", Album: "Midnights"},
			{Title: "Flowers", Artist: "Miley Cyrus", Album: "Endless Summer Vacation"},
			{Title: "Unholy", Artist: "Sam Smith ft. Kim Petras", Album: "Gloria"},
			{Title: "Calm Down", Artist: "Rema & Selena Gomez", Album: "Rave & Roses"},
			{Title: "Lavender Haze", Artist: "Taylor Swift", Album: "Midnights"},
			{Title: "Creepin'", Artist: "Metro Boomin, The Weeknd, 21 Savage", Album: "Heroes & Villains"},
			{Title: "Kill Bill", Artist: "SZA", Album: "SOS"},
			{Title: "Vampire", Artist: "Olivia Rodrigo", Album: "GUTS"},
			{Title: "Cruel Summer", Artist: "Taylor Swift", Album: "Lover"},
		},
	},
	domain.PlatformYouTube: {
		title:         "YouTube Music Trending",
		description:   "What's trending on YouTube Music",
		totalDuration: 1980,
		tracks: []domain.Track{
			{Title: "Paint The Town Red", Artist: "Doja Cat", Album: "Scarlet"},
			{Title: "Greedy", Artist: "Tate McRae", Album: "Think Later"},
			{Title: "Water", Artist: "Tyla", Album: "Water"},
			{Title: "Lovin On Me", Artist: "Jack Harlow", Album: "Lovin On Me"},
			{Title: "Stick Season", Artist: "Noah Kahan", Album: "I Was / I Am"},
			{Title: "What It Is (Block Boy)", Artist: "Doechii", Album: "Alligator Bites Never Heal"},
			{Title: "Rich Baby Daddy", Artist: "Drake ft. Sexyy Red & SZA", Album: "For All The Dogs"},
			{Title: "Northern Attitude", Artist: "Noah Kahan", Album: "Stick Season"},
			{Title: "Dance The Night", Artist: "Dua Lipa", Album: "Barbie The Album"},
			{Title: "Snooze", Artist: "SZA", Album: "SOS"},
		},
	},
	domain.PlatformSoundCloud: {
		title:         "SoundCloud Weekly",
		description:   "Fresh tracks from emerging artists",
		totalDuration: 1680,
		tracks: []domain.Track{
			{Title: "Midnight Dreams", Artist: "Luna Wave", Album: "Neon Nights"},
			{Title: "Electric Pulse", Artist: "Synth Master", Album: "Digital Horizon"},
			{Title: "Ocean Breeze", Artist: "Coastal Vibes", Album: "Summer Sessions"},
			{Title: "City Lights", Artist: "Urban Echo", Album: "Metropolitan"},
			{Title: "Starfall", Artist: "Cosmic Journey", Album: "Interstellar"},
			{Title: "Neon Glow", Artist: "Retro Future", Album: "80s Revival"},
			{Title: "Mountain High", Artist: "Nature Sounds", Album: "Wilderness"},
			{Title: "Digital Love", Artist: "Cyber Romance", Album: "Virtual Reality"},
		},
	},
	domain.PlatformApple: {
		title:         "Apple Music Hits",
		description:   "Popular songs from Apple Music",
		totalDuration: 1200,
		tracks: []domain.Track{
			{Title: "As It Was", Artist: "Harry Styles", Album: "Harry's House"},
			{Title: "Anti-Hero", Artist: "Taylor Swift", Album: "Midnights"},
			{Title: "Flowers", Artist: "Miley Cyrus", Album: "Endless Summer Vacation"},
			{Title: "Unholy", Artist: "Sam Smith ft. Kim Petras", Album: "Gloria"},
			{Title: "Calm Down", Artist: "Rema & Selena Gomez", Album: "Rave & Roses"},
		},
	},
}

// Titles that sometimes come back with no results at all.
var elusiveTitles = []string{"Sweet Child O' Mine", "Stairway to Heaven"}
