package constants

// AuthorNames is the curated pool of display names handed out to authors on
// first contact. Selection is uniform; duplicates across authors are fine.
var AuthorNames = []string{
	"Aoi",
	"Akira",
	"Chihiro",
	"Hana",
	"Haruka",
	"Hikari",
	"Itsuki",
	"Kaede",
	"Kaoru",
	"Kasumi",
	"Kohaku",
	"Makoto",
	"Mio",
	"Mochi",
	"Nagisa",
	"Natsuki",
	"Ren",
	"Rin",
	"Sakura",
	"Sora",
	"Subaru",
	"Sumire",
	"Tsubaki",
	"Yuki",
	"Yume",
	"Yuzu",
}
