package schema

// AnimeTable represents the 'anime' table
type AnimeTable struct {
	Table       string
	ID          string
	Name        string
	Description string
}

// Anime is the schema definition for anime
var Anime = AnimeTable{
	Table:       "anime",
	ID:          "id",
	Name:        "name",
	Description: "description",
}

// Columns returns every column in scan order.
func (t AnimeTable) Columns() []string {
	return []string{t.ID, t.Name, t.Description}
}
