package anime

// Anime is a single catalogue entry. ID is assigned by storage and never changes.
type Anime struct {
	ID          int    `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}

// Input is the request body accepted by create and update.
type Input struct {
	Name        string `json:"name" validate:"notblank,max=255"`
	Description string `json:"description" validate:"notblank"`
}

// FieldName and FieldDescription are the JSON names reported in validation details.
const (
	FieldName        = "name"
	FieldDescription = "description"
)
