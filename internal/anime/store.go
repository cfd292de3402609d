package anime

import "context"

// Repository is the storage collaborator. A missing row is reported as
// dberr.ErrNotFound; any other failure is an internal error.
type Repository interface {
	ListAnimes(context context.Context) ([]*Anime, error)
	GetAnime(context context.Context, id int) (*Anime, error)
	CreateAnime(context context.Context, input Input) (*Anime, error)
	UpdateAnime(context context.Context, id int, input Input) (*Anime, error)
	DeleteAnime(context context.Context, id int) (*Anime, error)
}
