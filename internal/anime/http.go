package anime

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/anidex/internal/platform/apperr"
	requestutil "github.com/taibuivan/anidex/internal/platform/request"
	"github.com/taibuivan/anidex/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the /animes sub-router.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listAnimes)
	router.Post("/", handler.createAnime)
	router.Get("/{id}", handler.getAnime)
	router.Put("/{id}", handler.updateAnime)
	router.Delete("/{id}", handler.deleteAnime)
}

func (handler *Handler) listAnimes(writer http.ResponseWriter, request *http.Request) {
	animes, err := handler.service.ListAnimes(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, animes)
}

func (handler *Handler) getAnime(writer http.ResponseWriter, request *http.Request) {
	animeID, ok := requestutil.IntID(request, "id")
	if !ok {
		respond.Error(writer, request, apperr.NotFound(resourceName))
		return
	}

	anime, err := handler.service.GetAnime(request.Context(), animeID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, anime)
}

func (handler *Handler) createAnime(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	anime, err := handler.service.CreateAnime(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, anime)
}

func (handler *Handler) updateAnime(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Body problems are reported before an unknown id.
	animeID, ok := requestutil.IntID(request, "id")
	if !ok {
		if err := validateInput(input); err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.Error(writer, request, apperr.NotFound(resourceName))
		return
	}

	anime, err := handler.service.UpdateAnime(request.Context(), animeID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, anime)
}

func (handler *Handler) deleteAnime(writer http.ResponseWriter, request *http.Request) {
	animeID, ok := requestutil.IntID(request, "id")
	if !ok {
		respond.Error(writer, request, apperr.NotFound(resourceName))
		return
	}

	anime, err := handler.service.DeleteAnime(request.Context(), animeID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, anime)
}
