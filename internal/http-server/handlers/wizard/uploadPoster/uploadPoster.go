package uploadPoster

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"eventify/internal/lib/api/response"
	"eventify/internal/lib/logger/sl"
	"eventify/internal/models"
	"eventify/internal/wizard"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	PosterName string `json:"posterName"`
}

// New stores the poster image on the draft. The file rides in a multipart
// form under the "poster" field and is held in memory until submit.
func New(log *slog.Logger, drafts *wizard.Store, maxSize int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.wizard.uploadPoster.New"

		log = log.With(
			slog.String("op", op),
		)

		draft, err := drafts.FromRequest(r)
		if err != nil {
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("no draft in progress"))

			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxSize)

		if err := r.ParseMultipartForm(maxSize); err != nil {
			log.Error("failed to parse multipart form", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("poster upload is malformed or too large"))

			return
		}

		file, header, err := r.FormFile("poster")
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("poster file is missing"))

			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("poster must be an image"))

			return
		}

		data, err := io.ReadAll(file)
		if err != nil {
			log.Error("failed to read poster", sl.Err(err))

			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to read poster"))

			return
		}

		draft.Lock()
		draft.SetPoster(&models.Poster{
			Name:        header.Filename,
			ContentType: contentType,
			Data:        data,
		})
		draft.Unlock()

		log.Info("poster attached",
			slog.String("draft_id", draft.ID),
			slog.String("file", header.Filename),
			slog.Int("size", len(data)),
		)

		render.JSON(w, r, Response{
			Response:   response.OK(),
			PosterName: header.Filename,
		})
	}
}
