package handlers

import (
	"errors"
	"net/http"

	"github.com/Tusharxhub/GitHubWrapped/internal/apperror"
	"github.com/Tusharxhub/GitHubWrapped/internal/domain"
	"github.com/Tusharxhub/GitHubWrapped/internal/messages"
	"github.com/Tusharxhub/GitHubWrapped/internal/utils"
	"github.com/Tusharxhub/GitHubWrapped/internal/validators"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// usernameFromPath validates the {username} route variable and writes a 404 carrying
// notFoundMessage when it is malformed.
func (h Handler) usernameFromPath(w http.ResponseWriter, r *http.Request, notFoundMessage string) (string, bool) {
	req := validators.NewUsernameRequest(mux.Vars(r)["username"])
	if err := req.Validate(); err != nil {
		R := ResponseFormat{Message: notFoundMessage}
		var errs validation.Errors
		if errors.As(err, &errs) {
			R.Error = h.withValidationErrors(errs)
		}
		code, res := h.response(http.StatusNotFound, R)
		utils.SendResponse(w, code, res)
		return "", false
	}
	return req.Username, true
}

func (h Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	username, ok := h.usernameFromPath(w, r, messages.StatsNotFound)
	if !ok {
		return
	}

	dto, err := h.statsService.GetStats(r.Context(), username)
	if err != nil {
		R := ResponseFormat{Message: messages.StatsNotFound}
		code := statusFor(err)
		if code != http.StatusNotFound {
			h.logger.Error("error in GetStats", zap.String("username", username), zap.Error(err))
			R.Message = messages.SomethingWentWrong
		}
		code, res := h.response(code, R)
		utils.SendResponse(w, code, res)
		return
	}

	code, res := h.response(http.StatusOK, ResponseFormat{Data: dto, Message: messages.StatsFetched})
	utils.SendResponse(w, code, res)
}

func (h Handler) GenerateStats(w http.ResponseWriter, r *http.Request) {
	username, ok := h.usernameFromPath(w, r, messages.InvalidGithubUsername)
	if !ok {
		return
	}

	result, err := h.statsService.GenerateStats(r.Context(), username)
	if err != nil {
		R := ResponseFormat{Message: messages.ErrorGeneratingStats}
		code := http.StatusInternalServerError
		if errors.Is(err, apperror.ErrNotFound) {
			code = http.StatusNotFound
			R.Message = messages.InvalidGithubUsername
		} else {
			h.logger.Error("error in GenerateStats", zap.String("username", username), zap.Error(err))
		}
		code, res := h.response(code, R)
		utils.SendResponse(w, code, res)
		return
	}

	if result.Status == domain.GenerationExisting {
		code, res := h.response(http.StatusOK, ResponseFormat{Data: result.Snapshot, Message: messages.StatsAlreadyExists})
		utils.SendResponse(w, code, res)
		return
	}

	code, res := h.response(http.StatusCreated, ResponseFormat{Data: result.Snapshot, Message: messages.StatsGenerated})
	utils.SendResponse(w, code, res)
}

func (h Handler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.statsService.GetAllUsers(r.Context())
	if err != nil {
		h.logger.Error("error in GetAllUsers", zap.Error(err))
		code, res := h.response(http.StatusInternalServerError, ResponseFormat{})
		utils.SendResponse(w, code, res)
		return
	}

	code, res := h.response(http.StatusOK, ResponseFormat{Data: users, Message: messages.AllUsersFetched})
	utils.SendResponse(w, code, res)
}

func (h Handler) GetTopUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.statsService.GetTopUsers(r.Context())
	if err != nil {
		h.logger.Error("error in GetTopUsers", zap.Error(err))
		code, res := h.response(http.StatusInternalServerError, ResponseFormat{})
		utils.SendResponse(w, code, res)
		return
	}

	code, res := h.response(http.StatusOK, ResponseFormat{Data: users, Message: messages.TopUsersFetched})
	utils.SendResponse(w, code, res)
}
