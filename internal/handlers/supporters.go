package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Tusharxhub/GitHubWrapped/internal/messages"
	"github.com/Tusharxhub/GitHubWrapped/internal/utils"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap"
)

func (h Handler) ListSupporters(w http.ResponseWriter, r *http.Request) {
	var req listSupportersRequest
	var parseErrs []string

	query := r.URL.Query()
	if v := query.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			parseErrs = append(parseErrs, "limit: must be an integer")
		}
		req.Limit = n
	}
	if v := query.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			parseErrs = append(parseErrs, "offset: must be an integer")
		}
		req.Offset = n
	}

	if len(parseErrs) > 0 {
		code, res := h.response(http.StatusBadRequest, ResponseFormat{Error: parseErrs, Message: messages.InvalidRequest})
		utils.SendResponse(w, code, res)
		return
	}
	if err := req.Validate(); err != nil {
		R := ResponseFormat{Message: messages.InvalidRequest}
		var errs validation.Errors
		if errors.As(err, &errs) {
			R.Error = h.withValidationErrors(errs)
		}
		code, res := h.response(http.StatusBadRequest, R)
		utils.SendResponse(w, code, res)
		return
	}

	supporters, err := h.supporterService.ListPublicSupporters(r.Context(), req.Limit, req.Offset)
	if err != nil {
		h.logger.Error("error in ListPublicSupporters", zap.Error(err))
		code, res := h.response(http.StatusInternalServerError, ResponseFormat{})
		utils.SendResponse(w, code, res)
		return
	}

	code, res := h.response(http.StatusOK, ResponseFormat{Data: supporters, Message: messages.SupportersFetched})
	utils.SendResponse(w, code, res)
}
