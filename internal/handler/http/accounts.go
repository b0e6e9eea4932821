package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/account-service/internal/logger"
	"github.com/MKhiriev/account-service/internal/service"
	"github.com/MKhiriev/account-service/internal/utils"
	"github.com/MKhiriev/account-service/internal/validators"
	"github.com/MKhiriev/account-service/models"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes caps account payloads at 1 MiB.
const maxBodyBytes = 1 << 20

func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	acc, err := decodeAccount(w, r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createAccount").Msg("invalid request body")
		writeError(w, r, err)
		return
	}

	created, err := h.services.AccountService.CreateAccount(ctx, acc)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createAccount").Msg("error creating account")
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", utils.AbsoluteURL(r, accountPath(created.ID)))
	if _, err = utils.WriteJSON(w, created, http.StatusCreated); err != nil {
		log.Err(err).Str("func", "*Handler.createAccount").Msg("error writing response")
	}
}

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	accounts, err := h.services.AccountService.ListAccounts(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listAccounts").Msg("error listing accounts")
		writeError(w, r, err)
		return
	}
	if accounts == nil {
		accounts = []models.Account{}
	}

	if _, err = utils.WriteJSON(w, accounts, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.listAccounts").Msg("error writing response")
	}
}

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := accountIDFromPath(r)
	if err != nil {
		log.Debug().Str("func", "*Handler.getAccount").Str("id", chi.URLParam(r, "id")).Msg("invalid account id")
		writeError(w, r, err)
		return
	}

	acc, err := h.services.AccountService.GetAccount(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAccount").Int64("id", id).Msg("error getting account")
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, acc, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getAccount").Msg("error writing response")
	}
}

func (h *Handler) updateAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := accountIDFromPath(r)
	if err != nil {
		log.Debug().Str("func", "*Handler.updateAccount").Str("id", chi.URLParam(r, "id")).Msg("invalid account id")
		writeError(w, r, err)
		return
	}

	acc, err := decodeAccount(w, r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateAccount").Msg("invalid request body")
		writeError(w, r, err)
		return
	}

	updated, err := h.services.AccountService.UpdateAccount(r.Context(), id, acc)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateAccount").Int64("id", id).Msg("error updating account")
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, updated, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.updateAccount").Msg("error writing response")
	}
}

// deleteAccount answers 204 whether or not the account existed.
func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := accountIDFromPath(r)
	if err != nil {
		// nothing can exist under a malformed id
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if err = h.services.AccountService.DeleteAccount(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteAccount").Int64("id", id).Msg("error deleting account")
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// presentKeys tracks body keys whose empty value is still valid, so that an
// absent key can be told apart from an empty one.
type presentKeys struct {
	PhoneNumber *string `json:"phone_number"`
}

func decodeAccount(w http.ResponseWriter, r *http.Request) (models.Account, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	var acc models.Account
	if err = json.Unmarshal(body, &acc); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	var keys presentKeys
	if err = json.Unmarshal(body, &keys); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	if keys.PhoneNumber == nil {
		return models.Account{}, fmt.Errorf("%w: %w: %s is required",
			service.ErrInvalidDataProvided, validators.ErrInvalidAccount, validators.FieldPhoneNumber)
	}

	return acc, nil
}

func accountIDFromPath(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidAccountID
	}
	return id, nil
}

func accountPath(id int64) string {
	return "/accounts/" + strconv.FormatInt(id, 10)
}
