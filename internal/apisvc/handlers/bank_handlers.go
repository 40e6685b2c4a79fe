package handlers

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/finpay/finpay-services/internal/apisvc/models"
	"github.com/finpay/finpay-services/internal/apisvc/validation"
)

type CreateBankRequest struct {
	Name      string `json:"name" validate:"required,max=150"`
	SwiftCode string `json:"swift_code" validate:"omitempty,max=20"`
	Branch    string `json:"branch" validate:"omitempty,max=150"`
	Status    string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

type UpdateBankRequest struct {
	Name      *string `json:"name" validate:"omitempty,max=150"`
	SwiftCode *string `json:"swift_code" validate:"omitempty,max=20"`
	Branch    *string `json:"branch" validate:"omitempty,max=150"`
	Status    *string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (r UpdateBankRequest) fields() map[string]interface{} {
	f := map[string]interface{}{}
	if r.Name != nil {
		f["name"] = *r.Name
	}
	if r.SwiftCode != nil {
		f["swift_code"] = *r.SwiftCode
	}
	if r.Branch != nil {
		f["branch"] = *r.Branch
	}
	if r.Status != nil {
		f["status"] = *r.Status
	}
	return f
}

type CreateBankAccountRequest struct {
	BankID      int64  `json:"bank_id" validate:"required,gt=0"`
	AccountName string `json:"account_name" validate:"required,max=150"`
	AccountNo   string `json:"account_no" validate:"required,max=50"`
	UserID      int64  `json:"user_id" validate:"omitempty,gt=0"`
	Status      string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

type UpdateBankAccountRequest struct {
	AccountName *string `json:"account_name" validate:"omitempty,max=150"`
	AccountNo   *string `json:"account_no" validate:"omitempty,max=50"`
	UserID      *int64  `json:"user_id" validate:"omitempty,gt=0"`
	Status      *string `json:"status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (r UpdateBankAccountRequest) fields() map[string]interface{} {
	f := map[string]interface{}{}
	if r.AccountName != nil {
		f["account_name"] = *r.AccountName
	}
	if r.AccountNo != nil {
		f["account_no"] = *r.AccountNo
	}
	if r.UserID != nil {
		f["user_id"] = *r.UserID
	}
	if r.Status != nil {
		f["status"] = *r.Status
	}
	return f
}

func (h *Handler) ListBanksHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.banks.List(r.Context())
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.ok(w, "banks", list)
}

func (h *Handler) ActiveBanksHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.banks.ListActive(r.Context())
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.ok(w, "active banks", list)
}

func (h *Handler) GetBankHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid bank id")
		return
	}
	b, err := h.banks.GetByID(r.Context(), id)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if b == nil {
		h.notFound(w, "bank not found")
		return
	}
	h.ok(w, "bank", b)
}

func (h *Handler) CreateBankHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateBankRequest
	if !h.decode(w, r, &req) {
		return
	}
	if errs := validation.Validate(req); errs != nil {
		h.validationError(w, errs)
		return
	}

	created, err := h.banks.Create(r.Context(), &models.Bank{
		Name:      req.Name,
		SwiftCode: req.SwiftCode,
		Branch:    req.Branch,
		Status:    req.Status,
	})
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.created(w, "bank created", created)
}

func (h *Handler) UpdateBankHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid bank id")
		return
	}

	var req UpdateBankRequest
	if !h.decode(w, r, &req) {
		return
	}
	if errs := validation.Validate(req); errs != nil {
		h.validationError(w, errs)
		return
	}

	fields := req.fields()
	if len(fields) == 0 {
		h.validationError(w, []validation.FieldError{{Field: "body", Message: "at least one field is required", Type: "required"}})
		return
	}

	updated, err := h.banks.Update(r.Context(), id, fields)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if updated == nil {
		h.notFound(w, "bank not found")
		return
	}
	h.ok(w, "bank updated", updated)
}

func (h *Handler) UpdateBankStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid bank id")
		return
	}

	var req UpdateRowStatusRequest
	if !h.decode(w, r, &req) {
		return
	}
	if errs := validation.Validate(req); errs != nil {
		h.validationError(w, errs)
		return
	}

	updated, err := h.banks.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if updated == nil {
		h.notFound(w, "bank not found")
		return
	}
	h.ok(w, "bank status updated", updated)
}

func (h *Handler) DeleteBankHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid bank id")
		return
	}
	if err := h.banks.Delete(r.Context(), id); err != nil {
		h.serviceError(w, err)
		return
	}
	h.ok(w, "bank deleted", nil)
}

// ---- bank accounts ----

func (h *Handler) ListBankAccountsHandler(w http.ResponseWriter, r *http.Request) {
	var bankID int64
	if raw := r.URL.Query().Get("bank_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			h.badRequest(w, "invalid bank_id")
			return
		}
		bankID = id
	}

	list, err := h.banks.ListAccounts(r.Context(), bankID)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.ok(w, "bank accounts", list)
}

func (h *Handler) GetBankAccountHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid bank account id")
		return
	}
	a, err := h.banks.GetAccountByID(r.Context(), id)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if a == nil {
		h.notFound(w, "bank account not found")
		return
	}
	h.ok(w, "bank account", a)
}

func (h *Handler) CreateBankAccountHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateBankAccountRequest
	if !h.decode(w, r, &req) {
		return
	}
	if errs := validation.Validate(req); errs != nil {
		h.validationError(w, errs)
		return
	}

	created, err := h.banks.CreateAccount(r.Context(), &models.BankAccount{
		BankID:      req.BankID,
		AccountName: req.AccountName,
		AccountNo:   req.AccountNo,
		UserID:      sql.NullInt64{Int64: req.UserID, Valid: req.UserID > 0},
		Status:      req.Status,
	})
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.created(w, "bank account created", created)
}

func (h *Handler) UpdateBankAccountHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid bank account id")
		return
	}

	var req UpdateBankAccountRequest
	if !h.decode(w, r, &req) {
		return
	}
	if errs := validation.Validate(req); errs != nil {
		h.validationError(w, errs)
		return
	}

	fields := req.fields()
	if len(fields) == 0 {
		h.validationError(w, []validation.FieldError{{Field: "body", Message: "at least one field is required", Type: "required"}})
		return
	}

	updated, err := h.banks.UpdateAccount(r.Context(), id, fields)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if updated == nil {
		h.notFound(w, "bank account not found")
		return
	}
	h.ok(w, "bank account updated", updated)
}

func (h *Handler) UpdateBankAccountStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid bank account id")
		return
	}

	var req UpdateRowStatusRequest
	if !h.decode(w, r, &req) {
		return
	}
	if errs := validation.Validate(req); errs != nil {
		h.validationError(w, errs)
		return
	}

	updated, err := h.banks.UpdateAccountStatus(r.Context(), id, req.Status)
	if err != nil {
		h.serviceError(w, err)
		return
	}
	if updated == nil {
		h.notFound(w, "bank account not found")
		return
	}
	h.ok(w, "bank account status updated", updated)
}

func (h *Handler) DeleteBankAccountHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.badRequest(w, "invalid bank account id")
		return
	}
	if err := h.banks.DeleteAccount(r.Context(), id); err != nil {
		h.serviceError(w, err)
		return
	}
	h.ok(w, "bank account deleted", nil)
}
