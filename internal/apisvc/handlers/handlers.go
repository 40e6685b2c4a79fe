package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/jwtauth"
	log "github.com/sirupsen/logrus"

	"github.com/finpay/finpay-services/internal/apisvc/validation"
)

type Handler struct {
	tokenAuth *jwtauth.JWTAuth

	deposits    DepositService
	withdrawals WithdrawService
	currencies  CurrencyService
	networks    NetworkService
	banks       BankService
	countries   CountryService
	contents    ContentService
	fees        FeeService
	users       UserService
	auth        AuthService
	dashboard   DashboardService
	receipts    ReceiptVerifier
}

type Services struct {
	Deposits    DepositService
	Withdrawals WithdrawService
	Currencies  CurrencyService
	Networks    NetworkService
	Banks       BankService
	Countries   CountryService
	Contents    ContentService
	Fees        FeeService
	Users       UserService
	Auth        AuthService
	Dashboard   DashboardService
	Receipts    ReceiptVerifier
}

func NewHandler(s Services) *Handler {
	return &Handler{
		deposits:    s.Deposits,
		withdrawals: s.Withdrawals,
		currencies:  s.Currencies,
		networks:    s.Networks,
		banks:       s.Banks,
		countries:   s.Countries,
		contents:    s.Contents,
		fees:        s.Fees,
		users:       s.Users,
		auth:        s.Auth,
		dashboard:   s.Dashboard,
		receipts:    s.Receipts,
	}
}

// Response is the uniform envelope: {status, message, data} on success,
// {status, message, errors} on failure.
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Code    int         `json:"-"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

func (h *Handler) CreateResponse(w http.ResponseWriter, rsp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rsp.Code)

	json.NewEncoder(w).Encode(rsp)
}

func (h *Handler) ok(w http.ResponseWriter, message string, data interface{}) {
	h.CreateResponse(w, Response{Status: "success", Message: message, Code: http.StatusOK, Data: data})
}

func (h *Handler) created(w http.ResponseWriter, message string, data interface{}) {
	h.CreateResponse(w, Response{Status: "success", Message: message, Code: http.StatusCreated, Data: data})
}

func (h *Handler) validationError(w http.ResponseWriter, errs []validation.FieldError) {
	h.CreateResponse(w, Response{
		Status:  "error",
		Message: validation.First(errs),
		Code:    http.StatusUnprocessableEntity,
		Errors:  errs,
	})
}

func (h *Handler) badRequest(w http.ResponseWriter, message string) {
	h.CreateResponse(w, Response{Status: "error", Message: message, Code: http.StatusBadRequest, Errors: []string{message}})
}

func (h *Handler) notFound(w http.ResponseWriter, message string) {
	h.CreateResponse(w, Response{Status: "error", Message: message, Code: http.StatusNotFound, Errors: []string{message}})
}

// serviceError maps a service failure onto the envelope. Not-found is
// detected by message content; everything else surfaces the raw error
// string with a 400.
func (h *Handler) serviceError(w http.ResponseWriter, err error) {
	if strings.Contains(err.Error(), "not found") {
		h.notFound(w, err.Error())
		return
	}
	h.badRequest(w, err.Error())
}

func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	h.ok(w, "api service is running at port "+os.Getenv("API_SERVICE_PORT"), nil)
}

func (h *Handler) InitAuth() {
	var jwtKey = os.Getenv("JWT_SECRET_KEY")
	h.tokenAuth = jwtauth.New("HS256", []byte(jwtKey), nil)
}

// newToken issues the 7-day session token carried by the dashboard and
// admin panel.
func (h *Handler) newToken(userID int64, role string) (string, error) {
	expirationTime := time.Now().Add(7 * 24 * time.Hour).Unix()

	_, tokenString, err := h.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    role,
		"exp":     expirationTime,
	})
	return tokenString, err
}

// requireAdmin gates the admin panel routes on the role claim.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			h.CreateResponse(w, Response{Status: "error", Message: "unauthorized", Code: http.StatusUnauthorized})
			return
		}

		role, _ := claims["role"].(string)
		if role != "ADMIN" && role != "SUPERADMIN" {
			log.Warnf("forbidden admin access attempt, role=%q", role)
			h.CreateResponse(w, Response{Status: "error", Message: "forbidden", Code: http.StatusForbidden})
			return
		}

		next.ServeHTTP(w, r)
	})
}

// decode reads the JSON body into dst; a malformed body is a 400.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.badRequest(w, "invalid request body")
		return false
	}
	return true
}
