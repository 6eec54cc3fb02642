package api

import (
	"context"
	"net/http"

	"hotel-booking/internal/domain/account"
	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/usecase"
	"hotel-booking/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AccountHandler struct {
	accountUseCase usecase.AccountUseCase
}

func NewAccountHandler(accountUseCase usecase.AccountUseCase) *AccountHandler {
	return &AccountHandler{accountUseCase: accountUseCase}
}

// @Summary Self-register an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body reqdto.CreateAccountRequest true "Account"
// @Success 201 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Router /accounts [post]
func (h *AccountHandler) Register(c *gin.Context) {
	h.create(c, account.TierUser)
}

// CreateStaff and CreateSuperuser are superuser-only routes.
func (h *AccountHandler) CreateStaff(c *gin.Context)     { h.create(c, account.TierStaff) }
func (h *AccountHandler) CreateSuperuser(c *gin.Context) { h.create(c, account.TierSuperuser) }

func (h *AccountHandler) create(c *gin.Context, tier account.Tier) {
	var req reqdto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	rm, err := h.accountUseCase.Create(c.Request.Context(), req, tier)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "account created", gin.H{"account": resdto.NewAccountResponse(rm)})
}

func (h *AccountHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	rm, err := h.accountUseCase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "ok", gin.H{"account": resdto.NewAccountResponse(rm)})
}

func (h *AccountHandler) List(c *gin.Context) {
	rms, err := h.accountUseCase.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "ok", gin.H{"accounts": resdto.NewAccountResponses(rms)})
}

func (h *AccountHandler) Update(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	rm, err := h.accountUseCase.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "account updated", gin.H{"account": resdto.NewAccountResponse(rm)})
}

func (h *AccountHandler) Activate(c *gin.Context) {
	h.flagOp(c, h.accountUseCase.Activate, "account activated")
}

func (h *AccountHandler) Deactivate(c *gin.Context) {
	h.flagOp(c, h.accountUseCase.Deactivate, "account deactivated")
}

func (h *AccountHandler) GrantStaff(c *gin.Context) {
	h.flagOp(c, h.accountUseCase.GrantStaff, "staff granted")
}

func (h *AccountHandler) RevokeStaff(c *gin.Context) {
	h.flagOp(c, h.accountUseCase.RevokeStaff, "staff revoked")
}

func (h *AccountHandler) GrantSuperuser(c *gin.Context) {
	h.flagOp(c, h.accountUseCase.GrantSuperuser, "superuser granted")
}

func (h *AccountHandler) RevokeSuperuser(c *gin.Context) {
	h.flagOp(c, h.accountUseCase.RevokeSuperuser, "superuser revoked")
}

func (h *AccountHandler) Delete(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.accountUseCase.DeletePhysical(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "account deleted", nil)
}

func (h *AccountHandler) flagOp(c *gin.Context, op func(ctx context.Context, id uuid.UUID) (*readmodel.AccountRM, error), message string) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	rm, err := op(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, message, gin.H{"account": resdto.NewAccountResponse(rm)})
}
