package handler

import (
	"net/http"
	"wallet-service/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateWallet
// @Summary Create a wallet
// @Description Creates a wallet with a new UUID and zero balance
// @Tags wallets
// @Produce json
// @Success 201 {object} model.WalletResponse "Created"
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 500 {object} model.ErrorResponse "Internal error"
// @Router /wallet/create [post]
func (h *Handler) CreateWallet(c *gin.Context) {
	h.logger.Debug().Msg("create wallet request started")

	wallet, err := h.walletService.CreateWallet(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.NewWalletResponse(wallet))
}

// UpdateWallet
// @Summary Deposit to or withdraw from a wallet
// @Description Applies a DEPOSIT or WITHDRAW to the wallet and returns the new balance.
// @Description A 409 RESOURCE_BUSY response is retryable.
// @Tags wallets
// @Accept json
// @Produce json
// @Param operation body model.WalletOperationRequest true "Operation details"
// @Success 200 {object} model.WalletResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 404 {object} model.ErrorResponse "Wallet not found"
// @Failure 409 {object} model.ErrorResponse "Insufficient funds or wallet busy"
// @Failure 500 {object} model.ErrorResponse "Internal error"
// @Router /wallet [post]
func (h *Handler) UpdateWallet(c *gin.Context) {
	h.logger.Debug().Msg("update wallet request started")

	var req model.WalletOperationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, bindingError(err))
		return
	}

	wallet, err := h.walletService.UpdateWallet(c.Request.Context(), &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewWalletResponse(wallet))
}

// GetBalance
// @Summary Get wallet balance
// @Description Returns the current balance of a wallet
// @Tags wallets
// @Produce json
// @Param walletId path string true "Wallet ID" format(uuid)
// @Success 200 {object} model.WalletResponse
// @Failure 400 {object} model.ErrorResponse "Malformed wallet id"
// @Failure 404 {object} model.ErrorResponse "Wallet not found"
// @Router /wallets/{walletId} [get]
func (h *Handler) GetBalance(c *gin.Context) {
	h.logger.Debug().Msg("get wallet request started")

	walletID, err := uuid.Parse(c.Param("walletId"))
	if err != nil {
		h.handleError(c, model.NewValidationError(map[string][]string{
			"walletId": {"must be a valid UUID"},
		}))
		return
	}

	wallet, err := h.walletService.GetBalance(c.Request.Context(), walletID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.NewWalletResponse(wallet))
}
