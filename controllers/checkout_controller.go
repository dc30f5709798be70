package controllers

import (
	"errors"
	"strconv"

	"github.com/FEBRIAN80/managmnt-food/pkg/resp"
	"github.com/FEBRIAN80/managmnt-food/repository"
	"github.com/FEBRIAN80/managmnt-food/services"
	"github.com/FEBRIAN80/managmnt-food/utils"
	"github.com/FEBRIAN80/managmnt-food/ws"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct {
	Checkout *services.CheckoutService
	Carts    *services.CartStore
	Receipts *services.ReceiptService
	Users    *repository.UserRepository
	TxnRepo  *repository.TransactionRepository
	Hub      Notifier
}

func NewCheckoutController(
	checkout *services.CheckoutService,
	carts *services.CartStore,
	receipts *services.ReceiptService,
	users *repository.UserRepository,
	txnRepo *repository.TransactionRepository,
	hub Notifier,
) *CheckoutController {
	return &CheckoutController{
		Checkout: checkout,
		Carts:    carts,
		Receipts: receipts,
		Users:    users,
		TxnRepo:  txnRepo,
		Hub:      hub,
	}
}

// POST /checkout
// The cart is cleared only after the commit is observed to succeed; any
// failure leaves it untouched so the operator can retry.
func (h *CheckoutController) Commit(c *gin.Context) {
	cashierID := utils.CurrentUserID(c)

	var req struct {
		DiscountRate int `json:"discountRate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	// one commit per cart at a time; a double submit while the storage round
	// trip is pending gets rejected, not queued
	if !h.Carts.BeginCheckout(cashierID) {
		resp.Conflict(c, services.ErrCheckoutInFlight.Error())
		return
	}
	defer h.Carts.EndCheckout(cashierID)

	cart := h.Carts.Get(cashierID)
	txn, err := h.Checkout.Commit(cart, req.DiscountRate, cashierID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart), errors.Is(err, services.ErrInvalidDiscount):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrCommitFailed):
			h.Hub.Notify(cashierID, ws.Notification{
				Event:   "commit_failed",
				Message: "Gagal memproses transaksi",
			})
			resp.BadGateway(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	cart.Clear()

	cashierName := ""
	if u, err := h.Users.FindByID(cashierID); err == nil {
		cashierName = u.FullName
	}
	receipt := h.Receipts.Compose(txn, cashierName)

	h.Hub.Notify(cashierID, ws.Notification{
		Event:   "commit_ok",
		Message: "Transaksi berhasil",
		Data:    gin.H{"transactionNumber": txn.TransactionNumber},
	})

	resp.Created(c, gin.H{
		"transaction": txn,
		"receipt":     receipt,
		"receiptText": receipt.Render(),
		"fileName":    receipt.FileName(),
	})
}

// GET /transactions?limit=
func (h *CheckoutController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	out, err := h.TxnRepo.ListRecent(limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /transactions/:id
func (h *CheckoutController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	txn, err := h.TxnRepo.GetWithItems(uint(id))
	if err != nil {
		resp.NotFound(c, "transaction not found")
		return
	}
	resp.OK(c, txn)
}

// GET /transactions/:id/receipt
// Re-export is deterministic: it renders the stored amounts, never live data.
func (h *CheckoutController) Receipt(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	txn, err := h.TxnRepo.GetWithItems(uint(id))
	if err != nil {
		resp.NotFound(c, "transaction not found")
		return
	}

	receipt := h.Receipts.Compose(txn, txn.Cashier.FullName)
	resp.OK(c, gin.H{
		"receipt":     receipt,
		"receiptText": receipt.Render(),
		"fileName":    receipt.FileName(),
	})
}
