package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"bistro-server/internal/client"
	"bistro-server/internal/dto"
	"bistro-server/internal/model"
	"bistro-server/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentService interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
	Record(ctx context.Context, req *dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error)
	ListByEmail(ctx context.Context, email string) ([]*model.Payment, error)
}

type paymentServiceImpl struct {
	db           *gorm.DB
	stripeClient client.StripeClient
	currency     string
	paymentRepo  repository.PaymentRepository
	cartRepo     repository.CartRepository
}

func NewPaymentService(
	db *gorm.DB,
	stripeClient client.StripeClient,
	currency string,
	paymentRepo repository.PaymentRepository,
	cartRepo repository.CartRepository,
) PaymentService {
	return &paymentServiceImpl{
		db:           db,
		stripeClient: stripeClient,
		currency:     currency,
		paymentRepo:  paymentRepo,
		cartRepo:     cartRepo,
	}
}

// CreateIntent converts the quoted decimal price to integer minor units by
// truncation (25.50 → 2550) and asks the processor for an authorization.
// Nothing is persisted here; the cart is untouched until Record.
func (s *paymentServiceImpl) CreateIntent(ctx context.Context, price float64) (string, error) {
	if price <= 0 {
		return "", fmt.Errorf("price must be positive")
	}

	amount := decimal.NewFromFloat(price).
		Mul(decimal.NewFromInt(100)).
		IntPart()

	intent, err := s.stripeClient.CreatePaymentIntent(ctx, amount, s.currency)
	if err != nil {
		return "", fmt.Errorf("stripe api create payment intent: %w", err)
	}

	return intent.ClientSecret, nil
}

// Record persists the payment and clears the cart lines it paid for as one
// transaction. The payment row is keyed by a settlement hash of payer, cart
// ids and amount, so a retried or duplicated call inserts nothing, deletes
// zero cart rows, and still returns successfully.
func (s *paymentServiceImpl) Record(ctx context.Context, req *dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error) {
	if req.Email == "" {
		return nil, fmt.Errorf("payment record requires an owner email")
	}
	if len(req.CartItemIDs) == 0 {
		return nil, fmt.Errorf("payment record references no cart items")
	}

	amount := decimal.NewFromFloat(req.Price).
		Mul(decimal.NewFromInt(100)).
		IntPart()

	settlementID := settlementKey(req.Email, req.CartItemIDs, amount)

	payment := &model.Payment{
		ID:            settlementID,
		Email:         req.Email,
		Amount:        amount,
		Currency:      s.currency,
		TransactionID: req.TransactionID,
		Status:        "PAID",
	}

	items := make([]*model.PaymentItem, len(req.CartItemIDs))
	for i, cartID := range req.CartItemIDs {
		item := &model.PaymentItem{
			PaymentID:  settlementID,
			CartItemID: cartID,
		}
		if i < len(req.MenuItemIDs) {
			item.MenuItemID = req.MenuItemIDs[i]
		}
		items[i] = item
	}

	var (
		inserted bool
		deleted  int64
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		inserted, err = s.paymentRepo.CreateIfAbsent(ctx, tx, payment)
		if err != nil {
			return fmt.Errorf("store payment record: %w", err)
		}

		if inserted {
			if err := s.paymentRepo.CreateItems(ctx, tx, items); err != nil {
				return fmt.Errorf("store payment items: %w", err)
			}
		}

		deleted, err = s.cartRepo.DeleteOwned(ctx, tx, req.Email, req.CartItemIDs)
		if err != nil {
			return fmt.Errorf("clear settled cart items: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &dto.RecordPaymentResponse{
		InsertResult: dto.InsertResult{InsertedID: settlementID},
		DeleteResult: dto.DeleteResult{DeletedCount: deleted},
	}, nil
}

func (s *paymentServiceImpl) ListByEmail(ctx context.Context, email string) ([]*model.Payment, error) {
	return s.paymentRepo.FindByEmail(ctx, email)
}

// settlementKey derives the deterministic payment id from the settlement's
// content. Cart ids are sorted so ordering differences between retries do
// not change the key.
func settlementKey(email string, cartIDs []string, amount int64) string {
	ids := make([]string, len(cartIDs))
	copy(ids, cartIDs)
	sort.Strings(ids)

	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%d", email, strings.Join(ids, ","), amount)))
	return hex.EncodeToString(sum[:])
}
