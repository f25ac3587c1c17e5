package payment

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

var (
	penceInPound = decimal.NewFromInt(100)

	// Stripe caps a single charge at eight digits in the smallest currency unit.
	maxStripeAmount = decimal.NewFromInt(99_999_999)
)

type createPaymentIntentFunc func(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)

// StripePaymentService charges ticket purchases through a confirmed Stripe
// PaymentIntent. stripe.Key must be set before use.
type StripePaymentService struct {
	currency      stripe.Currency
	paymentMethod string
	createIntent  createPaymentIntentFunc
}

func NewStripePaymentService(paymentMethod string) *StripePaymentService {
	return &StripePaymentService{
		currency:      stripe.CurrencyGBP,
		paymentMethod: paymentMethod,
		createIntent:  paymentintent.New,
	}
}

func (s *StripePaymentService) MakePayment(ctx context.Context, accountID int64, amount int64) error {
	// Stripe refuses zero amount intents.
	if amount == 0 {
		return nil
	}

	params, err := s.paymentIntentParams(ctx, accountID, amount)
	if err != nil {
		return err
	}

	intent, err := s.createIntent(params)
	if err != nil {
		return fmt.Errorf("create stripe payment intent: %w", err)
	}

	switch intent.Status {
	case stripe.PaymentIntentStatusSucceeded, stripe.PaymentIntentStatusProcessing:
		return nil
	default:
		return fmt.Errorf("stripe payment intent %s ended in status %s", intent.ID, intent.Status)
	}
}

func (s *StripePaymentService) paymentIntentParams(
	ctx context.Context,
	accountID int64,
	amount int64) (*stripe.PaymentIntentParams, error) {

	pounds := decimal.NewFromInt(amount)

	pence := pounds.Mul(penceInPound)
	if pence.GreaterThan(maxStripeAmount) {
		return nil, fmt.Errorf("amount £%s exceeds the largest stripe charge", pounds.StringFixed(2))
	}

	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(pence.IntPart()),
		Currency:      stripe.String(string(s.currency)),
		PaymentMethod: stripe.String(s.paymentMethod),
		Confirm:       stripe.Bool(true),
		Description: stripe.String(
			fmt.Sprintf("Cinema tickets for account %d (£%s)", accountID, pounds.StringFixed(2)),
		),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String("never"),
		},
	}
	params.Context = ctx
	params.AddMetadata("account_id", strconv.FormatInt(accountID, 10))

	key, ok := IdempotencyKey(ctx)
	if !ok {
		key = uuid.NewString()
	}
	params.SetIdempotencyKey(key)

	return params, nil
}
