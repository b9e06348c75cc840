package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/savorybites/restaurant-backend/models"
)

// PaymentProcessor abstracts a payment method. It is deliberately not wired
// into the order flow; orders settle out of band.
type PaymentProcessor interface {
	ProcessPayment(amount float64) (bool, error)
	PaymentMethod() string
	Refund(amount float64) (bool, error)
}

// CreditCardPayment processes card charges. There is no real gateway
// behind it; a valid amount always succeeds.
type CreditCardPayment struct {
	cardNumber string
	cardHolder string
	log        *logrus.Logger
}

func NewCreditCardPayment(cardNumber, cardHolder string, log *logrus.Logger) *CreditCardPayment {
	return &CreditCardPayment{cardNumber: cardNumber, cardHolder: cardHolder, log: log}
}

func (cc *CreditCardPayment) ProcessPayment(amount float64) (bool, error) {
	if amount <= 0 {
		return false, models.InvalidArgumentf("Payment amount must be positive")
	}
	cc.log.Infof("Processing credit card payment of $%.2f", amount)
	return true, nil
}

func (cc *CreditCardPayment) PaymentMethod() string {
	return "Credit Card"
}

func (cc *CreditCardPayment) Refund(amount float64) (bool, error) {
	cc.log.Infof("Refunding $%.2f to credit card", amount)
	return true, nil
}

// PaymentService wraps a processor and keeps an in-memory log of every
// settled charge and refund.
type PaymentService struct {
	mu           sync.Mutex
	processor    PaymentProcessor
	transactions []models.PaymentTransaction
}

func NewPaymentService(processor PaymentProcessor) *PaymentService {
	return &PaymentService{processor: processor}
}

// Charge runs the amount through the processor and records the outcome.
// Validation failures return before anything is recorded.
func (ps *PaymentService) Charge(amount float64) (models.PaymentTransaction, error) {
	ok, err := ps.processor.ProcessPayment(amount)
	if err != nil {
		return models.PaymentTransaction{}, err
	}
	return ps.record("charge", amount, ok), nil
}

// Refund always settles on the reference processor.
func (ps *PaymentService) Refund(amount float64) (models.PaymentTransaction, error) {
	ok, err := ps.processor.Refund(amount)
	if err != nil {
		return models.PaymentTransaction{}, err
	}
	return ps.record("refund", amount, ok), nil
}

// Transactions returns a copy of the transaction log, oldest first.
func (ps *PaymentService) Transactions() []models.PaymentTransaction {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	txs := make([]models.PaymentTransaction, len(ps.transactions))
	copy(txs, ps.transactions)
	return txs
}

func (ps *PaymentService) record(kind string, amount float64, success bool) models.PaymentTransaction {
	tx := models.PaymentTransaction{
		ReferenceID: uuid.NewString(),
		Kind:        kind,
		Amount:      amount,
		Method:      ps.processor.PaymentMethod(),
		Success:     success,
		CreatedAt:   time.Now(),
	}
	ps.mu.Lock()
	ps.transactions = append(ps.transactions, tx)
	ps.mu.Unlock()
	return tx
}
