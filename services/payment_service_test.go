package services_test

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/savorybites/restaurant-backend/models"
	"github.com/savorybites/restaurant-backend/services"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestCreditCardProcessPayment(t *testing.T) {
	cc := services.NewCreditCardPayment("4111111111111111", "Al", quietLogger())

	ok, err := cc.ProcessPayment(25.50)
	assert.NoError(t, err)
	assert.True(t, ok)

	_, err = cc.ProcessPayment(0)
	assert.ErrorIs(t, err, models.ErrInvalidArgument)

	_, err = cc.ProcessPayment(-5)
	assert.ErrorIs(t, err, models.ErrInvalidArgument)

	assert.Equal(t, "Credit Card", cc.PaymentMethod())
}

func TestCreditCardRefundAlwaysSucceeds(t *testing.T) {
	cc := services.NewCreditCardPayment("4111111111111111", "Al", quietLogger())
	ok, err := cc.Refund(10)
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestPaymentServiceRecordsTransactions(t *testing.T) {
	ps := services.NewPaymentService(services.NewCreditCardPayment("4111111111111111", "Al", quietLogger()))

	tx, err := ps.Charge(25.50)
	assert.NoError(t, err)
	assert.NotEmpty(t, tx.ReferenceID)
	assert.Equal(t, "charge", tx.Kind)
	assert.Equal(t, "Credit Card", tx.Method)
	assert.True(t, tx.Success)

	refund, err := ps.Refund(10)
	assert.NoError(t, err)
	assert.Equal(t, "refund", refund.Kind)

	txs := ps.Transactions()
	assert.Len(t, txs, 2)
	assert.NotEqual(t, txs[0].ReferenceID, txs[1].ReferenceID)
}

func TestPaymentServiceDoesNotRecordInvalidCharge(t *testing.T) {
	ps := services.NewPaymentService(services.NewCreditCardPayment("4111111111111111", "Al", quietLogger()))

	_, err := ps.Charge(-1)
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
	assert.Empty(t, ps.Transactions())
}
