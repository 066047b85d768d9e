package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rentledger/rentledger_backend/internal/core/domain"
	"github.com/rentledger/rentledger_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PaymentTrackingHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	mocks  *testServices
}

func (suite *PaymentTrackingHandlerTestSuite) SetupTest() {
	suite.router, suite.mocks = newTestRouter()
}

func (suite *PaymentTrackingHandlerTestSuite) TestSetPayment_Success() {
	now := time.Now()
	amount := decimal.NewFromInt(1150)
	expected := &domain.PaymentTracking{
		TrackingID:   1,
		BillType:     domain.BillTypeRecurring,
		BillID:       5,
		PaymentMonth: 3,
		PaymentYear:  2026,
		IsPaid:       true,
		PaidDate:     &now,
		AmountPaid:   &amount,
	}

	suite.mocks.payment.On("SetPayment", mock.Anything, mock.MatchedBy(func(req dto.SetPaymentRequest) bool {
		return req.BillID == 5 && req.PaymentMonth == 3 && req.PaymentYear == 2026 && req.IsPaid
	})).Return(expected, nil).Once()

	body := []byte(`{"billID":5,"paymentMonth":3,"paymentYear":2026,"isPaid":true}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/payment-tracking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.PaymentTrackingResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.IsPaid)
	suite.NotNil(resp.PaidDate)
	suite.mocks.payment.AssertExpectations(suite.T())
}

func (suite *PaymentTrackingHandlerTestSuite) TestSetPayment_InvalidMonth() {
	body := []byte(`{"billID":5,"paymentMonth":13,"paymentYear":2026,"isPaid":true}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/payment-tracking", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mocks.payment.AssertNotCalled(suite.T(), "SetPayment")
}

func (suite *PaymentTrackingHandlerTestSuite) TestListPaymentsForPeriod_Success() {
	payments := []domain.PaymentTracking{
		{TrackingID: 1, BillType: domain.BillTypeRecurring, BillID: 5, PaymentMonth: 3, PaymentYear: 2026, IsPaid: true},
	}
	suite.mocks.payment.On("ListPaymentsForPeriod", mock.Anything, 3, 2026).Return(payments, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/payment-tracking?month=3&year=2026", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.PaymentTrackingResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
	suite.mocks.payment.AssertExpectations(suite.T())
}

func (suite *PaymentTrackingHandlerTestSuite) TestListPaymentsForPeriod_MissingPeriod() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/payment-tracking", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mocks.payment.AssertNotCalled(suite.T(), "ListPaymentsForPeriod")
}

func (suite *PaymentTrackingHandlerTestSuite) TestMarkAllForPeriod_Success() {
	suite.mocks.payment.On("MarkAllForPeriod", mock.Anything, mock.MatchedBy(func(req dto.MarkAllPaymentsRequest) bool {
		return req.PaymentMonth == 7 && req.PaymentYear == 2026 && req.IsPaid
	})).Return(4, nil).Once()

	body := []byte(`{"paymentMonth":7,"paymentYear":2026,"isPaid":true}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/payment-tracking/mark-all", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp map[string]int
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(4, resp["updated"])
	suite.mocks.payment.AssertExpectations(suite.T())
}

func TestPaymentTrackingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentTrackingHandlerTestSuite))
}
