package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rentledger/rentledger_backend/internal/apperrors"
	"github.com/rentledger/rentledger_backend/internal/core/domain"
	"github.com/rentledger/rentledger_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PropertyHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	mocks  *testServices
}

func (suite *PropertyHandlerTestSuite) SetupTest() {
	suite.router, suite.mocks = newTestRouter()
}

func (suite *PropertyHandlerTestSuite) TestCreateProperty_Success() {
	expected := &domain.Property{
		PropertyID:                1,
		Name:                      "Maple St rental",
		MonthlyRent:               decimal.NewFromInt(1800),
		PropertyManagementPercent: decimal.NewFromInt(10),
		IsRental:                  true,
	}

	suite.mocks.property.On("CreateProperty", mock.Anything, mock.MatchedBy(func(req dto.CreatePropertyRequest) bool {
		return req.Name == "Maple St rental" && req.MonthlyRent != nil && req.MonthlyRent.Equal(decimal.NewFromInt(1800))
	})).Return(expected, nil).Once()

	body := []byte(`{"name":"Maple St rental","monthlyRent":1800}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/properties", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.PropertyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(1), resp.PropertyID)
	suite.Equal("Maple St rental", resp.Name)
	suite.mocks.property.AssertExpectations(suite.T())
}

func (suite *PropertyHandlerTestSuite) TestCreateProperty_MissingName() {
	body := []byte(`{"monthlyRent":1800}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/properties", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mocks.property.AssertNotCalled(suite.T(), "CreateProperty")
}

func (suite *PropertyHandlerTestSuite) TestCreateProperty_NegativeRent() {
	body := []byte(`{"name":"Bad","monthlyRent":-5}`)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/properties", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mocks.property.AssertNotCalled(suite.T(), "CreateProperty")
}

func (suite *PropertyHandlerTestSuite) TestGetProperty_NotFound() {
	suite.mocks.property.On("GetPropertyByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/properties/99", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mocks.property.AssertExpectations(suite.T())
}

func (suite *PropertyHandlerTestSuite) TestGetProperty_InvalidID() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/properties/abc", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mocks.property.AssertNotCalled(suite.T(), "GetPropertyByID")
}

func (suite *PropertyHandlerTestSuite) TestListProperties() {
	properties := []domain.Property{
		{PropertyID: 1, Name: "Maple", MonthlyRent: decimal.NewFromInt(1800), IsRental: true},
		{PropertyID: 2, Name: "Oak", MonthlyRent: decimal.NewFromInt(1200), IsRental: true},
	}
	suite.mocks.property.On("ListProperties", mock.Anything).Return(properties, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/properties", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.PropertyResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.mocks.property.AssertExpectations(suite.T())
}

func (suite *PropertyHandlerTestSuite) TestDeleteProperty_Success() {
	suite.mocks.property.On("DeleteProperty", mock.Anything, int64(4)).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodDelete, "/api/v1/properties/4", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mocks.property.AssertExpectations(suite.T())
}

func TestPropertyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PropertyHandlerTestSuite))
}
