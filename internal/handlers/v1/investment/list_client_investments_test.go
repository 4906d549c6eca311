package investment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nordfast/estate-server/internal/service"
)

// mockListService is a mock for investmentLister.
type mockListService struct {
	mock.Mock
}

func (m *mockListService) ListByClient(ctx context.Context, clientID uuid.UUID) ([]service.Investment, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Investment), args.Error(1)
}

// newListTestAPI registers the handler against a humatest API and returns it.
func newListTestAPI(t *testing.T, svc investmentLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListClientInvestmentsHandler(svc).Register(api)
	return api
}

func TestHTTP_ListClientInvestments_Success(t *testing.T) {
	clientID := uuid.Must(uuid.NewV4())
	investments := []service.Investment{{
		InvestmentID:   uuid.Must(uuid.NewV4()),
		ClientID:       clientID,
		InvestmentName: "Global Index Fund",
		Category:       2,
		RiskLevel:      1,
		Status:         0,
		CurrentValue:   decimal.RequireFromString("42000"),
		DateInvested:   time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC),
	}}

	mockSvc := new(mockListService)
	mockSvc.On("ListByClient", mock.Anything, clientID).Return(investments, nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/client/" + clientID.String() + "/investments")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListClientInvestmentsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Investments, 1)
	assert.Equal(t, "Global Index Fund", body.Investments[0].InvestmentName)
	assert.Equal(t, "42000", body.Investments[0].CurrentValue)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListClientInvestments_InvalidClientID(t *testing.T) {
	mockSvc := new(mockListService)

	resp := newListTestAPI(t, mockSvc).Get("/v1/client/not-a-uuid/investments")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "ListByClient")
}

func TestHTTP_ListClientInvestments_NoInvestments(t *testing.T) {
	clientID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockListService)
	mockSvc.On("ListByClient", mock.Anything, clientID).Return([]service.Investment{}, nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/client/" + clientID.String() + "/investments")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_ListClientInvestments_ServiceError(t *testing.T) {
	clientID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockListService)
	mockSvc.On("ListByClient", mock.Anything, clientID).Return(nil, errors.New("database unavailable"))

	resp := newListTestAPI(t, mockSvc).Get("/v1/client/" + clientID.String() + "/investments")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
